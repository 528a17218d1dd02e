package Controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Taller/Models"
)

// ReportController generates printable workbooks from intake data
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// GetIntakeReport streams an Excel workbook for one intake: the visit
// header plus one row per spare-part line item and the total
func (c *ReportController) GetIntakeReport(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid intake ID"})
	}

	var intake Models.Intake
	result := c.DB.Preload("Client").Preload("Vehicle").
		Preload("UsageRecords").Preload("UsageRecords.SparePart").
		First(&intake, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Intake not found"})
	}

	buf, err := buildIntakeWorkbook(intake)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	filename := fmt.Sprintf("ingreso_%d.xlsx", intake.ID)
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buf.Bytes())
}

func buildIntakeWorkbook(intake Models.Intake) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Ingreso"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	// Visit header block
	header := [][]interface{}{
		{"Ingreso", intake.ID},
		{"Fecha", intake.IntakeAt.Format("2006-01-02 15:04:05")},
		{"Kilometros", intake.Odometer},
		{"Averia", intake.Fault},
		{"Diagnostico", intake.Diagnosis},
	}
	if intake.Client != nil {
		header = append(header, []interface{}{"Cliente", intake.Client.Name})
	}
	if intake.Vehicle != nil {
		header = append(header,
			[]interface{}{"Vehiculo", intake.Vehicle.Label()},
			[]interface{}{"Matricula", intake.Vehicle.Plate})
	}
	for i, row := range header {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), row[1])
	}

	// Line-item table below the header
	tableStart := len(header) + 2
	columns := []string{"Recambio", "Precio", "Cantidad", "Descuento %", "Costo real"}
	for i, column := range columns {
		cell := fmt.Sprintf("%c%d", 'A'+i, tableStart)
		f.SetCellValue(sheetName, cell, column)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, tableStart, tableStart, headerStyle)
	}

	var total float64
	for i, record := range intake.UsageRecords {
		row := tableStart + 1 + i
		partName := ""
		if record.SparePart != nil {
			partName = record.SparePart.Name
		}
		values := []interface{}{
			partName,
			record.Price,
			record.Quantity,
			record.Discount,
			record.RealCost,
		}
		for col, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
		total += record.RealCost
	}

	totalRow := tableStart + 1 + len(intake.UsageRecords)
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", totalRow), total)

	for i := range columns {
		col := string('A' + rune(i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	if f.GetSheetName(0) != sheetName {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("error removing default sheet: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}
