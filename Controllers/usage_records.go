package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Taller/Models"
)

// UsageRecordController handles line-item API endpoints
type UsageRecordController struct {
	DB *gorm.DB
}

// NewUsageRecordController creates a new UsageRecordController
func NewUsageRecordController(db *gorm.DB) *UsageRecordController {
	return &UsageRecordController{DB: db}
}

// GetIntakeUsageRecords lists the line items of one intake
func (c *UsageRecordController) GetIntakeUsageRecords(ctx *fiber.Ctx) error {
	intakeID, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid intake ID"})
	}

	var intake Models.Intake
	if result := c.DB.First(&intake, intakeID); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Intake not found"})
	}

	records, err := Models.UsageRecordsOfIntake(c.DB, intake.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve usage records"})
	}
	return ctx.JSON(records)
}

// GetUsageRecord retrieves a single usage record by ID
func (c *UsageRecordController) GetUsageRecord(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid usage record ID"})
	}

	var record Models.UsageRecord
	result := c.DB.Preload("SparePart").Preload("Intake").First(&record, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usage record not found"})
	}
	return ctx.JSON(record)
}

// CreateUsageRecordInput wraps the line-item fields with both parent
// ids. The intake id is explicit, threaded from the intake creation
// result.
type CreateUsageRecordInput struct {
	IntakeID    uint `json:"id_ingreso"`
	SparePartID uint `json:"id_recambio"`
	Models.UsageRecordInput
}

// CreateUsageRecord attaches a spare-part line item to an intake
func (c *UsageRecordController) CreateUsageRecord(ctx *fiber.Ctx) error {
	var input CreateUsageRecordInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := Models.CreateUsageRecord(c.DB, input.IntakeID, input.SparePartID, input.UsageRecordInput)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(record)
}

// UpdateUsageRecord updates price/discount/quantity, recomputing the
// real cost
func (c *UsageRecordController) UpdateUsageRecord(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid usage record ID"})
	}

	var input Models.UsageRecordInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := Models.UpdateUsageRecord(c.DB, id, input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(record)
}

// DeleteUsageRecord deletes a usage record
func (c *UsageRecordController) DeleteUsageRecord(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid usage record ID"})
	}

	if err := Models.DeleteUsageRecord(c.DB, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Usage record deleted successfully"})
}
