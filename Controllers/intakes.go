package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Taller/Models"
)

// IntakeController handles workshop-visit API endpoints
type IntakeController struct {
	DB *gorm.DB
}

// NewIntakeController creates a new IntakeController
func NewIntakeController(db *gorm.DB) *IntakeController {
	return &IntakeController{DB: db}
}

// GetIntakes searches intakes by the vehicle plate substring; no
// filter returns all
func (c *IntakeController) GetIntakes(ctx *fiber.Ctx) error {
	intakes, err := Models.SearchIntakesByVehiclePlate(c.DB, ctx.Query("matricula"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve intakes"})
	}
	return ctx.JSON(intakes)
}

// GetCurrentIntake reports the last intake created in this process so
// the usage-record screen can pre-fill its header
func (c *IntakeController) GetCurrentIntake(ctx *fiber.Ctx) error {
	current, ok := Models.GetCurrentIntake()
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No intake in session"})
	}
	return ctx.JSON(current)
}

// GetIntake retrieves a single intake with its line items
func (c *IntakeController) GetIntake(ctx *fiber.Ctx) error {
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
	return ctx.JSON(intake)
}

// CreateIntakeInput wraps the intake fields with both parent ids.
type CreateIntakeInput struct {
	ClientID  uint `json:"id_cliente"`
	VehicleID uint `json:"id_vehiculo"`
	Models.IntakeInput
}

// CreateIntake registers one workshop visit for a client/vehicle pair
func (c *IntakeController) CreateIntake(ctx *fiber.Ctx) error {
	var input CreateIntakeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	intake, err := Models.CreateIntake(c.DB, input.ClientID, input.VehicleID, input.IntakeInput)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(intake)
}

// UpdateIntake updates the odometer/fault/diagnosis of an intake
func (c *IntakeController) UpdateIntake(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid intake ID"})
	}

	var input Models.IntakeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	intake, err := Models.UpdateIntake(c.DB, id, input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(intake)
}

// DeleteIntake deletes an intake
func (c *IntakeController) DeleteIntake(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid intake ID"})
	}

	if err := Models.DeleteIntake(c.DB, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Intake deleted successfully"})
}
