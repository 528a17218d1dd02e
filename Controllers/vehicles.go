package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Taller/Models"
)

// VehicleController handles vehicle API endpoints
type VehicleController struct {
	DB *gorm.DB
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{DB: db}
}

// GetVehicles searches vehicles by plate substring; no filter returns all
func (c *VehicleController) GetVehicles(ctx *fiber.Ctx) error {
	vehicles, err := Models.SearchVehiclesByPlate(c.DB, ctx.Query("matricula"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}
	return ctx.JSON(vehicles)
}

// GetVehicle retrieves a single vehicle by ID
func (c *VehicleController) GetVehicle(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if result := c.DB.Preload("Client").First(&vehicle, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return ctx.JSON(vehicle)
}

// CreateVehicleInput wraps the vehicle fields with the owning client id.
type CreateVehicleInput struct {
	ClientID uint `json:"id_cliente"`
	Models.VehicleInput
}

// CreateVehicle registers a vehicle under an existing client
func (c *VehicleController) CreateVehicle(ctx *fiber.Ctx) error {
	var input CreateVehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle, err := Models.CreateVehicle(c.DB, input.ClientID, input.VehicleInput)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(vehicle)
}

// UpdateVehicle updates an existing vehicle
func (c *VehicleController) UpdateVehicle(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var input Models.VehicleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	vehicle, err := Models.UpdateVehicle(c.DB, id, input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(vehicle)
}

// DeleteVehicle deletes a vehicle
func (c *VehicleController) DeleteVehicle(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	if err := Models.DeleteVehicle(c.DB, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}
