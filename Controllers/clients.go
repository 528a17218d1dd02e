package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Taller/Models"
)

// ClientController handles customer API endpoints
type ClientController struct {
	DB *gorm.DB
}

// NewClientController creates a new ClientController
func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// GetClients searches clients by name substring; no filter returns all
func (c *ClientController) GetClients(ctx *fiber.Ctx) error {
	clients, err := Models.SearchClientsByName(c.DB, ctx.Query("nombre"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve clients"})
	}
	return ctx.JSON(clients)
}

// GetClient retrieves a single client by ID
func (c *ClientController) GetClient(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var client Models.Client
	if result := c.DB.Preload("Vehicles").First(&client, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}
	return ctx.JSON(client)
}

// GetClientVehicles lists the vehicles owned by one client, the set
// the intake form shows in its vehicle dropdown
func (c *ClientController) GetClientVehicles(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var client Models.Client
	if result := c.DB.First(&client, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Client not found"})
	}

	vehicles, err := Models.VehiclesOfClient(c.DB, client.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve vehicles"})
	}
	return ctx.JSON(vehicles)
}

// CreateClient creates a new client
func (c *ClientController) CreateClient(ctx *fiber.Ctx) error {
	var input Models.ClientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client, err := Models.CreateClient(c.DB, input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient updates an existing client
func (c *ClientController) UpdateClient(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	var input Models.ClientInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	client, err := Models.UpdateClient(c.DB, id, input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(client)
}

// DeleteClient deletes a client
func (c *ClientController) DeleteClient(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid client ID"})
	}

	if err := Models.DeleteClient(c.DB, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Client deleted successfully"})
}
