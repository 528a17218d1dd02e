package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Taller/Catalog"
	"Taller/Models"
)

// SparePartController handles spare-part catalog API endpoints
type SparePartController struct {
	DB *gorm.DB
}

// NewSparePartController creates a new SparePartController
func NewSparePartController(db *gorm.DB) *SparePartController {
	return &SparePartController{DB: db}
}

// GetSpareParts searches parts by name and category substrings. A part
// without a subcategory matches any subcategory filter.
func (c *SparePartController) GetSpareParts(ctx *fiber.Ctx) error {
	parts, err := Models.SearchSpareParts(c.DB,
		ctx.Query("nombre"), ctx.Query("categoria"), ctx.Query("subcategoria"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve spare parts"})
	}
	return ctx.JSON(parts)
}

// GetSparePart retrieves a single spare part by ID
func (c *SparePartController) GetSparePart(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	var part Models.SparePart
	if result := c.DB.First(&part, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part not found"})
	}
	return ctx.JSON(part)
}

// GetCategories lists the catalog categories for the form's first
// dropdown. The menu is read fresh so side-file edits show up
// immediately.
func (c *SparePartController) GetCategories(ctx *fiber.Ctx) error {
	menu, err := Catalog.Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load catalog"})
	}
	return ctx.JSON(menu.Categories())
}

// GetSubcategories lists the options under one category, repopulating
// the dependent dropdown
func (c *SparePartController) GetSubcategories(ctx *fiber.Ctx) error {
	menu, err := Catalog.Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load catalog"})
	}
	subs := menu.Subcategories(ctx.Params("categoria"))
	if subs == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	return ctx.JSON(subs)
}

// CreateSparePart creates a new spare part, rejecting categories
// outside the vocabulary
func (c *SparePartController) CreateSparePart(ctx *fiber.Ctx) error {
	var input Models.SparePartInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	menu, err := Catalog.Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load catalog"})
	}

	part, err := Models.CreateSparePart(c.DB, menu, input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(part)
}

// UpdateSparePart updates an existing spare part
func (c *SparePartController) UpdateSparePart(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	var input Models.SparePartInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	menu, err := Catalog.Load()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load catalog"})
	}

	part, err := Models.UpdateSparePart(c.DB, menu, id, input)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(part)
}

// DeleteSparePart deletes a spare part
func (c *SparePartController) DeleteSparePart(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part ID"})
	}

	if err := Models.DeleteSparePart(c.DB, id); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(fiber.Map{"message": "Spare part deleted successfully"})
}
