package Controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Taller/Models"
)

// errorResponse maps the data layer's typed errors onto HTTP statuses:
// validation 400, not found 404, anything else 500.
func errorResponse(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, Models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, Models.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// paramID parses a route id parameter.
func paramID(ctx *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.Atoi(ctx.Params(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
