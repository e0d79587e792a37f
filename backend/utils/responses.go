package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Every response carries a top-level "success" flag; errors carry a
// human-readable "message". Extra fields ride alongside via the fields
// map so the shape stays flat, the way the game client expects it.

// JSONSuccess sends {success:true, ...fields}.
func JSONSuccess(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(body)
}

// JSONError sends {success:false, message} with the given status.
func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusUnauthorized, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusNotFound, message)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return JSONError(c, fiber.StatusInternalServerError, message)
}
