package handler

import "github.com/gofiber/fiber/v2"

// Hello returns the fixed greeting.
//
// @Summary Say hello
// @Description Returns a fixed greeting so you can check the service is up.
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func Hello() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(MessageResponse{Message: "Hello World"})
	}
}
