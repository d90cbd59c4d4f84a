package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chimichangapp/internal/model"
	"chimichangapp/internal/service"
)

// ListUsers returns the fixed demo user listing. The id parameter exists
// purely to demonstrate query string documentation; the response ignores it.
//
// @Summary List users
// @Tags users
// @Produce json
// @Param id query string false "Query string" example(010)
// @Success 200 {array} model.User
// @Router /users/ [get]
func ListUsers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON([]model.User{
			{Name: "Harry"},
			{Name: "Ron"},
		})
	}
}

// GetUser looks up a directory entry by its id. Each outcome has its own
// documented response shape rather than the standard error envelope.
//
// @Summary Look up a user
// @Description Resolves a user id against the directory. The id 007 is reserved and never served.
// @Tags users
// @Produce json
// @Param id query string true "User ID" example(001)
// @Success 200 {object} UserLookupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} UserForbiddenResponse
// @Failure 404 {object} UserNotFoundResponse
// @Failure 500 {object} ErrorResponse
// @Router /get-user [get]
func GetUser(dirSvc service.DirectoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := dirSvc.Lookup(c.UserContext(), c.Query("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrIDRequired):
				return writeError(c, fiber.StatusBadRequest, "ID_REQUIRED", "id query parameter is required")
			case errors.Is(err, service.ErrReservedID):
				return c.Status(fiber.StatusForbidden).JSON(UserForbiddenResponse{
					Status:  "forbidden",
					Message: "Insufficient privileges!",
				})
			case errors.Is(err, service.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(UserNotFoundResponse{
					Status:  "not_found",
					Message: "User not found!",
				})
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(UserLookupResponse{Status: "success", Data: u})
	}
}
