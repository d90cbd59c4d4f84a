package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chimichangapp/internal/service"
)

// GetSpecSnapshot streams the last published OpenAPI snapshot from object
// storage. When publishing is disabled or nothing was published yet, the
// snapshot simply is not there.
//
// @Summary Download the published OpenAPI spec
// @Description Streams the OpenAPI document most recently published to object storage.
// @Produce json
// @Success 200 {string} string "the OpenAPI document"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /spec-snapshot [get]
func GetSpecSnapshot(snapSvc service.SnapshotService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := snapSvc.Open(c.UserContext())
		if err != nil {
			if errors.Is(err, service.ErrSnapshotUnavailable) {
				return writeError(c, fiber.StatusNotFound, "SNAPSHOT_UNAVAILABLE", "no spec snapshot available")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		// SendStream closes rc once the body has been written out.
		return c.SendStream(rc, int(info.Size))
	}
}
