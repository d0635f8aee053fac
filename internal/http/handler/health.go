package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"formportal/internal/apperr"
	"formportal/internal/model"
)

// HealthStatus is the body returned by the health endpoints.
type HealthStatus struct {
	Status string `json:"status"`
}

// HealthCheck pings the database with a 2s budget.
//
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200 {object} model.APIResponse[HealthStatus]
// @Failure  503 {object} model.APIResponse[any]
// @Router   /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if db == nil {
			return writeFailure(c, fiber.StatusServiceUnavailable, apperr.Storage(nil, "database not configured").Error())
		}
		if err := db.PingContext(ctx); err != nil {
			return writeFailure(c, fiber.StatusServiceUnavailable, apperr.Storage(nil, "dependency unavailable").Error())
		}
		return c.Status(fiber.StatusOK).JSON(model.Success(HealthStatus{Status: "healthy"}))
	}
}

// LivenessProbe always answers 200 while the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
