package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"formportal/internal/service"
)

// Deps are the collaborators the HTTP layer needs. Validator may be nil.
type Deps struct {
	DB        *sql.DB
	Forms     service.FormService
	Validator SchemaValidator
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	forms := app.Group("/api/forms")
	forms.Post("/", RegisterSchema(d.Forms, d.Validator))
	forms.Get("/:id", GetSchema(d.Forms))
	forms.Get("/:id/render", RenderSchema(d.Forms))
	forms.Post("/:id/submit", SubmitResponse(d.Forms))
	forms.Get("/:id/responses", ListResponses(d.Forms))
	forms.Post("/:id/export", ExportResponses(d.Forms))
}
