package handler

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"formportal/internal/apperr"
	"formportal/internal/model"
	"formportal/internal/service"
)

const (
	msgSchemaRegistered = "Form schema registered successfully"
	msgFormSubmitted    = "Form submitted successfully"
)

// SchemaValidator checks a raw register body before it is decoded.
type SchemaValidator interface {
	FormSchema(body []byte) error
}

// formID parses the :id path parameter. It runs before any service call so a
// malformed id never reaches storage.
func formID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid UUID format")
	}
	return id, nil
}

// formValues collects submitted fields from a urlencoded or multipart body.
// A key sent more than once keeps its last value. Any other content type is
// rejected.
func formValues(c *fiber.Ctx) (map[string]string, error) {
	raw := make(map[string]string)

	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	if strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, apperr.BadRequest("invalid multipart body: %v", err)
		}
		for k, vs := range form.Value {
			if len(vs) > 0 {
				raw[k] = vs[len(vs)-1]
			}
		}
		return raw, nil
	}

	if !strings.HasPrefix(ct, fiber.MIMEApplicationForm) {
		return nil, apperr.BadRequest("unsupported content type %q: expected %s or %s",
			ct, fiber.MIMEApplicationForm, fiber.MIMEMultipartForm)
	}

	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		raw[string(k)] = string(v)
	})
	return raw, nil
}

// RegisterSchema creates a form schema.
//
// @Summary  Register a form schema
// @Tags     forms
// @Accept   json
// @Produce  json
// @Param    schema body model.FormSchema true "Form schema"
// @Success  201 {object} model.APIResponse[model.CreatedResult]
// @Failure  400 {object} model.APIResponse[any]
// @Failure  500 {object} model.APIResponse[any]
// @Router   /api/forms [post]
func RegisterSchema(svc service.FormService, v SchemaValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		if v != nil {
			if err := v.FormSchema(body); err != nil {
				return writeError(c, err)
			}
		}

		var schema model.FormSchema
		if err := json.Unmarshal(body, &schema); err != nil {
			return writeError(c, apperr.BadRequest("invalid JSON body: %v", err))
		}

		id, err := svc.Register(c.UserContext(), &schema)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(model.Success(model.CreatedResult{
			ID:      id.String(),
			Message: msgSchemaRegistered,
		}))
	}
}

// GetSchema returns a stored form schema.
//
// @Summary  Fetch a form schema
// @Tags     forms
// @Produce  json
// @Param    id path string true "Form ID (UUID)"
// @Success  200 {object} model.APIResponse[model.FormSchema]
// @Failure  400 {object} model.APIResponse[any]
// @Failure  404 {object} model.APIResponse[any]
// @Router   /api/forms/{id} [get]
func GetSchema(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := formID(c)
		if err != nil {
			return writeError(c, err)
		}
		schema, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(model.Success(schema))
	}
}

// RenderSchema serves the fillable HTML page for a form.
//
// @Summary  Render a form as HTML
// @Tags     forms
// @Produce  html
// @Param    id path string true "Form ID (UUID)"
// @Success  200 {string} string "HTML document"
// @Failure  400 {object} model.APIResponse[any]
// @Failure  404 {object} model.APIResponse[any]
// @Router   /api/forms/{id}/render [get]
func RenderSchema(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := formID(c)
		if err != nil {
			return writeError(c, err)
		}
		html, err := svc.Render(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		c.Type("html", "utf-8")
		return c.SendString(html)
	}
}

// SubmitResponse stores a form-encoded submission.
//
// @Summary  Submit a response
// @Tags     responses
// @Accept   x-www-form-urlencoded
// @Accept   mpfd
// @Produce  json
// @Param    id path string true "Form ID (UUID)"
// @Success  201 {object} model.APIResponse[model.CreatedResult]
// @Failure  400 {object} model.APIResponse[any]
// @Failure  404 {object} model.APIResponse[any]
// @Router   /api/forms/{id}/submit [post]
func SubmitResponse(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := formID(c)
		if err != nil {
			return writeError(c, err)
		}
		raw, err := formValues(c)
		if err != nil {
			return writeError(c, err)
		}
		respID, err := svc.Submit(c.UserContext(), id, raw)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(model.Success(model.CreatedResult{
			ID:      respID.String(),
			Message: msgFormSubmitted,
		}))
	}
}

// ListResponses returns every stored response for a form.
//
// @Summary  List responses
// @Tags     responses
// @Produce  json
// @Param    id path string true "Form ID (UUID)"
// @Success  200 {object} model.APIResponse[[]model.FormResponse]
// @Failure  400 {object} model.APIResponse[any]
// @Failure  404 {object} model.APIResponse[any]
// @Router   /api/forms/{id}/responses [get]
func ListResponses(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := formID(c)
		if err != nil {
			return writeError(c, err)
		}
		responses, err := svc.ListResponses(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		if responses == nil {
			responses = []model.FormResponse{}
		}
		return c.JSON(model.Success(responses))
	}
}

// ExportResponses uploads all responses to object storage and returns a download link.
//
// @Summary  Export responses
// @Tags     responses
// @Produce  json
// @Param    id path string true "Form ID (UUID)"
// @Success  201 {object} model.APIResponse[service.ExportResult]
// @Failure  400 {object} model.APIResponse[any]
// @Failure  404 {object} model.APIResponse[any]
// @Failure  500 {object} model.APIResponse[any]
// @Router   /api/forms/{id}/export [post]
func ExportResponses(svc service.FormService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := formID(c)
		if err != nil {
			return writeError(c, err)
		}
		res, err := svc.Export(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(model.Success(res))
	}
}
