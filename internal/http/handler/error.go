package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"formportal/internal/apperr"
	"formportal/internal/model"
)

// writeError maps err onto its HTTP status and writes the failure envelope.
// The envelope's error string is err.Error(), e.g. "Not found: form schema with ID ... not found".
func writeError(c *fiber.Ctx, err error) error {
	return writeFailure(c, apperr.HTTPStatus(err), err.Error())
}

func writeFailure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(model.Failure(message))
}

// ErrorHandler returns a Fiber global error handler so that unmatched routes,
// method mismatches and unhandled errors still produce the envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return writeError(c, appErr)
		}

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeFailure(c, status, apperr.BadRequest("%s", fe.Message).Error())
		case fiber.StatusNotFound:
			return writeFailure(c, status, apperr.NotFound("route %s %s not found", c.Method(), c.Path()).Error())
		case fiber.StatusMethodNotAllowed:
			return writeFailure(c, status, "Method not allowed: "+c.Method()+" "+c.Path())
		case fiber.StatusRequestEntityTooLarge:
			return writeFailure(c, status, apperr.BadRequest("request body too large").Error())
		default:
			return writeFailure(c, status, apperr.Internal(nil, "internal server error").Error())
		}
	}
}
