package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"urbanbean/internal/domain"
	applog "urbanbean/internal/log"
	"urbanbean/internal/validate"
)

var errNotObject = errors.New("request body must be a JSON object")

// bindObject decodes the body into an untyped mapping; records do their own
// field checks.
func bindObject(c *fiber.Ctx) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(c.Body(), &v); err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return m, nil
}

func badBody(c *fiber.Ctx, err error) error {
	applog.Warn(c, "validation.fail", map[string]any{"field": "body", "error": err.Error()})
	msg := "invalid JSON body"
	if errors.Is(err, errNotObject) {
		msg = errNotObject.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// categoryParam reads the optional category filter. When it is rejected, ok is
// false and err is the result of writing the 400 response.
func categoryParam(c *fiber.Ctx) (category string, ok bool, err error) {
	category, ok = validate.Category(c.Query("category"))
	if !ok {
		applog.Warn(c, "validation.fail", map[string]any{"field": "category"})
		err = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category is too long"})
	}
	return category, ok, err
}

// respondError maps record and store errors to client and server responses.
// Anything else goes to the app ErrorHandler.
func respondError(c *fiber.Ctx, action string, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		names := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			names = append(names, f.Field)
		}
		applog.Warn(c, "validation.fail", map[string]any{"action": action, "fields": names})
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}
	var serr *domain.StorageError
	if errors.As(err, &serr) {
		applog.Error(c, action+".fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": serr.Diagnostic()})
	}
	return err
}
