package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/meharsulaiman/threads-backend/core"
)

// fail maps a service error onto an HTTP response. Internal errors are
// logged with their cause and answered with a generic body.
func (a *Adapter) fail(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		a.log.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		return c.Status(status).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps domain error kinds to HTTP status codes. The
// self-follow case is matched before the broader forbidden kind because
// it answers 400, not 401.
func mapErrorToStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, core.ErrSelfFollow):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrUnauthenticated),
		errors.Is(err, core.ErrForbidden):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrPostNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrUserExists),
		errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrMissingFields),
		errors.Is(err, core.ErrPostTooLong):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
