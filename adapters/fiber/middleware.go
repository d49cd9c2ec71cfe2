package fiber

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/meharsulaiman/threads-backend/core"
	"github.com/meharsulaiman/threads-backend/pkg/metrics"
	"github.com/meharsulaiman/threads-backend/pkg/token"
)

// requireAuth validates the session cookie and stores the resolved
// principal in the request context. A missing, invalid, or expired token
// rejects the request before the handler runs. A valid token whose
// account no longer exists is rejected the same way.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	raw := c.Cookies(cookieName)
	if raw == "" {
		a.metrics.AuthDecisions.WithLabelValues(metrics.OutcomeMissingToken).Inc()
		return unauthorized(c)
	}

	principal, err := a.auth.ResolvePrincipal(c.Context(), raw)
	if err != nil {
		outcome := authOutcome(err)
		a.metrics.AuthDecisions.WithLabelValues(outcome).Inc()
		a.log.Debug("rejected session token", "reason", outcome)
		return unauthorized(c)
	}

	a.metrics.AuthDecisions.WithLabelValues(metrics.OutcomeOK).Inc()
	c.Locals(localsPrincipal, principal)
	return c.Next()
}

// requestMetrics records request duration labelled by method and status.
func (a *Adapter) requestMetrics(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	a.metrics.RequestDuration.
		WithLabelValues(c.Method(), strconv.Itoa(status)).
		Observe(time.Since(start).Seconds())
	return err
}

// unauthorized writes the one rejection body every auth failure shares.
// The reason stays server side.
func unauthorized(c fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}

func authOutcome(err error) string {
	switch {
	case errors.Is(err, token.ErrTokenExpired):
		return metrics.OutcomeExpired
	case errors.Is(err, token.ErrBadSignature):
		return metrics.OutcomeBadSignature
	case errors.Is(err, core.ErrUnauthenticated):
		return metrics.OutcomeUnknownPrincipal
	default:
		return metrics.OutcomeMalformed
	}
}
