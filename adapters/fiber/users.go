package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/meharsulaiman/threads-backend/services"
)

func (a *Adapter) signup(c fiber.Ctx) error {
	var input services.SignUpInput
	if err := c.Bind().Body(&input); err != nil {
		return badRequestBody(c)
	}

	result, err := a.auth.SignUp(c.Context(), input)
	if err != nil {
		return a.fail(c, err)
	}

	a.setSessionCookie(c, result.Token)
	return c.Status(http.StatusCreated).JSON(result.User)
}

func (a *Adapter) login(c fiber.Ctx) error {
	var input services.LoginInput
	if err := c.Bind().Body(&input); err != nil {
		return badRequestBody(c)
	}

	result, err := a.auth.Login(c.Context(), input)
	if err != nil {
		return a.fail(c, err)
	}

	a.setSessionCookie(c, result.Token)
	return c.Status(http.StatusOK).JSON(result.User)
}

func (a *Adapter) logout(c fiber.Ctx) error {
	// Sessions are stateless; logout only discards the client cookie.
	a.clearSessionCookie(c)
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "user logged out successfully",
	})
}

func (a *Adapter) profile(c fiber.Ctx) error {
	user, err := a.users.GetProfile(c.Context(), c.Params("username"))
	if err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

func (a *Adapter) me(c fiber.Ctx) error {
	principal := principalFrom(c)
	user, err := a.users.GetByID(c.Context(), principal.ID)
	if err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

func (a *Adapter) followUser(c fiber.Ctx) error {
	principal := principalFrom(c)
	following, err := a.users.ToggleFollow(c.Context(), principal, c.Params("id"))
	if err != nil {
		return a.fail(c, err)
	}

	message := "user unfollowed successfully"
	if following {
		message = "user followed successfully"
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":   message,
		"following": following,
	})
}

func (a *Adapter) updateUser(c fiber.Ctx) error {
	var input services.UpdateInput
	if err := c.Bind().Body(&input); err != nil {
		return badRequestBody(c)
	}

	principal := principalFrom(c)
	user, err := a.users.Update(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

func (a *Adapter) setSessionCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.auth.TokenTTL().Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (a *Adapter) clearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func badRequestBody(c fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body",
	})
}
