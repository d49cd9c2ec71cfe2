// Package fiber exposes the application over HTTP using gofiber.
package fiber

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/meharsulaiman/threads-backend/core"
	"github.com/meharsulaiman/threads-backend/pkg/metrics"
	"github.com/meharsulaiman/threads-backend/services"
)

const (
	cookieName      = "jwt"
	localsPrincipal = "principal"
)

type Adapter struct {
	auth    *services.AuthService
	users   *services.UserService
	posts   *services.PostService
	log     *slog.Logger
	metrics *metrics.Metrics
}

func New(auth *services.AuthService, users *services.UserService, posts *services.PostService, log *slog.Logger, m *metrics.Metrics) *Adapter {
	return &Adapter{auth: auth, users: users, posts: posts, log: log, metrics: m}
}

// RegisterRoutes mounts the API under /api. Protected routes pass through
// requireAuth before their handler runs.
func (a *Adapter) RegisterRoutes(app *fiber.App) {
	app.Use(a.requestMetrics)

	users := app.Group("/api/users")
	users.Post("/signup", a.signup)
	users.Post("/login", a.login)
	users.Post("/logout", a.logout)
	users.Get("/profile/:username", a.profile)
	users.Get("/me", a.requireAuth, a.me)
	users.Post("/follow/:id", a.requireAuth, a.followUser)
	users.Put("/update/:id", a.requireAuth, a.updateUser)

	posts := app.Group("/api/posts")
	posts.Get("/feed", a.requireAuth, a.feed)
	posts.Post("/", a.requireAuth, a.createPost)
	posts.Get("/:id", a.getPost)
	posts.Delete("/:id", a.requireAuth, a.deletePost)
	posts.Post("/like/:id", a.requireAuth, a.likePost)
	posts.Post("/reply/:id", a.requireAuth, a.replyToPost)
}

// principalFrom returns the principal stored by requireAuth, or nil on
// an unauthenticated request.
func principalFrom(c fiber.Ctx) *core.Principal {
	p, _ := c.Locals(localsPrincipal).(*core.Principal)
	return p
}
