package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/meharsulaiman/threads-backend/services"
)

func (a *Adapter) createPost(c fiber.Ctx) error {
	var input services.CreateInput
	if err := c.Bind().Body(&input); err != nil {
		return badRequestBody(c)
	}

	post, err := a.posts.Create(c.Context(), principalFrom(c), input)
	if err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(post)
}

func (a *Adapter) getPost(c fiber.Ctx) error {
	post, err := a.posts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(post)
}

func (a *Adapter) deletePost(c fiber.Ctx) error {
	if err := a.posts.Delete(c.Context(), principalFrom(c), c.Params("id")); err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "post deleted successfully",
	})
}

func (a *Adapter) likePost(c fiber.Ctx) error {
	liked, err := a.posts.ToggleLike(c.Context(), principalFrom(c), c.Params("id"))
	if err != nil {
		return a.fail(c, err)
	}

	message := "post unliked successfully"
	if liked {
		message = "post liked successfully"
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": message,
		"liked":   liked,
	})
}

func (a *Adapter) replyToPost(c fiber.Ctx) error {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.Bind().Body(&input); err != nil {
		return badRequestBody(c)
	}

	post, err := a.posts.Reply(c.Context(), principalFrom(c), c.Params("id"), input.Text)
	if err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(post)
}

func (a *Adapter) feed(c fiber.Ctx) error {
	posts, err := a.posts.Feed(c.Context(), principalFrom(c))
	if err != nil {
		return a.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(posts)
}
