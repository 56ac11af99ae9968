package routes

import (
	"github.com/gofiber/fiber/v2"

	"memeshare/internal/handlers"
	"memeshare/internal/middleware"
)

type Deps struct {
	Feed    *handlers.FeedHandler
	Meme    *handlers.MemeHandler
	Like    *handlers.LikeHandler
	Comment *handlers.CommentHandler
}

// Register mounts the API. Reads are open; every mutating route sits behind
// RequireAuth.
func Register(app *fiber.App, deps Deps) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/whoami", handlers.Whoami)

	api := app.Group("/api")

	memes := api.Group("/memes")
	memes.Get("/", deps.Feed.Explore)
	memes.Get("/trending", deps.Feed.Trending)
	memes.Get("/:id", deps.Meme.GetOne)
	memes.Get("/:id/comments", deps.Comment.List)

	memes.Post("/", middleware.RequireAuth(), deps.Meme.Create)
	memes.Post("/:id/like", middleware.RequireAuth(), deps.Like.Toggle)
	memes.Post("/:id/comments", middleware.RequireAuth(), deps.Comment.Create)
	memes.Delete("/:id", middleware.RequireAuth(), deps.Meme.Delete)

	api.Get("/users/:id/memes", deps.Feed.ByAuthor)
}
