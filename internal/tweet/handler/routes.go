package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *TweetHandler, requireAuth fiber.Handler) {
	tweets := app.Group("/api/v1/tweets")

	tweets.Get("/user/:userId", h.ListByUser)

	tweets.Post("/", requireAuth, h.Create)
	tweets.Patch("/:tweetId", requireAuth, h.Update)
	tweets.Delete("/:tweetId", requireAuth, h.Delete)
	tweets.Post("/:tweetId/like", requireAuth, h.ToggleLike)
}
