package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *SubscriptionHandler, requireAuth fiber.Handler) {
	subs := app.Group("/api/v1/subscriptions", requireAuth)

	subs.Post("/c/:channelId", h.Toggle)
	subs.Get("/c/:channelId", h.ListSubscribers)
	subs.Get("/u/:subscriberId", h.ListSubscribedChannels)
}
