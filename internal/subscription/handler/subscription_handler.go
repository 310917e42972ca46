package handler

import (
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/middleware"
	"github.com/Priyanshu-coder81/Backend-learning/internal/response"
	"github.com/Priyanshu-coder81/Backend-learning/internal/subscription/service"
	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) Toggle(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, autherror.ErrUnauthenticated)
	}

	channelID := c.Params("channelId")
	if channelID == "" {
		return response.Error(c, autherror.NewValidation("channel id is required"))
	}

	out, err := h.subscriptionService.Toggle(c.Context(), user.ID, channelID)
	if err != nil {
		return response.Error(c, err)
	}

	message := "unsubscribed"
	if out.Subscribed {
		message = "subscribed"
	}

	return response.JSON(c, fiber.StatusOK, out, message)
}

func (h *SubscriptionHandler) ListSubscribers(c *fiber.Ctx) error {
	channelID := c.Params("channelId")
	if channelID == "" {
		return response.Error(c, autherror.NewValidation("channel id is required"))
	}

	subscribers, err := h.subscriptionService.ListSubscribers(c.Context(), channelID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, subscribers, "subscribers fetched")
}

func (h *SubscriptionHandler) ListSubscribedChannels(c *fiber.Ctx) error {
	subscriberID := c.Params("subscriberId")
	if subscriberID == "" {
		return response.Error(c, autherror.NewValidation("subscriber id is required"))
	}

	channels, err := h.subscriptionService.ListSubscribedChannels(c.Context(), subscriberID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, channels, "subscribed channels fetched")
}
