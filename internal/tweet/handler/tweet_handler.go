package handler

import (
	"github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/middleware"
	"github.com/Priyanshu-coder81/Backend-learning/internal/response"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/dto"
	"github.com/Priyanshu-coder81/Backend-learning/internal/tweet/service"
	"github.com/gofiber/fiber/v2"
)

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

func (h *TweetHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.ErrUnauthenticated)
	}

	var input dto.CreateTweetInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, errors.NewValidation("invalid input"))
	}
	if err := input.Validate(); err != nil {
		return response.Error(c, errors.NewValidation(err.Error()))
	}

	tweet, err := h.tweetService.Create(c.Context(), user.ID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusCreated, tweet, "tweet created")
}

func (h *TweetHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return response.Error(c, errors.NewValidation("user id is required"))
	}

	tweets, err := h.tweetService.ListByUser(c.Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	message := "tweets fetched"
	if len(tweets) == 0 {
		message = "no tweets found"
	}

	return response.JSON(c, fiber.StatusOK, tweets, message)
}

func (h *TweetHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.ErrUnauthenticated)
	}

	tweetID := c.Params("tweetId")
	if tweetID == "" {
		return response.Error(c, errors.NewValidation("tweet id is required"))
	}

	var input dto.UpdateTweetInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, errors.NewValidation("invalid input"))
	}
	if err := input.Validate(); err != nil {
		return response.Error(c, errors.NewValidation(err.Error()))
	}

	tweet, err := h.tweetService.Update(c.Context(), tweetID, user.ID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, tweet, "tweet updated")
}

func (h *TweetHandler) ToggleLike(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.ErrUnauthenticated)
	}

	tweetID := c.Params("tweetId")
	if tweetID == "" {
		return response.Error(c, errors.NewValidation("tweet id is required"))
	}

	out, err := h.tweetService.ToggleLike(c.Context(), tweetID, user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	message := "tweet liked"
	if !out.Liked {
		message = "tweet unliked"
	}

	return response.JSON(c, fiber.StatusOK, out, message)
}

func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, errors.ErrUnauthenticated)
	}

	tweetID := c.Params("tweetId")
	if tweetID == "" {
		return response.Error(c, errors.NewValidation("tweet id is required"))
	}

	if err := h.tweetService.Delete(c.Context(), tweetID, user.ID); err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, nil, "tweet deleted")
}
