package handler

import (
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/Priyanshu-coder81/Backend-learning/config"
	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/dto"
	"github.com/Priyanshu-coder81/Backend-learning/internal/auth/service"
	autherror "github.com/Priyanshu-coder81/Backend-learning/internal/errors"
	"github.com/Priyanshu-coder81/Backend-learning/internal/middleware"
	"github.com/Priyanshu-coder81/Backend-learning/internal/response"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RefreshTokenCookie carries the refresh token between refresh calls.
const RefreshTokenCookie = "refreshToken"

type AuthHandler struct {
	userService *service.UserService
	tokens      service.TokenIssuer
	cfg         *config.Config
}

func NewAuthHandler(userService *service.UserService, tokens service.TokenIssuer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{userService: userService, tokens: tokens, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, autherror.NewValidation("invalid input"))
	}
	if err := input.Validate(); err != nil {
		return response.Error(c, autherror.NewValidation(err.Error()))
	}

	avatarFile, err := c.FormFile("avatar")
	if err != nil {
		return response.Error(c, autherror.NewValidation("avatar file is required"))
	}

	avatarPath, err := h.saveTemp(c, avatarFile)
	if err != nil {
		return response.Error(c, err)
	}
	defer os.Remove(avatarPath)

	coverImagePath := ""
	if coverFile, err := c.FormFile("coverImage"); err == nil && coverFile != nil {
		coverImagePath, err = h.saveTemp(c, coverFile)
		if err != nil {
			return response.Error(c, err)
		}
		defer os.Remove(coverImagePath)
	}

	user, err := h.userService.Register(c.Context(), input, avatarPath, coverImagePath)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusCreated, user, "user registered")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, autherror.NewValidation("invalid input"))
	}
	if err := input.Validate(); err != nil {
		return response.Error(c, autherror.NewValidation(err.Error()))
	}

	out, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookies(c, out.AccessToken, out.RefreshToken)

	return response.JSON(c, fiber.StatusOK, out, "logged in")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, autherror.ErrUnauthenticated)
	}

	if err := h.userService.Logout(c.Context(), user.ID); err != nil {
		return response.Error(c, err)
	}

	h.clearAuthCookies(c)

	return response.JSON(c, fiber.StatusOK, nil, "logged out")
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	presented := c.Cookies(RefreshTokenCookie)
	if presented == "" {
		var input dto.RefreshInput
		if err := c.BodyParser(&input); err == nil {
			presented = input.RefreshToken
		}
	}

	pair, err := h.userService.Refresh(c.Context(), presented)
	if err != nil {
		return response.Error(c, err)
	}

	h.setAuthCookies(c, pair.AccessToken, pair.RefreshToken)

	return response.JSON(c, fiber.StatusOK, pair, "token refreshed")
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, autherror.ErrUnauthenticated)
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, autherror.NewValidation("invalid input"))
	}
	if err := input.Validate(); err != nil {
		return response.Error(c, autherror.NewValidation(err.Error()))
	}

	if err := h.userService.ChangePassword(c.Context(), user.ID, input); err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, nil, "password changed")
}

func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, autherror.ErrUnauthenticated)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewUserOutput(user), "current user")
}

func (h *AuthHandler) UpdateAccount(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, autherror.ErrUnauthenticated)
	}

	var input dto.UpdateAccountInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, autherror.NewValidation("invalid input"))
	}
	if err := input.Validate(); err != nil {
		return response.Error(c, autherror.NewValidation(err.Error()))
	}

	updated, err := h.userService.UpdateAccount(c.Context(), user.ID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, updated, "account updated")
}

func (h *AuthHandler) UpdateAvatar(c *fiber.Ctx) error {
	return h.updateMedia(c, "avatar", h.userService.UpdateAvatar)
}

func (h *AuthHandler) UpdateCoverImage(c *fiber.Ctx) error {
	return h.updateMedia(c, "coverImage", h.userService.UpdateCoverImage)
}

func (h *AuthHandler) GetChannelProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return response.Error(c, autherror.NewValidation("username is required"))
	}

	profile, err := h.userService.GetChannelProfile(c.Context(), username)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, profile, "channel profile fetched")
}

func (h *AuthHandler) updateMedia(c *fiber.Ctx, field string,
	update func(ctx context.Context, userID, path string) (*dto.UserOutput, error)) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Error(c, autherror.ErrUnauthenticated)
	}

	file, err := c.FormFile(field)
	if err != nil {
		return response.Error(c, autherror.NewValidation(field+" file is required"))
	}

	localPath, err := h.saveTemp(c, file)
	if err != nil {
		return response.Error(c, err)
	}
	defer os.Remove(localPath)

	updated, err := update(c.Context(), user.ID, localPath)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, fiber.StatusOK, updated, field+" updated")
}

func (h *AuthHandler) saveTemp(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	path := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		return "", err
	}
	return path, nil
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Expires:  time.Now().Add(h.tokens.AccessTokenExpiry()),
		HTTPOnly: true,
		Secure:   h.cfg.Auth.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		Expires:  time.Now().Add(h.tokens.RefreshTokenExpiry()),
		HTTPOnly: true,
		Secure:   h.cfg.Auth.SecureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   h.cfg.Auth.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
			Path:     "/",
		})
	}
}
