package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the user/session routes. requireAuth gates the
// protected ones.
func RegisterRoutes(app *fiber.App, h *AuthHandler, requireAuth fiber.Handler) {
	users := app.Group("/api/v1/users")

	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
	users.Post("/refresh-token", h.Refresh)
	users.Get("/c/:username", h.GetChannelProfile)

	users.Post("/loggedOut", requireAuth, h.Logout)
	users.Post("/change-password", requireAuth, h.ChangePassword)
	users.Get("/current-user", requireAuth, h.CurrentUser)
	users.Patch("/update-account", requireAuth, h.UpdateAccount)
	users.Patch("/avatar", requireAuth, h.UpdateAvatar)
	users.Patch("/cover-image", requireAuth, h.UpdateCoverImage)
}
