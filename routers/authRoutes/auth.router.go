package authRoutes

import (
	authController "medishare/controllers/auth"
	authValidator "medishare/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, h *authController.Handler) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/signup", authValidator.Signup(), h.Signup)
	apiGroup.Post("/login", authValidator.Login(), h.Login)
}
