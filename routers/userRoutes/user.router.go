package userRoutes

import (
	userController "medishare/controllers/user"
	"medishare/middleware"
	userValidator "medishare/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, h *userController.Handler, jwtSecret string) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/feedback", userValidator.Feedback(), middleware.Protected(jwtSecret), h.SubmitFeedback)
	apiGroup.Get("/profile", middleware.Protected(jwtSecret), h.GetProfile)
	apiGroup.Get("/profile/:id", h.GetProfileByID)
}
