package userValidator

import (
	"medishare/middleware"

	"github.com/gofiber/fiber/v2"
)

// Feedback validator middleware
func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RatedUserID uint `json:"ratedUserId"`
			Rating      int  `json:"rating"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RatedUserID == 0 {
			errors["ratedUserId"] = "Rated user is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
