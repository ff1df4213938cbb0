package medicineValidator

import (
	"strings"
	"time"

	"medishare/middleware"

	"github.com/gofiber/fiber/v2"
)

// ParseExpDate accepts the date-only form used by the web client and
// falls back to RFC3339.
func ParseExpDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// Donate validator middleware
func Donate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			MedicineName string `json:"medicinename"`
			ExpDate      string `json:"exp_date"`
			Address      string `json:"address"`
			Phone        string `json:"phone"`
			Description  string `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.MedicineName) == "" {
			errors["medicinename"] = "Medicine name is required!"
		}
		if reqData.ExpDate == "" {
			errors["exp_date"] = "Expiry date is required!"
		} else if _, err := ParseExpDate(reqData.ExpDate); err != nil {
			errors["exp_date"] = "Expiry date must be YYYY-MM-DD!"
		}
		if strings.TrimSpace(reqData.Address) == "" {
			errors["address"] = "Address is required!"
		}
		if strings.TrimSpace(reqData.Phone) == "" {
			errors["phone"] = "Phone is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
