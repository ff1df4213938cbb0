package userController

import (
	"log"
	"strconv"

	"medishare/middleware"
	"medishare/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// GetProfile returns the authenticated caller's own profile view.
func (h *Handler) GetProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	return h.profile(c, userId)
}

// GetProfileByID is the public variant keyed by a path parameter.
func (h *Handler) GetProfileByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	return h.profile(c, uint(id))
}

// profile joins feedback, donations and requests into the derived view
// both endpoints share.
func (h *Handler) profile(c *fiber.Ctx, userId uint) error {
	var user models.User
	if err := h.DB.Select("id, name, address, phone").First(&user, userId).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var feedback []models.Feedback
	if err := h.DB.Where("rated_user_id = ?", userId).Find(&feedback).Error; err != nil {
		log.Printf("Error fetching feedback: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	// A user nobody has rated reports 0, not null.
	rating := 0.0
	if len(feedback) > 0 {
		total := 0
		for _, item := range feedback {
			total += item.Rating
		}
		rating = float64(total) / float64(len(feedback))
	}

	feedbackView := make([]fiber.Map, 0, len(feedback))
	for _, item := range feedback {
		feedbackView = append(feedbackView, fiber.Map{
			"rating":  item.Rating,
			"comment": item.Comment,
		})
	}

	donatedMedicines := []string{}
	if err := h.DB.Model(&models.Medicine{}).Where("user_id = ?", userId).
		Pluck("medicine_name", &donatedMedicines).Error; err != nil {
		log.Printf("Error fetching donated medicines: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	requestedMedicines := []string{}
	if err := h.DB.Model(&models.Request{}).Where("user_id = ?", userId).
		Pluck("medicine_name", &requestedMedicines).Error; err != nil {
		log.Printf("Error fetching requested medicines: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched!", fiber.Map{
		"name":               user.Name,
		"address":            user.Address,
		"phone":              user.Phone,
		"rating":             rating,
		"feedback":           feedbackView,
		"donatedMedicines":   donatedMedicines,
		"requestedMedicines": requestedMedicines,
	})
}

// SubmitFeedback stores one rating about another user. Repeat ratings and
// self-ratings are allowed and all count toward the average.
func (h *Handler) SubmitFeedback(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		RatedUserID uint   `json:"ratedUserId"`
		Rating      int    `json:"rating"`
		Comment     string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	feedback := models.Feedback{
		UserID:      userId,
		RatedUserID: reqData.RatedUserID,
		Rating:      reqData.Rating,
		Comment:     reqData.Comment,
	}

	if err := h.DB.Create(&feedback).Error; err != nil {
		log.Printf("Error submitting feedback: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Feedback submitted successfully.", feedback)
}
