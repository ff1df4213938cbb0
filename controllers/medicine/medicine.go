package medicineController

import (
	"errors"
	"fmt"
	"log"
	"time"

	"medishare/middleware"
	"medishare/models"
	"medishare/utils"
	medicineValidator "medishare/validators/medicine"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Handler struct {
	DB     *gorm.DB
	Mailer *utils.Mailer
}

func New(db *gorm.DB, mailer *utils.Mailer) *Handler {
	return &Handler{DB: db, Mailer: mailer}
}

// weeklyRequestLimit caps how many medicines one user may request inside
// a trailing 7-day window.
const weeklyRequestLimit = 3

var (
	errQuotaExceeded     = errors.New("quota exceeded")
	errDuplicateRequest  = errors.New("duplicate request")
	errMedicineNotFound  = errors.New("medicine not found")
	errRequesterNotFound = errors.New("requester not found")
)

func (h *Handler) Donate(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

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

	expDate, err := medicineValidator.ParseExpDate(reqData.ExpDate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid expiry date!", nil)
	}

	medicine := models.Medicine{
		MedicineName: reqData.MedicineName,
		ExpDate:      expDate,
		Address:      reqData.Address,
		Phone:        reqData.Phone,
		Description:  reqData.Description,
		UserID:       userId,
	}

	if err := h.DB.Create(&medicine).Error; err != nil {
		log.Printf("Error donating medicine: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to donate medicine!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Medicine donated successfully.", medicine)
}

// RequestMedicine runs the whole matching workflow inside one transaction:
// quota check, duplicate check, medicine lookup, request insert and both
// notification inserts commit or roll back together.
func (h *Handler) RequestMedicine(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	medicineName := c.Params("medicinename")

	var newRequest models.Request
	var donor models.User

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		oneWeekAgo := time.Now().AddDate(0, 0, -7)

		var recentCount int64
		if err := tx.Model(&models.Request{}).
			Where("user_id = ? AND created_at >= ?", userId, oneWeekAgo).
			Count(&recentCount).Error; err != nil {
			return err
		}
		if recentCount >= weeklyRequestLimit {
			return errQuotaExceeded
		}

		if err := tx.Where("user_id = ? AND medicine_name = ?", userId, medicineName).
			First(&models.Request{}).Error; err == nil {
			return errDuplicateRequest
		}

		// First listing with that name wins when several donors listed it.
		var medicine models.Medicine
		if err := tx.Where("medicine_name = ?", medicineName).First(&medicine).Error; err != nil {
			return errMedicineNotFound
		}

		var requester models.User
		if err := tx.Select("id, name, address, phone").First(&requester, userId).Error; err != nil {
			return errRequesterNotFound
		}

		newRequest = models.Request{
			MedicineName: medicineName,
			UserID:       userId,
			Reference:    uuid.NewString(),
			Requested:    true,
		}
		if err := tx.Create(&newRequest).Error; err != nil {
			// The unique index on (user_id, medicine_name) catches the
			// racer that passed the read check above.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errDuplicateRequest
			}
			return err
		}

		if err := tx.Model(&medicine).Update("requested", true).Error; err != nil {
			return err
		}

		donorNotification := models.Notification{
			UserID: medicine.UserID,
			Message: fmt.Sprintf(
				"You have a new request for the medicine: %s from %s (Address: %s, Phone: %s). Ref: %s",
				medicineName, requester.Name, requester.Address, requester.Phone, newRequest.Reference,
			),
		}
		if err := tx.Create(&donorNotification).Error; err != nil {
			return err
		}

		requesterNotification := models.Notification{
			UserID: userId,
			Message: fmt.Sprintf(
				"Your request for the medicine: %s has been submitted. Ref: %s",
				medicineName, newRequest.Reference,
			),
		}
		if err := tx.Create(&requesterNotification).Error; err != nil {
			return err
		}

		// Donor contact for the email alert; a dangling donor reference
		// only costs the email, not the request.
		if err := tx.Select("id, name, email").First(&donor, medicine.UserID).Error; err != nil {
			donor = models.User{}
		}

		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, errQuotaExceeded):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You can only request up to 3 medicines per week.", nil)
	case errors.Is(err, errDuplicateRequest):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Medicine is already requested!", nil)
	case errors.Is(err, errMedicineNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Medicine not found!", nil)
	case errors.Is(err, errRequesterNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Requester not found!", nil)
	default:
		log.Printf("Error requesting medicine: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to request medicine!", nil)
	}

	if donor.Email != "" {
		var requester models.User
		if err := h.DB.Select("name").First(&requester, userId).Error; err == nil {
			h.Mailer.SendRequestAlertEmail(donor.Email, donor.Name, medicineName, requester.Name)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Medicine requested successfully.", newRequest)
}

func (h *Handler) GetAllMedicines(c *fiber.Ctx) error {
	var medicines []models.Medicine
	if err := h.DB.Preload("User").Find(&medicines).Error; err != nil {
		log.Printf("Error fetching donated medicines: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch donated medicines!", nil)
	}

	formatted := make([]fiber.Map, 0, len(medicines))
	for _, medicine := range medicines {
		// A listing whose donor record is gone stays visible with
		// sentinel donor fields instead of failing the whole listing.
		var donorId interface{} = "Unknown ID"
		donorName := "Unknown Donor"
		if medicine.User.ID != 0 {
			donorId = medicine.User.ID
			donorName = medicine.User.Name
		}

		formatted = append(formatted, fiber.Map{
			"donorId":      donorId,
			"donorName":    donorName,
			"medicinename": medicine.MedicineName,
			"exp_date":     medicine.ExpDate,
			"address":      medicine.Address,
			"phone":        medicine.Phone,
			"description":  medicine.Description,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Medicines fetched!", formatted)
}

// DeleteMedicine removes listings by name, scoped to the caller's own
// donations. A name that matches nothing the caller owns is a 404.
func (h *Handler) DeleteMedicine(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	medicineName := c.Params("medicinename")

	result := h.DB.Where("medicine_name = ? AND user_id = ?", medicineName, userId).Delete(&models.Medicine{})
	if result.Error != nil {
		log.Printf("Error deleting medicine: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete medicine!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Medicine not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Medicine deleted successfully.", nil)
}

func (h *Handler) GetNotifications(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	notifications := []models.Notification{}
	if err := h.DB.Where("user_id = ?", userId).Order("created_at DESC").Find(&notifications).Error; err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched!", notifications)
}
