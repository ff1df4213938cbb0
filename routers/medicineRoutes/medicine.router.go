package medicineRoutes

import (
	medicineController "medishare/controllers/medicine"
	"medishare/middleware"
	medicineValidator "medishare/validators/medicine"

	"github.com/gofiber/fiber/v2"
)

func SetupMedicineRoutes(app *fiber.App, h *medicineController.Handler, jwtSecret string) {
	apiGroup := app.Group("/api")

	apiGroup.Post("/donate", medicineValidator.Donate(), middleware.Protected(jwtSecret), h.Donate)
	apiGroup.Post("/request/:medicinename", middleware.Protected(jwtSecret), h.RequestMedicine)
	apiGroup.Get("/notifications", middleware.Protected(jwtSecret), h.GetNotifications)
	apiGroup.Get("/medicines", h.GetAllMedicines)
	apiGroup.Delete("/medicine/:medicinename", middleware.Protected(jwtSecret), h.DeleteMedicine)
}
