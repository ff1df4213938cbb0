package main

import (
	"log"

	"medishare/config"
	authController "medishare/controllers/auth"
	medicineController "medishare/controllers/medicine"
	userController "medishare/controllers/user"
	"medishare/database"
	"medishare/routers/authRoutes"
	"medishare/routers/medicineRoutes"
	"medishare/routers/userRoutes"
	"medishare/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	mailer := utils.NewMailer(cfg)

	authRoutes.SetupAuthRoutes(app, authController.New(db, cfg, mailer))
	medicineRoutes.SetupMedicineRoutes(app, medicineController.New(db, mailer), cfg.JWTKey)
	userRoutes.SetupUserRoutes(app, userController.New(db), cfg.JWTKey)

	scheduler := utils.StartExpiryScheduler(db)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
