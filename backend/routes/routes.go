package routes

import (
	"vocabgame/backend/config"
	"vocabgame/backend/controllers"
	"vocabgame/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authMiddleware := middleware.AuthMiddleware(db)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/register", authController.Register)
	app.Post("/api/login", authController.Login)
	app.Get("/api/user", authMiddleware, authController.GetUser)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Post("/api/user/upgrade", authMiddleware, userController.Upgrade)
	app.Put("/api/user/stats", authMiddleware, userController.UpdateStats)
	app.Put("/api/user/question-count", authMiddleware, userController.UpdateQuestionCount)
	app.Put("/api/user/avatar", authMiddleware, userController.UpdateAvatar)

	// Payment routes. Verification is deliberately left open: the
	// operator confirming a transfer has no session of their own.
	paymentController := controllers.NewPaymentController(db, cfg)
	app.Post("/api/payment/create", authMiddleware, paymentController.CreatePayment)
	app.Post("/api/payment/verify", paymentController.VerifyPayment)
}
