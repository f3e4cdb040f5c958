package routes

import (
	"github.com/gofiber/fiber/v2"

	"habitmaster/backend/config"
	"habitmaster/backend/controllers"
	"habitmaster/backend/store"
)

func SetupRoutes(app *fiber.App, st *store.Store, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(st, cfg)
	app.Post("/api/login", authController.Login)

	// Habit routes
	habitsController := controllers.NewHabitsController(st, cfg)
	app.Get("/api/data", habitsController.GetData)
	app.Post("/api/habits", habitsController.CreateHabit)
	app.Delete("/api/habits/:id", habitsController.DeleteHabit)

	// Completion routes
	completionsController := controllers.NewCompletionsController(st, cfg)
	app.Post("/api/toggle", completionsController.Toggle)

	// Analytics routes
	analyticsController := controllers.NewAnalyticsController(st, cfg)
	app.Get("/api/analytics", analyticsController.GetMonthlyAnalytics)
}
