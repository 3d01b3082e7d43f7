package routes

import (
	"joyful-cargo/controllers/auth"
	"joyful-cargo/controllers/dashboard"
	"joyful-cargo/controllers/expense"
	"joyful-cargo/controllers/parcel"
	"joyful-cargo/controllers/postponed"
	"joyful-cargo/controllers/user"
	"joyful-cargo/logger"
	"joyful-cargo/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, asyncLogger)
	userController := user.NewUserController(db, asyncLogger)
	parcelController := parcel.NewParcelController(db, asyncLogger)
	postponedController := postponed.NewPostponedController(db, asyncLogger)
	dashboardController := dashboard.NewDashboardController(db, asyncLogger)
	expenseController := expense.NewExpenseController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Joyful Cargo API is running")
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)
	api.Post("/auth/refresh", middleware.RequireRefresh(), authController.Refresh)

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuth())
	authGroup.Get("/me", authController.Me)
	authGroup.Post("/logout", authController.Logout)

	/*=============================================================================
	| Parcel Routes
	===============================================================================*/
	parcelGroup := api.Group("/parcels").Use(middleware.RequireAuth())
	parcelGroup.Get("/", parcelController.Index)
	parcelGroup.Post("/", parcelController.Store)
	parcelGroup.Get("/overdue", parcelController.Overdue)
	parcelGroup.Get("/stats", parcelController.Stats)
	parcelGroup.Get("/:id", parcelController.Show)
	parcelGroup.Put("/:id", parcelController.Update)
	parcelGroup.Patch("/:id/status", parcelController.UpdateStatus)
	parcelGroup.Delete("/:id", parcelController.Destroy)

	/*=============================================================================
	| Postponed Order Routes
	===============================================================================*/
	postponedGroup := api.Group("/postponed").Use(middleware.RequireAuth())
	postponedGroup.Get("/", postponedController.Index)
	postponedGroup.Get("/stats", postponedController.Stats)
	postponedGroup.Get("/:id", postponedController.Show)
	postponedGroup.Put("/:id", postponedController.Update)
	postponedGroup.Post("/:id/resolve", postponedController.Resolve)

	/*=============================================================================
	| Dashboard Routes
	===============================================================================*/
	dashboardGroup := api.Group("/dashboard").Use(middleware.RequireAuth())
	dashboardGroup.Get("/", dashboardController.Root)
	dashboardGroup.Get("/overview", dashboardController.Overview)
	dashboardGroup.Get("/revenue-trend", dashboardController.RevenueTrend)
	dashboardGroup.Get("/stats", dashboardController.Stats)

	/*=============================================================================
	| Expense Routes
	===============================================================================*/
	expenseGroup := api.Group("/expenses").Use(middleware.RequireAuth())
	expenseGroup.Get("/", expenseController.Index)
	expenseGroup.Post("/", expenseController.Store)
	expenseGroup.Get("/:id", expenseController.Show)
	expenseGroup.Put("/:id", expenseController.Update)
	expenseGroup.Delete("/:id", expenseController.Destroy)

	api.Get("/expense-categories", middleware.RequireAuth(), expenseController.Categories)

	/*=============================================================================
	| User Management Routes
	===============================================================================*/
	userGroup := api.Group("/users").Use(middleware.RequireAuth())
	userGroup.Get("/", userController.Index)
	userGroup.Post("/", middleware.RequireAdmin(), userController.Store)
	userGroup.Get("/:id", userController.Show)
	userGroup.Put("/:id", userController.Update)
	userGroup.Patch("/:id/role", middleware.RequireAdmin(), userController.UpdateRole)
	userGroup.Delete("/:id", middleware.RequireAdmin(), userController.Destroy)
}
