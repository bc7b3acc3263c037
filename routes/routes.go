package routes

import (
	"cargo-tracking/constants"
	"cargo-tracking/controllers/auth"
	"cargo-tracking/controllers/dashboard"
	"cargo-tracking/controllers/shipment"
	"cargo-tracking/controllers/tracking"
	"cargo-tracking/controllers/user"
	"cargo-tracking/logger"
	"cargo-tracking/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, asyncLogger)
	shipmentController := shipment.NewShipmentController(db, asyncLogger)
	trackingController := tracking.NewTrackingController(db, asyncLogger)
	dashboardController := dashboard.NewDashboardController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "cargo-tracking", "status": "ok"})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", authController.Login)
	api.Post("/register", authController.Register)

	// Public shipment lookup by tracking number, no authentication required
	api.Get("/track/:trackingNumber", trackingController.PublicTrack)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAnyPermission())
	authGroup.Get("/profile", user.GetUserInfo)
	authGroup.Post("/logout", authController.LogOut)

	/*=============================================================================
	| Shipment Routes
	===============================================================================*/
	shipmentGroup := api.Group("/shipments")

	shipmentGroup.Post("/create", middleware.RequirePermissions(
		constants.ShipmentManagerPermissions...,
	), shipmentController.Store)

	shipmentGroup.Get("/", middleware.RequirePermissions(
		constants.ShipmentViewerPermissions...,
	), shipmentController.Index)

	shipmentGroup.Get("/:id", middleware.RequirePermissions(
		constants.ShipmentViewerPermissions...,
	), shipmentController.Show)

	/*=============================================================================
	| Tracking Routes
	===============================================================================*/
	trackingGroup := api.Group("/tracking")

	trackingGroup.Get("/shipment/:id", middleware.RequirePermissions(
		constants.ShipmentViewerPermissions...,
	), trackingController.GetShipmentTracking)

	trackingGroup.Post("/initialize", middleware.RequirePermissions(
		constants.ShipmentManagerPermissions...,
	), trackingController.Initialize)

	trackingGroup.Post("/advance", middleware.RequirePermissions(
		constants.ShipmentManagerPermissions...,
	), trackingController.Advance)

	trackingGroup.Post("/skip", middleware.RequirePermissions(
		constants.ShipmentManagerPermissions...,
	), trackingController.Skip)

	trackingGroup.Post("/update-stage", middleware.RequirePermissions(
		constants.ShipmentManagerPermissions...,
	), trackingController.UpdateStage)

	trackingGroup.Post("/assign-tracking-number", middleware.RequirePermissions(
		constants.ShipmentManagerPermissions...,
	), trackingController.AssignTrackingNumber)

	/*=============================================================================
	| Dashboard Routes
	===============================================================================*/
	dashboardGroup := api.Group("/dashboard")

	dashboardGroup.Get("/stats", middleware.RequirePermissions(
		constants.ShipmentViewerPermissions...,
	), dashboardController.Stats)
}
