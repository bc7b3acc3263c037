package dashboard

import (
	"time"

	"cargo-tracking/logger"
	shipmentModel "cargo-tracking/models/shipment"
	"cargo-tracking/types"
	"cargo-tracking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// DashboardController serves the summary cards of the dashboard page
type DashboardController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *DashboardController {
	return &DashboardController{DB: db, Logger: asyncLogger}
}

// Stats returns shipment counts for the caller: totals, per status, active
// and this-month figures.
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	owned := func() *gorm.DB {
		return dc.DB.Model(&shipmentModel.Shipment{}).Where("user_id = ?", caller.ID)
	}

	var total int64
	if err := owned().Count(&total).Error; err != nil {
		logger.Error("Failed to count shipments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	byStatus := make(map[string]int64, len(shipmentModel.GetAllShipmentStatuses()))
	for _, status := range shipmentModel.GetAllShipmentStatuses() {
		var count int64
		if err := owned().Where("status = ?", status).Count(&count).Error; err != nil {
			logger.Error("Failed to count shipments by status", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Database error",
			})
		}
		byStatus[status.String()] = count
	}

	active := total - byStatus[shipmentModel.ShipmentStatusDelivered.String()]

	monthStart := now.With(time.Now()).BeginningOfMonth()

	var createdThisMonth int64
	if err := owned().Where("created_at >= ?", monthStart).Count(&createdThisMonth).Error; err != nil {
		logger.Error("Failed to count this month's shipments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var deliveredThisMonth int64
	err = dc.DB.Model(&shipmentModel.ShipmentStatusEvent{}).
		Joins("JOIN shipments ON shipments.id = shipment_status_events.shipment_id").
		Where("shipments.user_id = ?", caller.ID).
		Where("shipment_status_events.status = ?", shipmentModel.ShipmentStatusDelivered).
		Where("shipment_status_events.created_at >= ?", monthStart).
		Count(&deliveredThisMonth).Error
	if err != nil {
		logger.Error("Failed to count deliveries this month", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard stats retrieved successfully",
		Data: fiber.Map{
			"total":                total,
			"active":               active,
			"by_status":            byStatus,
			"created_this_month":   createdThisMonth,
			"delivered_this_month": deliveredThisMonth,
		},
	})
}
