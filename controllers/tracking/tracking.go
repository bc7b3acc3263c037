package tracking

import (
	"errors"
	"fmt"

	"cargo-tracking/logger"
	trackingModel "cargo-tracking/models/tracking"
	trackingService "cargo-tracking/services/tracking"
	"cargo-tracking/types"
	trackingTypes "cargo-tracking/types/tracking"
	"cargo-tracking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TrackingController handles tracking-related HTTP requests
type TrackingController struct {
	DB             *gorm.DB
	Service        *trackingService.Service
	loggerInstance *logger.AsyncLogger
}

// NewTrackingController creates a new tracking controller
func NewTrackingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TrackingController {
	return &TrackingController{
		DB:             db,
		Service:        trackingService.NewTrackingService(db),
		loggerInstance: asyncLogger,
	}
}

// Helper function to send response and log in one call
func (tc *TrackingController) sendResponseWithLog(c *fiber.Ctx, status int, response types.ApiResponse) error {
	result := c.Status(status).JSON(response)
	tc.loggerInstance.Log(utils.CreateLogEntry(c))
	return result
}

// PublicTrack resolves a tracking number into the sanitized public view.
// No authentication: a miss renders not-found, never an error.
func (tc *TrackingController) PublicTrack(c *fiber.Ctx) error {
	trackingNumber := c.Params("trackingNumber")

	data, err := tc.Service.GetPublicTracking(trackingNumber)
	if err != nil {
		logger.Error("Failed to fetch public tracking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	if data == nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Tracking number not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tracking data retrieved successfully",
		Data:    data,
	})
}

// GetShipmentTracking returns the full tracking view of an owned shipment
func (tc *TrackingController) GetShipmentTracking(c *fiber.Ctx) error {
	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	shipmentID, err := c.ParamsInt("id")
	if err != nil || shipmentID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	shp, err := tc.Service.GetShipmentTracking(uint(shipmentID), caller.ID)
	if err != nil {
		return tc.mapServiceError(c, err, "Failed to fetch shipment tracking")
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipment tracking retrieved successfully",
		Data:    shp,
	})
}

// Initialize creates all tracking stages for a shipment
func (tc *TrackingController) Initialize(c *fiber.Ctx) error {
	var req trackingTypes.InitializeTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	result, err := tc.Service.InitializeStages(req.ShipmentID, caller.ID)
	if err != nil {
		return tc.mapServiceError(c, err, "Failed to initialize tracking stages")
	}

	logger.Success(fmt.Sprintf("Tracking initialized for shipment ID: %d (%s)", req.ShipmentID, result.TrackingNumber))

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tracking stages initialized successfully",
		Data:    result,
	})
}

// Advance completes the in-progress stage and starts the next one
func (tc *TrackingController) Advance(c *fiber.Ctx) error {
	var req trackingTypes.AdvanceStageRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	result, err := tc.Service.AdvanceToNextStage(req.ShipmentID, caller.ID)
	if err != nil {
		return tc.mapServiceError(c, err, "Failed to advance tracking stage")
	}

	logger.Success(fmt.Sprintf("Shipment ID %d advanced: completed %s", req.ShipmentID, result.CompletedStage))

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stage advanced successfully",
		Data:    result,
	})
}

// Skip marks a single stage as skipped without touching the schedule
func (tc *TrackingController) Skip(c *fiber.Ctx) error {
	var req trackingTypes.SkipStageRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	stage, err := tc.Service.SkipStage(req.ShipmentID, caller.ID, trackingModel.StageType(req.StageType))
	if err != nil {
		return tc.mapServiceError(c, err, "Failed to skip tracking stage")
	}

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stage skipped successfully",
		Data:    stage,
	})
}

// UpdateStage applies a free-form status change to one stage
func (tc *TrackingController) UpdateStage(c *fiber.Ctx) error {
	var req trackingTypes.UpdateStageRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	stage, err := tc.Service.UpdateStage(req.ShipmentID, caller.ID, req)
	if err != nil {
		return tc.mapServiceError(c, err, "Failed to update tracking stage")
	}

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Stage updated successfully",
		Data:    stage,
	})
}

// AssignTrackingNumber generates a tracking number for a shipment lacking one
func (tc *TrackingController) AssignTrackingNumber(c *fiber.Ctx) error {
	var req trackingTypes.InitializeTrackingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	number, err := tc.Service.AssignTrackingNumber(req.ShipmentID, caller.ID)
	if err != nil {
		return tc.mapServiceError(c, err, "Failed to assign tracking number")
	}

	return tc.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Tracking number assigned successfully",
		Data:    fiber.Map{"tracking_number": number},
	})
}

// mapServiceError translates tracking service errors into HTTP responses.
func (tc *TrackingController) mapServiceError(c *fiber.Ctx, err error, logMessage string) error {
	switch {
	case errors.Is(err, trackingService.ErrShipmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Shipment not found",
		})
	case errors.Is(err, trackingService.ErrStageNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Tracking stage not found",
		})
	case errors.Is(err, trackingService.ErrNoStageInProgress),
		errors.Is(err, trackingService.ErrMultipleStagesInProgress):
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: err.Error(),
		})
	default:
		logger.Error(logMessage, err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
