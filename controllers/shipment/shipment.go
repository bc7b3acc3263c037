package shipment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cargo-tracking/logger"
	shipmentModel "cargo-tracking/models/shipment"
	trackingService "cargo-tracking/services/tracking"
	"cargo-tracking/types"
	shipmentTypes "cargo-tracking/types/shipment"
	"cargo-tracking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const shipmentNumberAttempts = 3

var errShipmentNumberExhausted = errors.New("could not allocate a unique shipment number")

// ShipmentController handles shipment-related HTTP requests
type ShipmentController struct {
	DB       *gorm.DB
	Logger   *logger.AsyncLogger
	Tracking *trackingService.Service
}

// NewShipmentController creates a new shipment controller
func NewShipmentController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ShipmentController {
	return &ShipmentController{
		DB:       db,
		Logger:   asyncLogger,
		Tracking: trackingService.NewTrackingService(db),
	}
}

// Store creates a new shipment and initializes its tracking stages
func (sc *ShipmentController) Store(c *fiber.Ctx) error {
	var req shipmentTypes.ShipmentCreateRequest
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

	var shp shipmentModel.Shipment

	// Use DB.Transaction for automatic rollback on error
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		// Two concurrent creates can observe the same max suffix; the
		// savepoint per attempt lets the loser re-read and retry instead
		// of surfacing the unique violation.
		for attempt := 0; attempt < shipmentNumberAttempts; attempt++ {
			number, err := nextShipmentNumber(tx)
			if err != nil {
				return err
			}

			shp = shipmentModel.Shipment{
				UserID:         caller.ID,
				ShipmentNumber: number,
				Type:           shipmentModel.ShipmentType(req.Type),
				Status:         shipmentModel.ShipmentStatusPending,
				Description:    req.Description,
				Weight:         req.Weight,
				Quantity:       req.Quantity,
				Consignor:      req.Consignor,
				Consignee:      req.Consignee,
				ArrivalDate:    req.ArrivalDate,
			}
			if req.ContainerNumber != "" {
				shp.ContainerNumber = &req.ContainerNumber
			}
			if req.VesselName != "" {
				shp.VesselName = &req.VesselName
			}

			err = tx.Transaction(func(ptx *gorm.DB) error {
				return ptx.Create(&shp).Error
			})
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}
		return errShipmentNumberExhausted
	})
	if err != nil {
		logger.Error("Failed to create shipment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save shipment",
		})
	}

	// Seed the tracking stage set right away so the shipment is trackable
	// from the moment it exists.
	initResult, err := sc.Tracking.InitializeStages(shp.ID, caller.ID)
	if err != nil {
		logger.Error("Failed to initialize tracking stages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Shipment created but tracking initialization failed",
			Data:    shp,
		})
	}

	logger.Success(fmt.Sprintf("Shipment created successfully with number: %s", shp.ShipmentNumber))

	var created shipmentModel.Shipment
	if err := sc.DB.Preload("TrackingStages").First(&created, shp.ID).Error; err != nil {
		logger.Error("Failed to load created shipment data", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Shipment created but failed to retrieve complete data",
		})
	}
	created.TrackingStages = trackingService.SortStages(created.TrackingStages)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Shipment created successfully",
		Data: fiber.Map{
			"shipment":        created,
			"tracking_number": initResult.TrackingNumber,
			"stages_created":  initResult.StagesCreated,
		},
	})
}

// Index lists the caller's shipments, optionally filtered by status
func (sc *ShipmentController) Index(c *fiber.Ctx) error {
	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	var query shipmentTypes.ShipmentListQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid query parameters",
		})
	}
	if err := query.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	db := sc.DB.Where("user_id = ?", caller.ID)
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var shipments []shipmentModel.Shipment
	if err := db.Order("created_at DESC").Find(&shipments).Error; err != nil {
		logger.Error("Failed to fetch shipments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipments retrieved successfully",
		Data:    shipments,
	})
}

// Show returns one owned shipment with its tracking stages
func (sc *ShipmentController) Show(c *fiber.Ctx) error {
	caller, err := utils.CallerFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: err.Error(),
		})
	}

	shipmentID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid shipment id",
		})
	}

	shp, err := sc.Tracking.GetShipmentTracking(uint(shipmentID), caller.ID)
	if err != nil {
		if errors.Is(err, trackingService.ErrShipmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Shipment not found",
			})
		}
		logger.Error("Failed to fetch shipment", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Shipment retrieved successfully",
		Data:    shp,
	})
}

// nextShipmentNumber produces SHP-<year>-<NNN> from the yearly sequence.
// The suffix comes from the highest existing number, not a row count, so
// removed rows never cause a reissue. Suffixes can outgrow three digits, so
// ordering goes by length before value.
func nextShipmentNumber(tx *gorm.DB) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("SHP-%d-", year)

	var numbers []string
	err := tx.Model(&shipmentModel.Shipment{}).
		Where("shipment_number LIKE ?", prefix+"%").
		Order("LENGTH(shipment_number) DESC, shipment_number DESC").
		Limit(1).
		Pluck("shipment_number", &numbers).Error
	if err != nil {
		return "", err
	}

	next := 1
	if len(numbers) > 0 {
		suffix, err := strconv.Atoi(strings.TrimPrefix(numbers[0], prefix))
		if err != nil {
			return "", fmt.Errorf("malformed shipment number %q: %w", numbers[0], err)
		}
		next = suffix + 1
	}

	return fmt.Sprintf("%s%03d", prefix, next), nil
}
