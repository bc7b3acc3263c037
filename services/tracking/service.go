package tracking

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	shipmentModel "cargo-tracking/models/shipment"
	trackingModel "cargo-tracking/models/tracking"
	trackingTypes "cargo-tracking/types/tracking"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	trackingNumberPrefix   = "TRK-"
	trackingNumberCharset  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingNumberLength   = 6
	trackingNumberAttempts = 5
)

// Service handles tracking stage operations
type Service struct {
	DB *gorm.DB

	// newNumber produces tracking number candidates; swappable in tests.
	newNumber func() (string, error)
}

// NewTrackingService creates a new tracking service
func NewTrackingService(db *gorm.DB) *Service {
	s := &Service{DB: db}
	s.newNumber = s.GenerateTrackingNumber
	return s
}

// GenerateTrackingNumber generates a random tracking number in the
// TRK-XXXXXX format, 6 characters drawn from [A-Z0-9].
func (s *Service) GenerateTrackingNumber() (string, error) {
	number := trackingNumberPrefix
	charsetLen := big.NewInt(int64(len(trackingNumberCharset)))

	for i := 0; i < trackingNumberLength; i++ {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			return "", err
		}
		number += string(trackingNumberCharset[n.Int64()])
	}

	return number, nil
}

// InitializeStages creates the full stage set for a shipment in one
// transaction. Safe to call twice: existing rows are skipped, never
// duplicated. Assigns a tracking number when the shipment has none, and
// seeds ETAs from the arrival date when it is known.
func (s *Service) InitializeStages(shipmentID, userID uint) (*trackingTypes.InitializeResult, error) {
	var result trackingTypes.InitializeResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		shp, err := s.findOwnedShipment(tx, shipmentID, userID, false)
		if err != nil {
			return err
		}

		etas := make(map[trackingModel.StageType]time.Time)
		if shp.ArrivalDate != nil {
			etas = CalculateInitialETAs(*shp.ArrivalDate)
		}

		if shp.TrackingNumber == nil {
			if err := s.assignNumberWithRetry(tx, shp); err != nil {
				return err
			}
		}

		now := time.Now()
		stages := make([]trackingModel.TrackingStage, 0, trackingModel.StageCount())
		for i, stageType := range trackingModel.StageTypesInOrder() {
			stage := trackingModel.TrackingStage{
				ShipmentID: shipmentID,
				StageType:  stageType,
				Status:     trackingModel.StageStatusPending,
			}
			if i == 0 {
				// The first stage starts immediately.
				stage.Status = trackingModel.StageStatusInProgress
				stage.StartedAt = &now
			}
			if eta, ok := etas[stageType]; ok {
				etaCopy := eta
				stage.EstimatedAt = &etaCopy
			}
			stages = append(stages, stage)
		}

		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&stages)
		if res.Error != nil {
			return res.Error
		}

		result = trackingTypes.InitializeResult{
			TrackingNumber: *shp.TrackingNumber,
			StagesCreated:  int(res.RowsAffected),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// AssignTrackingNumber generates and persists a unique tracking number for
// a shipment that has none. Returns the existing number when already set.
func (s *Service) AssignTrackingNumber(shipmentID, userID uint) (string, error) {
	var number string

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		shp, err := s.findOwnedShipment(tx, shipmentID, userID, false)
		if err != nil {
			return err
		}

		if shp.TrackingNumber != nil {
			number = *shp.TrackingNumber
			return nil
		}

		if err := s.assignNumberWithRetry(tx, shp); err != nil {
			return err
		}
		number = *shp.TrackingNumber
		return nil
	})
	if err != nil {
		return "", err
	}

	return number, nil
}

// AdvanceToNextStage completes the single in-progress stage, starts the
// next one, rolls up the shipment status and reschedules the remaining
// ETAs, all as one transaction.
func (s *Service) AdvanceToNextStage(shipmentID, userID uint) (*trackingTypes.AdvanceResult, error) {
	var result trackingTypes.AdvanceResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		shp, err := s.findOwnedShipment(tx, shipmentID, userID, true)
		if err != nil {
			return err
		}

		var current *trackingModel.TrackingStage
		inProgress := 0
		for i := range shp.TrackingStages {
			if shp.TrackingStages[i].Status == trackingModel.StageStatusInProgress {
				inProgress++
				current = &shp.TrackingStages[i]
			}
		}
		if inProgress == 0 {
			return ErrNoStageInProgress
		}
		if inProgress > 1 {
			return ErrMultipleStagesInProgress
		}

		now := time.Now()
		if err := tx.Model(&trackingModel.TrackingStage{}).
			Where("shipment_id = ? AND stage_type = ?", shipmentID, current.StageType).
			Updates(map[string]interface{}{
				"status":        trackingModel.StageStatusCompleted,
				"completed_at":  now,
				"updated_by_id": userID,
			}).Error; err != nil {
			return err
		}

		nextStage, hasNext := NextStage(current.StageType)
		if hasNext {
			if err := tx.Model(&trackingModel.TrackingStage{}).
				Where("shipment_id = ? AND stage_type = ?", shipmentID, nextStage).
				Updates(map[string]interface{}{
					"status":        trackingModel.StageStatusInProgress,
					"started_at":    now,
					"updated_by_id": userID,
				}).Error; err != nil {
				return err
			}
		}

		newStatus := shipmentStatusAfterAdvance(current.StageType, nextStage, hasNext)
		if newStatus != shp.Status {
			if err := s.rollupShipmentStatus(tx, shp, newStatus, userID); err != nil {
				return err
			}
		}

		current.Status = trackingModel.StageStatusCompleted
		current.CompletedAt = &now
		if err := s.persistRecalculatedETAs(tx, shipmentID, shp.TrackingStages, current.StageType); err != nil {
			return err
		}

		result = trackingTypes.AdvanceResult{CompletedStage: current.StageType}
		if hasNext {
			result.NextStage = &nextStage
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// SkipStage marks a single stage as skipped. It deliberately leaves the
// schedule, the next stage and the shipment status untouched: skipping is
// an administrative correction, not a progression.
func (s *Service) SkipStage(shipmentID, userID uint, stageType trackingModel.StageType) (*trackingModel.TrackingStage, error) {
	if _, err := s.findOwnedShipment(s.DB, shipmentID, userID, false); err != nil {
		return nil, err
	}

	res := s.DB.Model(&trackingModel.TrackingStage{}).
		Where("shipment_id = ? AND stage_type = ?", shipmentID, stageType).
		Updates(map[string]interface{}{
			"status":        trackingModel.StageStatusSkipped,
			"updated_by_id": userID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrStageNotFound
	}

	var stage trackingModel.TrackingStage
	if err := s.DB.Where("shipment_id = ? AND stage_type = ?", shipmentID, stageType).First(&stage).Error; err != nil {
		return nil, err
	}
	return &stage, nil
}

// UpdateStage applies a free-form status change to one stage. Timestamps
// follow the new status, and completing a stage reschedules everything
// after it. This entry point does not enforce the single-active-stage rule;
// it exists so operators can correct tracking state by hand.
func (s *Service) UpdateStage(shipmentID, userID uint, req trackingTypes.UpdateStageRequest) (*trackingModel.TrackingStage, error) {
	var updated trackingModel.TrackingStage

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		shp, err := s.findOwnedShipment(tx, shipmentID, userID, true)
		if err != nil {
			return err
		}

		stageType := trackingModel.StageType(req.StageType)
		var stage *trackingModel.TrackingStage
		for i := range shp.TrackingStages {
			if shp.TrackingStages[i].StageType == stageType {
				stage = &shp.TrackingStages[i]
				break
			}
		}
		if stage == nil {
			return ErrStageNotFound
		}

		now := time.Now()
		newStatus := trackingModel.StageStatus(req.Status)

		updates := map[string]interface{}{
			"status":        newStatus,
			"updated_by_id": userID,
		}
		switch newStatus {
		case trackingModel.StageStatusInProgress:
			updates["started_at"] = now
			stage.StartedAt = &now
		case trackingModel.StageStatusCompleted:
			updates["completed_at"] = now
			stage.CompletedAt = &now
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
			stage.Notes = req.Notes
		}
		if req.EstimatedAt != nil {
			updates["estimated_at"] = *req.EstimatedAt
			stage.EstimatedAt = req.EstimatedAt
		}

		if err := tx.Model(&trackingModel.TrackingStage{}).
			Where("shipment_id = ? AND stage_type = ?", shipmentID, stageType).
			Updates(updates).Error; err != nil {
			return err
		}
		stage.Status = newStatus

		if newStatus == trackingModel.StageStatusCompleted {
			if err := s.persistRecalculatedETAs(tx, shipmentID, shp.TrackingStages, stageType); err != nil {
				return err
			}
		}

		return tx.Where("shipment_id = ? AND stage_type = ?", shipmentID, stageType).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// GetShipmentTracking returns the full, unsanitized tracking view of an
// owned shipment, stages in catalog order.
func (s *Service) GetShipmentTracking(shipmentID, userID uint) (*shipmentModel.Shipment, error) {
	shp, err := s.findOwnedShipment(s.DB, shipmentID, userID, true)
	if err != nil {
		return nil, err
	}
	shp.TrackingStages = SortStages(shp.TrackingStages)
	return shp, nil
}

// GetPublicTracking resolves a tracking number to the sanitized public
// view. A miss is a normal outcome and yields nil, not an error.
func (s *Service) GetPublicTracking(trackingNumber string) (*trackingTypes.PublicTrackingData, error) {
	var shp shipmentModel.Shipment
	err := s.DB.Preload("TrackingStages").
		Where("tracking_number = ?", trackingNumber).
		First(&shp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return ToPublicTrackingData(&shp), nil
}

func (s *Service) findOwnedShipment(tx *gorm.DB, shipmentID, userID uint, withStages bool) (*shipmentModel.Shipment, error) {
	query := tx.Where("id = ? AND user_id = ?", shipmentID, userID)
	if withStages {
		query = query.Preload("TrackingStages")
	}

	var shp shipmentModel.Shipment
	if err := query.First(&shp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShipmentNotFound
		}
		return nil, err
	}
	return &shp, nil
}

// assignNumberWithRetry generates numbers until one survives the unique
// constraint, bounded by a small attempt count.
func (s *Service) assignNumberWithRetry(tx *gorm.DB, shp *shipmentModel.Shipment) error {
	for attempt := 0; attempt < trackingNumberAttempts; attempt++ {
		number, err := s.newNumber()
		if err != nil {
			return err
		}

		// On Postgres a unique violation aborts the whole surrounding
		// transaction, so each attempt runs under its own savepoint and
		// only the failed update is rolled back before the retry.
		err = tx.Transaction(func(ptx *gorm.DB) error {
			return ptx.Model(&shipmentModel.Shipment{}).
				Where("id = ?", shp.ID).
				Update("tracking_number", number).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return err
		}

		shp.TrackingNumber = &number
		return nil
	}

	return ErrTrackingNumberExhausted
}

func (s *Service) rollupShipmentStatus(tx *gorm.DB, shp *shipmentModel.Shipment, status shipmentModel.ShipmentStatus, userID uint) error {
	if err := tx.Model(&shipmentModel.Shipment{}).
		Where("id = ?", shp.ID).
		Update("status", status).Error; err != nil {
		return err
	}
	shp.Status = status

	event := shipmentModel.ShipmentStatusEvent{
		ShipmentID: shp.ID,
		Status:     status,
		CreatedBy:  userID,
	}
	return tx.Create(&event).Error
}

func (s *Service) persistRecalculatedETAs(tx *gorm.DB, shipmentID uint, stages []trackingModel.TrackingStage, completedStageType trackingModel.StageType) error {
	for stageType, eta := range RecalculateRemainingETAs(stages, completedStageType) {
		if err := tx.Model(&trackingModel.TrackingStage{}).
			Where("shipment_id = ? AND stage_type = ?", shipmentID, stageType).
			Update("estimated_at", eta).Error; err != nil {
			return fmt.Errorf("failed to update ETA for stage %s: %w", stageType, err)
		}
	}
	return nil
}

// shipmentStatusAfterAdvance maps the stage transition onto the shipment's
// coarse status. The switch is exhaustive over the stage types that can be
// the next stage.
func shipmentStatusAfterAdvance(completed trackingModel.StageType, next trackingModel.StageType, hasNext bool) shipmentModel.ShipmentStatus {
	if completed == trackingModel.StageDelivered || !hasNext {
		return shipmentModel.ShipmentStatusDelivered
	}

	switch next {
	case trackingModel.StageInTransit, trackingModel.StageLoading:
		return shipmentModel.ShipmentStatusCleared
	case trackingModel.StageCustomsDeclaration,
		trackingModel.StageCustomsPayment,
		trackingModel.StageInspection,
		trackingModel.StagePortFees,
		trackingModel.StageQualityStandards,
		trackingModel.StageRelease:
		return shipmentModel.ShipmentStatusArrived
	case trackingModel.StageVesselArrival:
		return shipmentModel.ShipmentStatusInTransit
	default:
		return shipmentModel.ShipmentStatusPending
	}
}
