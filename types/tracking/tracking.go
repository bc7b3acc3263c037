package tracking

import (
	"fmt"
	"time"

	trackingModel "cargo-tracking/models/tracking"

	"github.com/go-playground/validator/v10"
)

// InitializeTrackingRequest creates the full stage set for a shipment.
type InitializeTrackingRequest struct {
	ShipmentID uint `json:"shipment_id" validate:"required"`
}

func (req *InitializeTrackingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

// AdvanceStageRequest completes the active stage and starts the next one.
type AdvanceStageRequest struct {
	ShipmentID uint `json:"shipment_id" validate:"required"`
}

func (req *AdvanceStageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

// UpdateStageRequest is the payload for the free-form single-stage update.
type UpdateStageRequest struct {
	ShipmentID  uint       `json:"shipment_id" validate:"required"`
	StageType   string     `json:"stage_type" validate:"required"`
	Status      string     `json:"status" validate:"required"`
	Notes       *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	EstimatedAt *time.Time `json:"estimated_at,omitempty"`
}

func (req *UpdateStageRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !trackingModel.StageType(req.StageType).IsValid() {
		return fmt.Errorf("invalid stage type: %s", req.StageType)
	}
	if !trackingModel.StageStatus(req.Status).IsValid() {
		return fmt.Errorf("invalid stage status: %s", req.Status)
	}
	return nil
}

// SkipStageRequest marks a single stage as skipped.
type SkipStageRequest struct {
	ShipmentID uint   `json:"shipment_id" validate:"required"`
	StageType  string `json:"stage_type" validate:"required"`
}

func (req *SkipStageRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !trackingModel.StageType(req.StageType).IsValid() {
		return fmt.Errorf("invalid stage type: %s", req.StageType)
	}
	return nil
}

// ProgressData summarizes how far a shipment has moved through its stages.
type ProgressData struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// PublicStageData is the sanitized per-stage view. Notes and acting-user
// references never appear here.
type PublicStageData struct {
	StageType   trackingModel.StageType   `json:"stage_type"`
	Status      trackingModel.StageStatus `json:"status"`
	StartedAt   *time.Time                `json:"started_at,omitempty"`
	CompletedAt *time.Time                `json:"completed_at,omitempty"`
	EstimatedAt *time.Time                `json:"estimated_at,omitempty"`
}

// PublicTrackingData is everything an unauthenticated caller may see about
// a shipment when they know its tracking number.
type PublicTrackingData struct {
	TrackingNumber     string                  `json:"tracking_number"`
	VesselName         *string                 `json:"vessel_name,omitempty"`
	ContainerNumber    *string                 `json:"container_number,omitempty"`
	ConsigneeFirstName string                  `json:"consignee_first_name"`
	ShipmentType       string                  `json:"shipment_type"`
	CurrentStage       trackingModel.StageType `json:"current_stage"`
	Stages             []PublicStageData       `json:"stages"`
	EstimatedDelivery  *time.Time              `json:"estimated_delivery,omitempty"`
	Progress           ProgressData            `json:"progress"`
}

// InitializeResult reports the outcome of stage initialization.
type InitializeResult struct {
	TrackingNumber string `json:"tracking_number"`
	StagesCreated  int    `json:"stages_created"`
}

// AdvanceResult reports which stage was completed and which one started.
type AdvanceResult struct {
	CompletedStage trackingModel.StageType  `json:"completed_stage"`
	NextStage      *trackingModel.StageType `json:"next_stage,omitempty"`
}
