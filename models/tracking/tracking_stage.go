package tracking

import (
	"time"

	"cargo-tracking/models/user"
)

// TrackingStage is one row per shipment and stage type. The pair is unique;
// all 11 rows are created together when tracking is initialized.
type TrackingStage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ShipmentID uint      `gorm:"not null;uniqueIndex:idx_tracking_stages_shipment_stage" json:"shipment_id"`
	StageType  StageType `gorm:"size:32;not null;uniqueIndex:idx_tracking_stages_shipment_stage" json:"stage_type"`

	Status      StageStatus `gorm:"size:20;not null;default:PENDING" json:"status"`
	StartedAt   *time.Time  `json:"started_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	EstimatedAt *time.Time  `json:"estimated_at,omitempty"`
	Notes       *string     `gorm:"type:text" json:"notes,omitempty"`

	UpdatedByID *uint      `gorm:"index" json:"updated_by_id,omitempty"`
	UpdatedBy   *user.User `gorm:"foreignKey:UpdatedByID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the TrackingStage model
func (TrackingStage) TableName() string {
	return "tracking_stages"
}
