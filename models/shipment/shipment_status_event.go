package shipment

import (
	"time"

	"cargo-tracking/models/user"
)

// ShipmentStatusEvent tracks status rollup history for a Shipment.
type ShipmentStatusEvent struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	ShipmentID uint     `gorm:"not null;index" json:"shipment_id"`
	Shipment   Shipment `gorm:"foreignKey:ShipmentID" json:"-"`

	Status    ShipmentStatus `gorm:"size:20;not null" json:"status"`
	CreatedBy uint           `gorm:"not null;index" json:"created_by"`
	User      user.User      `gorm:"foreignKey:CreatedBy" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the ShipmentStatusEvent model
func (ShipmentStatusEvent) TableName() string {
	return "shipment_status_events"
}
