package shipment

import (
	"time"

	"cargo-tracking/models/tracking"
	"cargo-tracking/models/user"
)

// Shipment represents one consignment moving through port clearance.
type Shipment struct {
	ID     uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"-"`

	ShipmentNumber string  `gorm:"type:varchar(50);not null;unique" json:"shipment_number"`
	TrackingNumber *string `gorm:"type:varchar(20);uniqueIndex" json:"tracking_number,omitempty"`

	Type        ShipmentType   `gorm:"size:20;not null;default:IMPORT" json:"type"`
	Status      ShipmentStatus `gorm:"size:20;not null;default:PENDING" json:"status"`
	Description string         `gorm:"type:text" json:"description"`

	Weight          float64 `gorm:"type:decimal(10,2)" json:"weight"`
	Quantity        int     `gorm:"type:int" json:"quantity"`
	ContainerNumber *string `gorm:"type:varchar(50)" json:"container_number,omitempty"`
	VesselName      *string `gorm:"type:varchar(255)" json:"vessel_name,omitempty"`

	Consignor string `gorm:"type:varchar(255);not null" json:"consignor"`
	Consignee string `gorm:"type:varchar(255);not null" json:"consignee"`

	ArrivalDate *time.Time `json:"arrival_date,omitempty"`

	TrackingStages []tracking.TrackingStage `gorm:"foreignKey:ShipmentID" json:"tracking_stages,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"` // Soft delete field
}

// TableName sets the table name for the Shipment model
func (Shipment) TableName() string {
	return "shipments"
}
