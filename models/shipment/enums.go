package shipment

// ShipmentType distinguishes import and export consignments.
type ShipmentType string

const (
	ShipmentTypeImport ShipmentType = "IMPORT"
	ShipmentTypeExport ShipmentType = "EXPORT"
)

func (st ShipmentType) String() string {
	return string(st)
}

func (st ShipmentType) IsValid() bool {
	return st == ShipmentTypeImport || st == ShipmentTypeExport
}

// ShipmentStatus is the coarse rollup derived from the tracking stages.
type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "PENDING"
	ShipmentStatusInTransit ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusArrived   ShipmentStatus = "ARRIVED"
	ShipmentStatusCleared   ShipmentStatus = "CLEARED"
	ShipmentStatusDelivered ShipmentStatus = "DELIVERED"
)

func (ss ShipmentStatus) String() string {
	return string(ss)
}

func (ss ShipmentStatus) IsValid() bool {
	switch ss {
	case ShipmentStatusPending, ShipmentStatusInTransit, ShipmentStatusArrived, ShipmentStatusCleared, ShipmentStatusDelivered:
		return true
	default:
		return false
	}
}

// IsCompleted returns true if the shipment reached its terminal status
func (ss ShipmentStatus) IsCompleted() bool {
	return ss == ShipmentStatusDelivered
}

// GetAllShipmentStatuses returns all valid shipment statuses
func GetAllShipmentStatuses() []ShipmentStatus {
	return []ShipmentStatus{
		ShipmentStatusPending,
		ShipmentStatusInTransit,
		ShipmentStatusArrived,
		ShipmentStatusCleared,
		ShipmentStatusDelivered,
	}
}
