package shipment

import (
	"fmt"
	"time"

	shipmentModel "cargo-tracking/models/shipment"

	"github.com/go-playground/validator/v10"
)

// ShipmentCreateRequest is the payload for registering a new shipment.
type ShipmentCreateRequest struct {
	Type            string     `json:"type" validate:"required,oneof=IMPORT EXPORT"`
	Description     string     `json:"description" validate:"required,min=1"`
	Weight          float64    `json:"weight" validate:"omitempty,gte=0"`
	Quantity        int        `json:"quantity" validate:"omitempty,gte=0"`
	ContainerNumber string     `json:"container_number" validate:"omitempty,max=50"`
	VesselName      string     `json:"vessel_name" validate:"omitempty,max=255"`
	Consignor       string     `json:"consignor" validate:"required,min=1,max=255"`
	Consignee       string     `json:"consignee" validate:"required,min=1,max=255"`
	ArrivalDate     *time.Time `json:"arrival_date,omitempty"`
}

func (req *ShipmentCreateRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !shipmentModel.ShipmentType(req.Type).IsValid() {
		return fmt.Errorf("type must be either 'IMPORT' or 'EXPORT'")
	}
	return nil
}

// ShipmentListQuery carries the optional filters of the shipment index.
type ShipmentListQuery struct {
	Status string `query:"status" validate:"omitempty"`
}

func (q *ShipmentListQuery) Validate() error {
	if q.Status != "" && !shipmentModel.ShipmentStatus(q.Status).IsValid() {
		return fmt.Errorf("invalid shipment status: %s", q.Status)
	}
	return nil
}
