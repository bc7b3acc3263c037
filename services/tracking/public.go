package tracking

import (
	"strings"

	shipmentModel "cargo-tracking/models/shipment"
	trackingTypes "cargo-tracking/types/tracking"
)

// ToPublicTrackingData projects a shipment and its stages onto the sanitized
// public schema. Internal notes, acting-user references and the consignee's
// full name are stripped; only the first token of the consignee survives.
func ToPublicTrackingData(shp *shipmentModel.Shipment) *trackingTypes.PublicTrackingData {
	sorted := SortStages(shp.TrackingStages)

	stages := make([]trackingTypes.PublicStageData, 0, len(sorted))
	for _, stage := range sorted {
		stages = append(stages, trackingTypes.PublicStageData{
			StageType:   stage.StageType,
			Status:      stage.Status,
			StartedAt:   stage.StartedAt,
			CompletedAt: stage.CompletedAt,
			EstimatedAt: stage.EstimatedAt,
		})
	}

	consigneeFirstName := ""
	if fields := strings.Fields(shp.Consignee); len(fields) > 0 {
		consigneeFirstName = fields[0]
	}

	trackingNumber := ""
	if shp.TrackingNumber != nil {
		trackingNumber = *shp.TrackingNumber
	}

	return &trackingTypes.PublicTrackingData{
		TrackingNumber:     trackingNumber,
		VesselName:         shp.VesselName,
		ContainerNumber:    shp.ContainerNumber,
		ConsigneeFirstName: consigneeFirstName,
		ShipmentType:       shp.Type.String(),
		CurrentStage:       CurrentStage(shp.TrackingStages),
		Stages:             stages,
		EstimatedDelivery:  EstimatedDelivery(shp.TrackingStages),
		Progress:           Progress(shp.TrackingStages),
	}
}
