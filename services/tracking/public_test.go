package tracking

import (
	"testing"
	"time"

	shipmentModel "cargo-tracking/models/shipment"
	trackingModel "cargo-tracking/models/tracking"

	"github.com/stretchr/testify/require"
)

func TestToPublicTrackingData(t *testing.T) {
	trackingNumber := "TRK-ABC123"
	notes := "importer called, payment pending"
	vessel := "Ever Glory"
	container := "EGHU7654321"
	eta := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	shp := &shipmentModel.Shipment{
		TrackingNumber:  &trackingNumber,
		Type:            shipmentModel.ShipmentTypeImport,
		VesselName:      &vessel,
		ContainerNumber: &container,
		Consignee:       "Khartoum Motors Ltd",
		TrackingStages: []trackingModel.TrackingStage{
			{StageType: trackingModel.StageDelivered, Status: trackingModel.StageStatusPending, EstimatedAt: &eta},
			{StageType: trackingModel.StagePreArrivalDocs, Status: trackingModel.StageStatusCompleted, Notes: &notes, UpdatedByID: ptrUint(7)},
			{StageType: trackingModel.StageVesselArrival, Status: trackingModel.StageStatusInProgress},
		},
	}

	data := ToPublicTrackingData(shp)

	require.Equal(t, "TRK-ABC123", data.TrackingNumber)
	require.Equal(t, "Khartoum", data.ConsigneeFirstName)
	require.Equal(t, "IMPORT", data.ShipmentType)
	require.Equal(t, trackingModel.StageVesselArrival, data.CurrentStage)

	require.Len(t, data.Stages, 3)
	require.Equal(t, trackingModel.StagePreArrivalDocs, data.Stages[0].StageType)
	require.Equal(t, trackingModel.StageDelivered, data.Stages[2].StageType)

	require.NotNil(t, data.EstimatedDelivery)
	require.True(t, data.EstimatedDelivery.Equal(eta))
	require.Equal(t, 1, data.Progress.Completed)
	require.Equal(t, 3, data.Progress.Total)
}

func TestToPublicTrackingDataEmptyFields(t *testing.T) {
	data := ToPublicTrackingData(&shipmentModel.Shipment{
		Type:      shipmentModel.ShipmentTypeExport,
		Consignee: "",
	})

	require.Equal(t, "", data.TrackingNumber)
	require.Equal(t, "", data.ConsigneeFirstName)
	require.Empty(t, data.Stages)
	require.Nil(t, data.EstimatedDelivery)
}

func ptrUint(v uint) *uint { return &v }
