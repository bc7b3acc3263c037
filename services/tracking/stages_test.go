package tracking

import (
	"testing"
	"time"

	trackingModel "cargo-tracking/models/tracking"

	"github.com/stretchr/testify/require"
)

func fullStageSet(statuses map[trackingModel.StageType]trackingModel.StageStatus) []trackingModel.TrackingStage {
	var stages []trackingModel.TrackingStage
	for _, st := range trackingModel.StageTypesInOrder() {
		status, ok := statuses[st]
		if !ok {
			status = trackingModel.StageStatusPending
		}
		stages = append(stages, trackingModel.TrackingStage{StageType: st, Status: status})
	}
	return stages
}

func TestCurrentStagePrefersInProgress(t *testing.T) {
	stages := fullStageSet(map[trackingModel.StageType]trackingModel.StageStatus{
		trackingModel.StagePreArrivalDocs:     trackingModel.StageStatusCompleted,
		trackingModel.StageVesselArrival:      trackingModel.StageStatusCompleted,
		trackingModel.StageCustomsDeclaration: trackingModel.StageStatusInProgress,
	})
	require.Equal(t, trackingModel.StageCustomsDeclaration, CurrentStage(stages))
}

func TestCurrentStageFallsBackToFirstPending(t *testing.T) {
	stages := fullStageSet(map[trackingModel.StageType]trackingModel.StageStatus{
		trackingModel.StagePreArrivalDocs: trackingModel.StageStatusCompleted,
		trackingModel.StageVesselArrival:  trackingModel.StageStatusSkipped,
	})
	require.Equal(t, trackingModel.StageCustomsDeclaration, CurrentStage(stages))
}

func TestCurrentStageTerminalWhenAllDone(t *testing.T) {
	done := map[trackingModel.StageType]trackingModel.StageStatus{}
	for _, st := range trackingModel.StageTypesInOrder() {
		done[st] = trackingModel.StageStatusCompleted
	}
	require.Equal(t, trackingModel.StageDelivered, CurrentStage(fullStageSet(done)))
	require.Equal(t, trackingModel.StageDelivered, CurrentStage(nil))
}

func TestNextStage(t *testing.T) {
	next, ok := NextStage(trackingModel.StagePreArrivalDocs)
	require.True(t, ok)
	require.Equal(t, trackingModel.StageVesselArrival, next)

	next, ok = NextStage(trackingModel.StageInTransit)
	require.True(t, ok)
	require.Equal(t, trackingModel.StageDelivered, next)

	_, ok = NextStage(trackingModel.StageDelivered)
	require.False(t, ok)

	_, ok = NextStage(trackingModel.StageType("BOGUS"))
	require.False(t, ok)
}

func TestProgressCountsSkippedAsDone(t *testing.T) {
	stages := fullStageSet(map[trackingModel.StageType]trackingModel.StageStatus{
		trackingModel.StagePreArrivalDocs:     trackingModel.StageStatusCompleted,
		trackingModel.StageVesselArrival:      trackingModel.StageStatusCompleted,
		trackingModel.StageCustomsDeclaration: trackingModel.StageStatusCompleted,
		trackingModel.StageCustomsPayment:     trackingModel.StageStatusSkipped,
		trackingModel.StageInspection:         trackingModel.StageStatusInProgress,
	})

	progress := Progress(stages)
	require.Equal(t, 4, progress.Completed)
	require.Equal(t, 11, progress.Total)
	require.Equal(t, 36, progress.Percentage)
}

func TestProgressEmpty(t *testing.T) {
	progress := Progress(nil)
	require.Equal(t, 0, progress.Completed)
	require.Equal(t, 0, progress.Total)
	require.Equal(t, 0, progress.Percentage)
}

func TestEstimatedDelivery(t *testing.T) {
	eta := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	actual := time.Date(2025, 3, 30, 15, 0, 0, 0, time.UTC)

	t.Run("uses completion time when delivered", func(t *testing.T) {
		stages := []trackingModel.TrackingStage{
			{StageType: trackingModel.StageDelivered, Status: trackingModel.StageStatusCompleted, EstimatedAt: &eta, CompletedAt: &actual},
		}
		got := EstimatedDelivery(stages)
		require.NotNil(t, got)
		require.True(t, got.Equal(actual))
	})

	t.Run("falls back to the ETA", func(t *testing.T) {
		stages := []trackingModel.TrackingStage{
			{StageType: trackingModel.StageDelivered, Status: trackingModel.StageStatusPending, EstimatedAt: &eta},
		}
		got := EstimatedDelivery(stages)
		require.NotNil(t, got)
		require.True(t, got.Equal(eta))
	})

	t.Run("nil without a delivery stage", func(t *testing.T) {
		require.Nil(t, EstimatedDelivery(nil))
		require.Nil(t, EstimatedDelivery([]trackingModel.TrackingStage{
			{StageType: trackingModel.StageLoading, EstimatedAt: &eta},
		}))
	})
}

func TestSortStagesByCatalogOrder(t *testing.T) {
	stages := []trackingModel.TrackingStage{
		{StageType: trackingModel.StageDelivered},
		{StageType: trackingModel.StagePreArrivalDocs},
		{StageType: trackingModel.StageInspection},
	}

	sorted := SortStages(stages)
	require.Equal(t, trackingModel.StagePreArrivalDocs, sorted[0].StageType)
	require.Equal(t, trackingModel.StageInspection, sorted[1].StageType)
	require.Equal(t, trackingModel.StageDelivered, sorted[2].StageType)

	// Input slice is left untouched.
	require.Equal(t, trackingModel.StageDelivered, stages[0].StageType)
}
