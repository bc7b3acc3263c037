package tracking

import (
	"testing"
	"time"

	trackingModel "cargo-tracking/models/tracking"

	"github.com/stretchr/testify/require"
)

func TestCalculateInitialETAs(t *testing.T) {
	arrival := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	etas := CalculateInitialETAs(arrival)

	require.Len(t, etas, trackingModel.StageCount())

	expected := map[trackingModel.StageType]time.Time{
		trackingModel.StagePreArrivalDocs:     arrival.Add(-24 * time.Hour),
		trackingModel.StageVesselArrival:      arrival,
		trackingModel.StageCustomsDeclaration: arrival.Add(24 * time.Hour),
		trackingModel.StageCustomsPayment:     arrival.Add(36 * time.Hour),
		trackingModel.StageInspection:         arrival.Add(84 * time.Hour),
		trackingModel.StagePortFees:           arrival.Add(96 * time.Hour),
		trackingModel.StageQualityStandards:   arrival.Add(120 * time.Hour),
		trackingModel.StageRelease:            arrival.Add(132 * time.Hour),
		trackingModel.StageLoading:            arrival.Add(138 * time.Hour),
		trackingModel.StageInTransit:          arrival.Add(162 * time.Hour),
		trackingModel.StageDelivered:          arrival.Add(162 * time.Hour),
	}
	for st, want := range expected {
		require.True(t, etas[st].Equal(want), "ETA of %s, got %s want %s", st, etas[st], want)
	}
}

func TestCalculateInitialETAsMonotonicFromArrival(t *testing.T) {
	arrival := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	etas := CalculateInitialETAs(arrival)

	prev := arrival
	for _, st := range trackingModel.StageTypesInOrder() {
		if st == trackingModel.StagePreArrivalDocs {
			require.True(t, etas[st].Before(arrival))
			continue
		}
		require.False(t, etas[st].Before(prev), "ETA of %s went backwards", st)
		prev = etas[st]
	}
}

func TestRecalculateRemainingETAs(t *testing.T) {
	completedAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	stages := stagesUpTo(trackingModel.StageCustomsPayment, completedAt)

	etas := RecalculateRemainingETAs(stages, trackingModel.StageCustomsPayment)

	// Only the seven stages after CUSTOMS_PAYMENT get rescheduled.
	require.Len(t, etas, 7)
	require.NotContains(t, etas, trackingModel.StageCustomsPayment)
	require.NotContains(t, etas, trackingModel.StagePreArrivalDocs)

	require.True(t, etas[trackingModel.StageInspection].Equal(completedAt.Add(48*time.Hour)))
	require.True(t, etas[trackingModel.StagePortFees].Equal(completedAt.Add(60*time.Hour)))
	require.True(t, etas[trackingModel.StageDelivered].Equal(completedAt.Add(126*time.Hour)))
}

func TestRecalculateRemainingETAsNeedsCompletionTime(t *testing.T) {
	stages := []trackingModel.TrackingStage{
		{StageType: trackingModel.StageCustomsPayment, Status: trackingModel.StageStatusInProgress},
	}

	// Stage present but not completed yet.
	require.Empty(t, RecalculateRemainingETAs(stages, trackingModel.StageCustomsPayment))
	// Stage missing entirely.
	require.Empty(t, RecalculateRemainingETAs(stages, trackingModel.StageRelease))
}

func TestRecalculateRemainingETAsAfterTerminalStage(t *testing.T) {
	completedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	stages := stagesUpTo(trackingModel.StageDelivered, completedAt)

	require.Empty(t, RecalculateRemainingETAs(stages, trackingModel.StageDelivered))
}

// stagesUpTo builds a full stage slice where everything up to and including
// the given stage is completed at the given time.
func stagesUpTo(last trackingModel.StageType, completedAt time.Time) []trackingModel.TrackingStage {
	lastOrder := trackingModel.OrderOf(last)
	var stages []trackingModel.TrackingStage
	for _, st := range trackingModel.StageTypesInOrder() {
		stage := trackingModel.TrackingStage{StageType: st, Status: trackingModel.StageStatusPending}
		if trackingModel.OrderOf(st) <= lastOrder {
			done := completedAt
			stage.Status = trackingModel.StageStatusCompleted
			stage.CompletedAt = &done
		}
		stages = append(stages, stage)
	}
	return stages
}
