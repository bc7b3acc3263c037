package tracking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageCatalogOrderMatchesPosition(t *testing.T) {
	ordered := StageTypesInOrder()
	require.Len(t, ordered, StageCount())

	seen := map[StageType]bool{}
	for i, st := range ordered {
		require.True(t, st.IsValid(), "stage %s should be valid", st)
		require.Equal(t, i+1, OrderOf(st), "catalog order of %s", st)
		require.False(t, seen[st], "stage %s appears twice", st)
		seen[st] = true
	}
}

func TestStageCatalogEstimatedHours(t *testing.T) {
	expected := map[StageType]int{
		StagePreArrivalDocs:     24,
		StageVesselArrival:      0,
		StageCustomsDeclaration: 24,
		StageCustomsPayment:     12,
		StageInspection:         48,
		StagePortFees:           12,
		StageQualityStandards:   24,
		StageRelease:            12,
		StageLoading:            6,
		StageInTransit:          24,
		StageDelivered:          0,
	}
	for st, hours := range expected {
		require.Equal(t, hours, EstimatedHoursOf(st), "estimated hours of %s", st)
	}
}

func TestStageCatalogBoundaries(t *testing.T) {
	require.Equal(t, StagePreArrivalDocs, StageTypesInOrder()[0])
	require.Equal(t, StageDelivered, StageTypesInOrder()[StageCount()-1])
	require.Equal(t, 0, OrderOf(StageType("BOGUS")))
}

func TestStageStatusHelpers(t *testing.T) {
	require.True(t, StageStatusCompleted.IsDone())
	require.True(t, StageStatusSkipped.IsDone())
	require.False(t, StageStatusPending.IsDone())
	require.False(t, StageStatusInProgress.IsDone())
	require.False(t, StageStatus("ARCHIVED").IsValid())
}
