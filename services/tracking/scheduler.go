package tracking

import (
	"time"

	trackingModel "cargo-tracking/models/tracking"
)

// CalculateInitialETAs computes the ETA of every stage from a known arrival
// date. The vessel arrival is the arrival date itself and pre-arrival
// documents are due 24 hours before it; every other stage accumulates its
// estimated duration on top of the previous one along catalog order.
func CalculateInitialETAs(arrivalDate time.Time) map[trackingModel.StageType]time.Time {
	etas := make(map[trackingModel.StageType]time.Time, trackingModel.StageCount())
	cursor := arrivalDate

	for _, stageType := range trackingModel.StageTypesInOrder() {
		switch stageType {
		case trackingModel.StageVesselArrival:
			etas[stageType] = arrivalDate
		case trackingModel.StagePreArrivalDocs:
			etas[stageType] = arrivalDate.Add(-24 * time.Hour)
		default:
			cursor = cursor.Add(time.Duration(trackingModel.EstimatedHoursOf(stageType)) * time.Hour)
			etas[stageType] = cursor
		}
	}

	return etas
}

// RecalculateRemainingETAs reschedules every stage that comes after the just
// completed one, seeded from its actual completion time rather than its
// original ETA. Stages at or before the completed stage keep their recorded
// timestamps. Returns an empty map when the completed stage has no
// completion time yet.
func RecalculateRemainingETAs(stages []trackingModel.TrackingStage, completedStageType trackingModel.StageType) map[trackingModel.StageType]time.Time {
	etas := make(map[trackingModel.StageType]time.Time)

	var completedStage *trackingModel.TrackingStage
	for i := range stages {
		if stages[i].StageType == completedStageType {
			completedStage = &stages[i]
			break
		}
	}

	if completedStage == nil || completedStage.CompletedAt == nil {
		return etas
	}

	cursor := *completedStage.CompletedAt
	completedOrder := trackingModel.OrderOf(completedStageType)

	for _, stageType := range trackingModel.StageTypesInOrder() {
		if trackingModel.OrderOf(stageType) <= completedOrder {
			continue
		}
		cursor = cursor.Add(time.Duration(trackingModel.EstimatedHoursOf(stageType)) * time.Hour)
		etas[stageType] = cursor
	}

	return etas
}
