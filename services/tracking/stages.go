package tracking

import (
	"math"
	"sort"
	"time"

	trackingModel "cargo-tracking/models/tracking"
	trackingTypes "cargo-tracking/types/tracking"
)

// CurrentStage returns the stage the shipment is sitting at right now: the
// one in progress if any, otherwise the first pending stage in catalog
// order. When everything is completed or skipped the terminal DELIVERED
// stage is returned, so the result is always a valid stage type.
func CurrentStage(stages []trackingModel.TrackingStage) trackingModel.StageType {
	for _, stage := range stages {
		if stage.Status == trackingModel.StageStatusInProgress {
			return stage.StageType
		}
	}

	sorted := SortStages(stages)
	for _, stage := range sorted {
		if stage.Status == trackingModel.StageStatusPending {
			return stage.StageType
		}
	}

	return trackingModel.StageDelivered
}

// NextStage returns the stage one position after the given one in catalog
// order, or false when the given stage is the last.
func NextStage(current trackingModel.StageType) (trackingModel.StageType, bool) {
	order := trackingModel.StageTypesInOrder()
	for i, stageType := range order {
		if stageType == current {
			if i+1 >= len(order) {
				return "", false
			}
			return order[i+1], true
		}
	}
	return "", false
}

// Progress counts completed and skipped stages against the full stage set.
func Progress(stages []trackingModel.TrackingStage) trackingTypes.ProgressData {
	completed := 0
	for _, stage := range stages {
		if stage.Status.IsDone() {
			completed++
		}
	}

	total := len(stages)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return trackingTypes.ProgressData{
		Completed:  completed,
		Total:      total,
		Percentage: percentage,
	}
}

// EstimatedDelivery returns the delivery stage's completion time if it
// already happened, otherwise its ETA, otherwise nil.
func EstimatedDelivery(stages []trackingModel.TrackingStage) *time.Time {
	for _, stage := range stages {
		if stage.StageType != trackingModel.StageDelivered {
			continue
		}
		if stage.CompletedAt != nil {
			return stage.CompletedAt
		}
		return stage.EstimatedAt
	}
	return nil
}

// SortStages returns a copy of the stages ordered by catalog position.
// Row creation order and timestamps are never trusted for ordering.
func SortStages(stages []trackingModel.TrackingStage) []trackingModel.TrackingStage {
	sorted := make([]trackingModel.TrackingStage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return trackingModel.OrderOf(sorted[i].StageType) < trackingModel.OrderOf(sorted[j].StageType)
	})
	return sorted
}
