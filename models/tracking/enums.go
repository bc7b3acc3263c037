package tracking

// StageType identifies one step of the customs/logistics journey.
type StageType string

const (
	StagePreArrivalDocs     StageType = "PRE_ARRIVAL_DOCS"
	StageVesselArrival      StageType = "VESSEL_ARRIVAL"
	StageCustomsDeclaration StageType = "CUSTOMS_DECLARATION"
	StageCustomsPayment     StageType = "CUSTOMS_PAYMENT"
	StageInspection         StageType = "INSPECTION"
	StagePortFees           StageType = "PORT_FEES"
	StageQualityStandards   StageType = "QUALITY_STANDARDS"
	StageRelease            StageType = "RELEASE"
	StageLoading            StageType = "LOADING"
	StageInTransit          StageType = "IN_TRANSIT"
	StageDelivered          StageType = "DELIVERED"
)

func (st StageType) String() string {
	return string(st)
}

func (st StageType) IsValid() bool {
	_, ok := stageCatalog[st]
	return ok
}

// StageStatus is the lifecycle status of a single tracking stage.
type StageStatus string

const (
	StageStatusPending    StageStatus = "PENDING"
	StageStatusInProgress StageStatus = "IN_PROGRESS"
	StageStatusCompleted  StageStatus = "COMPLETED"
	StageStatusSkipped    StageStatus = "SKIPPED"
)

func (ss StageStatus) String() string {
	return string(ss)
}

func (ss StageStatus) IsValid() bool {
	switch ss {
	case StageStatusPending, StageStatusInProgress, StageStatusCompleted, StageStatusSkipped:
		return true
	default:
		return false
	}
}

// IsDone returns true when the stage no longer counts toward remaining work.
func (ss StageStatus) IsDone() bool {
	return ss == StageStatusCompleted || ss == StageStatusSkipped
}

// GetAllStageStatuses returns all valid stage statuses
func GetAllStageStatuses() []StageStatus {
	return []StageStatus{
		StageStatusPending,
		StageStatusInProgress,
		StageStatusCompleted,
		StageStatusSkipped,
	}
}
