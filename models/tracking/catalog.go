package tracking

// StageColor is the display color used by the timeline UI.
type StageColor string

const (
	ColorGray   StageColor = "gray"
	ColorRed    StageColor = "red"
	ColorYellow StageColor = "yellow"
	ColorGreen  StageColor = "green"
)

// StageConfig holds the static scheduling metadata of one stage type.
type StageConfig struct {
	Order          int        `json:"order"`
	EstimatedHours int        `json:"estimated_hours"`
	Color          StageColor `json:"color"`
}

// stageOrder is the canonical progression of a shipment through clearance.
var stageOrder = []StageType{
	StagePreArrivalDocs,
	StageVesselArrival,
	StageCustomsDeclaration,
	StageCustomsPayment,
	StageInspection,
	StagePortFees,
	StageQualityStandards,
	StageRelease,
	StageLoading,
	StageInTransit,
	StageDelivered,
}

// stageCatalog is built once and never mutated. VESSEL_ARRIVAL and DELIVERED
// are point-in-time events so they carry no duration.
var stageCatalog = map[StageType]StageConfig{
	StagePreArrivalDocs:     {Order: 1, EstimatedHours: 24, Color: ColorRed},
	StageVesselArrival:      {Order: 2, EstimatedHours: 0, Color: ColorRed},
	StageCustomsDeclaration: {Order: 3, EstimatedHours: 24, Color: ColorRed},
	StageCustomsPayment:     {Order: 4, EstimatedHours: 12, Color: ColorYellow},
	StageInspection:         {Order: 5, EstimatedHours: 48, Color: ColorYellow},
	StagePortFees:           {Order: 6, EstimatedHours: 12, Color: ColorYellow},
	StageQualityStandards:   {Order: 7, EstimatedHours: 24, Color: ColorRed},
	StageRelease:            {Order: 8, EstimatedHours: 12, Color: ColorGreen},
	StageLoading:            {Order: 9, EstimatedHours: 6, Color: ColorGreen},
	StageInTransit:          {Order: 10, EstimatedHours: 24, Color: ColorRed},
	StageDelivered:          {Order: 11, EstimatedHours: 0, Color: ColorGreen},
}

// StageTypesInOrder returns the 11 stage types in catalog order.
func StageTypesInOrder() []StageType {
	ordered := make([]StageType, len(stageOrder))
	copy(ordered, stageOrder)
	return ordered
}

// ConfigOf returns the static config of a stage type.
func ConfigOf(st StageType) StageConfig {
	return stageCatalog[st]
}

// OrderOf returns the 1-based catalog position of a stage type.
func OrderOf(st StageType) int {
	return stageCatalog[st].Order
}

// EstimatedHoursOf returns the estimated duration of a stage type in hours.
func EstimatedHoursOf(st StageType) int {
	return stageCatalog[st].EstimatedHours
}

// StageCount is the fixed number of stages every shipment carries.
func StageCount() int {
	return len(stageOrder)
}
