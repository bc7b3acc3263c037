package tracking

import "errors"

var (
	// ErrShipmentNotFound is returned when the shipment id does not resolve
	// for the calling owner. Owner-scoped lookups never reveal whether the
	// shipment exists under another account.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrStageNotFound is returned when a shipment has no row for the named
	// stage type, i.e. tracking was never initialized.
	ErrStageNotFound = errors.New("tracking stage not found")

	// ErrNoStageInProgress is returned by AdvanceToNextStage when no stage
	// holds IN_PROGRESS. The caller must re-fetch state and decide.
	ErrNoStageInProgress = errors.New("no stage in progress")

	// ErrMultipleStagesInProgress is returned by AdvanceToNextStage when
	// manual updates left more than one stage active.
	ErrMultipleStagesInProgress = errors.New("multiple stages in progress")

	// ErrTrackingNumberExhausted is returned when tracking number generation
	// keeps colliding with existing numbers.
	ErrTrackingNumberExhausted = errors.New("could not generate a unique tracking number")
)
