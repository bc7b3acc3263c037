package constants

// Organization permissions
const (
	// Admin permissions
	PermAdminFull    = "cargo-tracking.admin.full-permit"
	PermOperatorFull = "cargo-tracking.operator.full-permit"
	PermCustomerFull = "cargo-tracking.customer.full-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	// ShipmentManagerPermissions may create shipments and mutate tracking state.
	ShipmentManagerPermissions = []string{
		PermAdminFull,
		PermOperatorFull,
	}

	// ShipmentViewerPermissions may read their own shipments and stats.
	ShipmentViewerPermissions = []string{
		PermAdminFull,
		PermOperatorFull,
		PermCustomerFull,
	}
)
