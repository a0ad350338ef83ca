package models

// TeamType classifies a team by the work it performs. Non-assembly types
// each produce exactly one part category; only assembly teams build aircraft.
type TeamType string

const (
	TeamTypeWing     TeamType = "WING_TEAM"
	TeamTypeFuselage TeamType = "FUSELAGE_TEAM"
	TeamTypeTail     TeamType = "TAIL_TEAM"
	TeamTypeAvionics TeamType = "AVIONICS_TEAM"
	TeamTypeAssembly TeamType = "ASSEMBLY_TEAM"
)

// IsValid checks if the team type is one of the defined values
func (t TeamType) IsValid() bool {
	switch t {
	case TeamTypeWing, TeamTypeFuselage, TeamTypeTail, TeamTypeAvionics, TeamTypeAssembly:
		return true
	}
	return false
}

// PartCategory is the fixed enumeration of part kinds, one per aircraft slot.
type PartCategory string

const (
	PartCategoryWing     PartCategory = "WING"
	PartCategoryFuselage PartCategory = "FUSELAGE"
	PartCategoryTail     PartCategory = "TAIL"
	PartCategoryAvionics PartCategory = "AVIONICS"
)

// IsValid checks if the part category is one of the defined values
func (c PartCategory) IsValid() bool {
	switch c {
	case PartCategoryWing, PartCategoryFuselage, PartCategoryTail, PartCategoryAvionics:
		return true
	}
	return false
}

// PartStatus is the lifecycle state of a produced part.
type PartStatus string

const (
	PartStatusAvailable PartStatus = "AVAILABLE"
	PartStatusUsed      PartStatus = "USED"
	PartStatusRecycled  PartStatus = "RECYCLED"
)

// PartStatuses lists all part statuses in a stable order.
var PartStatuses = []PartStatus{PartStatusAvailable, PartStatusUsed, PartStatusRecycled}

// AircraftStatus is the lifecycle state of an assembled aircraft. The
// vocabulary is distinct from PartStatus: an active aircraft is "ACTIVE",
// not "AVAILABLE".
type AircraftStatus string

const (
	AircraftStatusActive      AircraftStatus = "ACTIVE"
	AircraftStatusMaintenance AircraftStatus = "MAINTENANCE"
	AircraftStatusSold        AircraftStatus = "SOLD"
	AircraftStatusRecycled    AircraftStatus = "RECYCLED"
)

// AircraftStatuses lists all aircraft statuses in a stable order.
var AircraftStatuses = []AircraftStatus{
	AircraftStatusActive,
	AircraftStatusMaintenance,
	AircraftStatusSold,
	AircraftStatusRecycled,
}

// IsValid checks if the aircraft status is one of the defined values
func (s AircraftStatus) IsValid() bool {
	switch s {
	case AircraftStatusActive, AircraftStatusMaintenance, AircraftStatusSold, AircraftStatusRecycled:
		return true
	}
	return false
}

// WorkOrderStatus is the derived lifecycle state of a work order.
type WorkOrderStatus string

const (
	WorkOrderStatusPending    WorkOrderStatus = "PENDING"
	WorkOrderStatusAssigned   WorkOrderStatus = "ASSIGNED"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusCompleted  WorkOrderStatus = "COMPLETED"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transitions may leave this status.
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusCompleted || s == WorkOrderStatusCancelled
}
