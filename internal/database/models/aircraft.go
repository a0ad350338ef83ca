package models

import (
	"time"

	"github.com/google/uuid"
)

// Aircraft is a serialized aircraft built from one part per slot. Aircraft
// are never physically deleted; recycling releases the slot parts back to
// the pool, detaches the slots and sets status RECYCLED.
type Aircraft struct {
	BaseModel
	AircraftModelID uuid.UUID      `json:"aircraft_model_id" gorm:"type:uuid;not null;index"`
	SerialNumber    string         `json:"serial_number" gorm:"uniqueIndex;not null;size:100"`
	Status          AircraftStatus `json:"status" gorm:"not null;size:20;default:'ACTIVE';index"`
	WorkOrderID     *uuid.UUID     `json:"work_order_id" gorm:"type:uuid;index"`
	AssembledByID   uuid.UUID      `json:"assembled_by_team_id" gorm:"column:assembled_by_team_id;type:uuid;not null;index"`
	AssembledPersID *uuid.UUID     `json:"assembled_by_personnel_id" gorm:"column:assembled_by_personnel_id;type:uuid"`
	AssembledAt     time.Time      `json:"assembled_at" gorm:"autoCreateTime;index"`

	// Slot references. Each points to exactly one part; the unique indexes
	// keep a part from occupying two slots of the same kind.
	WingID     *uuid.UUID `json:"wing_id" gorm:"type:uuid;uniqueIndex"`
	FuselageID *uuid.UUID `json:"fuselage_id" gorm:"type:uuid;uniqueIndex"`
	TailID     *uuid.UUID `json:"tail_id" gorm:"type:uuid;uniqueIndex"`
	AvionicsID *uuid.UUID `json:"avionics_id" gorm:"type:uuid;uniqueIndex"`

	// Relationships
	AircraftModel *AircraftModel `json:"aircraft_model,omitempty" gorm:"foreignKey:AircraftModelID"`
	WorkOrder     *WorkOrder     `json:"work_order,omitempty" gorm:"foreignKey:WorkOrderID"`
	AssembledBy   *Team          `json:"assembled_by_team,omitempty" gorm:"foreignKey:AssembledByID"`
	AssembledPers *Personnel     `json:"assembled_by_personnel,omitempty" gorm:"foreignKey:AssembledPersID"`
	Wing          *Part          `json:"wing,omitempty" gorm:"foreignKey:WingID"`
	Fuselage      *Part          `json:"fuselage,omitempty" gorm:"foreignKey:FuselageID"`
	Tail          *Part          `json:"tail,omitempty" gorm:"foreignKey:TailID"`
	Avionics      *Part          `json:"avionics,omitempty" gorm:"foreignKey:AvionicsID"`
}

// TableName returns the table name for Aircraft
func (Aircraft) TableName() string {
	return "aircraft"
}

// SlotParts returns the loaded slot parts keyed by category, skipping
// empty slots.
func (a *Aircraft) SlotParts() map[PartCategory]*Part {
	slots := make(map[PartCategory]*Part, 4)
	if a.Wing != nil {
		slots[PartCategoryWing] = a.Wing
	}
	if a.Fuselage != nil {
		slots[PartCategoryFuselage] = a.Fuselage
	}
	if a.Tail != nil {
		slots[PartCategoryTail] = a.Tail
	}
	if a.Avionics != nil {
		slots[PartCategoryAvionics] = a.Avionics
	}
	return slots
}

// SlotIDs returns the slot part ids keyed by category, skipping empty slots.
func (a *Aircraft) SlotIDs() map[PartCategory]uuid.UUID {
	ids := make(map[PartCategory]uuid.UUID, 4)
	if a.WingID != nil {
		ids[PartCategoryWing] = *a.WingID
	}
	if a.FuselageID != nil {
		ids[PartCategoryFuselage] = *a.FuselageID
	}
	if a.TailID != nil {
		ids[PartCategoryTail] = *a.TailID
	}
	if a.AvionicsID != nil {
		ids[PartCategoryAvionics] = *a.AvionicsID
	}
	return ids
}

// ClearSlots detaches every slot reference. Callers release the parts first.
func (a *Aircraft) ClearSlots() {
	a.WingID, a.FuselageID, a.TailID, a.AvionicsID = nil, nil, nil, nil
	a.Wing, a.Fuselage, a.Tail, a.Avionics = nil, nil, nil, nil
}

// SetSlot assigns a part to the slot for its category.
func (a *Aircraft) SetSlot(category PartCategory, part *Part) {
	switch category {
	case PartCategoryWing:
		a.WingID, a.Wing = &part.ID, part
	case PartCategoryFuselage:
		a.FuselageID, a.Fuselage = &part.ID, part
	case PartCategoryTail:
		a.TailID, a.Tail = &part.ID, part
	case PartCategoryAvionics:
		a.AvionicsID, a.Avionics = &part.ID, part
	}
}
