package models

import (
	"time"

	"github.com/google/uuid"
)

// Part is a serialized component produced by a team. Parts are never
// physically deleted; recycling is a status transition. A USED part belongs
// to exactly one aircraft slot and must be released by that aircraft's
// recycle before it can be recycled or reused.
type Part struct {
	BaseModel
	PartTypeID      uuid.UUID  `json:"part_type_id" gorm:"type:uuid;not null;index"`
	AircraftModelID uuid.UUID  `json:"aircraft_model_id" gorm:"type:uuid;not null;index"`
	SerialNumber    string     `json:"serial_number" gorm:"uniqueIndex;not null;size:100"`
	ProducedByID    uuid.UUID  `json:"produced_by_team_id" gorm:"column:produced_by_team_id;type:uuid;not null;index"`
	CreatedByID     *uuid.UUID `json:"created_by_personnel_id" gorm:"column:created_by_personnel_id;type:uuid"`
	Status          PartStatus `json:"status" gorm:"not null;size:20;default:'AVAILABLE';index"`
	ProducedAt      time.Time  `json:"produced_at" gorm:"autoCreateTime;index"`

	// Relationships
	PartType      *PartType      `json:"part_type,omitempty" gorm:"foreignKey:PartTypeID"`
	AircraftModel *AircraftModel `json:"aircraft_model,omitempty" gorm:"foreignKey:AircraftModelID"`
	ProducedBy    *Team          `json:"produced_by_team,omitempty" gorm:"foreignKey:ProducedByID"`
	CreatedBy     *Personnel     `json:"created_by_personnel,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}
