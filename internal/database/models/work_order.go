package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkOrder requests production of a quantity of aircraft of one model.
// Status is derived from the count of linked aircraft, never set freely.
// Work orders are never physically deleted; cancellation detaches the
// linked aircraft and is terminal.
type WorkOrder struct {
	BaseModel
	AircraftModelID uuid.UUID       `json:"aircraft_model_id" gorm:"type:uuid;not null;index"`
	Quantity        int             `json:"quantity" gorm:"not null;default:1" validate:"required,min=1"`
	Status          WorkOrderStatus `json:"status" gorm:"not null;size:20;default:'PENDING';index"`
	CreatedByID     *uuid.UUID      `json:"created_by_id" gorm:"type:uuid"`
	AssignedTeamID  *uuid.UUID      `json:"assigned_team_id" gorm:"type:uuid;index"`
	Notes           string          `json:"notes" gorm:"type:text"`
	TargetDate      *time.Time      `json:"target_date"`

	// Relationships
	AircraftModel *AircraftModel `json:"aircraft_model,omitempty" gorm:"foreignKey:AircraftModelID"`
	CreatedBy     *Personnel     `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	AssignedTeam  *Team          `json:"assigned_team,omitempty" gorm:"foreignKey:AssignedTeamID"`
	Aircraft      []Aircraft     `json:"aircraft,omitempty" gorm:"foreignKey:WorkOrderID"`
}

// TableName returns the table name for WorkOrder
func (WorkOrder) TableName() string {
	return "work_orders"
}
