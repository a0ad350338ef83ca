package models

import (
	"github.com/google/uuid"
)

// Personnel represents a person who may be assigned to a team. Unassigned
// personnel exist; a team must have at least one member before it may
// produce parts or assemble aircraft.
type Personnel struct {
	BaseModel
	Username string     `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,min=1,max=150"`
	FullName string     `json:"full_name" gorm:"size:200" validate:"max=200"`
	Email    string     `json:"email" gorm:"size:254" validate:"omitempty,email"`
	TeamID   *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Personnel
func (Personnel) TableName() string {
	return "personnel"
}
