package models

// Team represents a production or assembly team. The part category a
// non-assembly team may produce is a pure function of Type (see the
// catalog package), never stored.
type Team struct {
	BaseModel
	Name string   `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Type TeamType `json:"type" gorm:"not null;size:50;index" validate:"required"`

	// Relationships
	Members []Personnel `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
