package models

// PartType is a fixed reference row, one per part category. Rows are seeded
// at startup and never mutated at runtime.
type PartType struct {
	BaseModel
	Category PartCategory `json:"category" gorm:"uniqueIndex;not null;size:50"`
}

// TableName returns the table name for PartType
func (PartType) TableName() string {
	return "part_types"
}

// AircraftModel is a fixed reference row naming a producible model. Rows are
// seeded at startup from the catalog and never mutated at runtime.
type AircraftModel struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:50"`
}

// TableName returns the table name for AircraftModel
func (AircraftModel) TableName() string {
	return "aircraft_models"
}
