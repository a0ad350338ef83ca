package testutils

import (
	"time"

	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix avoids name collisions across tests
		Name: "test-team-" + id.String()[:8],
		Type: models.TeamTypeWing,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithType sets a custom team type
func (f *TeamFactory) WithType(teamType models.TeamType) *models.Team {
	team := f.Create()
	team.Type = teamType
	return team
}

// PersonnelFactory provides methods to create test Personnel data
type PersonnelFactory struct{}

// NewPersonnelFactory creates a new PersonnelFactory
func NewPersonnelFactory() *PersonnelFactory {
	return &PersonnelFactory{}
}

// Create creates a test Personnel with default values
func (f *PersonnelFactory) Create() *models.Personnel {
	id := uuid.New()
	return &models.Personnel{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique username avoids conflicts with the global unique index
		Username: "worker-" + id.String()[:8],
		FullName: "Test Worker",
		Email:    "worker@test.com",
		TeamID:   nil,
	}
}

// WithTeam sets the team ID for the personnel
func (f *PersonnelFactory) WithTeam(teamID uuid.UUID) *models.Personnel {
	person := f.Create()
	person.TeamID = &teamID
	return person
}

// WithUsername sets a custom username for the personnel
func (f *PersonnelFactory) WithUsername(username string) *models.Personnel {
	person := f.Create()
	person.Username = username
	return person
}

// PartFactory provides methods to create test Part data
type PartFactory struct{}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates a test Part with default values. Callers must point
// PartTypeID, AircraftModelID and ProducedByID at real rows before saving.
func (f *PartFactory) Create() *models.Part {
	id := uuid.New()
	return &models.Part{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PartTypeID:      uuid.New(),
		AircraftModelID: uuid.New(),
		SerialNumber:    "TEST-" + id.String()[:13],
		ProducedByID:    uuid.New(),
		Status:          models.PartStatusAvailable,
		ProducedAt:      time.Now(),
	}
}

// WithRefs points the part at existing part type, aircraft model and team rows
func (f *PartFactory) WithRefs(partTypeID, aircraftModelID, teamID uuid.UUID) *models.Part {
	part := f.Create()
	part.PartTypeID = partTypeID
	part.AircraftModelID = aircraftModelID
	part.ProducedByID = teamID
	return part
}

// WithStatus sets a custom status for the part
func (f *PartFactory) WithStatus(status models.PartStatus) *models.Part {
	part := f.Create()
	part.Status = status
	return part
}

// WorkOrderFactory provides methods to create test WorkOrder data
type WorkOrderFactory struct{}

// NewWorkOrderFactory creates a new WorkOrderFactory
func NewWorkOrderFactory() *WorkOrderFactory {
	return &WorkOrderFactory{}
}

// Create creates a test WorkOrder with default values. Callers must point
// AircraftModelID at a real row before saving.
func (f *WorkOrderFactory) Create() *models.WorkOrder {
	return &models.WorkOrder{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AircraftModelID: uuid.New(),
		Quantity:        1,
		Status:          models.WorkOrderStatusPending,
	}
}

// WithModel points the work order at an existing aircraft model row
func (f *WorkOrderFactory) WithModel(aircraftModelID uuid.UUID) *models.WorkOrder {
	order := f.Create()
	order.AircraftModelID = aircraftModelID
	return order
}

// WithQuantity sets a custom quantity for the work order
func (f *WorkOrderFactory) WithQuantity(quantity int) *models.WorkOrder {
	order := f.Create()
	order.Quantity = quantity
	return order
}

// WithTeam assigns the work order to a team
func (f *WorkOrderFactory) WithTeam(teamID uuid.UUID) *models.WorkOrder {
	order := f.Create()
	order.AssignedTeamID = &teamID
	order.Status = models.WorkOrderStatusAssigned
	return order
}

// AircraftFactory provides methods to create test Aircraft data
type AircraftFactory struct{}

// NewAircraftFactory creates a new AircraftFactory
func NewAircraftFactory() *AircraftFactory {
	return &AircraftFactory{}
}

// Create creates a test Aircraft with default values. Callers must point
// AircraftModelID and AssembledByID at real rows before saving.
func (f *AircraftFactory) Create() *models.Aircraft {
	id := uuid.New()
	return &models.Aircraft{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AircraftModelID: uuid.New(),
		SerialNumber:    "TEST-" + id.String()[:13],
		Status:          models.AircraftStatusActive,
		AssembledByID:   uuid.New(),
		AssembledAt:     time.Now(),
	}
}

// WithRefs points the aircraft at existing aircraft model and team rows
func (f *AircraftFactory) WithRefs(aircraftModelID, teamID uuid.UUID) *models.Aircraft {
	aircraft := f.Create()
	aircraft.AircraftModelID = aircraftModelID
	aircraft.AssembledByID = teamID
	return aircraft
}

// WithWorkOrder links the aircraft to a work order
func (f *AircraftFactory) WithWorkOrder(workOrderID uuid.UUID) *models.Aircraft {
	aircraft := f.Create()
	aircraft.WorkOrderID = &workOrderID
	return aircraft
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team      *TeamFactory
	Personnel *PersonnelFactory
	Part      *PartFactory
	WorkOrder *WorkOrderFactory
	Aircraft  *AircraftFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:      NewTeamFactory(),
		Personnel: NewPersonnelFactory(),
		Part:      NewPartFactory(),
		WorkOrder: NewWorkOrderFactory(),
		Aircraft:  NewAircraftFactory(),
	}
}
