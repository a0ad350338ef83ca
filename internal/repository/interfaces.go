package repository

import (
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PartFilter narrows part listings. Nil fields match everything.
type PartFilter struct {
	Status          *models.PartStatus
	PartTypeID      *uuid.UUID
	AircraftModelID *uuid.UUID
	TeamID          *uuid.UUID
}

// AircraftFilter narrows aircraft listings. Nil fields match everything.
type AircraftFilter struct {
	Status          *models.AircraftStatus
	AircraftModelID *uuid.UUID
	WorkOrderID     *uuid.UUID
	TeamID          *uuid.UUID
}

// WorkOrderFilter narrows work order listings. Nil fields match everything.
type WorkOrderFilter struct {
	Status          *models.WorkOrderStatus
	AircraftModelID *uuid.UUID
	AssignedTeamID  *uuid.UUID
}

// PartStatusCount is one row of the part stock aggregation.
type PartStatusCount struct {
	AircraftModelID uuid.UUID         `json:"aircraft_model_id"`
	PartTypeID      uuid.UUID         `json:"part_type_id"`
	Status          models.PartStatus `json:"status"`
	Count           int64             `json:"count"`
}

// AircraftStatusCount is one row of the aircraft stock aggregation.
type AircraftStatusCount struct {
	AircraftModelID uuid.UUID             `json:"aircraft_model_id"`
	Status          models.AircraftStatus `json:"status"`
	Count           int64                 `json:"count"`
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	WithTx(tx *gorm.DB) TeamRepositoryInterface
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(teamType *models.TeamType, limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	MemberCount(teamID uuid.UUID) (int64, error)
	ProducedPartCount(teamID uuid.UUID) (int64, error)
	AssembledAircraftCount(teamID uuid.UUID) (int64, error)
}

// PersonnelRepositoryInterface defines the interface for personnel repository operations
type PersonnelRepositoryInterface interface {
	WithTx(tx *gorm.DB) PersonnelRepositoryInterface
	Create(person *models.Personnel) error
	GetByID(id uuid.UUID) (*models.Personnel, error)
	GetByUsername(username string) (*models.Personnel, error)
	GetAll(teamID *uuid.UUID, limit, offset int) ([]models.Personnel, int64, error)
	Update(person *models.Personnel) error
	Delete(id uuid.UUID) error
}

// PartTypeRepositoryInterface defines the interface for part type lookups
type PartTypeRepositoryInterface interface {
	WithTx(tx *gorm.DB) PartTypeRepositoryInterface
	GetByID(id uuid.UUID) (*models.PartType, error)
	GetByCategory(category models.PartCategory) (*models.PartType, error)
	GetAll() ([]models.PartType, error)
}

// AircraftModelRepositoryInterface defines the interface for aircraft model lookups
type AircraftModelRepositoryInterface interface {
	WithTx(tx *gorm.DB) AircraftModelRepositoryInterface
	GetByID(id uuid.UUID) (*models.AircraftModel, error)
	GetByName(name string) (*models.AircraftModel, error)
	GetAll() ([]models.AircraftModel, error)
}

// PartRepositoryInterface defines the interface for part repository operations
type PartRepositoryInterface interface {
	WithTx(tx *gorm.DB) PartRepositoryInterface
	Create(part *models.Part) error
	GetByID(id uuid.UUID) (*models.Part, error)
	GetAll(filter PartFilter, limit, offset int) ([]models.Part, int64, error)
	UpdateStatus(id uuid.UUID, status models.PartStatus) error
	FindOldestAvailable(partTypeID, aircraftModelID uuid.UUID) (*models.Part, error)
	MaxSerialSuffix(prefix string) (int, error)
	StatusCounts() ([]PartStatusCount, error)
}

// AircraftRepositoryInterface defines the interface for aircraft repository operations
type AircraftRepositoryInterface interface {
	WithTx(tx *gorm.DB) AircraftRepositoryInterface
	Create(aircraft *models.Aircraft) error
	GetByID(id uuid.UUID) (*models.Aircraft, error)
	GetAll(filter AircraftFilter, limit, offset int) ([]models.Aircraft, int64, error)
	Update(aircraft *models.Aircraft) error
	CountByWorkOrder(workOrderID uuid.UUID) (int64, error)
	DetachFromWorkOrder(workOrderID uuid.UUID) error
	MaxSerialSuffix(prefix string) (int, error)
	StatusCounts() ([]AircraftStatusCount, error)
}

// WorkOrderRepositoryInterface defines the interface for work order repository operations
type WorkOrderRepositoryInterface interface {
	WithTx(tx *gorm.DB) WorkOrderRepositoryInterface
	Create(order *models.WorkOrder) error
	GetByID(id uuid.UUID) (*models.WorkOrder, error)
	GetAll(filter WorkOrderFilter, limit, offset int) ([]models.WorkOrder, int64, error)
	Update(order *models.WorkOrder) error
	UpdateStatus(id uuid.UUID, status models.WorkOrderStatus) error
}
