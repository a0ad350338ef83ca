package service

import (
	"errors"
	"fmt"

	"aircraft-production-backend/internal/catalog"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssemblyService builds aircraft by allocating one part per slot from the
// inventory pool, oldest first.
type AssemblyService struct {
	partRepo          repository.PartRepositoryInterface
	partTypeRepo      repository.PartTypeRepositoryInterface
	aircraftModelRepo repository.AircraftModelRepositoryInterface
	teamRepo          repository.TeamRepositoryInterface
	personnelRepo     repository.PersonnelRepositoryInterface
	aircraftSvc       *AircraftService
	workOrderSvc      *WorkOrderService
	validator         *validator.Validate
}

// NewAssemblyService creates a new assembly service
func NewAssemblyService(
	partRepo repository.PartRepositoryInterface,
	partTypeRepo repository.PartTypeRepositoryInterface,
	aircraftModelRepo repository.AircraftModelRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	personnelRepo repository.PersonnelRepositoryInterface,
	aircraftSvc *AircraftService,
	workOrderSvc *WorkOrderService,
	validator *validator.Validate,
) *AssemblyService {
	return &AssemblyService{
		partRepo:          partRepo,
		partTypeRepo:      partTypeRepo,
		aircraftModelRepo: aircraftModelRepo,
		teamRepo:          teamRepo,
		personnelRepo:     personnelRepo,
		aircraftSvc:       aircraftSvc,
		workOrderSvc:      workOrderSvc,
		validator:         validator,
	}
}

// WithTx returns a copy of the service with its repositories bound to the
// given transaction
func (s *AssemblyService) WithTx(tx *gorm.DB) *AssemblyService {
	return &AssemblyService{
		partRepo:          s.partRepo.WithTx(tx),
		partTypeRepo:      s.partTypeRepo.WithTx(tx),
		aircraftModelRepo: s.aircraftModelRepo.WithTx(tx),
		teamRepo:          s.teamRepo.WithTx(tx),
		personnelRepo:     s.personnelRepo.WithTx(tx),
		aircraftSvc:       s.aircraftSvc.WithTx(tx),
		workOrderSvc:      s.workOrderSvc.WithTx(tx),
		validator:         s.validator,
	}
}

// AssembleRequest represents the request to assemble an aircraft
type AssembleRequest struct {
	TeamID          uuid.UUID  `json:"team_id" validate:"required"`
	AircraftModelID uuid.UUID  `json:"aircraft_model_id" validate:"required"`
	WorkOrderID     *uuid.UUID `json:"work_order_id,omitempty"`
	PersonnelID     *uuid.UUID `json:"personnel_id,omitempty"`
}

// Assemble builds one aircraft of the requested model. Every slot is filled
// from the oldest AVAILABLE part of the matching type and model; when any
// slot cannot be filled the whole attempt fails and no part changes status.
func (s *AssemblyService) Assemble(req *AssembleRequest) (*AircraftResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Only staffed assembly teams may assemble
	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if !catalog.CanPerformAssembly(team.Type) {
		return nil, apperrors.ErrNotAnAssemblyTeam
	}
	memberCount, err := s.teamRepo.MemberCount(req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}
	if memberCount == 0 {
		return nil, apperrors.ErrEmptyTeam
	}

	// Validate aircraft model exists
	model, err := s.aircraftModelRepo.GetByID(req.AircraftModelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftModelNotFound
		}
		return nil, fmt.Errorf("failed to verify aircraft model: %w", err)
	}

	// Validate personnel if provided
	if req.PersonnelID != nil {
		if _, err := s.personnelRepo.GetByID(*req.PersonnelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonnelNotFound
			}
			return nil, fmt.Errorf("failed to verify personnel: %w", err)
		}
	}

	// Validate work order if provided
	if req.WorkOrderID != nil {
		if _, err := s.aircraftSvc.ValidateAssignment(*req.WorkOrderID, req.AircraftModelID); err != nil {
			return nil, err
		}
	}

	// Pick the oldest available part for every slot before touching any of
	// them, collecting every shortage so the error reports the full picture.
	partTypes, err := s.partTypeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load part types: %w", err)
	}
	typeByCategory := make(map[models.PartCategory]*models.PartType, len(partTypes))
	for i := range partTypes {
		typeByCategory[partTypes[i].Category] = &partTypes[i]
	}

	allocated := make(map[models.PartCategory]*models.Part, len(catalog.SlotCategories))
	var missing []string
	for _, category := range catalog.SlotCategories {
		partType, ok := typeByCategory[category]
		if !ok {
			missing = append(missing, string(category))
			continue
		}
		part, err := s.partRepo.FindOldestAvailable(partType.ID, req.AircraftModelID)
		if err != nil {
			return nil, fmt.Errorf("failed to allocate %s: %w", category, err)
		}
		if part == nil {
			missing = append(missing, string(category))
			continue
		}
		allocated[category] = part
	}
	if len(missing) > 0 {
		return nil, apperrors.NewInsufficientPartsError(missing)
	}

	// Consume the allocated parts and persist the aircraft
	for _, part := range allocated {
		if err := s.partRepo.UpdateStatus(part.ID, models.PartStatusUsed); err != nil {
			return nil, fmt.Errorf("failed to consume part: %w", err)
		}
	}

	aircraft := &models.Aircraft{
		AircraftModelID: req.AircraftModelID,
		WorkOrderID:     req.WorkOrderID,
		AssembledByID:   req.TeamID,
		AssembledPersID: req.PersonnelID,
	}
	for category, part := range allocated {
		aircraft.SetSlot(category, part)
	}

	if err := s.aircraftSvc.Create(aircraft, model.Name); err != nil {
		return nil, err
	}

	// Keep the work order status in line with its new aircraft count
	if req.WorkOrderID != nil {
		if err := s.workOrderSvc.Recompute(*req.WorkOrderID); err != nil {
			return nil, err
		}
	}

	aircraft.AircraftModel = model
	aircraft.AssembledBy = team
	return s.aircraftSvc.toResponse(aircraft), nil
}
