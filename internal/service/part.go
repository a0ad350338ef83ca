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

// PartService handles business logic for part production and recycling
type PartService struct {
	repo              repository.PartRepositoryInterface
	partTypeRepo      repository.PartTypeRepositoryInterface
	aircraftModelRepo repository.AircraftModelRepositoryInterface
	teamRepo          repository.TeamRepositoryInterface
	personnelRepo     repository.PersonnelRepositoryInterface
	serials           *SerialAllocator
	validator         *validator.Validate
}

// NewPartService creates a new part service
func NewPartService(
	repo repository.PartRepositoryInterface,
	partTypeRepo repository.PartTypeRepositoryInterface,
	aircraftModelRepo repository.AircraftModelRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	personnelRepo repository.PersonnelRepositoryInterface,
	serials *SerialAllocator,
	validator *validator.Validate,
) *PartService {
	return &PartService{
		repo:              repo,
		partTypeRepo:      partTypeRepo,
		aircraftModelRepo: aircraftModelRepo,
		teamRepo:          teamRepo,
		personnelRepo:     personnelRepo,
		serials:           serials,
		validator:         validator,
	}
}

// WithTx returns a copy of the service with its repositories bound to the
// given transaction
func (s *PartService) WithTx(tx *gorm.DB) *PartService {
	return &PartService{
		repo:              s.repo.WithTx(tx),
		partTypeRepo:      s.partTypeRepo.WithTx(tx),
		aircraftModelRepo: s.aircraftModelRepo.WithTx(tx),
		teamRepo:          s.teamRepo.WithTx(tx),
		personnelRepo:     s.personnelRepo.WithTx(tx),
		serials:           s.serials.WithTx(tx),
		validator:         s.validator,
	}
}

// ProducePartRequest represents the request to produce a part
type ProducePartRequest struct {
	TeamID          uuid.UUID  `json:"team_id" validate:"required"`
	PartTypeID      uuid.UUID  `json:"part_type_id" validate:"required"`
	AircraftModelID uuid.UUID  `json:"aircraft_model_id" validate:"required"`
	PersonnelID     *uuid.UUID `json:"personnel_id,omitempty"`
}

// PartResponse represents the response for part operations
type PartResponse struct {
	ID              uuid.UUID           `json:"id"`
	SerialNumber    string              `json:"serial_number"`
	Category        models.PartCategory `json:"category"`
	AircraftModelID uuid.UUID           `json:"aircraft_model_id"`
	AircraftModel   string              `json:"aircraft_model,omitempty"`
	Status          models.PartStatus   `json:"status"`
	ProducedByID    uuid.UUID           `json:"produced_by_team_id"`
	ProducedByName  string              `json:"produced_by_team,omitempty"`
	ProducedAt      string              `json:"produced_at"`
}

// PartListResponse represents a paginated list of parts
type PartListResponse struct {
	Parts    []PartResponse `json:"parts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Produce creates a new part in AVAILABLE status with an allocated serial.
// The producing team must be the one responsible for the requested category.
func (s *PartService) Produce(req *ProducePartRequest) (*PartResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate team exists
	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}

	// Validate part type exists
	partType, err := s.partTypeRepo.GetByID(req.PartTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartTypeNotFound
		}
		return nil, fmt.Errorf("failed to verify part type: %w", err)
	}

	// Validate aircraft model exists
	model, err := s.aircraftModelRepo.GetByID(req.AircraftModelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftModelNotFound
		}
		return nil, fmt.Errorf("failed to verify aircraft model: %w", err)
	}

	// Production teams may only produce their own category; assembly teams
	// produce nothing.
	producible, ok := catalog.ProducibleCategory(team.Type)
	if !ok || producible != partType.Category {
		return nil, apperrors.ErrIncompatibleTeam
	}

	// Only staffed teams may produce
	memberCount, err := s.teamRepo.MemberCount(req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}
	if memberCount == 0 {
		return nil, apperrors.ErrEmptyTeam
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

	serial, err := s.serials.NextPartSerial(model.Name, partType.Category)
	if err != nil {
		return nil, err
	}

	part := &models.Part{
		PartTypeID:      req.PartTypeID,
		AircraftModelID: req.AircraftModelID,
		SerialNumber:    serial,
		ProducedByID:    req.TeamID,
		CreatedByID:     req.PersonnelID,
		Status:          models.PartStatusAvailable,
	}

	if err := s.repo.Create(part); err != nil {
		return nil, fmt.Errorf("failed to create part: %w", err)
	}

	part.PartType = partType
	part.AircraftModel = model
	part.ProducedBy = team
	return s.toResponse(part), nil
}

// GetByID retrieves a part by ID
func (s *PartService) GetByID(id uuid.UUID) (*PartResponse, error) {
	part, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return s.toResponse(part), nil
}

// List retrieves parts matching the filter with pagination
func (s *PartService) List(filter repository.PartFilter, page, pageSize int) (*PartListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	parts, total, err := s.repo.GetAll(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}

	responses := make([]PartResponse, len(parts))
	for i := range parts {
		responses[i] = *s.toResponse(&parts[i])
	}

	return &PartListResponse{
		Parts:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Recycle retires an AVAILABLE part from the pool. Recycling a part that is
// installed in an aircraft is a conflict; recycling an already recycled part
// is a no-op.
func (s *PartService) Recycle(id uuid.UUID) (*PartResponse, error) {
	part, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	switch part.Status {
	case models.PartStatusUsed:
		return nil, apperrors.ErrPartInUse
	case models.PartStatusRecycled:
		return s.toResponse(part), nil
	}

	if err := s.repo.UpdateStatus(id, models.PartStatusRecycled); err != nil {
		return nil, fmt.Errorf("failed to recycle part: %w", err)
	}
	part.Status = models.PartStatusRecycled
	return s.toResponse(part), nil
}

// Release returns a previously installed part to the pool
func (s *PartService) Release(id uuid.UUID) error {
	if err := s.repo.UpdateStatus(id, models.PartStatusAvailable); err != nil {
		return fmt.Errorf("failed to release part: %w", err)
	}
	return nil
}

func (s *PartService) toResponse(part *models.Part) *PartResponse {
	resp := &PartResponse{
		ID:              part.ID,
		SerialNumber:    part.SerialNumber,
		AircraftModelID: part.AircraftModelID,
		Status:          part.Status,
		ProducedByID:    part.ProducedByID,
		ProducedAt:      part.ProducedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if part.PartType != nil {
		resp.Category = part.PartType.Category
	}
	if part.AircraftModel != nil {
		resp.AircraftModel = part.AircraftModel.Name
	}
	if part.ProducedBy != nil {
		resp.ProducedByName = part.ProducedBy.Name
	}
	return resp
}
