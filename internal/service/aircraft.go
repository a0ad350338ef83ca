package service

import (
	"errors"
	"fmt"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AircraftService handles business logic for assembled aircraft
type AircraftService struct {
	repo          repository.AircraftRepositoryInterface
	partRepo      repository.PartRepositoryInterface
	workOrderRepo repository.WorkOrderRepositoryInterface
	serials       *SerialAllocator
	validator     *validator.Validate
}

// NewAircraftService creates a new aircraft service
func NewAircraftService(
	repo repository.AircraftRepositoryInterface,
	partRepo repository.PartRepositoryInterface,
	workOrderRepo repository.WorkOrderRepositoryInterface,
	serials *SerialAllocator,
	validator *validator.Validate,
) *AircraftService {
	return &AircraftService{
		repo:          repo,
		partRepo:      partRepo,
		workOrderRepo: workOrderRepo,
		serials:       serials,
		validator:     validator,
	}
}

// WithTx returns a copy of the service with its repositories bound to the
// given transaction
func (s *AircraftService) WithTx(tx *gorm.DB) *AircraftService {
	return &AircraftService{
		repo:          s.repo.WithTx(tx),
		partRepo:      s.partRepo.WithTx(tx),
		workOrderRepo: s.workOrderRepo.WithTx(tx),
		serials:       s.serials.WithTx(tx),
		validator:     s.validator,
	}
}

// UpdateAircraftRequest represents the request to update an aircraft.
// Status moves between the non-recycled states; recycling has its own
// operation because it releases parts.
type UpdateAircraftRequest struct {
	Status      *models.AircraftStatus `json:"status,omitempty"`
	WorkOrderID *uuid.UUID             `json:"work_order_id,omitempty"`
	DetachOrder bool                   `json:"detach_order,omitempty"`
}

// AircraftSlotResponse describes one filled slot
type AircraftSlotResponse struct {
	PartID       uuid.UUID `json:"part_id"`
	SerialNumber string    `json:"serial_number"`
}

// AircraftResponse represents the response for aircraft operations
type AircraftResponse struct {
	ID              uuid.UUID                                    `json:"id"`
	SerialNumber    string                                       `json:"serial_number"`
	AircraftModelID uuid.UUID                                    `json:"aircraft_model_id"`
	AircraftModel   string                                       `json:"aircraft_model,omitempty"`
	Status          models.AircraftStatus                        `json:"status"`
	WorkOrderID     *uuid.UUID                                   `json:"work_order_id,omitempty"`
	AssembledByID   uuid.UUID                                    `json:"assembled_by_team_id"`
	AssembledBy     string                                       `json:"assembled_by_team,omitempty"`
	AssembledAt     string                                       `json:"assembled_at"`
	Slots           map[models.PartCategory]AircraftSlotResponse `json:"slots"`
}

// AircraftListResponse represents a paginated list of aircraft
type AircraftListResponse struct {
	Aircraft []AircraftResponse `json:"aircraft"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// ValidateAssignment checks that a work order can accept an aircraft of the
// given model. Completed and cancelled orders accept nothing.
func (s *AircraftService) ValidateAssignment(workOrderID, aircraftModelID uuid.UUID) (*models.WorkOrder, error) {
	order, err := s.workOrderRepo.GetByID(workOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to verify work order: %w", err)
	}
	if order.Status.IsTerminal() {
		return nil, apperrors.ErrWorkOrderNotAssignable
	}
	if order.AircraftModelID != aircraftModelID {
		return nil, apperrors.ErrWorkOrderModelMismatch
	}
	return order, nil
}

// Create allocates a serial number and persists a new aircraft. The caller
// has already marked the slot parts USED and validated the work order.
func (s *AircraftService) Create(aircraft *models.Aircraft, modelName string) error {
	serial, err := s.serials.NextAircraftSerial(modelName)
	if err != nil {
		return err
	}
	aircraft.SerialNumber = serial
	aircraft.Status = models.AircraftStatusActive
	if err := s.repo.Create(aircraft); err != nil {
		return fmt.Errorf("failed to create aircraft: %w", err)
	}
	return nil
}

// GetByID retrieves an aircraft by ID
func (s *AircraftService) GetByID(id uuid.UUID) (*AircraftResponse, error) {
	aircraft, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftNotFound
		}
		return nil, fmt.Errorf("failed to get aircraft: %w", err)
	}
	return s.toResponse(aircraft), nil
}

// List retrieves aircraft matching the filter with pagination
func (s *AircraftService) List(filter repository.AircraftFilter, page, pageSize int) (*AircraftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	aircraft, total, err := s.repo.GetAll(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}

	responses := make([]AircraftResponse, len(aircraft))
	for i := range aircraft {
		responses[i] = *s.toResponse(&aircraft[i])
	}

	return &AircraftListResponse{
		Aircraft: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update changes the status or work order link of an aircraft. It returns
// the ids of every work order whose aircraft count changed so the caller
// can recompute their statuses.
func (s *AircraftService) Update(id uuid.UUID, req *UpdateAircraftRequest) (*AircraftResponse, []uuid.UUID, error) {
	aircraft, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrAircraftNotFound
		}
		return nil, nil, fmt.Errorf("failed to get aircraft: %w", err)
	}
	if aircraft.Status == models.AircraftStatusRecycled {
		return nil, nil, apperrors.NewStateError("aircraft is recycled and cannot be updated")
	}

	var affected []uuid.UUID

	if req.Status != nil {
		if !req.Status.IsValid() || *req.Status == models.AircraftStatusRecycled {
			return nil, nil, apperrors.NewValidationError("status", "invalid aircraft status")
		}
		aircraft.Status = *req.Status
	}

	if req.DetachOrder && aircraft.WorkOrderID != nil {
		affected = append(affected, *aircraft.WorkOrderID)
		aircraft.WorkOrderID = nil
		aircraft.WorkOrder = nil
	} else if req.WorkOrderID != nil {
		if _, err := s.ValidateAssignment(*req.WorkOrderID, aircraft.AircraftModelID); err != nil {
			return nil, nil, err
		}
		if aircraft.WorkOrderID != nil && *aircraft.WorkOrderID != *req.WorkOrderID {
			affected = append(affected, *aircraft.WorkOrderID)
		}
		aircraft.WorkOrderID = req.WorkOrderID
		aircraft.WorkOrder = nil
		affected = append(affected, *req.WorkOrderID)
	}

	if err := s.repo.Update(aircraft); err != nil {
		return nil, nil, fmt.Errorf("failed to update aircraft: %w", err)
	}
	return s.toResponse(aircraft), affected, nil
}

// Recycle releases every slot part back to the pool, detaches the slots and
// marks the aircraft RECYCLED. Recycling an already recycled aircraft is a
// no-op. The returned id, when set, is the work order the aircraft was
// detached from.
func (s *AircraftService) Recycle(id uuid.UUID) (*AircraftResponse, *uuid.UUID, error) {
	aircraft, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrAircraftNotFound
		}
		return nil, nil, fmt.Errorf("failed to get aircraft: %w", err)
	}
	if aircraft.Status == models.AircraftStatusRecycled {
		return s.toResponse(aircraft), nil, nil
	}

	// Parts return to the pool before the aircraft row loses its slot
	// references, so a failure leaves nothing half-detached.
	for _, partID := range aircraft.SlotIDs() {
		if err := s.partRepo.UpdateStatus(partID, models.PartStatusAvailable); err != nil {
			return nil, nil, fmt.Errorf("failed to release part: %w", err)
		}
	}

	detached := aircraft.WorkOrderID
	aircraft.ClearSlots()
	aircraft.WorkOrderID = nil
	aircraft.WorkOrder = nil
	aircraft.Status = models.AircraftStatusRecycled
	if err := s.repo.Update(aircraft); err != nil {
		return nil, nil, fmt.Errorf("failed to recycle aircraft: %w", err)
	}
	return s.toResponse(aircraft), detached, nil
}

func (s *AircraftService) toResponse(aircraft *models.Aircraft) *AircraftResponse {
	resp := &AircraftResponse{
		ID:              aircraft.ID,
		SerialNumber:    aircraft.SerialNumber,
		AircraftModelID: aircraft.AircraftModelID,
		Status:          aircraft.Status,
		WorkOrderID:     aircraft.WorkOrderID,
		AssembledByID:   aircraft.AssembledByID,
		AssembledAt:     aircraft.AssembledAt.Format("2006-01-02T15:04:05Z07:00"),
		Slots:           make(map[models.PartCategory]AircraftSlotResponse, 4),
	}
	if aircraft.AircraftModel != nil {
		resp.AircraftModel = aircraft.AircraftModel.Name
	}
	if aircraft.AssembledBy != nil {
		resp.AssembledBy = aircraft.AssembledBy.Name
	}
	for category, part := range aircraft.SlotParts() {
		resp.Slots[category] = AircraftSlotResponse{
			PartID:       part.ID,
			SerialNumber: part.SerialNumber,
		}
	}
	return resp
}
