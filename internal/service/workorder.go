package service

import (
	"errors"
	"fmt"
	"time"

	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkOrderService handles business logic for work orders. Work order
// status is always derived from the count of linked aircraft; the only
// free transition is cancellation.
type WorkOrderService struct {
	repo              repository.WorkOrderRepositoryInterface
	aircraftRepo      repository.AircraftRepositoryInterface
	aircraftModelRepo repository.AircraftModelRepositoryInterface
	teamRepo          repository.TeamRepositoryInterface
	personnelRepo     repository.PersonnelRepositoryInterface
	validator         *validator.Validate
}

// NewWorkOrderService creates a new work order service
func NewWorkOrderService(
	repo repository.WorkOrderRepositoryInterface,
	aircraftRepo repository.AircraftRepositoryInterface,
	aircraftModelRepo repository.AircraftModelRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	personnelRepo repository.PersonnelRepositoryInterface,
	validator *validator.Validate,
) *WorkOrderService {
	return &WorkOrderService{
		repo:              repo,
		aircraftRepo:      aircraftRepo,
		aircraftModelRepo: aircraftModelRepo,
		teamRepo:          teamRepo,
		personnelRepo:     personnelRepo,
		validator:         validator,
	}
}

// WithTx returns a copy of the service with its repositories bound to the
// given transaction
func (s *WorkOrderService) WithTx(tx *gorm.DB) *WorkOrderService {
	return &WorkOrderService{
		repo:              s.repo.WithTx(tx),
		aircraftRepo:      s.aircraftRepo.WithTx(tx),
		aircraftModelRepo: s.aircraftModelRepo.WithTx(tx),
		teamRepo:          s.teamRepo.WithTx(tx),
		personnelRepo:     s.personnelRepo.WithTx(tx),
		validator:         s.validator,
	}
}

// CreateWorkOrderRequest represents the request to create a work order
type CreateWorkOrderRequest struct {
	AircraftModelID uuid.UUID  `json:"aircraft_model_id" validate:"required"`
	Quantity        int        `json:"quantity" validate:"required,min=1"`
	AssignedTeamID  *uuid.UUID `json:"assigned_team_id,omitempty"`
	CreatedByID     *uuid.UUID `json:"created_by_id,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	TargetDate      *time.Time `json:"target_date,omitempty"`
}

// UpdateWorkOrderRequest represents the request to update a work order's
// assignable fields. Quantity and status are not freely editable.
type UpdateWorkOrderRequest struct {
	AssignedTeamID *uuid.UUID `json:"assigned_team_id,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	TargetDate     *time.Time `json:"target_date,omitempty"`
}

// WorkOrderResponse represents the response for work order operations
type WorkOrderResponse struct {
	ID              uuid.UUID              `json:"id"`
	AircraftModelID uuid.UUID              `json:"aircraft_model_id"`
	AircraftModel   string                 `json:"aircraft_model,omitempty"`
	Quantity        int                    `json:"quantity"`
	Status          models.WorkOrderStatus `json:"status"`
	AssignedTeamID  *uuid.UUID             `json:"assigned_team_id,omitempty"`
	AssignedTeam    string                 `json:"assigned_team,omitempty"`
	CompletedCount  int64                  `json:"completed_count"`
	Notes           string                 `json:"notes,omitempty"`
	TargetDate      *time.Time             `json:"target_date,omitempty"`
	CreatedAt       string                 `json:"created_at"`
	UpdatedAt       string                 `json:"updated_at"`
}

// WorkOrderListResponse represents a paginated list of work orders
type WorkOrderListResponse struct {
	WorkOrders []WorkOrderResponse `json:"work_orders"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new work order. The initial status is ASSIGNED when a
// team is attached, PENDING otherwise.
func (s *WorkOrderService) Create(req *CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Validate aircraft model exists
	model, err := s.aircraftModelRepo.GetByID(req.AircraftModelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAircraftModelNotFound
		}
		return nil, fmt.Errorf("failed to verify aircraft model: %w", err)
	}

	status := models.WorkOrderStatusPending
	var assignedTeam *models.Team
	if req.AssignedTeamID != nil {
		assignedTeam, err = s.teamRepo.GetByID(*req.AssignedTeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		if assignedTeam.Type != models.TeamTypeAssembly {
			return nil, apperrors.ErrNotAnAssemblyTeam
		}
		status = models.WorkOrderStatusAssigned
	}

	// Validate creator if provided
	if req.CreatedByID != nil {
		if _, err := s.personnelRepo.GetByID(*req.CreatedByID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonnelNotFound
			}
			return nil, fmt.Errorf("failed to verify personnel: %w", err)
		}
	}

	order := &models.WorkOrder{
		AircraftModelID: req.AircraftModelID,
		Quantity:        req.Quantity,
		Status:          status,
		CreatedByID:     req.CreatedByID,
		AssignedTeamID:  req.AssignedTeamID,
		Notes:           req.Notes,
		TargetDate:      req.TargetDate,
	}

	if err := s.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}

	order.AircraftModel = model
	order.AssignedTeam = assignedTeam
	return s.toResponse(order, 0), nil
}

// GetByID retrieves a work order by ID
func (s *WorkOrderService) GetByID(id uuid.UUID) (*WorkOrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return s.toResponse(order, int64(len(order.Aircraft))), nil
}

// List retrieves work orders matching the filter with pagination
func (s *WorkOrderService) List(filter repository.WorkOrderFilter, page, pageSize int) (*WorkOrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := s.repo.GetAll(filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}

	responses := make([]WorkOrderResponse, len(orders))
	for i := range orders {
		count, err := s.aircraftRepo.CountByWorkOrder(orders[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count aircraft: %w", err)
		}
		responses[i] = *s.toResponse(&orders[i], count)
	}

	return &WorkOrderListResponse{
		WorkOrders: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update changes the assignable fields of a work order and recomputes the
// derived status afterwards.
func (s *WorkOrderService) Update(id uuid.UUID, req *UpdateWorkOrderRequest) (*WorkOrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	if order.Status.IsTerminal() {
		return nil, apperrors.NewStateError(fmt.Sprintf("work order is %s and cannot be updated", order.Status))
	}

	if req.AssignedTeamID != nil {
		team, err := s.teamRepo.GetByID(*req.AssignedTeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		if team.Type != models.TeamTypeAssembly {
			return nil, apperrors.ErrNotAnAssemblyTeam
		}
		order.AssignedTeamID = req.AssignedTeamID
		order.AssignedTeam = team
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}
	if req.TargetDate != nil {
		order.TargetDate = req.TargetDate
	}

	if err := s.repo.Update(order); err != nil {
		return nil, fmt.Errorf("failed to update work order: %w", err)
	}

	if err := s.Recompute(id); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Recompute derives the work order status from the count of linked aircraft.
// Cancelled orders are never revived. Completion is reversible: detaching an
// aircraft from a completed order moves it back to IN_PROGRESS.
func (s *WorkOrderService) Recompute(id uuid.UUID) error {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkOrderNotFound
		}
		return fmt.Errorf("failed to get work order: %w", err)
	}
	if order.Status == models.WorkOrderStatusCancelled {
		return nil
	}

	count, err := s.aircraftRepo.CountByWorkOrder(id)
	if err != nil {
		return fmt.Errorf("failed to count aircraft: %w", err)
	}

	var next models.WorkOrderStatus
	switch {
	case count >= int64(order.Quantity):
		next = models.WorkOrderStatusCompleted
	case count > 0:
		next = models.WorkOrderStatusInProgress
	case order.AssignedTeamID != nil:
		next = models.WorkOrderStatusAssigned
	default:
		next = models.WorkOrderStatusPending
	}

	if next == order.Status {
		return nil
	}
	if err := s.repo.UpdateStatus(id, next); err != nil {
		return fmt.Errorf("failed to update work order status: %w", err)
	}
	return nil
}

// Cancel cancels a work order and detaches its linked aircraft. The aircraft
// themselves are untouched; cancellation is terminal.
func (s *WorkOrderService) Cancel(id uuid.UUID) (*WorkOrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	switch order.Status {
	case models.WorkOrderStatusCancelled:
		return nil, apperrors.ErrWorkOrderAlreadyCancelled
	case models.WorkOrderStatusCompleted:
		return nil, apperrors.ErrWorkOrderCompleted
	}

	if err := s.aircraftRepo.DetachFromWorkOrder(id); err != nil {
		return nil, fmt.Errorf("failed to detach aircraft: %w", err)
	}
	if err := s.repo.UpdateStatus(id, models.WorkOrderStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel work order: %w", err)
	}

	order.Status = models.WorkOrderStatusCancelled
	order.Aircraft = nil
	return s.toResponse(order, 0), nil
}

func (s *WorkOrderService) toResponse(order *models.WorkOrder, completed int64) *WorkOrderResponse {
	resp := &WorkOrderResponse{
		ID:              order.ID,
		AircraftModelID: order.AircraftModelID,
		Quantity:        order.Quantity,
		Status:          order.Status,
		AssignedTeamID:  order.AssignedTeamID,
		CompletedCount:  completed,
		Notes:           order.Notes,
		TargetDate:      order.TargetDate,
		CreatedAt:       order.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       order.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if order.AircraftModel != nil {
		resp.AircraftModel = order.AircraftModel.Name
	}
	if order.AssignedTeam != nil {
		resp.AssignedTeam = order.AssignedTeam.Name
	}
	return resp
}
