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

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string          `json:"name" validate:"required,min=1,max=100"`
	Type models.TeamType `json:"type" validate:"required"`
}

// UpdateTeamRequest represents the request to rename a team. The type is
// fixed at creation because produced parts reference it.
type UpdateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Name               string              `json:"name"`
	Type               models.TeamType     `json:"type"`
	MemberCount        int64               `json:"member_count"`
	ProducibleCategory models.PartCategory `json:"producible_category,omitempty"`
	CanPerformAssembly bool                `json:"can_perform_assembly"`
	CreatedAt          string              `json:"created_at"`
	UpdatedAt          string              `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid team type")
	}

	// Check if team with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamAlreadyExists
	}

	team := &models.Team{
		Name: req.Name,
		Type: req.Type,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team, 0), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	count, err := s.repo.MemberCount(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	return s.toResponse(team, count), nil
}

// List retrieves teams, optionally filtered by type, with pagination
func (s *TeamService) List(teamType *models.TeamType, page, pageSize int) (*TeamListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	teams, total, err := s.repo.GetAll(teamType, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i], int64(len(teams[i].Members)))
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update renames a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if team.Name != req.Name {
		existing, err := s.repo.GetByName(req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing team: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrTeamAlreadyExists
		}
	}

	team.Name = req.Name
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	count, err := s.repo.MemberCount(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	return s.toResponse(team, count), nil
}

// Delete removes a team that has no production history
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	produced, err := s.repo.ProducedPartCount(id)
	if err != nil {
		return fmt.Errorf("failed to count produced parts: %w", err)
	}
	assembled, err := s.repo.AssembledAircraftCount(id)
	if err != nil {
		return fmt.Errorf("failed to count assembled aircraft: %w", err)
	}
	if produced > 0 || assembled > 0 {
		return apperrors.ErrTeamInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *TeamService) toResponse(team *models.Team, memberCount int64) *TeamResponse {
	resp := &TeamResponse{
		ID:                 team.ID,
		Name:               team.Name,
		Type:               team.Type,
		MemberCount:        memberCount,
		CanPerformAssembly: catalog.CanPerformAssembly(team.Type),
		CreatedAt:          team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if category, ok := catalog.ProducibleCategory(team.Type); ok {
		resp.ProducibleCategory = category
	}
	return resp
}
