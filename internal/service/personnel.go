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

// PersonnelService handles business logic for personnel
type PersonnelService struct {
	repo      repository.PersonnelRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewPersonnelService creates a new personnel service
func NewPersonnelService(repo repository.PersonnelRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *PersonnelService {
	return &PersonnelService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreatePersonnelRequest represents the request to register personnel
type CreatePersonnelRequest struct {
	Username string     `json:"username" validate:"required,min=1,max=100"`
	FullName string     `json:"full_name" validate:"required,max=200"`
	Email    string     `json:"email" validate:"omitempty,email"`
	TeamID   *uuid.UUID `json:"team_id,omitempty"`
}

// UpdatePersonnelRequest represents the request to update personnel
type UpdatePersonnelRequest struct {
	FullName *string    `json:"full_name,omitempty" validate:"omitempty,max=200"`
	Email    *string    `json:"email,omitempty" validate:"omitempty,email"`
	TeamID   *uuid.UUID `json:"team_id,omitempty"`
	Unassign bool       `json:"unassign,omitempty"`
}

// PersonnelResponse represents the response for personnel operations
type PersonnelResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email,omitempty"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	TeamName  string     `json:"team_name,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// PersonnelListResponse represents a paginated list of personnel
type PersonnelListResponse struct {
	Personnel []PersonnelResponse `json:"personnel"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// Create registers a new personnel record
func (s *PersonnelService) Create(req *CreatePersonnelRequest) (*PersonnelResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if username is taken
	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing personnel: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPersonnelAlreadyExists
	}

	// Validate team if provided
	var team *models.Team
	if req.TeamID != nil {
		team, err = s.teamRepo.GetByID(*req.TeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}

	person := &models.Personnel{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		TeamID:   req.TeamID,
	}
	if err := s.repo.Create(person); err != nil {
		return nil, fmt.Errorf("failed to create personnel: %w", err)
	}

	person.Team = team
	return s.toResponse(person), nil
}

// GetByID retrieves a personnel record by ID
func (s *PersonnelService) GetByID(id uuid.UUID) (*PersonnelResponse, error) {
	person, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}
	return s.toResponse(person), nil
}

// GetByUsername retrieves a personnel record by username
func (s *PersonnelService) GetByUsername(username string) (*PersonnelResponse, error) {
	person, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}
	return s.toResponse(person), nil
}

// List retrieves personnel, optionally filtered by team, with pagination
func (s *PersonnelService) List(teamID *uuid.UUID, page, pageSize int) (*PersonnelListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	people, total, err := s.repo.GetAll(teamID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}

	responses := make([]PersonnelResponse, len(people))
	for i := range people {
		responses[i] = *s.toResponse(&people[i])
	}

	return &PersonnelListResponse{
		Personnel: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update changes a personnel record's details or team assignment
func (s *PersonnelService) Update(id uuid.UUID, req *UpdatePersonnelRequest) (*PersonnelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	person, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonnelNotFound
		}
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}

	if req.FullName != nil {
		person.FullName = *req.FullName
	}
	if req.Email != nil {
		person.Email = *req.Email
	}
	if req.Unassign {
		person.TeamID = nil
		person.Team = nil
	} else if req.TeamID != nil {
		team, err := s.teamRepo.GetByID(*req.TeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
		person.TeamID = req.TeamID
		person.Team = team
	}

	if err := s.repo.Update(person); err != nil {
		return nil, fmt.Errorf("failed to update personnel: %w", err)
	}
	return s.toResponse(person), nil
}

// Delete removes a personnel record
func (s *PersonnelService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPersonnelNotFound
		}
		return fmt.Errorf("failed to get personnel: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete personnel: %w", err)
	}
	return nil
}

func (s *PersonnelService) toResponse(person *models.Personnel) *PersonnelResponse {
	resp := &PersonnelResponse{
		ID:        person.ID,
		Username:  person.Username,
		FullName:  person.FullName,
		Email:     person.Email,
		TeamID:    person.TeamID,
		CreatedAt: person.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: person.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if person.Team != nil {
		resp.TeamName = person.Team.Name
	}
	return resp
}
