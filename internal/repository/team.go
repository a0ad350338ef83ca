package repository

import (
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *TeamRepository) WithTx(tx *gorm.DB) TeamRepositoryInterface {
	return &TeamRepository{db: tx}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves teams, optionally filtered by type, with pagination
func (r *TeamRepository) GetAll(teamType *models.TeamType, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{})
	if teamType != nil {
		query = query.Where("type = ?", *teamType)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Members").Limit(limit).Offset(offset).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// MemberCount returns the number of personnel registered to a team
func (r *TeamRepository) MemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Personnel{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// ProducedPartCount returns the number of parts a team has produced
func (r *TeamRepository) ProducedPartCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Part{}).Where("produced_by_team_id = ?", teamID).Count(&count).Error
	return count, err
}

// AssembledAircraftCount returns the number of aircraft a team has assembled
func (r *TeamRepository) AssembledAircraftCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Aircraft{}).Where("assembled_by_team_id = ?", teamID).Count(&count).Error
	return count, err
}
