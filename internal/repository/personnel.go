package repository

import (
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonnelRepository handles database operations for personnel
type PersonnelRepository struct {
	db *gorm.DB
}

// NewPersonnelRepository creates a new personnel repository
func NewPersonnelRepository(db *gorm.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PersonnelRepository) WithTx(tx *gorm.DB) PersonnelRepositoryInterface {
	return &PersonnelRepository{db: tx}
}

// Create creates a new personnel record
func (r *PersonnelRepository) Create(person *models.Personnel) error {
	return r.db.Create(person).Error
}

// GetByID retrieves a personnel record by ID
func (r *PersonnelRepository) GetByID(id uuid.UUID) (*models.Personnel, error) {
	var person models.Personnel
	err := r.db.Preload("Team").First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByUsername retrieves a personnel record by username
func (r *PersonnelRepository) GetByUsername(username string) (*models.Personnel, error) {
	var person models.Personnel
	err := r.db.Preload("Team").First(&person, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetAll retrieves personnel, optionally filtered by team, with pagination
func (r *PersonnelRepository) GetAll(teamID *uuid.UUID, limit, offset int) ([]models.Personnel, int64, error) {
	var people []models.Personnel
	var total int64

	query := r.db.Model(&models.Personnel{})
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Team").Limit(limit).Offset(offset).Order("username ASC").Find(&people).Error
	if err != nil {
		return nil, 0, err
	}

	return people, total, nil
}

// Update updates a personnel record
func (r *PersonnelRepository) Update(person *models.Personnel) error {
	return r.db.Save(person).Error
}

// Delete deletes a personnel record
func (r *PersonnelRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Personnel{}, "id = ?", id).Error
}
