package repository

import (
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartTypeRepository handles database operations for the part type reference table
type PartTypeRepository struct {
	db *gorm.DB
}

// NewPartTypeRepository creates a new part type repository
func NewPartTypeRepository(db *gorm.DB) *PartTypeRepository {
	return &PartTypeRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PartTypeRepository) WithTx(tx *gorm.DB) PartTypeRepositoryInterface {
	return &PartTypeRepository{db: tx}
}

// GetByID retrieves a part type by ID
func (r *PartTypeRepository) GetByID(id uuid.UUID) (*models.PartType, error) {
	var pt models.PartType
	err := r.db.First(&pt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// GetByCategory retrieves a part type by its category
func (r *PartTypeRepository) GetByCategory(category models.PartCategory) (*models.PartType, error) {
	var pt models.PartType
	err := r.db.First(&pt, "category = ?", category).Error
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// GetAll retrieves all part types
func (r *PartTypeRepository) GetAll() ([]models.PartType, error) {
	var types []models.PartType
	err := r.db.Order("category ASC").Find(&types).Error
	return types, err
}

// AircraftModelRepository handles database operations for the aircraft model reference table
type AircraftModelRepository struct {
	db *gorm.DB
}

// NewAircraftModelRepository creates a new aircraft model repository
func NewAircraftModelRepository(db *gorm.DB) *AircraftModelRepository {
	return &AircraftModelRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AircraftModelRepository) WithTx(tx *gorm.DB) AircraftModelRepositoryInterface {
	return &AircraftModelRepository{db: tx}
}

// GetByID retrieves an aircraft model by ID
func (r *AircraftModelRepository) GetByID(id uuid.UUID) (*models.AircraftModel, error) {
	var am models.AircraftModel
	err := r.db.First(&am, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &am, nil
}

// GetByName retrieves an aircraft model by name
func (r *AircraftModelRepository) GetByName(name string) (*models.AircraftModel, error) {
	var am models.AircraftModel
	err := r.db.First(&am, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &am, nil
}

// GetAll retrieves all aircraft models
func (r *AircraftModelRepository) GetAll() ([]models.AircraftModel, error) {
	var names []models.AircraftModel
	err := r.db.Order("name ASC").Find(&names).Error
	return names, err
}
