package repository

import (
	"errors"

	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PartRepository handles database operations for parts
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PartRepository) WithTx(tx *gorm.DB) PartRepositoryInterface {
	return &PartRepository{db: tx}
}

// Create creates a new part
func (r *PartRepository) Create(part *models.Part) error {
	return r.db.Create(part).Error
}

// GetByID retrieves a part by ID with its references preloaded
func (r *PartRepository) GetByID(id uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.
		Preload("PartType").
		Preload("AircraftModel").
		Preload("ProducedBy").
		First(&part, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}

// GetAll retrieves parts matching the filter with pagination
func (r *PartRepository) GetAll(filter PartFilter, limit, offset int) ([]models.Part, int64, error) {
	var parts []models.Part
	var total int64

	query := r.db.Model(&models.Part{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.PartTypeID != nil {
		query = query.Where("part_type_id = ?", *filter.PartTypeID)
	}
	if filter.AircraftModelID != nil {
		query = query.Where("aircraft_model_id = ?", *filter.AircraftModelID)
	}
	if filter.TeamID != nil {
		query = query.Where("produced_by_team_id = ?", *filter.TeamID)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.
		Preload("PartType").
		Preload("AircraftModel").
		Preload("ProducedBy").
		Limit(limit).Offset(offset).
		Order("produced_at DESC").
		Find(&parts).Error
	if err != nil {
		return nil, 0, err
	}

	return parts, total, nil
}

// UpdateStatus sets the status of a part
func (r *PartRepository) UpdateStatus(id uuid.UUID, status models.PartStatus) error {
	return r.db.Model(&models.Part{}).Where("id = ?", id).Update("status", status).Error
}

// FindOldestAvailable returns the oldest AVAILABLE part of the given type and
// model, locked FOR UPDATE so concurrent allocations cannot pick the same row.
// Ties on produced_at resolve by serial number. Returns (nil, nil) when the
// pool is empty.
func (r *PartRepository) FindOldestAvailable(partTypeID, aircraftModelID uuid.UUID) (*models.Part, error) {
	var part models.Part
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("part_type_id = ? AND aircraft_model_id = ? AND status = ?",
			partTypeID, aircraftModelID, models.PartStatusAvailable).
		Order("produced_at ASC, serial_number ASC").
		First(&part).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &part, nil
}

// MaxSerialSuffix returns the largest numeric suffix among serial numbers
// starting with prefix, or 0 when none exist.
func (r *PartRepository) MaxSerialSuffix(prefix string) (int, error) {
	var max int
	err := r.db.Model(&models.Part{}).
		Where("serial_number LIKE ?", prefix+"%").
		Select(`COALESCE(MAX(CAST(substring(serial_number from '([0-9]+)$') AS INTEGER)), 0)`).
		Scan(&max).Error
	return max, err
}

// StatusCounts aggregates part counts by model, type and status
func (r *PartRepository) StatusCounts() ([]PartStatusCount, error) {
	var rows []PartStatusCount
	err := r.db.Model(&models.Part{}).
		Select("aircraft_model_id, part_type_id, status, COUNT(*) as count").
		Group("aircraft_model_id, part_type_id, status").
		Scan(&rows).Error
	return rows, err
}
