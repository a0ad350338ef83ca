package repository

import (
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AircraftRepository handles database operations for aircraft
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *AircraftRepository) WithTx(tx *gorm.DB) AircraftRepositoryInterface {
	return &AircraftRepository{db: tx}
}

// Create creates a new aircraft
func (r *AircraftRepository) Create(aircraft *models.Aircraft) error {
	return r.db.Create(aircraft).Error
}

// GetByID retrieves an aircraft by ID with slots and references preloaded
func (r *AircraftRepository) GetByID(id uuid.UUID) (*models.Aircraft, error) {
	var aircraft models.Aircraft
	err := r.db.
		Preload("AircraftModel").
		Preload("AssembledBy").
		Preload("WorkOrder").
		Preload("Wing").Preload("Wing.PartType").
		Preload("Fuselage").Preload("Fuselage.PartType").
		Preload("Tail").Preload("Tail.PartType").
		Preload("Avionics").Preload("Avionics.PartType").
		First(&aircraft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &aircraft, nil
}

// GetAll retrieves aircraft matching the filter with pagination
func (r *AircraftRepository) GetAll(filter AircraftFilter, limit, offset int) ([]models.Aircraft, int64, error) {
	var aircraft []models.Aircraft
	var total int64

	query := r.db.Model(&models.Aircraft{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AircraftModelID != nil {
		query = query.Where("aircraft_model_id = ?", *filter.AircraftModelID)
	}
	if filter.WorkOrderID != nil {
		query = query.Where("work_order_id = ?", *filter.WorkOrderID)
	}
	if filter.TeamID != nil {
		query = query.Where("assembled_by_team_id = ?", *filter.TeamID)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.
		Preload("AircraftModel").
		Preload("AssembledBy").
		Limit(limit).Offset(offset).
		Order("assembled_at DESC").
		Find(&aircraft).Error
	if err != nil {
		return nil, 0, err
	}

	return aircraft, total, nil
}

// Update persists all fields of an aircraft, including cleared slot references
func (r *AircraftRepository) Update(aircraft *models.Aircraft) error {
	return r.db.Save(aircraft).Error
}

// CountByWorkOrder returns the number of aircraft linked to a work order
func (r *AircraftRepository) CountByWorkOrder(workOrderID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Aircraft{}).Where("work_order_id = ?", workOrderID).Count(&count).Error
	return count, err
}

// DetachFromWorkOrder clears the work order reference on all linked aircraft
func (r *AircraftRepository) DetachFromWorkOrder(workOrderID uuid.UUID) error {
	return r.db.Model(&models.Aircraft{}).
		Where("work_order_id = ?", workOrderID).
		Update("work_order_id", nil).Error
}

// MaxSerialSuffix returns the largest numeric suffix among serial numbers
// starting with prefix, or 0 when none exist.
func (r *AircraftRepository) MaxSerialSuffix(prefix string) (int, error) {
	var max int
	err := r.db.Model(&models.Aircraft{}).
		Where("serial_number LIKE ?", prefix+"%").
		Select(`COALESCE(MAX(CAST(substring(serial_number from '([0-9]+)$') AS INTEGER)), 0)`).
		Scan(&max).Error
	return max, err
}

// StatusCounts aggregates aircraft counts by model and status
func (r *AircraftRepository) StatusCounts() ([]AircraftStatusCount, error) {
	var rows []AircraftStatusCount
	err := r.db.Model(&models.Aircraft{}).
		Select("aircraft_model_id, status, COUNT(*) as count").
		Group("aircraft_model_id, status").
		Scan(&rows).Error
	return rows, err
}
