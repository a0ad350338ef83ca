package repository

import (
	"aircraft-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkOrderRepository handles database operations for work orders
type WorkOrderRepository struct {
	db *gorm.DB
}

// NewWorkOrderRepository creates a new work order repository
func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *WorkOrderRepository) WithTx(tx *gorm.DB) WorkOrderRepositoryInterface {
	return &WorkOrderRepository{db: tx}
}

// Create creates a new work order
func (r *WorkOrderRepository) Create(order *models.WorkOrder) error {
	return r.db.Create(order).Error
}

// GetByID retrieves a work order by ID with references preloaded
func (r *WorkOrderRepository) GetByID(id uuid.UUID) (*models.WorkOrder, error) {
	var order models.WorkOrder
	err := r.db.
		Preload("AircraftModel").
		Preload("AssignedTeam").
		Preload("Aircraft").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAll retrieves work orders matching the filter with pagination
func (r *WorkOrderRepository) GetAll(filter WorkOrderFilter, limit, offset int) ([]models.WorkOrder, int64, error) {
	var orders []models.WorkOrder
	var total int64

	query := r.db.Model(&models.WorkOrder{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AircraftModelID != nil {
		query = query.Where("aircraft_model_id = ?", *filter.AircraftModelID)
	}
	if filter.AssignedTeamID != nil {
		query = query.Where("assigned_team_id = ?", *filter.AssignedTeamID)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.
		Preload("AircraftModel").
		Preload("AssignedTeam").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// Update persists all fields of a work order
func (r *WorkOrderRepository) Update(order *models.WorkOrder) error {
	return r.db.Save(order).Error
}

// UpdateStatus sets the status of a work order
func (r *WorkOrderRepository) UpdateStatus(id uuid.UUID, status models.WorkOrderStatus) error {
	return r.db.Model(&models.WorkOrder{}).Where("id = ?", id).Update("status", status).Error
}
