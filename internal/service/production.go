package service

import (
	"aircraft-production-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductionService coordinates the state-changing production operations.
// Each entry point runs inside one database transaction so an operation
// either fully happens or leaves no trace.
type ProductionService struct {
	db         *gorm.DB
	parts      *PartService
	assembly   *AssemblyService
	aircraft   *AircraftService
	workOrders *WorkOrderService
	log        *logger.Logger
}

// NewProductionService creates a new production coordinator
func NewProductionService(
	db *gorm.DB,
	parts *PartService,
	assembly *AssemblyService,
	aircraft *AircraftService,
	workOrders *WorkOrderService,
	log *logger.Logger,
) *ProductionService {
	return &ProductionService{
		db:         db,
		parts:      parts,
		assembly:   assembly,
		aircraft:   aircraft,
		workOrders: workOrders,
		log:        log,
	}
}

// RequestProduction produces a new part
func (s *ProductionService) RequestProduction(req *ProducePartRequest) (*PartResponse, error) {
	var resp *PartResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = s.parts.WithTx(tx).Produce(req)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]interface{}{
		"serial_number": resp.SerialNumber,
		"category":      resp.Category,
		"team_id":       req.TeamID,
	}).Info("Part produced")
	return resp, nil
}

// RequestAssembly assembles one aircraft
func (s *ProductionService) RequestAssembly(req *AssembleRequest) (*AircraftResponse, error) {
	var resp *AircraftResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = s.assembly.WithTx(tx).Assemble(req)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]interface{}{
		"serial_number": resp.SerialNumber,
		"model":         resp.AircraftModel,
		"team_id":       req.TeamID,
	}).Info("Aircraft assembled")
	return resp, nil
}

// RequestPartRecycle retires a part from the pool
func (s *ProductionService) RequestPartRecycle(id uuid.UUID) (*PartResponse, error) {
	var resp *PartResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = s.parts.WithTx(tx).Recycle(id)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	s.log.WithField("serial_number", resp.SerialNumber).Info("Part recycled")
	return resp, nil
}

// RequestAircraftRecycle dismantles an aircraft, returning its parts to the
// pool and recomputing the work order it was detached from.
func (s *ProductionService) RequestAircraftRecycle(id uuid.UUID) (*AircraftResponse, error) {
	var resp *AircraftResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		var detached *uuid.UUID
		resp, detached, txErr = s.aircraft.WithTx(tx).Recycle(id)
		if txErr != nil {
			return txErr
		}
		if detached != nil {
			return s.workOrders.WithTx(tx).Recompute(*detached)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.WithField("serial_number", resp.SerialNumber).Info("Aircraft recycled")
	return resp, nil
}

// UpdateAircraft changes an aircraft's status or work order link and keeps
// the affected work orders' statuses in line.
func (s *ProductionService) UpdateAircraft(id uuid.UUID, req *UpdateAircraftRequest) (*AircraftResponse, error) {
	var resp *AircraftResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		var affected []uuid.UUID
		resp, affected, txErr = s.aircraft.WithTx(tx).Update(id, req)
		if txErr != nil {
			return txErr
		}
		orders := s.workOrders.WithTx(tx)
		for _, orderID := range affected {
			if txErr := orders.Recompute(orderID); txErr != nil {
				return txErr
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateWorkOrder creates a new work order
func (s *ProductionService) CreateWorkOrder(req *CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	var resp *WorkOrderResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = s.workOrders.WithTx(tx).Create(req)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(map[string]interface{}{
		"work_order_id": resp.ID,
		"model":         resp.AircraftModel,
		"quantity":      resp.Quantity,
		"status":        resp.Status,
	}).Info("Work order created")
	return resp, nil
}

// UpdateWorkOrder updates a work order's assignable fields
func (s *ProductionService) UpdateWorkOrder(id uuid.UUID, req *UpdateWorkOrderRequest) (*WorkOrderResponse, error) {
	var resp *WorkOrderResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = s.workOrders.WithTx(tx).Update(id, req)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// RequestWorkOrderCancellation cancels a work order and detaches its aircraft
func (s *ProductionService) RequestWorkOrderCancellation(id uuid.UUID) (*WorkOrderResponse, error) {
	var resp *WorkOrderResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		resp, txErr = s.workOrders.WithTx(tx).Cancel(id)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	s.log.WithField("work_order_id", resp.ID).Info("Work order cancelled")
	return resp, nil
}
