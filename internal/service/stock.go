package service

import (
	"fmt"

	"aircraft-production-backend/internal/database/models"
	"aircraft-production-backend/internal/repository"
)

// StockService aggregates inventory levels for the stock overview
type StockService struct {
	partRepo          repository.PartRepositoryInterface
	aircraftRepo      repository.AircraftRepositoryInterface
	partTypeRepo      repository.PartTypeRepositoryInterface
	aircraftModelRepo repository.AircraftModelRepositoryInterface
}

// NewStockService creates a new stock service
func NewStockService(
	partRepo repository.PartRepositoryInterface,
	aircraftRepo repository.AircraftRepositoryInterface,
	partTypeRepo repository.PartTypeRepositoryInterface,
	aircraftModelRepo repository.AircraftModelRepositoryInterface,
) *StockService {
	return &StockService{
		partRepo:          partRepo,
		aircraftRepo:      aircraftRepo,
		partTypeRepo:      partTypeRepo,
		aircraftModelRepo: aircraftModelRepo,
	}
}

// PartStockEntry reports part counts for one model and category
type PartStockEntry struct {
	AircraftModel string                      `json:"aircraft_model"`
	Category      models.PartCategory         `json:"category"`
	Counts        map[models.PartStatus]int64 `json:"counts"`
	WarningZero   bool                        `json:"warning_zero_stock"`
}

// AircraftStockEntry reports aircraft counts for one model
type AircraftStockEntry struct {
	AircraftModel string                          `json:"aircraft_model"`
	Counts        map[models.AircraftStatus]int64 `json:"counts"`
	Total         int64                           `json:"total"`
}

// StockResponse is the full inventory overview. Every model and category
// combination appears even when no parts exist, so shortages are visible.
type StockResponse struct {
	Parts    []PartStockEntry     `json:"parts"`
	Aircraft []AircraftStockEntry `json:"aircraft"`
}

// Overview builds the stock report across all models and part categories
func (s *StockService) Overview() (*StockResponse, error) {
	types, err := s.partTypeRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load part types: %w", err)
	}
	modelRows, err := s.aircraftModelRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load aircraft models: %w", err)
	}
	partCounts, err := s.partRepo.StatusCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate parts: %w", err)
	}
	aircraftCounts, err := s.aircraftRepo.StatusCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate aircraft: %w", err)
	}

	entries := make(map[string]*PartStockEntry, len(modelRows)*len(types))
	resp := &StockResponse{}
	for _, model := range modelRows {
		for _, pt := range types {
			entry := &PartStockEntry{
				AircraftModel: model.Name,
				Category:      pt.Category,
				Counts:        make(map[models.PartStatus]int64, len(models.PartStatuses)),
				WarningZero:   true,
			}
			for _, status := range models.PartStatuses {
				entry.Counts[status] = 0
			}
			entries[model.ID.String()+"/"+string(pt.Category)] = entry
		}
	}

	typeCategory := make(map[string]models.PartCategory, len(types))
	for _, pt := range types {
		typeCategory[pt.ID.String()] = pt.Category
	}
	for _, row := range partCounts {
		category, ok := typeCategory[row.PartTypeID.String()]
		if !ok {
			continue
		}
		entry, ok := entries[row.AircraftModelID.String()+"/"+string(category)]
		if !ok {
			continue
		}
		entry.Counts[row.Status] = row.Count
		if row.Status == models.PartStatusAvailable && row.Count > 0 {
			entry.WarningZero = false
		}
	}

	// Preserve model then category ordering
	for _, model := range modelRows {
		for _, pt := range types {
			if entry, ok := entries[model.ID.String()+"/"+string(pt.Category)]; ok {
				resp.Parts = append(resp.Parts, *entry)
			}
		}
	}

	aircraftEntries := make(map[string]*AircraftStockEntry, len(modelRows))
	for _, model := range modelRows {
		entry := &AircraftStockEntry{
			AircraftModel: model.Name,
			Counts:        make(map[models.AircraftStatus]int64, len(models.AircraftStatuses)),
		}
		for _, status := range models.AircraftStatuses {
			entry.Counts[status] = 0
		}
		aircraftEntries[model.ID.String()] = entry
	}
	for _, row := range aircraftCounts {
		entry, ok := aircraftEntries[row.AircraftModelID.String()]
		if !ok {
			continue
		}
		entry.Counts[row.Status] = row.Count
		entry.Total += row.Count
	}
	for _, model := range modelRows {
		if entry, ok := aircraftEntries[model.ID.String()]; ok {
			resp.Aircraft = append(resp.Aircraft, *entry)
		}
	}

	return resp, nil
}
