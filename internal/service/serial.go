package service

import (
	"fmt"

	"aircraft-production-backend/internal/catalog"
	"aircraft-production-backend/internal/database/models"
	apperrors "aircraft-production-backend/internal/errors"
	"aircraft-production-backend/internal/repository"

	"gorm.io/gorm"
)

// SerialAllocator produces serial numbers by scanning the highest existing
// numeric suffix under a prefix and adding one. Suffixes of deleted rows are
// never reused going backwards; the next serial is always max+1.
type SerialAllocator struct {
	partRepo     repository.PartRepositoryInterface
	aircraftRepo repository.AircraftRepositoryInterface
}

// NewSerialAllocator creates a new serial allocator
func NewSerialAllocator(partRepo repository.PartRepositoryInterface, aircraftRepo repository.AircraftRepositoryInterface) *SerialAllocator {
	return &SerialAllocator{
		partRepo:     partRepo,
		aircraftRepo: aircraftRepo,
	}
}

// WithTx returns a copy of the allocator bound to the given transaction
func (s *SerialAllocator) WithTx(tx *gorm.DB) *SerialAllocator {
	return &SerialAllocator{
		partRepo:     s.partRepo.WithTx(tx),
		aircraftRepo: s.aircraftRepo.WithTx(tx),
	}
}

// NextPartSerial allocates the next part serial for a model and category,
// formatted as <MODEL>-<ABBREV>-<NNNNN>, e.g. TB2-KNT-00001.
func (s *SerialAllocator) NextPartSerial(modelName string, category models.PartCategory) (string, error) {
	if modelName == "" {
		return "", apperrors.ErrSerialModelMissing
	}
	prefix := fmt.Sprintf("%s-%s-", modelName, catalog.Abbreviation(category))
	max, err := s.partRepo.MaxSerialSuffix(prefix)
	if err != nil {
		return "", fmt.Errorf("failed to scan part serials: %w", err)
	}
	return fmt.Sprintf("%s%05d", prefix, max+1), nil
}

// NextAircraftSerial allocates the next aircraft serial for a model,
// formatted as <MODEL>-<NNNN>, e.g. TB2-0001.
func (s *SerialAllocator) NextAircraftSerial(modelName string) (string, error) {
	if modelName == "" {
		return "", apperrors.ErrSerialModelMissing
	}
	prefix := fmt.Sprintf("%s-", modelName)
	max, err := s.aircraftRepo.MaxSerialSuffix(prefix)
	if err != nil {
		return "", fmt.Errorf("failed to scan aircraft serials: %w", err)
	}
	return fmt.Sprintf("%s%04d", prefix, max+1), nil
}
