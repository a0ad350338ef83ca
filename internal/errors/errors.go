package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a client-correctable validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// ConflictError represents a conflict with the current inventory state,
// such as losing an allocation race. Conflicts are retryable.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// StateError represents an operation that is invalid for the entity's
// current lifecycle state.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for StateError
func (e *StateError) Is(target error) bool {
	t, ok := target.(*StateError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// InsufficientPartsError reports an assembly attempt that could not fill
// every slot. Missing lists every unmet slot category; no part changes
// status when this error is returned.
type InsufficientPartsError struct {
	Missing []string
}

func (e *InsufficientPartsError) Error() string {
	return fmt.Sprintf("insufficient parts for assembly, missing: %s", strings.Join(e.Missing, ", "))
}

// Entity Not Found Errors
var (
	ErrTeamNotFound          = &NotFoundError{Entity: "team"}
	ErrPersonnelNotFound     = &NotFoundError{Entity: "personnel"}
	ErrPartNotFound          = &NotFoundError{Entity: "part"}
	ErrPartTypeNotFound      = &NotFoundError{Entity: "part type"}
	ErrAircraftNotFound      = &NotFoundError{Entity: "aircraft"}
	ErrAircraftModelNotFound = &NotFoundError{Entity: "aircraft model"}
	ErrWorkOrderNotFound     = &NotFoundError{Entity: "work order"}
)

// Validation Errors
var (
	ErrIncompatibleTeam       = &ValidationError{Field: "team", Message: "team cannot produce parts of this category"}
	ErrEmptyTeam              = &ValidationError{Field: "team", Message: "team has no registered personnel"}
	ErrNotAnAssemblyTeam      = &ValidationError{Field: "team", Message: "team is not an assembly team"}
	ErrWorkOrderNotAssignable = &ValidationError{Field: "work_order", Message: "work order is completed or cancelled and cannot accept aircraft"}
	ErrWorkOrderModelMismatch = &ValidationError{Field: "work_order", Message: "work order targets a different aircraft model"}
	ErrSerialModelMissing     = &ValidationError{Field: "aircraft_model", Message: "aircraft model is required for serial number allocation"}
	ErrTeamAlreadyExists      = &ValidationError{Field: "name", Message: "a team with this name already exists"}
	ErrPersonnelAlreadyExists = &ValidationError{Field: "username", Message: "a personnel record with this username already exists"}
)

// Conflict Errors
var (
	ErrPartInUse = &ConflictError{Message: "part is installed in an aircraft and cannot be recycled"}
	ErrTeamInUse = &ConflictError{Message: "team has produced parts or assembled aircraft and cannot be deleted"}
)

// State Errors
var (
	ErrWorkOrderAlreadyCancelled = &StateError{Message: "work order is already cancelled"}
	ErrWorkOrderCompleted        = &StateError{Message: "work order is completed and cannot be cancelled"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsState checks if an error is a StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// IsInsufficientParts checks if an error is an InsufficientPartsError
func IsInsufficientParts(err error) bool {
	var insufficientErr *InsufficientPartsError
	return errors.As(err, &insufficientErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewStateError creates a new StateError
func NewStateError(message string) error {
	return &StateError{Message: message}
}

// NewInsufficientPartsError creates an InsufficientPartsError listing the
// unmet slot categories.
func NewInsufficientPartsError(missing []string) error {
	return &InsufficientPartsError{Missing: missing}
}
