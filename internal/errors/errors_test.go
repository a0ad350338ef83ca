package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "team not found", ErrTeamNotFound.Error())
	assert.Equal(t, "work order not found", ErrWorkOrderNotFound.Error())

	wrapped := fmt.Errorf("lookup failed: %w", ErrPartNotFound)
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrPartNotFound))
	assert.False(t, errors.Is(wrapped, ErrTeamNotFound))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("status", "invalid aircraft status")
	assert.Equal(t, "validation error: status - invalid aircraft status", err.Error())
	assert.True(t, IsValidation(err))

	wrapped := fmt.Errorf("update rejected: %w", ErrIncompatibleTeam)
	assert.True(t, IsValidation(wrapped))
	assert.True(t, errors.Is(wrapped, ErrIncompatibleTeam))
	assert.False(t, errors.Is(wrapped, ErrEmptyTeam))
}

func TestValidationErrorWithoutField(t *testing.T) {
	err := NewValidationError("", "request is malformed")
	assert.Equal(t, "validation error: request is malformed", err.Error())
}

func TestConflictError(t *testing.T) {
	wrapped := fmt.Errorf("recycle failed: %w", ErrPartInUse)
	assert.True(t, IsConflict(wrapped))
	assert.True(t, errors.Is(wrapped, ErrPartInUse))
	assert.False(t, IsConflict(ErrTeamNotFound))
}

func TestStateError(t *testing.T) {
	wrapped := fmt.Errorf("cancel failed: %w", ErrWorkOrderAlreadyCancelled)
	assert.True(t, IsState(wrapped))
	assert.True(t, errors.Is(wrapped, ErrWorkOrderAlreadyCancelled))
	assert.False(t, errors.Is(wrapped, ErrWorkOrderCompleted))
}

func TestInsufficientPartsError(t *testing.T) {
	err := NewInsufficientPartsError([]string{"WING", "AVIONICS"})
	assert.Equal(t, "insufficient parts for assembly, missing: WING, AVIONICS", err.Error())
	assert.True(t, IsInsufficientParts(err))

	var insufficientErr *InsufficientPartsError
	assert.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, []string{"WING", "AVIONICS"}, insufficientErr.Missing)
}

func TestHelpersRejectOtherKinds(t *testing.T) {
	plain := errors.New("boom")
	assert.False(t, IsNotFound(plain))
	assert.False(t, IsValidation(plain))
	assert.False(t, IsConflict(plain))
	assert.False(t, IsState(plain))
	assert.False(t, IsInsufficientParts(plain))
}
