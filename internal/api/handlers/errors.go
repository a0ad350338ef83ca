package handlers

import (
	"errors"
	"net/http"

	apperrors "aircraft-production-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string   `json:"error" example:"error message"`
	Missing []string `json:"missing,omitempty"`
}

// respondError maps service errors onto HTTP status codes. Validation
// failures are 400, missing entities 404, state and inventory conflicts 409.
func respondError(c *gin.Context, err error) {
	var insufficientErr *apperrors.InsufficientPartsError
	var validatorErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &insufficientErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Missing: insufficientErr.Missing})
	case apperrors.IsConflict(err), apperrors.IsState(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err), errors.As(err, &validatorErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
