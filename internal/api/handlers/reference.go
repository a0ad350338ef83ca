package handlers

import (
	"net/http"

	"aircraft-production-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the part type and aircraft model reference tables
type ReferenceHandler struct {
	partTypeRepo      repository.PartTypeRepositoryInterface
	aircraftModelRepo repository.AircraftModelRepositoryInterface
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(partTypeRepo repository.PartTypeRepositoryInterface, aircraftModelRepo repository.AircraftModelRepositoryInterface) *ReferenceHandler {
	return &ReferenceHandler{
		partTypeRepo:      partTypeRepo,
		aircraftModelRepo: aircraftModelRepo,
	}
}

// PartTypes lists the part type reference table
// @Summary List part types
// @Description List the fixed part categories with their ids
// @Tags reference
// @Produce json
// @Success 200 {array} models.PartType "Part types"
// @Security BearerAuth
// @Router /part-types [get]
func (h *ReferenceHandler) PartTypes(c *gin.Context) {
	types, err := h.partTypeRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// AircraftModels lists the aircraft model reference table
// @Summary List aircraft models
// @Description List the producible aircraft models with their ids
// @Tags reference
// @Produce json
// @Success 200 {array} models.AircraftModel "Aircraft models"
// @Security BearerAuth
// @Router /aircraft-models [get]
func (h *ReferenceHandler) AircraftModels(c *gin.Context) {
	names, err := h.aircraftModelRepo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}
