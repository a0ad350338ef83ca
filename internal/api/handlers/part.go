package handlers

import (
	"net/http"
	"strconv"

	"aircraft-production-backend/internal/auth"
	"aircraft-production-backend/internal/database/models"
	"aircraft-production-backend/internal/repository"
	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartHandler handles HTTP requests for parts
type PartHandler struct {
	production *service.ProductionService
	parts      *service.PartService
}

// NewPartHandler creates a new part handler
func NewPartHandler(production *service.ProductionService, parts *service.PartService) *PartHandler {
	return &PartHandler{
		production: production,
		parts:      parts,
	}
}

// Produce handles part production requests
// @Summary Produce a part
// @Description Produce a new part of the team's category for an aircraft model. The serial number is allocated automatically.
// @Tags parts
// @Accept json
// @Produce json
// @Param request body service.ProducePartRequest true "Production request"
// @Success 201 {object} service.PartResponse "Part produced"
// @Failure 400 {object} ErrorResponse "Invalid request or incompatible team"
// @Failure 404 {object} ErrorResponse "Team, part type or aircraft model not found"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) Produce(c *gin.Context) {
	var req service.ProducePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// Attribute production to the authenticated personnel when not set
	if req.PersonnelID == nil {
		if personnelID, ok := auth.GetPersonnelID(c); ok {
			req.PersonnelID = &personnelID
		}
	}

	resp, err := h.production.RequestProduction(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles retrieving a single part
// @Summary Get a part
// @Description Get a part by ID
// @Tags parts
// @Produce json
// @Param id path string true "Part ID"
// @Success 200 {object} service.PartResponse "Part details"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Security BearerAuth
// @Router /parts/{id} [get]
func (h *PartHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid part ID"})
		return
	}

	resp, err := h.parts.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles listing parts with filters
// @Summary List parts
// @Description List parts filtered by status, part type, aircraft model or producing team
// @Tags parts
// @Produce json
// @Param status query string false "Part status (AVAILABLE, USED, RECYCLED)"
// @Param part_type_id query string false "Part type ID"
// @Param aircraft_model_id query string false "Aircraft model ID"
// @Param team_id query string false "Producing team ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.PartListResponse "Paginated parts"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /parts [get]
func (h *PartHandler) List(c *gin.Context) {
	var filter repository.PartFilter

	if status := c.Query("status"); status != "" {
		s := models.PartStatus(status)
		filter.Status = &s
	}
	if raw := c.Query("part_type_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid part type ID"})
			return
		}
		filter.PartTypeID = &id
	}
	if raw := c.Query("aircraft_model_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid aircraft model ID"})
			return
		}
		filter.AircraftModelID = &id
	}
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
			return
		}
		filter.TeamID = &id
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.parts.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recycle handles part recycling requests
// @Summary Recycle a part
// @Description Retire an available part from the inventory pool. Installed parts cannot be recycled.
// @Tags parts
// @Produce json
// @Param id path string true "Part ID"
// @Success 200 {object} service.PartResponse "Part recycled"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Failure 409 {object} ErrorResponse "Part is installed in an aircraft"
// @Security BearerAuth
// @Router /parts/{id} [delete]
func (h *PartHandler) Recycle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid part ID"})
		return
	}

	resp, err := h.production.RequestPartRecycle(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
