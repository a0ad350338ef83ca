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

// AircraftHandler handles HTTP requests for aircraft
type AircraftHandler struct {
	production *service.ProductionService
	aircraft   *service.AircraftService
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(production *service.ProductionService, aircraft *service.AircraftService) *AircraftHandler {
	return &AircraftHandler{
		production: production,
		aircraft:   aircraft,
	}
}

// Assemble handles aircraft assembly requests
// @Summary Assemble an aircraft
// @Description Build one aircraft by allocating the oldest available part for every slot. Fails without consuming parts when any slot cannot be filled.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param request body service.AssembleRequest true "Assembly request"
// @Success 201 {object} service.AircraftResponse "Aircraft assembled"
// @Failure 400 {object} ErrorResponse "Invalid request or non-assembly team"
// @Failure 404 {object} ErrorResponse "Team, model or work order not found"
// @Failure 409 {object} ErrorResponse "Insufficient parts"
// @Security BearerAuth
// @Router /aircraft/assemble [post]
func (h *AircraftHandler) Assemble(c *gin.Context) {
	var req service.AssembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// Attribute assembly to the authenticated personnel when not set
	if req.PersonnelID == nil {
		if personnelID, ok := auth.GetPersonnelID(c); ok {
			req.PersonnelID = &personnelID
		}
	}

	resp, err := h.production.RequestAssembly(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles retrieving a single aircraft
// @Summary Get an aircraft
// @Description Get an aircraft by ID with its slot parts
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID"
// @Success 200 {object} service.AircraftResponse "Aircraft details"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [get]
func (h *AircraftHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid aircraft ID"})
		return
	}

	resp, err := h.aircraft.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles listing aircraft with filters
// @Summary List aircraft
// @Description List aircraft filtered by status, model, work order or assembling team
// @Tags aircraft
// @Produce json
// @Param status query string false "Aircraft status (ACTIVE, MAINTENANCE, SOLD, RECYCLED)"
// @Param aircraft_model_id query string false "Aircraft model ID"
// @Param work_order_id query string false "Work order ID"
// @Param team_id query string false "Assembling team ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.AircraftListResponse "Paginated aircraft"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /aircraft [get]
func (h *AircraftHandler) List(c *gin.Context) {
	var filter repository.AircraftFilter

	if status := c.Query("status"); status != "" {
		s := models.AircraftStatus(status)
		filter.Status = &s
	}
	if raw := c.Query("aircraft_model_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid aircraft model ID"})
			return
		}
		filter.AircraftModelID = &id
	}
	if raw := c.Query("work_order_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid work order ID"})
			return
		}
		filter.WorkOrderID = &id
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

	resp, err := h.aircraft.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles aircraft status and work order changes
// @Summary Update an aircraft
// @Description Change an aircraft's status or work order link. Recycled aircraft cannot be updated.
// @Tags aircraft
// @Accept json
// @Produce json
// @Param id path string true "Aircraft ID"
// @Param request body service.UpdateAircraftRequest true "Update request"
// @Success 200 {object} service.AircraftResponse "Aircraft updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Failure 409 {object} ErrorResponse "Aircraft is recycled"
// @Security BearerAuth
// @Router /aircraft/{id} [patch]
func (h *AircraftHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid aircraft ID"})
		return
	}

	var req service.UpdateAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.production.UpdateAircraft(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recycle handles aircraft recycling requests
// @Summary Recycle an aircraft
// @Description Dismantle an aircraft, returning its slot parts to the available pool
// @Tags aircraft
// @Produce json
// @Param id path string true "Aircraft ID"
// @Success 200 {object} service.AircraftResponse "Aircraft recycled"
// @Failure 404 {object} ErrorResponse "Aircraft not found"
// @Security BearerAuth
// @Router /aircraft/{id} [delete]
func (h *AircraftHandler) Recycle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid aircraft ID"})
		return
	}

	resp, err := h.production.RequestAircraftRecycle(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
