package handlers

import (
	"net/http"
	"strconv"

	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PersonnelHandler handles HTTP requests for personnel
type PersonnelHandler struct {
	personnel *service.PersonnelService
}

// NewPersonnelHandler creates a new personnel handler
func NewPersonnelHandler(personnel *service.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{personnel: personnel}
}

// Create handles personnel registration requests
// @Summary Register personnel
// @Description Register a new personnel record, optionally assigned to a team
// @Tags personnel
// @Accept json
// @Produce json
// @Param request body service.CreatePersonnelRequest true "Personnel request"
// @Success 201 {object} service.PersonnelResponse "Personnel registered"
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate username"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /personnel [post]
func (h *PersonnelHandler) Create(c *gin.Context) {
	var req service.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.personnel.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles retrieving a single personnel record
// @Summary Get personnel
// @Description Get a personnel record by ID
// @Tags personnel
// @Produce json
// @Param id path string true "Personnel ID"
// @Success 200 {object} service.PersonnelResponse "Personnel details"
// @Failure 404 {object} ErrorResponse "Personnel not found"
// @Security BearerAuth
// @Router /personnel/{id} [get]
func (h *PersonnelHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid personnel ID"})
		return
	}

	resp, err := h.personnel.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles listing personnel
// @Summary List personnel
// @Description List personnel, optionally filtered by team
// @Tags personnel
// @Produce json
// @Param team_id query string false "Team ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.PersonnelListResponse "Paginated personnel"
// @Security BearerAuth
// @Router /personnel [get]
func (h *PersonnelHandler) List(c *gin.Context) {
	var teamID *uuid.UUID
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
			return
		}
		teamID = &id
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.personnel.List(teamID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles personnel updates
// @Summary Update personnel
// @Description Change a personnel record's details or team assignment
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path string true "Personnel ID"
// @Param request body service.UpdatePersonnelRequest true "Update request"
// @Success 200 {object} service.PersonnelResponse "Personnel updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Personnel or team not found"
// @Security BearerAuth
// @Router /personnel/{id} [patch]
func (h *PersonnelHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid personnel ID"})
		return
	}

	var req service.UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.personnel.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles personnel deletion requests
// @Summary Delete personnel
// @Description Remove a personnel record
// @Tags personnel
// @Produce json
// @Param id path string true "Personnel ID"
// @Success 204 "Personnel deleted"
// @Failure 404 {object} ErrorResponse "Personnel not found"
// @Security BearerAuth
// @Router /personnel/{id} [delete]
func (h *PersonnelHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid personnel ID"})
		return
	}

	if err := h.personnel.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
