package handlers

import (
	"net/http"
	"strconv"

	"aircraft-production-backend/internal/database/models"
	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	teams *service.TeamService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teams *service.TeamService) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// Create handles team creation requests
// @Summary Create a team
// @Description Register a production or assembly team
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.CreateTeamRequest true "Team request"
// @Success 201 {object} service.TeamResponse "Team created"
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.teams.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles retrieving a single team
// @Summary Get a team
// @Description Get a team by ID with its member count
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamResponse "Team details"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	resp, err := h.teams.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles listing teams
// @Summary List teams
// @Description List teams, optionally filtered by type
// @Tags teams
// @Produce json
// @Param type query string false "Team type"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.TeamListResponse "Paginated teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	var teamType *models.TeamType
	if raw := c.Query("type"); raw != "" {
		t := models.TeamType(raw)
		if !t.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team type"})
			return
		}
		teamType = &t
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.teams.List(teamType, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles team rename requests
// @Summary Update a team
// @Description Rename a team. The type is fixed at creation.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param request body service.UpdateTeamRequest true "Update request"
// @Success 200 {object} service.TeamResponse "Team updated"
// @Failure 400 {object} ErrorResponse "Invalid request or duplicate name"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [patch]
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.teams.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles team deletion requests
// @Summary Delete a team
// @Description Delete a team that has no production history
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "Team deleted"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team has production history"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	if err := h.teams.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
