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

// WorkOrderHandler handles HTTP requests for work orders
type WorkOrderHandler struct {
	production *service.ProductionService
	workOrders *service.WorkOrderService
}

// NewWorkOrderHandler creates a new work order handler
func NewWorkOrderHandler(production *service.ProductionService, workOrders *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{
		production: production,
		workOrders: workOrders,
	}
}

// Create handles work order creation requests
// @Summary Create a work order
// @Description Create a work order for a quantity of aircraft. Starts ASSIGNED when a team is attached, PENDING otherwise.
// @Tags work-orders
// @Accept json
// @Produce json
// @Param request body service.CreateWorkOrderRequest true "Work order request"
// @Success 201 {object} service.WorkOrderResponse "Work order created"
// @Failure 400 {object} ErrorResponse "Invalid request or non-assembly team"
// @Failure 404 {object} ErrorResponse "Aircraft model or team not found"
// @Security BearerAuth
// @Router /work-orders [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var req service.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// Attribute creation to the authenticated personnel when not set
	if req.CreatedByID == nil {
		if personnelID, ok := auth.GetPersonnelID(c); ok {
			req.CreatedByID = &personnelID
		}
	}

	resp, err := h.production.CreateWorkOrder(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get handles retrieving a single work order
// @Summary Get a work order
// @Description Get a work order by ID with its aircraft count
// @Tags work-orders
// @Produce json
// @Param id path string true "Work order ID"
// @Success 200 {object} service.WorkOrderResponse "Work order details"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Security BearerAuth
// @Router /work-orders/{id} [get]
func (h *WorkOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid work order ID"})
		return
	}

	resp, err := h.workOrders.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List handles listing work orders with filters
// @Summary List work orders
// @Description List work orders filtered by status, model or assigned team
// @Tags work-orders
// @Produce json
// @Param status query string false "Work order status"
// @Param aircraft_model_id query string false "Aircraft model ID"
// @Param assigned_team_id query string false "Assigned team ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} service.WorkOrderListResponse "Paginated work orders"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /work-orders [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	var filter repository.WorkOrderFilter

	if status := c.Query("status"); status != "" {
		s := models.WorkOrderStatus(status)
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
	if raw := c.Query("assigned_team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
			return
		}
		filter.AssignedTeamID = &id
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.workOrders.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles work order updates
// @Summary Update a work order
// @Description Change a work order's assigned team, notes or target date
// @Tags work-orders
// @Accept json
// @Produce json
// @Param id path string true "Work order ID"
// @Param request body service.UpdateWorkOrderRequest true "Update request"
// @Success 200 {object} service.WorkOrderResponse "Work order updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 409 {object} ErrorResponse "Work order is terminal"
// @Security BearerAuth
// @Router /work-orders/{id} [patch]
func (h *WorkOrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid work order ID"})
		return
	}

	var req service.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.production.UpdateWorkOrder(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel handles work order cancellation requests
// @Summary Cancel a work order
// @Description Cancel a work order and detach its aircraft. Completed and already cancelled orders cannot be cancelled.
// @Tags work-orders
// @Produce json
// @Param id path string true "Work order ID"
// @Success 200 {object} service.WorkOrderResponse "Work order cancelled"
// @Failure 404 {object} ErrorResponse "Work order not found"
// @Failure 409 {object} ErrorResponse "Work order is terminal"
// @Security BearerAuth
// @Router /work-orders/{id} [delete]
func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid work order ID"})
		return
	}

	resp, err := h.production.RequestWorkOrderCancellation(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
