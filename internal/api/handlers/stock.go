package handlers

import (
	"net/http"

	"aircraft-production-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StockHandler serves the inventory overview
type StockHandler struct {
	stock *service.StockService
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stock *service.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

// Overview returns the inventory levels across all models
// @Summary Stock overview
// @Description Part counts per model and category with zero-stock warnings, plus aircraft counts per model
// @Tags stock
// @Produce json
// @Success 200 {object} service.StockResponse "Inventory overview"
// @Security BearerAuth
// @Router /stock [get]
func (h *StockHandler) Overview(c *gin.Context) {
	resp, err := h.stock.Overview()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
