package handlers

import (
	"net/http"

	"aircraft-production-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles token issuance
type AuthHandler struct {
	auth *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// TokenRequest represents the request for a session token
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
}

// Token issues a session token for a registered personnel username
// @Summary Issue a session token
// @Description Issue a JWT for a registered personnel username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token request"
// @Success 200 {object} auth.TokenResponse "Session token"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Personnel not found"
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.auth.IssueToken(req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
