package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// AuthHandler handles the review-key token exchange.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenRequest struct {
	ReviewKey string `json:"review_key" binding:"required"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Token handles POST /api/v1/auth/token
// @Summary Exchange the shared review key for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body tokenRequest true "Review key"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "review_key is required")
		return
	}

	token, expiresAt, err := h.authService.IssueToken(req.ReviewKey)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tokenResponse{Token: token, ExpiresAt: expiresAt})
}
