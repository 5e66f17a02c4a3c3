package handlers

import (
	"net/http"

	"workreport-portal-backend/internal/auth"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// resetRequestedMessage is returned regardless of whether the email
// exists, so the endpoint cannot be used to enumerate accounts.
const resetRequestedMessage = "If an account with that email exists, a password reset link has been sent"

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service *service.AuthUserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthUserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ForgotPasswordRequest starts the password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Login authenticates a user
// @Summary Log in
// @Description Verify credentials and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Signup registers a new account
// @Summary Sign up
// @Description Register an account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param account body service.SignupRequest true "Account data"
// @Success 201 {object} service.TokenResponse
// @Failure 400 {object} ErrorResponse "Email already registered or invalid data"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Signup(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Me returns the authenticated account
// @Summary Current user
// @Description Return the account behind the access token
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.Me(email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangePassword replaces the authenticated user's password
// @Summary Change password
// @Description Verify the current password and set a new one
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body service.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Incorrect current password or weak new password"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.ChangePassword(email, &req); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed successfully"})
}

// RequestPasswordReset starts the password reset flow
// @Summary Request password reset
// @Description Issue a reset link for the email if an account exists
// @Tags auth
// @Accept json
// @Produce json
// @Param email body ForgotPasswordRequest true "Account email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/request-password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.RequestPasswordReset(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: resetRequestedMessage})
}

// ResetPassword completes the password reset flow
// @Summary Reset password
// @Description Set a new password using a reset token
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body service.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid or expired token, or weak password"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.service.ResetPassword(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Password has been reset successfully"})
}
