package handlers

import (
	"errors"
	"net/http"

	"workreport-portal-backend/internal/auth"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles administrative endpoints
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers lists every registered account
// @Summary List accounts
// @Tags admin
// @Produce json
// @Success 200 {array} service.UserResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// ResetUserPassword sets an account back to the default password
// @Summary Reset account password
// @Description Reset another account's password to the default; admins cannot reset their own
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Cannot reset your own password here"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/users/{id}/reset-password [post]
func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	adminEmail, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.service.ResetUserPassword(adminEmail, id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrSelfPasswordReset):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		}
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Password reset to the default"})
}
