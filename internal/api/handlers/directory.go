package handlers

import (
	"errors"
	"net/http"

	"workreport-portal-backend/internal/auth"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler exposes the organizational table
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(service *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// Departments lists departments with their teams
// @Summary List departments
// @Tags directory
// @Produce json
// @Success 200 {array} service.DepartmentInfo
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *DirectoryHandler) Departments(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Departments())
}

// Managers lists everyone with a manager designation
// @Summary List managers
// @Tags directory
// @Produce json
// @Success 200 {array} service.PersonInfo
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /managers [get]
func (h *DirectoryHandler) Managers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Managers())
}

// ManagerResources lists a manager's resolved subordinates
// @Summary Manager resources
// @Description Resolve the subordinate set for a manager; defaults to the requester
// @Tags directory
// @Produce json
// @Param email query string false "Manager email, defaults to the authenticated user"
// @Success 200 {object} service.ManagerResources
// @Failure 404 {object} ErrorResponse "Not found in the organizational table"
// @Security BearerAuth
// @Router /manager-resources [get]
func (h *DirectoryHandler) ManagerResources(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		requester, ok := auth.GetUserEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		email = requester
	}

	resources, err := h.service.ManagerResources(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotInHierarchy) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve resources"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// UserDetails returns the requester's row in the organizational table
// @Summary User details
// @Tags directory
// @Produce json
// @Success 200 {object} service.PersonInfo
// @Failure 404 {object} ErrorResponse "Not found in the organizational table"
// @Security BearerAuth
// @Router /user-details [get]
func (h *DirectoryHandler) UserDetails(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	info, err := h.service.UserDetails(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotInHierarchy) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user details"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// StatusOptions lists the task statuses reports may use
// @Summary Task status options
// @Tags directory
// @Produce json
// @Success 200 {array} string
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /status-options [get]
func (h *DirectoryHandler) StatusOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.StatusOptions())
}
