package handlers

import (
	"net/http"

	"workreport-portal-backend/internal/auth"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles summary report endpoints
type SummaryHandler struct {
	service *service.SummaryService
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(service *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// TeamSummaries returns per-manager summary groups
// @Summary Team summary report
// @Description Group visible reports by reporting manager, tasks bucketed by status
// @Tags summary
// @Produce json
// @Param department query string false "Department filter (full-view users only)"
// @Param from_date query string false "Range start (YYYY-MM-DD)"
// @Param to_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} service.TeamSummaryGroup
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary-report [get]
func (h *SummaryHandler) TeamSummaries(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	groups, err := h.service.TeamSummaries(email, service.SummaryFilter{
		Department: c.Query("department"),
		FromDate:   c.Query("from_date"),
		ToDate:     c.Query("to_date"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

// PersonalSummary returns the requester's own summary group
// @Summary Personal summary report
// @Description Summarize the requester's own reports, tasks bucketed by status
// @Tags summary
// @Produce json
// @Param from_date query string false "Range start (YYYY-MM-DD)"
// @Param to_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} service.TeamSummaryGroup
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary-report/me [get]
func (h *SummaryHandler) PersonalSummary(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	group, err := h.service.PersonalSummary(email, c.Query("from_date"), c.Query("to_date"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}
	c.JSON(http.StatusOK, group)
}
