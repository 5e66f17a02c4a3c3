package handlers

import (
	"net/http"

	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	service *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(service *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// Attendance returns per-manager attendance for a day
// @Summary Daily attendance
// @Description Who submitted a report on the given day, grouped by reporting manager
// @Tags attendance
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.AttendanceSummary
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *AttendanceHandler) Attendance(c *gin.Context) {
	summary, err := h.service.AttendanceFor(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute attendance"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
