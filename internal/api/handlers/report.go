package handlers

import (
	"net/http"

	"workreport-portal-backend/internal/auth"
	apperrors "workreport-portal-backend/internal/errors"
	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReportHandler handles work report endpoints
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func listFilterFromQuery(c *gin.Context) service.ListReportsFilter {
	return service.ListReportsFilter{
		Department: c.Query("department"),
		Team:       c.Query("team"),
		Manager:    c.Query("reporting_manager"),
		Date:       c.Query("date"),
		FromDate:   c.Query("from_date"),
		ToDate:     c.Query("to_date"),
	}
}

// CreateReport submits a daily work report
// @Summary Submit work report
// @Description Submit a daily work report for the authenticated user
// @Tags reports
// @Accept json
// @Produce json
// @Param report body service.CreateReportRequest true "Report data"
// @Success 201 {object} service.WorkReportResponse
// @Failure 400 {object} ErrorResponse "Invalid report data"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Create(email, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListReports lists the reports visible to the requester
// @Summary List work reports
// @Description List reports inside the requester's visibility scope, optionally filtered
// @Tags reports
// @Produce json
// @Param department query string false "Department filter"
// @Param team query string false "Team filter"
// @Param reporting_manager query string false "Reporting manager filter"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param from_date query string false "Range start (YYYY-MM-DD)"
// @Param to_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} service.WorkReportResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	reports, err := h.service.List(email, listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport returns one report
// @Summary Get work report
// @Description Get a single report if it is inside the requester's scope
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} service.WorkReportResponse
// @Failure 400 {object} ErrorResponse "Invalid report ID"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /work-reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	resp, err := h.service.Get(email, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get report"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateReport replaces the task list of a report
// @Summary Update work report
// @Description Replace the task list; only the author's reviewer or a director may edit
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param report body service.UpdateReportRequest true "Replacement tasks"
// @Success 200 {object} service.WorkReportResponse
// @Failure 400 {object} ErrorResponse "Invalid report data"
// @Failure 403 {object} ErrorResponse "Not authorized to modify this report"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /work-reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	role, _ := auth.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var req service.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.UpdateTasks(email, role, id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteReport removes a report
// @Summary Delete work report
// @Description Delete a report; only the author's reviewer or a director may delete
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse "Not authorized to modify this report"
// @Failure 404 {object} ErrorResponse "Report not found"
// @Security BearerAuth
// @Router /work-reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	role, _ := auth.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	if err := h.service.Delete(email, role, id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete report"})
		}
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Report deleted successfully"})
}

// ExportReports streams the requester's visible reports as CSV
// @Summary Export work reports
// @Description Download visible reports as CSV, one row per task
// @Tags reports
// @Produce text/csv
// @Param department query string false "Department filter"
// @Param team query string false "Team filter"
// @Param reporting_manager query string false "Reporting manager filter"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param from_date query string false "Range start (YYYY-MM-DD)"
// @Param to_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /work-reports/export/csv [get]
func (h *ReportHandler) ExportReports(c *gin.Context) {
	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="work_reports.csv"`)
	if err := h.service.ExportCSV(c.Writer, email, listFilterFromQuery(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export reports"})
		return
	}
}
