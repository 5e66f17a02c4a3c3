package handlers

import (
	"net/http"
	"strconv"
	"time"

	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db       *gorm.DB
	userRepo repository.UserRepositoryInterface
	index    *hierarchy.Index
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, userRepo repository.UserRepositoryInterface, index *hierarchy.Index) *HealthHandler {
	return &HealthHandler{db: db, userRepo: userRepo, index: index}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version" example:"1.0.0"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Health performs a health check
// @Summary Health check
// @Description Check the health of the service and its dependencies
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services := make(map[string]string)
	status := "healthy"
	httpStatus := http.StatusOK

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		services["database"] = "unhealthy"
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else {
		services["database"] = "healthy"
	}

	if count, err := h.userRepo.Count(); err == nil {
		services["users_count"] = formatCount(count)
	} else {
		services["users_count"] = "unknown"
	}
	services["departments_available"] = formatCount(int64(len(h.index.Departments())))

	c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
		Services:  services,
	})
}

// Ready performs a readiness check
// @Summary Readiness check
// @Description Check if the service is ready to accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live performs a liveness check
// @Summary Liveness check
// @Description Check if the service process is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func formatCount(n int64) string {
	return strconv.FormatInt(n, 10)
}
