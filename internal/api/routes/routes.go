package routes

import (
	"workreport-portal-backend/internal/api/handlers"
	"workreport-portal-backend/internal/api/middleware"
	"workreport-portal-backend/internal/auth"
	"workreport-portal-backend/internal/config"
	"workreport-portal-backend/internal/database/models"
	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/logger"
	"workreport-portal-backend/internal/repository"
	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, index *hierarchy.Index) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	log := logger.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewWorkReportRepository(db)

	// Initialize auth and access control
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)
	policy := hierarchy.NewAccessPolicy(index, cfg.DirectorEmails, cfg.FullViewEmails)

	// Initialize services
	authUserService := service.NewAuthUserService(userRepo, authService, index, validator, log, cfg.FrontendURL)
	reportService := service.NewReportService(reportRepo, userRepo, index, policy, validator)
	summaryService := service.NewSummaryService(reportRepo, index, policy)
	attendanceService := service.NewAttendanceService(reportRepo, index)
	directoryService := service.NewDirectoryService(index)
	adminService := service.NewAdminService(userRepo, authService, cfg.DefaultPassword)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, userRepo, index)
	authHandler := handlers.NewAuthHandler(authUserService)
	reportHandler := handlers.NewReportHandler(reportService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public auth routes
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/request-password-reset", authHandler.RequestPasswordReset)
		authRoutes.POST("/reset-password", authHandler.ResetPassword)
	}

	// Everything below requires a valid token
	authed := v1.Group("")
	authed.Use(authMiddleware.RequireAuth())
	{
		account := authed.Group("/auth")
		{
			account.GET("/me", authHandler.Me)
			account.POST("/change-password", authHandler.ChangePassword)
		}

		// Organizational directory routes
		authed.GET("/departments", directoryHandler.Departments)
		authed.GET("/managers", directoryHandler.Managers)
		authed.GET("/manager-resources", directoryHandler.ManagerResources)
		authed.GET("/user-details", directoryHandler.UserDetails)
		authed.GET("/status-options", directoryHandler.StatusOptions)

		// Work report routes
		reports := authed.Group("/work-reports")
		{
			reports.POST("", reportHandler.CreateReport)
			reports.GET("", reportHandler.ListReports)
			reports.GET("/export/csv", reportHandler.ExportReports)
			reports.GET("/:id", reportHandler.GetReport)
			reports.PUT("/:id", reportHandler.UpdateReport)
			reports.DELETE("/:id", reportHandler.DeleteReport)
		}

		// Summary routes
		authed.GET("/summary-report", summaryHandler.TeamSummaries)
		authed.GET("/summary-report/me", summaryHandler.PersonalSummary)

		// Attendance routes
		authed.GET("/attendance", attendanceHandler.Attendance)

		// Admin routes
		admin := authed.Group("/admin")
		admin.Use(authMiddleware.RequireRole(string(models.UserRoleAdmin)))
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users/:id/reset-password", adminHandler.ResetUserPassword)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, index *hierarchy.Index) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, repository.NewUserRepository(db), index)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
