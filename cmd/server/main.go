package main

import (
	"log"
	"os"

	"workreport-portal-backend/internal/api/routes"
	"workreport-portal-backend/internal/auth"
	"workreport-portal-backend/internal/config"
	"workreport-portal-backend/internal/database"
	"workreport-portal-backend/internal/hierarchy"
	"workreport-portal-backend/internal/logger"
	"workreport-portal-backend/internal/repository"
	"workreport-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "workreport-portal-backend/docs" // This is needed for swag
)

//	@title			Work Report Portal Backend API
//	@version		1.0
//	@description	Backend API for the daily work reporting portal: report submission, team summaries, attendance, and account management.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Load the organizational table; a configured file overrides the
	// copy embedded in the binary
	departments, err := loadOrgData(cfg)
	if err != nil {
		logrus.Fatal("Failed to load organizational data:", err)
	}
	index := hierarchy.NewIndex(departments)

	// Reconcile portal accounts with the organizational table
	seedService := service.NewSeedService(
		repository.NewUserRepository(db),
		auth.NewAuthService(cfg.JWTSecret),
		index,
		logger.New(),
	)
	if err := seedService.SeedUsers(cfg.DefaultPassword, cfg.AdminEmail, cfg.AdminName); err != nil {
		logrus.Fatal("Failed to seed accounts:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, index)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8000"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func loadOrgData(cfg *config.Config) ([]hierarchy.Department, error) {
	if cfg.OrgDataFile != "" {
		return hierarchy.LoadFile(cfg.OrgDataFile)
	}
	return hierarchy.LoadEmbedded()
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
