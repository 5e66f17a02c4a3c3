package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"workreport-portal-backend/internal/auth"
	"workreport-portal-backend/internal/config"
	"workreport-portal-backend/internal/database"
	"workreport-portal-backend/internal/hierarchy"
	appLogger "workreport-portal-backend/internal/logger"
	"workreport-portal-backend/internal/repository"
	"workreport-portal-backend/internal/service"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Standalone account seeding, for populating a fresh database without
// starting the server. The server performs the same reconciliation on
// startup; this exists for CI pipelines and local setup.
func main() {
	orgDataFile := flag.String("org-data", "", "path to an organizational data YAML file (default: embedded table)")
	flag.Parse()

	log.Println("🚀 Seeding portal accounts from organizational data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	departments, err := loadOrgData(*orgDataFile, cfg)
	if err != nil {
		log.Fatalf("Failed to load organizational data: %v", err)
	}
	index := hierarchy.NewIndex(departments)
	log.Printf("Loaded %d departments, %d people", len(index.Departments()), len(index.People()))

	userRepo := repository.NewUserRepository(db)
	seedService := service.NewSeedService(userRepo, auth.NewAuthService(cfg.JWTSecret), index, appLogger.New())
	if err := seedService.SeedUsers(cfg.DefaultPassword, cfg.AdminEmail, cfg.AdminName); err != nil {
		log.Fatalf("Failed to seed accounts: %v", err)
	}

	total, err := userRepo.Count()
	if err != nil {
		log.Fatalf("Failed to count accounts: %v", err)
	}
	log.Printf("✅ Seeding complete, %d accounts in database", total)
}

func loadOrgData(override string, cfg *config.Config) ([]hierarchy.Department, error) {
	switch {
	case override != "":
		return hierarchy.LoadFile(override)
	case cfg.OrgDataFile != "":
		return hierarchy.LoadFile(cfg.OrgDataFile)
	default:
		return hierarchy.LoadEmbedded()
	}
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during seeding
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
