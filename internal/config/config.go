package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Organizational data: path to a YAML override of the embedded table
	OrgDataFile string `mapstructure:"ORG_DATA_FILE"`

	// Access control allow-lists.
	// DirectorEmails see and may modify every report.
	// FullViewEmails see every report but keep normal modification rules.
	DirectorEmails []string `mapstructure:"DIRECTOR_EMAILS"`
	FullViewEmails []string `mapstructure:"FULL_VIEW_EMAILS"`

	// Account seeding
	DefaultPassword string `mapstructure:"DEFAULT_PASSWORD"`
	AdminEmail      string `mapstructure:"ADMIN_EMAIL"`
	AdminName       string `mapstructure:"ADMIN_NAME"`

	// Password reset links point at the frontend
	FrontendURL string `mapstructure:"FRONTEND_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "workreport_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Org data: empty means use the table embedded in the binary
	viper.SetDefault("ORG_DATA_FILE", "")

	// Allow-lists mirror the organization's current directors
	viper.SetDefault("DIRECTOR_EMAILS", []string{
		"alimpan@showtimeconsulting.in",
		"at@showtimeconsulting.in",
		"rs@showtimeconsulting.in",
		"pardhasaradhi@showtimeconsulting.in",
	})
	viper.SetDefault("FULL_VIEW_EMAILS", []string{
		"tejaswini@showtimeconsulting.in",
	})

	// Seeding defaults
	viper.SetDefault("DEFAULT_PASSWORD", "Welcome@123")
	viper.SetDefault("ADMIN_EMAIL", "admin@showtimeconsulting.in")
	viper.SetDefault("ADMIN_NAME", "Portal Admin")

	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.DefaultPassword == "" {
			return fmt.Errorf("DEFAULT_PASSWORD must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
