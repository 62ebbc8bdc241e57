package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Shift    ShiftConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
	QRExpiration      string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port                 int
	Env                  string
	LogLevel             string
	FrontendURL          string
	AbsentMarkerInterval time.Duration
}

// ShiftConfig holds classifier defaults applied when a shift template does
// not set its own windows.
type ShiftConfig struct {
	GraceMinutes         int
	HalfDayCutoffMinutes int
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployments where the environment
	// comes from the host.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staffdesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	absentInterval, err := time.ParseDuration(getEnv("ABSENT_MARKER_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ABSENT_MARKER_INTERVAL: %w", err)
	}

	config.App = AppConfig{
		Port:                 appPort,
		Env:                  getEnv("APP_ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		FrontendURL:          getEnv("FRONTEND_URL", "http://localhost:3000"),
		AbsentMarkerInterval: absentInterval,
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		QRExpiration:      getEnv("JWT_QR_EXPIRATION_TIME", "24h"),
	}

	grace, err := strconv.Atoi(getEnv("SHIFT_GRACE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_GRACE_MINUTES: %w", err)
	}
	halfDayCutoff, err := strconv.Atoi(getEnv("SHIFT_HALF_DAY_CUTOFF_MINUTES", "180"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHIFT_HALF_DAY_CUTOFF_MINUTES: %w", err)
	}
	config.Shift = ShiftConfig{
		GraceMinutes:         grace,
		HalfDayCutoffMinutes: halfDayCutoff,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Shift.GraceMinutes < 0 {
		return fmt.Errorf("SHIFT_GRACE_MINUTES must not be negative")
	}
	if c.Shift.HalfDayCutoffMinutes < c.Shift.GraceMinutes {
		return fmt.Errorf("SHIFT_HALF_DAY_CUTOFF_MINUTES must not be smaller than SHIFT_GRACE_MINUTES")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
