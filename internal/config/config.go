package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	SMTP     SMTPConfig
	Storage  StorageConfig
	HR       HRConfig
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
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// SMTPConfig holds outgoing mail configuration (salary slip delivery)
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// StorageConfig holds document storage configuration (salary slip archive)
type StorageConfig struct {
	BasePath string
}

// HRConfig holds the business constants for attendance classification and
// payroll. Thresholds are configuration, not literals: present at
// >= PresentThresholdHours worked, half day at >= HalfDayThresholdHours.
type HRConfig struct {
	PresentThresholdHours float64
	HalfDayThresholdHours float64
	DefaultWorkingDays    int
	DefaultPFPercentage   string
	CurrencySymbol        string
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "humbingo-hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	jwtRefreshExpiration := getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h")
	jwtAccessExpiration := getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h")

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: jwtRefreshExpiration,
		AccessExpiration:  jwtAccessExpiration,
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "hr.humbingo@gmail.com"),
		FromName: getEnv("SMTP_FROM_NAME", "Humbingo HR"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_PATH", "./data"),
	}

	// HR business constants
	presentThreshold, err := strconv.ParseFloat(getEnv("ATTENDANCE_PRESENT_THRESHOLD_HOURS", "7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_PRESENT_THRESHOLD_HOURS: %w", err)
	}
	halfDayThreshold, err := strconv.ParseFloat(getEnv("ATTENDANCE_HALFDAY_THRESHOLD_HOURS", "4"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_HALFDAY_THRESHOLD_HOURS: %w", err)
	}
	defaultWorkingDays, err := strconv.Atoi(getEnv("PAYROLL_DEFAULT_WORKING_DAYS", "26"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEFAULT_WORKING_DAYS: %w", err)
	}

	config.HR = HRConfig{
		PresentThresholdHours: presentThreshold,
		HalfDayThresholdHours: halfDayThreshold,
		DefaultWorkingDays:    defaultWorkingDays,
		DefaultPFPercentage:   getEnv("PAYROLL_DEFAULT_PF_PERCENTAGE", "12.00"),
		CurrencySymbol:        getEnv("PAYROLL_CURRENCY_SYMBOL", "₹"),
	}

	// Validate required fields
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
	if c.HR.PresentThresholdHours <= 0 {
		return fmt.Errorf("ATTENDANCE_PRESENT_THRESHOLD_HOURS must be positive")
	}
	if c.HR.HalfDayThresholdHours <= 0 || c.HR.HalfDayThresholdHours >= c.HR.PresentThresholdHours {
		return fmt.Errorf("ATTENDANCE_HALFDAY_THRESHOLD_HOURS must be positive and below the present threshold")
	}
	if c.HR.DefaultWorkingDays < 1 || c.HR.DefaultWorkingDays > 31 {
		return fmt.Errorf("PAYROLL_DEFAULT_WORKING_DAYS must be between 1 and 31")
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
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
