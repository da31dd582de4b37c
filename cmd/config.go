package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"bakery/internal/jobs"
	"bakery/internal/pkg/errs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ShopTimezone   string
	ExportDir      string
	ExportSchedule string

	NotifyRelayURL   string
	NotifyRelayToken string
	NotifyFrom       string

	LogLevel slog.Level
}

// LoadConfig reads the environment after merging a .env file from the working
// directory, if there is one. Variables already set win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	config := Config{
		HTTPPort:         envOr("HTTP_PORT", "8080"),
		DBHost:           envOr("DB_HOST", "localhost"),
		DBPort:           envOr("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        envOr("DB_SSLMODE", "disable"),
		ShopTimezone:     envOr("SHOP_TIMEZONE", "Europe/Berlin"),
		ExportDir:        envOr("EXPORT_DIR", "exports"),
		ExportSchedule:   jobs.DefaultExportSchedule,
		NotifyRelayURL:   os.Getenv("NOTIFY_RELAY_URL"),
		NotifyRelayToken: os.Getenv("NOTIFY_RELAY_TOKEN"),
		NotifyFrom:       envOr("NOTIFY_FROM", "bestellungen@example.com"),
	}

	// Set but empty disables the scheduled export.
	if schedule, ok := os.LookupEnv("EXPORT_SCHEDULE"); ok {
		config.ExportSchedule = schedule
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := config.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
		}
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var validationErrors []error
	if c.DBUser == "" {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("DB_USER"))
	}
	if c.DBName == "" {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.ExportDir == "" {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("EXPORT_DIR"))
	}
	return errors.Join(validationErrors...)
}

// DSN is a key/value connection string understood by the postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
