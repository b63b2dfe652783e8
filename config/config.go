package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Storage configuration
	DataDir      string
	TicketFile   string
	PurchaseFile string
	Format       string // binary | text

	// Expiry configuration
	ExpiryPolicy string // delete | zero_stock
	TTL          time.Duration

	// Administrator credentials
	AdminUsername string
	AdminPassword string

	// Logging
	LogLevel string
}

// LoadConfig reads an optional .env file and then the environment. Every
// value has a default, so a bare run works out of the box.
func LoadConfig() *Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:      getEnv("DATA_DIR", "."),
		TicketFile:   getEnv("TICKET_FILE", "data_tiket.txt"),
		PurchaseFile: getEnv("PURCHASE_FILE", "data_pembelian.txt"),
		Format:       getEnv("PERSISTENCE_FORMAT", "text"),

		ExpiryPolicy: getEnv("EXPIRY_POLICY", "zero_stock"),
		TTL:          getEnvAsDuration("TICKET_TTL", "168h"),

		AdminUsername: getEnv("ADMIN_USERNAME", "NabilahArkanKey"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "2025"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

// TicketPath returns the ticket file path under the data directory.
func (c *Config) TicketPath() string {
	return filepath.Join(c.DataDir, c.TicketFile)
}

// PurchasePath returns the purchase file path under the data directory.
func (c *Config) PurchasePath() string {
	return filepath.Join(c.DataDir, c.PurchaseFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
