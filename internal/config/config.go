package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"invoicegen/m/domain"
	"invoicegen/m/internal/database"
)

// Config holds application configuration values.
type Config struct {
	HTTPPort    string
	DatabaseDSN string
	NodeID      int64
	SeedSamples bool
	LogLevel    slog.Level
	Company     domain.Company
}

// Default issuer printed on documents that do not name their own company.
var defaultCompany = domain.Company{
	Party: domain.Party{
		Name:    "Micromeet Technology (Singapore) Pte Ltd",
		Address: "Singapore",
		Email:   "contact@micromeet.ai",
	},
	Website: "https://web.micromeet.ai/home",
}

// Load reads configuration from environment variables with reasonable defaults.
// Invalid values are logged and replaced by their default.
func Load() Config {
	port := getenv("HTTP_PORT", "8080")
	// Validate that port is numeric.
	if _, err := strconv.Atoi(port); err != nil {
		slog.Warn("invalid HTTP_PORT value, defaulting to 8080", "value", port)
		port = "8080"
	}

	dsn := getenv("DATABASE_DSN", database.DefaultDSN)

	var nodeID int64 = 1
	if v := os.Getenv("NODE_ID"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 || n > 1023 {
			slog.Warn("invalid NODE_ID value, defaulting to 1", "value", v)
		} else {
			nodeID = n
		}
	}

	seed := true
	if v := os.Getenv("SEED_SAMPLES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid SEED_SAMPLES value, defaulting to true", "value", v)
		} else {
			seed = b
		}
	}

	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			slog.Warn("invalid LOG_LEVEL value, defaulting to info", "value", v)
			level = slog.LevelInfo
		}
	}

	company := domain.Company{
		Party: domain.Party{
			Name:    getenv("COMPANY_NAME", defaultCompany.Name),
			Address: getenv("COMPANY_ADDRESS", defaultCompany.Address),
			Phone:   getenv("COMPANY_PHONE", defaultCompany.Phone),
			Email:   getenv("COMPANY_EMAIL", defaultCompany.Email),
		},
		Website: getenv("COMPANY_WEBSITE", defaultCompany.Website),
	}

	return Config{
		HTTPPort:    port,
		DatabaseDSN: dsn,
		NodeID:      nodeID,
		SeedSamples: seed,
		LogLevel:    level,
		Company:     company,
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
