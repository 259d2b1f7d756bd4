package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds process configuration. Everything comes from environment
// variables with local-dev defaults; a .env file is honored when present.
type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	// Pricing constants are a product decision, so they stay configurable.
	PlayerRateTHB    int64
	CompanionRateTHB int64
	PlayerRateUSD    int64
	CompanionRateUSD int64
}

// LoadEnv reads configuration, loading .env first when available.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using system environment")
	}

	return Env{
		AppAddr:   getString("APP_ADDR", ":8080"),
		GinMode:   strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret: getString("JWT_SECRET", "change-me-in-production"),

		DBUser: getString("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getString("DB_HOST", "127.0.0.1:3306"),
		DBName: getString("DB_NAME", "wargameshc"),

		PlayerRateTHB:    getInt64("PRICE_PLAYER_THB", 7000),
		CompanionRateTHB: getInt64("PRICE_COMPANION_THB", 3500),
		PlayerRateUSD:    getInt64("PRICE_PLAYER_USD", 200),
		CompanionRateUSD: getInt64("PRICE_COMPANION_USD", 100),
	}
}

func getString(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getInt64(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("warning: %s=%q is not a number, using %d", key, v, fallback)
		return fallback
	}
	return n
}
