package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	Port    int

	// Database
	DatabaseURL  string
	DatabaseName string

	// Security
	JWTSecret   string
	AuthEnabled bool

	// Email (optional, feedback notifications)
	SendGridAPIKey string
	FeedbackEmail  string
}

func Load() Config {
	// Best effort: a missing .env is the normal case in production
	_ = godotenv.Load()

	return Config{
		AppName:        "Life Moves API",
		Port:           envInt("PORT", 8000),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   envOr("DATABASE_NAME", "lifemoves"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AuthEnabled:    os.Getenv("AUTH_ENABLED") == "true",
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FeedbackEmail:  os.Getenv("FEEDBACK_EMAIL"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
