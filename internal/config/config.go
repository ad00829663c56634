package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	AdminAlertEmail    string
	ChatRateLimit      int
}

type DatabaseConfig struct {
	DSN string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini string
	JWTSecret    string
}

// dsnCandidates is the ordered list of environment variables consulted for
// the database connection string. The first non-empty value wins.
var dsnCandidates = []string{"DB_CONNECTION_STRING", "DATABASE_URL", "POSTGRES_URL"}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			AdminAlertEmail:    getEnv("ADMIN_ALERT_EMAIL", ""),
			ChatRateLimit:      getEnvAsInt("CHAT_RATE_LIMIT_PER_MINUTE", 30),
		},
		Database: DatabaseConfig{
			DSN: ResolveDSN(os.LookupEnv),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ChatLog Admin"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			JWTSecret:    getEnv("JWT_SECRET", ""),
		},
	}
}

// ResolveDSN walks the candidate variables in order and returns the first
// non-empty connection string. The lookup function is injected so resolution
// order stays testable without touching the process environment.
func ResolveDSN(lookup func(string) (string, bool)) string {
	for _, key := range dsnCandidates {
		if value, ok := lookup(key); ok && value != "" {
			return value
		}
	}
	return ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
