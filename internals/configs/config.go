package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	AppEnv      string
	JWTSecret   string
	JWTTokenTTL time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	MailFromName string

	RedisURL string

	EmailWorkers   int
	EmailQueueSize int

	BlacklistCleanupCron string
	CorsAllowOrigins     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			Log().Info("⚠️ no .env file found, using system ENV")
		} else {
			Log().Info("✅ .env file loaded")
		}
	} else {
		Log().Info("🚀 running in Railway, using system ENV")
	}

	AppEnv = GetEnv("APP_ENV", "production")
	JWTSecret = GetEnv("JWT_SECRET")
	JWTTokenTTL = time.Duration(GetEnvInt("JWT_TTL_HOURS", 7*24)) * time.Hour

	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = GetEnv("SMTP_PORT", "465")
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPass = GetEnv("SMTP_PASS")
	MailFromName = GetEnv("MAIL_FROM_NAME", "Exeat Management")

	RedisURL = GetEnv("REDIS_URL")

	EmailWorkers = GetEnvInt("EMAIL_WORKERS", 2)
	EmailQueueSize = GetEnvInt("EMAIL_QUEUE_SIZE", 256)

	BlacklistCleanupCron = GetEnv("BLACKLIST_CLEANUP_CRON", "30 3 * * *")
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")

	if JWTSecret == "" {
		Log().Error("❌ JWT_SECRET is not set")
	} else {
		Log().Info("✅ JWT_SECRET loaded")
	}
	if SMTPHost == "" {
		Log().Warn("SMTP_HOST is not set, outgoing email will only be logged")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		Log().Warn("invalid integer env, using default", zap.String("key", key), zap.Int("default", def))
		return def
	}
	return i
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
