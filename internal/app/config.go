package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	HTTPPort        string
	CasbinModelPath string

	// Toleransi keterlambatan check-in dalam menit; 0 berarti lewat
	// jam_masuk langsung terlambat.
	AttendanceGraceMinutes int

	OutboxPollInterval time.Duration
}

func LoadConfig() Config {
	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "hr_yayasan"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),

		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		CasbinModelPath: getEnv("CASBIN_MODEL_PATH", "internal/rbac/infra/model.conf"),

		AttendanceGraceMinutes: getEnvInt("ATTENDANCE_GRACE_MINUTES", 0),
		OutboxPollInterval:     time.Duration(getEnvInt("OUTBOX_POLL_SECONDS", 3)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
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
