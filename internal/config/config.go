// Package config reads the server settings from the environment, with a .env
// file loaded first when present.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
)

type Config struct {
	Port string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	CacheTTL   time.Duration
	RateLimit  int
	RateWindow time.Duration

	PeriodLength    int
	HabitCapacity   int
	DayNameOffset   int
	WorkerQueueSize int
}

// RedisEnabled reports whether a redis host was configured. Without one the
// server keeps statistics in process and skips rate limiting.
func (c Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// Load reads .env (if any) and the process environment. Invalid values fall
// back to their defaults with a log line; Load never fails.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("[CONFIG] loaded .env")
	}

	return Config{
		Port: getEnv("PORT", "8080"),

		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		CacheTTL:   getEnvDuration("CACHE_TTL", 30*time.Minute),
		RateLimit:  getEnvInt("RATE_LIMIT", 100),
		RateWindow: getEnvDuration("RATE_WINDOW", time.Minute),

		PeriodLength:    getEnvInt("PERIOD_LENGTH", domain.DefaultPeriodLength),
		HabitCapacity:   getEnvInt("HABIT_CAPACITY", domain.DefaultCapacity),
		DayNameOffset:   getEnvInt("DAY_NAME_OFFSET", domain.DefaultDayNameOffset),
		WorkerQueueSize: getEnvInt("WORKER_QUEUE_SIZE", 100),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[CONFIG] invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("[CONFIG] invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return v
}
