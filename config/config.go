package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName    string
	AppVersion string
	Port       string

	StoreDriver string // mongo | memory
	MongoURI    string
	MongoDB     string

	AllowedOrigins string
	RequestTimeout time.Duration

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	BookingLockTTL time.Duration

	Logging LoggingConfig
}

type LoggingConfig struct {
	Level  string
	Format string // json | console
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

// LoadConfig reads .env (when present) and the process environment.
// The returned bool reports whether a .env file was loaded.
func LoadConfig() (Config, bool) {
	loaded := godotenv.Load() == nil

	cfg := Config{
		AppName:        getEnv("APP_NAME", "Sistema Academico - Eventos"),
		AppVersion:     getEnv("APP_VERSION", "1.0.0"),
		Port:           getEnv("PORT", "8000"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", "mongo")),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "sistema_academico"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		BookingLockTTL: getEnvDuration("BOOKING_LOCK_TTL", 15*time.Second),
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
	return cfg, loaded
}

// Origins splits ALLOWED_ORIGINS into a Fiber cors value.
func (c Config) Origins() string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if t := strings.TrimSpace(o); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
