package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("REDIS_DB", "3")

	cfg, _ := LoadConfig()

	require.Equal(t, "9100", cfg.Port)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, 15*time.Second, cfg.BookingLockTTL)
}

func TestLoadConfigStoreDriverIsLowercased(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")

	cfg, _ := LoadConfig()
	require.Equal(t, "memory", cfg.StoreDriver)
}

func TestOrigins(t *testing.T) {
	cases := map[string]string{
		"":                               "*",
		" , ":                            "*",
		"http://localhost:3000":          "http://localhost:3000",
		"http://a.test, http://b.test ,": "http://a.test,http://b.test",
	}
	for in, want := range cases {
		require.Equal(t, want, Config{AllowedOrigins: in}.Origins(), "input %q", in)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := newLogger(LoggingConfig{Level: "warn"}, &buf)
	require.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	require.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger := newLogger(LoggingConfig{Level: "loud"}, &bytes.Buffer{})
	require.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
