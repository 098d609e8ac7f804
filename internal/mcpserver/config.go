package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds the configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// CheckLimit is the default maximum number of errors returned by
	// the check tool in one call.
	CheckLimit int
	// MaxLimit caps any client-requested limit.
	MaxLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SPECCHECK_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CheckLimit: envInt("SPECCHECK_CHECK_LIMIT", 100),
		MaxLimit:   envInt("SPECCHECK_MAX_LIMIT", 1000),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
