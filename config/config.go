package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client-side settings. The only durable client state is
// the session token at TokenPath; everything else comes from the
// environment on each run.
type Config struct {
	// Environment selects log verbosity ("dev" enables .env loading
	// and debug logs).
	Environment string

	// APIBaseURL is the base URL of the LMS backend.
	APIBaseURL string

	// HTTPTimeout bounds every outgoing request.
	HTTPTimeout time.Duration

	// TokenPath is the file holding the persisted session token.
	TokenPath string

	// DisableProgressAPI turns off the optional progress-tracking API.
	// Parsed and reserved; no client feature consumes it yet.
	DisableProgressAPI bool

	DevServer DevServerConfig
}

// DevServerConfig configures the bundled stub backend.
type DevServerConfig struct {
	Port      int
	JWTSecret string
}

func LoadConfig() Config {
	if os.Getenv("ENV") == "dev" {
		godotenv.Load()
	}

	return Config{
		Environment:        getEnv("ENV", "production"),
		APIBaseURL:         getEnv("API_BASE_URL", "http://localhost:8080"),
		HTTPTimeout:        time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		TokenPath:          getEnv("TOKEN_PATH", defaultTokenPath()),
		DisableProgressAPI: getEnvBool("DISABLE_PROGRESS_API", false),
		DevServer: DevServerConfig{
			Port:      getEnvInt("DEV_SERVER_PORT", 8080),
			JWTSecret: getEnv("JWT_SECRET", "dev-secret"),
		},
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".lmscli_token"
	}
	return filepath.Join(dir, "lmscli", "token")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		var value int
		fmt.Sscanf(valueStr, "%d", &value)
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return defaultValue
		}
		return value
	}
	return defaultValue
}
