package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// ServiceURLs holds the base URL of every backend the storefront talks to.
// Each backend is an independent REST service on its own port.
type ServiceURLs struct {
	User       string
	Restaurant string
	Category   string
	FoodItem   string
	Cart       string
	Address    string
	Order      string
}

type Config struct {
	Port           string
	Services       ServiceURLs
	RequestTimeout time.Duration
	CSRFKey        []byte
	SessionKey     []byte
	CookieDomain   string
	CookieSecure   bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port: getEnv("PORT", "8585"),
		Services: ServiceURLs{
			User:       getEnv("USER_SERVICE_URL", "http://localhost:8081"),
			Restaurant: getEnv("RESTAURANT_SERVICE_URL", "http://localhost:8080"),
			Category:   getEnv("CATEGORY_SERVICE_URL", "http://localhost:8080"),
			FoodItem:   getEnv("FOODITEM_SERVICE_URL", "http://localhost:8081"),
			Cart:       getEnv("CART_SERVICE_URL", "http://localhost:8082"),
			Address:    getEnv("ADDRESS_SERVICE_URL", "http://localhost:8080"),
			Order:      getEnv("ORDER_SERVICE_URL", "http://localhost:8082"),
		},
		RequestTimeout: 15 * time.Second,
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
	}

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT_SECONDS"); timeoutStr != "" {
		if secs, err := strconv.Atoi(timeoutStr); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		} else {
			slog.Warn("Invalid REQUEST_TIMEOUT_SECONDS, keeping default", "value", timeoutStr)
		}
	}

	// CSRF Key (critical for security)
	cfg.CSRFKey = loadKey("CSRF_KEY")

	// Session Key (critical for security)
	cfg.SessionKey = loadKey("SESSION_KEY")

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "8585"
	}

	return cfg, nil
}

// loadKey decodes a base64 key from the environment, generating a random
// development key when the variable is unset or too short. A generated key
// changes on every restart, so cookies signed with it do not survive one.
func loadKey(envVar string) []byte {
	keyStr := os.Getenv(envVar)
	if keyStr == "" {
		slog.Warn("Key environment variable not set. Generating a random key for development. PLEASE SET IT IN PRODUCTION!", "var", envVar)
		return generateRandomBytes(32)
	}
	decodedKey, err := base64.StdEncoding.DecodeString(keyStr)
	if err != nil || len(decodedKey) < 32 {
		slog.Warn("Key is invalid or too short (min 32 bytes recommended). Generating a random key for development.", "var", envVar)
		return generateRandomBytes(32)
	}
	return decodedKey
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// generateRandomBytes generates a random byte slice of specified length
// Uses crypto/rand for secure random numbers.
func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		slog.Error("Failed to read random bytes", "error", err)
		// Fallback to a less secure key if crypto/rand fails.
		// This fallback is only for panic prevention, not for production use
		fallbackKey := "fallback-insecure-key-" + strconv.FormatInt(time.Now().UnixNano(), 10)
		if len(fallbackKey) < n {
			paddedKey := make([]byte, n)
			copy(paddedKey, fallbackKey)
			return paddedKey
		}
		return []byte(fallbackKey)[:n]
	}
	return b
}
