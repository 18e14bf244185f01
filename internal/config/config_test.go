package config

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8585", cfg.Port)
	assert.Equal(t, "http://localhost:8082", cfg.Services.Cart)
	assert.Equal(t, "http://localhost:8082", cfg.Services.Order)
	assert.Equal(t, "http://localhost:8081", cfg.Services.User)
	assert.Len(t, cfg.SessionKey, 32)
	assert.Len(t, cfg.CSRFKey, 32)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CART_SERVICE_URL", "http://cart.internal:8082")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	key := base64.StdEncoding.EncodeToString(make([]byte, 32))
	t.Setenv("SESSION_KEY", key)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "http://cart.internal:8082", cfg.Services.Cart)
	assert.Equal(t, 5.0, cfg.RequestTimeout.Seconds())
	assert.Equal(t, make([]byte, 32), cfg.SessionKey)
}

func TestLoadConfigInvalidPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8585", cfg.Port)
}
