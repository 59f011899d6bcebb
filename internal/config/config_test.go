package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "MONGO_URI", "MONGO_DB", "JWT_SECRET", "JWT_ISSUER", "JWT_TTL_HOURS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":3000", cfg.HTTPAddress())
	require.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	require.Equal(t, "accounts", cfg.MongoDB)
	require.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	require.Equal(t, 168*time.Hour, cfg.JWTTTL)
	require.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "prod")
	t.Setenv("JWT_SECRET", "configured-secret")
	t.Setenv("JWT_TTL_HOURS", "24")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8081", cfg.HTTPAddress())
	require.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	require.Equal(t, "prod", cfg.MongoDB)
	require.Equal(t, "configured-secret", cfg.JWTSecret)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 168*time.Hour, cfg.JWTTTL)
}
