package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ReferEarn/internal/config"
	"ReferEarn/internal/db"
	"ReferEarn/internal/services"
	"ReferEarn/internal/store"
)

func TestNew_Defaults(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg := config.Config{SessionTTL: time.Hour}

	s, err := services.New(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.IsType(t, &store.Memory{}, s.Sessions)
	assert.IsType(t, db.Nop{}, s.Journal)
	assert.Equal(t, "/api/v1/details", s.Backend.URL())
	assert.Equal(t, 1, logs.FilterMessageSnippet("BACKEND_URL").Len())
}

func TestNew_BackendURL(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg := config.Config{BackendURL: "https://api.example.com/", BackendTimeout: time.Second}

	s, err := services.New(context.Background(), cfg, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api/v1/details", s.Backend.URL())
	assert.Equal(t, time.Second, s.Backend.HTTPClient.Timeout)
	assert.Zero(t, logs.Len())
	assert.NoError(t, s.Close())
}

func TestNew_UnreachableRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	cfg := config.Config{RedisAddr: "127.0.0.1:1", SessionTTL: time.Hour}

	_, err := services.New(ctx, cfg, zap.NewNop())
	assert.Error(t, err)
}
