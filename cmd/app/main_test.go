package main

import (
	"io"
	"log/slog"
	"testing"

	"pos/internal/core/domain/services"
	"pos/internal/jobs"

	"github.com/stretchr/testify/assert"
)

func Test_getConfigs_Defaults(t *testing.T) {
	keys := []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSLMODE", "PARTNER_BASE_URL", "DISPATCH_SWEEP_SECONDS",
		"DISPATCH_MAX_ATTEMPTS", "DISPATCH_ATTEMPT_SECONDS",
		"DELIVERY_SUCCESS_PROBABILITY", "DELIVERY_SIMULATION_SEED",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}

	config := getConfigs(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, jobs.DefaultSweepSeconds, config.DispatchSweepSeconds)
	assert.Equal(t, services.DefaultMaxAttempts, config.DispatchMaxAttempts)
	assert.Equal(t, 5, config.DispatchAttemptSeconds)
	// Matches the partner sandbox, which confirms roughly 60% of attempts.
	assert.InDelta(t, 0.6, config.DeliverySuccessProbability, 0.0001)
}

func Test_envHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "7")
	t.Setenv("SOME_FLOAT", "0.25")
	t.Setenv("SOME_BAD_INT", "seven")

	assert.Equal(t, 7, envIntOrDefault("SOME_INT", 1))
	assert.Equal(t, 1, envIntOrDefault("SOME_MISSING_INT", 1))
	assert.Equal(t, 1, envIntOrDefault("SOME_BAD_INT", 1))
	assert.InDelta(t, 0.25, envFloatOrDefault("SOME_FLOAT", 0.5), 0.0001)
	assert.InDelta(t, 0.5, envFloatOrDefault("SOME_MISSING_FLOAT", 0.5), 0.0001)
	assert.Equal(t, "fallback", envOrDefault("SOME_MISSING_STRING", "fallback"))
}
