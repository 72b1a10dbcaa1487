package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Pong", cfg.WindowTitle)
	assert.Equal(t, 640.0, cfg.WindowWidth)
	assert.Equal(t, 480.0, cfg.WindowHeight)
	assert.Equal(t, 8.0, cfg.PaddleSpeed)
	assert.Equal(t, 5.0, cfg.BallSpeed)
	assert.Equal(t, 4.0, cfg.PaddleSpin)
	assert.Equal(t, 0.05, cfg.BallAcc)
	assert.True(t, cfg.QuitOnEscape)
	assert.True(t, cfg.SpinUsesWidthCenter)
	assert.Equal(t, "./resources/ball.png", cfg.AssetPaths.Ball)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.WindowWidth = 0 }},
		{"negative height", func(c *Config) { c.WindowHeight = -1 }},
		{"zero tps", func(c *Config) { c.TicksPerSecond = 0 }},
		{"zero tick period", func(c *Config) { c.TickPeriod = 0 * time.Millisecond }},
		{"negative paddle speed", func(c *Config) { c.PaddleSpeed = -8 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
