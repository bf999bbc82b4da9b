package logger

import (
	"testing"

	"flashcards/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		enabled zapcore.Level
		silent  bool
	}{
		{name: "off", cfg: config.Config{LogLevel: "off"}, silent: true},
		{name: "unset", cfg: config.Config{}, silent: true},
		{name: "production", cfg: config.Config{Env: "prod", LogLevel: "warn"}, enabled: zapcore.WarnLevel},
		{name: "development", cfg: config.Config{Env: "dev", LogLevel: "debug"}, enabled: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, logger)

			if tt.silent {
				assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
				return
			}
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.enabled-1))
		})
	}
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(&config.Config{LogLevel: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse log level "loud"`)
}
