package logger_test

import (
	"bytes"
	"errors"
	"ohanna/config"
	"ohanna/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			logger.InitLogger(env)

			assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
			assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("snapshot write failed"))

	assert.Contains(t, buf.String(), "snapshot write failed")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
		{name: "empty level uses NoLevel", logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}
