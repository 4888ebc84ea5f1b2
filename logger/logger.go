// Package logger builds the structured zap logger used across the driver
// packages. Applications that already carry their own *zap.Logger can pass it
// to the driver directly; this package exists for hosts that want the
// standard configuration.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects the minimum severity that is emitted.
type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum emitted severity.
	Level Level

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string
}

// NewLogger builds a production zap logger: JSON encoding, ISO8601
// timestamps, capital level names, output to stderr.
func NewLogger(cfg Config) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if cfg.ServiceName != "" {
		config.InitialFields = map[string]interface{}{
			"service": cfg.ServiceName,
		}
	}

	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}
