package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fleetyard/dispatch/internal/pkg/models"
)

// AppLogger wraps logrus with structured JSON output and optional file
// output alongside stdout.
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger.
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	l := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{Logger: l}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file.
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// InfoF logs an info message with structured fields.
func (al *AppLogger) InfoF(msg string, fields ...Field) {
	al.Logger.WithFields(toLogrusFields(fields)).Info(msg)
}

// WarnF logs a warning message with structured fields.
func (al *AppLogger) WarnF(msg string, fields ...Field) {
	al.Logger.WithFields(toLogrusFields(fields)).Warn(msg)
}

// ErrorF logs an error message with structured fields.
func (al *AppLogger) ErrorF(msg string, fields ...Field) {
	al.Logger.WithFields(toLogrusFields(fields)).Error(msg)
}

// DebugF logs a debug message with structured fields.
func (al *AppLogger) DebugF(msg string, fields ...Field) {
	al.Logger.WithFields(toLogrusFields(fields)).Debug(msg)
}

// FatalF logs a fatal message with structured fields and exits.
func (al *AppLogger) FatalF(msg string, fields ...Field) {
	al.Logger.WithFields(toLogrusFields(fields)).Fatal(msg)
}

// LogHTTPRequest logs an HTTP request with the level derived from the
// status code.
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.Logger.WithFields(logrus.Fields{
		"status":     statusCode,
		"latency":    latency.String(),
		"latency_ms": latency.Milliseconds(),
		"client_ip":  clientIP,
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})

	switch {
	case statusCode >= 500:
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Error("Server error")
	case statusCode >= 400:
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}
