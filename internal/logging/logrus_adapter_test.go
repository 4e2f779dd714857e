package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapterWithOutput(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "upper-case level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "invalid", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogrusAdapterWithOutput(tt.level, tt.format, &buf)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.Level())

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		existingLogger := logrus.New()
		logger := NewLogrusAdapterFromLogger(existingLogger)

		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.Equal(t, existingLogger, adapter.logger)
	})

	t.Run("with nil logger creates new one", func(t *testing.T) {
		adapter, ok := NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
		require.True(t, ok)
		assert.NotNil(t, adapter.logger)
	})
}

func newBufferedLogger(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestLogrusAdapter_LoggingMethods(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...Field)
		message string
	}{
		{"Debug", func(l Logger, msg string, f ...Field) { l.Debug(msg, f...) }, "debug message"},
		{"Info", func(l Logger, msg string, f ...Field) { l.Info(msg, f...) }, "info message"},
		{"Warn", func(l Logger, msg string, f ...Field) { l.Warn(msg, f...) }, "warn message"},
		{"Error", func(l Logger, msg string, f ...Field) { l.Error(msg, f...) }, "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedLogger(logrus.DebugLevel)
			tt.logFunc(logger, tt.message, F(FieldCount, 3))

			output := buf.String()
			assert.Contains(t, output, tt.message)
			assert.Contains(t, output, "count=3")
		})
	}
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.WarnLevel)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.InfoLevel)

	logger.
		WithField(FieldOperation, "load").
		WithFields(F(FieldFile, "records.json"), F(FieldFormat, "json")).
		WithError(errors.New("boom")).
		Error("operation failed")

	output := buf.String()
	assert.Contains(t, output, "operation failed")
	assert.Contains(t, output, "operation=load")
	assert.Contains(t, output, "file_path=records.json")
	assert.Contains(t, output, "format=json")
	assert.Contains(t, output, FieldError+"=boom")
}

func TestConvertFields(t *testing.T) {
	logrusFields := convertFields([]Field{
		{Key: "key1", Value: "value1"},
		{Key: "key2", Value: 42},
	})

	assert.Len(t, logrusFields, 2)
	assert.Equal(t, "value1", logrusFields["key1"])
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Len(t, convertFields(nil), 0)
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.NotPanics(t, func() {
		logger.WithField("a", 1).WithError(errors.New("x")).WithFields(F("b", 2)).Info("ignored")
	})
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
