package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/prosedown/prose/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug level", "debug", log.DebugLevel},
		{"info level", "info", log.InfoLevel},
		{"warn level", "warn", log.WarnLevel},
		{"warning level", "warning", log.WarnLevel},
		{"error level", "error", log.ErrorLevel},
		{"invalid defaults to info", "invalid", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"case insensitive DEBUG", "DEBUG", log.DebugLevel},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}
			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if logging.Default() == nil {
		t.Fatal("Default returned nil logger")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) == nil {
		t.Fatal("FromContext returned nil for bare context")
	}

	custom := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), custom)
	if logging.FromContext(ctx) != custom {
		t.Error("FromContext did not return the attached logger")
	}
}
