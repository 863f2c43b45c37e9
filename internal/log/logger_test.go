package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewBakesComponentIntoRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: ComponentWorker,
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	logger.Info("hello")

	out := buf.String()
	if !strings.Contains(out, FieldComponent+"="+ComponentWorker) {
		t.Errorf("record missing component attribute: %q", out)
	}
	if logger.Component() != ComponentWorker {
		t.Errorf("Component() = %q, want %q", logger.Component(), ComponentWorker)
	}
}

func TestWithComponentSwitchesChild(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{
		Component: ComponentApp,
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	child := parent.WithComponent(ComponentWorker)
	if child.Component() != ComponentWorker {
		t.Errorf("child component = %q, want %q", child.Component(), ComponentWorker)
	}
	if parent.Component() != ComponentApp {
		t.Errorf("parent component changed to %q", parent.Component())
	}
}

func TestLevelFromEnv(t *testing.T) {
	cases := []struct {
		env  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"garbage", slog.LevelInfo},
	}
	for _, tc := range cases {
		t.Setenv("LOG_LEVEL", tc.env)
		if got := levelFromEnv(); got != tc.want {
			t.Errorf("LOG_LEVEL=%q -> %v, want %v", tc.env, got, tc.want)
		}
	}
}
