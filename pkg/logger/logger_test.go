package logger

import (
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	// Create a new logger without webhooks
	l := NewLogger("", "")
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}

	// Test that logger methods don't panic
	l.Info("Test info message", "TEST")
	l.Warn("Test warning message", "TEST")
	l.Debug("Test debug message", "TEST")
	l.System("Test system message", "TEST")
	l.Success("Test success message", "TEST")

	l.Close()
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelCritical, "CRITICAL"},
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelSuccess, "SUCCESS"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{LevelSystem, "SYSTEM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLogLevelDiscordColor(t *testing.T) {
	tests := []struct {
		level LogLevel
		color int
	}{
		{LevelCritical, 0xFF0000},
		{LevelError, 0xFF0000},
		{LevelWarn, 0xFFFF00},
		{LevelSuccess, 0x00FF00},
		{LevelInfo, 0x0000FF},
		{LevelDebug, 0x800080},
		{LevelSystem, 0x808080},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := tt.level.DiscordColor(); got != tt.color {
				t.Errorf("DiscordColor() = %#x, want %#x", got, tt.color)
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	l := NewLogger("", "")
	defer l.Close()

	ch := l.Subscribe()
	defer l.Unsubscribe(ch)

	l.Info("stream me", "TEST")

	select {
	case line := <-ch:
		if !strings.Contains(line, "stream me") {
			t.Errorf("Subscribed line = %q, want it to contain %q", line, "stream me")
		}
		if !strings.Contains(line, "[INFO]") {
			t.Errorf("Subscribed line = %q, want it to contain level tag", line)
		}
	default:
		t.Fatal("Expected a buffered log line on the subscriber channel")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	l := NewLogger("", "")
	defer l.Close()

	ch := l.Subscribe()
	l.Unsubscribe(ch)

	if _, open := <-ch; open {
		t.Error("Expected subscriber channel to be closed after Unsubscribe")
	}

	// Unsubscribing twice must not panic
	l.Unsubscribe(ch)
}
