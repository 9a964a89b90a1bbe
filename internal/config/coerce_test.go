package config

import (
	"errors"
	"testing"
	"time"
)

func TestParseAutoUnlock(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Duration
	}{
		{in: "2h", want: 7200 * time.Second},
		{in: "1h30m", want: 5400 * time.Second},
		{in: "7d", want: 604800 * time.Second},
		{in: "30m", want: 30 * time.Minute},
		{in: "1d2h", want: 26 * time.Hour},
	}

	for _, tc := range testCases {
		got, err := ParseAutoUnlock(tc.in)
		if err != nil {
			t.Fatalf("ParseAutoUnlock(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAutoUnlock(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseAutoUnlockRejectsMalformed(t *testing.T) {
	for _, in := range []string{"abc", "", "2", "h", "10s", "1.5h", "-2h", "2w", "2h 30m"} {
		_, err := ParseAutoUnlock(in)
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("ParseAutoUnlock(%q): expected ErrInvalidDuration, got %v", in, err)
		}
		if !errors.Is(err, ErrTypeCoercion) {
			t.Fatalf("ParseAutoUnlock(%q): expected error to be a coercion failure", in)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]LogLevel{
		"DEBUG":    LevelDebug,
		"info":     LevelInfo,
		"Warning":  LevelWarning,
		"warn":     LevelWarning,
		"ERROR":    LevelError,
		"critical": LevelCritical,
		"10":       LevelDebug,
		" 40 ":     LevelError,
	}
	for in, want := range testCases {
		got, err := ParseLogLevel(in)
		if err != nil {
			t.Fatalf("ParseLogLevel(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}

	for _, in := range []string{"verbose", "15", ""} {
		if _, err := ParseLogLevel(in); !errors.Is(err, ErrTypeCoercion) {
			t.Fatalf("ParseLogLevel(%q): expected ErrTypeCoercion, got %v", in, err)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if LevelError.String() != "ERROR" {
		t.Fatalf("unexpected name %s", LevelError.String())
	}
	if LogLevel(15).String() != "15" {
		t.Fatalf("expected numeric fallback, got %s", LogLevel(15).String())
	}
}
