package config

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func resolvedValid(t *testing.T) Config {
	t.Helper()
	cfg, err := ResolveBase(EnvironmentFrom(validEnv()))
	if err != nil {
		t.Fatalf("ResolveBase returned error: %v", err)
	}
	return cfg
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	if err := resolvedValid(t).Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateReportsEveryMissingValue(t *testing.T) {
	cfg, err := ResolveBase(EnvironmentFrom(nil))
	if err != nil {
		t.Fatalf("ResolveBase returned error: %v", err)
	}

	err = cfg.Validate()
	if !errors.Is(err, ErrMissingRequiredValue) {
		t.Fatalf("expected ErrMissingRequiredValue, got %v", err)
	}
	if got := len(multierr.Errors(err)); got != 5 {
		t.Fatalf("expected 5 problems, got %d: %v", got, err)
	}
	for _, key := range []string{"TM_SECRET", "TM_EMAIL_FROM_ADDRESS", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in %q", key, err.Error())
		}
	}
}

func TestValidateDatabaseOverrideSkipsComponents(t *testing.T) {
	cfg := resolvedValid(t)
	cfg.Database.User = ""
	cfg.Database.Password = ""
	cfg.Database.Name = ""
	cfg.Database.URIOverride = "postgresql://x:y@z:1/w"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestValidateRanges(t *testing.T) {
	testCases := map[string]func(*Config){
		"mapper order":  func(c *Config) { c.MapperLevelIntermediate, c.MapperLevelAdvanced = 500, 250 },
		"mapper sign":   func(c *Config) { c.MapperLevelIntermediate = 0 },
		"smtp port":     func(c *Config) { c.SMTP.Port = 70000 },
		"database port": func(c *Config) { c.Database.Port = 0 },
		"auto unlock":   func(c *Config) { c.TaskAutoUnlockAfter = 0 },
	}
	for name, mutate := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := resolvedValid(t)
			mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
		})
	}

	cfg := resolvedValid(t)
	cfg.SupportedLanguages = nil
	if err := cfg.Validate(); !errors.Is(err, ErrMalformedLocaleTable) {
		t.Fatalf("expected ErrMalformedLocaleTable, got %v", err)
	}
}
