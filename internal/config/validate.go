package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks required values and ranges, reporting every problem at once.
func (c Config) Validate() error {
	var err error
	err = multierr.Append(err, required("TM_SECRET", c.SecretKey))
	err = multierr.Append(err, required("TM_EMAIL_FROM_ADDRESS", c.EmailFromAddress))
	err = multierr.Append(err, c.Database.validate())

	if c.MapperLevelIntermediate <= 0 || c.MapperLevelAdvanced <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: mapper levels must be positive", ErrInvalidValue))
	} else if c.MapperLevelIntermediate >= c.MapperLevelAdvanced {
		err = multierr.Append(err, fmt.Errorf("%w: TM_MAPPER_LEVEL_INTERMEDIATE (%d) must be below TM_MAPPER_LEVEL_ADVANCED (%d)",
			ErrInvalidValue, c.MapperLevelIntermediate, c.MapperLevelAdvanced))
	}
	if c.TaskAutoUnlockAfter <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: TM_TASK_AUTOUNLOCK_AFTER must be positive", ErrInvalidValue))
	}
	err = multierr.Append(err, validPort("TM_SMTP_PORT", c.SMTP.Port))
	if len(c.SupportedLanguages) == 0 {
		err = multierr.Append(err, fmt.Errorf("%w: no supported languages", ErrMalformedLocaleTable))
	}
	return err
}

func (d Database) validate() error {
	if d.URIOverride != "" {
		return nil
	}
	return multierr.Combine(
		required("POSTGRES_USER", d.User),
		required("POSTGRES_PASSWORD", d.Password),
		required("POSTGRES_DB", d.Name),
		validPort("POSTGRES_PORT", d.Port),
	)
}

func required(key, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}
	return nil
}

func validPort(key string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: %s must be between 1 and 65535, got %d", ErrInvalidValue, key, port)
	}
	return nil
}
