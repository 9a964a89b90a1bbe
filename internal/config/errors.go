package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredValue is returned when a setting without a usable default is unset.
	ErrMissingRequiredValue = errors.New("missing required configuration value")
	// ErrInvalidProfile is returned when the requested profile name is not one of the known profiles.
	ErrInvalidProfile = errors.New("unknown configuration profile")
	// ErrTypeCoercion is returned when an environment value cannot be converted to the setting's type.
	ErrTypeCoercion = errors.New("invalid configuration value type")
	// ErrInvalidDuration is returned for durations outside the <int><h|d|m> grammar.
	ErrInvalidDuration = fmt.Errorf("%w: invalid duration", ErrTypeCoercion)
	// ErrMalformedLocaleTable is returned when language codes and names do not line up.
	ErrMalformedLocaleTable = errors.New("malformed supported languages table")
	// ErrInvalidValue is returned when a resolved value is out of its permitted range.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrUnknownSetting is returned by Config.Get for keys that do not name a setting.
	ErrUnknownSetting = errors.New("unknown setting")
)
