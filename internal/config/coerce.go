package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xhit/go-str2duration/v2"
	"go.uber.org/multierr"
)

// LogLevel is a severity rank. Higher ranks are more severe.
type LogLevel int

// Severity ranks, numerically compatible with the classic logging levels.
const (
	LevelDebug    LogLevel = 10
	LevelInfo     LogLevel = 20
	LevelWarning  LogLevel = 30
	LevelError    LogLevel = 40
	LevelCritical LogLevel = 50
)

var levelNames = map[string]LogLevel{
	"DEBUG":    LevelDebug,
	"INFO":     LevelInfo,
	"WARNING":  LevelWarning,
	"WARN":     LevelWarning,
	"ERROR":    LevelError,
	"CRITICAL": LevelCritical,
	"FATAL":    LevelCritical,
}

// ParseLogLevel accepts a level name (case-insensitive) or its numeric rank.
func ParseLogLevel(raw string) (LogLevel, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if level, ok := levelNames[value]; ok {
		return level, nil
	}
	if rank, err := strconv.Atoi(value); err == nil {
		switch level := LogLevel(rank); level {
		case LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
			return level, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrTypeCoercion, raw)
}

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return strconv.Itoa(int(l))
	}
}

// MarshalYAML renders the level by name.
func (l LogLevel) MarshalYAML() (any, error) {
	return l.String(), nil
}

var autoUnlockPattern = regexp.MustCompile(`^(\d+[hdm])+$`)

// ParseAutoUnlock parses durations such as "2h", "7d", "30m" or "1h30m".
// Only hour, day and minute units are accepted.
func ParseAutoUnlock(raw string) (time.Duration, error) {
	value := strings.TrimSpace(raw)
	if !autoUnlockPattern.MatchString(value) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	d, err := str2duration.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidDuration, raw, err)
	}
	return d, nil
}

// resolver reads typed settings from an Environment and accumulates coercion errors.
type resolver struct {
	env Environment
	err error
}

func (r *resolver) str(key, def string) string {
	if value, ok := r.env.Lookup(key); ok {
		return value
	}
	return def
}

func (r *resolver) integer(key string, def int) int {
	value, ok := r.env.Lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil || value[0] == '+' || value[0] == '-' {
		r.fail(fmt.Errorf("%w: %s=%q is not an unsigned integer", ErrTypeCoercion, key, value))
		return def
	}
	return n
}

func (r *resolver) logLevel(key string, def LogLevel) LogLevel {
	value, ok := r.env.Lookup(key)
	if !ok {
		return def
	}
	level, err := ParseLogLevel(value)
	if err != nil {
		r.fail(fmt.Errorf("%s: %w", key, err))
		return def
	}
	return level
}

func (r *resolver) duration(key, def string) time.Duration {
	value := r.str(key, def)
	d, err := ParseAutoUnlock(value)
	if err != nil {
		r.fail(fmt.Errorf("%s: %w", key, err))
	}
	return d
}

func (r *resolver) fail(err error) {
	r.err = multierr.Append(r.err, err)
}
