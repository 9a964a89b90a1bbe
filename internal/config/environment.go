package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the environment file read when no other path is configured.
const DefaultEnvFile = "tasking-manager.env"

// Environment is a read-only snapshot of environment variables.
type Environment struct {
	values map[string]string
}

// FromOS captures the current process environment.
func FromOS() Environment {
	values := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return Environment{values: values}
}

// EnvironmentFrom builds a snapshot from a copy of values.
func EnvironmentFrom(values map[string]string) Environment {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Environment{values: copied}
}

// Lookup returns the trimmed value of key. Empty values are reported as absent.
func (e Environment) Lookup(key string) (string, bool) {
	value := strings.TrimSpace(e.values[key])
	if value == "" {
		return "", false
	}
	return value, true
}

// LoadEnvironmentFile injects the KEY=VALUE pairs of path into the process
// environment. Variables that are already set are left untouched and a
// missing file is not an error.
func LoadEnvironmentFile(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat environment file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load environment file %s: %w", path, err)
	}
	return nil
}
