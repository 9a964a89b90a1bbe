package config

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
)

const redactedValue = "********"

// Redacted returns a copy with secrets masked, suitable for logs and display.
func (c Config) Redacted() Config {
	out := c.clone()
	out.SecretKey = mask(out.SecretKey)
	out.Database.Password = mask(out.Database.Password)
	out.Database.URIOverride = redactURI(out.Database.URIOverride)
	out.Database.URI = redactURI(out.Database.URI)
	out.SMTP.Password = mask(out.SMTP.Password)
	out.OSMOAuth.ConsumerSecret = mask(out.OSMOAuth.ConsumerSecret)
	return out
}

// YAML renders the configuration.
func (c Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Get returns a single setting addressed by its dotted YAML key, for example
// "database.uri" or "smtp.port". Nested sections are rendered as YAML.
func (c Config) Get(key string) (string, error) {
	data, err := c.YAML()
	if err != nil {
		return "", err
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return "", fmt.Errorf("decode config: %w", err)
	}

	var node any = tree
	for _, part := range strings.Split(key, ".") {
		section, ok := node.(map[string]any)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
		node, ok = section[part]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
	}

	switch v := node.(type) {
	case map[string]any, []any:
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("marshal %s: %w", key, err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func mask(value string) string {
	if value == "" {
		return ""
	}
	return redactedValue
}

// redactURI masks the password of a URL DSN. Anything that is not a URL with
// user info, such as a keyword/value DSN, is masked entirely.
func redactURI(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.User == nil {
		return redactedValue
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	return u.Redacted()
}
