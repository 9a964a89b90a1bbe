package config

import (
	"fmt"
	"strings"
)

// Profile names a deployment environment.
type Profile string

// Known profiles. ProfileBase is the result of ResolveBase and cannot be
// selected through ResolveProfile.
const (
	ProfileBase            Profile = "base"
	ProfileProduction      Profile = "production"
	ProfileStaging         Profile = "staging"
	ProfileStage           Profile = "stage"
	ProfileDemo            Profile = "demo"
	ProfileDevelopment     Profile = "development"
	ProfileDevelopmentIPv6 Profile = "development-ipv6"
)

// Overrides is the subset of settings a profile replaces on top of the base profile.
type Overrides struct {
	AppBaseURL string
	LogDir     string
	LogLevel   LogLevel
}

// Apply returns a copy of base with the overridden fields substituted and
// the API docs URL rebuilt from the new base URL.
func (o Overrides) Apply(name Profile, base Config) Config {
	cfg := base.clone()
	cfg.Profile = name
	cfg.AppBaseURL = o.AppBaseURL
	cfg.APIDocsURL = swaggerDocsURL(o.AppBaseURL)
	cfg.LogDir = o.LogDir
	cfg.LogLevel = o.LogLevel
	return cfg
}

var profileOrder = []Profile{
	ProfileProduction,
	ProfileStaging,
	ProfileStage,
	ProfileDemo,
	ProfileDevelopment,
	ProfileDevelopmentIPv6,
}

var profileOverrides = map[Profile]Overrides{
	ProfileProduction: {
		AppBaseURL: "https://tasks.kaart.com",
		LogDir:     "/var/log/tasking-manager-logs",
		LogLevel:   LevelError,
	},
	ProfileStaging: {
		AppBaseURL: "http://tasking-manager-staging.eu-west-1.elasticbeanstalk.com",
		LogDir:     "/var/log/tasking-manager-logs",
		LogLevel:   LevelDebug,
	},
	ProfileStage: {
		AppBaseURL: "https://tasks-stage.kaart.com",
		LogDir:     "/var/log/tasking-manager-stage-logs",
		LogLevel:   LevelDebug,
	},
	ProfileDemo: {
		AppBaseURL: "https://tasks-demo.hotosm.org",
		LogDir:     "/var/log/tasking-manager-logs",
		LogLevel:   LevelDebug,
	},
	ProfileDevelopment: {
		AppBaseURL: "http://127.0.0.1:5000",
		LogDir:     "logs",
		LogLevel:   LevelDebug,
	},
	ProfileDevelopmentIPv6: {
		AppBaseURL: "http://[::1]:5000",
		LogDir:     "logs",
		LogLevel:   LevelDebug,
	},
}

// ProfileNames lists the selectable profiles in a stable order.
func ProfileNames() []Profile {
	out := make([]Profile, len(profileOrder))
	copy(out, profileOrder)
	return out
}

// OverridesFor returns the overrides of a selectable profile. The
// profiles command of tasking-config uses it to report what each profile
// changes without resolving the environment.
func OverridesFor(name Profile) (Overrides, bool) {
	o, ok := profileOverrides[name]
	return o, ok
}

// ResolveProfile applies the overrides of the named profile to base. The name
// must match one of ProfileNames exactly.
func ResolveProfile(name string, base Config) (Config, error) {
	profile := Profile(name)
	o, ok := profileOverrides[profile]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidProfile, name, profileList())
	}
	return o.Apply(profile, base), nil
}

func swaggerDocsURL(baseURL string) string {
	return baseURL + "/api-docs/swagger-ui/index.html?url=" + baseURL + "/api/docs"
}

func profileList() string {
	names := make([]string, len(profileOrder))
	for i, p := range profileOrder {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}
