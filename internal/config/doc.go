// Package config resolves the Tasking Manager configuration from the process
// environment, an optional KEY=VALUE environment file and a fixed set of
// deployment profiles (production, staging, stage, demo, development,
// development-ipv6). Settings are resolved once at startup into an immutable
// Config value; every failure is returned to the caller, who is expected to
// abort before serving anything.
package config
