// Package application performs startup wiring. It loads the environment file,
// resolves the selected configuration profile and builds the logger, so that
// consumers receive one immutable configuration value for the lifetime of the
// process.
package application
