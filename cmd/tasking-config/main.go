package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/tasking-manager/internal/application"
	"github.com/eugenenazirov/tasking-manager/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, nil); err != nil {
		fmt.Fprintf(os.Stderr, "tasking-config: error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command. A nil logger means the
// logger is built from the resolved configuration.
func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	kingpinApp := kingpin.New("tasking-config", "Resolves Tasking Manager configuration for a deployment environment")
	envFile := kingpinApp.Flag("env-file", "Path to a KEY=VALUE environment file").Envar("TM_ENV_FILE").Default(config.DefaultEnvFile).String()
	profile := kingpinApp.Flag("profile", "Deployment profile to activate").Envar("TM_ENVIRONMENT").Default(string(config.ProfileDevelopment)).String()
	logToFile := kingpinApp.Flag("log-file", "Also write logs to the configured log directory").Bool()

	showCmd := kingpinApp.Command("show", "Print the resolved configuration as YAML")
	revealSecrets := showCmd.Flag("reveal-secrets", "Print secrets instead of masking them").Bool()
	skipValidation := showCmd.Flag("no-validate", "Print the configuration even if required values are missing").Bool()

	checkCmd := kingpinApp.Command("check", "Validate the configuration and exit")

	getCmd := kingpinApp.Command("get", "Print a single setting by its dotted key, e.g. database.uri")
	getKey := getCmd.Arg("key", "Setting key").Required().String()

	profilesCmd := kingpinApp.Command("profiles", "List the selectable profiles")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return err
	}

	if command == profilesCmd.FullCommand() {
		for _, name := range config.ProfileNames() {
			o, _ := config.OverridesFor(name)
			fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", name, o.AppBaseURL, o.LogDir, o.LogLevel)
		}
		return nil
	}

	opts := config.Options{
		EnvFile:        *envFile,
		Profile:        *profile,
		SkipValidation: command == showCmd.FullCommand() && *skipValidation,
	}
	appOptions := []application.Option{application.WithLogFile(*logToFile)}
	if logger != nil {
		appOptions = append(appOptions, application.WithLogger(logger))
	}

	app, err := application.New(opts, appOptions...)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg := app.Config()
	switch command {
	case showCmd.FullCommand():
		if !*revealSecrets {
			cfg = cfg.Redacted()
		}
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	case checkCmd.FullCommand():
		app.Logger().Info("configuration is valid", zap.String("profile", string(cfg.Profile)))
		fmt.Fprintf(stdout, "configuration for profile %q is valid\n", cfg.Profile)
		return nil
	case getCmd.FullCommand():
		value, err := cfg.Get(*getKey)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, value)
		return nil
	}
	return fmt.Errorf("unhandled command %q", command)
}
