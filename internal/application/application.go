package application

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/tasking-manager/internal/config"
	"github.com/eugenenazirov/tasking-manager/internal/logging"
)

// App holds the process-wide configuration and the logger built from it.
type App struct {
	cfg    config.Config
	logger *zap.Logger
}

type settings struct {
	logger     *zap.Logger
	logToFiles bool
}

// Option customises New.
type Option func(*settings)

// WithLogger uses logger instead of building one from the configuration.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithLogFile toggles writing to the configured log directory. Enabled by default.
func WithLogFile(enabled bool) Option {
	return func(s *settings) {
		s.logToFiles = enabled
	}
}

// New resolves the configuration described by opts and initialises logging.
func New(opts config.Options, options ...Option) (*App, error) {
	s := settings{logToFiles: true}
	for _, opt := range options {
		opt(&s)
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := s.logger
	if logger == nil {
		logOpts := logging.OptionsFor(cfg)
		if !s.logToFiles {
			logOpts.Dir = ""
		}
		logger, err = logging.New(logOpts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	logger.Info("configuration resolved",
		zap.String("profile", string(cfg.Profile)),
		zap.String("app_base_url", cfg.AppBaseURL),
		zap.String("api_docs_url", cfg.APIDocsURL),
		zap.Stringer("log_level", cfg.LogLevel),
		zap.String("log_dir", cfg.LogDir),
		zap.Int("languages", len(cfg.SupportedLanguages)),
	)

	return &App{cfg: cfg, logger: logger}, nil
}

// Config returns the resolved configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Close flushes buffered log entries.
func (a *App) Close() error {
	_ = a.logger.Sync()
	return nil
}
