package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chatdo/internal/app"
	"github.com/thenoetrevino/chatdo/internal/config"
	"github.com/thenoetrevino/chatdo/internal/logging"
)

type contextKey struct{}

// WithApp stores a ready App in ctx. Commands run with such a context use it
// instead of building their own, which is how tests inject fakes.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// AppFromContext returns the App stored by WithApp
func AppFromContext(ctx context.Context) (*app.App, bool) {
	a, ok := ctx.Value(contextKey{}).(*app.App)
	return a, ok && a != nil
}

// GetApp returns the App for cmd. An injected App is borrowed and the returned
// release func is a no-op; otherwise the App is built from the config named
// by --config and release closes it.
func GetApp(cmd *cobra.Command) (*app.App, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := AppFromContext(ctx); ok {
		return a, func() {}, nil
	}

	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	// stdout and stderr belong to the command output
	logger, logFile, err := logging.Init(logging.Options{
		Level:   cfg.Log.Level,
		Journal: cfg.Log.Journal,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	a, err := app.New(ctx, cfg, app.WithLogger(logger))
	if err != nil {
		_ = logFile.Close()
		return nil, nil, err
	}

	return a, func() {
		if err := a.Close(); err != nil {
			logger.Error("error closing app", "error", err)
		}
		_ = logFile.Close()
	}, nil
}

// LoadConfig reads the config file named by the --config flag
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	var path string
	if f := cmd.Flag("config"); f != nil {
		path = f.Value.String()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
