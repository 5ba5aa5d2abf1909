package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/chatdo/internal/app"
	"github.com/thenoetrevino/chatdo/internal/config"
	"github.com/thenoetrevino/chatdo/internal/logging"
	"github.com/thenoetrevino/chatdo/internal/tui"
)

// Launch starts the TUI application with the config at configPath (empty
// means the default location)
func Launch(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches the store
	logger, logFile, err := logging.Init(logging.Options{
		Level:   cfg.Log.Level,
		Journal: cfg.Log.Journal,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application, err := app.New(ctx, cfg, app.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing store", "error", err)
		}
	}()

	defer func() {
		snap := application.Interpreter.Metrics().Snapshot()
		logger.Info("session ended",
			"runs", snap.Runs,
			"tool_calls", snap.ToolCalls,
			"rejections", snap.Rejections,
			"failures", snap.Failures,
			"uptime", snap.Uptime,
		)
	}()

	model := tui.New(ctx, application.NewSession(), application.TodoService, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
