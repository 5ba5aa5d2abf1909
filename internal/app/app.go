package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/chatdo/internal/agent"
	"github.com/thenoetrevino/chatdo/internal/config"
	"github.com/thenoetrevino/chatdo/internal/database"
	"github.com/thenoetrevino/chatdo/internal/llm"
	"github.com/thenoetrevino/chatdo/internal/nets"
	"github.com/thenoetrevino/chatdo/internal/services/todo"
	"github.com/thenoetrevino/chatdo/internal/session"
	"github.com/thenoetrevino/chatdo/internal/tools"
)

// App holds all application services and provides dependency injection.
// It is built once at process start and passed to the TUI and CLI.
type App struct {
	Config *config.Config

	// Repository layer
	store database.TaskStore

	// Service layer
	TodoService todo.Service
	Executor    *tools.Executor
	Interpreter *agent.Interpreter

	logger *slog.Logger
}

// New creates a new App with all services initialized. cfg must already be
// validated.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	if options.httpClient == nil && (options.store == nil || options.backend == nil) {
		client, err := nets.NewHTTPClient(nets.ProxyAddr(cfg.Proxy), cfg.LLM.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create http client: %w", err)
		}
		options.httpClient = client
	}

	store := options.store
	if store == nil {
		var err error
		store, err = database.Open(ctx, cfg.Store, options.httpClient)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
		}
	}

	backend := options.backend
	if backend == nil {
		backend = llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, options.httpClient, options.logger)
	}

	todoService := todo.NewService(store, options.logger)
	executor := tools.NewExecutor(todoService)
	interpreter := agent.NewInterpreter(backend, executor,
		agent.WithModel(cfg.LLM.Model),
		agent.WithToolChoice(cfg.LLM.ToolChoice),
		agent.WithMaxTurns(cfg.LLM.MaxTurns),
		agent.WithLogger(options.logger),
	)

	options.logger.Info("app initialized",
		"store", cfg.Store.Driver,
		"model", cfg.LLM.Model,
	)

	return &App{
		Config:      cfg,
		store:       store,
		TodoService: todoService,
		Executor:    executor,
		Interpreter: interpreter,
		logger:      options.logger,
	}, nil
}

// NewSession starts an empty chat transcript backed by the interpreter
func (a *App) NewSession() *session.Session {
	return session.New(a.Interpreter)
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the store
func (a *App) Close() error {
	return a.store.Close()
}
