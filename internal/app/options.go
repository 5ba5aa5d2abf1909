package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/chatdo/internal/database"
	"github.com/thenoetrevino/chatdo/internal/llm"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	store      database.TaskStore
	backend    llm.Backend
	httpClient *http.Client
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStore uses store instead of opening the configured one. The App
// takes ownership and closes it.
func WithStore(store database.TaskStore) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithBackend replaces the chat-completions client
func WithBackend(backend llm.Backend) Option {
	return func(cfg *appConfig) {
		cfg.backend = backend
	}
}

// WithHTTPClient sets the client shared by the remote store and the
// completions backend
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = client
	}
}
