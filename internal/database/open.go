package database

import (
	"context"
	"fmt"
	"net/http"

	"github.com/thenoetrevino/chatdo/internal/config"
)

// Open builds the store selected by cfg.Driver
func Open(ctx context.Context, cfg config.StoreConfig, client *http.Client) (TaskStore, error) {
	switch cfg.Driver {
	case config.DriverSupabase:
		return NewRemoteStore(cfg.URL, cfg.Key, cfg.Table, client), nil
	case config.DriverSQLite:
		return OpenSQLiteStore(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
