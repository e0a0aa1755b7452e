// Package store persists the household document. The engine never sees
// this package: commands and the TUI load a validated Household here,
// hand plain values to the engine, and save the inputs (never results)
// back on change.
package store

import (
	"context"
	"fmt"

	"github.com/hearthbudget/hearth/internal/config"
	"github.com/hearthbudget/hearth/internal/model"
)

// Store is the persistence boundary for the household document.
// Implementations must return a fully sanitized Household from Load:
// downstream code assumes every field already passed the clamp rules.
type Store interface {
	// Load returns the current household, falling back to the built-in
	// templates when no document exists or the document is unreadable.
	Load(ctx context.Context) (*model.Household, error)

	// Save persists the household, replacing the previous document.
	Save(ctx context.Context, h *model.Household) error

	// Close releases any resources held by the store.
	Close() error
}

// Open creates the store selected by the config's storage backend.
func Open(cfg config.Config) (Store, error) {
	path := cfg.DocumentPath()
	switch cfg.Storage.Backend {
	case "", "json":
		return NewJSONStore(path), nil
	case "sqlite":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
