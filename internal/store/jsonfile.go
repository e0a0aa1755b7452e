package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hearthbudget/hearth/internal/model"
)

// Ensure JSONStore implements Store.
var _ Store = (*JSONStore)(nil)

// JSONStore keeps the household as a single JSON document on disk,
// the contract described by the persisted-state schema. Writes are
// atomic (temp file + rename) so a save interrupted mid-write can
// never leave a torn document behind.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the JSON document at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads and sanitizes the document. A missing or unparseable file
// falls back to the template household wholesale.
func (s *JSONStore) Load(_ context.Context) (*model.Household, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no household document, starting from templates", "path", s.path)
			return TemplateHousehold(), nil
		}
		return nil, fmt.Errorf("reading household document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("household document is malformed, falling back to templates",
			"path", s.path, "error", err)
		return TemplateHousehold(), nil
	}

	h, subs := Sanitize(doc)
	for _, sub := range subs {
		slog.Warn("repaired household field", "field", sub.Field, "reason", sub.Reason)
	}
	if len(h.People) == 0 {
		slog.Warn("household document has no people, falling back to templates")
		return TemplateHousehold(), nil
	}
	assignIDs(h)
	return h, nil
}

// Save writes the household document atomically.
func (s *JSONStore) Save(_ context.Context, h *model.Household) error {
	assignIDs(h)

	data, err := json.MarshalIndent(FromHousehold(h), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding household document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".household-*.json")
	if err != nil {
		return fmt.Errorf("creating temp document: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing household document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp document: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing household document: %w", err)
	}

	slog.Debug("saved household document", "path", s.path, "people", len(h.People))
	return nil
}

// Close is a no-op for the file-backed store.
func (s *JSONStore) Close() error { return nil }

// assignIDs gives every person a stable UUID if they don't have one yet.
func assignIDs(h *model.Household) {
	for i := range h.People {
		if h.People[i].ID == "" {
			h.People[i].ID = uuid.New().String()
		}
	}
}
