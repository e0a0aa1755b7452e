package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthbudget/hearth/internal/model"
)

func TestJSONStoreMissingFileReturnsTemplates(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "household.json"))
	defer s.Close()

	h, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, TemplateHousehold().Rent, h.Rent)
	assert.Len(t, h.People, 2)
}

func TestJSONStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "household.json")
	s := NewJSONStore(path)
	defer s.Close()
	ctx := context.Background()

	h := &model.Household{
		Rent:     2100,
		RentMode: model.RentEqual,
		People: []model.Person{{
			Name:        "Avery",
			Paychecks:   []float64{2342.97},
			PayPeriod:   model.Semimonthly,
			Bills:       []model.Bill{{Label: "Internet", Amount: 89.99}},
			Groceries:   400,
			Gas:         120,
			SavingsRate: 0.2,
			WantsRate:   0.2,
		}},
	}
	require.NoError(t, s.Save(ctx, h))
	assert.NotEmpty(t, h.People[0].ID, "save should assign a person ID")

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, h, loaded)
}

func TestJSONStoreMalformedDocumentFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "household.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := NewJSONStore(path)
	h, err := s.Load(context.Background())
	require.NoError(t, err, "malformed document is a fallback, not a failure")
	assert.Len(t, h.People, 2)
}

func TestJSONStoreSanitizesOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "household.json")
	raw := `{"rent": -900, "rentMode": "fair", "people": [
		{"name": "Avery", "paychecks": [1000], "payPeriod": "weekly",
		 "groceries": -50, "gas": 60, "savingsRate": 0.2, "wantsRate": 0.3}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	h, err := NewJSONStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, h.Rent)
	assert.Equal(t, 0.0, h.People[0].Groceries)
	assert.Equal(t, 60.0, h.People[0].Gas)
}

func TestJSONStoreSaveIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "household.json")
	s := NewJSONStore(path)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, TemplateHousehold()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files should survive a save")
	assert.Equal(t, "household.json", entries[0].Name())
}
