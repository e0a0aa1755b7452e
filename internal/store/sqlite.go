package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/hearthbudget/hearth/internal/model"
)

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore keeps the household in normalized SQLite tables. Load
// rebuilds a Document from the rows and pushes it through the same
// sanitation pipeline as the JSON backend, so both stores honor one
// set of clamp rules.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the household database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening household db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the household, or the templates when the db is empty.
func (s *SQLiteStore) Load(ctx context.Context) (*model.Household, error) {
	var doc Document
	err := s.db.QueryRowContext(ctx,
		"SELECT rent, rent_mode FROM household WHERE id = 1",
	).Scan(&doc.Rent, &doc.RentMode)
	if err == sql.ErrNoRows {
		slog.Debug("empty household db, starting from templates")
		return TemplateHousehold(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading household: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT
		id, name, pay_period, groceries, gas, savings_rate, wants_rate,
		starting_debt, starting_savings
		FROM people ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("loading people: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pd PersonDocument
		if err := rows.Scan(&pd.ID, &pd.Name, &pd.PayPeriod, &pd.Groceries, &pd.Gas,
			&pd.SavingsRate, &pd.WantsRate, &pd.StartingDebt, &pd.StartingSavings); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		doc.People = append(doc.People, pd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}

	for i := range doc.People {
		pd := &doc.People[i]
		if err := s.loadPaychecks(ctx, pd); err != nil {
			return nil, err
		}
		if err := s.loadBills(ctx, pd); err != nil {
			return nil, err
		}
	}

	if len(doc.People) == 0 {
		slog.Debug("household db has no people, starting from templates")
		return TemplateHousehold(), nil
	}

	h, subs := Sanitize(doc)
	for _, sub := range subs {
		slog.Warn("repaired household field", "field", sub.Field, "reason", sub.Reason)
	}
	return h, nil
}

func (s *SQLiteStore) loadPaychecks(ctx context.Context, pd *PersonDocument) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT amount FROM paychecks WHERE person_id = ? ORDER BY position", pd.ID)
	if err != nil {
		return fmt.Errorf("loading paychecks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return fmt.Errorf("scanning paycheck: %w", err)
		}
		pd.Paychecks = append(pd.Paychecks, amount)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadBills(ctx context.Context, pd *PersonDocument) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT label, amount FROM bills WHERE person_id = ? ORDER BY position", pd.ID)
	if err != nil {
		return fmt.Errorf("loading bills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bd BillDocument
		if err := rows.Scan(&bd.Label, &bd.Amount); err != nil {
			return fmt.Errorf("scanning bill: %w", err)
		}
		pd.Bills = append(pd.Bills, bd)
	}
	return rows.Err()
}

// Save replaces the stored household in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, h *model.Household) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	// Single-household document: wipe and reinsert.
	for _, stmt := range []string{
		"DELETE FROM bills", "DELETE FROM paychecks", "DELETE FROM people", "DELETE FROM household",
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing previous document: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO household (id, rent, rent_mode) VALUES (1, ?, ?)",
		h.Rent, string(h.RentMode)); err != nil {
		return fmt.Errorf("saving household: %w", err)
	}

	for i := range h.People {
		p := &h.People[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO people
			(id, position, name, pay_period, groceries, gas, savings_rate, wants_rate,
			 starting_debt, starting_savings)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Name, string(p.PayPeriod), p.Groceries, p.Gas,
			p.SavingsRate, p.WantsRate, p.StartingDebt, p.StartingSavings); err != nil {
			return fmt.Errorf("saving person %q: %w", p.Name, err)
		}

		for j, amount := range p.Paychecks {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO paychecks (person_id, position, amount) VALUES (?, ?, ?)",
				p.ID, j, amount); err != nil {
				return fmt.Errorf("saving paycheck: %w", err)
			}
		}
		for j, b := range p.Bills {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO bills (person_id, position, label, amount) VALUES (?, ?, ?, ?)",
				p.ID, j, b.Label, b.Amount); err != nil {
				return fmt.Errorf("saving bill: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}
