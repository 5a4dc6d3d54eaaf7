// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extraction results in a SQLite archive. The
// extraction engine itself is stateless; everything recorded here is
// written by the callers (server, watcher, CLI) after an extraction run.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/lexiscan/internal/engine"
	"github.com/pdiddy/lexiscan/pkg/types"
)

const defaultMaxResults = 20

// Store manages the extraction archive SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the archive database at cfg.Path, creating
// parent directories and the schema as needed.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			filename TEXT,
			sha256 TEXT,
			text_length INTEGER,
			created_at TEXT,
			response TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS parties (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			name_norm TEXT NOT NULL,
			role TEXT,
			confidence REAL
		)`,
		`CREATE TABLE IF NOT EXISTS dates (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			context TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS amounts (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			slot TEXT NOT NULL,
			currency TEXT,
			amount REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_parties_name_norm ON parties(name_norm)`,
		`CREATE INDEX IF NOT EXISTS idx_parties_document_id ON parties(document_id)`,
		`CREATE INDEX IF NOT EXISTS idx_dates_document_id ON dates(document_id)`,
		`CREATE INDEX IF NOT EXISTS idx_amounts_document_id ON amounts(document_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// Amount slots used in the amounts table.
const (
	slotContractValue  = "contract_value"
	slotAdvancePayment = "advance_payment"
	slotOther          = "other"
)

// Save archives one document record together with row-level copies of its
// parties, dates, and amounts for querying. A missing ID or CreatedAt is
// filled in; the record is updated in place so the caller sees the values.
func (s *Store) Save(ctx context.Context, rec *types.DocumentRecord) error {
	if rec.Response == nil {
		return fmt.Errorf("record has no extraction response")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	responseJSON, err := json.Marshal(rec.Response)
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, filename, sha256, text_length, created_at, response)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Filename, rec.SHA256, rec.TextLength,
		rec.CreatedAt.Format(time.RFC3339Nano), string(responseJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}

	for _, p := range rec.Response.Parties {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO parties (document_id, name, name_norm, role, confidence)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.ID, p.Name, engine.NormalizeCompanyName(p.Name), string(p.Role), p.Confidence,
		)
		if err != nil {
			return fmt.Errorf("inserting party %s: %w", p.Name, err)
		}
	}

	for _, d := range rec.Response.Dates {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO dates (document_id, date, context) VALUES (?, ?, ?)`,
			rec.ID, d.Date, string(d.Context),
		)
		if err != nil {
			return fmt.Errorf("inserting date %s: %w", d.Date, err)
		}
	}

	if err := s.insertAmounts(ctx, tx, rec); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) insertAmounts(ctx context.Context, tx *sql.Tx, rec *types.DocumentRecord) error {
	insert := func(slot string, a types.AmountRecord) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO amounts (document_id, slot, currency, amount) VALUES (?, ?, ?, ?)`,
			rec.ID, slot, a.Currency, a.Amount,
		)
		if err != nil {
			return fmt.Errorf("inserting %s amount: %w", slot, err)
		}
		return nil
	}

	if cv := rec.Response.ContractValue; cv != nil {
		if err := insert(slotContractValue, *cv); err != nil {
			return err
		}
	}
	for _, a := range rec.Response.AdvancePayment {
		if err := insert(slotAdvancePayment, a); err != nil {
			return err
		}
	}
	for _, a := range rec.Response.OtherAmounts {
		if err := insert(slotOther, a); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the archived record with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*types.DocumentRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, filename, sha256, text_length, created_at, response
		 FROM documents WHERE id = ?`, id)

	rec, err := scanDocument(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("document %s not found", id)
		}
		return nil, fmt.Errorf("looking up document: %w", err)
	}
	return rec, nil
}

// List returns archived records, newest first. A non-positive limit uses
// the store default.
func (s *Store) List(ctx context.Context, limit int) ([]*types.DocumentRecord, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, filename, sha256, text_length, created_at, response
		 FROM documents ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

// FindByParty returns records whose reconciled parties match the given
// name. Matching runs over suffix-stripped normalized names, so "Chase
// Bank USA" finds documents naming "Chase Bank USA Inc.".
func (s *Store) FindByParty(ctx context.Context, name string) ([]*types.DocumentRecord, error) {
	norm := engine.NormalizeCompanyName(name)
	if norm == "" {
		return nil, fmt.Errorf("party name %q normalizes to nothing", name)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT d.id, d.filename, d.sha256, d.text_length, d.created_at, d.response
		 FROM documents d
		 JOIN parties p ON p.document_id = d.id
		 WHERE p.name_norm LIKE ?
		 ORDER BY d.created_at DESC LIMIT ?`,
		"%"+norm+"%", s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying parties: %w", err)
	}
	defer rows.Close()

	return collectDocuments(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*types.DocumentRecord, error) {
	var (
		rec          types.DocumentRecord
		createdAt    string
		responseJSON string
	)

	if err := row.Scan(&rec.ID, &rec.Filename, &rec.SHA256, &rec.TextLength,
		&createdAt, &responseJSON); err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	rec.CreatedAt = ts

	resp := types.NewExtractionResponse()
	if err := json.Unmarshal([]byte(responseJSON), resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	rec.Response = resp

	return &rec, nil
}

func collectDocuments(rows *sql.Rows) ([]*types.DocumentRecord, error) {
	var records []*types.DocumentRecord
	for rows.Next() {
		rec, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
