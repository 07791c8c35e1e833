// Package sqlite implements the content and user stores on an embedded
// SQLite database. Every record is a JSON document in one table, keyed by
// (kind, id).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"

	_ "modernc.org/sqlite"
)

// Document kinds.
const (
	kindPage    = "page"
	kindPartner = "partner"
	kindSegment = "segment"
	kindInquiry = "inquiry"
	kindUser    = "user"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	kind       TEXT NOT NULL,
	id         TEXT NOT NULL,
	body       TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (kind, id)
)`

// Manager implements interfaces.StorageManager using SQLite.
type Manager struct {
	db     *sql.DB
	logger *common.Logger
	path   string

	contentStore  *ContentStore
	internalStore *InternalStore
}

// NewManager opens (creating if needed) the SQLite database at
// config.Storage.Path. The path ":memory:" gives a private in-memory store.
func NewManager(logger *common.Logger, config *common.Config) (*Manager, error) {
	path := config.Storage.Path
	if path == "" {
		return nil, errors.New("sqlite storage path is empty")
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			logger.Debug().Str("pragma", pragma).Err(err).Msg("SQLite pragma not applied")
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	docs := &documents{db: db}
	m := &Manager{
		db:            db,
		logger:        logger,
		path:          path,
		contentStore:  &ContentStore{docs: docs, logger: logger},
		internalStore: &InternalStore{docs: docs, logger: logger},
	}

	logger.Info().Str("path", path).Msg("SQLite storage manager initialized")
	return m, nil
}

func (m *Manager) ContentStore() interfaces.ContentStore {
	return m.contentStore
}

func (m *Manager) InternalStore() interfaces.InternalStore {
	return m.internalStore
}

func (m *Manager) Backend() string {
	return "sqlite"
}

func (m *Manager) Close() error {
	return m.db.Close()
}

// Compile-time check
var _ interfaces.StorageManager = (*Manager)(nil)

// documents is the JSON document table shared by both stores.
type documents struct {
	db *sql.DB
}

func (d *documents) get(ctx context.Context, kind, id string, out any) error {
	var body string
	err := d.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE kind = ? AND id = ?", kind, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", kind, id, interfaces.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return fmt.Errorf("failed to decode %s %q: %w", kind, id, err)
	}
	return nil
}

func (d *documents) put(ctx context.Context, kind, id string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	_, err = d.db.ExecContext(ctx, `
		INSERT INTO documents (kind, id, body, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (kind, id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		kind, id, string(body), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

func (d *documents) delete(ctx context.Context, kind, id string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM documents WHERE kind = ? AND id = ?", kind, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return nil
}

// list returns the raw JSON bodies of every document of kind.
func (d *documents) list(ctx context.Context, kind string) ([][]byte, error) {
	rows, err := d.db.QueryContext(ctx, "SELECT body FROM documents WHERE kind = ? ORDER BY id", kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer rows.Close()

	var bodies [][]byte
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", kind, err)
		}
		bodies = append(bodies, []byte(body))
	}
	return bodies, rows.Err()
}

// listAs decodes every document of kind into a fresh T.
func listAs[T any](ctx context.Context, d *documents, kind string) ([]*T, error) {
	bodies, err := d.list(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(bodies))
	for _, b := range bodies {
		v := new(T)
		if err := json.Unmarshal(b, v); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", kind, err)
		}
		out = append(out, v)
	}
	return out, nil
}
