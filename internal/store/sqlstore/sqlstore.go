// Package sqlstore keeps collections in a single key/value table of a SQL
// database. SQLite serves the single-user local setup; PostgreSQL lets
// several installations share one database.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/nssportal/internal/dbx"
	"github.com/dmitrijs2005/nssportal/internal/store"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect selects SQL placeholders and migrations.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func (d Dialect) gooseDialect() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite3"
}

func (d Dialect) migrationsDir() string {
	return "migrations/" + string(d)
}

type queries struct {
	load   string
	upsert string
}

func (d Dialect) queries() queries {
	if d == Postgres {
		return queries{
			load: `SELECT value FROM collections WHERE key = $1`,
			upsert: `INSERT INTO collections (key, value, updated_at) VALUES ($1, $2, now())
				ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		}
	}
	return queries{
		load: `SELECT value FROM collections WHERE key = ?`,
		upsert: `INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
	}
}

// Store implements store.Store and store.BatchSaver.
type Store struct {
	db *sql.DB
	q  queries
}

var (
	_ store.Store      = (*Store)(nil)
	_ store.BatchSaver = (*Store)(nil)
)

// New wraps an open database whose schema is already migrated.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, q: d.queries()}
}

// OpenSQLite opens (creating if needed) the SQLite database at dsn and
// migrates it. The pool is limited to one connection: SQLite allows a single
// writer, and ":memory:" databases exist per connection.
func OpenSQLite(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return open(ctx, db, SQLite)
}

// OpenPostgres connects through pgx and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return open(ctx, db, Postgres)
}

func open(ctx context.Context, db *sql.DB, d Dialect) (*Store, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}
	if err := RunMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return New(db, d), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, s.q.load, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	return s.save(ctx, s.db, key, value)
}

// SaveBatch writes every item in one transaction.
func (s *Store) SaveBatch(ctx context.Context, items []store.Item) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, it := range items {
			if err := s.save(ctx, tx, it.Key, it.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) save(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	if _, err := db.ExecContext(ctx, s.q.upsert, key, value); err != nil {
		return fmt.Errorf("failed to save collection[%s]: %w", key, err)
	}
	return nil
}
