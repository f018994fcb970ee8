// Package benchmark stores precomputed performance scores in SQLite and
// serves the name-based lookups the ranking engine uses as tie-breakers.
package benchmark

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS products (
	name        TEXT PRIMARY KEY,
	final_score INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS cpu_benchmarks (
	cpu_name TEXT PRIMARY KEY,
	score    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS gpu_benchmarks (
	gpu_name TEXT PRIMARY KEY,
	score    INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS cpu_aliases (
	alias TEXT PRIMARY KEY,
	name  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS gpu_aliases (
	alias TEXT PRIMARY KEY,
	name  TEXT NOT NULL
);
`

// Store is a SQLite-backed score database. The zero value is not usable;
// construct with Open.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the score database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening benchmark db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing benchmark schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// FinalScoreByName returns the overall product score for an exact name
// match. A missing row is reported via ok=false, not an error.
func (s *Store) FinalScoreByName(ctx context.Context, name string) (float64, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false, nil
	}
	var score float64
	err := s.db.QueryRowContext(ctx,
		"SELECT final_score FROM products WHERE name = ? LIMIT 1", name).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("querying final score for %q: %w", name, err)
	}
	return score, true, nil
}

// CPUScore looks up a processor benchmark score, resolving known aliases
// to their canonical name first.
func (s *Store) CPUScore(ctx context.Context, model string) (float64, bool, error) {
	return s.componentScore(ctx, model, "cpu_benchmarks", "cpu_name", "cpu_aliases")
}

// GPUScore looks up a graphics card benchmark score, resolving known
// aliases to their canonical name first.
func (s *Store) GPUScore(ctx context.Context, model string) (float64, bool, error) {
	return s.componentScore(ctx, model, "gpu_benchmarks", "gpu_name", "gpu_aliases")
}

func (s *Store) componentScore(ctx context.Context, model, table, nameCol, aliasTable string) (float64, bool, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return 0, false, nil
	}

	canon := model
	var resolved string
	err := s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT name FROM %s WHERE alias = ? LIMIT 1", aliasTable), model).Scan(&resolved)
	switch {
	case err == nil:
		canon = resolved
	case !errors.Is(err, sql.ErrNoRows):
		return 0, false, fmt.Errorf("resolving alias %q: %w", model, err)
	}

	var score float64
	err = s.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT score FROM %s WHERE %s = ? LIMIT 1", table, nameCol), canon).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("querying %s for %q: %w", table, canon, err)
	}
	return score, true, nil
}

// UpsertFinalScore inserts or replaces a product's overall score.
func (s *Store) UpsertFinalScore(ctx context.Context, name string, score float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("product name is empty")
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO products (name, final_score) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET final_score = excluded.final_score",
		name, score)
	if err != nil {
		return fmt.Errorf("upserting final score for %q: %w", name, err)
	}
	return nil
}

// UpsertCPUScore inserts or replaces a processor benchmark score.
func (s *Store) UpsertCPUScore(ctx context.Context, name string, score float64) error {
	return s.upsertComponent(ctx, "cpu_benchmarks", "cpu_name", name, score)
}

// UpsertGPUScore inserts or replaces a graphics card benchmark score.
func (s *Store) UpsertGPUScore(ctx context.Context, name string, score float64) error {
	return s.upsertComponent(ctx, "gpu_benchmarks", "gpu_name", name, score)
}

func (s *Store) upsertComponent(ctx context.Context, table, nameCol, name string, score float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("component name is empty")
	}
	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (%s, score) VALUES (?, ?) ON CONFLICT(%s) DO UPDATE SET score = excluded.score",
			table, nameCol, nameCol),
		name, score)
	if err != nil {
		return fmt.Errorf("upserting %s score for %q: %w", table, name, err)
	}
	return nil
}

// AddCPUAlias maps an alias spelling onto a canonical processor name.
func (s *Store) AddCPUAlias(ctx context.Context, alias, name string) error {
	return s.addAlias(ctx, "cpu_aliases", alias, name)
}

// AddGPUAlias maps an alias spelling onto a canonical graphics card name.
func (s *Store) AddGPUAlias(ctx context.Context, alias, name string) error {
	return s.addAlias(ctx, "gpu_aliases", alias, name)
}

func (s *Store) addAlias(ctx context.Context, table, alias, name string) error {
	alias = strings.TrimSpace(alias)
	name = strings.TrimSpace(name)
	if alias == "" || name == "" {
		return errors.New("alias and name must be non-empty")
	}
	_, err := s.db.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (alias, name) VALUES (?, ?) ON CONFLICT(alias) DO UPDATE SET name = excluded.name", table),
		alias, name)
	if err != nil {
		return fmt.Errorf("adding alias %q: %w", alias, err)
	}
	return nil
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
