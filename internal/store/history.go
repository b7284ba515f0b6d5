package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const dbFileName = "history.sqlite"

// Store persists accepted picks in a SQLite database under Dir.
type Store struct {
	Dir string
}

// DefaultDir resolves the data directory: $TIMESCAPE_DIR, else ~/.timescape.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TIMESCAPE_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".timescape"), nil
}

// Pick is one accepted date/time with the wall-clock moment it was picked.
type Pick struct {
	ID       int64
	Chosen   time.Time
	PickedAt time.Time
}

func (s Store) dbPath() string {
	return filepath.Join(filepath.Clean(s.Dir), dbFileName)
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Clean(s.Dir), 0o755); err != nil {
		return nil, fmt.Errorf("ensure store dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS picks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chosen TEXT NOT NULL,
		picked_at TEXT NOT NULL
	);`)
	return err
}

// Append records one accepted pick.
func (s Store) Append(ctx context.Context, chosen time.Time) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO picks(chosen, picked_at) VALUES(?, ?)`,
		chosen.Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append pick: %w", err)
	}
	return nil
}

// List returns the most recent picks, newest first. limit <= 0 lists all.
func (s Store) List(ctx context.Context, limit int) ([]Pick, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := `SELECT id, chosen, picked_at FROM picks ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	defer rows.Close()

	var out []Pick
	for rows.Next() {
		var p Pick
		var chosen, pickedAt string
		if err := rows.Scan(&p.ID, &chosen, &pickedAt); err != nil {
			return nil, err
		}
		if p.Chosen, err = time.Parse(time.RFC3339, chosen); err != nil {
			return nil, fmt.Errorf("corrupt pick %d: %w", p.ID, err)
		}
		if p.PickedAt, err = time.Parse(time.RFC3339, pickedAt); err != nil {
			return nil, fmt.Errorf("corrupt pick %d: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Clear drops all history.
func (s Store) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `DELETE FROM picks`); err != nil {
		return fmt.Errorf("clear picks: %w", err)
	}
	return nil
}
