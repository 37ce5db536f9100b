package watchlist

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists the watchlist to a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the SQLite database, runs migrations, and seeds the
// default watchlist when the table is empty.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so a reader can inspect the list while the scanner runs.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	log.Printf("[INFO] watchlist store opened: %s", dbPath)
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS watchlist (
			symbol   TEXT PRIMARY KEY,
			tier     INTEGER NOT NULL DEFAULT 1,
			added_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlist_tier ON watchlist(tier)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

func (s *Store) seedIfEmpty() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM watchlist").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now().Unix()
	for _, e := range DefaultEntries {
		if _, err := s.db.Exec(
			"INSERT INTO watchlist (symbol, tier, added_at) VALUES (?, ?, ?)",
			e.Symbol, e.Tier, now,
		); err != nil {
			return err
		}
	}
	log.Printf("[INFO] seeded watchlist with %d default symbols", len(DefaultEntries))
	return nil
}

// List returns all watched symbols, tier 1 first, insertion order within a tier.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT symbol FROM watchlist ORDER BY tier, rowid")
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var sym string
		if err := rows.Scan(&sym); err != nil {
			return nil, err
		}
		symbols = append(symbols, sym)
	}
	return symbols, rows.Err()
}

// Add inserts or re-tiers a symbol.
func (s *Store) Add(symbol string, tier int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO watchlist (symbol, tier, added_at) VALUES (?, ?, ?)
		 ON CONFLICT(symbol) DO UPDATE SET tier = excluded.tier`,
		symbol, tier, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("add %s: %w", symbol, err)
	}
	return nil
}

// Remove deletes a symbol from the watchlist.
func (s *Store) Remove(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM watchlist WHERE symbol = ?", symbol); err != nil {
		return fmt.Errorf("remove %s: %w", symbol, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
