package store

import (
	"context"
	"errors"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS pokemon (
		number INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		main_type TEXT NOT NULL,
		secondary_type TEXT,
		region TEXT,
		category TEXT,
		weight_kg REAL NOT NULL DEFAULT 0,
		height_m REAL NOT NULL DEFAULT 0,
		attack INTEGER NOT NULL DEFAULT 0,
		defense INTEGER NOT NULL DEFAULT 0,
		stamina INTEGER NOT NULL DEFAULT 0,
		speed INTEGER NOT NULL DEFAULT 0,
		pokedex_desc TEXT,
		pic_url TEXT
	);`,
	`CREATE INDEX IF NOT EXISTS idx_pokemon_name ON pokemon(name COLLATE NOCASE);`,
	`CREATE TABLE IF NOT EXISTS quiz_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT,
		score INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_scores_created ON quiz_scores(created_at);`,
}

// Migrate ensures the required database tables exist. Statements are
// idempotent, so this runs on every startup.
func (s *Store) Migrate(ctx context.Context) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	for _, stmt := range schemaStatements {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("store migration failed: %w", err)
		}
	}

	return nil
}
