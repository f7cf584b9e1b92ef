package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pokeknower/pokeknower/internal/core"
)

// LoadCatalog reads every pokemon row in dex order and builds the immutable
// in-memory catalog. This runs once at startup; the catalog is never
// re-read mid-process.
func (s *Store) LoadCatalog(ctx context.Context) (*core.Catalog, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("store is not initialized")
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT number, name, main_type, secondary_type, region, category,
		       weight_kg, height_m, attack, defense, stamina, speed,
		       pokedex_desc, pic_url
		FROM pokemon
		ORDER BY number
	`)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	defer rows.Close() // nolint:errcheck // best-effort cleanup on SQL rows

	var records []core.Pokemon
	for rows.Next() {
		var (
			p                   core.Pokemon
			secondaryType       sql.NullString
			region, category    sql.NullString
			pokedexDesc, picURL sql.NullString
		)
		if err := rows.Scan(&p.Number, &p.Name, &p.MainType, &secondaryType,
			&region, &category, &p.WeightKG, &p.HeightM,
			&p.Attack, &p.Defense, &p.Stamina, &p.Speed,
			&pokedexDesc, &picURL); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		p.SecondaryType = core.TypeName(secondaryType.String)
		p.Region = region.String
		p.Category = category.String
		p.PokedexDesc = pokedexDesc.String
		p.PicURL = picURL.String
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalog rows: %w", err)
	}

	return core.NewCatalog(records), nil
}

// UpsertPokemon inserts or replaces one catalog row, keyed by dex number.
func (s *Store) UpsertPokemon(ctx context.Context, p core.Pokemon) error {
	if s == nil || s.DB == nil {
		return errors.New("store is not initialized")
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO pokemon (number, name, main_type, secondary_type, region,
			category, weight_kg, height_m, attack, defense, stamina, speed,
			pokedex_desc, pic_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(number) DO UPDATE SET
			name = excluded.name,
			main_type = excluded.main_type,
			secondary_type = excluded.secondary_type,
			region = excluded.region,
			category = excluded.category,
			weight_kg = excluded.weight_kg,
			height_m = excluded.height_m,
			attack = excluded.attack,
			defense = excluded.defense,
			stamina = excluded.stamina,
			speed = excluded.speed,
			pokedex_desc = excluded.pokedex_desc,
			pic_url = excluded.pic_url
	`, p.Number, p.Name, string(p.MainType), nullString(string(p.SecondaryType)),
		nullString(p.Region), nullString(p.Category), p.WeightKG, p.HeightM,
		p.Attack, p.Defense, p.Stamina, p.Speed,
		nullString(p.PokedexDesc), nullString(p.PicURL))
	if err != nil {
		return fmt.Errorf("upsert pokemon %d: %w", p.Number, err)
	}
	return nil
}

// CountPokemon returns the number of catalog rows.
func (s *Store) CountPokemon(ctx context.Context) (int, error) {
	if s == nil || s.DB == nil {
		return 0, errors.New("store is not initialized")
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM pokemon`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pokemon: %w", err)
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
