// Package importer loads catalog rows from the tabular source dataset into
// the store. It runs from the import CLI command, never mid-process.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/core"
	"github.com/pokeknower/pokeknower/internal/core/store"
)

// Importer reads a CSV dataset and upserts rows into the store.
type Importer struct {
	store  *store.Store
	logger *zap.Logger
}

// New builds an importer.
func New(st *store.Store, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{store: st, logger: logger}
}

// ImportFile imports one CSV file and returns the number of rows written.
// Rows that cannot be parsed are skipped with a warning; the source dataset
// is messy and a bad row should not abort the load.
func (im *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() // nolint:errcheck

	return im.Import(ctx, f)
}

// Import reads CSV rows from r. The first row must be a header naming at
// least number, name and main_type.
func (im *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read dataset header: %w", err)
	}
	cols := indexColumns(header)
	for _, required := range []string{"number", "name", "main_type"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("dataset header is missing %q", required)
		}
	}

	imported := 0
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			im.logger.Warn("skipping malformed dataset row", zap.Int("line", line), zap.Error(err))
			continue
		}

		p, err := parseRow(record, cols)
		if err != nil {
			im.logger.Warn("skipping dataset row", zap.Int("line", line), zap.Error(err))
			continue
		}

		if err := im.store.UpsertPokemon(ctx, p); err != nil {
			return imported, err
		}
		imported++
	}

	im.logger.Info("dataset import finished", zap.Int("rows", imported))
	return imported, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key != "" {
			cols[key] = i
		}
	}
	return cols
}

func parseRow(record []string, cols map[string]int) (core.Pokemon, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	number, err := strconv.Atoi(field("number"))
	if err != nil || number < 1 {
		return core.Pokemon{}, fmt.Errorf("invalid dex number %q", field("number"))
	}
	name := field("name")
	if name == "" {
		return core.Pokemon{}, fmt.Errorf("row %d has no name", number)
	}

	mainType, ok := core.ParseType(field("main_type"))
	if !ok {
		return core.Pokemon{}, fmt.Errorf("row %d has unknown main type %q", number, field("main_type"))
	}
	// Secondary type is optional and often blank; unknown values are dropped.
	var secondaryType core.TypeName
	if t, ok := core.ParseType(field("secondary_type")); ok {
		secondaryType = t
	}

	return core.Pokemon{
		Number:        number,
		Name:          name,
		MainType:      mainType,
		SecondaryType: secondaryType,
		Region:        field("region"),
		Category:      field("category"),
		WeightKG:      parseMeasure(field("weight_kg"), field("weight")),
		HeightM:       parseMeasure(field("height_m"), field("height")),
		Attack:        parseInt(field("attack")),
		Defense:       parseInt(field("defense")),
		Stamina:       parseInt(field("stamina")),
		Speed:         parseInt(field("speed")),
		PokedexDesc:   field("pokedex_desc"),
		PicURL:        field("pic_url"),
	}, nil
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseMeasure accepts plain numbers and the dataset's unit-suffixed
// variants like "6.9 kg" or "0.7 m".
func parseMeasure(values ...string) float64 {
	for _, v := range values {
		if v == "" {
			continue
		}
		if i := strings.IndexByte(v, ' '); i > 0 {
			v = v[:i]
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}
