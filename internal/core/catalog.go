package core

import (
	"crypto/md5" // #nosec G501 -- non-cryptographic use, stable content digest only
	"math/big"
	"math/rand"
	"sort"
	"strings"
	"time"
)

// Catalog is the immutable in-memory record store. It is built once at
// process start and only read afterwards, so it needs no locking for
// concurrent use.
type Catalog struct {
	records  []Pokemon
	byName   map[string]int
	byNumber map[int]int
}

// NewCatalog builds a catalog from records, ordering them by dex number.
// Duplicate names or numbers keep the first occurrence.
func NewCatalog(records []Pokemon) *Catalog {
	sorted := make([]Pokemon, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	c := &Catalog{
		records:  sorted,
		byName:   make(map[string]int, len(sorted)),
		byNumber: make(map[int]int, len(sorted)),
	}
	for i, p := range sorted {
		key := strings.ToLower(p.Name)
		if _, exists := c.byName[key]; !exists {
			c.byName[key] = i
		}
		if _, exists := c.byNumber[p.Number]; !exists {
			c.byNumber[p.Number] = i
		}
	}
	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns the underlying records in dex order. Callers must not mutate
// the returned slice.
func (c *Catalog) All() []Pokemon {
	return c.records
}

// ByName looks up a record by name, case-insensitively.
func (c *Catalog) ByName(name string) (Pokemon, bool) {
	i, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pokemon{}, false
	}
	return c.records[i], true
}

// ByNumber looks up a record by dex number.
func (c *Catalog) ByNumber(number int) (Pokemon, bool) {
	i, ok := c.byNumber[number]
	if !ok {
		return Pokemon{}, false
	}
	return c.records[i], true
}

// Names returns all species names in dex order. This is the label set used
// by the fallback predictor.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.records))
	for i, p := range c.records {
		names[i] = p.Name
	}
	return names
}

// Random returns a uniformly random record.
func (c *Catalog) Random() (Pokemon, bool) {
	if len(c.records) == 0 {
		return Pokemon{}, false
	}
	return c.records[rand.Intn(len(c.records))], true
}

// OfTheDay returns the record selected for the given day. The selection is a
// digest of the ISO date modulo the catalog size, so it is stable within a
// day and rotates across days.
func (c *Catalog) OfTheDay(day time.Time) (Pokemon, bool) {
	if len(c.records) == 0 {
		return Pokemon{}, false
	}
	sum := md5.Sum([]byte(day.Format("2006-01-02"))) // #nosec G401
	h := new(big.Int).SetBytes(sum[:])
	offset := new(big.Int).Mod(h, big.NewInt(int64(len(c.records)))).Int64()
	return c.records[offset], true
}

// TypeDistribution counts records per main type.
func (c *Catalog) TypeDistribution() map[TypeName]int {
	dist := make(map[TypeName]int)
	for _, p := range c.records {
		dist[p.MainType]++
	}
	return dist
}
