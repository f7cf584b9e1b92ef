package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookups(t *testing.T) {
	catalog := testCatalog()

	p, ok := catalog.ByName("pikachu")
	require.True(t, ok)
	assert.Equal(t, 25, p.Number)

	p, ok = catalog.ByName("  PIKACHU ")
	require.True(t, ok)
	assert.Equal(t, "Pikachu", p.Name)

	p, ok = catalog.ByNumber(7)
	require.True(t, ok)
	assert.Equal(t, "Squirtle", p.Name)

	_, ok = catalog.ByName("missingno")
	assert.False(t, ok)
	_, ok = catalog.ByNumber(9999)
	assert.False(t, ok)
}

func TestCatalogNamesFollowDexOrder(t *testing.T) {
	names := testCatalog().Names()
	assert.Equal(t, []string{"Charmander", "Charizard", "Squirtle", "Pikachu", "Chikorita"}, names)
}

func TestCatalogOfTheDayIsStableWithinADay(t *testing.T) {
	catalog := testCatalog()
	day := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	first, ok := catalog.OfTheDay(day)
	require.True(t, ok)

	// Same calendar day, different wall-clock time.
	later := day.Add(11 * time.Hour)
	second, ok := catalog.OfTheDay(later)
	require.True(t, ok)
	assert.Equal(t, first, second)

	// The pick must always come from the catalog.
	_, ok = catalog.ByNumber(first.Number)
	assert.True(t, ok)
}

func TestCatalogOfTheDayEmptyCatalog(t *testing.T) {
	catalog := NewCatalog(nil)
	_, ok := catalog.OfTheDay(time.Now())
	assert.False(t, ok)
	_, ok = catalog.Random()
	assert.False(t, ok)
}

func TestCatalogTypeDistribution(t *testing.T) {
	dist := testCatalog().TypeDistribution()
	assert.Equal(t, 2, dist[TypeFire])
	assert.Equal(t, 1, dist[TypeElectric])
	assert.Equal(t, 1, dist[TypeWater])
	assert.Equal(t, 1, dist[TypeGrass])
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType(" Electric ")
	require.True(t, ok)
	assert.Equal(t, TypeElectric, typ)

	_, ok = ParseType("sparkly")
	assert.False(t, ok)
	_, ok = ParseType("")
	assert.False(t, ok)
}
