package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

func testCatalog() *Catalog {
	return NewCatalog([]Pokemon{
		{Number: 4, Name: "Charmander", MainType: TypeFire, Attack: 52, Defense: 43, Stamina: 39, Speed: 65, WeightKG: 8.5, HeightM: 0.6},
		{Number: 6, Name: "Charizard", MainType: TypeFire, SecondaryType: TypeFlying, Attack: 84, Defense: 78, Stamina: 78, Speed: 100, WeightKG: 90.5, HeightM: 1.7},
		{Number: 25, Name: "Pikachu", MainType: TypeElectric, Attack: 55, Defense: 40, Stamina: 35, Speed: 90, WeightKG: 6.0, HeightM: 0.4},
		{Number: 7, Name: "Squirtle", MainType: TypeWater, Attack: 48, Defense: 65, Stamina: 44, Speed: 43, WeightKG: 9.0, HeightM: 0.5},
		{Number: 152, Name: "Chikorita", MainType: TypeGrass, Attack: 49, Defense: 65, Stamina: 45, Speed: 45, WeightKG: 6.4, HeightM: 0.9},
	})
}

func TestSearchNoCriteriaReturnsFullCatalog(t *testing.T) {
	catalog := testCatalog()

	page := Search(catalog, FilterCriteria{}, 1, 24)

	require.Len(t, page.Items, catalog.Len())
	assert.Equal(t, catalog.Len(), page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestSearchPreservesDexOrder(t *testing.T) {
	page := Search(testCatalog(), FilterCriteria{}, 1, 24)

	numbers := make([]int, 0, len(page.Items))
	for _, p := range page.Items {
		numbers = append(numbers, p.Number)
	}
	assert.Equal(t, []int{4, 6, 7, 25, 152}, numbers)
}

func TestSearchNameSubstringIsCaseInsensitive(t *testing.T) {
	catalog := testCatalog()

	for _, q := range []string{"char", "CHAR", "Char"} {
		page := Search(catalog, FilterCriteria{Query: q}, 1, 24)
		require.Len(t, page.Items, 2, "query %q", q)
		assert.Equal(t, "Charmander", page.Items[0].Name)
		assert.Equal(t, "Charizard", page.Items[1].Name)
	}
}

func TestSearchTypeMatchesMainOrSecondary(t *testing.T) {
	catalog := testCatalog()

	page := Search(catalog, FilterCriteria{Type: "Electric"}, 1, 24)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Pikachu", page.Items[0].Name)

	// Charizard is flying only as a secondary type.
	page = Search(catalog, FilterCriteria{Type: "FLYING"}, 1, 24)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Charizard", page.Items[0].Name)
}

func TestSearchUnknownTypeIsIgnored(t *testing.T) {
	page := Search(testCatalog(), FilterCriteria{Type: "sparkly"}, 1, 24)
	assert.Len(t, page.Items, 5)
}

func TestSearchMinAttackScenarios(t *testing.T) {
	catalog := testCatalog()

	page := Search(catalog, FilterCriteria{MinAttack: intPtr(53)}, 1, 24)
	require.Len(t, page.Items, 2)
	for _, p := range page.Items {
		assert.GreaterOrEqual(t, p.Attack, 53)
	}

	page = Search(catalog, FilterCriteria{MinAttack: intPtr(200)}, 1, 24)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
}

func TestSearchBoundsAreInclusive(t *testing.T) {
	page := Search(testCatalog(), FilterCriteria{MinAttack: intPtr(55), MaxAttack: intPtr(55)}, 1, 24)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Pikachu", page.Items[0].Name)
}

func TestSearchZeroBoundIsARealConstraint(t *testing.T) {
	catalog := NewCatalog([]Pokemon{
		{Number: 1, Name: "A", MainType: TypeNormal, Attack: 0},
		{Number: 2, Name: "B", MainType: TypeNormal, Attack: 10},
	})

	// MaxAttack of zero excludes everything with attack above zero, which
	// is different from no bound at all.
	page := Search(catalog, FilterCriteria{MaxAttack: intPtr(0)}, 1, 24)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "A", page.Items[0].Name)
}

func TestSearchWeightAndHeightRanges(t *testing.T) {
	page := Search(testCatalog(), FilterCriteria{MinWeight: floatPtr(8.5), MaxWeight: floatPtr(10)}, 1, 24)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Charmander", page.Items[0].Name)
	assert.Equal(t, "Squirtle", page.Items[1].Name)

	page = Search(testCatalog(), FilterCriteria{MaxHeight: floatPtr(0.5)}, 1, 24)
	require.Len(t, page.Items, 2)
}

func TestSearchPredicatesAreANDed(t *testing.T) {
	page := Search(testCatalog(), FilterCriteria{Query: "char", Type: "fire", MinAttack: intPtr(60)}, 1, 24)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Charizard", page.Items[0].Name)
}

func TestSearchGenerationFilter(t *testing.T) {
	page := Search(testCatalog(), FilterCriteria{Generation: 2}, 1, 24)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Chikorita", page.Items[0].Name)

	// Unknown generation means no constraint.
	page = Search(testCatalog(), FilterCriteria{Generation: 42}, 1, 24)
	assert.Len(t, page.Items, 5)
}

func TestPaginateTotalPagesFormula(t *testing.T) {
	items := testCatalog().All()

	cases := []struct {
		total      int
		pageSize   int
		totalPages int
	}{
		{0, 24, 1},
		{5, 2, 3},
		{5, 5, 1},
		{5, 24, 1},
		{4, 2, 2},
	}
	for _, tc := range cases {
		page := Paginate(items[:tc.total], 1, tc.pageSize)
		assert.Equal(t, tc.totalPages, page.TotalPages, "total=%d pageSize=%d", tc.total, tc.pageSize)
	}
}

func TestPaginatePastLastPage(t *testing.T) {
	page := Paginate(testCatalog().All(), 4, 2)

	assert.Empty(t, page.Items)
	assert.Equal(t, 4, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)
}

func TestPaginateClampsLowPage(t *testing.T) {
	page := Paginate(testCatalog().All(), -3, 2)

	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Items, 2)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)
}

func TestPaginateMiddlePage(t *testing.T) {
	page := Paginate(testCatalog().All(), 2, 2)

	require.Len(t, page.Items, 2)
	assert.Equal(t, 7, page.Items[0].Number)
	assert.Equal(t, 25, page.Items[1].Number)
	assert.True(t, page.HasPrev)
	assert.True(t, page.HasNext)
}
