package core

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaFromValuesParsesBounds(t *testing.T) {
	params := url.Values{}
	params.Set("q", "char")
	params.Set("type", "fire")
	params.Set("minAttack", "50")
	params.Set("maxAttack", "90")
	params.Set("minWeight", "8.5")
	params.Set("gen", "1")

	criteria := CriteriaFromValues(params)

	assert.Equal(t, "char", criteria.Query)
	assert.Equal(t, "fire", criteria.Type)
	require.NotNil(t, criteria.MinAttack)
	assert.Equal(t, 50, *criteria.MinAttack)
	require.NotNil(t, criteria.MaxAttack)
	assert.Equal(t, 90, *criteria.MaxAttack)
	require.NotNil(t, criteria.MinWeight)
	assert.Equal(t, 8.5, *criteria.MinWeight)
	assert.Equal(t, 1, criteria.Generation)
	assert.Nil(t, criteria.MinDefense)
}

func TestCriteriaFromValuesDropsMalformedNumbers(t *testing.T) {
	params := url.Values{}
	params.Set("minAttack", "strong")
	params.Set("maxWeight", "heavy")
	params.Set("gen", "first")

	criteria := CriteriaFromValues(params)

	assert.Nil(t, criteria.MinAttack)
	assert.Nil(t, criteria.MaxWeight)
	assert.Equal(t, 0, criteria.Generation)
}

func TestCriteriaFromValuesKeepsZeroBounds(t *testing.T) {
	params := url.Values{}
	params.Set("minAttack", "0")

	criteria := CriteriaFromValues(params)

	// A zero bound is a real constraint, not an absent one.
	require.NotNil(t, criteria.MinAttack)
	assert.Equal(t, 0, *criteria.MinAttack)
}
