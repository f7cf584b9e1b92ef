package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuizQuestion(t *testing.T) {
	catalog := testCatalog()

	question, err := catalog.NewQuizQuestion()
	require.NoError(t, err)
	require.Len(t, question.Options, 4)

	seen := make(map[int]bool)
	answerIncluded := false
	for _, opt := range question.Options {
		assert.False(t, seen[opt.Number], "duplicate option %d", opt.Number)
		seen[opt.Number] = true
		if opt.Number == question.AnswerNumber {
			answerIncluded = true
		}
		_, ok := catalog.ByNumber(opt.Number)
		assert.True(t, ok)
	}
	assert.True(t, answerIncluded)
}

func TestNewQuizQuestionNeedsFourSpecies(t *testing.T) {
	catalog := NewCatalog([]Pokemon{
		{Number: 1, Name: "Bulbasaur", MainType: TypeGrass},
		{Number: 4, Name: "Charmander", MainType: TypeFire},
	})

	_, err := catalog.NewQuizQuestion()
	assert.Error(t, err)
}
