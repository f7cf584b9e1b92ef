package core

import (
	"errors"
	"math/rand"
	"time"
)

// QuizScore is one finished "Who's that Pokémon?" round.
type QuizScore struct {
	ID             int64     `json:"id"`
	Player         string    `json:"player,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CreatedAt      time.Time `json:"created_at"`
}

// QuizOption is one answer choice.
type QuizOption struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// QuizQuestion asks which species matches the picture for AnswerNumber. The
// options include the answer and three decoys in shuffled order.
type QuizQuestion struct {
	AnswerNumber int          `json:"pokemon_number"`
	PicURL       string       `json:"pic_url,omitempty"`
	Options      []QuizOption `json:"options"`
}

// NewQuizQuestion draws a random question from the catalog. It needs at
// least four species to build a full option set.
func (c *Catalog) NewQuizQuestion() (*QuizQuestion, error) {
	if c.Len() < 4 {
		return nil, errors.New("catalog too small for a quiz question")
	}

	perm := rand.Perm(c.Len())
	correct := c.records[perm[0]]

	options := make([]QuizOption, 0, 4)
	options = append(options, QuizOption{Number: correct.Number, Name: correct.Name})
	for _, i := range perm[1:4] {
		p := c.records[i]
		options = append(options, QuizOption{Number: p.Number, Name: p.Name})
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &QuizQuestion{
		AnswerNumber: correct.Number,
		PicURL:       correct.PicURL,
		Options:      options,
	}, nil
}
