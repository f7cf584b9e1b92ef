package predict

import (
	"errors"

	"github.com/pokeknower/pokeknower/internal/core"
)

// ErrBadImage reports bytes that could not be decoded as a supported image.
// This is the only hard failure on the predict path; everything else
// degrades to a usable result.
var ErrBadImage = errors.New("unrecognized or unreadable image data")

// Alternative is one ranked candidate label.
type Alternative struct {
	Label      string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Result is a species prediction. Alternatives always has exactly three
// entries in descending confidence order, and the first entry repeats the
// top-level label and confidence. Stats is nil when the label has no
// catalog record.
type Result struct {
	Label        string        `json:"name"`
	Confidence   float64       `json:"confidence"`
	Alternatives []Alternative `json:"top_3"`
	Stats        *core.Pokemon `json:"pokemon"`
	Source       string        `json:"source"`
}

// Result sources.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)
