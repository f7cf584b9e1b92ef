package predict

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokeknower/pokeknower/internal/core"
)

func serviceCatalog() *core.Catalog {
	return core.NewCatalog([]core.Pokemon{
		{Number: 1, Name: "Bulbasaur", MainType: core.TypeGrass, Attack: 49, Defense: 49},
		{Number: 4, Name: "Charmander", MainType: core.TypeFire, Attack: 52, Defense: 43},
		{Number: 7, Name: "Squirtle", MainType: core.TypeWater, Attack: 48, Defense: 65},
		{Number: 25, Name: "Pikachu", MainType: core.TypeElectric, Attack: 55, Defense: 40},
	})
}

func pngBytes(t *testing.T, c color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type stubClassifier struct {
	label      string
	confidence float64
	top        []Alternative
	err        error
}

func (s *stubClassifier) Classify(ctx context.Context, img image.Image) (string, float64, []Alternative, error) {
	if s.err != nil {
		return "", 0, nil, s.err
	}
	return s.label, s.confidence, s.top, nil
}

func TestPredictFallbackIsIdempotent(t *testing.T) {
	service := NewService(serviceCatalog(), nil, nil)
	data := pngBytes(t, color.RGBA{R: 255, A: 255})

	first, err := service.Predict(context.Background(), data)
	require.NoError(t, err)
	second, err := service.Predict(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, SourceFallback, first.Source)
}

func TestPredictFallbackJoinsStats(t *testing.T) {
	catalog := serviceCatalog()
	service := NewService(catalog, nil, nil)

	result, err := service.Predict(context.Background(), pngBytes(t, color.RGBA{G: 128, A: 255}))
	require.NoError(t, err)

	// Fallback labels come from the catalog itself, so the stats join
	// always succeeds on this path.
	require.NotNil(t, result.Stats)
	expected, ok := catalog.ByName(result.Label)
	require.True(t, ok)
	assert.Equal(t, expected, *result.Stats)
}

func TestPredictRejectsUndecodableBytes(t *testing.T) {
	service := NewService(serviceCatalog(), nil, nil)

	_, err := service.Predict(context.Background(), []byte("not an image at all"))
	assert.ErrorIs(t, err, ErrBadImage)

	_, err = service.Predict(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBadImage)
}

func TestPredictUsesClassifierWhenAvailable(t *testing.T) {
	classifier := &stubClassifier{
		label:      "Pikachu",
		confidence: 0.87,
		top: []Alternative{
			{Label: "Pikachu", Confidence: 0.87},
			{Label: "Charmander", Confidence: 0.08},
			{Label: "Squirtle", Confidence: 0.03},
		},
	}
	service := NewService(serviceCatalog(), classifier, nil)

	result, err := service.Predict(context.Background(), pngBytes(t, color.RGBA{B: 200, A: 255}))
	require.NoError(t, err)

	assert.Equal(t, SourceModel, result.Source)
	assert.Equal(t, "Pikachu", result.Label)
	// Fractional model confidences are normalized onto the 0-100 scale.
	assert.InDelta(t, 87.0, result.Confidence, 1e-9)
	require.Len(t, result.Alternatives, 3)
	assert.Equal(t, "Pikachu", result.Alternatives[0].Label)
	assert.InDelta(t, 8.0, result.Alternatives[1].Confidence, 1e-9)

	require.NotNil(t, result.Stats)
	assert.Equal(t, 25, result.Stats.Number)
}

func TestPredictFallsBackOnClassifierError(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("session exploded")}
	service := NewService(serviceCatalog(), classifier, nil)
	data := pngBytes(t, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	result, err := service.Predict(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, result.Source)

	// The degraded path stays deterministic.
	again, err := service.Predict(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, result, again)
}

func TestPredictUnknownModelLabelOmitsStats(t *testing.T) {
	classifier := &stubClassifier{
		label:      "MissingNo",
		confidence: 42.0,
		top:        []Alternative{{Label: "MissingNo", Confidence: 42.0}, {Label: "Pikachu", Confidence: 20.0}, {Label: "Squirtle", Confidence: 10.0}},
	}
	service := NewService(serviceCatalog(), classifier, nil)

	result, err := service.Predict(context.Background(), pngBytes(t, color.White))
	require.NoError(t, err)

	assert.Equal(t, "MissingNo", result.Label)
	assert.Nil(t, result.Stats)
}

func TestNormalizeConfidence(t *testing.T) {
	assert.InDelta(t, 87.0, normalizeConfidence(0.87), 1e-9)
	assert.InDelta(t, 42.0, normalizeConfidence(42.0), 1e-9)
	assert.Equal(t, 100.0, normalizeConfidence(250.0))
	assert.Equal(t, 0.0, normalizeConfidence(-3.0))
	assert.Equal(t, 100.0, normalizeConfidence(1.0))
}
