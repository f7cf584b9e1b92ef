package predict

import (
	"bytes"
	"context"
	"image"

	// Supported upload encodings. Decoders register themselves with
	// image.Decode; webp comes from x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/core"
)

// Classifier is the boundary to a trained model. Implementations return a
// primary label, a confidence (either a 0-1 fraction or a 0-100 percentage),
// and ranked candidates including the primary.
type Classifier interface {
	Classify(ctx context.Context, img image.Image) (label string, confidence float64, top []Alternative, err error)
}

// Service answers predict requests. It prefers the configured classifier and
// degrades to the deterministic fallback on any model failure, so a valid
// image always produces a structurally complete result.
type Service struct {
	catalog    *core.Catalog
	labels     []string
	classifier Classifier
	logger     *zap.Logger
}

// NewService builds a predictor over the catalog. classifier may be nil, in
// which case every request takes the fallback path. The fallback label set
// is the catalog's species names in dex order.
func NewService(catalog *core.Catalog, classifier Classifier, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		catalog:    catalog,
		labels:     catalog.Names(),
		classifier: classifier,
		logger:     logger,
	}
}

// ModelLoaded reports whether a real classifier is configured.
func (s *Service) ModelLoaded() bool {
	return s.classifier != nil
}

// Predict classifies image bytes. Undecodable bytes return ErrBadImage;
// every other condition resolves to a result.
func (s *Service) Predict(ctx context.Context, data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrBadImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrBadImage
	}

	if s.classifier != nil {
		result, err := s.classify(ctx, img)
		if err == nil {
			return s.enrich(result), nil
		}
		s.logger.Warn("model invocation failed, using fallback predictor",
			zap.String("format", format),
			zap.Error(err))
	}

	result, err := Fallback(data, s.labels)
	if err != nil {
		return nil, err
	}
	return s.enrich(result), nil
}

func (s *Service) classify(ctx context.Context, img image.Image) (*Result, error) {
	label, confidence, top, err := s.classifier.Classify(ctx, img)
	if err != nil {
		return nil, err
	}

	confidence = normalizeConfidence(confidence)
	alternatives := make([]Alternative, 0, 3)
	alternatives = append(alternatives, Alternative{Label: label, Confidence: confidence})
	for _, alt := range top {
		if len(alternatives) == 3 {
			break
		}
		if alt.Label == label {
			continue
		}
		alternatives = append(alternatives, Alternative{
			Label:      alt.Label,
			Confidence: normalizeConfidence(alt.Confidence),
		})
	}

	return &Result{
		Label:        label,
		Confidence:   confidence,
		Alternatives: alternatives,
		Source:       SourceModel,
	}, nil
}

// enrich joins the catalog record for the primary label. A label without a
// record still yields a successful, stats-less result.
func (s *Service) enrich(result *Result) *Result {
	if stats, ok := s.catalog.ByName(result.Label); ok {
		result.Stats = &stats
	}
	return result
}

// normalizeConfidence maps model output onto the 0-100 scale. Values at or
// below 1 are treated as probability fractions.
func normalizeConfidence(c float64) float64 {
	if c <= 1.0 {
		c *= 100
	}
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
