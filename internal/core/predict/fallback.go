package predict

import (
	"crypto/md5" // #nosec G501 -- stable content digest, not used for security
	"errors"
	"math/big"
)

// Fallback derives a deterministic prediction from a digest of the image
// bytes. Identical input always yields an identical result: the digest picks
// the primary label (hash mod label count) and a confidence in the 65-90
// band, and the two runner-up labels are the next catalog entries after the
// primary. A time-seeded generator would break the idempotence contract, so
// nothing here depends on clock or process state.
func Fallback(data []byte, labels []string) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrBadImage
	}
	if len(labels) == 0 {
		return nil, errors.New("fallback predictor needs a non-empty label set")
	}

	sum := md5.Sum(data) // #nosec G401
	h := new(big.Int).SetBytes(sum[:])

	n := big.NewInt(int64(len(labels)))
	idx := int(new(big.Int).Mod(h, n).Int64())
	confidence := 65.0 + float64(new(big.Int).Mod(h, big.NewInt(25)).Int64())

	altIdx1 := (idx + 1) % len(labels)
	altIdx2 := (idx + 2) % len(labels)

	return &Result{
		Label:      labels[idx],
		Confidence: confidence,
		Alternatives: []Alternative{
			{Label: labels[idx], Confidence: confidence},
			{Label: labels[altIdx1], Confidence: maxFloat(30, 80-confidence)},
			{Label: labels[altIdx2], Confidence: maxFloat(20, 70-confidence)},
		},
		Source: SourceFallback,
	}, nil
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
