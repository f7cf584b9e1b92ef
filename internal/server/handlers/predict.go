package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pokeknower/pokeknower/internal/core/predict"
	apperrors "github.com/pokeknower/pokeknower/internal/errors"
)

// allowedExtensions is the upload allow-list. The decoder is the real
// gatekeeper; the extension check just rejects obvious junk early.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// Predict handles POST /api/predict with a multipart "file" field. Model
// failures degrade to the deterministic fallback inside the service;
// undecodable bytes are the only client error on this path.
func (a *API) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes)

	if err := r.ParseMultipartForm(a.MaxUploadBytes); err != nil {
		respondError(w, r, apperrors.NewInvalidInputError("Could not parse upload form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, apperrors.NewInvalidInputError("No file provided; use 'file' as the form field name"))
		return
	}
	defer file.Close() // nolint:errcheck

	if header.Filename == "" {
		respondError(w, r, apperrors.NewInvalidInputError("No file selected"))
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		respondError(w, r, apperrors.NewInvalidInputError("Invalid file type; supported: png, jpg, jpeg, gif, webp"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, apperrors.NewInvalidInputError("Could not read uploaded file"))
		return
	}

	result, err := a.Predictor.Predict(r.Context(), data)
	if err != nil {
		if errors.Is(err, predict.ErrBadImage) {
			respondError(w, r, apperrors.NewInvalidInputError("Uploaded bytes are not a readable image"))
			return
		}
		respondError(w, r, err)
		return
	}

	a.Logger.Debug("prediction served",
		zap.String("label", result.Label),
		zap.String("source", result.Source),
		zap.Float64("confidence", result.Confidence))

	respondJSON(w, http.StatusOK, result)
}
