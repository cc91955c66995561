package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"chitraleap/internal/providers/adcopy"
	"chitraleap/internal/providers/image"
)

type adRequest struct {
	ProductDescription string `json:"product_description"`
	TargetAudience     string `json:"target_audience"`
	Offer              string `json:"offer"`
	Language           string `json:"language"`
}

type adResponse struct {
	AdCopy    []adcopy.Variant `json:"ad_copy"`
	ImageURLs []string         `json:"image_urls"`
}

// requiredFields fixes the enumeration order of the 400 message.
var requiredFields = []string{"product_description", "target_audience", "offer", "language"}

// GenerateAd runs the whole pipeline: validate the brief, one text-generation
// call, then one image call per returned prompt in order. Every failure is
// terminal for the request; nothing is retried and no partial result leaks.
func (a *App) GenerateAd(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "No JSON data provided")
		return
	}

	// Values are used verbatim: no trimming, no coercion, no length limits.
	values := map[string]string{
		"product_description": req.ProductDescription,
		"target_audience":     req.TargetAudience,
		"offer":               req.Offer,
		"language":            req.Language,
	}
	var missing []string
	for _, field := range requiredFields {
		if values[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		a.error(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	a.Log.Info().Msgf("processing ad generation request for: %s", req.ProductDescription)

	content, err := a.Copy.Generate(r.Context(), adcopy.Brief{
		ProductDescription: req.ProductDescription,
		TargetAudience:     req.TargetAudience,
		Offer:              req.Offer,
		Language:           req.Language,
	})
	if err != nil {
		a.copyError(w, err)
		return
	}

	urls, err := image.GenerateSequence(r.Context(), a.Images, content.ImagePrompts)
	if err != nil {
		var idxErr *image.IndexError
		if errors.As(err, &idxErr) {
			a.Log.Error().Err(idxErr.Err).Msgf("image generation failed for image %d", idxErr.Index)
			a.error(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate image %d: %v", idxErr.Index, idxErr.Err))
			return
		}
		a.Log.Error().Err(err).Msg("image generation failed")
		a.error(w, http.StatusInternalServerError, fmt.Sprintf("An unexpected error occurred: %v", err))
		return
	}

	a.Log.Info().Msg("successfully generated ad copy and images")
	a.json(w, http.StatusOK, adResponse{AdCopy: content.AdCopy, ImageURLs: urls})
}

// copyError maps text-generation failures onto response bodies. Parse detail
// stays in the log; the caller gets the category only.
func (a *App) copyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adcopy.ErrEmptyCompletion):
		a.Log.Error().Err(err).Msg("text provider returned nothing usable")
		a.error(w, http.StatusInternalServerError, "Empty response from text provider")
	case errors.Is(err, adcopy.ErrMalformedCompletion):
		a.Log.Error().Err(err).Msg("failed to parse text provider response")
		a.error(w, http.StatusInternalServerError, "Invalid response format from text provider")
	case errors.Is(err, adcopy.ErrSchemaViolation):
		a.Log.Error().Err(err).Msg("text provider response violated the output schema")
		a.error(w, http.StatusInternalServerError, err.Error())
	default:
		a.Log.Error().Err(err).Msg("text generation call failed")
		a.error(w, http.StatusInternalServerError, fmt.Sprintf("An unexpected error occurred: %v", err))
	}
}
