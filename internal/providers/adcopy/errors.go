package adcopy

import "errors"

// Sentinel errors for the text-generation call. The route handler matches on
// these with errors.Is to choose the response body; none of them is retried.
var (
	// ErrEmptyCompletion means the provider returned no usable text at all.
	ErrEmptyCompletion = errors.New("empty response from text provider")

	// ErrMalformedCompletion means the returned text was not valid JSON. The
	// wrapped parse error is for the server log, not the caller.
	ErrMalformedCompletion = errors.New("invalid response format from text provider")

	// ErrSchemaViolation means the JSON parsed but did not match the required
	// {ad_copy, image_prompts} shape.
	ErrSchemaViolation = errors.New("invalid response structure from text provider")
)
