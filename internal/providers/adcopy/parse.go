package adcopy

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseContent validates the raw model output against the required
// {ad_copy, image_prompts} shape. Key presence is checked before decoding so
// a missing key is reported as a schema violation rather than an empty slice.
func parseContent(raw string) (*Content, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyCompletion
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}

	adCopyRaw, ok := keys["ad_copy"]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrSchemaViolation, "ad_copy")
	}
	promptsRaw, ok := keys["image_prompts"]
	if !ok {
		return nil, fmt.Errorf("%w: missing key %q", ErrSchemaViolation, "image_prompts")
	}

	var content Content
	if err := json.Unmarshal(adCopyRaw, &content.AdCopy); err != nil {
		return nil, fmt.Errorf("%w: ad_copy is not an array of variants", ErrSchemaViolation)
	}
	if err := json.Unmarshal(promptsRaw, &content.ImagePrompts); err != nil {
		return nil, fmt.Errorf("%w: image_prompts is not an array of strings", ErrSchemaViolation)
	}
	if len(content.ImagePrompts) != ExpectedImagePrompts {
		return nil, fmt.Errorf("%w: expected %d image prompts, got %d", ErrSchemaViolation, ExpectedImagePrompts, len(content.ImagePrompts))
	}
	return &content, nil
}
