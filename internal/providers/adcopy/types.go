package adcopy

import "context"

// ExpectedImagePrompts is the number of image prompts the text model must
// return. The ad copy array carries the same count.
const ExpectedImagePrompts = 3

// Brief is the validated advertising brief a caller submits.
type Brief struct {
	ProductDescription string
	TargetAudience     string
	Offer              string
	Language           string
}

// Variant is one generated ad-copy variation.
type Variant struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

// Content is the structured output of one text-generation call.
type Content struct {
	AdCopy       []Variant `json:"ad_copy"`
	ImagePrompts []string  `json:"image_prompts"`
}

// Generator is the contract implemented by all text-generation providers.
type Generator interface {
	Generate(ctx context.Context, brief Brief) (*Content, error)
}
