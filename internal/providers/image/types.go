package image

import (
	"context"
	"fmt"
)

// Generator is the contract implemented by all image providers. One call
// produces exactly one image, referenced by URL.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IndexError reports which prompt in a sequence failed. Index is 1-based
// because it is surfaced to callers in error messages.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("image %d: %v", e.Index, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// GenerateSequence resolves each prompt in order, one full round trip at a
// time. The first failure aborts the whole sequence and discards any URLs
// already produced; there is no partial result and no retry.
func GenerateSequence(ctx context.Context, g Generator, prompts []string) ([]string, error) {
	urls := make([]string, 0, len(prompts))
	for i, prompt := range prompts {
		url, err := g.Generate(ctx, prompt)
		if err != nil {
			return nil, &IndexError{Index: i + 1, Err: err}
		}
		urls = append(urls, url)
	}
	return urls, nil
}
