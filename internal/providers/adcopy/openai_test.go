package adcopy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chatResponse(content string) openAIChatResponse {
	var resp openAIChatResponse
	resp.Choices = []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}{{}}
	resp.Choices[0].Message.Content = content
	return resp
}

func TestOpenAIGeneratorSendsFixedParameters(t *testing.T) {
	var captured openAIChatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header: %s", got)
		}
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(chatResponse(validPayload))
	}))
	defer ts.Close()

	gen := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	content, err := gen.Generate(context.Background(), Brief{
		ProductDescription: "sarees", TargetAudience: "festival shoppers", Offer: "20% off", Language: "Hinglish",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if captured.Model != "gpt-5" {
		t.Fatalf("model = %q, want %q", captured.Model, "gpt-5")
	}
	if captured.Temperature != 0.8 {
		t.Fatalf("temperature = %v, want 0.8", captured.Temperature)
	}
	if captured.MaxTokens != 2000 {
		t.Fatalf("max_tokens = %d, want 2000", captured.MaxTokens)
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Fatalf("response_format = %+v, want json_object", captured.ResponseFormat)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
	if len(content.ImagePrompts) != 3 {
		t.Fatalf("ImagePrompts length = %d, want 3", len(content.ImagePrompts))
	}
}

func TestOpenAIGeneratorMissingKey(t *testing.T) {
	gen := NewOpenAIGenerator(OpenAIOptions{})
	if _, err := gen.Generate(context.Background(), Brief{}); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestOpenAIGeneratorEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(openAIChatResponse{})
	}))
	defer ts.Close()

	gen := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	_, err := gen.Generate(context.Background(), Brief{Language: "English"})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("error = %v, want ErrEmptyCompletion", err)
	}
}

func TestOpenAIGeneratorEmptyContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("   "))
	}))
	defer ts.Close()

	gen := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	_, err := gen.Generate(context.Background(), Brief{Language: "English"})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("error = %v, want ErrEmptyCompletion", err)
	}
}

func TestOpenAIGeneratorMalformedContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("sure, here is your ad copy!"))
	}))
	defer ts.Close()

	gen := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	_, err := gen.Generate(context.Background(), Brief{Language: "English"})
	if !errors.Is(err, ErrMalformedCompletion) {
		t.Fatalf("error = %v, want ErrMalformedCompletion", err)
	}
}

func TestOpenAIGeneratorWrongPromptCount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`{"ad_copy": [], "image_prompts": ["a", "b"]}`))
	}))
	defer ts.Close()

	gen := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	_, err := gen.Generate(context.Background(), Brief{Language: "English"})
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("error = %v, want ErrSchemaViolation", err)
	}
}

func TestOpenAIGeneratorUpstreamStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	gen := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL})
	if _, err := gen.Generate(context.Background(), Brief{Language: "English"}); err == nil {
		t.Fatal("expected error on upstream non-2xx status")
	}
}

func TestOpenAIGeneratorModelOverride(t *testing.T) {
	var captured openAIChatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(chatResponse(validPayload))
	}))
	defer ts.Close()

	gen := NewOpenAIGenerator(OpenAIOptions{APIKey: "test-key", BaseURL: ts.URL, Model: "gpt-4o"})
	if _, err := gen.Generate(context.Background(), Brief{Language: "English"}); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if captured.Model != "gpt-4o" {
		t.Fatalf("model = %q, want %q", captured.Model, "gpt-4o")
	}
}
