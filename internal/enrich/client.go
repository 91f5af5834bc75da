// Package enrich asks an OpenAI chat model to judge lead quality and produce
// a short company summary. Enrichment is best-effort: callers treat any error
// as "enrichment unavailable" and serve the lead without it.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Result is what the model produced for one lead. Either field may be empty
// when the model omitted it; a wholly empty Result is the defined failure
// payload.
type Result struct {
	Quality string `json:"quality,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Empty reports whether the model produced nothing usable.
func (r Result) Empty() bool {
	return r.Quality == "" && r.Summary == ""
}

// Client calls the OpenAI chat-completions API.
type Client struct {
	api     openai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a client for the given model. An empty apiKey is accepted;
// requests will fail and surface as the empty-result outcome.
func NewClient(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		api:     openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}
}

// jsonBlock grabs the first greedy brace-delimited block, across newlines.
// Chat models wrap JSON in prose or markdown fences often enough that parsing
// the raw completion directly is not reliable.
var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

// prompt asks for exactly the two fields the service reads, with fixed
// quality thresholds so classifications stay stable across model versions.
func prompt(industry string, size int64) string {
	return fmt.Sprintf(
		"You are scoring a sales lead. The company operates in the %q industry and has %d employees.\n"+
			"Classify lead quality using these thresholds: more than 100 employees is \"High\", "+
			"30 to 100 is \"Medium\", fewer than 30 is \"Low\".\n"+
			"Also write a summary of the company and its industry in at most 30 words.\n"+
			"Respond with a JSON object containing exactly two fields: \"quality\" and \"summary\".",
		industry, size)
}

// Enrich requests a {quality, summary} judgment for one lead. Every call is
// bounded by the configured timeout. On any failure (transport, no JSON block
// in the completion, malformed JSON) it returns an empty Result and the error;
// the caller decides whether to log it, but must not fail the request over it.
func (c *Client) Enrich(ctx context.Context, industry string, size int64) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt(industry, size)),
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, fmt.Errorf("completion returned no choices")
	}

	return parseCompletion(resp.Choices[0].Message.Content)
}

// parseCompletion extracts the JSON block from the completion text and reads
// only the two fields the service uses. Extra fields are ignored; non-string
// values for quality/summary are treated as absent rather than errors.
func parseCompletion(text string) (Result, error) {
	block := jsonBlock.FindString(text)
	if block == "" {
		return Result{}, fmt.Errorf("no JSON object in completion: %.80q", text)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return Result{}, fmt.Errorf("decode completion JSON: %w", err)
	}

	var r Result
	if q, ok := raw["quality"].(string); ok {
		r.Quality = q
	}
	if s, ok := raw["summary"].(string); ok {
		r.Summary = s
	}
	return r, nil
}
