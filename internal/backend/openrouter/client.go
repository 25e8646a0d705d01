// Package openrouter implements the improve.Improver interface against an
// OpenAI-compatible chat completions endpoint.
package openrouter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"mdtask/internal/config"
	"mdtask/internal/improve"
)

const (
	// DefaultBaseURL is the OpenRouter OpenAI-compatible endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the completion model used when settings carry no override.
	DefaultModel = "google/gemini-2.0-flash-001"

	// APITimeout is the timeout for a completion request.
	APITimeout = 30 * time.Second

	// maxCompletionTokens bounds the improved task length.
	maxCompletionTokens = 200

	// snippetLen bounds the error body snippet included in status errors.
	snippetLen = 200
)

// promptTemplate instructs the model to return the task text only.
// Checklist syntax is added by the task writer, never by the model.
const promptTemplate = "Rewrite the following raw task as a single concise, actionable " +
	"markdown task description. Respond with the task text only: no commentary, " +
	"no checklist syntax, no surrounding quotes.\n\nRaw task: %q"

// ErrMissingAPIKey is returned before any network call when the API key is empty.
var ErrMissingAPIKey = errors.New("OPENROUTER_API_KEY is not set")

// ErrMalformedResponse is returned when the response lacks a usable completion.
var ErrMalformedResponse = errors.New("malformed completion response")

// StatusError is a non-success HTTP status from the completions endpoint.
type StatusError struct {
	Code    int
	Snippet string
}

func (e *StatusError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("completion API returned status %d", e.Code)
	}
	return fmt.Sprintf("completion API returned status %d: %s", e.Code, e.Snippet)
}

// Client implements improve.Improver using the openai-go SDK.
type Client struct {
	client openai.Client
	model  string
}

var _ improve.Improver = (*Client)(nil)

// New creates a completion client from the resolved configuration.
// Fails with ErrMissingAPIKey before any network activity when the key is empty.
func New(cfg *config.Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.Settings.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Settings.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(APITimeout),
		// One outbound call per invocation, no automatic retries.
		option.WithMaxRetries(0),
	}

	return &Client{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// ImproveTask sends one completion request and returns the improved task text.
func (c *Client) ImproveTask(ctx context.Context, raw string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, raw)),
		},
		MaxTokens: openai.Int(maxCompletionTokens),
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}

	if len(completion.Choices) == 0 {
		return "", ErrMalformedResponse
	}
	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", ErrMalformedResponse
	}

	return stripChecklistPrefix(text), nil
}

// wrapError maps SDK errors to the client error taxonomy.
func wrapError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &StatusError{
			Code:    apierr.StatusCode,
			Snippet: snippet(apierr.Message),
		}
	}
	// DNS failure, connection refused, timeout
	return fmt.Errorf("completion request failed: %w", err)
}

// stripChecklistPrefix removes a leading checklist marker if the model
// added one despite the prompt.
func stripChecklistPrefix(s string) string {
	for _, prefix := range []string{"- [ ]", "- [x]", "- [X]", "- []"} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return strings.TrimSpace(rest)
		}
	}
	return s
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > snippetLen {
		return s[:snippetLen]
	}
	return s
}
