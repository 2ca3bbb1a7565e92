package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultModel    = "gpt-4o-2024-08-06"
	defaultTimeout  = 30 * time.Second

	systemPrompt = "You are an AI judge for a debate app. Always choose a winner."
)

// ErrInvalidVerdict is returned when the oracle's response does not
// match the expected verdict shape
var ErrInvalidVerdict = errors.New("oracle returned an invalid verdict")

// Config holds configuration for the chat-completions oracle client
type Config struct {
	// APIKey authenticates against the completions endpoint
	APIKey string

	// Endpoint is the chat-completions URL; defaults to the OpenAI API
	Endpoint string

	// Model is the model name sent with each request
	Model string

	// Timeout bounds each Evaluate call
	Timeout time.Duration

	// HTTPClient is optional; defaults to http.DefaultClient
	HTTPClient *http.Client
}

// Client implements Oracle against an OpenAI-compatible
// chat-completions endpoint
type Client struct {
	apiKey     string
	endpoint   string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a new oracle client
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:     cfg.APIKey,
		endpoint:   endpoint,
		model:      model,
		timeout:    timeout,
		httpClient: httpClient,
	}, nil
}

type requestPayload struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Evaluate sends the judging prompt and validates the structured
// verdict that comes back. Any transport, schema, or timeout problem
// is returned as an error.
func (c *Client) Evaluate(ctx context.Context, input *EvaluateInput) (*Verdict, error) {
	if input == nil || len(input.Arguments) == 0 {
		return nil, errors.New("input and arguments cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload := requestPayload{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(input)},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oracle request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build oracle request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read oracle response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse oracle response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrInvalidVerdict)
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &verdict); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVerdict, err)
	}

	if err := validateVerdict(&verdict); err != nil {
		return nil, err
	}

	return &verdict, nil
}

// buildPrompt renders the deterministic judging prompt. The oracle is
// told to identify winner and loser by the supplied participant IDs so
// the answer is machine-resolvable.
func buildPrompt(input *EvaluateInput) string {
	var b strings.Builder

	b.WriteString("You are an AI judge for a debate app. Your task is to evaluate arguments and always choose a winner, even in subjective cases. Focus on the relative strength of the arguments rather than the absolute truth of the claims. Make your judgement fun and engaging. Respond in JSON format.\n\nArguments:\n")

	for i, arg := range input.Arguments {
		fmt.Fprintf(&b, "Argument %d (participant %s", i+1, arg.ParticipantID)
		if arg.ParticipantName != "" {
			fmt.Fprintf(&b, ", %s", arg.ParticipantName)
		}
		fmt.Fprintf(&b, "):\n%s\n\n", arg.Content)
	}

	if input.Appeal != "" {
		fmt.Fprintf(&b, "Appeal:\n%s\n\n", input.Appeal)
	}

	b.WriteString("Please provide your judgement as a JSON object with the fields content (full judgement text), winner, winning_argument, loser, losing_argument, and reasoning. Remember:\n")
	b.WriteString("1. Always choose a winner, even if the topic is subjective.\n")
	b.WriteString("2. Set winner and loser to the participant identifiers given above, not to names or argument numbers.")

	return b.String()
}

// validateVerdict enforces the verdict shape at the boundary; anything
// not matching is an oracle failure.
func validateVerdict(v *Verdict) error {
	switch {
	case v.Content == "":
		return fmt.Errorf("%w: missing content", ErrInvalidVerdict)
	case v.Winner == "":
		return fmt.Errorf("%w: missing winner", ErrInvalidVerdict)
	case v.WinningArgument == "":
		return fmt.Errorf("%w: missing winning_argument", ErrInvalidVerdict)
	case v.Loser == "":
		return fmt.Errorf("%w: missing loser", ErrInvalidVerdict)
	case v.LosingArgument == "":
		return fmt.Errorf("%w: missing losing_argument", ErrInvalidVerdict)
	case v.Reasoning == "":
		return fmt.Errorf("%w: missing reasoning", ErrInvalidVerdict)
	}
	return nil
}
