package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	// maxTranscriptChars bounds how much of the transcript is sent in the
	// title prompt; long lectures would otherwise blow the token budget
	maxTranscriptChars = 2000

	titleMaxTokens         = 50
	titleTemperature       = 0.5
	enhancementMaxTokens   = 4000
	enhancementTemperature = 0.2
)

// Summarizer generates a title for a finished transcript and optionally
// rewrites it into a cleaned-up version
type Summarizer interface {
	GenerateTitle(ctx context.Context, transcript string) (string, error)
	EnhanceTranscript(ctx context.Context, title, transcript string) (string, error)
}

// Client calls the Groq chat completions endpoint
type Client struct {
	httpClient       *http.Client
	baseURL          string
	apiKey           string
	titleModel       string
	enhancementModel string
	retryAttempts    int
	retryDelay       time.Duration
}

// Config holds configuration for the summarization client
type Config struct {
	APIKey           string
	BaseURL          string
	TitleModel       string
	EnhancementModel string
	Timeout          time.Duration
	RetryAttempts    int
	RetryDelay       time.Duration
}

// NewClient creates a new summarization provider client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.TitleModel == "" {
		cfg.TitleModel = "llama-3.3-70b-versatile"
	}
	if cfg.EnhancementModel == "" {
		cfg.EnhancementModel = cfg.TitleModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}

	return &Client{
		httpClient:       &http.Client{Timeout: cfg.Timeout},
		baseURL:          strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:           cfg.APIKey,
		titleModel:       cfg.TitleModel,
		enhancementModel: cfg.EnhancementModel,
		retryAttempts:    cfg.RetryAttempts,
		retryDelay:       cfg.RetryDelay,
	}
}

// Configured reports whether the client has an API key set
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// GenerateTitle asks the provider for a short descriptive lecture title
func (c *Client) GenerateTitle(ctx context.Context, transcript string) (string, error) {
	excerpt := transcript
	if len(excerpt) > maxTranscriptChars {
		excerpt = excerpt[:maxTranscriptChars]
	}

	prompt := fmt.Sprintf(`Based on the following lecture transcript, generate a concise and descriptive title (max 10 words) for this lecture. Return ONLY the title, do not share your thoughts or any other text.

Transcript:
%s...

Title:`, excerpt)

	return c.complete(ctx, c.titleModel, []message{
		{Role: "user", Content: prompt},
	}, titleMaxTokens, titleTemperature)
}

// EnhanceTranscript asks the provider to rewrite the transcript into a
// cleaned-up, structured version
func (c *Client) EnhanceTranscript(ctx context.Context, title, transcript string) (string, error) {
	prompt := fmt.Sprintf(`Role: You are a Technical Transcript Editor specializing in Machine Learning and Computer Science lectures.

Lecture Title: %s

Raw Transcript: %s

Content Guidelines:
- Generate your response in markdown format. All headings MUST be bold and caps.
- SUMMARIZE the transcript provided into easily absorbable overviews of each mentioned topic.
- Preserve original semantic meaning. Do NOT add new facts or remove essential content.
- Fix phonetic/translation errors using context and the lecture title to disambiguate technical terms.
- Repair sentence structure and improve readability while keeping the instructional tone.`, title, transcript)

	return c.complete(ctx, c.enhancementModel, []message{
		{Role: "user", Content: prompt},
	}, enhancementMaxTokens, enhancementTemperature)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, model string, messages []message, maxTokens int, temperature float64) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		if attempt > 0 {
			log.Printf("[WARN] Completion attempt %d/%d failed, retrying: %v", attempt, c.retryAttempts, lastErr)
			select {
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return "", &ProviderError{Kind: ErrProviderUnavailable, Message: ctx.Err().Error()}
			}
		}

		content, err := c.completeOnce(ctx, model, messages, maxTokens, temperature)
		if err == nil {
			return content, nil
		}
		if !retryable(err) {
			return "", err
		}
		lastErr = err
	}

	return "", lastErr
}

func (c *Client) completeOnce(ctx context.Context, model string, messages []message, maxTokens int, temperature float64) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Kind: ErrProviderUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", mapStatusError(resp)
	}

	var cr completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", &ProviderError{Kind: ErrProviderUnavailable, Message: fmt.Sprintf("decoding response: %v", err)}
	}
	if len(cr.Choices) == 0 {
		return "", &ProviderError{Kind: ErrProviderUnavailable, Message: "provider returned no choices"}
	}

	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

func mapStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := string(raw)

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error.Message != "" {
		msg = payload.Error.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &ProviderError{Kind: ErrAuthFailed, StatusCode: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &ProviderError{Kind: ErrRateLimited, StatusCode: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return &ProviderError{Kind: ErrBadInput, StatusCode: resp.StatusCode, Message: msg}
	default:
		return &ProviderError{Kind: ErrProviderUnavailable, StatusCode: resp.StatusCode, Message: msg}
	}
}
