package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client calls the Groq audio translations endpoint (Whisper). The
// translations endpoint always produces English output regardless of the
// spoken language.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	model         string
	retryAttempts int
	retryDelay    time.Duration
}

// Config holds configuration for the translation client
type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

// NewClient creates a new translation provider client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "whisper-large-v3"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 2 * time.Second
	}

	return &Client{
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		model:         cfg.Model,
		retryAttempts: cfg.RetryAttempts,
		retryDelay:    cfg.RetryDelay,
	}
}

// Configured reports whether the client has an API key set
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// verboseResponse mirrors the provider's verbose_json payload
type verboseResponse struct {
	Text     string  `json:"text"`
	Duration float64 `json:"duration"`
	Segments []struct {
		AvgLogprob float64 `json:"avg_logprob"`
	} `json:"segments"`
}

// Translate sends one audio chunk to the provider and returns the English
// translation. Transient provider failures (rate limit, 5xx) are retried a
// bounded number of times with a linear backoff; non-transient failures
// (bad input, auth) are surfaced immediately.
func (c *Client) Translate(ctx context.Context, audio []byte, filename string) (*Translation, error) {
	if len(audio) == 0 {
		return nil, &ProviderError{Kind: ErrBadInput, Message: "empty audio payload"}
	}
	if filename == "" {
		filename = "chunk.wav"
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryAttempts; attempt++ {
		if attempt > 0 {
			log.Printf("[WARN] Translation attempt %d/%d failed, retrying: %v", attempt, c.retryAttempts, lastErr)
			select {
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return nil, &ProviderError{Kind: ErrProviderUnavailable, Message: ctx.Err().Error()}
			}
		}

		result, err := c.translateOnce(ctx, audio, filename)
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (c *Client) translateOnce(ctx context.Context, audio []byte, filename string) (*Translation, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("model", c.model); err != nil {
		return nil, fmt.Errorf("writing model field: %w", err)
	}
	if err := mw.WriteField("response_format", "verbose_json"); err != nil {
		return nil, fmt.Errorf("writing response_format field: %w", err)
	}
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := fw.Write(audio); err != nil {
		return nil, fmt.Errorf("writing audio payload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	endpoint := fmt.Sprintf("%s/audio/translations", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mapStatusError(resp)
	}

	var vr verboseResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, &ProviderError{Kind: ErrProviderUnavailable, Message: fmt.Sprintf("decoding response: %v", err)}
	}

	return &Translation{
		Text:       strings.TrimSpace(vr.Text),
		Confidence: confidenceFromSegments(vr),
		Duration:   vr.Duration,
	}, nil
}

// mapStatusError maps provider status codes into the closed error set
func mapStatusError(resp *http.Response) error {
	msg := readErrorBody(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &ProviderError{Kind: ErrAuthFailed, StatusCode: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &ProviderError{Kind: ErrRateLimited, StatusCode: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusBadRequest ||
		resp.StatusCode == http.StatusRequestEntityTooLarge ||
		resp.StatusCode == http.StatusUnsupportedMediaType ||
		resp.StatusCode == http.StatusUnprocessableEntity:
		return &ProviderError{Kind: ErrBadInput, StatusCode: resp.StatusCode, Message: msg}
	default:
		return &ProviderError{Kind: ErrProviderUnavailable, StatusCode: resp.StatusCode, Message: msg}
	}
}

// readErrorBody extracts the provider error message, falling back to raw text
func readErrorBody(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return string(raw)
}

// confidenceFromSegments converts the mean segment log probability into a
// 0..1 confidence estimate. Whisper reports avg_logprob per segment; exp of
// the mean is a common proxy when no explicit confidence is provided.
func confidenceFromSegments(vr verboseResponse) *float64 {
	if len(vr.Segments) == 0 {
		return nil
	}

	var sum float64
	for _, seg := range vr.Segments {
		sum += seg.AvgLogprob
	}
	confidence := math.Exp(sum / float64(len(vr.Segments)))
	if confidence > 1 {
		confidence = 1
	}
	return &confidence
}
