package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string, retryAttempts int) *Client {
	return NewClient(Config{
		APIKey:        "test-key",
		BaseURL:       serverURL,
		Timeout:       5 * time.Second,
		RetryAttempts: retryAttempts,
		RetryDelay:    time.Millisecond,
	})
}

func decodeRequest(t *testing.T, r *http.Request) completionRequest {
	t.Helper()
	var req completionRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestClient_GenerateTitle(t *testing.T) {
	t.Run("returns trimmed title", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			req := decodeRequest(t, r)
			assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
			assert.Equal(t, titleMaxTokens, req.MaxTokens)
			assert.Equal(t, titleTemperature, req.Temperature)
			require.Len(t, req.Messages, 1)
			assert.Contains(t, req.Messages[0].Content, "machine learning basics")

			w.Write([]byte(`{"choices":[{"message":{"content":"  Introduction to Machine Learning  "}}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		title, err := client.GenerateTitle(context.Background(), "machine learning basics and gradient descent")
		require.NoError(t, err)
		assert.Equal(t, "Introduction to Machine Learning", title)
	})

	t.Run("truncates long transcripts in the prompt", func(t *testing.T) {
		long := strings.Repeat("a", 3*maxTranscriptChars)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			req := decodeRequest(t, r)
			assert.Less(t, len(req.Messages[0].Content), len(long))
			w.Write([]byte(`{"choices":[{"message":{"content":"Long Lecture"}}]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		title, err := client.GenerateTitle(context.Background(), long)
		require.NoError(t, err)
		assert.Equal(t, "Long Lecture", title)
	})

	t.Run("empty choices fail as provider unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, 0)
		_, err := client.GenerateTitle(context.Background(), "transcript")
		assert.ErrorIs(t, err, ErrProviderUnavailable)
	})
}

func TestClient_EnhanceTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, enhancementMaxTokens, req.MaxTokens)
		assert.Equal(t, enhancementTemperature, req.Temperature)
		assert.Contains(t, req.Messages[0].Content, "Neural Networks 101")
		assert.Contains(t, req.Messages[0].Content, "raw transcript text")

		w.Write([]byte(`{"choices":[{"message":{"content":"** OVERVIEW **\ncleaned up"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 0)
	enhanced, err := client.EnhanceTranscript(context.Background(), "Neural Networks 101", "raw transcript text")
	require.NoError(t, err)
	assert.Contains(t, enhanced, "cleaned up")
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrAuthFailed},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"bad request", http.StatusBadRequest, ErrBadInput},
		{"server error", http.StatusInternalServerError, ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(`{"error":{"message":"nope"}}`))
			}))
			defer server.Close()

			client := newTestClient(server.URL, 0)
			_, err := client.GenerateTitle(context.Background(), "transcript")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"choices":[{"message":{"content":"Recovered Title"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	title, err := client.GenerateTitle(context.Background(), "transcript")
	require.NoError(t, err)
	assert.Equal(t, "Recovered Title", title)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
