package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newGenerator(t *testing.T, handler http.HandlerFunc) *OpenAIGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIGenerator(OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1beta/openai",
		Model:   "gemini-2.5-flash",
		Timeout: 2 * time.Second,
	})
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	t.Run("returns first choice", func(t *testing.T) {
		var got chatRequest
		gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1beta/openai/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gemini-2.5-flash",
				"choices":[{"index":0,"message":{"role":"assistant","content":"**Moradia** lidera os gastos."},"finish_reason":"stop"}]}`))
		})

		text, err := gen.Generate(context.Background(), "analise")
		require.NoError(t, err)
		assert.Equal(t, "**Moradia** lidera os gastos.", text)
		assert.Equal(t, "gemini-2.5-flash", got.Model)
		require.Len(t, got.Messages, 1)
		assert.Equal(t, "user", got.Messages[0].Role)
		assert.Equal(t, "analise", got.Messages[0].Content)
	})

	t.Run("no choices", func(t *testing.T) {
		gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"c2","object":"chat.completion","choices":[]}`))
		})

		text, err := gen.Generate(context.Background(), "analise")
		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("upstream error", func(t *testing.T) {
		gen := newGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
		})

		_, err := gen.Generate(context.Background(), "analise")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gemini-2.5-flash")
	})

	t.Run("times out", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		t.Cleanup(srv.Close)
		gen := NewOpenAIGenerator(OpenAIConfig{BaseURL: srv.URL, Model: "m", Timeout: 50 * time.Millisecond})

		_, err := gen.Generate(context.Background(), "analise")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
