package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Complete(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var req geminiRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Contents, 1)
			assert.Equal(t, "user", req.Contents[0].Role)
			assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)
			require.NotNil(t, req.SystemInstruction)
			assert.Equal(t, "be helpful", req.SystemInstruction.Parts[0].Text)

			w.Write([]byte(`{
				"candidates": [{"content": {"role": "model", "parts": [{"text": "Hello back!"}]}, "finishReason": "STOP"}]
			}`))
		}))
		defer server.Close()

		client := NewGeminiClient(Config{APIKey: "test-key", BaseURL: server.URL})
		out, err := client.Complete(context.Background(), "be helpful", "hello")
		require.NoError(t, err)
		assert.Equal(t, "Hello back!", out)
	})

	t.Run("omits system instruction when empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req geminiRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Nil(t, req.SystemInstruction)

			w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "ok"}]}}]}`))
		}))
		defer server.Close()

		client := NewGeminiClient(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), "", "hello")
		require.NoError(t, err)
	})

	t.Run("handles API error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"code": 400, "status": "INVALID_ARGUMENT", "message": "bad key"}}`))
		}))
		defer server.Close()

		client := NewGeminiClient(Config{APIKey: "bad", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), "", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("handles empty candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		client := NewGeminiClient(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), "", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})
}

func TestNewGeminiClient(t *testing.T) {
	t.Run("uses default model", func(t *testing.T) {
		client := NewGeminiClient(Config{APIKey: "test"})
		assert.Equal(t, defaultGeminiModel, client.Model())
	})

	t.Run("uses custom model", func(t *testing.T) {
		client := NewGeminiClient(Config{APIKey: "test", Model: "gemini-2.5-pro"})
		assert.Equal(t, "gemini-2.5-pro", client.Model())
	})
}

func TestNew(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		client, err := New("openai", Config{APIKey: "test"})
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("empty service defaults to openai", func(t *testing.T) {
		client, err := New("", Config{APIKey: "test"})
		require.NoError(t, err)
		assert.IsType(t, &OpenAIClient{}, client)
	})

	t.Run("google", func(t *testing.T) {
		client, err := New("google", Config{APIKey: "test"})
		require.NoError(t, err)
		assert.IsType(t, &GeminiClient{}, client)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := New("anthropic", Config{APIKey: "test"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown LLM service")
	})
}
