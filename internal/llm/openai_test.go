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

func TestOpenAIClient_Complete(t *testing.T) {
	t.Run("successful completion", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 2)
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Equal(t, "be helpful", req.Messages[0].Content)
			assert.Equal(t, "user", req.Messages[1].Role)
			assert.Equal(t, "hello", req.Messages[1].Content)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "chatcmpl-1",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hello back!"}, "finish_reason": "stop"}]
			}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
		out, err := client.Complete(context.Background(), "be helpful", "hello")
		require.NoError(t, err)
		assert.Equal(t, "Hello back!", out)
	})

	t.Run("omits system message when empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "user", req.Messages[0].Role)

			w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), "", "hello")
		require.NoError(t, err)
	})

	t.Run("handles API error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "bad key"}}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(Config{APIKey: "bad", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), "", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("handles empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.Complete(context.Background(), "", "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty response")
	})
}

func TestNewOpenAIClient(t *testing.T) {
	t.Run("uses default model", func(t *testing.T) {
		client := NewOpenAIClient(Config{APIKey: "test"})
		assert.Equal(t, defaultOpenAIModel, client.Model())
	})

	t.Run("uses custom model", func(t *testing.T) {
		client := NewOpenAIClient(Config{APIKey: "test", Model: "gpt-4o"})
		assert.Equal(t, "gpt-4o", client.Model())
	})
}
