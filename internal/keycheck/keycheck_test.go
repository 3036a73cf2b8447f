package keycheck

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_CheckGoogle(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Contains(t, r.URL.Path, ":generateContent")
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Contains(t, req, "contents")

			w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": " Hello there! "}]}}]}`))
		}))
		defer server.Close()

		checker := New()
		checker.GoogleBaseURL = server.URL

		reply, err := checker.CheckGoogle(context.Background(), "test-key")
		require.NoError(t, err)
		assert.Equal(t, "Hello there!", reply)
	})

	t.Run("invalid key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": {"message": "API key not valid"}}`))
		}))
		defer server.Close()

		checker := New()
		checker.GoogleBaseURL = server.URL

		_, err := checker.CheckGoogle(context.Background(), "bad-key")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})

	t.Run("empty candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates": []}`))
		}))
		defer server.Close()

		checker := New()
		checker.GoogleBaseURL = server.URL

		_, err := checker.CheckGoogle(context.Background(), "test-key")
		assert.Error(t, err)
	})
}

func TestChecker_CheckOpenAI(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, probeOpenAIModel, req["model"])
			assert.Equal(t, float64(20), req["max_tokens"])

			w.Write([]byte(`{"choices": [{"message": {"content": "Hello!"}}]}`))
		}))
		defer server.Close()

		checker := New()
		checker.OpenAIBaseURL = server.URL

		reply, err := checker.CheckOpenAI(context.Background(), "test-key")
		require.NoError(t, err)
		assert.Equal(t, "Hello!", reply)
	})

	t.Run("invalid key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "Incorrect API key"}}`))
		}))
		defer server.Close()

		checker := New()
		checker.OpenAIBaseURL = server.URL

		_, err := checker.CheckOpenAI(context.Background(), "bad-key")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices": []}`))
		}))
		defer server.Close()

		checker := New()
		checker.OpenAIBaseURL = server.URL

		_, err := checker.CheckOpenAI(context.Background(), "test-key")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})
}
