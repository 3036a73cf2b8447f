package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Synthesize(t *testing.T) {
	t.Run("returns audio bytes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/v1/audio/speech", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req speechRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "tts-1", req.Model)
			assert.Equal(t, "alloy", req.Voice)
			assert.Equal(t, "mp3", req.ResponseFormat)
			assert.Equal(t, "hello world", req.Input)

			w.Write([]byte{0xFF, 0xFB, 0x90})
		}))
		defer server.Close()

		client := New(Config{APIKey: "test-key", BaseURL: server.URL})
		audio, err := client.Synthesize(context.Background(), "hello world")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xFF, 0xFB, 0x90}, audio)
	})

	t.Run("truncates overlong input", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req speechRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Len(t, req.Input, maxInputLen)

			w.Write([]byte{0x01})
		}))
		defer server.Close()

		client := New(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.Synthesize(context.Background(), strings.Repeat("a", maxInputLen+500))
		require.NoError(t, err)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		client := New(Config{APIKey: "test-key"})
		_, err := client.Synthesize(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("handles API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "invalid voice"}}`))
		}))
		defer server.Close()

		client := New(Config{APIKey: "test-key", BaseURL: server.URL, Voice: "nope"})
		_, err := client.Synthesize(context.Background(), "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("rejects empty audio", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 200 with no body
		}))
		defer server.Close()

		client := New(Config{APIKey: "test-key", BaseURL: server.URL})
		_, err := client.Synthesize(context.Background(), "hello")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "empty audio")
	})
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client := New(Config{APIKey: "test"})
		assert.Equal(t, defaultModel, client.model)
		assert.Equal(t, defaultVoice, client.voice)
	})

	t.Run("custom voice", func(t *testing.T) {
		client := New(Config{APIKey: "test", Voice: "nova"})
		assert.Equal(t, "nova", client.voice)
	})
}
