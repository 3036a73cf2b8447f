package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "openai", cfg.Service)
		assert.Equal(t, "data/mentormirror.db", cfg.DatabasePath)
		assert.Equal(t, "data/corpus.veclite", cfg.VecLitePath)
		assert.Equal(t, ".", cfg.SessionsDir)
		assert.True(t, cfg.ScrapeHeadless)
		assert.Equal(t, 30*time.Second, cfg.ScrapeTimeout)
		assert.Equal(t, 10, cfg.MaxSections)
		assert.Equal(t, "tts-1", cfg.TTSModel)
		assert.Equal(t, "alloy", cfg.TTSVoice)
		assert.Equal(t, 0.7, cfg.Temperature)
		assert.Equal(t, 3, cfg.MentorgramTries)
		assert.Equal(t, 5, cfg.ExemplarPassages)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("LLM_SERVICE", "google")
		os.Setenv("LLM_MODEL", "gemini-2.5-pro")
		os.Setenv("GOOGLE_API_KEY", "g-test")
		os.Setenv("DATABASE_PATH", "/custom/path.db")
		os.Setenv("SCRAPE_TIMEOUT", "1m")
		os.Setenv("MAX_SECTIONS", "3")
		os.Setenv("MENTORGRAM_RETRIES", "5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "google", cfg.Service)
		assert.Equal(t, "gemini-2.5-pro", cfg.Model)
		assert.Equal(t, "g-test", cfg.GoogleAPIKey)
		assert.Equal(t, "/custom/path.db", cfg.DatabasePath)
		assert.Equal(t, time.Minute, cfg.ScrapeTimeout)
		assert.Equal(t, 3, cfg.MaxSections)
		assert.Equal(t, 5, cfg.MentorgramTries)
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("SCRAPE_TIMEOUT", "invalid")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SCRAPE_TIMEOUT")
	})

	t.Run("invalid integer", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("MAX_SECTIONS", "notanumber")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "MAX_SECTIONS")
	})

	t.Run("invalid float", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("LLM_TEMPERATURE", "warm")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_TEMPERATURE")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing database path", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_PATH")
	})
}

func TestConfig_ValidateForGeneration(t *testing.T) {
	t.Run("valid openai", func(t *testing.T) {
		cfg := &Config{
			DatabasePath: "test.db",
			Service:      "openai",
			OpenAIAPIKey: "sk-test",
		}
		assert.NoError(t, cfg.ValidateForGeneration())
	})

	t.Run("valid google", func(t *testing.T) {
		cfg := &Config{
			DatabasePath: "test.db",
			Service:      "google",
			GoogleAPIKey: "g-test",
		}
		assert.NoError(t, cfg.ValidateForGeneration())
	})

	t.Run("missing openai key", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db", Service: "openai"}
		err := cfg.ValidateForGeneration()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("missing google key", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db", Service: "google"}
		err := cfg.ValidateForGeneration()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	})

	t.Run("unknown service", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db", Service: "anthropic"}
		err := cfg.ValidateForGeneration()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_SERVICE")
	})
}

func TestConfig_ValidateForScrape(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db", ScrapeTimeout: 30 * time.Second}
		assert.NoError(t, cfg.ValidateForScrape())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := &Config{DatabasePath: "test.db"}
		err := cfg.ValidateForScrape()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SCRAPE_TIMEOUT")
	})
}

func TestConfig_ValidateForSpeech(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{OpenAIAPIKey: "sk-test", TTSModel: "tts-1"}
		assert.NoError(t, cfg.ValidateForSpeech())
	})

	t.Run("missing openai key", func(t *testing.T) {
		cfg := &Config{TTSModel: "tts-1"}
		err := cfg.ValidateForSpeech()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})
}

func TestConfig_ValidateForKeys(t *testing.T) {
	t.Run("one key is enough", func(t *testing.T) {
		cfg := &Config{GoogleAPIKey: "g-test"}
		assert.NoError(t, cfg.ValidateForKeys())
	})

	t.Run("no keys at all", func(t *testing.T) {
		cfg := &Config{}
		assert.Error(t, cfg.ValidateForKeys())
	})
}

func TestConfig_APIKey(t *testing.T) {
	cfg := &Config{
		OpenAIAPIKey: "sk-open",
		GoogleAPIKey: "g-goog",
	}

	cfg.Service = "openai"
	assert.Equal(t, "sk-open", cfg.APIKey())

	cfg.Service = "google"
	assert.Equal(t, "g-goog", cfg.APIKey())
}
