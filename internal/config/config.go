package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LLM service selection
	Service string // "openai" or "google"
	Model   string // model id for the selected service

	// OpenAI API (chat + speech)
	OpenAIAPIKey string

	// Google Gemini API
	GoogleAPIKey string

	// Database
	DatabasePath string

	// VecLite
	VecLitePath string // Path to VecLite corpus (default: data/corpus.veclite)

	// Session output
	SessionsDir string // Base directory for session folders (default: .)

	// Scraper
	ScrapeHeadless bool
	ScrapeTimeout  time.Duration
	BrowserBin     string // Optional explicit Chrome/Chromium binary
	MaxSections    int    // Cap on auto-discovered sections

	// Text-to-speech
	TTSModel string
	TTSVoice string

	// Generation settings
	Temperature      float64
	MentorgramTries  int
	ExemplarPassages int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Service:      getEnv("LLM_SERVICE", "openai"),
		Model:        getEnv("LLM_MODEL", ""),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		DatabasePath: getEnv("DATABASE_PATH", "data/mentormirror.db"),
		VecLitePath:  getEnv("VECLITE_PATH", "data/corpus.veclite"),
		SessionsDir:  getEnv("SESSIONS_DIR", "."),
		BrowserBin:   getEnv("BROWSER_BIN", ""),
		TTSModel:     getEnv("TTS_MODEL", "tts-1"),
		TTSVoice:     getEnv("TTS_VOICE", "alloy"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	headless, err := strconv.ParseBool(getEnv("SCRAPE_HEADLESS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPE_HEADLESS: %w", err)
	}
	cfg.ScrapeHeadless = headless

	cfg.ScrapeTimeout, err = time.ParseDuration(getEnv("SCRAPE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SCRAPE_TIMEOUT: %w", err)
	}

	cfg.MaxSections, err = strconv.Atoi(getEnv("MAX_SECTIONS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_SECTIONS: %w", err)
	}

	cfg.Temperature, err = strconv.ParseFloat(getEnv("LLM_TEMPERATURE", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TEMPERATURE: %w", err)
	}

	cfg.MentorgramTries, err = strconv.Atoi(getEnv("MENTORGRAM_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid MENTORGRAM_RETRIES: %w", err)
	}

	cfg.ExemplarPassages, err = strconv.Atoi(getEnv("EXEMPLAR_PASSAGES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXEMPLAR_PASSAGES: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

// ValidateForGeneration checks configuration needed for LLM calls.
func (c *Config) ValidateForGeneration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.Service {
	case "openai", "":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_SERVICE is openai")
		}
	case "google":
		if c.GoogleAPIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required when LLM_SERVICE is google")
		}
	default:
		return fmt.Errorf("invalid LLM_SERVICE: %s (must be 'openai' or 'google')", c.Service)
	}
	return nil
}

// ValidateForScrape checks configuration needed for scraping.
func (c *Config) ValidateForScrape() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ScrapeTimeout <= 0 {
		return fmt.Errorf("SCRAPE_TIMEOUT must be positive")
	}
	return nil
}

// ValidateForSpeech checks configuration needed for text-to-speech.
func (c *Config) ValidateForSpeech() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for text-to-speech")
	}
	if c.TTSModel == "" {
		return fmt.Errorf("TTS_MODEL is required")
	}
	return nil
}

// ValidateForCorpus checks configuration needed for the passage corpus.
func (c *Config) ValidateForCorpus() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.VecLitePath == "" {
		return fmt.Errorf("VECLITE_PATH is required")
	}
	return nil
}

// ValidateForKeys checks that at least one API key is set for probing.
func (c *Config) ValidateForKeys() error {
	if c.OpenAIAPIKey == "" && c.GoogleAPIKey == "" {
		return fmt.Errorf("set OPENAI_API_KEY or GOOGLE_API_KEY before running key checks")
	}
	return nil
}

// APIKey returns the key for the configured service.
func (c *Config) APIKey() string {
	if c.Service == "google" {
		return c.GoogleAPIKey
	}
	return c.OpenAIAPIKey
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
