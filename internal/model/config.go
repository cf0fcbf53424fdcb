package model

import "time"

// Config is the full runtime configuration, loadable from
// ~/.labelvet/config.yaml, LABELVET_* environment variables, or flags
type Config struct {
	OCR    OCRConfig    `yaml:"ocr" json:"ocr"`
	Cache  CacheConfig  `yaml:"cache" json:"cache"`
	LLM    LLMConfig    `yaml:"llm" json:"llm"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// OCRConfig controls the OCR boundary. OCR dominates CPU cost, so the worker
// count is the main throughput knob.
type OCRConfig struct {
	Workers   int      `yaml:"workers" json:"workers"`     // parallel OCR of a submission's images
	Languages []string `yaml:"languages" json:"languages"` // trained-data hints for the engine
	// RatePerSecond caps engine invocations; 0 means unlimited. Relevant for
	// API-backed engines, harmless for local Tesseract.
	RatePerSecond float64 `yaml:"rate_per_second" json:"rate_per_second"`
}

// CacheConfig controls caching of per-image OCR text keyed by image hash
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// LLMConfig configures the optional findings summarizer
type LLMConfig struct {
	Provider  string `yaml:"provider" json:"provider"` // "openai", "" disables
	Model     string `yaml:"model" json:"model"`
	APIKey    string `yaml:"-" json:"-"` // from environment, never persisted
	BaseURL   string `yaml:"base_url" json:"base_url"`
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Workers:   4,
			Languages: []string{"eng"},
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		LLM: LLMConfig{
			Model:     "gpt-4o-mini",
			MaxTokens: 600,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
