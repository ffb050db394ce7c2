package model

import "time"

// Config is the complete engine and CLI configuration.
// Scoring weights and thresholds are policy, not mechanism; they are kept
// here so the scorer stays pure and testable.
type Config struct {
	Extraction  ExtractionConfig  `yaml:"extraction" mapstructure:"extraction"`
	Scoring     ScoringConfig     `yaml:"scoring" mapstructure:"scoring"`
	Citation    CitationConfig    `yaml:"citation" mapstructure:"citation"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// Bounds limits accepted claim lengths in characters.
type Bounds struct {
	MinLength int `yaml:"min_length" mapstructure:"min_length"`
	MaxLength int `yaml:"max_length" mapstructure:"max_length"`
}

// ExtractionConfig controls the claim extractor. Citation mode accepts
// only longer fragments than fact-check mode.
type ExtractionConfig struct {
	FactCheck   Bounds `yaml:"fact_check" mapstructure:"fact_check"`
	Citation    Bounds `yaml:"citation" mapstructure:"citation"`
	DedupWindow int    `yaml:"dedup_window" mapstructure:"dedup_window"` // Positional dedup threshold in chars
	MaxKeywords int    `yaml:"max_keywords" mapstructure:"max_keywords"`
}

// ScoringConfig holds the confidence weighting constants and the band
// thresholds. Weights sum to 1.0.
type ScoringConfig struct {
	TextWeight    float64 `yaml:"text_weight" mapstructure:"text_weight"`
	NumberWeight  float64 `yaml:"number_weight" mapstructure:"number_weight"`
	KeywordWeight float64 `yaml:"keyword_weight" mapstructure:"keyword_weight"`
	TypeBonus     float64 `yaml:"type_bonus" mapstructure:"type_bonus"`

	VerifiedThreshold float64 `yaml:"verified_threshold" mapstructure:"verified_threshold"`
	ReviewThreshold   float64 `yaml:"review_threshold" mapstructure:"review_threshold"`
	CitationFloor     float64 `yaml:"citation_floor" mapstructure:"citation_floor"`
}

// CitationConfig controls bibliography rendering.
type CitationConfig struct {
	Style string `yaml:"style" mapstructure:"style"` // apa, mla, chicago
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CacheConfig controls result memoization. The engine is deterministic,
// so identical (document, bundle, mode, style) invocations can be reused.
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir             string        `yaml:"dir" mapstructure:"dir"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// StoreConfig controls the optional run archive.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			FactCheck:   Bounds{MinLength: 10, MaxLength: 200},
			Citation:    Bounds{MinLength: 21, MaxLength: 400},
			DedupWindow: 10,
			MaxKeywords: 10,
		},
		Scoring: ScoringConfig{
			TextWeight:        0.30,
			NumberWeight:      0.35,
			KeywordWeight:     0.25,
			TypeBonus:         0.10,
			VerifiedThreshold: 0.7,
			ReviewThreshold:   0.4,
			CitationFloor:     0.3,
		},
		Citation: CitationConfig{
			Style: "apa",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled:         true,
			Dir:             "",
			TTL:             1 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    "contentpipe.db",
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
