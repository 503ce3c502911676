package model

// Config is the full configuration surface. Values come from (highest to
// lowest priority) CLI flags, BRATSENT_* environment variables, the config
// file, and the defaults below.
type Config struct {
	Build  BuildConfig  `yaml:"build" json:"build"`
	Clean  CleanConfig  `yaml:"clean" json:"clean"`
	Output OutputConfig `yaml:"output" json:"output"`
}

// BuildConfig controls the segmentation and splitting stage.
type BuildConfig struct {
	Model      string `yaml:"model" json:"model"`             // segmentation model identifier
	MinLen     int    `yaml:"min_len" json:"min_len"`         // minimum unit length, characters
	MaxChars   int    `yaml:"max_chars" json:"max_chars"`     // maximum unit length, characters
	ExtraSplit bool   `yaml:"extra_split" json:"extra_split"` // sub-split on ; : dashes and newlines
}

// CleanConfig controls the filter cascade and deduplication stage.
type CleanConfig struct {
	MinTokens           int  `yaml:"min_tokens" json:"min_tokens"`
	MinChars            int  `yaml:"min_chars" json:"min_chars"`
	MaxTokens           int  `yaml:"max_tokens" json:"max_tokens"`
	DedupeCaseSensitive bool `yaml:"dedupe_case_sensitive" json:"dedupe_case_sensitive"`
	DigitHeavy          bool `yaml:"digit_heavy" json:"digit_heavy"`
}

// OutputConfig controls reporting.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			Model:      "unicode",
			MinLen:     5,
			MaxChars:   500,
			ExtraSplit: false,
		},
		Clean: CleanConfig{
			MinTokens:           4,
			MinChars:            12,
			MaxTokens:           80,
			DedupeCaseSensitive: false,
			DigitHeavy:          true,
		},
		Output: OutputConfig{
			Verbose: false,
		},
	}
}
