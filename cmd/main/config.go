package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/natefinch/atomic"
)

// Config holds every setting of the command line tool. Flags given on the
// command line override the values read from the file.
type Config struct {
	// Order is the number of preceding tokens used to predict the next one.
	Order int `json:"order" validate:"gte=1"`
	// CorpusDir is scanned for training files by the train command.
	CorpusDir string `json:"corpus_dir" validate:"required"`
	// CorpusExt selects which files in CorpusDir are read.
	CorpusExt string `json:"corpus_ext" validate:"required,startswith=."`
	// ChainsPath is where train saves the chain and every other command loads it from.
	ChainsPath string `json:"chains_path" validate:"required"`
	// GraphPath is where the graph command writes; empty means stdout.
	GraphPath string `json:"graph_path"`
	LogLevel  string `json:"log_level" validate:"oneof=debug info warn error"`
	// Attempts is how many sentences the generate command prints.
	Attempts int `json:"attempts" validate:"gte=1"`
	// TargetBits is the entropy a passphrase must reach.
	TargetBits float64 `json:"target_bits" validate:"gt=0"`
	// MaxTokens caps the length of a single generated sentence. 0 disables the cap.
	MaxTokens int `json:"max_tokens" validate:"gte=0"`
	// MaxSentences caps how many sentences a passphrase may use.
	MaxSentences int `json:"max_sentences" validate:"gte=1"`
	// Seed makes generation reproducible. When unset, a cryptographically seeded
	// source is used, which is what passphrases should use.
	Seed *uint64 `json:"seed,omitempty"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Order:        2,
		CorpusDir:    "./corpus",
		CorpusExt:    ".txt",
		ChainsPath:   "./corpus/chains.markov",
		GraphPath:    "",
		LogLevel:     "info",
		Attempts:     10,
		TargetBits:   128,
		MaxTokens:    1000,
		MaxSentences: 64,
	}
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SlogLevel converts LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// The tool still works with defaults, so only warn.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
