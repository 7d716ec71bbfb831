// Package config holds the thresholds and runtime settings of readcheck and
// loads them from defaults, a discovered .readcheck.yml and the environment.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Thresholds are the limits scores are compared against.
type Thresholds struct {
	// MaxSentenceLength is the longest recommended sentence in words.
	MaxSentenceLength int `yaml:"max-sentence-length" json:"maxSentenceLength"`
	// EFLAWThreshold is the EFLAW score above which suggestions are made.
	EFLAWThreshold int `yaml:"eflaw" json:"eflaw"`
	// GunningFogThreshold is the grade level flagged as too hard.
	GunningFogThreshold int `yaml:"gunning-fog" json:"gunningFog"`
	// FRESThreshold and ConsThreshold are declared for report consumers;
	// no score uses them.
	FRESThreshold int `yaml:"fres" json:"fres"`
	ConsThreshold int `yaml:"cons" json:"cons"`
	// MinInputWords is the fewest whitespace-separated tokens accepted.
	MinInputWords int `yaml:"min-input-words" json:"minInputWords"`
}

// DefaultThresholds returns the built-in thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxSentenceLength:   20,
		EFLAWThreshold:      25,
		GunningFogThreshold: 17,
		FRESThreshold:       49,
		ConsThreshold:       18,
		MinInputWords:       5,
	}
}

// Validate rejects non-positive thresholds.
func (t Thresholds) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"max-sentence-length", t.MaxSentenceLength},
		{"eflaw", t.EFLAWThreshold},
		{"gunning-fog", t.GunningFogThreshold},
		{"fres", t.FRESThreshold},
		{"cons", t.ConsThreshold},
		{"min-input-words", t.MinInputWords},
	}

	var errs []error
	for _, c := range checks {
		if c.value <= 0 {
			errs = append(errs, fmt.Errorf("threshold %s must be positive, got %d", c.name, c.value))
		}
	}
	return errors.Join(errs...)
}

// LexiconConfig locates the lexicon artifacts. An empty Dir selects the
// embedded lists.
type LexiconConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// BatchConfig configures batch analysis.
type BatchConfig struct {
	Workers int      `yaml:"workers"`
	Exclude []string `yaml:"exclude"`
}

// Config is the complete readcheck configuration.
type Config struct {
	Thresholds Thresholds    `yaml:"thresholds"`
	Lexicon    LexiconConfig `yaml:"lexicon"`
	Log        LogConfig     `yaml:"log"`
	Batch      BatchConfig   `yaml:"batch"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Thresholds: DefaultThresholds(),
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
		Batch: BatchConfig{
			Workers: defaultWorkers(),
		},
	}
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	validFormats = []string{"auto", "console", "json"}
)

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Thresholds.Validate(); err != nil {
		errs = append(errs, err)
	}
	if !contains(validLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log level %q must be one of %s", c.Log.Level, strings.Join(validLevels, ", ")))
	}
	if !contains(validFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log format %q must be one of %s", c.Log.Format, strings.Join(validFormats, ", ")))
	}
	if c.Batch.Workers <= 0 {
		errs = append(errs, fmt.Errorf("batch workers must be positive, got %d", c.Batch.Workers))
	}
	return errors.Join(errs...)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func defaultWorkers() int {
	return min(max(runtime.NumCPU(), 1), 8)
}
