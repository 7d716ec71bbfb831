package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "READCHECK_"

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from READCHECK_* environment variables.
// Unset or unparsable variables leave the current value.
func (c *Config) ApplyEnv() {
	t := &c.Thresholds
	t.MaxSentenceLength = getEnvInt("MAX_SENTENCE_LENGTH", t.MaxSentenceLength)
	t.EFLAWThreshold = getEnvInt("EFLAW_THRESHOLD", t.EFLAWThreshold)
	t.GunningFogThreshold = getEnvInt("GUNNING_FOG_THRESHOLD", t.GunningFogThreshold)
	t.FRESThreshold = getEnvInt("FRES_THRESHOLD", t.FRESThreshold)
	t.ConsThreshold = getEnvInt("CONS_THRESHOLD", t.ConsThreshold)
	t.MinInputWords = getEnvInt("MIN_INPUT_WORDS", t.MinInputWords)

	c.Lexicon.Dir = getEnv("LEXICON_DIR", c.Lexicon.Dir)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Batch.Workers = getEnvInt("WORKERS", c.Batch.Workers)
	c.Batch.Exclude = getEnvList("EXCLUDE", c.Batch.Exclude)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(EnvPrefix + key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
