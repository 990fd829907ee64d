// Package config loads CLI configuration from environment variables.
package config

import (
	"os"
	"strings"

	"github.com/foodlens/labelscan/internal/logger"
	"github.com/foodlens/labelscan/internal/ocr"
)

type Config struct {
	// OCR Configuration
	OCRLanguages   string // comma-separated Tesseract language specs
	TessdataPrefix string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads configuration from the environment. Every key has a default,
// so loading never fails.
func Load() *Config {
	return &Config{
		OCRLanguages:   getEnv("OCR_LANGUAGES", ""),
		TessdataPrefix: getEnv("TESSDATA_PREFIX", ""),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		LogTimeFormat:  getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:      getEnv("LOG_OUTPUT", "stderr"),
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// OCRConfigs converts the OCR_LANGUAGES value into extraction configurations.
//
// The value is a comma-separated list of Tesseract language specs, tried in
// the given order (e.g. "eng+ara,eng"). Empty means the standard bilingual
// attempt order.
func (c *Config) OCRConfigs() []ocr.Config {
	if strings.TrimSpace(c.OCRLanguages) == "" {
		return ocr.DefaultConfigs()
	}

	configs := make([]ocr.Config, 0)
	for _, spec := range strings.Split(c.OCRLanguages, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		configs = append(configs, ocr.Config{Name: spec, Languages: spec})
	}

	if len(configs) == 0 {
		return ocr.DefaultConfigs()
	}
	return configs
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
