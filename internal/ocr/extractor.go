package ocr

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/foodlens/labelscan/internal/parse"
)

// Config names one language configuration for an extraction attempt.
type Config struct {
	// Name identifies the configuration in logs and results.
	Name string `json:"name"`

	// Languages is the Tesseract language spec to run with.
	Languages string `json:"languages"`
}

// DefaultConfigs returns the standard attempt order for bilingual labels:
// combined English+Arabic first, then each language alone. Later entries
// win ties only by producing strictly longer text, so the combined pass
// stays preferred when results are equal.
func DefaultConfigs() []Config {
	return []Config{
		{Name: "bilingual", Languages: "eng+ara"},
		{Name: "english", Languages: "eng"},
		{Name: "arabic", Languages: "ara"},
	}
}

// Result is the outcome of a multi-configuration extraction.
type Result struct {
	// Text is the recognized text of the winning configuration, or "" when
	// every configuration failed or produced nothing.
	Text string `json:"text"`

	// Config is the Name of the winning configuration, or "" when none won.
	Config string `json:"config,omitempty"`

	// Confidence is the heuristic 0-100 quality score of Text.
	Confidence int `json:"confidence"`
}

// Extractor runs an Engine under several language configurations and keeps
// the result with the most text.
type Extractor struct {
	engine  Engine
	configs []Config
	log     zerolog.Logger
}

// NewExtractor builds an Extractor over the given engine. With no explicit
// configs the DefaultConfigs order is used.
func NewExtractor(engine Engine, logger zerolog.Logger, configs ...Config) *Extractor {
	if len(configs) == 0 {
		configs = DefaultConfigs()
	}
	return &Extractor{
		engine:  engine,
		configs: configs,
		log:     logger,
	}
}

// Extract recognizes text in the image under every configured language
// combination and returns the longest non-empty result. Length is counted
// in characters, not bytes, so multi-byte scripts compete fairly; output
// that trims to nothing is never a candidate.
//
// Individual configuration failures are logged and skipped: one missing
// language pack must not sink the attempts that can still succeed. Only
// when every configuration fails or yields empty text does Extract return
// a zero Result — that is a data outcome, not an error.
func (e *Extractor) Extract(img image.Image) Result {
	best := Result{}
	bestLen := 0

	for _, cfg := range e.configs {
		text, err := e.engine.Recognize(img, cfg.Languages)
		if err != nil {
			e.log.Warn().
				Err(err).
				Str("config", cfg.Name).
				Str("languages", cfg.Languages).
				Msg("OCR configuration failed")
			continue
		}

		n := utf8.RuneCountInString(text)
		e.log.Debug().
			Str("config", cfg.Name).
			Int("chars", n).
			Msg("OCR configuration completed")

		if strings.TrimSpace(text) == "" {
			continue
		}

		if n > bestLen {
			best = Result{Text: text, Config: cfg.Name}
			bestLen = n
		}
	}

	best.Confidence = parse.Score(best.Text)
	return best
}
