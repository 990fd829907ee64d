package scan

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/foodlens/labelscan/internal/barcode"
	"github.com/foodlens/labelscan/internal/imaging"
	"github.com/foodlens/labelscan/internal/ocr"
	"github.com/foodlens/labelscan/internal/parse"
)

// Field selects which structured fact to extract from a label image.
type Field string

const (
	FieldBarcode     Field = "barcode"
	FieldIngredients Field = "ingredients"
	FieldNutrition   Field = "nutrition"
	FieldGeneral     Field = "general"
)

// ParseField converts a user-supplied field name into a Field.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldBarcode, FieldIngredients, FieldNutrition, FieldGeneral:
		return Field(s), nil
	}
	return "", fmt.Errorf("unknown field kind %q (want barcode, ingredients, nutrition, or general)", s)
}

// TextResult is the outcome of a general text scan.
type TextResult struct {
	Text       string `json:"text"`
	Confidence int    `json:"confidence"`
}

// IngredientsResult pairs the raw extracted text with the parsed and
// validated ingredient list.
type IngredientsResult struct {
	Text        string   `json:"text"`
	Ingredients []string `json:"ingredients"`
	Confidence  int      `json:"confidence"`
}

// NutritionResult pairs the raw extracted text with the parsed and
// range-validated nutrient values.
type NutritionResult struct {
	Text           string             `json:"text"`
	NutritionFacts map[string]float64 `json:"nutrition_facts"`
	Confidence     int                `json:"confidence"`
}

// Scanner runs the extraction pipeline for one field kind at a time.
type Scanner struct {
	extractor *ocr.Extractor
	decoder   *barcode.Decoder
	log       zerolog.Logger
}

// New builds a Scanner over the given extractor and barcode decoder.
func New(extractor *ocr.Extractor, decoder *barcode.Decoder, logger zerolog.Logger) *Scanner {
	return &Scanner{
		extractor: extractor,
		decoder:   decoder,
		log:       logger,
	}
}

// Scan decodes the image buffer and extracts the requested field.
//
// The returned value is one of barcode.Result, IngredientsResult,
// NutritionResult, or TextResult, matching the field kind; all four marshal
// directly to JSON. An undecodable buffer is the only fatal error — failed
// extraction still produces a structured result.
func (s *Scanner) Scan(data []byte, field Field) (any, error) {
	img, err := imaging.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", field, err)
	}

	switch field {
	case FieldBarcode:
		return s.Barcode(img), nil
	case FieldIngredients:
		return s.Ingredients(img), nil
	case FieldNutrition:
		return s.Nutrition(img), nil
	case FieldGeneral:
		return s.Text(img), nil
	}
	return nil, fmt.Errorf("unknown field kind %q", field)
}

// Barcode attempts barcode decoding on the image.
func (s *Scanner) Barcode(img image.Image) barcode.Result {
	result := s.decoder.Decode(img)
	s.log.Debug().
		Bool("found", result.Found()).
		Str("symbology", result.Symbology).
		Msg("Barcode scan completed")
	return result
}

// Text extracts free text from the image.
func (s *Scanner) Text(img image.Image) TextResult {
	ext := s.extract(img)
	return TextResult{Text: ext.Text, Confidence: ext.Confidence}
}

// Ingredients extracts text and parses it into a validated ingredient list.
// An empty list with non-empty text means no ingredients header was found.
func (s *Scanner) Ingredients(img image.Image) IngredientsResult {
	ext := s.extract(img)
	items := parse.ValidateIngredients(parse.Ingredients(ext.Text))

	s.log.Debug().
		Int("ingredients", len(items)).
		Int("confidence", ext.Confidence).
		Msg("Ingredient scan completed")

	return IngredientsResult{
		Text:        ext.Text,
		Ingredients: items,
		Confidence:  ext.Confidence,
	}
}

// Nutrition extracts text and parses it into range-validated nutrient values.
func (s *Scanner) Nutrition(img image.Image) NutritionResult {
	ext := s.extract(img)
	facts := parse.ValidateNutrition(parse.Nutrition(ext.Text))

	s.log.Debug().
		Int("nutrients", len(facts)).
		Int("confidence", ext.Confidence).
		Msg("Nutrition scan completed")

	return NutritionResult{
		Text:           ext.Text,
		NutritionFacts: facts,
		Confidence:     ext.Confidence,
	}
}

// extract runs preprocessing and multi-configuration OCR.
func (s *Scanner) extract(img image.Image) ocr.Result {
	return s.extractor.Extract(imaging.Preprocess(img))
}
