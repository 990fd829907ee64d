package scan

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rs/zerolog"

	"github.com/foodlens/labelscan/internal/barcode"
	"github.com/foodlens/labelscan/internal/imaging"
	"github.com/foodlens/labelscan/internal/ocr"
)

// stubEngine returns the same canned text for every language configuration.
type stubEngine struct {
	text string
}

func (s *stubEngine) Recognize(_ image.Image, _ string) (string, error) {
	return s.text, nil
}

func newTestScanner(text string) *Scanner {
	extractor := ocr.NewExtractor(&stubEngine{text: text}, zerolog.Nop())
	decoder := barcode.NewDecoder(zerolog.Nop())
	return New(extractor, decoder, zerolog.Nop())
}

// encodeTestImage produces PNG bytes of a plain white image.
func encodeTestImage(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 60, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestScan_InvalidImage(t *testing.T) {
	scanner := newTestScanner("")

	_, err := scanner.Scan([]byte("not an image"), FieldGeneral)

	if !errors.Is(err, imaging.ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage, got %v", err)
	}
}

func TestScan_UnknownField(t *testing.T) {
	scanner := newTestScanner("")

	_, err := scanner.Scan(encodeTestImage(t), Field("allergens"))

	if err == nil {
		t.Error("Expected an error for an unknown field kind")
	}
}

func TestScan_Ingredients(t *testing.T) {
	scanner := newTestScanner("Ingredients: Water, Sugar, Salt, Salt")

	result, err := scanner.Scan(encodeTestImage(t), FieldIngredients)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	ing, ok := result.(IngredientsResult)
	if !ok {
		t.Fatalf("Expected IngredientsResult, got %T", result)
	}

	want := []string{"Water", "Sugar", "Salt"}
	if len(ing.Ingredients) != len(want) {
		t.Fatalf("Ingredients = %v, want %v", ing.Ingredients, want)
	}
	for i := range want {
		if ing.Ingredients[i] != want[i] {
			t.Errorf("Ingredient %d = %q, want %q", i, ing.Ingredients[i], want[i])
		}
	}
	if ing.Text == "" {
		t.Error("Raw text must be carried in the result")
	}
	if ing.Confidence <= 0 || ing.Confidence > 100 {
		t.Errorf("Confidence = %d, want within (0, 100]", ing.Confidence)
	}
}

func TestScan_Nutrition(t *testing.T) {
	scanner := newTestScanner("Energy: 250 kcal Protein: 5g Sodium: 12000mg")

	result, err := scanner.Scan(encodeTestImage(t), FieldNutrition)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	nut, ok := result.(NutritionResult)
	if !ok {
		t.Fatalf("Expected NutritionResult, got %T", result)
	}

	if nut.NutritionFacts["energy"] != 250 {
		t.Errorf("energy = %v, want 250", nut.NutritionFacts["energy"])
	}
	if nut.NutritionFacts["protein"] != 5 {
		t.Errorf("protein = %v, want 5", nut.NutritionFacts["protein"])
	}
	if _, ok := nut.NutritionFacts["sodium"]; ok {
		t.Error("Out-of-range sodium must be dropped from the result")
	}
}

func TestScan_General(t *testing.T) {
	scanner := newTestScanner("Premium Dark Chocolate with cocoa and sugar")

	result, err := scanner.Scan(encodeTestImage(t), FieldGeneral)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	text, ok := result.(TextResult)
	if !ok {
		t.Fatalf("Expected TextResult, got %T", result)
	}
	if text.Text != "Premium Dark Chocolate with cocoa and sugar" {
		t.Errorf("Unexpected text %q", text.Text)
	}
	if text.Confidence < 0 || text.Confidence > 100 {
		t.Errorf("Confidence = %d, out of [0, 100]", text.Confidence)
	}
}

func TestScan_BarcodeAbsentOnBlankImage(t *testing.T) {
	scanner := newTestScanner("")

	result, err := scanner.Scan(encodeTestImage(t), FieldBarcode)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	bc, ok := result.(barcode.Result)
	if !ok {
		t.Fatalf("Expected barcode.Result, got %T", result)
	}
	if bc.Found() {
		t.Errorf("Blank image must yield an absent barcode, got %+v", bc)
	}
	if bc.Confidence != 0 {
		t.Errorf("Absent barcode confidence = %d, want 0", bc.Confidence)
	}
}

func TestScan_NoTextIsNotAnError(t *testing.T) {
	scanner := newTestScanner("")

	result, err := scanner.Scan(encodeTestImage(t), FieldGeneral)
	if err != nil {
		t.Fatalf("No text must not be an error, got %v", err)
	}

	text := result.(TextResult)
	if text.Text != "" || text.Confidence != 0 {
		t.Errorf("Expected empty zero-confidence result, got %+v", text)
	}
}

func TestParseField(t *testing.T) {
	for _, valid := range []string{"barcode", "ingredients", "nutrition", "general"} {
		if _, err := ParseField(valid); err != nil {
			t.Errorf("ParseField(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseField("allergens"); err == nil {
		t.Error("ParseField must reject unknown kinds")
	}
}
