package ocr

import (
	"errors"
	"image"
	"testing"

	"github.com/rs/zerolog"
)

// fakeEngine maps language specs to canned outputs. Specs absent from the
// maps return empty text.
type fakeEngine struct {
	texts map[string]string
	errs  map[string]error
	calls []string
}

func (f *fakeEngine) Recognize(_ image.Image, languages string) (string, error) {
	f.calls = append(f.calls, languages)
	if err := f.errs[languages]; err != nil {
		return "", err
	}
	return f.texts[languages], nil
}

func testImage() image.Image {
	return image.NewGray(image.Rect(0, 0, 10, 10))
}

func TestExtract_LongestTextWins(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"eng+ara": "short",
		"eng":     "Ingredients: water, sugar, salt and more",
		"ara":     "tiny",
	}}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Config != "english" {
		t.Errorf("Winning config = %q, want %q", result.Config, "english")
	}
	if result.Text != "Ingredients: water, sugar, salt and more" {
		t.Errorf("Unexpected winning text %q", result.Text)
	}
	if result.Confidence <= 0 {
		t.Errorf("Expected positive confidence, got %d", result.Confidence)
	}
}

func TestExtract_EarlierConfigWinsTies(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"eng+ara": "same length",
		"eng":     "equal parts",
	}}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Config != "bilingual" {
		t.Errorf("Ties must go to the earlier config, got %q", result.Config)
	}
}

func TestExtract_FailedConfigsSkipped(t *testing.T) {
	engine := &fakeEngine{
		texts: map[string]string{"ara": "نص عربي من الملصق"},
		errs: map[string]error{
			"eng+ara": errors.New("missing language pack"),
			"eng":     errors.New("missing language pack"),
		},
	}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Config != "arabic" {
		t.Errorf("Expected the surviving config to win, got %q", result.Config)
	}
	if len(engine.calls) != 3 {
		t.Errorf("All configs must still be attempted, got %d calls", len(engine.calls))
	}
}

func TestExtract_AllFail(t *testing.T) {
	engine := &fakeEngine{errs: map[string]error{
		"eng+ara": errors.New("ocr down"),
		"eng":     errors.New("ocr down"),
		"ara":     errors.New("ocr down"),
	}}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Text != "" || result.Config != "" || result.Confidence != 0 {
		t.Errorf("Expected zero result when every config fails, got %+v", result)
	}
}

func TestExtract_LengthCountsCharactersNotBytes(t *testing.T) {
	// Arabic letters encode as two bytes each; a shorter Arabic output must
	// not beat a longer English one on byte length.
	engine := &fakeEngine{texts: map[string]string{
		"eng": "english", // 7 characters, 7 bytes
		"ara": "عربي",    // 4 characters, 8 bytes
	}}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Config != "english" {
		t.Errorf("Winning config = %q, want %q", result.Config, "english")
	}
	if result.Text != "english" {
		t.Errorf("Winning text = %q, want the 7-character output", result.Text)
	}
}

func TestExtract_WhitespaceOnlyNeverWins(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{"eng+ara": " \n\t "}}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Text != "" || result.Config != "" || result.Confidence != 0 {
		t.Errorf("Whitespace-only output must not win, got %+v", result)
	}
}

func TestExtract_WhitespaceLosesToRealText(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{
		"eng+ara": " \n\t\r\n    \t ",
		"ara":     "ماء وسكر",
	}}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Config != "arabic" {
		t.Errorf("Winning config = %q, want %q", result.Config, "arabic")
	}
	if result.Text != "ماء وسكر" {
		t.Errorf("Winning text = %q, want the Arabic output", result.Text)
	}
}

func TestExtract_EmptyTextNeverWins(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{}}
	extractor := NewExtractor(engine, zerolog.Nop())

	result := extractor.Extract(testImage())

	if result.Config != "" {
		t.Errorf("Empty outputs must not produce a winner, got %q", result.Config)
	}
}

func TestExtract_CustomConfigs(t *testing.T) {
	engine := &fakeEngine{texts: map[string]string{"deu": "Zutaten: Wasser"}}
	extractor := NewExtractor(engine, zerolog.Nop(), Config{Name: "german", Languages: "deu"})

	result := extractor.Extract(testImage())

	if result.Config != "german" {
		t.Errorf("Custom config should be used, got %q", result.Config)
	}
	if len(engine.calls) != 1 {
		t.Errorf("Only the custom config should run, got %v", engine.calls)
	}
}

func TestDefaultConfigs_Order(t *testing.T) {
	configs := DefaultConfigs()

	want := []string{"eng+ara", "eng", "ara"}
	if len(configs) != len(want) {
		t.Fatalf("Expected %d configs, got %d", len(want), len(configs))
	}
	for i, spec := range want {
		if configs[i].Languages != spec {
			t.Errorf("Config %d languages = %q, want %q", i, configs[i].Languages, spec)
		}
	}
}
