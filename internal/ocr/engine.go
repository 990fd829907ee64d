package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes text in an image. languages is a Tesseract language
// specification such as "eng", "ara", or the combined "eng+ara".
//
// Implementations must be safe for sequential reuse; the extractor calls
// Recognize once per language configuration on the same image.
type Engine interface {
	Recognize(img image.Image, languages string) (string, error)
}

// Tesseract is the production Engine backed by gosseract.
//
// Each Recognize call creates a fresh client so language and page-segmentation
// state never leaks between calls. The image is handed to Tesseract as an
// in-memory PNG; no temporary files are written.
type Tesseract struct {
	// TessdataPrefix optionally points at a tessdata directory. Empty means
	// the system default (or the TESSDATA_PREFIX environment variable).
	TessdataPrefix string
}

// Recognize runs Tesseract over the image with the given language spec.
//
// Page segmentation is fixed to single-block mode: label photographs are
// pre-cropped to one text area, and block mode reads dense ingredient
// paragraphs much better than automatic layout analysis.
func (t *Tesseract) Recognize(img image.Image, languages string) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(strings.Split(languages, "+")...); err != nil {
		return "", fmt.Errorf("failed to set language %q: %w", languages, err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return text, nil
}
