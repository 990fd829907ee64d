package barcode

import (
	"image"
	"regexp"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/rs/zerolog"

	"github.com/foodlens/labelscan/internal/imaging"
)

// Result is the outcome of a barcode decoding attempt.
//
// Decoding is binary: a symbol either validates against its symbology
// checksum or it does not, so Confidence is always exactly 100 (found) or
// 0 (not found). There is no partial-confidence state.
type Result struct {
	// Value is the raw decoded payload, empty when nothing decoded.
	Value string `json:"value,omitempty"`

	// Symbology is the encoding standard of the decoded symbol
	// (e.g. "EAN_13", "UPC_A"), empty when nothing decoded.
	Symbology string `json:"symbology,omitempty"`

	// Confidence is 100 when a symbol decoded, 0 otherwise.
	Confidence int `json:"confidence"`
}

// Found reports whether a symbol was decoded.
func (r Result) Found() bool {
	return r.Value != ""
}

// Variant is one entry in the ordered list of image forms a Decoder tries.
// Keeping the trial order as an explicit list lets tests substitute
// alternate orders.
type Variant struct {
	// Name identifies the variant in logs.
	Name string

	// Transform derives the image form to decode from the source image.
	Transform func(image.Image) image.Image
}

// DefaultVariants returns the standard trial order: the untouched input
// first, then the full preprocessing pipeline, then a plain grayscale
// conversion. Trying the cheapest form first minimizes work in the common
// case of a cleanly photographed package.
func DefaultVariants() []Variant {
	return []Variant{
		{Name: "original", Transform: func(img image.Image) image.Image {
			return img
		}},
		{Name: "preprocessed", Transform: func(img image.Image) image.Image {
			return imaging.Preprocess(img)
		}},
		{Name: "grayscale", Transform: func(img image.Image) image.Image {
			return imaging.PerceptualGray(img)
		}},
	}
}

// Decoder attempts symbol decoding across several image variants.
//
// A Decoder is stateless per call and safe for concurrent use on
// independent images.
type Decoder struct {
	variants []Variant
	readers  []gozxing.Reader
	log      zerolog.Logger
}

// NewDecoder creates a Decoder.
//
// With no variants the default trial order applies; passing variants
// replaces it wholesale. The reader list covers the symbologies found on
// food packaging: EAN-13, UPC-A, EAN-8, Code 128, Code 39, and ITF, tried
// in that order per variant.
func NewDecoder(logger zerolog.Logger, variants ...Variant) *Decoder {
	if len(variants) == 0 {
		variants = DefaultVariants()
	}
	return &Decoder{
		variants: variants,
		readers: []gozxing.Reader{
			oned.NewEAN13Reader(),
			oned.NewUPCAReader(),
			oned.NewEAN8Reader(),
			oned.NewCode128Reader(),
			oned.NewCode39Reader(),
			oned.NewITFReader(),
		},
		log: logger,
	}
}

// Decode tries each image variant in order and returns the first decoded
// symbol. When no variant yields a symbol the result is absent with
// confidence 0; decoding never fails with an error.
func (d *Decoder) Decode(img image.Image) Result {
	for _, variant := range d.variants {
		bmp, err := gozxing.NewBinaryBitmapFromImage(variant.Transform(img))
		if err != nil {
			d.log.Debug().Err(err).Str("variant", variant.Name).Msg("binarization failed")
			continue
		}

		for _, reader := range d.readers {
			decoded, err := reader.Decode(bmp, nil)
			if err != nil {
				continue
			}

			result := Result{
				Value:      decoded.GetText(),
				Symbology:  decoded.GetBarcodeFormat().String(),
				Confidence: 100,
			}
			d.log.Debug().
				Str("variant", variant.Name).
				Str("symbology", result.Symbology).
				Msg("barcode decoded")
			return result
		}
	}

	return Result{Confidence: 0}
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ValidFormat reports whether a decoded value has the length of a retail
// barcode after stripping non-digit characters: EAN-8 (8), UPC-A (12),
// EAN-13 (13), or EAN-14 (14).
func ValidFormat(value string) bool {
	digits := nonDigits.ReplaceAllString(value, "")
	switch len(digits) {
	case 8, 12, 13, 14:
		return true
	}
	return false
}
