package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// createTestImage creates a solid-color RGBA image for testing
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// encodePNG encodes an image to PNG bytes for decode tests
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := encodePNG(t, createTestImage(40, 30, color.White))

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 40 || bounds.Dy() != 30 {
		t.Errorf("Decoded dimensions: got %dx%d, want 40x30", bounds.Dx(), bounds.Dy())
	}
}

func TestDecode_EmptyBuffer(t *testing.T) {
	_, err := Decode(nil)
	if err == nil {
		t.Fatal("Decode should fail on empty buffer")
	}
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage, got %v", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("not an image at all"))
	if err == nil {
		t.Fatal("Decode should fail on garbage bytes")
	}
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage, got %v", err)
	}
}

func TestDecode_TruncatedPNG(t *testing.T) {
	data := encodePNG(t, createTestImage(40, 30, color.White))

	_, err := Decode(data[:8])
	if err == nil {
		t.Fatal("Decode should fail on truncated data")
	}
	if !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Expected ErrInvalidImage, got %v", err)
	}
}
