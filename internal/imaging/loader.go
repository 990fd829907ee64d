package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
)

// ErrInvalidImage indicates that an input buffer could not be decoded as an
// image. It is the only fatal error the extraction pipeline surfaces; every
// other failure mode degrades to an empty result.
var ErrInvalidImage = errors.New("invalid image")

// Decode converts a raw byte buffer into an image.
//
// Parameters:
//   - data: Encoded image bytes. Supported formats are PNG, JPEG, and GIF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image
//     format and color model (e.g., *image.RGBA, *image.NRGBA, *image.YCbCr).
//   - error: Wraps ErrInvalidImage if the buffer is empty or not a valid
//     image in a registered format. Check with errors.Is(err, ErrInvalidImage).
//
// The pipeline does not retain the buffer or the decoded image beyond the
// call that consumes them.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	return img, nil
}
