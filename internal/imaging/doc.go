// Package imaging provides image decoding and OCR-oriented preprocessing
// for the label extraction pipeline.
//
// The central operation is Preprocess, which normalizes a photograph of a
// packaged-food label into a single-channel buffer suited to text and
// barcode recognition. The stages (contrast, sharpening, perceptual
// grayscale, adaptive binarization, morphological cleanup, median denoise)
// run in a fixed order with fixed constants so any two runs over the same
// pixels produce byte-identical output.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with origin at the top-left corner:
// X increases rightward, Y increases downward. Regions use an inclusive
// top-left and exclusive bottom-right corner.
//
// # Ownership
//
// Decode and Preprocess return freshly allocated buffers owned by the
// caller. Source images are never mutated, and nothing is cached or pooled
// inside the package, so concurrent calls on independent images need no
// coordination.
//
// # Error Handling
//
// Decode wraps ErrInvalidImage for undecodable buffers; this is the only
// fatal error in the pipeline. Preprocess cannot fail: given any decoded
// image it returns a result.
package imaging
