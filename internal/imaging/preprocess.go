package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Enhancement constants, chosen empirically against packaged-food photos.
// They are deliberately not tunable per call: every image goes through the
// identical pipeline so results stay deterministic and comparable.
const (
	// contrastBoost is the percentage passed to imaging.AdjustContrast;
	// +50% corresponds to a 1.5x contrast enhancement factor.
	contrastBoost = 50.0

	// sharpenSigma is the sharpening strength (2.0x enhancement).
	sharpenSigma = 2.0

	// thresholdBlock is the side of the square neighborhood used for
	// adaptive binarization.
	thresholdBlock = 11

	// thresholdOffset is subtracted from the local mean before comparing.
	thresholdOffset = 2

	// morphRadius is the structuring-element radius for the close/open
	// cleanup pass. Radius 0 is a 1x1 element: it removes nothing on its
	// own but keeps the stage in place so a larger element is a
	// one-constant change.
	morphRadius = 0.0

	// medianKernel is the median-blur kernel size for the denoise pass.
	medianKernel = 3.0
)

// Preprocess normalizes an image for text and barcode recognition.
//
// The pipeline applies, in this fixed order:
//  1. Contrast boost (+50%, i.e. 1.5x).
//  2. Sharpening (2.0x).
//  3. Perceptual grayscale conversion (CIE L* lightness).
//  4. Adaptive binarization against the local mean of an 11x11 block,
//     offset by 2.
//  5. Morphological close then open with a minimal 1x1 element to clear
//     speckle without eroding character strokes.
//  6. Median blur with a 3x3 kernel to denoise.
//
// The output is a new single-channel buffer owned by the caller. The source
// image is never mutated, and identical input pixels always produce
// byte-identical output.
func Preprocess(src image.Image) *image.Gray {
	enhanced := imaging.AdjustContrast(src, contrastBoost)
	sharpened := imaging.Sharpen(enhanced, sharpenSigma)

	gray := PerceptualGray(sharpened)
	binary := adaptiveThreshold(gray, thresholdBlock, thresholdOffset)

	cleaned := morphClose(binary, morphRadius)
	cleaned = morphOpen(cleaned, morphRadius)

	return toGray(effect.Median(cleaned, medianKernel))
}

// PerceptualGray converts an image to grayscale using CIE L* lightness
// rather than a plain RGB average, so contrast between ink and packaging
// survives the conversion the way a human reader perceives it.
//
// Fully transparent pixels map to black.
func PerceptualGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				out.SetGray(x, y, color.Gray{})
				continue
			}
			l, _, _ := c.Lab()
			if l < 0 {
				l = 0
			} else if l > 1 {
				l = 1
			}
			out.SetGray(x, y, color.Gray{Y: uint8(l*255 + 0.5)})
		}
	}

	return out
}

// adaptiveThreshold binarizes a grayscale image against the mean of each
// pixel's block x block neighborhood, minus offset. Pixels brighter than the
// local threshold become white (255), the rest black (0).
//
// A summed-area table makes each window lookup O(1), so the pass is linear
// in pixel count regardless of block size. Windows are clipped at the image
// border.
func adaptiveThreshold(gray *image.Gray, block, offset int) *image.Gray {
	bounds := gray.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// integral[y][x] holds the sum of all pixels above and left of (x, y).
	integral := make([][]int, height+1)
	integral[0] = make([]int, width+1)
	for y := 0; y < height; y++ {
		integral[y+1] = make([]int, width+1)
		rowSum := 0
		for x := 0; x < width; x++ {
			rowSum += int(gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			integral[y+1][x+1] = integral[y][x+1] + rowSum
		}
	}

	half := block / 2
	out := image.NewGray(bounds)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			x1 := maxInt(x-half, 0)
			y1 := maxInt(y-half, 0)
			x2 := minInt(x+half+1, width)
			y2 := minInt(y+half+1, height)

			sum := integral[y2][x2] - integral[y1][x2] - integral[y2][x1] + integral[y1][x1]
			count := (x2 - x1) * (y2 - y1)
			mean := sum / count

			v := int(gray.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y)
			if v > mean-offset {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, color.Gray{Y: 255})
			} else {
				out.SetGray(x+bounds.Min.X, y+bounds.Min.Y, color.Gray{Y: 0})
			}
		}
	}

	return out
}

// morphClose dilates then erodes, filling pinholes inside strokes.
func morphClose(img image.Image, radius float64) *image.Gray {
	return toGray(effect.Erode(effect.Dilate(img, radius), radius))
}

// morphOpen erodes then dilates, clearing isolated speckle.
func morphOpen(img image.Image, radius float64) *image.Gray {
	return toGray(effect.Dilate(effect.Erode(img, radius), radius))
}

// toGray collapses any image to a single-channel buffer using the standard
// library's gray color model.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}

	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
