package detection

import (
	"image"
	"math"
	"sort"
)

const (
	// minRegionWidth/minRegionHeight filter out fragments too small to hold
	// a legible line of label text.
	minRegionWidth  = 50
	minRegionHeight = 20

	// maxRegions caps the result; a label photo rarely has more than a
	// handful of usable text blocks.
	maxRegions = 10

	// minConfidence is the internal acceptance threshold for a candidate
	// window before merging.
	minConfidence = 0.3
)

// Region is a candidate text-bearing rectangle in image coordinates.
type Region struct {
	X      int `json:"x"`      // Left edge
	Y      int `json:"y"`      // Top edge
	Width  int `json:"width"`  // Horizontal extent in pixels
	Height int `json:"height"` // Vertical extent in pixels
	Area   int `json:"area"`   // Width * Height
}

// DetectTextRegions locates rectangular regions likely to contain text.
//
// This is a heuristic targeting aid: a caller may crop to the returned
// regions before running extraction, but the main pipeline works on whole
// images and never requires it.
//
// Returns at most 10 regions, ordered by area descending, each at least
// 50x20 pixels. An image with no text-like structure yields an empty slice.
//
// # Algorithm
//
//  1. Edge Detection: simple gradient threshold over grayscale values
//  2. Sliding Windows: several window sizes scan for medium edge density
//     (text is neither sparse nor noise-dense) with predominantly
//     horizontal edge runs
//  3. Merging: overlapping candidate windows are merged into their union
//  4. Filtering: undersized regions are dropped, survivors sorted by area
func DetectTextRegions(img image.Image) []Region {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	edges := detectEdges(img, width, height)

	windowSizes := []struct{ w, h int }{
		{100, 30}, // Small text
		{150, 40}, // Medium text
		{200, 50}, // Large text
		{80, 25},  // Very small text
	}

	candidates := make([]candidate, 0)

	for _, ws := range windowSizes {
		stepX := ws.w / 2
		stepY := ws.h / 2

		for y := 0; y <= height-ws.h; y += stepY {
			for x := 0; x <= width-ws.w; x += stepX {
				edgeCount := 0
				for wy := 0; wy < ws.h; wy++ {
					for wx := 0; wx < ws.w; wx++ {
						if edges[y+wy][x+wx] {
							edgeCount++
						}
					}
				}

				density := float64(edgeCount) / float64(ws.w*ws.h)

				// Text sits in a medium density band: sparse windows are
				// background, dense ones are noise or texture.
				if density < 0.05 || density > 0.4 {
					continue
				}

				horizontal := horizontalRunScore(edges, x, y, ws.w, ws.h)
				confidence := horizontal * (1.0 - math.Abs(density-0.2)/0.2)

				if confidence >= minConfidence {
					candidates = append(candidates, candidate{
						x1: x, y1: y, x2: x + ws.w, y2: y + ws.h,
					})
				}
			}
		}
	}

	merged := mergeOverlapping(candidates)

	regions := make([]Region, 0, len(merged))
	for _, c := range merged {
		w := c.x2 - c.x1
		h := c.y2 - c.y1
		if w < minRegionWidth || h < minRegionHeight {
			continue
		}
		regions = append(regions, Region{
			X:      c.x1 + bounds.Min.X,
			Y:      c.y1 + bounds.Min.Y,
			Width:  w,
			Height: h,
			Area:   w * h,
		})
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Area > regions[j].Area
	})

	if len(regions) > maxRegions {
		regions = regions[:maxRegions]
	}

	return regions
}

// candidate is an accepted window before merging, in image-local coordinates.
type candidate struct {
	x1, y1, x2, y2 int
}

// detectEdges marks pixels whose horizontal or vertical gradient exceeds a
// fixed threshold.
func detectEdges(img image.Image, width, height int) [][]bool {
	bounds := img.Bounds()
	edges := make([][]bool, height)
	threshold := 30.0

	for y := 0; y < height; y++ {
		edges[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				continue
			}

			c := grayValue(img, x+bounds.Min.X, y+bounds.Min.Y)
			cx := grayValue(img, x+1+bounds.Min.X, y+bounds.Min.Y)
			cy := grayValue(img, x+bounds.Min.X, y+1+bounds.Min.Y)

			dx := math.Abs(float64(c) - float64(cx))
			dy := math.Abs(float64(c) - float64(cy))

			if dx > threshold || dy > threshold {
				edges[y][x] = true
			}
		}
	}

	return edges
}

// grayValue returns the 8-bit luminance of a pixel using ITU-R BT.601 weights.
func grayValue(img image.Image, x, y int) uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8((299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000)
}

// horizontalRunScore measures how horizontal the edge structure inside a
// window is. Printed text produces long interrupted horizontal runs, so a
// higher ratio of horizontal to total runs suggests text.
func horizontalRunScore(edges [][]bool, x, y, w, h int) float64 {
	horizontalRuns := 0
	verticalRuns := 0

	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if edges[row][col] {
				if !inRun {
					horizontalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if edges[row][col] {
				if !inRun {
					verticalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if horizontalRuns+verticalRuns == 0 {
		return 0
	}
	return float64(horizontalRuns) / float64(horizontalRuns+verticalRuns)
}

// mergeOverlapping combines overlapping candidate windows into their unions.
func mergeOverlapping(candidates []candidate) []candidate {
	if len(candidates) == 0 {
		return candidates
	}

	merged := make([]candidate, 0)

	for _, c := range candidates {
		foundMerge := false
		for i := range merged {
			if overlaps(c, merged[i]) {
				merged[i] = union(c, merged[i])
				foundMerge = true
				break
			}
		}
		if !foundMerge {
			merged = append(merged, c)
		}
	}

	return merged
}

func overlaps(a, b candidate) bool {
	return a.x1 < b.x2 && a.x2 > b.x1 && a.y1 < b.y2 && a.y2 > b.y1
}

func union(a, b candidate) candidate {
	return candidate{
		x1: minInt(a.x1, b.x1),
		y1: minInt(a.y1, b.y1),
		x2: maxInt(a.x2, b.x2),
		y2: maxInt(a.y2, b.y2),
	}
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
