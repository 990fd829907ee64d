// Package detection locates candidate text regions in label photographs.
//
// Detection is a targeting aid, independent of the OCR engine: it finds
// rectangles with text-like edge structure so a caller can crop before
// extraction. The main pipeline does not depend on it.
//
// # Algorithm Overview
//
//  1. Edge Detection: grayscale conversion and a simple gradient threshold
//  2. Sliding Windows: multiple window sizes scored by edge density and the
//     predominance of horizontal edge runs
//  3. Merging and Filtering: overlapping windows merge into their union;
//     regions below 50x20 pixels are dropped
//
// Results are ordered by area, largest first, capped at ten regions.
//
// # Limitations
//
// The heuristic favors clean, horizontally set print. Dense texture,
// heavy compression artifacts, or steeply rotated text produce misses and
// false positives; callers should treat regions as hints, not ground truth.
package detection
