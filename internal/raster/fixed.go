// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster holds the pixel-exact geometry behind draw2d's primitives.
//
// Nothing here writes pixels. The package computes which pixels a primitive
// covers (spans, per-pixel edge weights, Bresenham steps) and leaves the
// writes, and the clipping against a concrete surface, to the caller.
package raster

import (
	"math"

	"github.com/chewxy/math32"
)

// FDot8 is a 56.8 fixed-point coordinate.
// The 8-bit fractional part provides 256 subpixel positions per pixel.
type FDot8 int64

// Fixed-point constants for FDot8.
const (
	// FDot8Shift is the number of fractional bits in FDot8.
	FDot8Shift = 8
	// FDot8One represents 1.0 in FDot8 format (256).
	FDot8One FDot8 = 1 << FDot8Shift
	// FDot8Half represents 0.5 in FDot8 format, the offset of a pixel centre.
	FDot8Half FDot8 = FDot8One / 2
)

// CoordLimit is the half-width, in pixels, of the guard band of the
// fixed-point path. Triangles reaching past it are clipped to it before
// setup (see ClipTriangle). Inside it the product of two coordinate
// differences stays below 2^60.
const CoordLimit = 1 << 20

// PixelLimit bounds integer pixel positions. Line endpoints past it are
// clipped along the segment. Blit offsets are clamped, which leaves any
// image narrower than PixelLimit off every surface.
const PixelLimit = 1 << 29

// FloatToFDot8 converts a pixel coordinate to FDot8, rounding to the
// nearest subpixel. The second result is false for NaN.
func FloatToFDot8(f float32) (FDot8, bool) {
	if f != f {
		return 0, false
	}
	f = clampCoord(f)
	return FDot8(math32.Round(f * float32(FDot8One))), true
}

// float64ToFDot8 is FloatToFDot8 for a finite float64 inside the guard
// band, up to rounding.
func float64ToFDot8(f float64) FDot8 {
	f = max(-CoordLimit, min(CoordLimit, f))
	return FDot8(math.Round(f * float64(FDot8One)))
}

// FDot8ToFloat converts FDot8 to float32.
func FDot8ToFloat(f FDot8) float32 {
	return float32(f) / float32(FDot8One)
}

// FDot8Floor returns the pixel index containing f.
func FDot8Floor(f FDot8) int {
	return int(f >> FDot8Shift)
}

// PixelCenter returns the sample position of pixel i.
func PixelCenter(i int) FDot8 {
	return FDot8(i)<<FDot8Shift + FDot8Half
}

// CenterRange returns the half-open range [first, end) of pixel indices
// whose centres lie in [lo, hi).
func CenterRange(lo, hi FDot8) (first, end int) {
	first = int(ceilDiv(int64(lo-FDot8Half), int64(FDot8One)))
	end = int(ceilDiv(int64(hi-FDot8Half), int64(FDot8One)))
	return first, end
}

// FloorToPixel returns the pixel index containing coordinate f, clamped to
// ±PixelLimit. The second result is false for NaN.
func FloorToPixel(f float32) (int, bool) {
	if f != f {
		return 0, false
	}
	return int(math32.Floor(max(-PixelLimit, min(PixelLimit, f)))), true
}

func clampCoord(f float32) float32 {
	if f > CoordLimit {
		return CoordLimit
	}
	if f < -CoordLimit {
		return -CoordLimit
	}
	return f
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// ceilDiv returns ceil(a/b) for b > 0.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
