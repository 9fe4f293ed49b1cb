// Package color implements the sRGB transfer functions used by draw2d.
//
// Encode and Decode are the exact published curve and are the default for
// every drawing operation. The LUT, gamma and square variants are faster
// approximations; callers pick them explicitly.
//
// References:
//   - https://www.khronos.org/registry/DataFormat/specs/1.3/dataformat.1.3.html#TRANSFER_SRGB
//   - https://www.w3.org/Graphics/Color/sRGB
package color

import "math"

// sRGB curve constants.
const (
	encodeThreshold = 0.0031308
	decodeThreshold = 0.04045
	linearSlope     = 12.92
	curveScale      = 1.055
	curveOffset     = 0.055
	curveExponent   = 2.4
)

// Encode converts a linear intensity to an 8-bit sRGB value (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055,
// scaled to [0,255] and rounded to nearest. Input is clamped to [0,1];
// NaN encodes as 0.
func Encode(l float32) uint8 {
	lf := float64(l)
	if !(lf > 0) {
		return 0
	}
	if lf >= 1 {
		return 255
	}
	var s float64
	if lf <= encodeThreshold {
		s = lf * linearSlope
	} else {
		s = curveScale*math.Pow(lf, 1.0/curveExponent) - curveOffset
	}
	//nolint:gosec // G115: s is in [0,1) so the result fits a byte
	return uint8(s*255.0 + 0.5)
}

// Decode converts an 8-bit sRGB value to linear intensity in [0,1] (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func Decode(v uint8) float32 {
	s := float64(v) / 255.0
	if s <= decodeThreshold {
		return float32(s / linearSlope)
	}
	return float32(math.Pow((s+curveOffset)/curveScale, curveExponent))
}

// EncodeUnit applies the sRGB curve without quantising: [0,1] -> [0,1].
// Used where a continuous encoded value is needed (tests, gradients).
func EncodeUnit(l float32) float32 {
	if l <= encodeThreshold {
		return l * linearSlope
	}
	return float32(curveScale*math.Pow(float64(l), 1.0/curveExponent) - curveOffset)
}

// DecodeUnit is the inverse of EncodeUnit.
func DecodeUnit(s float32) float32 {
	if s <= decodeThreshold {
		return s / linearSlope
	}
	return float32(math.Pow(float64((s+curveOffset)/curveScale), curveExponent))
}
