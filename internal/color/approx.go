package color

import "github.com/chewxy/math32"

// EncodeGamma approximates the sRGB curve with a pure power law
// (exponent 1/2.4, no linear toe). Input is clamped to [0,1].
func EncodeGamma(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return quantize(math32.Pow(l, 1.0/curveExponent))
}

// DecodeGamma is the inverse of EncodeGamma.
func DecodeGamma(v uint8) float32 {
	return math32.Pow(float32(v)/255.0, curveExponent)
}

// EncodeSquare approximates the sRGB curve with a square root
// (gamma 2.0). Cheapest of the approximations and visibly brighter in the
// shadows than the exact curve.
func EncodeSquare(l float32) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return quantize(math32.Sqrt(l))
}

// DecodeSquare is the inverse of EncodeSquare.
func DecodeSquare(v uint8) float32 {
	s := float32(v) / 255.0
	return s * s
}

// quantize maps [0,1] to [0,255] with rounding.
func quantize(s float32) uint8 {
	q := s*255.0 + 0.5
	if q >= 255 {
		return 255
	}
	//nolint:gosec // G115: q is in [0,255)
	return uint8(q)
}
