package draw2d

import (
	"errors"
	"fmt"
	"image/color"

	icolor "github.com/gogpu/draw2d/internal/color"
)

// LinearRGB is a colour in linear light. Channels are nominally in [0, 1];
// values outside that range are clamped when encoded.
type LinearRGB struct {
	R, G, B float32
}

// SRGB is an 8-bit sRGB-encoded colour, the format stored in Surface pixels.
type SRGB struct {
	R, G, B uint8
}

// SRGBA is an sRGB colour with a linear 8-bit alpha, the format stored in
// Image pixels. 0 is transparent, 255 opaque.
type SRGBA struct {
	R, G, B, A uint8
}

// RGB drops the alpha channel.
func (c SRGBA) RGB() SRGB {
	return SRGB{R: c.R, G: c.G, B: c.B}
}

// Color implements conversion to the standard library colour model.
func (c SRGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Add returns the channel-wise sum.
func (c LinearRGB) Add(o LinearRGB) LinearRGB {
	return LinearRGB{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Scale multiplies every channel by s.
func (c LinearRGB) Scale(s float32) LinearRGB {
	return LinearRGB{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Lerp interpolates linearly between c and o.
func (c LinearRGB) Lerp(o LinearRGB, t float32) LinearRGB {
	return LinearRGB{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

// LinearToSRGB encodes c with the exact sRGB transfer function.
func LinearToSRGB(c LinearRGB) SRGB {
	return SRGB{R: icolor.Encode(c.R), G: icolor.Encode(c.G), B: icolor.Encode(c.B)}
}

// SRGBToLinear decodes c with the exact sRGB transfer function.
func SRGBToLinear(c SRGB) LinearRGB {
	return LinearRGB{R: icolor.Decode(c.R), G: icolor.Decode(c.G), B: icolor.Decode(c.B)}
}

// LinearToSRGBA encodes the colour channels and keeps alpha as given.
func LinearToSRGBA(c LinearRGB, alpha uint8) SRGBA {
	s := LinearToSRGB(c)
	return SRGBA{R: s.R, G: s.G, B: s.B, A: alpha}
}

// Encoding selects a linear/sRGB transfer implementation.
//
// EncodingExact is used everywhere unless a caller asks otherwise.
// The others trade accuracy for speed and are never substituted implicitly.
type Encoding uint8

const (
	// EncodingExact is the published piecewise sRGB curve.
	EncodingExact Encoding = iota
	// EncodingLUT uses lookup tables; within one step of EncodingExact.
	EncodingLUT
	// EncodingGamma24 is a pure power curve with exponent 2.4.
	EncodingGamma24
	// EncodingSquare approximates the curve by a square root.
	EncodingSquare
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingExact:
		return "exact"
	case EncodingLUT:
		return "lut"
	case EncodingGamma24:
		return "gamma2.4"
	case EncodingSquare:
		return "square"
	default:
		return fmt.Sprintf("Encoding(%d)", uint8(e))
	}
}

func (e Encoding) encoder() func(float32) uint8 {
	switch e {
	case EncodingLUT:
		return icolor.EncodeLUT
	case EncodingGamma24:
		return icolor.EncodeGamma
	case EncodingSquare:
		return icolor.EncodeSquare
	default:
		return icolor.Encode
	}
}

func (e Encoding) decoder() func(uint8) float32 {
	switch e {
	case EncodingLUT:
		return icolor.DecodeLUT
	case EncodingGamma24:
		return icolor.DecodeGamma
	case EncodingSquare:
		return icolor.DecodeSquare
	default:
		return icolor.Decode
	}
}

// Encode converts c to sRGB using e.
func (e Encoding) Encode(c LinearRGB) SRGB {
	enc := e.encoder()
	return SRGB{R: enc(c.R), G: enc(c.G), B: enc(c.B)}
}

// Decode converts c to linear light using e.
func (e Encoding) Decode(c SRGB) LinearRGB {
	dec := e.decoder()
	return LinearRGB{R: dec(c.R), G: dec(c.G), B: dec(c.B)}
}

// ErrInvalidHex is returned by ParseHex for malformed input.
var ErrInvalidHex = errors.New("draw2d: invalid hex colour")

// ParseHex parses an sRGB colour in "RGB" or "RRGGBB" form, with an
// optional leading '#'.
func ParseHex(s string) (SRGB, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [6]uint8
	switch len(hex) {
	case 3, 6:
	default:
		return SRGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return SRGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		v[i] = d
	}

	if len(hex) == 3 {
		return SRGB{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17}, nil
	}
	return SRGB{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
