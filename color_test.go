package draw2d

import (
	"errors"
	"testing"
)

func TestLinearToSRGBReference(t *testing.T) {
	tests := []struct {
		in   LinearRGB
		want SRGB
	}{
		{LinearRGB{0.5, 0.5, 0.5}, SRGB{188, 188, 188}},
		{LinearRGB{0.212, 0.051, 0.527}, SRGB{127, 64, 192}},
		{LinearRGB{0, 0, 0}, SRGB{0, 0, 0}},
		{LinearRGB{1, 1, 1}, SRGB{255, 255, 255}},
		{LinearRGB{-3, 2, 1.0001}, SRGB{0, 255, 255}},
	}
	for _, tt := range tests {
		if got := LinearToSRGB(tt.in); got != tt.want {
			t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := SRGB{uint8(v), uint8(255 - v), uint8(v / 2)}
		if got := LinearToSRGB(SRGBToLinear(c)); got != c {
			t.Fatalf("LinearToSRGB(SRGBToLinear(%v)) = %v", c, got)
		}
	}
}

func TestLinearToSRGBAKeepsAlpha(t *testing.T) {
	got := LinearToSRGBA(LinearRGB{0.5, 0, 1}, 128)
	if want := (SRGBA{188, 0, 255, 128}); got != want {
		t.Errorf("LinearToSRGBA() = %v, want %v", got, want)
	}
	if got.RGB() != (SRGB{188, 0, 255}) {
		t.Errorf("RGB() = %v, want {188 0 255}", got.RGB())
	}
}

func TestEncodingString(t *testing.T) {
	tests := []struct {
		e    Encoding
		want string
	}{
		{EncodingExact, "exact"},
		{EncodingLUT, "lut"},
		{EncodingGamma24, "gamma2.4"},
		{EncodingSquare, "square"},
		{Encoding(9), "Encoding(9)"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("Encoding(%d).String() = %q, want %q", uint8(tt.e), got, tt.want)
		}
	}
}

func TestEncodings(t *testing.T) {
	half := LinearRGB{0.5, 0.5, 0.5}
	tests := []struct {
		e    Encoding
		want uint8
	}{
		{EncodingExact, 188},
		{EncodingLUT, 188},
		{EncodingGamma24, 191},
		{EncodingSquare, 180},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			got := tt.e.Encode(half)
			if got.R != tt.want || got.G != tt.want || got.B != tt.want {
				t.Errorf("Encode(0.5) = %v, want %d", got, tt.want)
			}
			back := tt.e.Decode(got)
			if d := back.R - 0.5; d > 0.01 || d < -0.01 {
				t.Errorf("Decode(Encode(0.5)).R = %v, want about 0.5", back.R)
			}
		})
	}
}

func TestLinearArithmetic(t *testing.T) {
	a := LinearRGB{0.2, 0.4, 0.6}
	b := LinearRGB{0.6, 0.2, 0.0}
	if got := a.Lerp(b, 0.5); !nearLinear(got, LinearRGB{0.4, 0.3, 0.3}) {
		t.Errorf("Lerp = %v", got)
	}
	if got := a.Add(b).Scale(0.5); !nearLinear(got, LinearRGB{0.4, 0.3, 0.3}) {
		t.Errorf("Add.Scale = %v", got)
	}
}

func nearLinear(a, b LinearRGB) bool {
	const eps = 1e-6
	near := func(x, y float32) bool { return x-y < eps && y-x < eps }
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    SRGB
		wantErr bool
	}{
		{"#ff8000", SRGB{255, 128, 0}, false},
		{"10a0Ff", SRGB{16, 160, 255}, false},
		{"#fff", SRGB{255, 255, 255}, false},
		{"abc", SRGB{170, 187, 204}, false},
		{"", SRGB{}, true},
		{"#12345", SRGB{}, true},
		{"#ggg", SRGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidHex) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseHex(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}
