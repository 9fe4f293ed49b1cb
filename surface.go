package draw2d

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// BytesPerPixel is the stride of one Surface pixel: R, G, B and one unused
// padding byte.
const BytesPerPixel = 4

// noCopy lets go vet's copylocks check flag accidental copies of values
// that own a pixel buffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Surface is an owned, mutable width×height buffer of sRGB pixels, row-major
// with 4 bytes per pixel (R, G, B, unused). All drawing functions write here.
//
// A Surface has a single owner and must not be copied; pass *Surface.
// It is not safe for concurrent use.
type Surface struct {
	_      noCopy
	width  int
	height int
	pix    []uint8
}

// NewSurface allocates a cleared surface. It panics if either dimension is
// negative.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.alloc(width, height)
	return s
}

func (s *Surface) alloc(width, height int) {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("draw2d: negative surface size %dx%d", width, height))
	}
	s.width = width
	s.height = height
	s.pix = make([]uint8, width*height*BytesPerPixel)
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Resize reallocates the buffer. Contents are cleared.
func (s *Surface) Resize(width, height int) {
	s.alloc(width, height)
}

// Release drops the pixel buffer. The surface is 0×0 afterwards.
func (s *Surface) Release() {
	s.width, s.height, s.pix = 0, 0, nil
}

// Clear sets every byte to zero.
func (s *Surface) Clear() {
	clear(s.pix)
}

// Fill sets every pixel to c. Padding bytes are left at zero.
func (s *Surface) Fill(c SRGB) {
	if len(s.pix) == 0 {
		return
	}
	s.pix[0], s.pix[1], s.pix[2], s.pix[3] = c.R, c.G, c.B, 0
	// Doubling copy.
	for n := BytesPerPixel; n < len(s.pix); n *= 2 {
		copy(s.pix[n:], s.pix[:n])
	}
}

// PixelIndex returns the byte offset of pixel (x, y) in Pix.
func (s *Surface) PixelIndex(x, y int) int {
	return (y*s.width + x) * BytesPerPixel
}

// SetPixel writes c at (x, y). The caller guarantees 0 <= x < Width and
// 0 <= y < Height; builds tagged draw2ddebug verify it.
func (s *Surface) SetPixel(x, y int, c SRGB) {
	if debugChecks {
		s.assertInBounds(x, y)
	}
	i := s.PixelIndex(x, y)
	p := s.pix[i : i+3 : i+3]
	p[0], p[1], p[2] = c.R, c.G, c.B
}

// Pixel returns the colour at (x, y), under the same contract as SetPixel.
func (s *Surface) Pixel(x, y int) SRGB {
	if debugChecks {
		s.assertInBounds(x, y)
	}
	i := s.PixelIndex(x, y)
	return SRGB{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2]}
}

// fillSpan writes c to pixels x0..x1 inclusive of row y, already clipped.
func (s *Surface) fillSpan(y, x0, x1 int, c SRGB) {
	if debugChecks {
		s.assertInBounds(x0, y)
		s.assertInBounds(x1, y)
	}
	row := s.pix[s.PixelIndex(x0, y):s.PixelIndex(x1+1, y)]
	for i := 0; i < len(row); i += BytesPerPixel {
		row[i+0] = c.R
		row[i+1] = c.G
		row[i+2] = c.B
	}
}

func (s *Surface) assertInBounds(x, y int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		panic(fmt.Sprintf("draw2d: pixel (%d, %d) outside %dx%d surface", x, y, s.width, s.height))
	}
}

// Pix returns the raw RGBx buffer for presentation, row 0 first. Drawing
// code must not use it; callers must not retain it across Resize or Release.
func (s *Surface) Pix() []uint8 {
	return s.pix
}

// ToImage copies the surface into an opaque image.RGBA. Row 0 becomes the
// bottom scanline, matching a texture upload of Pix, so sprites loaded with
// LoadImage appear upright.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	stride := s.width * BytesPerPixel
	for y := 0; y < s.height; y++ {
		src := s.pix[y*stride : (y+1)*stride]
		dst := img.Pix[(s.height-1-y)*img.Stride:]
		for i := 0; i < stride; i += BytesPerPixel {
			dst[i+0] = src[i+0]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = 0xff
		}
	}
	return img
}

// SavePNG writes ToImage to path as PNG.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("draw2d: create %s: %w", path, err)
	}
	if err := png.Encode(f, s.ToImage()); err != nil {
		_ = f.Close()
		return fmt.Errorf("draw2d: encode %s: %w", path, err)
	}
	return f.Close()
}
