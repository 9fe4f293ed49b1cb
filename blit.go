package draw2d

import "github.com/gogpu/draw2d/internal/raster"

// AlphaThreshold is the minimum source alpha that BlitMasked copies.
const AlphaThreshold = 128

// BlitMasked copies img onto s with its top-left pixel at floor(position).
// Source pixels with alpha below AlphaThreshold are skipped; others replace
// the destination RGB outright. Parts of img outside s are discarded.
func BlitMasked(s *Surface, img *Image, position Vec2) {
	ox, okx := raster.FloorToPixel(position.X)
	oy, oky := raster.FloorToPixel(position.Y)
	if !okx || !oky {
		return
	}

	// Clip once so the copy loop needs no per-pixel bounds tests.
	x0, x1 := max(0, -ox), min(img.width, s.width-ox)
	y0, y1 := max(0, -oy), min(img.height, s.height-oy)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	n := (x1 - x0) * BytesPerPixel
	for y := y0; y < y1; y++ {
		si := img.pixelIndex(x0, y)
		di := s.PixelIndex(ox+x0, oy+y)
		src := img.pix[si : si+n]
		dst := s.pix[di : di+n]
		for i := 0; i < n; i += BytesPerPixel {
			if src[i+3] >= AlphaThreshold {
				dst[i+0] = src[i+0]
				dst[i+1] = src[i+1]
				dst[i+2] = src[i+2]
			}
		}
	}
}
