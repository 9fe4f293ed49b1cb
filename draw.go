package draw2d

import "github.com/gogpu/draw2d/internal/raster"

// Every primitive clips against the surface and silently discards pixels
// that fall outside it, so a primitive partly off the surface draws the
// on-screen part of the whole shape. Non-finite coordinates draw nothing.

// Line draws the 8-connected Bresenham segment between begin and end, both
// inclusive, with each endpoint coordinate truncated toward zero. Line(a, b)
// and Line(b, a) touch the same pixels; a zero-length segment draws a single
// pixel.
func Line(s *Surface, begin, end Vec2, c SRGB) {
	x0, y0, x1, y1, ok := raster.LineEndpoints(begin.X, begin.Y, end.X, end.Y)
	if !ok {
		return
	}

	w, h := s.width, s.height
	switch {
	case x0 < 0 && x1 < 0, x0 >= w && x1 >= w:
		return
	case y0 < 0 && y1 < 0, y0 >= h && y1 >= h:
		return
	}

	l := raster.NewLine(x0, y0, x1, y1)
	if !l.Clip(w, h) {
		return
	}
	for {
		if uint(l.X) < uint(w) && uint(l.Y) < uint(h) {
			s.SetPixel(l.X, l.Y, c)
		} else if l.Leaving(w, h) {
			return
		}
		if !l.Step() {
			return
		}
	}
}

// TriangleWireframe draws the three edges p0-p1, p1-p2 and p2-p0 with Line.
func TriangleWireframe(s *Surface, p0, p1, p2 Vec2, c SRGB) {
	Line(s, p0, p1, c)
	Line(s, p1, p2, c)
	Line(s, p2, p0, c)
}

func corner(p Vec2, c LinearRGB) raster.Corner {
	return raster.Corner{X: float64(p.X), Y: float64(p.Y), Attr: [3]float32{c.R, c.G, c.B}}
}

func cornerColor(c *raster.Corner) LinearRGB {
	return LinearRGB{R: c.Attr[0], G: c.Attr[1], B: c.Attr[2]}
}

// setupTriangle snaps the triangle to the raster grid, clipping it to the
// guard band first if it reaches past it.
func setupTriangle(buf *[raster.MaxPieces]raster.Piece, p0, p1, p2 Vec2, c0, c1, c2 LinearRGB) []raster.Piece {
	return raster.ClipTriangle(buf[:0], corner(p0, c0), corner(p1, c1), corner(p2, c2))
}

// TriangleSolid fills every pixel whose centre lies inside the triangle,
// scanline by scanline. Centres exactly on an edge belong to the triangle
// only if the edge is a top or left edge, so triangles sharing an edge cover
// each pixel along it exactly once. Zero-area triangles draw nothing.
// Either winding is accepted.
func TriangleSolid(s *Surface, p0, p1, p2 Vec2, c SRGB) {
	var buf [raster.MaxPieces]raster.Piece
	pieces := setupTriangle(&buf, p0, p1, p2, LinearRGB{}, LinearRGB{}, LinearRGB{})
	for i := range pieces {
		tri := &pieces[i].Tri
		first, end := tri.Rows()
		first, end = max(first, 0), min(end, s.height)
		for y := first; y < end; y++ {
			x0, x1 := tri.Span(y)
			x0, x1 = max(x0, 0), min(x1, s.width-1)
			if x0 <= x1 {
				s.fillSpan(y, x0, x1, c)
			}
		}
	}
}

// TriangleInterp fills the same pixels as TriangleSolid, colouring each by
// barycentric interpolation of the vertex colours in linear light, encoded
// with the exact sRGB curve.
func TriangleInterp(s *Surface, p0, p1, p2 Vec2, c0, c1, c2 LinearRGB) {
	TriangleInterpEncoded(s, p0, p1, p2, c0, c1, c2, EncodingExact)
}

// TriangleInterpEncoded is TriangleInterp with an explicit sRGB encoding.
func TriangleInterpEncoded(s *Surface, p0, p1, p2 Vec2, c0, c1, c2 LinearRGB, enc Encoding) {
	var buf [raster.MaxPieces]raster.Piece
	pieces := setupTriangle(&buf, p0, p1, p2, c0, c1, c2)
	uniform := c0 == c1 && c1 == c2
	encode := enc.encoder()
	for i := range pieces {
		p := &pieces[i]
		if uniform {
			interpPiece(s, p, nil, enc.Encode(c0))
		} else {
			interpPiece(s, p, encode, SRGB{})
		}
	}
}

// interpPiece fills one piece, with colour flat when encode is nil.
func interpPiece(s *Surface, p *raster.Piece, encode func(float32) uint8, flat SRGB) {
	tri := &p.Tri
	minX, minY, maxX, maxY := tri.Bounds()
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, s.width-1), min(maxY, s.height-1)

	if encode == nil {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if _, _, _, in := tri.Weights(x, y); in {
					s.SetPixel(x, y, flat)
				}
			}
		}
		return
	}

	c0, c1, c2 := cornerColor(&p.C[0]), cornerColor(&p.C[1]), cornerColor(&p.C[2])
	inv := 1 / float64(tri.Area())
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0, w1, w2, in := tri.Weights(x, y)
			if !in {
				continue
			}
			b0 := float32(float64(w0) * inv)
			b1 := float32(float64(w1) * inv)
			b2 := float32(float64(w2) * inv)
			s.SetPixel(x, y, SRGB{
				R: encode(c0.R*b0 + c1.R*b1 + c2.R*b2),
				G: encode(c0.G*b0 + c1.G*b1 + c2.G*b2),
				B: encode(c0.B*b0 + c1.B*b1 + c2.B*b2),
			})
		}
	}
}

// rectSpan returns the clipped half-open pixel range whose centres lie in
// [min(a, b), max(a, b)).
func rectSpan(a, b float32, limit int) (first, end int, ok bool) {
	fa, oka := raster.FloatToFDot8(a)
	fb, okb := raster.FloatToFDot8(b)
	if !oka || !okb {
		return 0, 0, false
	}
	first, end = raster.CenterRange(min(fa, fb), max(fa, fb))
	first, end = max(first, 0), min(end, limit)
	return first, end, first < end
}

// RectangleSolid fills the axis-aligned box spanned by two opposite corners,
// covering the pixels whose centres lie inside it. This matches splitting
// the box into two triangles.
func RectangleSolid(s *Surface, minCorner, maxCorner Vec2, c SRGB) {
	x0, x1, okx := rectSpan(minCorner.X, maxCorner.X, s.width)
	y0, y1, oky := rectSpan(minCorner.Y, maxCorner.Y, s.height)
	if !okx || !oky {
		return
	}
	for y := y0; y < y1; y++ {
		s.fillSpan(y, x0, x1-1, c)
	}
}

// RectangleOutline draws the one-pixel border ring of the pixels
// RectangleSolid would fill.
func RectangleOutline(s *Surface, minCorner, maxCorner Vec2, c SRGB) {
	fx0, ok0 := raster.FloatToFDot8(minCorner.X)
	fx1, ok1 := raster.FloatToFDot8(maxCorner.X)
	fy0, ok2 := raster.FloatToFDot8(minCorner.Y)
	fy1, ok3 := raster.FloatToFDot8(maxCorner.Y)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return
	}
	left, right := raster.CenterRange(min(fx0, fx1), max(fx0, fx1))
	top, bottom := raster.CenterRange(min(fy0, fy1), max(fy0, fy1))
	if left >= right || top >= bottom {
		return
	}
	right--
	bottom--

	w, h := s.width, s.height
	x0, x1 := max(left, 0), min(right, w-1)
	if x0 <= x1 {
		if top >= 0 && top < h {
			s.fillSpan(top, x0, x1, c)
		}
		if bottom != top && bottom >= 0 && bottom < h {
			s.fillSpan(bottom, x0, x1, c)
		}
	}

	y0, y1 := max(top+1, 0), min(bottom-1, h-1)
	for y := y0; y <= y1; y++ {
		if left >= 0 && left < w {
			s.SetPixel(left, y, c)
		}
		if right != left && right >= 0 && right < w {
			s.SetPixel(right, y, c)
		}
	}
}
