// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Triangle is a set-up triangle ready for either fill strategy.
//
// Both strategies test pixel centres against the same three integer edge
// functions: Span solves them per scanline, Weights evaluates them per
// pixel. The covered pixel sets are therefore identical.
type Triangle struct {
	// Vertices sorted by y.
	v0, v1, v2 Point

	// Scanline edges. long runs v0-v2; upper and lower are the short edges
	// above and below the middle vertex. longRight reports which side the
	// long edge bounds.
	long, upper, lower Edge
	longRight          bool

	// opposite[i] is the edge facing input vertex i, in input order.
	opposite [3]Edge

	// area is twice the triangle's area in FDot8² units, always > 0.
	area int64
}

// NewTriangle sets up the triangle p0, p1, p2 in either winding.
// It returns false for zero-area triangles, which cover no pixels.
func NewTriangle(p0, p1, p2 Point) (Triangle, bool) {
	var t Triangle

	area := NewEdge(p0, p1).Eval(p2.X, p2.Y)
	switch {
	case area == 0:
		return t, false
	case area > 0:
		t.opposite = [3]Edge{NewEdge(p1, p2), NewEdge(p2, p0), NewEdge(p0, p1)}
		t.area = area
	default:
		t.opposite = [3]Edge{NewEdge(p2, p1), NewEdge(p0, p2), NewEdge(p1, p0)}
		t.area = -area
	}

	// Sort by y for the scanline walk.
	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	if p0.Y > p2.Y {
		p0, p2 = p2, p0
	}
	if p1.Y > p2.Y {
		p1, p2 = p2, p1
	}
	t.v0, t.v1, t.v2 = p0, p1, p2

	// The long edge is split at the middle vertex's y. Both halves keep the
	// long edge's own equation, so the split point is never rounded.
	cross := NewEdge(p0, p2).Eval(p1.X, p1.Y)
	if cross > 0 {
		t.long = NewEdge(p0, p2)
		t.upper = NewEdge(p1, p0)
		t.lower = NewEdge(p2, p1)
		t.longRight = true
	} else {
		t.long = NewEdge(p2, p0)
		t.upper = NewEdge(p0, p1)
		t.lower = NewEdge(p1, p2)
	}

	return t, true
}

// Area returns twice the triangle's area in FDot8² units.
func (t *Triangle) Area() int64 {
	return t.area
}

// FlatTop reports whether the two upper vertices share a y coordinate.
func (t *Triangle) FlatTop() bool {
	return t.v0.Y == t.v1.Y
}

// FlatBottom reports whether the two lower vertices share a y coordinate.
func (t *Triangle) FlatBottom() bool {
	return t.v1.Y == t.v2.Y
}

// Rows returns the half-open range of pixel rows whose centres lie within
// the triangle's vertical extent. A flat top row is included, a flat
// bottom row is not.
func (t *Triangle) Rows() (first, end int) {
	return CenterRange(t.v0.Y, t.v2.Y)
}

// Span returns the inclusive range of covered columns on row y, which must
// lie within Rows. The range is empty when x1 < x0.
func (t *Triangle) Span(y int) (x0, x1 int) {
	yc := PixelCenter(y)

	short := t.lower
	if yc < t.v1.Y {
		short = t.upper
	}

	if t.longRight {
		return short.MinColumn(yc), t.long.MaxColumn(yc)
	}
	return t.long.MinColumn(yc), short.MaxColumn(yc)
}

// Bounds returns the inclusive pixel box containing all three vertices.
func (t *Triangle) Bounds() (minX, minY, maxX, maxY int) {
	lo, hi := t.v0.X, t.v0.X
	for _, x := range [...]FDot8{t.v1.X, t.v2.X} {
		lo = min(lo, x)
		hi = max(hi, x)
	}
	return FDot8Floor(lo), FDot8Floor(t.v0.Y), FDot8Floor(hi), FDot8Floor(t.v2.Y)
}

// Weights evaluates the three edge functions at the centre of pixel (x, y).
// wi is the unnormalised barycentric weight of input vertex i; the three
// always sum to Area. inside reports whether the centre is covered.
func (t *Triangle) Weights(x, y int) (w0, w1, w2 int64, inside bool) {
	px, py := PixelCenter(x), PixelCenter(y)
	w0 = t.opposite[0].Eval(px, py)
	w1 = t.opposite[1].Eval(px, py)
	w2 = t.opposite[2].Eval(px, py)
	inside = t.opposite[0].Inside(w0) && t.opposite[1].Inside(w1) && t.opposite[2].Inside(w2)
	return w0, w1, w2, inside
}
