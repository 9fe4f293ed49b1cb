// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Point is a vertex in FDot8 coordinates.
type Point struct {
	X, Y FDot8
}

// Pt converts a float pixel position to a Point. The second result is
// false if either coordinate is NaN.
func Pt(x, y float32) (Point, bool) {
	fx, okx := FloatToFDot8(x)
	fy, oky := FloatToFDot8(y)
	return Point{X: fx, Y: fy}, okx && oky
}

// Edge is a directed triangle edge a→b with the triangle interior on its
// positive side.
//
// The edge function E(p) = dx*(p.y-a.y) - dy*(p.x-a.x) is exact in int64.
// A sample is inside the edge when E(p) >= bias. bias is 0 for top and left
// edges and 1 otherwise (the top-left rule), so a sample lying exactly on an
// edge shared by two triangles belongs to exactly one of them.
type Edge struct {
	ax, ay int64
	dx, dy int64
	bias   int64
}

// NewEdge creates the edge a→b.
func NewEdge(a, b Point) Edge {
	e := Edge{
		ax: int64(a.X),
		ay: int64(a.Y),
		dx: int64(b.X - a.X),
		dy: int64(b.Y - a.Y),
	}
	if !e.TopLeft() {
		e.bias = 1
	}
	return e
}

// TopLeft reports whether samples exactly on the edge are included.
// With y pointing down and the interior on the positive side, an edge going
// up is a left edge, and a horizontal edge going right is a top edge.
func (e Edge) TopLeft() bool {
	return e.dy < 0 || (e.dy == 0 && e.dx > 0)
}

// Eval returns the edge function at (px, py), in FDot8² units.
func (e Edge) Eval(px, py FDot8) int64 {
	return e.dx*(int64(py)-e.ay) - e.dy*(int64(px)-e.ax)
}

// Inside reports whether an edge function value admits the sample.
func (e Edge) Inside(v int64) bool {
	return v >= e.bias
}

// MinColumn returns the first pixel column whose centre on sample row yc is
// inside a left-bounding edge (dy < 0).
func (e Edge) MinColumn(yc FDot8) int {
	ady := -e.dy
	n := ady*e.ax - e.dx*(int64(yc)-e.ay) + e.bias
	return int(ceilDiv(n-ady*int64(FDot8Half), ady*int64(FDot8One)))
}

// MaxColumn returns the last pixel column whose centre on sample row yc is
// inside a right-bounding edge (dy > 0).
func (e Edge) MaxColumn(yc FDot8) int {
	m := e.dx*(int64(yc)-e.ay) + e.dy*e.ax - e.bias
	return int(floorDiv(m-e.dy*int64(FDot8Half), e.dy*int64(FDot8One)))
}
