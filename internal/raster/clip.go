// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// Corner is a triangle vertex in pixel units with attributes that are
// interpolated across clipping.
type Corner struct {
	X, Y float64
	Attr [3]float32
}

// Piece is one triangle of a clipped primitive. C holds its corners in the
// order Tri.Weights reports them.
type Piece struct {
	Tri Triangle
	C   [3]Corner
}

// A triangle clipped by four planes has at most seven corners and splits
// into at most five pieces.
const (
	maxClipCorners = 7
	MaxPieces      = maxClipCorners - 2
)

// ClipTriangle appends the pieces covering triangle p0, p1, p2 to dst.
//
// A triangle inside the guard band (±CoordLimit) yields a single piece
// identical to NewTriangle. A larger one is clipped to the band and the
// resulting convex polygon is split into a fan. Clip points lie on the
// original edges up to 1/256 px snapping, far from any surface, and pieces
// share their diagonals exactly, so on-screen coverage is that of the
// unclipped triangle. Zero-area pieces are dropped.
// Nothing is appended for non-finite input.
func ClipTriangle(dst []Piece, p0, p1, p2 Corner) []Piece {
	poly := []Corner{p0, p1, p2}
	inside := true
	for _, c := range poly {
		if !finite(c.X) || !finite(c.Y) {
			return dst
		}
		if math.Abs(c.X) > CoordLimit || math.Abs(c.Y) > CoordLimit {
			inside = false
		}
	}

	if !inside {
		var front, back [maxClipCorners]Corner
		poly = clipPlane(front[:0], poly, 0, -1)
		poly = clipPlane(back[:0], poly, 0, 1)
		poly = clipPlane(front[:0], poly, 1, -1)
		poly = clipPlane(back[:0], poly, 1, 1)
	}

	for i := 1; i+1 < len(poly); i++ {
		a, b, c := poly[0], poly[i], poly[i+1]
		tri, ok := NewTriangle(a.point(), b.point(), c.point())
		if ok {
			dst = append(dst, Piece{Tri: tri, C: [3]Corner{a, b, c}})
		}
	}
	return dst
}

// clipPlane keeps the part of src on the inner side of the plane
// axis = sign·CoordLimit (Sutherland-Hodgman).
func clipPlane(dst, src []Corner, axis int, sign float64) []Corner {
	for i := range src {
		a, b := &src[i], &src[(i+1)%len(src)]
		da, db := a.dist(axis, sign), b.dist(axis, sign)
		if da >= 0 {
			dst = append(dst, *a)
		}
		if (da >= 0) != (db >= 0) {
			dst = append(dst, lerpCorner(a, b, da/(da-db), axis, sign*CoordLimit))
		}
	}
	return dst
}

// dist is the signed distance to the plane, positive inside.
func (c *Corner) dist(axis int, sign float64) float64 {
	v := c.X
	if axis == 1 {
		v = c.Y
	}
	return CoordLimit - sign*v
}

// lerpCorner returns the point a + t(b-a), with the coordinate on axis
// pinned to the plane value.
func lerpCorner(a, b *Corner, t float64, axis int, plane float64) Corner {
	c := Corner{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
	if axis == 0 {
		c.X = plane
	} else {
		c.Y = plane
	}
	tf := float32(t)
	for i := range c.Attr {
		c.Attr[i] = a.Attr[i] + tf*(b.Attr[i]-a.Attr[i])
	}
	return c
}

func (c *Corner) point() Point {
	return Point{X: float64ToFDot8(c.X), Y: float64ToFDot8(c.Y)}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
