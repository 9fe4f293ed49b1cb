// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// Line walks the pixels of an 8-connected Bresenham segment between two
// integer endpoints, both inclusive.
//
// Endpoints are ordered canonically (smaller x first, then smaller y), so
// the segments a→b and b→a visit the same pixels. A zero-length segment
// visits its single pixel.
//
// The error term is an affine function of the step index, so the walk can
// Seek to any step in constant time.
type Line struct {
	// X and Y are the current pixel.
	X, Y int

	ox, oy int // first endpoint
	dx, dy int // dx >= 0, dy <= 0
	sx, sy int
	err    int

	k, last int // current and final step index
}

// NewLine starts a walk at the canonical first endpoint.
func NewLine(x0, y0, x1, y1 int) Line {
	if x0 > x1 || (x0 == x1 && y0 > y1) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	l := Line{X: x0, Y: y0, ox: x0, oy: y0, sx: 1, sy: 1}
	l.dx = x1 - x0
	if x0 == x1 {
		l.sx = -1
	}
	l.dy = y1 - y0
	if l.dy > 0 {
		l.dy = -l.dy
	} else {
		l.sy = -1
	}
	l.err = l.dx + l.dy
	l.last = max(l.dx, -l.dy)
	return l
}

// Len returns the number of pixels in the walk: max(|dx|, |dy|) + 1.
func (l *Line) Len() int {
	return max(l.dx, -l.dy) + 1
}

func (l *Line) xMajor() bool {
	return l.dx >= -l.dy
}

// Step advances to the next pixel. It returns false when the walk is
// already at its last pixel.
func (l *Line) Step() bool {
	if l.k == l.last {
		return false
	}
	e2 := 2 * l.err
	if e2 >= l.dy {
		l.err += l.dy
		l.X += l.sx
	}
	if e2 <= l.dx {
		l.err += l.dx
		l.Y += l.sy
	}
	l.k++
	return true
}

// Seek moves the walk to step k, 0 <= k < Len, leaving it in the state
// k calls to Step from the start would.
//
// The major axis advances every step. After k steps the minor axis has
// advanced floor((2k·minor + major) / (2·major)) times.
func (l *Line) Seek(k int) {
	a, b := int64(l.dx), int64(-l.dy)
	major, minor := a, b
	if !l.xMajor() {
		major, minor = b, a
	}
	var m int64
	if major > 0 {
		m = (2*int64(k)*minor + major) / (2 * major)
	}

	var xs, ys int64
	if l.xMajor() {
		xs, ys = int64(k), m
	} else {
		xs, ys = m, int64(k)
	}
	l.X = l.ox + l.sx*int(xs)
	l.Y = l.oy + l.sy*int(ys)
	l.err = int(a - b - xs*b + ys*a)
	l.k = k
}

// Clip limits the walk to the steps whose major-axis coordinate lies inside
// [0,w)×[0,h) and seeks to the first of them. It returns false if there are
// none. The minor axis is not checked.
func (l *Line) Clip(w, h int) bool {
	lo, hi := l.k, l.last
	switch {
	case l.xMajor():
		lo, hi = max(lo, -l.ox), min(hi, w-1-l.ox)
	case l.sy > 0:
		lo, hi = max(lo, -l.oy), min(hi, h-1-l.oy)
	default:
		lo, hi = max(lo, l.oy-(h-1)), min(hi, l.oy)
	}
	if lo > hi {
		return false
	}
	l.last = hi
	l.Seek(lo)
	return true
}

// Leaving reports whether the current pixel lies outside [0,w)×[0,h) on a
// side the walk is moving away from, or parallel to. No later pixel can then
// be inside.
func (l *Line) Leaving(w, h int) bool {
	fixedX := l.dx == 0
	fixedY := l.dy == 0
	switch {
	case l.X >= w && (l.sx > 0 || fixedX):
		return true
	case l.X < 0 && (l.sx < 0 || fixedX):
		return true
	case l.Y >= h && (l.sy > 0 || fixedY):
		return true
	case l.Y < 0 && (l.sy < 0 || fixedY):
		return true
	}
	return false
}

// LineEndpoints converts a segment to the integer endpoints of its pixel
// walk by truncating each coordinate toward zero. A segment reaching beyond
// ±PixelLimit is first clipped to that square along its own direction. ok
// is false for non-finite input or a segment missing the square.
func LineEndpoints(x0, y0, x1, y1 float32) (ix0, iy0, ix1, iy1 int, ok bool) {
	ax, ay, bx, by := float64(x0), float64(y0), float64(x1), float64(y1)
	for _, v := range [...]float64{ax, ay, bx, by} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	if !inPixelLimit(ax, ay) || !inPixelLimit(bx, by) {
		if ax, ay, bx, by, ok = clipSegment(ax, ay, bx, by, PixelLimit); !ok {
			return 0, 0, 0, 0, false
		}
	}
	return int(ax), int(ay), int(bx), int(by), true
}

func inPixelLimit(x, y float64) bool {
	return math.Abs(x) <= PixelLimit && math.Abs(y) <= PixelLimit
}

// clipSegment clips a→b to [-g, g]² (Liang-Barsky). Coordinates cut by a
// boundary are set to the boundary exactly.
func clipSegment(ax, ay, bx, by, g float64) (float64, float64, float64, float64, bool) {
	dx, dy := bx-ax, by-ay
	start := clipEnd{x: ax, y: ay}
	end := clipEnd{t: 1, x: bx, y: by}

	// Each boundary as p·t <= q.
	bounds := [...]struct {
		p, q float64
		yAxis bool
		v     float64
	}{
		{-dx, ax + g, false, -g},
		{dx, g - ax, false, g},
		{-dy, ay + g, true, -g},
		{dy, g - ay, true, g},
	}
	for _, b := range bounds {
		if b.p == 0 {
			if b.q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := b.q / b.p
		if b.p < 0 {
			if t > end.t {
				return 0, 0, 0, 0, false
			}
			start.cut(t, ax+t*dx, ay+t*dy, b.yAxis, b.v, t > start.t)
		} else {
			if t < start.t {
				return 0, 0, 0, 0, false
			}
			end.cut(t, ax+t*dx, ay+t*dy, b.yAxis, b.v, t < end.t)
		}
	}
	return start.x, start.y, end.x, end.y, true
}

// clipEnd is one end of a segment being clipped.
type clipEnd struct {
	t, x, y    float64
	pinX, pinY bool
}

// cut moves the end to parameter t when closer reports a tighter bound,
// and pins the coordinate of the boundary that cut it. A boundary cutting at
// the same parameter pins its coordinate too.
func (e *clipEnd) cut(t, x, y float64, yAxis bool, v float64, closer bool) {
	switch {
	case closer:
		e.t, e.x, e.y = t, x, y
		e.pinX, e.pinY = false, false
	case t != e.t || (!e.pinX && !e.pinY):
		return
	}
	if yAxis {
		e.y, e.pinY = v, true
	} else {
		e.x, e.pinX = v, true
	}
}
