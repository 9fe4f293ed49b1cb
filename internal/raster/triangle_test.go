// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math/rand"
	"testing"
)

type pixel struct{ x, y int }

// spanCoverage returns the pixels Span covers inside a w×h window.
func spanCoverage(tri *Triangle, w, h int) map[pixel]bool {
	got := make(map[pixel]bool)
	first, end := tri.Rows()
	for y := max(first, 0); y < min(end, h); y++ {
		x0, x1 := tri.Span(y)
		for x := max(x0, 0); x <= min(x1, w-1); x++ {
			got[pixel{x, y}] = true
		}
	}
	return got
}

// weightCoverage returns the pixels Weights reports inside a w×h window.
func weightCoverage(tri *Triangle, w, h int) map[pixel]bool {
	got := make(map[pixel]bool)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if _, _, _, in := tri.Weights(x, y); in {
				got[pixel{x, y}] = true
			}
		}
	}
	return got
}

func sameCoverage(a, b map[pixel]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

func TestNewTriangleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		p    [3][2]float32
	}{
		{"same vertex", [3][2]float32{{21, 29}, {221, 129}, {21, 29}}},
		{"collinear horizontal", [3][2]float32{{120, 120}, {200, 120}, {160, 120}}},
		{"collinear diagonal", [3][2]float32{{0, 0}, {5, 5}, {10, 10}}},
		{"single point", [3][2]float32{{3, 3}, {3, 3}, {3, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NewTriangle(
				mustPt(t, tt.p[0][0], tt.p[0][1]),
				mustPt(t, tt.p[1][0], tt.p[1][1]),
				mustPt(t, tt.p[2][0], tt.p[2][1]),
			)
			if ok {
				t.Error("NewTriangle() ok = true for a zero-area triangle")
			}
		})
	}
}

// The scanline spans and the per-pixel edge test are two evaluations of
// the same edge functions and must cover identical pixels.
func TestSpanMatchesWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const w, h = 48, 36

	coord := func(i int, limit float32) float32 {
		switch i % 3 {
		case 0:
			return rng.Float32()*(limit+12) - 6
		case 1:
			return float32(rng.Intn(int(limit)*2+8)-4) * 0.5
		default:
			return float32(rng.Intn(int(limit)+6) - 3)
		}
	}

	for i := 0; i < 2000; i++ {
		p0 := mustPt(t, coord(i, w), coord(i, h))
		p1 := mustPt(t, coord(i, w), coord(i, h))
		p2 := mustPt(t, coord(i, w), coord(i, h))
		tri, ok := NewTriangle(p0, p1, p2)
		if !ok {
			continue
		}
		spans := spanCoverage(&tri, w, h)
		weights := weightCoverage(&tri, w, h)
		if !sameCoverage(spans, weights) {
			t.Fatalf("triangle %v %v %v: span covers %d pixels, weights cover %d",
				p0, p1, p2, len(spans), len(weights))
		}
	}
}

func TestTriangleWindingIndependent(t *testing.T) {
	p0, p1, p2 := mustPt(t, 10, 5), mustPt(t, 300, 50), mustPt(t, 17, 210)
	cw, ok1 := NewTriangle(p0, p1, p2)
	ccw, ok2 := NewTriangle(p0, p2, p1)
	if !ok1 || !ok2 {
		t.Fatal("NewTriangle rejected a valid triangle")
	}
	if cw.Area() != ccw.Area() || cw.Area() <= 0 {
		t.Errorf("Area() = %d and %d, want equal and positive", cw.Area(), ccw.Area())
	}
	if !sameCoverage(spanCoverage(&cw, 320, 240), spanCoverage(&ccw, 320, 240)) {
		t.Error("coverage depends on winding")
	}
}

func TestWeightsSumToArea(t *testing.T) {
	tri, _ := NewTriangle(mustPt(t, 1.25, 15), mustPt(t, 1, 1.5), mustPt(t, 15, 1))
	for y := -2; y < 18; y++ {
		for x := -2; x < 18; x++ {
			w0, w1, w2, _ := tri.Weights(x, y)
			if w0+w1+w2 != tri.Area() {
				t.Fatalf("Weights(%d, %d) sum %d, want %d", x, y, w0+w1+w2, tri.Area())
			}
		}
	}
}

func TestWeightsAtVertex(t *testing.T) {
	// Vertex 1 sits exactly on the centre of pixel (4, 2).
	tri, _ := NewTriangle(mustPt(t, 0.5, 10.5), mustPt(t, 4.5, 2.5), mustPt(t, 9.5, 10.5))
	w0, w1, w2, _ := tri.Weights(4, 2)
	if w0 != 0 || w2 != 0 || w1 != tri.Area() {
		t.Errorf("Weights at vertex 1 = (%d, %d, %d), want (0, %d, 0)", w0, w1, w2, tri.Area())
	}
}

func TestFlatShapes(t *testing.T) {
	flatTop, _ := NewTriangle(mustPt(t, 0, 0), mustPt(t, 8, 0), mustPt(t, 4, 8))
	if !flatTop.FlatTop() || flatTop.FlatBottom() {
		t.Error("flat-top triangle misclassified")
	}
	flatBottom, _ := NewTriangle(mustPt(t, 4, 0), mustPt(t, 0, 8), mustPt(t, 8, 8))
	if flatBottom.FlatTop() || !flatBottom.FlatBottom() {
		t.Error("flat-bottom triangle misclassified")
	}

	// A flat top row is covered, a flat bottom row is not.
	first, end := flatTop.Rows()
	if first != 0 || end != 8 {
		t.Errorf("flat-top Rows() = [%d, %d), want [0, 8)", first, end)
	}
	if x0, x1 := flatTop.Span(0); x0 != 0 || x1 != 7 {
		t.Errorf("flat-top Span(0) = [%d, %d], want [0, 7]", x0, x1)
	}
	first, end = flatBottom.Rows()
	if first != 0 || end != 8 {
		t.Errorf("flat-bottom Rows() = [%d, %d), want [0, 8)", first, end)
	}
}

// Two triangles splitting a quad along a diagonal cover every pixel of the
// quad exactly once.
func TestAdjacentTrianglesPartition(t *testing.T) {
	quads := [][4][2]float32{
		{{10, 10}, {30, 10}, {30, 25}, {10, 25}},
		{{50, 50}, {450, 50}, {650, 250}, {250, 250}},
		{{3.3, 1.7}, {40.2, 6.1}, {35.9, 33.3}, {0.4, 28.8}},
	}
	for _, q := range quads {
		a, b, c, d := mustPt(t, q[0][0], q[0][1]), mustPt(t, q[1][0], q[1][1]),
			mustPt(t, q[2][0], q[2][1]), mustPt(t, q[3][0], q[3][1])
		t1, _ := NewTriangle(a, b, c)
		t2, _ := NewTriangle(a, c, d)
		c1 := spanCoverage(&t1, 700, 300)
		c2 := spanCoverage(&t2, 700, 300)
		for p := range c1 {
			if c2[p] {
				t.Fatalf("quad %v: pixel %v covered twice", q, p)
			}
		}
		if len(c1) == 0 || len(c2) == 0 {
			t.Fatalf("quad %v: empty half", q)
		}
	}
}

// Splitting an axis-aligned box into two triangles covers exactly the
// pixels whose centres lie in the box.
func TestBoxSplitNoGaps(t *testing.T) {
	a, b, c, d := mustPt(t, 10, 10), mustPt(t, 30, 10), mustPt(t, 30, 25), mustPt(t, 10, 25)
	t1, _ := NewTriangle(a, b, c)
	t2, _ := NewTriangle(a, c, d)
	c1 := spanCoverage(&t1, 64, 64)
	c2 := spanCoverage(&t2, 64, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			want := x >= 10 && x < 30 && y >= 10 && y < 25
			got := c1[pixel{x, y}] || c2[pixel{x, y}]
			if got != want {
				t.Fatalf("pixel (%d, %d) covered=%v, want %v", x, y, got, want)
			}
		}
	}
}

func BenchmarkSpan(b *testing.B) {
	p0, _ := Pt(10, 5)
	p1, _ := Pt(300, 50)
	p2, _ := Pt(17, 210)
	tri, _ := NewTriangle(p0, p1, p2)
	first, end := tri.Rows()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for y := first; y < end; y++ {
			_, _ = tri.Span(y)
		}
	}
}
