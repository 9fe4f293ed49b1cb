package draw2d

import (
	"errors"
	"fmt"
)

// LineStrip is an open polyline: N vertices joined by N-1 segments.
// It owns a copy of its vertices.
type LineStrip struct {
	vertices []Vec2
}

// NewLineStrip copies vertices into a new strip.
func NewLineStrip(vertices ...Vec2) *LineStrip {
	return &LineStrip{vertices: append([]Vec2(nil), vertices...)}
}

// VertexCount returns the number of vertices.
func (ls *LineStrip) VertexCount() int {
	return len(ls.vertices)
}

// Draw places every vertex at rot*v + trans and draws the segments in order
// with Line, in the sRGB encoding of c.
func (ls *LineStrip) Draw(s *Surface, c LinearRGB, rot Mat22, trans Vec2) {
	if len(ls.vertices) == 0 {
		return
	}
	color := LinearToSRGB(c)
	prev := rot.Transform(ls.vertices[0], trans)
	for _, v := range ls.vertices[1:] {
		cur := rot.Transform(v, trans)
		Line(s, prev, cur, color)
		prev = cur
	}
}

// Vertex is a position with a linear colour.
type Vertex struct {
	Pos   Vec2
	Color LinearRGB
}

// ErrFanLength is returned by NewTriangleFanSoA when the position and
// colour slices differ in length.
var ErrFanLength = errors.New("draw2d: triangle fan position/colour count mismatch")

// TriangleFan is a closed fan around vertex 0. Vertices P0..P(N-1) form the
// triangles (P0, Pi, Pi+1) for i = 1..N-2 plus the closing triangle
// (P0, P(N-1), P1), N-1 triangles in all. It owns copies of its vertices,
// stored as separate position and colour arrays.
type TriangleFan struct {
	pos []Vec2
	col []LinearRGB
}

// NewTriangleFan builds a fan from position/colour pairs.
func NewTriangleFan(vertices ...Vertex) *TriangleFan {
	f := &TriangleFan{
		pos: make([]Vec2, len(vertices)),
		col: make([]LinearRGB, len(vertices)),
	}
	for i, v := range vertices {
		f.pos[i] = v.Pos
		f.col[i] = v.Color
	}
	return f
}

// NewTriangleFanSoA builds a fan from parallel position and colour slices.
func NewTriangleFanSoA(positions []Vec2, colors []LinearRGB) (*TriangleFan, error) {
	if len(positions) != len(colors) {
		return nil, fmt.Errorf("%w: %d positions, %d colours", ErrFanLength, len(positions), len(colors))
	}
	return &TriangleFan{
		pos: append([]Vec2(nil), positions...),
		col: append([]LinearRGB(nil), colors...),
	}, nil
}

// VertexCount returns the number of vertices, including the centre.
func (f *TriangleFan) VertexCount() int {
	return len(f.pos)
}

// Draw places every vertex at rot*v + trans and fills each triangle with
// TriangleInterp. Fans with fewer than three vertices draw nothing.
func (f *TriangleFan) Draw(s *Surface, rot Mat22, trans Vec2) {
	if len(f.pos) < 3 {
		return
	}
	center := rot.Transform(f.pos[0], trans)
	first := rot.Transform(f.pos[1], trans)

	prev := first
	for i := 2; i < len(f.pos); i++ {
		cur := rot.Transform(f.pos[i], trans)
		TriangleInterp(s, center, prev, cur, f.col[0], f.col[i-1], f.col[i])
		prev = cur
	}
	TriangleInterp(s, center, prev, first, f.col[0], f.col[len(f.pos)-1], f.col[1])
}
