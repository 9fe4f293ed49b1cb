package draw2d

import "github.com/chewxy/math32"

// Mat22 is a 2×2 matrix in row-major order:
//
//	| M00  M01 |
//	| M10  M11 |
//
// Applied to a column vector: x' = M00*x + M01*y, y' = M10*x + M11*y.
type Mat22 struct {
	M00, M01 float32
	M10, M11 float32
}

// Identity returns the identity matrix.
func Identity() Mat22 {
	return Mat22{
		M00: 1, M01: 0,
		M10: 0, M11: 1,
	}
}

// Rotation returns the matrix rotating by angle radians. Surfaces present
// row 0 at the bottom, so y points up on screen and a positive angle turns
// counter-clockwise.
func Rotation(angle float32) Mat22 {
	sin, cos := math32.Sincos(angle)
	return Mat22{
		M00: cos, M01: -sin,
		M10: sin, M11: cos,
	}
}

// Mul returns m * o.
func (m Mat22) Mul(o Mat22) Mat22 {
	return Mat22{
		M00: m.M00*o.M00 + m.M01*o.M10,
		M01: m.M00*o.M01 + m.M01*o.M11,
		M10: m.M10*o.M00 + m.M11*o.M10,
		M11: m.M10*o.M01 + m.M11*o.M11,
	}
}

// MulVec returns m * v.
func (m Mat22) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.M00*v.X + m.M01*v.Y,
		Y: m.M10*v.X + m.M11*v.Y,
	}
}

// Transform returns m * v + t, the placement applied by shape aggregates.
func (m Mat22) Transform(v, t Vec2) Vec2 {
	return m.MulVec(v).Add(t)
}
