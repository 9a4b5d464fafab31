package svgfx

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other). The combined matrix applies
// other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// TransformDistance applies the transformation to a distance vector,
// ignoring translation.
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	return m.A*dx + m.B*dy, m.D*dx + m.E*dy
}

// TransformRect returns the axis-aligned bounding box of the rectangle's
// four transformed corners.
func (m Matrix) TransformRect(r Rect) Rect {
	x0, y0 := m.TransformPoint(r.MinX, r.MinY)
	x1, y1 := m.TransformPoint(r.MaxX, r.MinY)
	x2, y2 := m.TransformPoint(r.MinX, r.MaxY)
	x3, y3 := m.TransformPoint(r.MaxX, r.MaxY)

	return Rect{
		MinX: math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		MinY: math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		MaxX: math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		MaxY: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}

// Invert returns the inverse matrix. The second return value is false when
// the matrix is singular and no inverse exists.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsInvertible returns true if the matrix has a well-defined inverse.
func (m Matrix) IsInvertible() bool {
	det := m.A*m.E - m.B*m.D
	return math.Abs(det) >= 1e-10
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
