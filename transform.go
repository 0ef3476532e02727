package chartcore

import "math"

// Matrix is a 2D affine transform stored as [a, b, c, d, tx, ty].
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Points are column vectors: x' = a*x + c*y + tx, y' = b*x + d*y + ty.
type Matrix [6]float64

// Identity is the identity affine matrix.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// TranslateMatrix returns a pure translation.
func TranslateMatrix(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// ScaleMatrix returns a pure scale about the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// ScaleX returns the horizontal scale component.
func (m Matrix) ScaleX() float64 { return m[0] }

// ScaleY returns the vertical scale component.
func (m Matrix) ScaleY() float64 { return m[3] }

// TransX returns the horizontal translation component.
func (m Matrix) TransX() float64 { return m[4] }

// TransY returns the vertical translation component.
func (m Matrix) TransY() float64 { return m[5] }

// Translated returns m with a translation applied before it (m * T).
func (m Matrix) Translated(tx, ty float64) Matrix {
	return multiplyAffine(m, TranslateMatrix(tx, ty))
}

// Scaled returns m with a scale applied before it (m * S).
func (m Matrix) Scaled(sx, sy float64) Matrix {
	return multiplyAffine(m, ScaleMatrix(sx, sy))
}

// Concat returns the transform that applies m first and then n (n * m).
func (m Matrix) Concat(n Matrix) Matrix {
	return multiplyAffine(n, m)
}

// Inverted returns the inverse of m, or Identity if m is singular.
func (m Matrix) Inverted() Matrix {
	return invertAffine(m)
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return transformPoint(m, x, y)
}

// IsFinite reports whether every component is a finite number.
func (m Matrix) IsFinite() bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c Matrix) Matrix {
	return Matrix{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
func invertAffine(m Matrix) Matrix {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
