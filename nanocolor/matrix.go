package nanocolor

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// Chromaticity is a CIE 1931 (x, y) chromaticity coordinate.
type Chromaticity = f64.Vec2

// XYZ is an absolute CIE XYZ tristimulus value.
type XYZ = f64.Vec3

// RGB is a triplet of RGB components in some color space.
type RGB = f64.Vec3

// Yxy is a chromaticity coordinate together with a luminance.
type Yxy struct {
	Y  float64
	XY Chromaticity
}

var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// Identity is the 3x3 identity matrix.
var Identity = f64.Mat3{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

func is_identity_matrix(m *f64.Mat3) bool {
	return *m == Identity
}

// Multiply returns a*b.
func Multiply(a, b f64.Mat3) (out f64.Mat3) {
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i*3+k] * b[k*3+j]
			}
			out[i*3+j] = sum
		}
	}
	return
}

// Apply returns m*v.
func Apply(m *f64.Mat3, v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func determinant(m *f64.Mat3) float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Invert returns the inverse of m or ErrSingularMatrix.
func Invert(m f64.Mat3) (ans f64.Mat3, err error) {
	if is_identity_matrix(&m) {
		return Identity, nil
	}
	det := determinant(&m)
	if det == 0 {
		return ans, ErrSingularMatrix
	}
	invDet := 1 / det
	adj := f64.Mat3{
		m[4]*m[8] - m[5]*m[7],
		m[2]*m[7] - m[1]*m[8],
		m[1]*m[5] - m[2]*m[4],

		m[5]*m[6] - m[3]*m[8],
		m[0]*m[8] - m[2]*m[6],
		m[2]*m[3] - m[0]*m[5],

		m[3]*m[7] - m[4]*m[6],
		m[1]*m[6] - m[0]*m[7],
		m[0]*m[4] - m[1]*m[3],
	}
	for i := range 9 {
		ans[i] = invDet * adj[i]
	}
	return
}

// Diagonal returns a matrix with d on the diagonal.
func Diagonal(d f64.Vec3) f64.Mat3 {
	return f64.Mat3{
		d[0], 0, 0,
		0, d[1], 0,
		0, 0, d[2],
	}
}
