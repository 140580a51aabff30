package nanocolor

import (
	"golang.org/x/image/math/f64"
)

// Bradford transform matrices (forward and inverse)
var (
	bradford = f64.Mat3{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}
	invBradford = f64.Mat3{
		0.9869929, -0.1470543, 0.1599627,
		0.4323053, 0.5183603, 0.0492912,
		-0.0085287, 0.0400428, 0.9684867,
	}
)

// AdaptationMatrix constructs a 3x3 matrix that adapts XYZ values from
// sourceWhite to targetWhite using the Bradford method. Identical or black
// whites give the identity.
func AdaptationMatrix(sourceWhite, targetWhite XYZ) f64.Mat3 {
	if sourceWhite == targetWhite {
		return Identity
	}
	src := Apply(&bradford, sourceWhite)
	tgt := Apply(&bradford, targetWhite)
	if src[0] == 0 || src[1] == 0 || src[2] == 0 {
		return Identity
	}
	diag := Diagonal(f64.Vec3{tgt[0] / src[0], tgt[1] / src[1], tgt[2] / src[2]})
	// adapt = invB * diag * B
	return Multiply(invBradford, Multiply(diag, bradford))
}

// AdaptedRGBToRGBMatrix is RGBToRGBMatrix with a Bradford adaptation from
// the white point of src to the white point of dst inserted in CIEXYZ.
func AdaptedRGBToRGBMatrix(src, dst *ColorSpace) f64.Mat3 {
	if Equal(src, dst) {
		return Identity
	}
	adapt := AdaptationMatrix(WhitePoint(src), WhitePoint(dst))
	return Multiply(dst.xyz_to_rgb, Multiply(adapt, src.rgb_to_xyz))
}
