package nanocolor

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

var (
	ErrDegeneratePrimaries = errors.New("primaries do not span a color space")
	ErrInvalidGamma        = errors.New("gamma must be a finite positive number")
	ErrInvalidLinearBias   = errors.New("linear bias must be a finite non-negative number")
)

// Primaries are the chromaticities of the red, green and blue reference
// colors of a space together with its white point.
type Primaries struct {
	Red, Green, Blue, White Chromaticity
}

// ColorSpace is an immutable description of an RGB color space. Values are
// safe to share between goroutines.
type ColorSpace struct {
	name                       string
	rgb_to_xyz, xyz_to_rgb     f64.Mat3
	gamma, linear_bias         float64
	k0, phi                    float64
	constructed_from_primaries bool
	primaries                  Primaries
	tf                         transfer
}

func (cs *ColorSpace) String() string {
	return fmt.Sprintf("ColorSpace{%s gamma: %g bias: %g}", cs.name, cs.gamma, cs.linear_bias)
}

func (cs *ColorSpace) Name() string                      { return cs.name }
func (cs *ColorSpace) RGBToXYZ() f64.Mat3                { return cs.rgb_to_xyz }
func (cs *ColorSpace) XYZToRGB() f64.Mat3                { return cs.xyz_to_rgb }
func (cs *ColorSpace) Gamma() float64                    { return cs.gamma }
func (cs *ColorSpace) LinearBias() float64               { return cs.linear_bias }
func (cs *ColorSpace) TransferParams() (k0, phi float64) { return cs.k0, cs.phi }
func (cs *ColorSpace) FromPrimaries() bool               { return cs.constructed_from_primaries }

// Primaries returns the chromaticities the space was built from. The
// second result is false for spaces built from a matrix.
func (cs *ColorSpace) Primaries() (Primaries, bool) {
	if !cs.constructed_from_primaries {
		return Primaries{}, false
	}
	return cs.primaries, true
}

// ToLinear applies the inverse transfer function of the space to v.
func (cs *ColorSpace) ToLinear(v float64) float64 {
	if cs.tf.is_linear() {
		return v
	}
	return cs.tf.to_linear(v)
}

// FromLinear applies the transfer function of the space to v.
func (cs *ColorSpace) FromLinear(v float64) float64 {
	if cs.tf.is_linear() {
		return v
	}
	return cs.tf.from_linear(v)
}

func (cs *ColorSpace) IsLinear() bool { return cs.tf.is_linear() }

func xy_to_xyz(c Chromaticity) (XYZ, bool) {
	if c[1] == 0 {
		return XYZ{}, false
	}
	return XYZ{c[0] / c[1], 1, (1 - c[0] - c[1]) / c[1]}, true
}

// MatrixFromPrimaries computes the RGB to CIEXYZ matrix for the given
// primaries, scaled so that RGB (1, 1, 1) maps to the white point with a
// luminance of one.
func MatrixFromPrimaries(p Primaries) (ans f64.Mat3, err error) {
	r, ok1 := xy_to_xyz(p.Red)
	g, ok2 := xy_to_xyz(p.Green)
	b, ok3 := xy_to_xyz(p.Blue)
	w, ok4 := xy_to_xyz(p.White)
	if !(ok1 && ok2 && ok3 && ok4) {
		return ans, ErrDegeneratePrimaries
	}
	prim := f64.Mat3{
		r[0], g[0], b[0],
		r[1], g[1], b[1],
		r[2], g[2], b[2],
	}
	inv, err := Invert(prim)
	if err != nil {
		return ans, ErrDegeneratePrimaries
	}
	s := Apply(&inv, w)
	return Multiply(prim, Diagonal(s)), nil
}

func valid_gamma(gamma float64) bool {
	return gamma > 0 && !math.IsInf(gamma, 0) && !math.IsNaN(gamma)
}

// valid_linear_bias reports whether linearBias gives a continuous transfer
// curve for gamma. A positive bias needs gamma >= 1, below that the power
// segment does not meet the linear one at zero.
func valid_linear_bias(gamma, linearBias float64) bool {
	if linearBias < 0 || math.IsInf(linearBias, 0) || math.IsNaN(linearBias) {
		return false
	}
	return linearBias == 0 || gamma >= 1
}

func new_color_space(name string, m f64.Mat3, gamma, linearBias float64) (*ColorSpace, error) {
	if !valid_gamma(gamma) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGamma, gamma)
	}
	if !valid_linear_bias(gamma, linearBias) {
		return nil, fmt.Errorf("%w: %v with gamma %v", ErrInvalidLinearBias, linearBias, gamma)
	}
	inv, err := Invert(m)
	if err != nil {
		return nil, err
	}
	ans := &ColorSpace{name: name, rgb_to_xyz: m, xyz_to_rgb: inv, gamma: gamma, linear_bias: linearBias}
	ans.k0, ans.phi = TransferParams(gamma, linearBias)
	ans.tf = new_transfer(gamma, linearBias, ans.k0, ans.phi)
	return ans, nil
}

// NewFromPrimaries creates a color space from the chromaticities of its
// primaries and white point.
func NewFromPrimaries(name string, p Primaries, gamma, linearBias float64) (*ColorSpace, error) {
	m, err := MatrixFromPrimaries(p)
	if err != nil {
		return nil, fmt.Errorf("color space %#v: %w", name, err)
	}
	ans, err := new_color_space(name, m, gamma, linearBias)
	if err != nil {
		return nil, fmt.Errorf("color space %#v: %w", name, err)
	}
	ans.constructed_from_primaries = true
	ans.primaries = p
	return ans, nil
}

// NewFromMatrix creates a color space adopting the RGB to CIEXYZ matrix m
// verbatim.
func NewFromMatrix(name string, m f64.Mat3, gamma, linearBias float64) (*ColorSpace, error) {
	ans, err := new_color_space(name, m, gamma, linearBias)
	if err != nil {
		return nil, fmt.Errorf("color space %#v: %w", name, err)
	}
	return ans, nil
}

// NewIdentity creates a linear color space whose matrix is the identity.
// It is used for names that are not registered.
func NewIdentity(name string) *ColorSpace {
	ans, _ := new_color_space(name, Identity, 1, 0)
	return ans
}

func same_bits(a, b float64) bool { return math.Float64bits(a) == math.Float64bits(b) }

// Equal reports whether a and b have the same name and bitwise identical
// numeric definitions.
func Equal(a, b *ColorSpace) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.name != b.name || a.constructed_from_primaries != b.constructed_from_primaries {
		return false
	}
	for i := range 9 {
		if !same_bits(a.rgb_to_xyz[i], b.rgb_to_xyz[i]) {
			return false
		}
	}
	return same_bits(a.gamma, b.gamma) && same_bits(a.linear_bias, b.linear_bias)
}

// RGBToXYZ linearizes rgb and maps it to CIEXYZ.
func RGBToXYZ(cs *ColorSpace, rgb RGB) XYZ {
	return Apply(&cs.rgb_to_xyz, cs.tf.to_linear3(rgb))
}

// XYZToRGB maps xyz into cs and applies its transfer function.
func XYZToRGB(cs *ColorSpace, xyz XYZ) RGB {
	return cs.tf.from_linear3(Apply(&cs.xyz_to_rgb, xyz))
}

// RGBToRGBMatrix returns the matrix taking linear RGB in src to linear
// RGB in dst.
func RGBToRGBMatrix(src, dst *ColorSpace) f64.Mat3 {
	if Equal(src, dst) {
		return Identity
	}
	return Multiply(dst.xyz_to_rgb, src.rgb_to_xyz)
}

// TransformColor converts rgb from src to dst.
func TransformColor(dst, src *ColorSpace, rgb RGB) RGB {
	if Equal(src, dst) {
		return rgb
	}
	m := RGBToRGBMatrix(src, dst)
	return TransformWithMatrix(dst, src, &m, rgb)
}

// TransformWithMatrix converts rgb from src to dst using a precomputed
// matrix from RGBToRGBMatrix.
func TransformWithMatrix(dst, src *ColorSpace, m *f64.Mat3, rgb RGB) RGB {
	return dst.tf.from_linear3(Apply(m, src.tf.to_linear3(rgb)))
}

// WhitePoint returns the CIEXYZ value of RGB (1, 1, 1) in cs.
func WhitePoint(cs *ColorSpace) XYZ {
	return Apply(&cs.rgb_to_xyz, XYZ{1, 1, 1})
}

// PrimariesFromMatrix recovers the chromaticities of the primaries and
// the white point encoded in an RGB to CIEXYZ matrix.
func PrimariesFromMatrix(m f64.Mat3) Primaries {
	return Primaries{
		Red:   ProjectToChromaticities(XYZ{m[0], m[3], m[6]}),
		Green: ProjectToChromaticities(XYZ{m[1], m[4], m[7]}),
		Blue:  ProjectToChromaticities(XYZ{m[2], m[5], m[8]}),
		White: ProjectToChromaticities(Apply(&m, XYZ{1, 1, 1})),
	}
}
