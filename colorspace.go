package gfcolor

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
	"sync"

	"github.com/kovidgoyal/gfcolor/nanocolor"
	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// Canonical color space names.
const (
	ACEScg          = nanocolor.ACEScg
	AdobeRGB        = nanocolor.AdobeRGB
	G18AP1          = nanocolor.G18AP1
	G18Rec709       = nanocolor.G18Rec709
	G22AdobeRGB     = nanocolor.G22AdobeRGB
	G22AP1          = nanocolor.G22AP1
	G22Rec709       = nanocolor.G22Rec709
	Identity        = nanocolor.IdentityName
	LinearAdobeRGB  = nanocolor.LinearAdobeRGB
	LinearAP0       = nanocolor.LinearAP0
	LinearAP1       = nanocolor.LinearAP1
	LinearCIEXYZD65 = nanocolor.LinearCIEXYZD65
	LinearDisplayP3 = nanocolor.LinearDisplayP3
	LinearRec2020   = nanocolor.LinearRec2020
	LinearRec709    = nanocolor.LinearRec709
	Raw             = nanocolor.Raw
	SRGB            = nanocolor.SRGB
	SRGBDisplayP3   = nanocolor.SRGBDisplayP3
	SRGBTexture     = nanocolor.SRGBTexture
)

// Primaries are the chromaticities of the red, green and blue primaries and
// of the white point of a color space.
type Primaries = nanocolor.Primaries

var default_space = sync.OnceValue(func() *nanocolor.ColorSpace {
	cs, _ := nanocolor.Lookup(LinearRec709)
	return cs
})

// ColorSpace is an immutable, freely copyable description of an RGB color
// space. The zero value is the linear Rec.709 space.
type ColorSpace struct {
	data *nanocolor.ColorSpace
}

// NewColorSpace returns the linear Rec.709 color space.
func NewColorSpace() ColorSpace { return ColorSpace{data: default_space()} }

// NewNamedColorSpace returns the color space registered under name in the
// default registry. Names that are not registered produce an identity
// space (identity matrix, gamma 1, no linear bias) that carries the name,
// use IsConstructableColorSpace to tell the two apart.
func NewNamedColorSpace(name string) ColorSpace {
	return DefaultRegistry().Named(name)
}

// IsConstructableColorSpace reports whether name is registered in the
// default registry.
func IsConstructableColorSpace(name string) bool {
	return DefaultRegistry().IsConstructable(name)
}

// NewColorSpaceFromPrimaries builds a color space from the chromaticities
// of its primaries and white point and the parameters of its transfer
// function.
func NewColorSpaceFromPrimaries(name string, red, green, blue, whitePoint f64.Vec2, gamma, linearBias float64) (ColorSpace, error) {
	p := Primaries{Red: red, Green: green, Blue: blue, White: whitePoint}
	cs, err := nanocolor.NewFromPrimaries(name, p, gamma, linearBias)
	if err != nil {
		return ColorSpace{}, err
	}
	return ColorSpace{data: cs}, nil
}

// NewColorSpaceFromMatrix builds a color space whose RGB to CIEXYZ matrix
// is rgbToXYZ, adopted verbatim.
func NewColorSpaceFromMatrix(name string, rgbToXYZ f64.Mat3, gamma, linearBias float64) (ColorSpace, error) {
	cs, err := nanocolor.NewFromMatrix(name, rgbToXYZ, gamma, linearBias)
	if err != nil {
		return ColorSpace{}, err
	}
	return ColorSpace{data: cs}, nil
}

// Definition returns the underlying color-math description, for use with
// the functions of the nanocolor package.
func (cs ColorSpace) Definition() *nanocolor.ColorSpace {
	if cs.data == nil {
		return default_space()
	}
	return cs.data
}

func (cs ColorSpace) Name() string        { return cs.Definition().Name() }
func (cs ColorSpace) RGBToXYZ() f64.Mat3  { return cs.Definition().RGBToXYZ() }
func (cs ColorSpace) Gamma() float64      { return cs.Definition().Gamma() }
func (cs ColorSpace) LinearBias() float64 { return cs.Definition().LinearBias() }

// TransferFunctionParams returns the breakpoint K0 of the transfer curve
// and the slope phi of its linear segment.
func (cs ColorSpace) TransferFunctionParams() (k0, phi float64) {
	return cs.Definition().TransferParams()
}

func (cs ColorSpace) IsConstructedFromPrimaries() bool { return cs.Definition().FromPrimaries() }

// Primaries returns the chromaticities the space was built from. ok is
// false for spaces built from a matrix.
func (cs ColorSpace) Primaries() (p Primaries, ok bool) { return cs.Definition().Primaries() }

// DerivedPrimaries returns the chromaticities of the primaries and white
// point implied by the RGB to CIEXYZ matrix, for any space.
func (cs ColorSpace) DerivedPrimaries() Primaries {
	return nanocolor.PrimariesFromMatrix(cs.RGBToXYZ())
}

// RGBToRGB returns the matrix converting linear RGB in cs to linear RGB in
// target.
func (cs ColorSpace) RGBToRGB(target ColorSpace) f64.Mat3 {
	return DefaultRegistry().Transformer(cs, target).Matrix()
}

// Equal reports whether both spaces have the same name and bitwise
// identical matrices and transfer parameters.
func (cs ColorSpace) Equal(o ColorSpace) bool {
	return nanocolor.Equal(cs.Definition(), o.Definition())
}

func (cs ColorSpace) String() string {
	d := cs.Definition()
	return fmt.Sprintf("ColorSpace{%s gamma: %g linear_bias: %g}", d.Name(), d.Gamma(), d.LinearBias())
}

var hash_seed = maphash.MakeSeed()

// Hash returns a structural hash over the name, the primaries flag, the
// matrix and the transfer parameters. Equal spaces hash equally within a
// process.
func (cs ColorSpace) Hash() uint64 {
	k := key_for(cs)
	var h maphash.Hash
	h.SetSeed(hash_seed)
	h.WriteString(k.name)
	buf := make([]byte, 0, 2+len(k.matrix)*8+16)
	buf = append(buf, 0, IfElse[byte](k.from_primaries, 1, 0))
	for _, v := range k.matrix {
		buf = binary.LittleEndian.AppendUint64(buf, v)
	}
	buf = binary.LittleEndian.AppendUint64(buf, k.gamma)
	buf = binary.LittleEndian.AppendUint64(buf, k.linear_bias)
	h.Write(buf)
	return h.Sum64()
}

// space_key is a comparable form of a color space matching Equal
type space_key struct {
	name               string
	from_primaries     bool
	matrix             [9]uint64
	gamma, linear_bias uint64
}

func key_for(cs ColorSpace) (k space_key) {
	d := cs.Definition()
	k.name = d.Name()
	k.from_primaries = d.FromPrimaries()
	for i, v := range d.RGBToXYZ() {
		k.matrix[i] = math.Float64bits(v)
	}
	k.gamma = math.Float64bits(d.Gamma())
	k.linear_bias = math.Float64bits(d.LinearBias())
	return
}

func IfElse[T any](condition bool, if_val T, else_val T) T {
	if condition {
		return if_val
	}
	return else_val
}
