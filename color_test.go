package gfcolor

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

func assert_vec3(t *testing.T, expected, actual f64.Vec3, delta float64, msgAndArgs ...any) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, msgAndArgs...)
	}
}

func TestColorConstruction(t *testing.T) {
	c := NewColor()
	require.Equal(t, f64.Vec3{1, 1, 1}, c.RGB())
	require.Equal(t, LinearRec709, c.ColorSpace().Name())

	srgb := NewNamedColorSpace(SRGB)
	c = NewColorInSpace(srgb)
	require.Equal(t, f64.Vec3{}, c.RGB())
	require.True(t, c.ColorSpace().Equal(srgb))

	c = NewColorRGB(f64.Vec3{0.5, 0.5, 0.5}, srgb)
	require.Equal(t, f64.Vec3{0.5, 0.5, 0.5}, c.RGB())
	require.Equal(t, SRGB, c.ColorSpace().Name())

	var zero Color
	require.True(t, zero.Equal(NewColorInSpace(NewColorSpace())))
}

func TestColorEquality(t *testing.T) {
	srgb, texture := NewNamedColorSpace(SRGB), NewNamedColorSpace(SRGBTexture)
	rgb := f64.Vec3{0.5, 0.25, 1}
	for _, tc := range []struct {
		name     string
		a, b     Color
		expected bool
	}{
		{"same rgb and space", NewColorRGB(rgb, srgb), NewColorRGB(rgb, NewNamedColorSpace(SRGB)), true},
		{"same rgb other space", NewColorRGB(rgb, srgb), NewColorRGB(rgb, texture), false},
		{"other rgb same space", NewColorRGB(rgb, srgb), NewColorRGB(f64.Vec3{0.5, 0.25, 0.999}, srgb), false},
		{"negative zero", NewColorRGB(f64.Vec3{}, srgb), NewColorRGB(f64.Vec3{math.Copysign(0, -1), 0, 0}, srgb), true},
		{"black in two spaces", NewColorInSpace(srgb), NewColorInSpace(NewNamedColorSpace(LinearRec709)), false},
	} {
		require.Equal(t, tc.expected, tc.a.Equal(tc.b), tc.name)
		require.Equal(t, tc.expected, tc.b.Equal(tc.a), tc.name)
	}
}

func TestColorConversion(t *testing.T) {
	srgb := NewNamedColorSpace(SRGB)
	c := NewColorRGB(f64.Vec3{0.5, 0.25, 1}, srgb)
	same := NewColorFrom(c, srgb)
	require.True(t, same.Equal(c), "self conversion must not change the value")

	lin := NewColorFrom(NewColorRGB(f64.Vec3{0.5, 0.5, 0.5}, srgb), NewNamedColorSpace(LinearRec709))
	assert_vec3(t, f64.Vec3{0.214041, 0.214041, 0.214041}, lin.RGB(), 1e-6)
	require.Equal(t, LinearRec709, lin.ColorSpace().Name())

	red := NewColorFrom(NewColorRGB(f64.Vec3{1, 0, 0}, NewColorSpace()), NewNamedColorSpace(ACEScg))
	assert_vec3(t, f64.Vec3{0.6031068, 0.0701180, 0.0221789}, red.RGB(), 1e-6)

	// round trip through a wider gamut
	back := NewColorFrom(NewColorFrom(c, NewNamedColorSpace(LinearRec2020)), srgb)
	assert_vec3(t, c.RGB(), back.RGB(), 1e-9)

	// white maps to white between spaces sharing a white point
	p3 := NewColorFrom(NewColorRGB(f64.Vec3{1, 1, 1}, srgb), NewNamedColorSpace(SRGBDisplayP3))
	assert_vec3(t, f64.Vec3{1, 1, 1}, p3.RGB(), 1e-6)
}

func TestColorAdaptedConversion(t *testing.T) {
	// ACEScg has a D60 white, adaptation maps D65 white to its white
	white := NewColorAdapted(NewColor(), NewNamedColorSpace(ACEScg))
	assert_vec3(t, f64.Vec3{1, 1, 1}, white.RGB(), 1e-4)
	unadapted := NewColorFrom(NewColor(), NewNamedColorSpace(ACEScg))
	assert.Greater(t, abs(unadapted.RGB()[2]-1), 1e-3)
}

func abs(x float64) float64 { return IfElse(x < 0, -x, x) }

func TestColorXYZRoundTrip(t *testing.T) {
	for _, name := range []string{LinearRec709, SRGB, ACEScg, AdobeRGB, SRGBDisplayP3, LinearRec2020} {
		cs := NewNamedColorSpace(name)
		c := NewColorRGB(f64.Vec3{0.2, 0.7, 0.4}, cs)
		xyz := c.CIEXYZ()
		d := NewColorInSpace(cs)
		d.SetFromCIEXYZ(xyz)
		assert_vec3(t, c.RGB(), d.RGB(), 1e-9, name)
	}
	xyz := NewColor().CIEXYZ()
	assert_vec3(t, f64.Vec3{0.950456, 1, 1.088146}, xyz, 1e-5)
	xy := NewColor().CIEXY()
	assert.InDelta(t, 0.3127, xy[0], 1e-4)
	assert.InDelta(t, 0.3290, xy[1], 1e-4)
	require.Equal(t, f64.Vec2{}, NewColorInSpace(NewColorSpace()).CIEXY())
}

func TestColorLuminance(t *testing.T) {
	cs := NewNamedColorSpace(SRGB)
	c := NewColorRGB(f64.Vec3{0.8, 0.3, 0.1}, cs)
	once := c.LuminanceNormalized(0.5)
	require.Equal(t, c.RGB(), f64.Vec3{0.8, 0.3, 0.1}, "LuminanceNormalized must not modify the receiver")
	assert.InDelta(t, 0.5, once.CIEXYZ()[1], 1e-9)
	twice := once.LuminanceNormalized(0.5)
	assert_vec3(t, once.RGB(), twice.RGB(), 1e-9)
	cxy, oxy := c.CIEXY(), once.CIEXY()
	assert.InDelta(t, cxy[0], oxy[0], 1e-9)
	assert.InDelta(t, cxy[1], oxy[1], 1e-9)

	rgb := c.NormalizeLuminance(0.5)
	require.Equal(t, rgb, c.RGB())
	assert_vec3(t, once.RGB(), rgb, 1e-12)

	black := NewColorInSpace(cs)
	require.Equal(t, f64.Vec3{}, black.LuminanceNormalized(1).RGB())
	require.Equal(t, f64.Vec3{}, black.NormalizeLuminance(1))
}

func TestColorBlackbody(t *testing.T) {
	c := NewColorInSpace(NewColorSpace())
	c.SetFromBlackbodyKelvin(6504, 1)
	xy := c.CIEXY()
	assert.InDelta(t, 0.31343, xy[0], 1e-4)
	assert.InDelta(t, 0.32360, xy[1], 1e-4)
	assert.InDelta(t, 1, c.CIEXYZ()[1], 1e-9)

	warm := NewColorInSpace(NewColorSpace())
	warm.SetFromBlackbodyKelvin(2856, 1)
	assert.Greater(t, warm.RGB()[0], warm.RGB()[2], "low temperatures are red")

	low, clamped := NewColorInSpace(NewColorSpace()), NewColorInSpace(NewColorSpace())
	low.SetFromBlackbodyKelvin(100, 1)
	clamped.SetFromBlackbodyKelvin(1667, 1)
	require.Equal(t, clamped.RGB(), low.RGB())
}

func TestColorWavelengthAndChromaticity(t *testing.T) {
	c := NewColorInSpace(NewColorSpace())
	c.SetFromWavelengthNM(555)
	assert.InDelta(t, 1, c.CIEXYZ()[1], 0.01)
	c.SetFromWavelengthNM(450)
	assert.Greater(t, c.RGB()[2], c.RGB()[1], "450nm is blue")

	approx := c
	approx.SetFromWavelengthNM(550)
	c.SetFromWavelengthNMTabulated(550)
	assert_vec3(t, f64.Vec3{0.43345, 0.99495, 0.00875}, c.CIEXYZ(), 1e-9)
	assert_vec3(t, c.CIEXYZ(), approx.CIEXYZ(), 0.02)
	c.SetFromWavelengthNMTabulated(545)
	assert.InDelta(t, (0.954+0.99495)/2, c.CIEXYZ()[1], 1e-9)
	c.SetFromWavelengthNMTabulated(900)
	require.Equal(t, f64.Vec3{}, c.RGB())

	c.SetFromCIEXY(f64.Vec2{0.3127, 0.3290})
	assert_vec3(t, f64.Vec3{1, 1, 1}, c.RGB(), 1e-3)
	assert.InDelta(t, 1, c.CIEXYZ()[1], 1e-9)
}

func TestColorString(t *testing.T) {
	require.Equal(t, "Color{1 1 1 lin_rec709}", NewColor().String())
}

func TestColorCIELab(t *testing.T) {
	require.InDelta(t, 100, NewColor().CIELab()[0], 1e-9)
	srgb := NewNamedColorSpace(SRGB)
	c := NewColorRGB(f64.Vec3{0.8, 0.3, 0.1}, srgb)
	lab := c.CIELab()
	d := NewColorInSpace(srgb)
	d.SetFromCIELab(lab, false)
	assert_vec3(t, c.RGB(), d.RGB(), 1e-9)
	d.SetFromCIELab(lab, true)
	assert_vec3(t, c.RGB(), d.RGB(), 1e-9)

	d.SetFromCIELab(f64.Vec3{50, 120, 120}, true)
	for _, v := range d.RGB() {
		require.GreaterOrEqual(t, v, 0.)
		require.LessOrEqual(t, v, 1.)
	}
	assert.InDelta(t, 50, d.CIELab()[0], 0.5)
}
