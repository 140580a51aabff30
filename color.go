package gfcolor

import (
	"fmt"

	"github.com/kovidgoyal/gfcolor/nanocolor"
	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

// Color is an RGB triplet together with the color space that gives it
// meaning. The zero value is black in linear Rec.709, use NewColor for the
// default white.
type Color struct {
	rgb   f64.Vec3
	space ColorSpace
}

// NewColor returns white (1, 1, 1) in linear Rec.709.
func NewColor() Color { return Color{rgb: f64.Vec3{1, 1, 1}, space: NewColorSpace()} }

// NewColorInSpace returns black (0, 0, 0) in cs.
func NewColorInSpace(cs ColorSpace) Color { return Color{space: cs} }

func NewColorRGB(rgb f64.Vec3, cs ColorSpace) Color { return Color{rgb: rgb, space: cs} }

// NewColorFrom converts src into dst. The RGB of the result is the value
// adapted to dst, not a copy of the RGB of src.
func NewColorFrom(src Color, dst ColorSpace) Color {
	return DefaultRegistry().Convert(src, dst)
}

// NewColorAdapted is like NewColorFrom but additionally adapts the white
// point of the source space to the white point of dst.
func NewColorAdapted(src Color, dst ColorSpace) Color {
	return DefaultRegistry().ConvertAdapted(src, dst)
}

func (c Color) RGB() f64.Vec3          { return c.rgb }
func (c Color) ColorSpace() ColorSpace { return c.space }

func (c Color) String() string {
	return fmt.Sprintf("Color{%g %g %g %s}", c.rgb[0], c.rgb[1], c.rgb[2], c.space.Name())
}

// Equal reports whether both the RGB values and the color spaces match
// exactly.
func (c Color) Equal(o Color) bool {
	return c.rgb == o.rgb && c.space.Equal(o.space)
}

// SetFromCIEXYZ replaces the RGB value with xyz expressed in the color
// space of c.
func (c *Color) SetFromCIEXYZ(xyz f64.Vec3) {
	c.rgb = nanocolor.XYZToRGB(c.space.Definition(), xyz)
}

// SetFromBlackbodyKelvin sets c to the color of a blackbody radiator at the
// given temperature, scaled by luminance. The approximation is valid
// between 1667K and 25000K, temperatures outside that range are clamped.
func (c *Color) SetFromBlackbodyKelvin(kelvin, luminance float64) {
	c.rgb = nanocolor.RGBFromYxy(c.space.Definition(), nanocolor.KelvinToYxy(kelvin, luminance))
}

// SetFromWavelengthNM sets c to the color of a monochromatic source of the
// given wavelength, using the analytic fit of the CIE 1931 observer. The
// fit is smooth and defined for every wavelength. Use
// SetFromWavelengthNMTabulated for the published observer data.
func (c *Color) SetFromWavelengthNM(nm float64) {
	c.SetFromCIEXYZ(nanocolor.CIE1931XYZFromWavelength(nm, true))
}

// SetFromWavelengthNMTabulated is like SetFromWavelengthNM but interpolates
// the 10nm CIE 1931 table. Wavelengths outside 380nm to 780nm give black.
func (c *Color) SetFromWavelengthNMTabulated(nm float64) {
	c.SetFromCIEXYZ(nanocolor.CIE1931XYZFromWavelength(nm, false))
}

// SetFromCIEXY sets c to the chromaticity xy with unit luminance.
func (c *Color) SetFromCIEXY(xy f64.Vec2) {
	c.rgb = nanocolor.RGBFromYxy(c.space.Definition(), nanocolor.Yxy{Y: 1, XY: xy})
}

// CIEXYZ returns the absolute CIEXYZ value of c.
func (c Color) CIEXYZ() f64.Vec3 {
	return nanocolor.RGBToXYZ(c.space.Definition(), c.rgb)
}

// CIEXY returns the chromaticity of c. Black projects to (0, 0).
func (c Color) CIEXY() f64.Vec2 {
	return nanocolor.ProjectToChromaticities(c.CIEXYZ())
}

// LuminanceNormalized returns a copy of c whose luminance is luminance,
// keeping its chromaticity. Colors without chromaticity (black) stay black.
func (c Color) LuminanceNormalized(luminance float64) Color {
	c.rgb = nanocolor.NormalizeLuminance(c.space.Definition(), c.rgb, luminance)
	return c
}

// NormalizeLuminance is LuminanceNormalized in place, it returns the new
// RGB value.
func (c *Color) NormalizeLuminance(luminance float64) f64.Vec3 {
	c.rgb = nanocolor.NormalizeLuminance(c.space.Definition(), c.rgb, luminance)
	return c.rgb
}

// CIELab returns c in CIELAB relative to the white point of its color space.
func (c Color) CIELab() f64.Vec3 {
	d := c.space.Definition()
	return nanocolor.XYZToLab(c.CIEXYZ(), nanocolor.WhitePoint(d))
}

// SetFromCIELab sets c from a CIELAB value relative to the white point of
// its color space. With gamutMap the chroma is reduced until the color fits
// inside the encodable range of the space.
func (c *Color) SetFromCIELab(lab f64.Vec3, gamutMap bool) {
	d := c.space.Definition()
	if gamutMap {
		c.rgb = nanocolor.ScaleChromaIntoGamut(d, lab)
		return
	}
	c.SetFromCIEXYZ(nanocolor.LabToXYZ(lab, nanocolor.WhitePoint(d)))
}
