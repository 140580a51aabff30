package nanocolor

import (
	"math"
)

// Domain of the Planckian locus approximation used by KelvinToYxy.
const (
	MinKelvin = 1667.
	MaxKelvin = 25000.
)

// KelvinToYxy returns the chromaticity of a blackbody radiator at the
// given temperature with the given luminance. It uses the cubic spline fit
// of Kim et al. which is valid between MinKelvin and MaxKelvin,
// temperatures outside that range are clamped to it.
func KelvinToYxy(kelvin, luminance float64) Yxy {
	t := min(max(kelvin, MinKelvin), MaxKelvin)
	t2 := t * t
	t3 := t2 * t
	var x float64
	if t < 4000 {
		x = -0.2661239e9/t3 - 0.2343589e6/t2 + 0.8776956e3/t + 0.179910
	} else {
		x = -3.0258469e9/t3 + 2.1070379e6/t2 + 0.2226347e3/t + 0.240390
	}
	x2 := x * x
	x3 := x2 * x
	var y float64
	switch {
	case t < 2222:
		y = -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
	case t < 4000:
		y = -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
	default:
		y = 3.0817580*x3 - 5.87338670*x2 + 3.75112997*x - 0.37001483
	}
	return Yxy{Y: luminance, XY: Chromaticity{x, y}}
}

// KelvinToXYZ is KelvinToYxy lifted to CIEXYZ.
func KelvinToXYZ(kelvin, luminance float64) XYZ {
	return YxyToXYZ(KelvinToYxy(kelvin, luminance))
}

// CIE 1931 2 degree standard observer, 380nm to 780nm in 10nm steps.
const (
	cie_first_nm = 380
	cie_step_nm  = 10
)

var cie1931 = [...]XYZ{
	{0.001368, 0.000039, 0.006450},
	{0.004243, 0.000120, 0.020050},
	{0.014310, 0.000396, 0.067850},
	{0.043510, 0.001210, 0.207400},
	{0.134380, 0.004000, 0.645600},
	{0.283900, 0.011600, 1.385600},
	{0.348280, 0.023000, 1.747060},
	{0.336200, 0.038000, 1.772110},
	{0.290800, 0.060000, 1.669200},
	{0.195360, 0.090980, 1.287640},
	{0.095640, 0.139020, 0.812950},
	{0.032010, 0.208020, 0.465180},
	{0.004900, 0.323000, 0.272000},
	{0.009300, 0.503000, 0.158200},
	{0.063270, 0.710000, 0.078250},
	{0.165500, 0.862000, 0.042160},
	{0.290400, 0.954000, 0.020300},
	{0.433450, 0.994950, 0.008750},
	{0.594500, 0.995000, 0.003900},
	{0.762100, 0.952000, 0.002100},
	{0.916300, 0.870000, 0.001650},
	{1.026300, 0.757000, 0.001100},
	{1.062200, 0.631000, 0.000800},
	{1.002600, 0.503000, 0.000340},
	{0.854450, 0.381000, 0.000190},
	{0.642400, 0.265000, 0.000050},
	{0.447900, 0.175000, 0.000020},
	{0.283500, 0.107000, 0.000000},
	{0.164900, 0.061000, 0.000000},
	{0.087400, 0.032000, 0.000000},
	{0.046770, 0.017000, 0.000000},
	{0.022700, 0.008210, 0.000000},
	{0.011359, 0.004102, 0.000000},
	{0.005790, 0.002091, 0.000000},
	{0.002899, 0.001047, 0.000000},
	{0.001440, 0.000520, 0.000000},
	{0.000690, 0.000249, 0.000000},
	{0.000332, 0.000120, 0.000000},
	{0.000166, 0.000060, 0.000000},
	{0.000083, 0.000030, 0.000000},
	{0.000042, 0.000015, 0.000000},
}

func cie1931_tabulated(nm float64) XYZ {
	pos := (nm - cie_first_nm) / cie_step_nm
	last := float64(len(cie1931) - 1)
	if pos < 0 || pos > last || math.IsNaN(pos) {
		return XYZ{}
	}
	i := int(pos)
	if float64(i) == last {
		return cie1931[i]
	}
	f := pos - float64(i)
	a, b := cie1931[i], cie1931[i+1]
	return XYZ{a[0] + (b[0]-a[0])*f, a[1] + (b[1]-a[1])*f, a[2] + (b[2]-a[2])*f}
}

func piecewise_gaussian(x, mu, sigma1, sigma2 float64) float64 {
	t := (x - mu) / sigma2
	if x < mu {
		t = (x - mu) / sigma1
	}
	return math.Exp(-0.5 * t * t)
}

// multi-lobe fit of the CIE 1931 observer from Wyman, Sloan and Shirley,
// "Simple Analytic Approximations to the CIE XYZ Color Matching Functions"
func cie1931_approximate(nm float64) XYZ {
	return XYZ{
		1.056*piecewise_gaussian(nm, 599.8, 37.9, 31.0) + 0.362*piecewise_gaussian(nm, 442.0, 16.0, 26.7) - 0.065*piecewise_gaussian(nm, 501.1, 20.4, 26.2),
		0.821*piecewise_gaussian(nm, 568.8, 46.9, 40.5) + 0.286*piecewise_gaussian(nm, 530.9, 16.3, 31.1),
		1.217*piecewise_gaussian(nm, 437.0, 11.8, 36.0) + 0.681*piecewise_gaussian(nm, 459.0, 26.0, 13.8),
	}
}

// CIE1931XYZFromWavelength returns the CIE 1931 color matching function
// values for a monochromatic source of the given wavelength. With
// approximate set an analytic fit is evaluated, otherwise the 10nm table is
// interpolated, which yields zero outside 380nm to 780nm.
func CIE1931XYZFromWavelength(nm float64, approximate bool) XYZ {
	if approximate {
		return cie1931_approximate(nm)
	}
	return cie1931_tabulated(nm)
}
