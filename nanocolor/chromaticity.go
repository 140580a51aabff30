package nanocolor

// ProjectToChromaticities projects xyz onto the chromaticity chart. A
// value whose components sum to zero projects to (0, 0).
func ProjectToChromaticities(xyz XYZ) Chromaticity {
	sum := xyz[0] + xyz[1] + xyz[2]
	if sum == 0 {
		return Chromaticity{}
	}
	return Chromaticity{xyz[0] / sum, xyz[1] / sum}
}

func XYZToYxy(xyz XYZ) Yxy {
	return Yxy{Y: xyz[1], XY: ProjectToChromaticities(xyz)}
}

// YxyToXYZ lifts a chromaticity with a luminance back to CIEXYZ. A zero y
// chromaticity has no XYZ representation and yields zero.
func YxyToXYZ(c Yxy) XYZ {
	x, y := c.XY[0], c.XY[1]
	if y == 0 {
		return XYZ{}
	}
	return XYZ{x * c.Y / y, c.Y, (1 - x - y) * c.Y / y}
}

// RGBFromYxy converts a chromaticity coordinate with luminance into cs.
func RGBFromYxy(cs *ColorSpace, c Yxy) RGB {
	return XYZToRGB(cs, YxyToXYZ(c))
}

// NormalizeXYZ scales xyz so that its luminance is one. A value with zero
// luminance normalizes to zero.
func NormalizeXYZ(xyz XYZ) XYZ {
	if xyz[1] == 0 {
		return XYZ{}
	}
	s := 1 / xyz[1]
	return XYZ{xyz[0] * s, 1, xyz[2] * s}
}

// NormalizeLuminance rescales rgb in cs so that its luminance becomes
// luminance while keeping its chromaticity. A color with no chromaticity
// (all XYZ components summing to zero) normalizes to black.
func NormalizeLuminance(cs *ColorSpace, rgb RGB, luminance float64) RGB {
	xyz := RGBToXYZ(cs, rgb)
	if xyz[0]+xyz[1]+xyz[2] == 0 {
		return RGB{}
	}
	c := XYZToYxy(xyz)
	c.Y = luminance
	return XYZToRGB(cs, YxyToXYZ(c))
}
