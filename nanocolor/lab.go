package nanocolor

import (
	"math"
)

// Lab is a CIE L*a*b* value, L in [0, 100] with a and b around zero.
type Lab = XYZ

const lab_delta = 6. / 29.

func lab_f(t float64) float64 {
	if t > lab_delta*lab_delta*lab_delta {
		return math.Cbrt(t)
	}
	return t/(3*lab_delta*lab_delta) + 4./29.
}

func lab_finv(t float64) float64 {
	if t > lab_delta {
		return t * t * t
	}
	return 3 * lab_delta * lab_delta * (t - 4./29.)
}

// XYZToLab converts xyz into CIELAB relative to the reference white. A
// white with a zero component yields zero.
func XYZToLab(xyz, white XYZ) Lab {
	if white[0] == 0 || white[1] == 0 || white[2] == 0 {
		return Lab{}
	}
	fx := lab_f(xyz[0] / white[0])
	fy := lab_f(xyz[1] / white[1])
	fz := lab_f(xyz[2] / white[2])
	return Lab{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(lab Lab, white XYZ) XYZ {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return XYZ{lab_finv(fx) * white[0], lab_finv(fy) * white[1], lab_finv(fz) * white[2]}
}

// DeltaE76 is the euclidean distance between two CIELAB values.
func DeltaE76(a, b Lab) float64 {
	dl, da, db := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// ScaleChromaIntoGamut reduces the chroma of lab, keeping its lightness,
// until it is representable in cs with encoded components in [0, 1]. The
// search is a bisection over the chroma scale. The returned RGB is encoded
// in cs and clamped.
func ScaleChromaIntoGamut(cs *ColorSpace, lab Lab) RGB {
	white := WhitePoint(cs)
	to_rgb := func(s float64) RGB {
		return XYZToRGB(cs, LabToXYZ(Lab{lab[0], lab[1] * s, lab[2] * s}, white))
	}
	in_gamut := func(c RGB) bool {
		const eps = 1e-12
		return c[0] >= -eps && c[1] >= -eps && c[2] >= -eps && c[0] <= 1+eps && c[1] <= 1+eps && c[2] <= 1+eps
	}
	clamp := func(c RGB) RGB {
		return RGB{max(0, min(c[0], 1)), max(0, min(c[1], 1)), max(0, min(c[2], 1))}
	}
	ans := to_rgb(1)
	if in_gamut(ans) || (lab[1] == 0 && lab[2] == 0) {
		return clamp(ans)
	}
	lo, hi := 0., 1.
	found := false
	for range 24 {
		mid := (lo + hi) / 2
		if c := to_rgb(mid); in_gamut(c) {
			ans, found, lo = c, true, mid
		} else {
			hi = mid
		}
	}
	if !found {
		ans = to_rgb(0)
	}
	return clamp(ans)
}
