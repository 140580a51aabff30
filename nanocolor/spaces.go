package nanocolor

import (
	"fmt"
	"slices"
	"sync"
)

// Canonical names of the built-in color spaces.
const (
	ACEScg          = "acescg"
	AdobeRGB        = "adobergb"
	G18AP1          = "g18_ap1"
	G18Rec709       = "g18_rec709"
	G22AdobeRGB     = "g22_adobergb"
	G22AP1          = "g22_ap1"
	G22Rec709       = "g22_rec709"
	IdentityName    = "identity"
	LinearAdobeRGB  = "lin_adobergb"
	LinearAP0       = "lin_ap0"
	LinearAP1       = "lin_ap1"
	LinearCIEXYZD65 = "lin_ciexyzd65"
	LinearDisplayP3 = "lin_displayp3"
	LinearRec2020   = "lin_rec2020"
	LinearRec709    = "lin_rec709"
	Raw             = "raw"
	SRGB            = "sRGB"
	SRGBDisplayP3   = "srgb_displayp3"
	SRGBTexture     = "srgb_texture"
)

var (
	D65 = Chromaticity{0.3127, 0.3290}
	D60 = Chromaticity{0.32168, 0.33767}

	Rec709Primaries    = Primaries{Chromaticity{0.640, 0.330}, Chromaticity{0.300, 0.600}, Chromaticity{0.150, 0.060}, D65}
	AP0Primaries       = Primaries{Chromaticity{0.7347, 0.2653}, Chromaticity{0.0, 1.0}, Chromaticity{0.0001, -0.0770}, D60}
	AP1Primaries       = Primaries{Chromaticity{0.713, 0.293}, Chromaticity{0.165, 0.830}, Chromaticity{0.128, 0.044}, D60}
	AdobeRGBPrimaries  = Primaries{Chromaticity{0.64, 0.33}, Chromaticity{0.21, 0.71}, Chromaticity{0.15, 0.06}, D65}
	DisplayP3Primaries = Primaries{Chromaticity{0.680, 0.320}, Chromaticity{0.265, 0.690}, Chromaticity{0.150, 0.060}, D65}
	Rec2020Primaries   = Primaries{Chromaticity{0.708, 0.292}, Chromaticity{0.170, 0.797}, Chromaticity{0.131, 0.046}, D65}
)

// sRGB transfer curve parameters
const (
	srgb_gamma       = 2.4
	srgb_linear_bias = 0.055
	adobe_gamma      = 563. / 256.
)

type builtin struct {
	name              string
	primaries         *Primaries
	gamma, linearBias float64
}

var builtins = []builtin{
	{ACEScg, &AP1Primaries, 1, 0},
	{AdobeRGB, &AdobeRGBPrimaries, adobe_gamma, 0},
	{G18AP1, &AP1Primaries, 1.8, 0},
	{G18Rec709, &Rec709Primaries, 1.8, 0},
	{G22AdobeRGB, &AdobeRGBPrimaries, 2.2, 0},
	{G22AP1, &AP1Primaries, 2.2, 0},
	{G22Rec709, &Rec709Primaries, 2.2, 0},
	{IdentityName, nil, 1, 0},
	{LinearAdobeRGB, &AdobeRGBPrimaries, 1, 0},
	{LinearAP0, &AP0Primaries, 1, 0},
	{LinearAP1, &AP1Primaries, 1, 0},
	{LinearCIEXYZD65, nil, 1, 0},
	{LinearDisplayP3, &DisplayP3Primaries, 1, 0},
	{LinearRec2020, &Rec2020Primaries, 1, 0},
	{LinearRec709, &Rec709Primaries, 1, 0},
	{Raw, nil, 1, 0},
	{SRGB, &Rec709Primaries, srgb_gamma, srgb_linear_bias},
	{SRGBDisplayP3, &DisplayP3Primaries, srgb_gamma, srgb_linear_bias},
	{SRGBTexture, &Rec709Primaries, srgb_gamma, srgb_linear_bias},
}

var named_spaces = sync.OnceValue(func() map[string]*ColorSpace {
	ans := make(map[string]*ColorSpace, len(builtins))
	for _, b := range builtins {
		var cs *ColorSpace
		var err error
		if b.primaries == nil {
			cs, err = NewFromMatrix(b.name, Identity, b.gamma, b.linearBias)
		} else {
			cs, err = NewFromPrimaries(b.name, *b.primaries, b.gamma, b.linearBias)
		}
		if err != nil {
			panic(fmt.Sprintf("invalid builtin color space: %s", err))
		}
		ans[b.name] = cs
	}
	return ans
})

// Lookup returns the built-in color space with the given name.
func Lookup(name string) (*ColorSpace, bool) {
	cs, found := named_spaces()[name]
	return cs, found
}

// Names returns the sorted names of the built-in color spaces.
func Names() []string {
	ans := make([]string, 0, len(builtins))
	for _, b := range builtins {
		ans = append(ans, b.name)
	}
	slices.Sort(ans)
	return ans
}
