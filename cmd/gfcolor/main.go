package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kovidgoyal/gfcolor"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f64"
	"golang.org/x/text/cases"
)

var _ = fmt.Print

const usage = `usage: gfcolor list
       gfcolor version
       gfcolor [-adapt] source-space destination-space value

value is one of: r,g,b  a CSS color name or #hex (sRGB)  6504K  550nm`

var ErrUsage = errors.New(usage)

func resolve_space(name string) (gfcolor.ColorSpace, error) {
	if gfcolor.IsConstructableColorSpace(name) {
		return gfcolor.NewNamedColorSpace(name), nil
	}
	fold := cases.Fold()
	q := fold.String(name)
	for _, n := range gfcolor.DefaultRegistry().Names() {
		if fold.String(n) == q {
			return gfcolor.NewNamedColorSpace(n), nil
		}
	}
	return gfcolor.ColorSpace{}, fmt.Errorf("unknown color space: %#v, use gfcolor list to see available spaces", name)
}

func hex_digit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}

func parse_hex(s string) (c color.RGBA, ok bool) {
	d := make([]byte, len(s))
	for i := range len(s) {
		if d[i], ok = hex_digit(s[i]); !ok {
			return
		}
	}
	switch len(d) {
	case 6:
		c.R, c.G, c.B = d[0]<<4+d[1], d[2]<<4+d[3], d[4]<<4+d[5]
	case 3:
		c.R, c.G, c.B = d[0]*17, d[1]*17, d[2]*17
	default:
		ok = false
	}
	return
}

func parse_float(s string) (float64, error) {
	ans, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %#v", s)
	}
	return ans, nil
}

// parse_value returns the color described by value. Numeric triples are
// in src, named and hex colors are always sRGB.
func parse_value(value string, src gfcolor.ColorSpace) (c gfcolor.Color, err error) {
	lvalue := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.Contains(lvalue, ","):
		parts := strings.Split(lvalue, ",")
		if len(parts) != 3 {
			return c, fmt.Errorf("expected three comma separated components, got: %#v", value)
		}
		var rgb f64.Vec3
		for i, p := range parts {
			if rgb[i], err = parse_float(p); err != nil {
				return
			}
		}
		return gfcolor.NewColorRGB(rgb, src), nil
	case strings.HasSuffix(lvalue, "nm"):
		nm, err := parse_float(strings.TrimSuffix(lvalue, "nm"))
		if err != nil {
			return c, err
		}
		c = gfcolor.NewColorInSpace(src)
		c.SetFromWavelengthNM(nm)
		return c, nil
	case strings.HasSuffix(lvalue, "k"):
		if k, err := parse_float(strings.TrimSuffix(lvalue, "k")); err == nil {
			c = gfcolor.NewColorInSpace(src)
			c.SetFromBlackbodyKelvin(k, 1)
			return c, nil
		}
	}
	srgb := gfcolor.NewNamedColorSpace(gfcolor.SRGB)
	rgba, found := colornames.Map[lvalue]
	if !found {
		if rgba, found = parse_hex(strings.TrimPrefix(lvalue, "#")); !found {
			return c, fmt.Errorf("unrecognized color value: %#v", value)
		}
	}
	return gfcolor.NewColorRGB(f64.Vec3{float64(rgba.R) / 255, float64(rgba.G) / 255, float64(rgba.B) / 255}, srgb), nil
}

func run(args []string, out io.Writer) (err error) {
	adapt := false
	if len(args) > 0 && (args[0] == "-adapt" || args[0] == "--adapt") {
		adapt, args = true, args[1:]
	}
	switch {
	case len(args) == 1 && args[0] == "list":
		for _, name := range gfcolor.DefaultRegistry().Names() {
			fmt.Fprintln(out, name)
		}
		return
	case len(args) == 1 && args[0] == "version":
		fmt.Fprintln(out, gfcolor.Version)
		return
	case len(args) != 3:
		return ErrUsage
	}
	src, err := resolve_space(args[0])
	if err != nil {
		return
	}
	dst, err := resolve_space(args[1])
	if err != nil {
		return
	}
	c, err := parse_value(args[2], src)
	if err != nil {
		return
	}
	ans := gfcolor.IfElse(adapt, gfcolor.NewColorAdapted(c, dst), gfcolor.NewColorFrom(c, dst))
	rgb, xyz, xy, lab := ans.RGB(), ans.CIEXYZ(), ans.CIEXY(), ans.CIELab()
	fmt.Fprintf(out, "%s: %.6f %.6f %.6f\n", dst.Name(), rgb[0], rgb[1], rgb[2])
	fmt.Fprintf(out, "CIEXYZ: %.6f %.6f %.6f\n", xyz[0], xyz[1], xyz[2])
	fmt.Fprintf(out, "CIExy: %.6f %.6f\n", xy[0], xy[1])
	fmt.Fprintf(out, "CIELab: %.4f %.4f %.4f\n", lab[0], lab[1], lab[2])
	return
}

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	err = run(os.Args[1:], os.Stdout)
}
