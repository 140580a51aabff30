// Package imageconv converts the pixels of standard library images between
// gfcolor color spaces.
package imageconv

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/kovidgoyal/gfcolor"
	"github.com/kovidgoyal/gfcolor/nanocolor"
	"github.com/kovidgoyal/go-parallel"
	"golang.org/x/image/math/f64"
)

var _ = fmt.Print

type converter struct {
	src, dst *nanocolor.ColorSpace
	matrix   f64.Mat3
	decode8  [256]float64
}

func new_converter(t *gfcolor.Transformer) *converter {
	ans := &converter{src: t.Source().Definition(), dst: t.Destination().Definition(), matrix: t.Matrix()}
	for i := range ans.decode8 {
		ans.decode8[i] = ans.src.ToLinear(float64(i) / math.MaxUint8)
	}
	return ans
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}

func (c *converter) encode(lin f64.Vec3, maxval float64) (r, g, b float64) {
	out := nanocolor.Apply(&c.matrix, lin)
	r = math.Round(clamp01(c.dst.FromLinear(out[0])) * maxval)
	g = math.Round(clamp01(c.dst.FromLinear(out[1])) * maxval)
	b = math.Round(clamp01(c.dst.FromLinear(out[2])) * maxval)
	return
}

func (c *converter) convert8(p []uint8) {
	r, g, b := c.encode(f64.Vec3{c.decode8[p[0]], c.decode8[p[1]], c.decode8[p[2]]}, math.MaxUint8)
	p[0], p[1], p[2] = uint8(r), uint8(g), uint8(b)
}

func (c *converter) convert16(p []uint16) {
	const m = math.MaxUint16
	lin := f64.Vec3{c.src.ToLinear(float64(p[0]) / m), c.src.ToLinear(float64(p[1]) / m), c.src.ToLinear(float64(p[2]) / m)}
	r, g, b := c.encode(lin, m)
	p[0], p[1], p[2] = uint16(r), uint16(g), uint16(b)
}

func premultiply8(r, a uint8) uint8 {
	return uint8((uint16(r)*uint16(a) + 0x7f) / 0xff)
}

func unpremultiply8(r, a uint8) uint8 {
	return uint8(min(0xff, (uint16(r)*0xff+uint16(a)/2)/uint16(a)))
}

func unpremultiply(r, a uint32) uint16 {
	return uint16(min(0xffff, (r*0xffff+a/2)/a))
}

func premultiply(r, a uint32) uint16 {
	return uint16((r*a + 0x7fff) / 0xffff)
}

func get16(s []uint8) uint16 { return uint16(s[0])<<8 | uint16(s[1]) }

func put16(s []uint8, v uint16) { s[0], s[1] = uint8(v>>8), uint8(v) }

// ConvertImage converts the colors of img, whose pixels are encoded in src,
// into dst. Images of the common in-memory types are modified in place and
// returned, Gray and Gray16 images are converted into new NRGBA and
// NRGBA64 images and images that cannot be modified are copied into a new
// NRGBA64 image. Paletted images have only their palette converted.
// Converted values are clamped to the encodable range. When src and dst
// are equal img is returned untouched.
func ConvertImage(img image.Image, src, dst gfcolor.ColorSpace) (image.Image, error) {
	t := gfcolor.DefaultRegistry().Transformer(src, dst)
	if t.IsIdentity() {
		return img, nil
	}
	return convert(new_converter(t), img)
}

func convert(c *converter, image_any image.Image) (ans image.Image, err error) {
	b := image_any.Bounds()
	width, height := b.Dx(), b.Dy()
	ans = image_any
	if width < 1 || height < 1 {
		return
	}
	var f func(start, limit int)
	switch img := image_any.(type) {
	case *image.NRGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					c.convert8(row[0:3:3])
					row = row[4:]
				}
			}
		}
	case *image.NRGBA64:
		f = func(start, limit int) {
			var sl [3]uint16
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[8*(width-1)]
				for range width {
					s := row[0:6:6]
					sl[0], sl[1], sl[2] = get16(s[0:]), get16(s[2:]), get16(s[4:])
					c.convert16(sl[:])
					put16(s[0:], sl[0])
					put16(s[2:], sl[1])
					put16(s[4:], sl[2])
					row = row[8:]
				}
			}
		}
	case *image.RGBA:
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[4*(width-1)]
				for range width {
					r := row[0:3:3]
					if a := row[3]; a != 0 {
						r[0], r[1], r[2] = unpremultiply8(r[0], a), unpremultiply8(r[1], a), unpremultiply8(r[2], a)
						c.convert8(r)
						r[0], r[1], r[2] = premultiply8(r[0], a), premultiply8(r[1], a), premultiply8(r[2], a)
					}
					row = row[4:]
				}
			}
		}
	case *image.RGBA64:
		f = func(start, limit int) {
			var sl [3]uint16
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[8*(width-1)]
				for range width {
					s := row[0:8:8]
					if a := uint32(get16(s[6:])); a != 0 {
						sl[0] = unpremultiply(uint32(get16(s[0:])), a)
						sl[1] = unpremultiply(uint32(get16(s[2:])), a)
						sl[2] = unpremultiply(uint32(get16(s[4:])), a)
						c.convert16(sl[:])
						put16(s[0:], premultiply(uint32(sl[0]), a))
						put16(s[2:], premultiply(uint32(sl[1]), a))
						put16(s[4:], premultiply(uint32(sl[2]), a))
					}
					row = row[8:]
				}
			}
		}
	case *image.Paletted:
		var sl [3]uint16
		for i, pc := range img.Palette {
			r, g, b, a := pc.RGBA()
			if a != 0 {
				sl[0], sl[1], sl[2] = unpremultiply(r, a), unpremultiply(g, a), unpremultiply(b, a)
				c.convert16(sl[:])
				img.Palette[i] = color.NRGBA64{R: sl[0], G: sl[1], B: sl[2], A: uint16(a)}
			}
		}
		return
	case *image.Gray:
		d := image.NewNRGBA(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y : img.Stride*y+width]
				drow := d.Pix[d.Stride*y:]
				_ = drow[4*(width-1)]
				for _, gray := range row {
					s := drow[0:4:4]
					s[0], s[1], s[2], s[3] = gray, gray, gray, 0xff
					c.convert8(s[0:3:3])
					drow = drow[4:]
				}
			}
		}
	case *image.Gray16:
		d := image.NewNRGBA64(b)
		ans = d
		f = func(start, limit int) {
			var sl [3]uint16
			for y := start; y < limit; y++ {
				row := img.Pix[img.Stride*y:]
				_ = row[2*(width-1)]
				drow := d.Pix[d.Stride*y:]
				_ = drow[8*(width-1)]
				for range width {
					gray := get16(row)
					sl[0], sl[1], sl[2] = gray, gray, gray
					c.convert16(sl[:])
					s := drow[0:8:8]
					put16(s[0:], sl[0])
					put16(s[2:], sl[1])
					put16(s[4:], sl[2])
					s[6], s[7] = 0xff, 0xff
					row = row[2:]
					drow = drow[8:]
				}
			}
		}
	case draw.Image:
		f = func(start, limit int) {
			var sl [3]uint16
			for y := b.Min.Y + start; y < b.Min.Y+limit; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					r16, g16, b16, a16 := img.At(x, y).RGBA()
					if a16 != 0 {
						sl[0], sl[1], sl[2] = unpremultiply(r16, a16), unpremultiply(g16, a16), unpremultiply(b16, a16)
						c.convert16(sl[:])
						img.Set(x, y, color.NRGBA64{R: sl[0], G: sl[1], B: sl[2], A: uint16(a16)})
					}
				}
			}
		}
	default:
		d := image.NewNRGBA64(b)
		ans = d
		f = func(start, limit int) {
			var sl [3]uint16
			for y := start; y < limit; y++ {
				row := d.Pix[d.Stride*y:]
				for x := range width {
					r16, g16, b16, a16 := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
					if a16 != 0 {
						sl[0], sl[1], sl[2] = unpremultiply(r16, a16), unpremultiply(g16, a16), unpremultiply(b16, a16)
						c.convert16(sl[:])
						s := row[8*x : 8*x+8 : 8*x+8]
						put16(s[0:], sl[0])
						put16(s[2:], sl[1])
						put16(s[4:], sl[2])
						put16(s[6:], uint16(a16))
					}
				}
			}
		}
	}
	err = parallel.Run_in_parallel_over_range(0, f, 0, height)
	return
}
