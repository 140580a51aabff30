package gfcolor

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/go-parallel"
	"golang.org/x/image/math/f64"
)

var ErrInvalidBufferSize = errors.New("buffer length is not a non-zero multiple of the pixel size")

// ConvertRGB converts a packed sequence of RGB triples from cs to target in
// place, using the default registry. See Registry.ConvertRGB.
func (cs ColorSpace) ConvertRGB(target ColorSpace, rgb []float32) error {
	return DefaultRegistry().ConvertRGB(cs, target, rgb)
}

// ConvertRGBA is ConvertRGB for packed RGBA quadruples, alpha is left
// untouched.
func (cs ColorSpace) ConvertRGBA(target ColorSpace, rgba []float32) error {
	return DefaultRegistry().ConvertRGBA(cs, target, rgba)
}

// ConvertRGB converts a packed sequence of RGB triples from src to dst in
// place. The length of rgb must be a non-zero multiple of three, otherwise
// the buffer is left untouched, the problem is logged and an error wrapping
// ErrInvalidBufferSize is returned.
func (r *Registry) ConvertRGB(src, dst ColorSpace, rgb []float32) error {
	return r.convert_packed(src, dst, rgb, 3)
}

// ConvertRGBA is ConvertRGB for packed RGBA quadruples. The length of rgba
// must be a non-zero multiple of four.
func (r *Registry) ConvertRGBA(src, dst ColorSpace, rgba []float32) error {
	return r.convert_packed(src, dst, rgba, 4)
}

func (r *Registry) convert_packed(src, dst ColorSpace, buf []float32, stride int) error {
	if len(buf) == 0 || len(buf)%stride != 0 {
		log_bad_buffer(src, dst, len(buf), stride)
		return fmt.Errorf("%w: length %d, pixel size %d", ErrInvalidBufferSize, len(buf), stride)
	}
	t := r.Transformer(src, dst)
	if t.IsIdentity() {
		return nil
	}
	num_pixels := len(buf) / stride
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			p := buf[i*stride : i*stride+3 : i*stride+3]
			out := t.Transform(f64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])})
			p[0], p[1], p[2] = float32(out[0]), float32(out[1]), float32(out[2])
		}
	}
	if num_pixels < r.parallelThreshold {
		f(0, num_pixels)
		return nil
	}
	return parallel.Run_in_parallel_over_range(0, f, 0, num_pixels)
}
