package gfcolor

import (
	"fmt"

	"github.com/kovidgoyal/gfcolor/nanocolor"
	"golang.org/x/image/math/f64"
)

// Transformer converts RGB values from one color space to another using a
// precomputed RGB to RGB matrix. Transformers are immutable and safe for
// concurrent use.
type Transformer struct {
	src, dst *nanocolor.ColorSpace
	matrix   f64.Mat3
	identity bool
	adapted  bool
}

func new_transformer(src, dst *nanocolor.ColorSpace, adapted bool) *Transformer {
	ans := &Transformer{src: src, dst: dst, adapted: adapted, identity: nanocolor.Equal(src, dst)}
	switch {
	case ans.identity:
		ans.matrix = nanocolor.Identity
	case adapted:
		ans.matrix = nanocolor.AdaptedRGBToRGBMatrix(src, dst)
	default:
		ans.matrix = nanocolor.RGBToRGBMatrix(src, dst)
	}
	return ans
}

func (t *Transformer) String() string {
	return fmt.Sprintf("Transformer{%s -> %s adapted: %v}", t.src.Name(), t.dst.Name(), t.adapted)
}

func (t *Transformer) Source() ColorSpace      { return ColorSpace{data: t.src} }
func (t *Transformer) Destination() ColorSpace { return ColorSpace{data: t.dst} }
func (t *Transformer) Matrix() f64.Mat3        { return t.matrix }

// IsIdentity is true when source and destination are equal, in which case
// Transform returns its input unchanged.
func (t *Transformer) IsIdentity() bool { return t.identity }

// Transform linearizes rgb with the source transfer function, applies the
// matrix and encodes the result with the destination transfer function.
func (t *Transformer) Transform(rgb f64.Vec3) f64.Vec3 {
	if t.identity {
		return rgb
	}
	return nanocolor.TransformWithMatrix(t.dst, t.src, &t.matrix, rgb)
}
