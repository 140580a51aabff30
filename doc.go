/*
Package gfcolor provides color spaces and colors tagged with the color space
that gives their components meaning.

A ColorSpace is either looked up by one of the canonical names (lin_rec709,
srgb_texture, acescg, ...) or built from the chromaticities of its primaries
or from an explicit RGB to CIEXYZ matrix, together with the parameters of its
transfer function. Colors convert between arbitrary color spaces by going
through CIEXYZ. Packed float32 RGB and RGBA buffers can be converted in place
with ColorSpace.ConvertRGB and ColorSpace.ConvertRGBA.

Named color spaces are interned in a Registry. DefaultRegistry is used by
the package level constructors, create your own Registry with NewRegistry
to keep custom definitions separate.
*/
package gfcolor

import (
	"cmp"
	"fmt"
)

type LibraryVersion struct {
	Major, Minor, Patch uint
}

func (v LibraryVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v LibraryVersion) compare(o LibraryVersion) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, o.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, o.Patch)
}

func (v LibraryVersion) Equal(o LibraryVersion) bool  { return v == o }
func (v LibraryVersion) After(o LibraryVersion) bool  { return v.compare(o) > 0 }
func (v LibraryVersion) Before(o LibraryVersion) bool { return v.compare(o) < 0 }

var Version = LibraryVersion{0, 3, 0}
