package dds

import (
	"fmt"
	"math"

	"deedles.dev/dds/format"
	"deedles.dev/dds/geom"
)

// PitchOrLinearSize computes the size field for the top-level surface
// of a texture of the given format and width.
//
// Block-compressed and packed 4:2:2 formats yield the pitch of a row
// of blocks. Block-compressed rows are at least one block wide.
// Uncompressed formats with a known pixel size yield the byte-rounded
// pitch of a row of pixels. Anything else, such as planar video
// formats, has no formula and yields ErrUnspecifiedSize, as does a
// pitch too large for the size field.
func PitchOrLinearSize(t format.Texture, width uint32) (SizeField, error) {
	var pitch uint64
	switch t := t.(type) {
	case format.Compressed:
		bw, bh, bytes, ok := t.Block()
		if !ok {
			return SizeField{}, ErrUnspecifiedSize
		}

		n := geom.CeilDiv(uint64(width), uint64(bw))
		if bh > 1 {
			n = max(1, n)
		}
		pitch = n * uint64(bytes)

	case format.Uncompressed:
		bpp := t.BitsPerPixel()
		if bpp == 0 {
			return SizeField{}, ErrUnspecifiedSize
		}
		pitch = geom.CeilDiv(uint64(width)*uint64(bpp), 8)

	default:
		return SizeField{}, ErrUnspecifiedSize
	}

	if pitch > math.MaxUint32 {
		return SizeField{}, fmt.Errorf("%w: pitch of %v at width %d overflows", ErrUnspecifiedSize, t, width)
	}
	return Pitch(uint32(pitch)), nil
}
