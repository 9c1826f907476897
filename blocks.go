package dds

import (
	"fmt"
	"iter"

	"deedles.dev/dds/format"
	"deedles.dev/dds/geom"
)

// BlockDecoder decodes the pixels of a single block of a compressed
// surface. Implementations are provided by codecs outside of this
// package.
type BlockDecoder interface {
	// DecodeBlock decodes the block stored in src into the region of
	// dst given by block. block may be smaller than the scheme's block
	// size along the right and bottom edges of a surface.
	DecodeBlock(dst *format.Image, src []byte, block geom.Rect[int]) error
}

// BlockDecoderFunc adapts a function to the BlockDecoder interface.
type BlockDecoderFunc func(dst *format.Image, src []byte, block geom.Rect[int]) error

func (f BlockDecoderFunc) DecodeBlock(dst *format.Image, src []byte, block geom.Rect[int]) error {
	return f(dst, src, block)
}

// Decoders is a set of block decoders keyed by the compression scheme
// that they handle.
type Decoders map[format.Scheme]BlockDecoder

// For returns the decoder that applies to t. It returns an error
// matching ErrUnsupportedFormat if t isn't compressed or if no decoder
// has been provided for its scheme.
func (d Decoders) For(t format.Texture) (BlockDecoder, error) {
	c, ok := t.(format.Compressed)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not compressed", ErrUnsupportedFormat, t)
	}

	dec, ok := d[c.Scheme]
	if !ok || (dec == nil) {
		return nil, fmt.Errorf("%w: no decoder for %v", ErrUnsupportedFormat, c.Scheme)
	}
	return dec, nil
}

// Blocks yields the texel coordinates of the blocks of a surface of
// format t in the order that they are stored. It yields nothing if t
// isn't made of fixed-size blocks.
func Blocks(t format.Texture, width, height int) iter.Seq[geom.Rect[int]] {
	cell, ok := blockSize(t)
	if !ok {
		return func(func(geom.Rect[int]) bool) {}
	}
	return geom.TiledGrid(geom.Rt(0, 0, width, height), cell)
}

// BlockGrid is like Blocks but returns the blocks as a slice. The
// index of a block in the slice is its index in the surface data, so
// block i starts at byte i times the scheme's block size.
func BlockGrid(t format.Texture, width, height int) []geom.Rect[int] {
	cell, ok := blockSize(t)
	if !ok {
		return nil
	}

	r := geom.Rt(0, 0, width, height)
	n := geom.GridSize(r, cell)
	blocks := make([]geom.Rect[int], n.X*n.Y)
	geom.TileGrid(blocks, r, cell)
	return blocks
}

func blockSize(t format.Texture) (geom.Point[int], bool) {
	c, ok := t.(format.Compressed)
	if !ok {
		return geom.Point[int]{}, false
	}

	bw, bh, _, ok := c.Block()
	if !ok {
		return geom.Point[int]{}, false
	}
	return geom.Pt(int(bw), int(bh)), true
}
