// Package dds reads and writes the headers of DirectDraw Surface
// containers and identifies the texture format that they describe.
//
// A header can declare its format in three ways that have accumulated
// over the life of the format: a four character code, a set of raw
// channel bit masks, or a DX10 extension block carrying an enumerated
// format id. [Header.Format] resolves all of them into a single
// [format.Texture].
//
// The package registers itself with the image package, so importing
// it allows image.DecodeConfig to read DDS files:
//
//	import _ "deedles.dev/dds"
package dds

import (
	"fmt"

	"deedles.dev/dds/format"
)

const (
	// HeaderSize is the value of the size field of a header. It does
	// not include the four byte magic.
	HeaderSize = 124

	// PixelFormatSize is the value of the size field of the pixel
	// format block embedded in a header.
	PixelFormatSize = 32

	// ExtensionSize is the size of the DX10 extension block.
	ExtensionSize = 20
)

var (
	magic      = [4]byte{'D', 'D', 'S', ' '}
	fourCCDX10 = FourCC{'D', 'X', '1', '0'}
)

// FourCC is a four character code identifying a legacy pixel format.
type FourCC [4]byte

func (c FourCC) String() string {
	return fmt.Sprintf("%q", string(c[:]))
}

// Uint32 returns the code interpreted as a little-endian integer,
// which is how legacy numeric format ids share the field.
func (c FourCC) Uint32() uint32 {
	return uint32(c[0]) | uint32(c[1])<<8 | uint32(c[2])<<16 | uint32(c[3])<<24
}

// SizeKind says how the size field of a header is interpreted.
type SizeKind uint8

const (
	// SizePitch is the number of bytes in a row of the top-level
	// surface.
	SizePitch SizeKind = iota

	// SizeLinear is the number of bytes in the whole top-level
	// surface.
	SizeLinear
)

// SizeField is a header's pitch or linear size.
type SizeField struct {
	Kind  SizeKind
	Value uint32
}

func Pitch(v uint32) SizeField { return SizeField{Kind: SizePitch, Value: v} }

func Linear(v uint32) SizeField { return SizeField{Kind: SizeLinear, Value: v} }

func (s SizeField) String() string {
	if s.Kind == SizeLinear {
		return fmt.Sprintf("Linear(%d)", s.Value)
	}
	return fmt.Sprintf("Pitch(%d)", s.Value)
}

// ResourceDimension is the dimensionality of the surfaces described by
// an extension block.
type ResourceDimension uint32

const (
	Texture1D ResourceDimension = 2
	Texture2D ResourceDimension = 3
	Texture3D ResourceDimension = 4
)

func (d ResourceDimension) Valid() bool {
	return (d >= Texture1D) && (d <= Texture3D)
}

func (d ResourceDimension) String() string {
	switch d {
	case Texture1D:
		return "1D"
	case Texture2D:
		return "2D"
	case Texture3D:
		return "3D"
	default:
		return fmt.Sprintf("ResourceDimension(%d)", uint32(d))
	}
}

// Extension is the DX10 extension block. It is present on a header
// read from a stream if and only if the raw four character code is
// "DX10", and it is only written if the header's FourCC is "DX10". A
// zero Dimension is written as Texture2D.
type Extension struct {
	Format    format.DXGI
	Dimension ResourceDimension
	ArraySize uint32
	AlphaMode AlphaMode
}

// Header is the header of a DDS container.
//
// Optional fields are nil when absent. When reading, each is present
// if and only if the flag that validates it was set. When writing, a
// nil Size is derived from the header's format and the other flags
// are always recomputed from the fields that are present.
type Header struct {
	Height uint32
	Width  uint32

	Size        *SizeField
	Depth       *uint32
	MipMapCount *uint32

	PixelFlags PixelFormatFlags

	// FourCC is present on a header read from a stream if and only if
	// PixelFlags has PixelFourCC. When writing, that flag is derived
	// from FourCC instead.
	FourCC *FourCC

	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32

	Caps2 Caps2Flags

	Extension *Extension
}

// Extended reports whether the header's FourCC signals an extension
// block.
func (h *Header) Extended() bool {
	return (h.FourCC != nil) && (*h.FourCC == fourCCDX10)
}

// Mask returns the header's legacy bit mask description.
func (h *Header) Mask() format.Mask {
	return format.Mask{
		Bits: h.RGBBitCount,
		R:    h.RBitMask,
		G:    h.GBitMask,
		B:    h.BBitMask,
		A:    h.ABitMask,
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("DDS %dx%d %v", h.Width, h.Height, h.Format())
}
