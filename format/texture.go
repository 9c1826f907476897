// Package format describes texture and pixel formats.
//
// A [Texture] is the single unambiguous description of what a
// container's pixel data encodes. It is one of [Uncompressed],
// [Compressed] or [Unknown]. All three are comparable, so resolved
// formats can be compared with ==.
//
// The package also provides [Format], a way of reading and writing
// individual pixels, along with an [Image] type built on it.
package format

import (
	"fmt"
	"strings"
)

// Texture is a texture format. The set of implementations is closed.
type Texture interface {
	fmt.Stringer
	texture()
}

// Repr is the numeric representation of the channels of an
// uncompressed format.
type Repr uint8

const (
	ReprTypeless Repr = iota
	ReprFloat
	ReprUNorm
	ReprUNormSRGB
	ReprSNorm
	ReprUInt
	ReprSInt

	// ReprSpecial marks a layout that cannot be described by
	// Channels. See [Special].
	ReprSpecial
)

var reprNames = [...]string{
	ReprTypeless:  "TYPELESS",
	ReprFloat:     "FLOAT",
	ReprUNorm:     "UNORM",
	ReprUNormSRGB: "UNORM_SRGB",
	ReprSNorm:     "SNORM",
	ReprUInt:      "UINT",
	ReprSInt:      "SINT",
	ReprSpecial:   "SPECIAL",
}

func (r Repr) String() string {
	if int(r) < len(reprNames) {
		return reprNames[r]
	}
	return fmt.Sprintf("Repr(%d)", uint8(r))
}

// Special is an uncompressed layout that is not decomposable into
// independent channels, such as combined depth and stencil formats.
type Special uint8

const (
	R32G8X24Typeless Special = 1 + iota
	D32FloatS8X24UInt
	R32FloatX8X24Typeless
	X32TypelessG8X24UInt
	D32Float
	D24UNormS8UInt
	R24UNormX8Typeless
	X24TypelessG8UInt
	D16UNorm
	R9G9B9E5SharedExp
	R10G10B10XRBiasA2UNorm
	P8
	A8P8
)

var specials = [...]struct {
	name string
	bpp  uint32
}{
	R32G8X24Typeless:       {"R32G8X24_TYPELESS", 64},
	D32FloatS8X24UInt:      {"D32_FLOAT_S8X24_UINT", 64},
	R32FloatX8X24Typeless:  {"R32_FLOAT_X8X24_TYPELESS", 64},
	X32TypelessG8X24UInt:   {"X32_TYPELESS_G8X24_UINT", 64},
	D32Float:               {"D32_FLOAT", 32},
	D24UNormS8UInt:         {"D24_UNORM_S8_UINT", 32},
	R24UNormX8Typeless:     {"R24_UNORM_X8_TYPELESS", 32},
	X24TypelessG8UInt:      {"X24_TYPELESS_G8_UINT", 32},
	D16UNorm:               {"D16_UNORM", 16},
	R9G9B9E5SharedExp:      {"R9G9B9E5_SHAREDEXP", 32},
	R10G10B10XRBiasA2UNorm: {"R10G10B10_XR_BIAS_A2_UNORM", 32},
	P8:                     {"P8", 8},
	A8P8:                   {"A8P8", 16},
}

func (s Special) valid() bool {
	return (s > 0) && (int(s) < len(specials))
}

func (s Special) String() string {
	if s.valid() {
		return specials[s].name
	}
	return fmt.Sprintf("Special(%d)", uint8(s))
}

// Layout is the order and presence of the channels in a Channels.
type Layout uint8

const (
	LayoutRGBA Layout = iota
	LayoutBGRA
	LayoutBGRX // BGR with an unused high channel.
	LayoutRGB
	LayoutBGR
	LayoutRG
	LayoutR
	LayoutA
	LayoutMask
)

// Mask is a raw bit mask description of a pixel: the total number of
// bits and the mask of each channel within them.
type Mask struct {
	Bits       uint32
	R, G, B, A uint32
}

// Channels describes how samples are packed into an uncompressed
// pixel. Depth holds the bit depth of each channel in the order that
// they are named by Layout, starting from the least significant bits.
// Mask is only used by LayoutMask.
type Channels struct {
	Layout Layout
	Depth  [4]uint8
	Mask   Mask
}

func RGBA(r, g, b, a uint8) Channels { return Channels{Layout: LayoutRGBA, Depth: [4]uint8{r, g, b, a}} }
func BGRA(b, g, r, a uint8) Channels { return Channels{Layout: LayoutBGRA, Depth: [4]uint8{b, g, r, a}} }
func BGRX(b, g, r, x uint8) Channels { return Channels{Layout: LayoutBGRX, Depth: [4]uint8{b, g, r, x}} }
func RGB(r, g, b uint8) Channels { return Channels{Layout: LayoutRGB, Depth: [4]uint8{r, g, b}} }
func BGR(b, g, r uint8) Channels { return Channels{Layout: LayoutBGR, Depth: [4]uint8{b, g, r}} }
func RG(r, g uint8) Channels { return Channels{Layout: LayoutRG, Depth: [4]uint8{r, g}} }
func R(r uint8) Channels { return Channels{Layout: LayoutR, Depth: [4]uint8{r}} }
func A(a uint8) Channels { return Channels{Layout: LayoutA, Depth: [4]uint8{a}} }

// BitMask returns a Channels that carries m verbatim.
func BitMask(m Mask) Channels { return Channels{Layout: LayoutMask, Mask: m} }

// layoutNames are the channel letters of each layout, from the least
// significant bits up.
var layoutNames = [...]string{
	LayoutRGBA: "RGBA",
	LayoutBGRA: "BGRA",
	LayoutBGRX: "BGRX",
	LayoutRGB:  "RGB",
	LayoutBGR:  "BGR",
	LayoutRG:   "RG",
	LayoutR:    "R",
	LayoutA:    "A",
}

func (c Channels) String() string {
	if c.Layout == LayoutMask {
		m := c.Mask
		return fmt.Sprintf("MASK(%d; %#x, %#x, %#x, %#x)", m.Bits, m.R, m.G, m.B, m.A)
	}
	if int(c.Layout) >= len(layoutNames) {
		return fmt.Sprintf("Layout(%d)", uint8(c.Layout))
	}

	var buf strings.Builder
	for i, ch := range layoutNames[c.Layout] {
		fmt.Fprintf(&buf, "%c%d", ch, c.Depth[i])
	}
	return buf.String()
}

// Bits returns the total number of bits in a pixel.
func (c Channels) Bits() uint32 {
	if c.Layout == LayoutMask {
		return c.Mask.Bits
	}

	var n uint32
	for _, d := range c.Depth {
		n += uint32(d)
	}
	return n
}

// Masks returns the bit mask equivalent of c. It returns false if
// the pixel does not fit in 32 bits.
func (c Channels) Masks() (Mask, bool) {
	if c.Layout == LayoutMask {
		return c.Mask, true
	}
	if (int(c.Layout) >= len(layoutNames)) || (c.Bits() > 32) {
		return Mask{}, false
	}

	m := Mask{Bits: c.Bits()}
	var shift uint32
	for i, ch := range layoutNames[c.Layout] {
		bits := uint32((uint64(1)<<c.Depth[i] - 1) << shift)
		switch ch {
		case 'R':
			m.R = bits
		case 'G':
			m.G = bits
		case 'B':
			m.B = bits
		case 'A':
			m.A = bits
		}
		shift += uint32(c.Depth[i])
	}
	return m, true
}

// Uncompressed is a format whose pixels are stored directly. If Repr
// is ReprSpecial, the layout is given by Special and Channels is
// unused. Otherwise Special is unused.
type Uncompressed struct {
	Repr     Repr
	Channels Channels
	Special  Special
}

func (Uncompressed) texture() {}

func (f Uncompressed) String() string {
	if f.Repr == ReprSpecial {
		return f.Special.String()
	}
	return f.Channels.String() + "_" + f.Repr.String()
}

// BitsPerPixel returns the number of bits in a single pixel.
func (f Uncompressed) BitsPerPixel() uint32 {
	if f.Repr == ReprSpecial {
		if f.Special.valid() {
			return specials[f.Special].bpp
		}
		return 0
	}
	return f.Channels.Bits()
}

// Pixel returns a Format that reads and writes pixels of f. This is
// only possible for normalized layouts of whole bytes that fit in 32
// bits. Typeless layouts are treated as normalized.
func (f Uncompressed) Pixel() (Masked, bool) {
	switch f.Repr {
	case ReprTypeless, ReprUNorm, ReprUNormSRGB:
	default:
		return Masked{}, false
	}

	m, ok := f.Channels.Masks()
	if !ok {
		return Masked{}, false
	}
	px := Masked(m)
	return px, px.Valid()
}

// Scheme is a compression scheme or a packed or planar video layout.
type Scheme uint8

const (
	BC1 Scheme = 1 + iota
	BC2
	BC3
	BC4
	BC5
	BC6H
	BC7
	R8G8B8G8
	G8R8G8B8
	UYVY
	YUY2
	AYUV
	Y410
	Y416
	NV12
	P010
	P016
	Opaque420
	Y210
	Y216
	NV11
	AI44
	IA44
	P208
	V208
	V408
)

type schemeInfo struct {
	name string

	// block is the footprint of a block in texels and bytes. A zero
	// footprint means that the scheme has no fixed-size blocks.
	blockW, blockH, blockBytes uint32
}

var schemes = [...]schemeInfo{
	BC1:       {"BC1", 4, 4, 8},
	BC2:       {"BC2", 4, 4, 16},
	BC3:       {"BC3", 4, 4, 16},
	BC4:       {"BC4", 4, 4, 8},
	BC5:       {"BC5", 4, 4, 16},
	BC6H:      {"BC6H", 4, 4, 16},
	BC7:       {"BC7", 4, 4, 16},
	R8G8B8G8:  {"R8G8_B8G8_UNORM", 2, 1, 4},
	G8R8G8B8:  {"G8R8_G8B8_UNORM", 2, 1, 4},
	UYVY:      {"UYVY", 2, 1, 4},
	YUY2:      {"YUY2", 2, 1, 4},
	AYUV:      {name: "AYUV"},
	Y410:      {name: "Y410"},
	Y416:      {name: "Y416"},
	NV12:      {name: "NV12"},
	P010:      {name: "P010"},
	P016:      {name: "P016"},
	Opaque420: {name: "420_OPAQUE"},
	Y210:      {name: "Y210"},
	Y216:      {name: "Y216"},
	NV11:      {name: "NV11"},
	AI44:      {name: "AI44"},
	IA44:      {name: "IA44"},
	P208:      {name: "P208"},
	V208:      {name: "V208"},
	V408:      {name: "V408"},
}

func (s Scheme) info() schemeInfo {
	if (s == 0) || (int(s) >= len(schemes)) {
		return schemeInfo{}
	}
	return schemes[s]
}

func (s Scheme) String() string {
	if name := s.info().name; name != "" {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", uint8(s))
}

// Variant is the numeric interpretation of a compressed scheme. BC1,
// BC2, BC3 and BC7 use Typeless, UNorm and UNormSRGB; BC4 and BC5 use
// Typeless, UNorm and SNorm; BC6H uses Typeless, UF16 and SF16. Other
// schemes use VariantNone.
type Variant uint8

const (
	VariantNone Variant = iota
	VariantTypeless
	VariantUNorm
	VariantUNormSRGB
	VariantSNorm
	VariantUF16
	VariantSF16
)

var variantNames = [...]string{
	VariantNone:      "",
	VariantTypeless:  "TYPELESS",
	VariantUNorm:     "UNORM",
	VariantUNormSRGB: "UNORM_SRGB",
	VariantSNorm:     "SNORM",
	VariantUF16:      "UF16",
	VariantSF16:      "SF16",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Compressed is a block-compressed format or a packed or planar video
// format.
type Compressed struct {
	Scheme  Scheme
	Variant Variant
}

func (Compressed) texture() {}

func (f Compressed) String() string {
	if f.Variant == VariantNone {
		return f.Scheme.String()
	}
	return f.Scheme.String() + "_" + f.Variant.String()
}

// Block returns the size of a block in texels and the number of bytes
// that it occupies. It returns false for formats without fixed-size
// blocks, such as planar video formats.
func (f Compressed) Block() (w, h, bytes uint32, ok bool) {
	info := f.Scheme.info()
	if info.blockBytes == 0 {
		return 0, 0, 0, false
	}
	return info.blockW, info.blockH, info.blockBytes, true
}

// Unknown is a format that could not be identified. The value is the
// raw identifier that was found, or zero if there was none.
type Unknown uint32

func (Unknown) texture() {}

func (f Unknown) String() string {
	return fmt.Sprintf("UNKNOWN(%#x)", uint32(f))
}
