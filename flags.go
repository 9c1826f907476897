package dds

import "fmt"

// HeaderFlags indicate which fields of a header are valid.
type HeaderFlags uint32

const (
	FlagCaps        HeaderFlags = 0x1
	FlagHeight      HeaderFlags = 0x2
	FlagWidth       HeaderFlags = 0x4
	FlagPitch       HeaderFlags = 0x8
	FlagPixelFormat HeaderFlags = 0x1000
	FlagMipMapCount HeaderFlags = 0x20000
	FlagLinearSize  HeaderFlags = 0x80000
	FlagDepth       HeaderFlags = 0x800000

	// FlagTexture is the set of flags that every header carries.
	FlagTexture = FlagCaps | FlagHeight | FlagWidth | FlagPixelFormat

	headerFlagsKnown = FlagTexture | FlagPitch | FlagMipMapCount | FlagLinearSize | FlagDepth
)

func (f HeaderFlags) Has(flags HeaderFlags) bool { return f&flags == flags }

// CapsFlags describe the complexity of the surfaces in a container.
type CapsFlags uint32

const (
	CapsComplex CapsFlags = 0x8
	CapsTexture CapsFlags = 0x1000
	CapsMipMap  CapsFlags = 0x400000
)

func (f CapsFlags) Has(flags CapsFlags) bool { return f&flags == flags }

// Caps2Flags describe cube map and volume textures.
type Caps2Flags uint32

const (
	Caps2Cubemap          Caps2Flags = 0x200
	Caps2CubemapPositiveX Caps2Flags = 0x400
	Caps2CubemapNegativeX Caps2Flags = 0x800
	Caps2CubemapPositiveY Caps2Flags = 0x1000
	Caps2CubemapNegativeY Caps2Flags = 0x2000
	Caps2CubemapPositiveZ Caps2Flags = 0x4000
	Caps2CubemapNegativeZ Caps2Flags = 0x8000
	Caps2Volume           Caps2Flags = 0x200000

	Caps2CubemapAllFaces = Caps2Cubemap |
		Caps2CubemapPositiveX | Caps2CubemapNegativeX |
		Caps2CubemapPositiveY | Caps2CubemapNegativeY |
		Caps2CubemapPositiveZ | Caps2CubemapNegativeZ

	caps2FlagsKnown = Caps2CubemapAllFaces | Caps2Volume
)

func (f Caps2Flags) Has(flags Caps2Flags) bool { return f&flags == flags }

// PixelFormatFlags declare what kind of data the pixel format block
// describes.
type PixelFormatFlags uint32

const (
	PixelAlphaPixels PixelFormatFlags = 0x1
	PixelAlpha       PixelFormatFlags = 0x2
	PixelFourCC      PixelFormatFlags = 0x4
	PixelRGB         PixelFormatFlags = 0x40
	PixelYUV         PixelFormatFlags = 0x200
	PixelLuminance   PixelFormatFlags = 0x20000

	pixelFormatFlagsKnown = PixelAlphaPixels | PixelAlpha | PixelFourCC | PixelRGB | PixelYUV | PixelLuminance
)

func (f PixelFormatFlags) Has(flags PixelFormatFlags) bool { return f&flags == flags }

// MiscFlags are the miscellaneous flags of the extension block.
type MiscFlags uint32

const (
	MiscTextureCube MiscFlags = 0x4

	miscFlagsKnown = MiscTextureCube
)

func (f MiscFlags) Has(flags MiscFlags) bool { return f&flags == flags }

// AlphaMode is how the alpha channel of an extended header's format
// should be interpreted.
type AlphaMode uint32

const (
	AlphaModeUnknown AlphaMode = iota
	AlphaModeStraight
	AlphaModePremultiplied
	AlphaModeOpaque
	AlphaModeCustom
)

var alphaModeNames = [...]string{
	AlphaModeUnknown:       "unknown",
	AlphaModeStraight:      "straight",
	AlphaModePremultiplied: "premultiplied",
	AlphaModeOpaque:        "opaque",
	AlphaModeCustom:        "custom",
}

func (m AlphaMode) Valid() bool {
	return m <= AlphaModeCustom
}

func (m AlphaMode) String() string {
	if int(m) < len(alphaModeNames) {
		return alphaModeNames[m]
	}
	return fmt.Sprintf("AlphaMode(%d)", uint32(m))
}
