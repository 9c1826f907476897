package dds_test

import (
	"testing"

	"deedles.dev/dds"
	"deedles.dev/dds/format"
	"github.com/stretchr/testify/require"
)

func fourCC(s string) *dds.FourCC {
	var c dds.FourCC
	copy(c[:], s)
	return &c
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		header dds.Header
		format format.Texture
	}{
		{
			name:   "DXT1",
			header: dds.Header{FourCC: fourCC("DXT1")},
			format: format.Compressed{Scheme: format.BC1, Variant: format.VariantUNorm},
		},
		{
			name:   "DXT5",
			header: dds.Header{FourCC: fourCC("DXT5")},
			format: format.Compressed{Scheme: format.BC3, Variant: format.VariantUNorm},
		},
		{
			name:   "BC5S",
			header: dds.Header{FourCC: fourCC("BC5S")},
			format: format.Compressed{Scheme: format.BC5, Variant: format.VariantSNorm},
		},
		{
			name:   "YUY2",
			header: dds.Header{FourCC: fourCC("YUY2")},
			format: format.Compressed{Scheme: format.YUY2},
		},
		{
			name:   "D3D",
			header: dds.Header{FourCC: &dds.FourCC{113, 0, 0, 0}},
			format: format.Uncompressed{Repr: format.ReprFloat, Channels: format.RGBA(16, 16, 16, 16)},
		},
		{
			name:   "UnknownFourCC",
			header: dds.Header{FourCC: fourCC("ABCD")},
			format: format.Unknown(0x44434241),
		},
		{
			name: "RGBA",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB | dds.PixelAlphaPixels,
				RGBBitCount: 32,
				RBitMask:    0x000000FF,
				GBitMask:    0x0000FF00,
				BBitMask:    0x00FF0000,
				ABitMask:    0xFF000000,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.RGBA(8, 8, 8, 8)},
		},
		{
			name: "BGRA",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB | dds.PixelAlphaPixels,
				RGBBitCount: 32,
				RBitMask:    0x00FF0000,
				GBitMask:    0x0000FF00,
				BBitMask:    0x000000FF,
				ABitMask:    0xFF000000,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.BGRA(8, 8, 8, 8)},
		},
		{
			name: "FourCCOverMask",
			header: dds.Header{
				PixelFlags:  dds.PixelFourCC | dds.PixelRGB | dds.PixelAlphaPixels,
				FourCC:      fourCC("DXT3"),
				RGBBitCount: 32,
				RBitMask:    0x000000FF,
				GBitMask:    0x0000FF00,
				BBitMask:    0x00FF0000,
				ABitMask:    0xFF000000,
			},
			format: format.Compressed{Scheme: format.BC2, Variant: format.VariantUNorm},
		},
		{
			name: "B5G5R5A1",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB | dds.PixelAlphaPixels,
				RGBBitCount: 16,
				RBitMask:    0x7C00,
				GBitMask:    0x03E0,
				BBitMask:    0x001F,
				ABitMask:    0x8000,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.BGRA(5, 5, 5, 1)},
		},
		{
			name: "B4G4R4A4",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB | dds.PixelAlphaPixels,
				RGBBitCount: 16,
				RBitMask:    0x0F00,
				GBitMask:    0x00F0,
				BBitMask:    0x000F,
				ABitMask:    0xF000,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.BGRA(4, 4, 4, 4)},
		},
		{
			name: "R10G10B10A2",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB | dds.PixelAlphaPixels,
				RGBBitCount: 32,
				RBitMask:    0x000003FF,
				GBitMask:    0x000FFC00,
				BBitMask:    0x3FF00000,
				ABitMask:    0xC0000000,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.RGBA(10, 10, 10, 2)},
		},
		{
			name: "R10G10B10A2Swapped",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB | dds.PixelAlphaPixels,
				RGBBitCount: 32,
				RBitMask:    0x3FF00000,
				GBitMask:    0x000FFC00,
				BBitMask:    0x000003FF,
				ABitMask:    0xC0000000,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.RGBA(10, 10, 10, 2)},
		},
		{
			name: "B5G6R5",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB,
				RGBBitCount: 16,
				RBitMask:    0xF800,
				GBitMask:    0x07E0,
				BBitMask:    0x001F,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.BGR(5, 6, 5)},
		},
		{
			name: "Luminance",
			header: dds.Header{
				PixelFlags:  dds.PixelLuminance,
				RGBBitCount: 8,
				RBitMask:    0xFF,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.R(8)},
		},
		{
			name: "Alpha",
			header: dds.Header{
				PixelFlags:  dds.PixelAlpha,
				RGBBitCount: 8,
				ABitMask:    0xFF,
			},
			format: format.Uncompressed{Repr: format.ReprUNorm, Channels: format.A(8)},
		},
		{
			name: "FallbackMask",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB,
				RGBBitCount: 16,
				RBitMask:    0x000F,
				GBitMask:    0x00F0,
				BBitMask:    0x0F00,
			},
			format: format.Uncompressed{
				Repr:     format.ReprUNorm,
				Channels: format.BitMask(format.Mask{Bits: 16, R: 0x000F, G: 0x00F0, B: 0x0F00}),
			},
		},
		{
			name: "NoKind",
			header: dds.Header{
				RGBBitCount: 32,
				RBitMask:    0x000000FF,
			},
			format: format.Unknown(0),
		},
		{
			name: "ExtensionPriority",
			header: dds.Header{
				FourCC:    fourCC("DXT1"),
				Extension: &dds.Extension{Format: format.DXGIBC7UNorm},
			},
			format: format.Compressed{Scheme: format.BC7, Variant: format.VariantUNorm},
		},
		{
			name: "ExtensionOverMask",
			header: dds.Header{
				PixelFlags:  dds.PixelRGB,
				RGBBitCount: 32,
				RBitMask:    0xFF,
				Extension:   &dds.Extension{Format: format.DXGIR16SInt},
			},
			format: format.Uncompressed{Repr: format.ReprSInt, Channels: format.R(16)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.format, test.header.Format())
		})
	}
}

func TestFormatString(t *testing.T) {
	h := dds.Header{Width: 8, Height: 4, FourCC: fourCC("DXT1")}
	require.Equal(t, "DDS 8x4 BC1_UNORM", h.String())
}
