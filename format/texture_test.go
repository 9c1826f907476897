package format_test

import (
	"testing"

	"deedles.dev/dds/format"
	"github.com/stretchr/testify/require"
)

func TestTextureString(t *testing.T) {
	tests := []struct {
		texture format.Texture
		str     string
	}{
		{format.Uncompressed{Repr: format.ReprUNorm, Channels: format.RGBA(8, 8, 8, 8)}, "R8G8B8A8_UNORM"},
		{format.Uncompressed{Repr: format.ReprUNormSRGB, Channels: format.BGRX(8, 8, 8, 8)}, "B8G8R8X8_UNORM_SRGB"},
		{format.Uncompressed{Repr: format.ReprSpecial, Special: format.D24UNormS8UInt}, "D24_UNORM_S8_UINT"},
		{format.Uncompressed{Repr: format.ReprUNorm, Channels: format.BitMask(format.Mask{Bits: 16, R: 0xF})}, "MASK(16; 0xf, 0x0, 0x0, 0x0)_UNORM"},
		{format.Compressed{Scheme: format.BC6H, Variant: format.VariantSF16}, "BC6H_SF16"},
		{format.Compressed{Scheme: format.NV12}, "NV12"},
		{format.Unknown(0x20), "UNKNOWN(0x20)"},
	}

	for _, test := range tests {
		require.Equal(t, test.str, test.texture.String())
	}
}

func TestDXGI(t *testing.T) {
	require.True(t, format.DXGIUnknown.Valid())
	require.True(t, format.DXGIV408.Valid())
	require.False(t, format.DXGI(116).Valid())
	require.False(t, format.DXGI(129).Valid())
	require.False(t, format.DXGI(133).Valid())

	require.Equal(t, "BC1_UNORM", format.DXGIBC1UNorm.String())
	require.Equal(t, "DXGI(500)", format.DXGI(500).String())
	require.Equal(t, format.Unknown(500), format.DXGI(500).Texture())
	require.Equal(t, format.Unknown(0), format.DXGIUnknown.Texture())

	// Signed integer formats stay integers.
	require.Equal(t, format.Uncompressed{Repr: format.ReprSInt, Channels: format.R(16)}, format.DXGIR16SInt.Texture())
	require.Equal(t, format.Uncompressed{Repr: format.ReprSInt, Channels: format.R(8)}, format.DXGIR8SInt.Texture())

	for d := range format.DXGI(140) {
		if (d == format.DXGIUnknown) || !d.Valid() {
			continue
		}
		require.Equal(t, d.String(), d.Texture().String(), "%d", d)
	}
}

func TestLookupFourCC(t *testing.T) {
	tests := []struct {
		code    string
		texture format.Texture
	}{
		{"DXT1", format.Compressed{Scheme: format.BC1, Variant: format.VariantUNorm}},
		{"DXT2", format.Compressed{Scheme: format.BC2, Variant: format.VariantUNorm}},
		{"DXT3", format.Compressed{Scheme: format.BC2, Variant: format.VariantUNorm}},
		{"DXT4", format.Compressed{Scheme: format.BC3, Variant: format.VariantUNorm}},
		{"DXT5", format.Compressed{Scheme: format.BC3, Variant: format.VariantUNorm}},
		{"ATI1", format.Compressed{Scheme: format.BC4, Variant: format.VariantUNorm}},
		{"BC4S", format.Compressed{Scheme: format.BC4, Variant: format.VariantSNorm}},
		{"ATI2", format.Compressed{Scheme: format.BC5, Variant: format.VariantUNorm}},
		{"BC5S", format.Compressed{Scheme: format.BC5, Variant: format.VariantSNorm}},
		{"RGBG", format.Compressed{Scheme: format.R8G8B8G8}},
		{"GRGB", format.Compressed{Scheme: format.G8R8G8B8}},
		{"UYVY", format.Compressed{Scheme: format.UYVY}},
	}

	for _, test := range tests {
		var code [4]byte
		copy(code[:], test.code)

		tex, ok := format.LookupFourCC(code)
		require.True(t, ok, test.code)
		require.Equal(t, test.texture, tex, test.code)
	}

	_, ok := format.LookupFourCC([4]byte{'D', 'X', '1', '0'})
	require.False(t, ok)
}

func TestLookupD3D(t *testing.T) {
	tex, ok := format.LookupD3D(116)
	require.True(t, ok)
	require.Equal(t, format.DXGIR32G32B32A32Float.Texture(), tex)

	_, ok = format.LookupD3D(21)
	require.False(t, ok)
}

func TestLookupMask(t *testing.T) {
	tex, ok := format.LookupMask(format.MaskRGB, format.Mask{Bits: 16, R: 0xF800, G: 0x07E0, B: 0x001F})
	require.True(t, ok)
	require.Equal(t, format.DXGIB5G6R5UNorm.Texture(), tex)

	a, ok := format.LookupMask(format.MaskRGB, format.Mask{Bits: 32, R: 0x3FF, G: 0xFFC00, B: 0x3FF00000, A: 0xC0000000})
	require.True(t, ok)
	b, ok := format.LookupMask(format.MaskRGB, format.Mask{Bits: 32, R: 0x3FF00000, G: 0xFFC00, B: 0x3FF, A: 0xC0000000})
	require.True(t, ok)
	require.Equal(t, a, b)

	_, ok = format.LookupMask(format.MaskLuminance, format.Mask{Bits: 32, R: 0xFF, G: 0xFF00, B: 0xFF0000, A: 0xFF000000})
	require.False(t, ok)

	_, ok = format.LookupMask(format.MaskKind(9), format.Mask{})
	require.False(t, ok)
}

func TestChannelsMasks(t *testing.T) {
	m, ok := format.BGRA(5, 5, 5, 1).Masks()
	require.True(t, ok)
	require.Equal(t, format.Mask{Bits: 16, R: 0x7C00, G: 0x03E0, B: 0x001F, A: 0x8000}, m)

	m, ok = format.RGBA(10, 10, 10, 2).Masks()
	require.True(t, ok)
	require.Equal(t, format.Mask{Bits: 32, R: 0x3FF, G: 0xFFC00, B: 0x3FF00000, A: 0xC0000000}, m)

	m, ok = format.BGRX(8, 8, 8, 8).Masks()
	require.True(t, ok)
	require.Equal(t, format.Mask{Bits: 32, R: 0xFF0000, G: 0xFF00, B: 0xFF}, m)

	_, ok = format.RGBA(16, 16, 16, 16).Masks()
	require.False(t, ok)
}

func TestPixel(t *testing.T) {
	px, ok := format.DXGIB8G8R8A8UNorm.Texture().(format.Uncompressed).Pixel()
	require.True(t, ok)
	require.Equal(t, format.ARGB8888, px)

	px, ok = format.DXGIB8G8R8X8UNorm.Texture().(format.Uncompressed).Pixel()
	require.True(t, ok)
	require.Equal(t, format.XRGB8888, px)

	_, ok = format.DXGIR8G8B8A8SInt.Texture().(format.Uncompressed).Pixel()
	require.False(t, ok)

	_, ok = format.DXGIR1UNorm.Texture().(format.Uncompressed).Pixel()
	require.False(t, ok)

	_, ok = format.DXGIR9G9B9E5SharedExp.Texture().(format.Uncompressed).Pixel()
	require.False(t, ok)
}

func TestCompressedBlock(t *testing.T) {
	w, h, n, ok := format.Compressed{Scheme: format.BC1}.Block()
	require.True(t, ok)
	require.Equal(t, [...]uint32{4, 4, 8}, [...]uint32{w, h, n})

	w, h, n, ok = format.Compressed{Scheme: format.UYVY}.Block()
	require.True(t, ok)
	require.Equal(t, [...]uint32{2, 1, 4}, [...]uint32{w, h, n})

	_, _, _, ok = format.Compressed{Scheme: format.P010}.Block()
	require.False(t, ok)
}
