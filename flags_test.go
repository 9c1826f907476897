package dds_test

import (
	"testing"

	"deedles.dev/dds"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	require.True(t, dds.FlagTexture.Has(dds.FlagCaps|dds.FlagWidth))
	require.False(t, dds.FlagTexture.Has(dds.FlagCaps|dds.FlagDepth))
	require.True(t, dds.Caps2CubemapAllFaces.Has(dds.Caps2CubemapNegativeZ))
	require.False(t, dds.Caps2CubemapAllFaces.Has(dds.Caps2Volume))
}

func TestStrings(t *testing.T) {
	require.Equal(t, "premultiplied", dds.AlphaModePremultiplied.String())
	require.Equal(t, "AlphaMode(9)", dds.AlphaMode(9).String())
	require.True(t, dds.AlphaModeCustom.Valid())
	require.False(t, dds.AlphaMode(5).Valid())
	require.Equal(t, "3D", dds.Texture3D.String())
	require.Equal(t, "ResourceDimension(1)", dds.ResourceDimension(1).String())
	require.Equal(t, "Pitch(24)", dds.Pitch(24).String())
	require.Equal(t, "Linear(8)", dds.Linear(8).String())
	require.Equal(t, `"DXT1"`, dds.FourCC{'D', 'X', 'T', '1'}.String())
	require.Equal(t, uint32(0x31545844), dds.FourCC{'D', 'X', 'T', '1'}.Uint32())
}
