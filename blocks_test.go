package dds_test

import (
	"slices"
	"testing"

	"deedles.dev/dds"
	"deedles.dev/dds/format"
	"deedles.dev/dds/geom"
	"github.com/stretchr/testify/require"
)

func TestDecodersFor(t *testing.T) {
	var called []format.Scheme
	decoder := func(s format.Scheme) dds.BlockDecoder {
		return dds.BlockDecoderFunc(func(*format.Image, []byte, geom.Rect[int]) error {
			called = append(called, s)
			return nil
		})
	}

	decoders := dds.Decoders{
		format.BC1: decoder(format.BC1),
		format.BC3: decoder(format.BC3),
	}

	dec, err := decoders.For(format.DXGIBC3UNormSRGB.Texture())
	require.NoError(t, err)
	require.NoError(t, dec.DecodeBlock(nil, nil, geom.Rect[int]{}))
	require.Equal(t, []format.Scheme{format.BC3}, called)

	_, err = decoders.For(format.DXGIBC7UNorm.Texture())
	require.ErrorIs(t, err, dds.ErrUnsupportedFormat)

	_, err = decoders.For(format.DXGIR8G8B8A8UNorm.Texture())
	require.ErrorIs(t, err, dds.ErrUnsupportedFormat)

	_, err = decoders.For(format.Unknown(3))
	require.ErrorIs(t, err, dds.ErrUnsupportedFormat)
}

func TestBlocks(t *testing.T) {
	blocks := slices.Collect(dds.Blocks(format.DXGIBC1UNorm.Texture(), 6, 5))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 4),
		geom.Rt(4, 0, 6, 4),
		geom.Rt(0, 4, 4, 5),
		geom.Rt(4, 4, 6, 5),
	}, blocks)

	blocks = slices.Collect(dds.Blocks(format.DXGIYUY2.Texture(), 3, 1))
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 2, 1),
		geom.Rt(2, 0, 3, 1),
	}, blocks)

	require.Empty(t, slices.Collect(dds.Blocks(format.DXGINV12.Texture(), 4, 4)))
	require.Empty(t, slices.Collect(dds.Blocks(format.DXGIR8G8B8A8UNorm.Texture(), 4, 4)))
	require.Empty(t, slices.Collect(dds.Blocks(format.DXGIBC1UNorm.Texture(), 0, 4)))
}

func TestBlockGrid(t *testing.T) {
	tex := format.DXGIBC7UNorm.Texture()
	blocks := dds.BlockGrid(tex, 9, 4)
	require.Equal(t, []geom.Rect[int]{
		geom.Rt(0, 0, 4, 4),
		geom.Rt(4, 0, 8, 4),
		geom.Rt(8, 0, 9, 4),
	}, blocks)
	require.Equal(t, slices.Collect(dds.Blocks(tex, 9, 4)), blocks)

	require.Empty(t, dds.BlockGrid(tex, 0, 0))
	require.Nil(t, dds.BlockGrid(format.DXGIP010.Texture(), 4, 4))
	require.Nil(t, dds.BlockGrid(format.Unknown(0), 4, 4))
}
