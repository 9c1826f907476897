package dds

// layout holds the values of a header that are derived from the rest
// of it when writing.
type layout struct {
	flags      HeaderFlags
	caps       CapsFlags
	caps2      Caps2Flags
	pixelFlags PixelFormatFlags
	size       SizeField
	depth      uint32
	mips       uint32

	extended  bool
	dimension ResourceDimension
	misc      MiscFlags
}

// derive computes the layout of h. It doesn't modify h.
func derive(h *Header) (layout, error) {
	l := layout{
		flags:      FlagTexture,
		caps:       CapsTexture,
		caps2:      h.Caps2,
		pixelFlags: h.PixelFlags &^ PixelFourCC,
		extended:   h.Extended(),
		dimension:  Texture2D,
	}

	if h.FourCC != nil {
		l.pixelFlags |= PixelFourCC
	}
	if (h.Extension != nil) && (h.Extension.Dimension != 0) {
		l.dimension = h.Extension.Dimension
	}

	if h.Size != nil {
		l.size = *h.Size
	} else {
		size, err := PitchOrLinearSize(h.Format(), h.Width)
		if err != nil {
			return layout{}, err
		}
		l.size = size
	}
	switch l.size.Kind {
	case SizeLinear:
		l.flags |= FlagLinearSize
	default:
		l.flags |= FlagPitch
	}

	if (h.Depth != nil) || l.caps2.Has(Caps2Volume) || (l.dimension == Texture3D) {
		l.flags |= FlagDepth
		l.caps2 |= Caps2Volume
		l.dimension = Texture3D
		l.depth = 1
		if h.Depth != nil {
			l.depth = max(1, *h.Depth)
		}
	}

	if h.MipMapCount != nil {
		l.flags |= FlagMipMapCount
		l.caps |= CapsMipMap | CapsComplex
		l.mips = *h.MipMapCount
	}

	if l.caps2.Has(Caps2Cubemap) {
		l.caps |= CapsComplex
		if l.extended {
			l.misc |= MiscTextureCube
		}
	}

	return l, nil
}
