package dds

import "deedles.dev/dds/format"

// Format resolves the texture format that the header describes. The
// extension block takes priority, followed by the four character code,
// which may instead hold a legacy numeric format id, and finally the
// bit masks. It never fails. Headers that can't be identified yield a
// format.Unknown carrying the raw id, or zero if there was none.
func (h *Header) Format() format.Texture {
	if h.Extension != nil {
		return h.Extension.Format.Texture()
	}

	if h.FourCC != nil {
		if t, ok := format.LookupFourCC(*h.FourCC); ok {
			return t
		}

		id := h.FourCC.Uint32()
		if t, ok := format.LookupD3D(id); ok {
			return t
		}
		return format.Unknown(id)
	}

	kind, ok := h.maskKind()
	if !ok {
		return format.Unknown(0)
	}

	m := h.Mask()
	if t, ok := format.LookupMask(kind, m); ok {
		return t
	}
	return format.Uncompressed{
		Repr:     format.ReprUNorm,
		Channels: format.BitMask(m),
	}
}

func (h *Header) maskKind() (format.MaskKind, bool) {
	switch {
	case h.PixelFlags.Has(PixelRGB):
		return format.MaskRGB, true
	case h.PixelFlags.Has(PixelLuminance):
		return format.MaskLuminance, true
	case h.PixelFlags.Has(PixelAlpha):
		return format.MaskAlpha, true
	default:
		return 0, false
	}
}
