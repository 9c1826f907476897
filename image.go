package dds

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"deedles.dev/dds/format"
)

func init() {
	image.RegisterFormat("dds", string(magic[:]), Decode, DecodeConfig)
}

// DecodeConfig returns the dimensions of the top-level surface of a
// DDS file and a color model for its format. Formats without a pixel
// codec in the format package report color.RGBAModel.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	var model color.Model = color.RGBAModel
	if px, ok := pixelFormat(h.Format()); ok {
		model = format.Model{Format: px}
	}

	return image.Config{
		ColorModel: model,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

// Decode reads the top-level surface of a DDS file. Only uncompressed
// formats that can be described by bit masks are supported. Compressed
// surfaces must be decoded with a BlockDecoder instead.
func Decode(r io.Reader) (image.Image, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	t := h.Format()
	px, ok := pixelFormat(t)
	if !ok {
		return nil, fmt.Errorf("%w: can't decode %v", ErrUnsupportedFormat, t)
	}

	w, ht := uint64(h.Width), uint64(h.Height)
	pitch := w * uint64(px.Size())
	if (h.Size != nil) && (h.Size.Kind == SizePitch) {
		pitch = max(pitch, uint64(h.Size.Value))
	}
	if (pitch > math.MaxInt) || (ht > math.MaxInt) || ((ht != 0) && (pitch > math.MaxInt/ht)) {
		return nil, fmt.Errorf("%w: surface of %dx%d with pitch %d is too large", ErrInvalidHeader, w, ht, pitch)
	}

	n := int64(pitch * ht)
	pix, err := io.ReadAll(io.LimitReader(r, n))
	if err != nil {
		return nil, fmt.Errorf("read surface: %w", err)
	}
	if int64(len(pix)) < n {
		return nil, fmt.Errorf("read surface: %w", io.ErrUnexpectedEOF)
	}

	return &format.Image{
		Format: px,
		Rect:   image.Rect(0, 0, int(w), int(ht)),
		Pix:    pix,
		Pitch:  int(pitch),
	}, nil
}

func pixelFormat(t format.Texture) (format.Masked, bool) {
	u, ok := t.(format.Uncompressed)
	if !ok {
		return format.Masked{}, false
	}
	return u.Pixel()
}
