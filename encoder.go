package dds

import (
	"encoding/binary"
	"io"
)

// WriteHeader writes h, including the leading magic, to w. Flags and
// capabilities are recomputed from the fields of h rather than taken
// from it, and a nil size is derived from the header's format using
// PitchOrLinearSize. An extension block is written if and only if the
// header's FourCC is "DX10". If it is and h.Extension is nil, a
// default extension block is written.
//
// If writing to w fails, a partial header may have been written.
func WriteHeader(w io.Writer, h *Header) error {
	data, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// MarshalBinary implements encoding.BinaryMarshaler. See WriteHeader
// for details.
func (h *Header) MarshalBinary() ([]byte, error) {
	l, err := derive(h)
	if err != nil {
		return nil, err
	}

	size := len(magic) + HeaderSize
	if l.extended {
		size += ExtensionSize
	}

	e := encoder{buf: make([]byte, 0, size)}
	e.bytes4(magic)
	e.header(h, &l)
	e.pixelFormat(h, &l)
	e.uint32(uint32(l.caps))
	e.uint32(uint32(l.caps2))
	e.reserved(3 * 4)
	if l.extended {
		e.extension(h, &l)
	}

	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) header(h *Header, l *layout) {
	e.uint32(HeaderSize)
	e.uint32(uint32(l.flags))
	e.uint32(h.Height)
	e.uint32(h.Width)
	e.uint32(l.size.Value)
	e.uint32(l.depth)
	e.uint32(l.mips)
	e.reserved(11 * 4)
}

func (e *encoder) pixelFormat(h *Header, l *layout) {
	e.uint32(PixelFormatSize)
	e.uint32(uint32(l.pixelFlags))

	var code FourCC
	if h.FourCC != nil {
		code = *h.FourCC
	}
	e.bytes4(code)

	e.uint32(h.RGBBitCount)
	e.uint32(h.RBitMask)
	e.uint32(h.GBitMask)
	e.uint32(h.BBitMask)
	e.uint32(h.ABitMask)
}

func (e *encoder) extension(h *Header, l *layout) {
	var ext Extension
	if h.Extension != nil {
		ext = *h.Extension
	}

	e.uint32(uint32(ext.Format))
	e.uint32(uint32(l.dimension))
	e.uint32(uint32(l.misc))
	e.uint32(ext.ArraySize)
	e.uint32(uint32(ext.AlphaMode))
}

func (e *encoder) uint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *encoder) bytes4(v [4]byte) {
	e.buf = append(e.buf, v[:]...)
}

func (e *encoder) reserved(n int) {
	e.buf = append(e.buf, make([]byte, n)...)
}
