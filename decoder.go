package dds

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"deedles.dev/dds/format"
)

// ReadHeader reads a header, including the leading magic and the
// extension block if there is one, from r. It reads exactly the bytes
// of the header and no more, leaving r positioned at the start of the
// surface data.
//
// Errors from r are returned unchanged. Structural problems yield
// errors matching ErrInvalidHeader and unrecognized extension block
// values yield errors matching ErrUnsupportedFormat.
func ReadHeader(r io.Reader) (*Header, error) {
	d := decoder{r: r}
	return d.Decode()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Trailing
// data after the header is ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	r, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*h = *r
	return nil
}

type decoder struct {
	r   io.Reader
	err error
}

func (d *decoder) Decode() (h *Header, err error) {
	if d.err != nil {
		return nil, d.err
	}

	defer d.catch(&err)

	d.magic()

	var hdr Header
	flags := d.header()
	d.fixed(&hdr, flags)
	d.reserved(11 * 4)

	extended := d.pixelFormat(&hdr)

	d.uint32() // Caps.
	hdr.Caps2 = Caps2Flags(d.uint32()) & caps2FlagsKnown
	d.reserved(3 * 4)

	if extended {
		d.extension(&hdr)
	}

	return &hdr, nil
}

func (d *decoder) magic() {
	m := d.bytes4()
	if m != magic {
		d.throw(fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, m[:]))
	}
}

func (d *decoder) header() HeaderFlags {
	size := d.uint32()
	if size != HeaderSize {
		d.throw(fmt.Errorf("%w: header size %d", ErrInvalidHeader, size))
	}

	return HeaderFlags(d.uint32()) & headerFlagsKnown
}

// fixed reads the fixed-width fields that follow the flags. They
// always occupy their slots, but are only kept if a flag validates
// them.
func (d *decoder) fixed(h *Header, flags HeaderFlags) {
	h.Height = d.uint32()
	h.Width = d.uint32()

	size := d.uint32()
	switch {
	case flags.Has(FlagLinearSize):
		s := Linear(size)
		h.Size = &s
	case flags.Has(FlagPitch):
		s := Pitch(size)
		h.Size = &s
	}

	depth := d.uint32()
	if flags.Has(FlagDepth) {
		h.Depth = &depth
	}

	mips := d.uint32()
	if flags.Has(FlagMipMapCount) {
		h.MipMapCount = &mips
	}
}

// pixelFormat reads the embedded pixel format block and reports
// whether an extension block follows the header. That depends only on
// the raw four character code, regardless of the flags.
func (d *decoder) pixelFormat(h *Header) bool {
	size := d.uint32()
	if size != PixelFormatSize {
		d.throw(fmt.Errorf("%w: pixel format size %d", ErrInvalidHeader, size))
	}

	h.PixelFlags = PixelFormatFlags(d.uint32()) & pixelFormatFlagsKnown

	code := FourCC(d.bytes4())
	if h.PixelFlags.Has(PixelFourCC) {
		h.FourCC = &code
	}

	h.RGBBitCount = d.uint32()
	h.RBitMask = d.uint32()
	h.GBitMask = d.uint32()
	h.BBitMask = d.uint32()
	h.ABitMask = d.uint32()

	return code == fourCCDX10
}

func (d *decoder) extension(h *Header) {
	f := format.DXGI(d.uint32())
	if !f.Valid() {
		d.throw(&UnsupportedError{Field: "format", Value: uint32(f)})
	}

	dim := ResourceDimension(d.uint32())
	if !dim.Valid() {
		d.throw(&UnsupportedError{Field: "resource dimension", Value: uint32(dim)})
	}

	misc := MiscFlags(d.uint32()) & miscFlagsKnown
	if misc.Has(MiscTextureCube) {
		h.Caps2 |= Caps2Cubemap
	}

	size := d.uint32()

	alpha := AlphaMode(d.uint32())
	if !alpha.Valid() {
		d.throw(&UnsupportedError{Field: "alpha mode", Value: uint32(alpha)})
	}

	h.Extension = &Extension{
		Format:    f,
		Dimension: dim,
		ArraySize: size,
		AlphaMode: alpha,
	}
}

func (d *decoder) uint32() (v uint32) {
	d.throw(binary.Read(d.r, binary.LittleEndian, &v))
	return v
}

func (d *decoder) bytes4() (v [4]byte) {
	_, err := io.ReadFull(d.r, v[:])
	d.throw(err)
	return v
}

func (d *decoder) reserved(n int) {
	var buf [11 * 4]byte
	_, err := io.ReadFull(d.r, buf[:n])
	d.throw(err)
}

type decoderError struct {
	err error
}

func (d *decoder) throw(err error) {
	if err != nil {
		panic(decoderError{err: err})
	}
}

func (d *decoder) catch(err *error) {
	switch r := recover().(type) {
	case decoderError:
		*err = r.err
		d.err = r.err
	case nil:
		if d.err != nil {
			*err = d.err
		}
	default:
		panic(r)
	}
}
