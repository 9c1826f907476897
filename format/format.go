package format

import (
	"fmt"
	"math/bits"
)

// Format is a pixel format for an Image and related types. This
// package contains several predefined formats, such as [ARGB8888].
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)
}

// Various predefined Formats.
var (
	ARGB8888 = Masked{Bits: 32, R: 0x00FF0000, G: 0x0000FF00, B: 0x000000FF, A: 0xFF000000}
	XRGB8888 = Masked{Bits: 32, R: 0x00FF0000, G: 0x0000FF00, B: 0x000000FF}
)

// Masked is a Format for little-endian pixels of 8, 16, 24 or 32 bits
// whose channels each occupy a contiguous bit mask. A zero mask means
// that the channel is absent. An absent alpha channel reads as fully
// opaque and an absent color channel reads as zero.
type Masked struct {
	Bits       uint32
	R, G, B, A uint32
}

func (m Masked) String() string {
	return fmt.Sprintf("Masked(%d; %#x, %#x, %#x, %#x)", m.Bits, m.R, m.G, m.B, m.A)
}

// Valid reports whether m can be used as a Format.
func (m Masked) Valid() bool {
	if (m.Bits == 0) || (m.Bits > 32) || (m.Bits%8 != 0) {
		return false
	}
	limit := uint64(1)<<m.Bits - 1
	for _, mask := range [...]uint32{m.R, m.G, m.B, m.A} {
		if uint64(mask) > limit {
			return false
		}
	}
	return true
}

func (m Masked) Size() int { return int(m.Bits / 8) }

func (m Masked) Read(data []byte) (r, g, b, a uint32) {
	var n uint32
	for i := range m.Size() {
		n |= uint32(data[i]) << (8 * i)
	}

	a = 0xFFFF
	if m.A != 0 {
		a = extract(n, m.A)
	}
	r = extract(n, m.R) * a / 0xFFFF
	g = extract(n, m.G) * a / 0xFFFF
	b = extract(n, m.B) * a / 0xFFFF
	return
}

func (m Masked) Write(buf []byte, r, g, b, a uint32) {
	if m.A == 0 {
		a = 0xFFFF
	}

	var n uint32
	if a != 0 {
		n = deposit(r*0xFFFF/a, m.R) |
			deposit(g*0xFFFF/a, m.G) |
			deposit(b*0xFFFF/a, m.B) |
			deposit(a, m.A)
	}
	for i := range m.Size() {
		buf[i] = byte(n >> (8 * i))
	}
}

// extract pulls the channel selected by mask out of n and scales it
// to 16 bits.
func extract(n, mask uint32) uint32 {
	if mask == 0 {
		return 0
	}
	shift := bits.TrailingZeros32(mask)
	limit := uint64(mask >> shift)
	v := uint64((n & mask) >> shift)
	return uint32(v * 0xFFFF / limit)
}

// deposit scales a 16-bit channel value to the width of mask and
// places it there.
func deposit(v, mask uint32) uint32 {
	if mask == 0 {
		return 0
	}
	shift := bits.TrailingZeros32(mask)
	limit := uint64(mask >> shift)
	return uint32(uint64(min(v, 0xFFFF))*limit/0xFFFF) << shift & mask
}
