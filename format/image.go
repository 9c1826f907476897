package format

import (
	"image"
	"image/color"
)

// Model implements color.Model using a Format.
type Model struct {
	Format Format
}

func (m Model) Convert(c color.Color) color.Color {
	fc := Color{Format: m.Format}
	r, g, b, a := c.RGBA()
	m.Format.Write(fc.Slice(), r, g, b, a)
	return &fc
}

// Color implements color.Color using a Format.
type Color struct {
	Format Format

	// Data contains the pixel data for the color. Only some bytes of
	// the array are used, dependant on the return value of Format.Size.
	Data [8]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	size := c.Format.Size()
	return c.slice(size)
}

func (c *Color) slice(size int) []byte {
	return c.Data[:size:size]
}

func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.Format.Read(c.Slice())
}

// Image is an image with a color format defined by Format.
type Image struct {
	Format Format
	Rect   image.Rectangle
	Pix    []byte

	// Pitch is the number of bytes between the starts of successive
	// rows. If it is zero, rows are assumed to be tightly packed.
	Pitch int
}

// NewImage allocates a tightly packed Image of the given format and
// bounds.
func NewImage(f Format, r image.Rectangle) *Image {
	return &Image{
		Format: f,
		Rect:   r,
		Pix:    make([]byte, f.Size()*r.Dx()*r.Dy()),
	}
}

func (img *Image) Bounds() image.Rectangle { return img.Rect }

func (img *Image) ColorModel() color.Model { return Model{Format: img.Format} }

func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Rect)) {
		return &Color{Format: img.Format}
	}

	size := img.Format.Size()
	c := Color{Format: img.Format}

	i := img.pixOffset(x, y, img.stride(size), size)
	s := img.Pix[i : i+size : i+size]
	copy(c.slice(size), s)

	return &c
}

// Stride returns the number of bytes between the starts of
// successive rows, which is Pitch if it is set.
func (img *Image) Stride() int {
	return img.stride(img.Format.Size())
}

func (img *Image) stride(size int) int {
	if img.Pitch > 0 {
		return img.Pitch
	}
	return size * img.Rect.Dx()
}

func (img *Image) PixOffset(x, y int) int {
	return img.pixOffset(x, y, img.Stride(), img.Format.Size())
}

func (img *Image) pixOffset(x, y, stride, size int) int {
	x -= img.Rect.Min.X
	y -= img.Rect.Min.Y
	return (stride * y) + (x * size)
}

func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}

	size := img.Format.Size()
	i := img.pixOffset(x, y, img.stride(size), size)
	c1 := img.ColorModel().Convert(c).(*Color)
	s := img.Pix[i : i+size : i+size]
	copy(s, c1.slice(size))
}

// SubImage returns an image representing the portion of img visible
// through r. The returned image shares pixels with img.
func (img *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(img.Rect)
	if r.Empty() {
		return &Image{Format: img.Format}
	}

	size := img.Format.Size()
	stride := img.stride(size)
	i := img.pixOffset(r.Min.X, r.Min.Y, stride, size)
	return &Image{
		Format: img.Format,
		Rect:   r,
		Pix:    img.Pix[i:],
		Pitch:  stride,
	}
}
