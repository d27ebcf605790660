package fractal

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// CenterMarker is the packed value written over the centre pixel after
// every render: pure red.
const CenterMarker uint32 = 0xFF0000

// Buffer is a rectangular pixel buffer of packed 0xRRGGBB values stored
// row-major: pixel (x, y) lives at index x + y*width.
type Buffer struct {
	width  int
	height int
	pix    []uint32
}

// NewBuffer creates a zeroed (black) buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the packed pixel data. The slice aliases the buffer.
func (b *Buffer) Pix() []uint32 {
	return b.pix
}

// Resize changes the buffer to width × height pixels. When the shape
// changes the previous contents are discarded and every pixel is zeroed;
// the backing array is reused if it is large enough.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}
	n := width * height
	if cap(b.pix) >= n {
		b.pix = b.pix[:n]
		clear(b.pix)
	} else {
		b.pix = make([]uint32, n)
	}
	b.width, b.height = width, height
}

// Pixel returns the packed value at (x, y), or 0 outside the buffer.
func (b *Buffer) Pixel(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.pix[y*b.width+x]
}

// CopyRGBA writes the buffer as opaque 8-bit RGBA into dst, which must
// hold at least 4*width*height bytes. It returns the number of bytes written.
func (b *Buffer) CopyRGBA(dst []byte) int {
	n := len(b.pix) * 4
	if len(dst) < n {
		return 0
	}
	for i, p := range b.pix {
		j := i * 4
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
	return n
}

// ToImage converts the buffer to an image.RGBA.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	b.CopyRGBA(img.Pix)
	return img
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, b.ToImage())
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	p := b.Pixel(x, y)
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xFF}
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}
