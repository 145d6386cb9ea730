// Package framebuffer provides in-memory pixel buffers in the packed
// formats of pixelcolor, wired for both the standard image packages and
// TinyGo-style display drivers.
//
// A Framebuffer is an image.Image and draw.Image, and it satisfies
// tinygo.org/x/drivers.Displayer, so text and primitives that target a
// hardware display draw straight into the buffer.
package framebuffer

import (
	"errors"
	"image"
	"image/color"

	"github.com/mmou/embedded-graphics/pixelcolor"
)

var (
	ErrBadFormat = errors.New("framebuffer: unsupported pixel format")
	ErrBadSize   = errors.New("framebuffer: width and height must be positive")
)

// Framebuffer is a width x height pixel buffer in one packed format. The
// zero value is not usable; use New. It holds no locks: a single drawing
// goroutine owns the buffer.
type Framebuffer struct {
	format  Format
	width   int
	height  int
	stride  int
	buf     []byte
	present func() error
}

// New allocates a framebuffer. The stride is width times the pixel size,
// with no row padding.
func New(format Format, width, height int) (*Framebuffer, error) {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return nil, ErrBadFormat
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}
	stride := width * bpp
	return &Framebuffer{
		format: format,
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}, nil
}

func (f *Framebuffer) Width() int       { return f.width }
func (f *Framebuffer) Height() int      { return f.height }
func (f *Framebuffer) Format() Format   { return f.format }
func (f *Framebuffer) StrideBytes() int { return f.stride }

// Buffer exposes the raw pixel storage, laid out the way a display
// controller expects scanlines.
func (f *Framebuffer) Buffer() []byte { return f.buf }

// OnPresent registers a hook run by Display after drawing, typically the
// hardware flush.
func (f *Framebuffer) OnPresent(fn func() error) { f.present = fn }

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, f.width, f.height) }

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model { return f.format.Model() }

// At implements image.Image. Out-of-bounds reads return black.
func (f *Framebuffer) At(x, y int) color.Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return pixelcolor.RGB888Black
	}
	return f.readPixel(y*f.stride + x*f.format.BytesPerPixel())
}

// Set implements draw.Image. The color is converted to the buffer format;
// out-of-bounds writes are ignored.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.writePixel(y*f.stride+x*f.format.BytesPerPixel(), c)
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

// SetPixel implements drivers.Displayer.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.Set(int(x), int(y), c)
}

// Display implements drivers.Displayer by running the present hook, if
// any. Drawing into the buffer itself needs no flush.
func (f *Framebuffer) Display() error {
	if f.present == nil {
		return nil
	}
	return f.present()
}

// Clear fills the whole buffer with one color.
func (f *Framebuffer) Clear(c color.Color) {
	bpp := f.format.BytesPerPixel()
	f.writePixel(0, c)
	px := f.buf[:bpp]
	for off := bpp; off < f.stride; off += bpp {
		copy(f.buf[off:off+bpp], px)
	}
	row := f.buf[:f.stride]
	for off := f.stride; off < len(f.buf); off += f.stride {
		copy(f.buf[off:off+f.stride], row)
	}
}

func (f *Framebuffer) writePixel(off int, c color.Color) {
	switch f.format {
	case FormatRGB565:
		v := pixelcolor.ToRGB565(c).Bits()
		f.buf[off] = byte(v)
		f.buf[off+1] = byte(v >> 8)
	case FormatBGR565:
		v := pixelcolor.ToBGR565(c).Bits()
		f.buf[off] = byte(v)
		f.buf[off+1] = byte(v >> 8)
	case FormatRGB555:
		v := pixelcolor.ToRGB555(c).Bits()
		f.buf[off] = byte(v)
		f.buf[off+1] = byte(v >> 8)
	case FormatBGR555:
		v := pixelcolor.ToBGR555(c).Bits()
		f.buf[off] = byte(v)
		f.buf[off+1] = byte(v >> 8)
	case FormatRGB888:
		v := pixelcolor.ToRGB888(c).Bits()
		f.buf[off] = byte(v)
		f.buf[off+1] = byte(v >> 8)
		f.buf[off+2] = byte(v >> 16)
	case FormatBGR888:
		v := pixelcolor.ToBGR888(c).Bits()
		f.buf[off] = byte(v)
		f.buf[off+1] = byte(v >> 8)
		f.buf[off+2] = byte(v >> 16)
	case FormatGray8:
		f.buf[off] = pixelcolor.ToGray8(c).Bits()
	}
}

func (f *Framebuffer) readPixel(off int) color.Color {
	switch f.format {
	case FormatRGB565:
		return pixelcolor.RGB565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
	case FormatBGR565:
		return pixelcolor.BGR565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
	case FormatRGB555:
		return pixelcolor.RGB555(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
	case FormatBGR555:
		return pixelcolor.BGR555(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
	case FormatRGB888:
		return pixelcolor.RGB888(uint32(f.buf[off]) | uint32(f.buf[off+1])<<8 | uint32(f.buf[off+2])<<16)
	case FormatBGR888:
		return pixelcolor.BGR888(uint32(f.buf[off]) | uint32(f.buf[off+1])<<8 | uint32(f.buf[off+2])<<16)
	case FormatGray8:
		return pixelcolor.Gray8(f.buf[off])
	}
	return pixelcolor.RGB888Black
}
