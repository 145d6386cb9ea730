package framebuffer

import (
	"image/color"

	"github.com/mmou/embedded-graphics/pixelcolor"
)

// Format defines the framebuffer pixel encoding. 16 bit formats are stored
// little endian, 24 bit formats as three little endian bytes of the packed
// word, grayscale as one byte per pixel.
type Format uint8

const (
	FormatRGB565 Format = iota + 1
	FormatBGR565
	FormatRGB555
	FormatBGR555
	FormatRGB888
	FormatBGR888
	FormatGray8
)

// BytesPerPixel returns the storage size of one pixel, or 0 for an unknown
// format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatRGB565, FormatBGR565, FormatRGB555, FormatBGR555:
		return 2
	case FormatRGB888, FormatBGR888:
		return 3
	case FormatGray8:
		return 1
	}
	return 0
}

// Model returns the color model matching the format.
func (f Format) Model() color.Model {
	switch f {
	case FormatRGB565:
		return pixelcolor.RGB565Model
	case FormatBGR565:
		return pixelcolor.BGR565Model
	case FormatRGB555:
		return pixelcolor.RGB555Model
	case FormatBGR555:
		return pixelcolor.BGR555Model
	case FormatRGB888:
		return pixelcolor.RGB888Model
	case FormatBGR888:
		return pixelcolor.BGR888Model
	case FormatGray8:
		return pixelcolor.Gray8Model
	}
	return color.RGBAModel
}

func (f Format) String() string {
	switch f {
	case FormatRGB565:
		return "RGB565"
	case FormatBGR565:
		return "BGR565"
	case FormatRGB555:
		return "RGB555"
	case FormatBGR555:
		return "BGR555"
	case FormatRGB888:
		return "RGB888"
	case FormatBGR888:
		return "BGR888"
	case FormatGray8:
		return "GRAY8"
	}
	return "unknown"
}
