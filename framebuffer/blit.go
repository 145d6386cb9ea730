package framebuffer

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Blit pushes the framebuffer contents to a hardware display, converting
// each pixel to the 8 bit RGBA the driver expects. The copied area is
// clipped to the smaller of the two surfaces.
func Blit(d drivers.Displayer, fb *Framebuffer) error {
	dw, dh := d.Size()
	w, h := fb.Width(), fb.Height()
	if int(dw) < w {
		w = int(dw)
	}
	if int(dh) < h {
		h = int(dh)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := fb.At(x, y).RGBA()
			d.SetPixel(int16(x), int16(y), color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: 0xFF,
			})
		}
	}
	return d.Display()
}
