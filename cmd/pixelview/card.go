package main

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"github.com/mmou/embedded-graphics/framebuffer"
	"github.com/mmou/embedded-graphics/pixelcolor"
)

const (
	cardWidth  = 320
	cardHeight = 240

	labelWidth = 56
	rowHeight  = 24
	barHeight  = 14
)

// cardRow quantizes a reference color through one pixel format before it
// lands in the card's framebuffer, so each bar shows that format's banding.
type cardRow struct {
	name string
	conv func(color.Color) color.Color
}

var cardRows = []cardRow{
	{"RGB888", func(c color.Color) color.Color { return pixelcolor.ToRGB888(c) }},
	{"BGR888", func(c color.Color) color.Color { return pixelcolor.ToBGR888(c) }},
	{"RGB565", func(c color.Color) color.Color { return pixelcolor.ToRGB565(c) }},
	{"BGR565", func(c color.Color) color.Color { return pixelcolor.ToBGR565(c) }},
	{"RGB555", func(c color.Color) color.Color { return pixelcolor.ToRGB555(c) }},
	{"BGR555", func(c color.Color) color.Color { return pixelcolor.ToBGR555(c) }},
	{"GRAY8", func(c color.Color) color.Color { return pixelcolor.ToGray8(c) }},
	{"MONO", func(c color.Color) color.Color { return pixelcolor.ToBinary(c) }},
}

var namedColors = []color.Color{
	pixelcolor.RGB888Black,
	pixelcolor.RGB888Red,
	pixelcolor.RGB888Green,
	pixelcolor.RGB888Blue,
	pixelcolor.RGB888Yellow,
	pixelcolor.RGB888Magenta,
	pixelcolor.RGB888Cyan,
	pixelcolor.RGB888White,
}

// heat is a black-red-yellow-white ramp, t in [0, 765].
func heat(t int) pixelcolor.RGB888 {
	r := clamp255(t)
	g := clamp255(t - 255)
	b := clamp255(t - 510)
	return pixelcolor.NewRGB888(uint8(r), uint8(g), uint8(b))
}

func clamp255(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// drawCard renders the conversion test card: one heat ramp per pixel
// format, labelled, plus the eight named colors as swatches at the bottom.
func drawCard(fb *framebuffer.Framebuffer) {
	fb.Clear(pixelcolor.RGB888Black)

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	barW := cardWidth - labelWidth

	for i, row := range cardRows {
		top := i * rowHeight
		tinyfont.WriteLine(fb, &tinyfont.TomThumb, 4, int16(top+barHeight/2+3), row.name, white)
		for x := 0; x < barW; x++ {
			c := row.conv(heat(x * 765 / (barW - 1)))
			for y := top + 2; y < top+2+barHeight; y++ {
				fb.Set(labelWidth+x, y, c)
			}
		}
	}

	top := len(cardRows) * rowHeight
	tinyfont.WriteLine(fb, &tinyfont.TomThumb, 4, int16(top+barHeight/2+3), "NAMED", white)
	swatchW := barW / len(namedColors)
	for i, c := range namedColors {
		for x := 0; x < swatchW-2; x++ {
			for y := top + 2; y < top+2+barHeight; y++ {
				fb.Set(labelWidth+i*swatchW+x, y, c)
			}
		}
	}
}
