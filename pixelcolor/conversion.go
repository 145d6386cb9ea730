package pixelcolor

import "image/color"

// The To functions below are total: every color.Color input produces a
// value. Colors from this package convert exactly (per-channel rescale, or
// a black/white choice for BinaryColor); anything else is first reduced to
// 8 bit channels through color.Color.RGBA.

// ToRGB565 converts a color to RGB565.
func ToRGB565(c color.Color) RGB565 {
	switch c := c.(type) {
	case RGB565:
		return c
	case BinaryColor:
		return Map(c, RGB565Black, RGB565White)
	case RGBColor:
		fr, fg, fb := c.MaxRGB()
		return NewRGB565(
			convertChannel(c.R(), fr, max5),
			convertChannel(c.G(), fg, max6),
			convertChannel(c.B(), fb, max5),
		)
	}
	return ToRGB565(rgb888Of(c))
}

// ToBGR565 converts a color to BGR565.
func ToBGR565(c color.Color) BGR565 {
	switch c := c.(type) {
	case BGR565:
		return c
	case BinaryColor:
		return Map(c, BGR565Black, BGR565White)
	case RGBColor:
		fr, fg, fb := c.MaxRGB()
		return NewBGR565(
			convertChannel(c.R(), fr, max5),
			convertChannel(c.G(), fg, max6),
			convertChannel(c.B(), fb, max5),
		)
	}
	return ToBGR565(rgb888Of(c))
}

// ToRGB555 converts a color to RGB555.
func ToRGB555(c color.Color) RGB555 {
	switch c := c.(type) {
	case RGB555:
		return c
	case BinaryColor:
		return Map(c, RGB555Black, RGB555White)
	case RGBColor:
		fr, fg, fb := c.MaxRGB()
		return NewRGB555(
			convertChannel(c.R(), fr, max5),
			convertChannel(c.G(), fg, max5),
			convertChannel(c.B(), fb, max5),
		)
	}
	return ToRGB555(rgb888Of(c))
}

// ToBGR555 converts a color to BGR555.
func ToBGR555(c color.Color) BGR555 {
	switch c := c.(type) {
	case BGR555:
		return c
	case BinaryColor:
		return Map(c, BGR555Black, BGR555White)
	case RGBColor:
		fr, fg, fb := c.MaxRGB()
		return NewBGR555(
			convertChannel(c.R(), fr, max5),
			convertChannel(c.G(), fg, max5),
			convertChannel(c.B(), fb, max5),
		)
	}
	return ToBGR555(rgb888Of(c))
}

// ToRGB888 converts a color to RGB888.
func ToRGB888(c color.Color) RGB888 {
	switch c := c.(type) {
	case RGB888:
		return c
	case BinaryColor:
		return Map(c, RGB888Black, RGB888White)
	case RGBColor:
		fr, fg, fb := c.MaxRGB()
		return NewRGB888(
			convertChannel(c.R(), fr, max8),
			convertChannel(c.G(), fg, max8),
			convertChannel(c.B(), fb, max8),
		)
	}
	return rgb888Of(c)
}

// ToBGR888 converts a color to BGR888.
func ToBGR888(c color.Color) BGR888 {
	switch c := c.(type) {
	case BGR888:
		return c
	case BinaryColor:
		return Map(c, BGR888Black, BGR888White)
	case RGBColor:
		fr, fg, fb := c.MaxRGB()
		return NewBGR888(
			convertChannel(c.R(), fr, max8),
			convertChannel(c.G(), fg, max8),
			convertChannel(c.B(), fb, max8),
		)
	}
	return ToBGR888(rgb888Of(c))
}

// ToGray8 reduces a color to 8 bit grayscale by its intensity.
func ToGray8(c color.Color) Gray8 {
	switch c := c.(type) {
	case Gray8:
		return c
	case BinaryColor:
		return Map(c, Gray8Black, Gray8White)
	}
	return NewGray8(intensity(c))
}

// ToBinary reduces a color to a single bit by thresholding its intensity
// at the midpoint of the 8 bit range.
func ToBinary(c color.Color) BinaryColor {
	if c, ok := c.(BinaryColor); ok {
		return c
	}
	return BinaryColor(intensity(c) >= 128)
}

// intensity is the unweighted average of the 8 bit channels. The divide
// truncates: pure red averages to 85, yellow to 170, white to exactly 255.
func intensity(c color.Color) uint8 {
	v := ToRGB888(c)
	return uint8((uint16(v.R()) + uint16(v.G()) + uint16(v.B())) / 3)
}

// rgb888Of adapts a color outside this package to the 8 bit family.
func rgb888Of(c color.Color) RGB888 {
	r, g, b, _ := c.RGBA()
	return NewRGB888(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
