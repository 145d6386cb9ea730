package pixelcolor

// RGB565 is a 16 bit color with 5 red, 6 green and 5 blue bits, red in the
// high bits: rrrrrggggggbbbbb.
type RGB565 uint16

// NewRGB565 packs the channels into an RGB565 value. Inputs are masked to
// the channel width.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&max5)<<11 | uint16(g&max6)<<5 | uint16(b&max5))
}

func (c RGB565) R() uint8 { return uint8(c>>11) & max5 }
func (c RGB565) G() uint8 { return uint8(c>>5) & max6 }
func (c RGB565) B() uint8 { return uint8(c) & max5 }

// MaxRGB returns the per-channel maximum values.
func (c RGB565) MaxRGB() (r, g, b uint8) { return max5, max6, max5 }

// Bits returns the raw packed value as written to a display controller.
func (c RGB565) Bits() uint16 { return uint16(c) }

func (c RGB565) RGBA() (r, g, b, a uint32) {
	return rgba16(c.R(), max5), rgba16(c.G(), max6), rgba16(c.B(), max5), 0xFFFF
}

// BGR565 is a 16 bit color with 5 red, 6 green and 5 blue bits, blue in
// the high bits: bbbbbggggggrrrrr.
type BGR565 uint16

// NewBGR565 packs the channels into a BGR565 value. Inputs are masked to
// the channel width and taken in red, green, blue order regardless of the
// storage order.
func NewBGR565(r, g, b uint8) BGR565 {
	return BGR565(uint16(b&max5)<<11 | uint16(g&max6)<<5 | uint16(r&max5))
}

func (c BGR565) R() uint8 { return uint8(c) & max5 }
func (c BGR565) G() uint8 { return uint8(c>>5) & max6 }
func (c BGR565) B() uint8 { return uint8(c>>11) & max5 }

// MaxRGB returns the per-channel maximum values.
func (c BGR565) MaxRGB() (r, g, b uint8) { return max5, max6, max5 }

// Bits returns the raw packed value as written to a display controller.
func (c BGR565) Bits() uint16 { return uint16(c) }

func (c BGR565) RGBA() (r, g, b, a uint32) {
	return rgba16(c.R(), max5), rgba16(c.G(), max6), rgba16(c.B(), max5), 0xFFFF
}

// RGB555 is a 15 bit color with 5 bits per channel, red in the high bits:
// 0rrrrrgggggbbbbb.
type RGB555 uint16

// NewRGB555 packs the channels into an RGB555 value. Inputs are masked to
// the channel width.
func NewRGB555(r, g, b uint8) RGB555 {
	return RGB555(uint16(r&max5)<<10 | uint16(g&max5)<<5 | uint16(b&max5))
}

func (c RGB555) R() uint8 { return uint8(c>>10) & max5 }
func (c RGB555) G() uint8 { return uint8(c>>5) & max5 }
func (c RGB555) B() uint8 { return uint8(c) & max5 }

// MaxRGB returns the per-channel maximum values.
func (c RGB555) MaxRGB() (r, g, b uint8) { return max5, max5, max5 }

// Bits returns the raw packed value as written to a display controller.
func (c RGB555) Bits() uint16 { return uint16(c) }

func (c RGB555) RGBA() (r, g, b, a uint32) {
	return rgba16(c.R(), max5), rgba16(c.G(), max5), rgba16(c.B(), max5), 0xFFFF
}

// BGR555 is a 15 bit color with 5 bits per channel, blue in the high bits:
// 0bbbbbgggggrrrrr.
type BGR555 uint16

// NewBGR555 packs the channels into a BGR555 value. Inputs are masked to
// the channel width and taken in red, green, blue order regardless of the
// storage order.
func NewBGR555(r, g, b uint8) BGR555 {
	return BGR555(uint16(b&max5)<<10 | uint16(g&max5)<<5 | uint16(r&max5))
}

func (c BGR555) R() uint8 { return uint8(c) & max5 }
func (c BGR555) G() uint8 { return uint8(c>>5) & max5 }
func (c BGR555) B() uint8 { return uint8(c>>10) & max5 }

// MaxRGB returns the per-channel maximum values.
func (c BGR555) MaxRGB() (r, g, b uint8) { return max5, max5, max5 }

// Bits returns the raw packed value as written to a display controller.
func (c BGR555) Bits() uint16 { return uint16(c) }

func (c BGR555) RGBA() (r, g, b, a uint32) {
	return rgba16(c.R(), max5), rgba16(c.G(), max5), rgba16(c.B(), max5), 0xFFFF
}

// RGB888 is a 24 bit color with 8 bits per channel, red in the high bits:
// 0x00RRGGBB.
type RGB888 uint32

// NewRGB888 packs the channels into an RGB888 value.
func NewRGB888(r, g, b uint8) RGB888 {
	return RGB888(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c RGB888) R() uint8 { return uint8(c >> 16) }
func (c RGB888) G() uint8 { return uint8(c >> 8) }
func (c RGB888) B() uint8 { return uint8(c) }

// MaxRGB returns the per-channel maximum values.
func (c RGB888) MaxRGB() (r, g, b uint8) { return max8, max8, max8 }

// Bits returns the raw packed value as written to a display controller.
func (c RGB888) Bits() uint32 { return uint32(c) & 0xFFFFFF }

func (c RGB888) RGBA() (r, g, b, a uint32) {
	return rgba16(c.R(), max8), rgba16(c.G(), max8), rgba16(c.B(), max8), 0xFFFF
}

// BGR888 is a 24 bit color with 8 bits per channel, blue in the high bits:
// 0x00BBGGRR.
type BGR888 uint32

// NewBGR888 packs the channels into a BGR888 value, taking them in red,
// green, blue order regardless of the storage order.
func NewBGR888(r, g, b uint8) BGR888 {
	return BGR888(uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

func (c BGR888) R() uint8 { return uint8(c) }
func (c BGR888) G() uint8 { return uint8(c >> 8) }
func (c BGR888) B() uint8 { return uint8(c >> 16) }

// MaxRGB returns the per-channel maximum values.
func (c BGR888) MaxRGB() (r, g, b uint8) { return max8, max8, max8 }

// Bits returns the raw packed value as written to a display controller.
func (c BGR888) Bits() uint32 { return uint32(c) & 0xFFFFFF }

func (c BGR888) RGBA() (r, g, b, a uint32) {
	return rgba16(c.R(), max8), rgba16(c.G(), max8), rgba16(c.B(), max8), 0xFFFF
}

// Named colors for each RGB type.
var (
	RGB565Black   = NewRGB565(0, 0, 0)
	RGB565Red     = NewRGB565(max5, 0, 0)
	RGB565Green   = NewRGB565(0, max6, 0)
	RGB565Blue    = NewRGB565(0, 0, max5)
	RGB565Yellow  = NewRGB565(max5, max6, 0)
	RGB565Magenta = NewRGB565(max5, 0, max5)
	RGB565Cyan    = NewRGB565(0, max6, max5)
	RGB565White   = NewRGB565(max5, max6, max5)

	BGR565Black   = NewBGR565(0, 0, 0)
	BGR565Red     = NewBGR565(max5, 0, 0)
	BGR565Green   = NewBGR565(0, max6, 0)
	BGR565Blue    = NewBGR565(0, 0, max5)
	BGR565Yellow  = NewBGR565(max5, max6, 0)
	BGR565Magenta = NewBGR565(max5, 0, max5)
	BGR565Cyan    = NewBGR565(0, max6, max5)
	BGR565White   = NewBGR565(max5, max6, max5)

	RGB555Black   = NewRGB555(0, 0, 0)
	RGB555Red     = NewRGB555(max5, 0, 0)
	RGB555Green   = NewRGB555(0, max5, 0)
	RGB555Blue    = NewRGB555(0, 0, max5)
	RGB555Yellow  = NewRGB555(max5, max5, 0)
	RGB555Magenta = NewRGB555(max5, 0, max5)
	RGB555Cyan    = NewRGB555(0, max5, max5)
	RGB555White   = NewRGB555(max5, max5, max5)

	BGR555Black   = NewBGR555(0, 0, 0)
	BGR555Red     = NewBGR555(max5, 0, 0)
	BGR555Green   = NewBGR555(0, max5, 0)
	BGR555Blue    = NewBGR555(0, 0, max5)
	BGR555Yellow  = NewBGR555(max5, max5, 0)
	BGR555Magenta = NewBGR555(max5, 0, max5)
	BGR555Cyan    = NewBGR555(0, max5, max5)
	BGR555White   = NewBGR555(max5, max5, max5)

	RGB888Black   = NewRGB888(0, 0, 0)
	RGB888Red     = NewRGB888(max8, 0, 0)
	RGB888Green   = NewRGB888(0, max8, 0)
	RGB888Blue    = NewRGB888(0, 0, max8)
	RGB888Yellow  = NewRGB888(max8, max8, 0)
	RGB888Magenta = NewRGB888(max8, 0, max8)
	RGB888Cyan    = NewRGB888(0, max8, max8)
	RGB888White   = NewRGB888(max8, max8, max8)

	BGR888Black   = NewBGR888(0, 0, 0)
	BGR888Red     = NewBGR888(max8, 0, 0)
	BGR888Green   = NewBGR888(0, max8, 0)
	BGR888Blue    = NewBGR888(0, 0, max8)
	BGR888Yellow  = NewBGR888(max8, max8, 0)
	BGR888Magenta = NewBGR888(max8, 0, max8)
	BGR888Cyan    = NewBGR888(0, max8, max8)
	BGR888White   = NewBGR888(max8, max8, max8)
)
