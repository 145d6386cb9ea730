package pixelcolor

// Gray8 is an 8 bit grayscale color.
type Gray8 uint8

// NewGray8 returns a Gray8 with the given luma.
func NewGray8(y uint8) Gray8 { return Gray8(y) }

// Y returns the luma channel.
func (c Gray8) Y() uint8 { return uint8(c) }

// Gray8 satisfies RGBColor by reporting its luma for all three channels at
// 8 bit depth, so expanding gray to any RGB type goes through the same
// per-channel rescale as an RGB source.
func (c Gray8) R() uint8 { return uint8(c) }
func (c Gray8) G() uint8 { return uint8(c) }
func (c Gray8) B() uint8 { return uint8(c) }

// MaxRGB returns the per-channel maximum values.
func (c Gray8) MaxRGB() (r, g, b uint8) { return max8, max8, max8 }

// Bits returns the raw value as written to a display controller.
func (c Gray8) Bits() uint8 { return uint8(c) }

func (c Gray8) RGBA() (r, g, b, a uint32) {
	y := rgba16(uint8(c), max8)
	return y, y, y, 0xFFFF
}

// Named grays.
var (
	Gray8Black = NewGray8(0)
	Gray8White = NewGray8(max8)
)
