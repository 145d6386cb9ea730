package pixelcolor

import "image/color"

// Models for the package's color types, for use with the standard image
// packages.
var (
	RGB565Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToRGB565(c) })
	BGR565Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToBGR565(c) })
	RGB555Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToRGB555(c) })
	BGR555Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToBGR555(c) })
	RGB888Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToRGB888(c) })
	BGR888Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToBGR888(c) })
	Gray8Model  color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToGray8(c) })
	BinaryModel color.Model = color.ModelFunc(func(c color.Color) color.Color { return ToBinary(c) })
)
