package pixelcolor

// BinaryColor is a two-state color for monochrome displays.
type BinaryColor bool

const (
	Off BinaryColor = false
	On  BinaryColor = true
)

// IsOn reports whether the color is the on state.
func (c BinaryColor) IsOn() bool { return bool(c) }

// Invert returns the opposite state.
func (c BinaryColor) Invert() BinaryColor { return !c }

func (c BinaryColor) RGBA() (r, g, b, a uint32) {
	if c == On {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// Map selects off or on depending on the state of c. It is the expansion
// mechanism for binary colors: no arithmetic, just a two-way choice
// between caller-supplied values (typically a type's black and white).
func Map[T any](c BinaryColor, off, on T) T {
	if c == On {
		return on
	}
	return off
}
