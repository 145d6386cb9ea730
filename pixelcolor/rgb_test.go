package pixelcolor

import "testing"

func TestPackedLayout(t *testing.T) {
	tcs := []struct {
		name string
		bits uint32
		want uint32
	}{
		{name: "rgb565_white", bits: uint32(NewRGB565(31, 63, 31).Bits()), want: 0xFFFF},
		{name: "rgb565_red", bits: uint32(NewRGB565(31, 0, 0).Bits()), want: 0xF800},
		{name: "rgb565_green", bits: uint32(NewRGB565(0, 63, 0).Bits()), want: 0x07E0},
		{name: "rgb565_blue", bits: uint32(NewRGB565(0, 0, 31).Bits()), want: 0x001F},
		{name: "bgr565_red", bits: uint32(NewBGR565(31, 0, 0).Bits()), want: 0x001F},
		{name: "bgr565_blue", bits: uint32(NewBGR565(0, 0, 31).Bits()), want: 0xF800},
		{name: "rgb555_white", bits: uint32(NewRGB555(31, 31, 31).Bits()), want: 0x7FFF},
		{name: "rgb555_red", bits: uint32(NewRGB555(31, 0, 0).Bits()), want: 0x7C00},
		{name: "bgr555_red", bits: uint32(NewBGR555(31, 0, 0).Bits()), want: 0x001F},
		{name: "rgb888_red", bits: NewRGB888(255, 0, 0).Bits(), want: 0xFF0000},
		{name: "bgr888_red", bits: NewBGR888(255, 0, 0).Bits(), want: 0x0000FF},
		{name: "rgb888_mixed", bits: NewRGB888(0x12, 0x34, 0x56).Bits(), want: 0x123456},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if tc.bits != tc.want {
				t.Fatalf("bits = %06x, want %06x", tc.bits, tc.want)
			}
		})
	}
}

func TestAccessorsIgnoreStorageOrder(t *testing.T) {
	r, g, b := uint8(5), uint8(40), uint8(20)
	for name, c := range map[string]RGBColor{
		"rgb565": NewRGB565(r, g, b),
		"bgr565": NewBGR565(r, g, b),
	} {
		if c.R() != r || c.G() != g || c.B() != b {
			t.Fatalf("%s: got %d,%d,%d, want %d,%d,%d", name, c.R(), c.G(), c.B(), r, g, b)
		}
	}

	d := NewBGR555(5, 6, 7)
	if d.R() != 5 || d.G() != 6 || d.B() != 7 {
		t.Fatalf("bgr555: got %d,%d,%d", d.R(), d.G(), d.B())
	}
	e := NewBGR888(5, 6, 7)
	if e.R() != 5 || e.G() != 6 || e.B() != 7 {
		t.Fatalf("bgr888: got %d,%d,%d", e.R(), e.G(), e.B())
	}
}

func TestConstructorsMaskOverflow(t *testing.T) {
	// Raw inputs wider than the channel keep only the channel bits, so a
	// stored value can never leave its valid range.
	if got := NewRGB565(255, 255, 255); got != NewRGB565(31, 63, 31) {
		t.Fatalf("got %04x, want %04x", got.Bits(), NewRGB565(31, 63, 31).Bits())
	}
	if got := NewRGB555(32, 33, 34); got != NewRGB555(0, 1, 2) {
		t.Fatalf("got %04x, want %04x", got.Bits(), NewRGB555(0, 1, 2).Bits())
	}
}

func TestRGBAExpansion(t *testing.T) {
	// Saturated and zero channels expand to the exact 16 bit endpoints.
	r, g, b, a := RGB565Yellow.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0 || a != 0xFFFF {
		t.Fatalf("yellow = %04x,%04x,%04x,%04x", r, g, b, a)
	}
	r, g, b, a = Gray8White.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Fatalf("gray white = %04x,%04x,%04x,%04x", r, g, b, a)
	}
	r, g, b, a = Off.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Fatalf("off = %04x,%04x,%04x,%04x", r, g, b, a)
	}

	// The 16 bit expansion of every RGB565 value stays bit-exact under a
	// round trip through the conversion graph.
	for v := 0; v <= 63; v++ {
		c := NewRGB565(uint8(v&31), uint8(v), uint8(v&31))
		if got := ToRGB565(rgb888Of(c)); got != c {
			t.Fatalf("v=%d: rgba round trip %04x -> %04x", v, c.Bits(), got.Bits())
		}
	}
}

func TestBinaryColorOps(t *testing.T) {
	if Off.IsOn() || !On.IsOn() {
		t.Fatalf("IsOn: off=%v on=%v", Off.IsOn(), On.IsOn())
	}
	if Off.Invert() != On || On.Invert() != Off {
		t.Fatalf("Invert: off=%v on=%v", Off.Invert(), On.Invert())
	}
	if got := Map(Off, 1, 2); got != 1 {
		t.Fatalf("Map(Off) = %d, want 1", got)
	}
	if got := Map(On, 1, 2); got != 2 {
		t.Fatalf("Map(On) = %d, want 2", got)
	}
}
