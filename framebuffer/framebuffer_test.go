package framebuffer

import (
	"image/color"
	"testing"

	"github.com/mmou/embedded-graphics/pixelcolor"
)

func TestNewRejectsBadArgs(t *testing.T) {
	if _, err := New(Format(0), 8, 8); err != ErrBadFormat {
		t.Fatalf("zero format: err = %v, want ErrBadFormat", err)
	}
	if _, err := New(FormatRGB565, 0, 8); err != ErrBadSize {
		t.Fatalf("zero width: err = %v, want ErrBadSize", err)
	}
	if _, err := New(FormatRGB565, 8, -1); err != ErrBadSize {
		t.Fatalf("negative height: err = %v, want ErrBadSize", err)
	}
}

func TestStrideAndBufferSize(t *testing.T) {
	tcs := []struct {
		format Format
		stride int
	}{
		{FormatRGB565, 20},
		{FormatBGR555, 20},
		{FormatRGB888, 30},
		{FormatGray8, 10},
	}
	for _, tc := range tcs {
		t.Run(tc.format.String(), func(t *testing.T) {
			fb, err := New(tc.format, 10, 4)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if fb.StrideBytes() != tc.stride || len(fb.Buffer()) != tc.stride*4 {
				t.Fatalf("stride=%d len=%d, want stride=%d len=%d",
					fb.StrideBytes(), len(fb.Buffer()), tc.stride, tc.stride*4)
			}
		})
	}
}

func TestSetAtRoundTrip(t *testing.T) {
	formats := []Format{
		FormatRGB565, FormatBGR565, FormatRGB555, FormatBGR555,
		FormatRGB888, FormatBGR888, FormatGray8,
	}
	in := color.RGBA{R: 250, G: 120, B: 8, A: 255}
	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			fb, err := New(format, 4, 4)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			fb.Set(2, 1, in)
			want := format.Model().Convert(in)
			if got := fb.At(2, 1); got != want {
				t.Fatalf("At(2,1) = %v, want %v", got, want)
			}
			// Neighbors stay black.
			if got := pixelcolor.ToRGB888(fb.At(1, 1)); got != pixelcolor.RGB888Black {
				t.Fatalf("At(1,1) = %06x, want black", got.Bits())
			}
		})
	}
}

func TestSetAtOutOfBounds(t *testing.T) {
	fb, err := New(FormatRGB565, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fb.Set(-1, 0, pixelcolor.RGB565White)
	fb.Set(0, 4, pixelcolor.RGB565White)
	fb.SetPixel(4, 0, color.RGBA{R: 255, A: 255})
	for _, b := range fb.Buffer() {
		if b != 0 {
			t.Fatalf("out of bounds write touched the buffer")
		}
	}
	if got := pixelcolor.ToRGB888(fb.At(9, 9)); got != pixelcolor.RGB888Black {
		t.Fatalf("out of bounds read = %06x, want black", got.Bits())
	}
}

func TestClear(t *testing.T) {
	fb, err := New(FormatBGR565, 7, 3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fb.Clear(pixelcolor.RGB888Yellow)
	want := pixelcolor.ToBGR565(pixelcolor.RGB888Yellow)
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			if got := fb.At(x, y); got != color.Color(want) {
				t.Fatalf("At(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDisplayRunsPresentHook(t *testing.T) {
	fb, err := New(FormatRGB565, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := fb.Display(); err != nil {
		t.Fatalf("Display without hook: %v", err)
	}
	calls := 0
	fb.OnPresent(func() error {
		calls++
		return nil
	})
	if err := fb.Display(); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if calls != 1 {
		t.Fatalf("present hook ran %d times, want 1", calls)
	}
}

type fakeDisplay struct {
	w, h      int16
	px        map[[2]int16]color.RGBA
	displayed int
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, px: make(map[[2]int16]color.RGBA)}
}

func (d *fakeDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return
	}
	d.px[[2]int16{x, y}] = c
}

func (d *fakeDisplay) Display() error {
	d.displayed++
	return nil
}

func TestBlit(t *testing.T) {
	fb, err := New(FormatRGB565, 3, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fb.Clear(pixelcolor.RGB565Blue)
	fb.Set(1, 1, pixelcolor.RGB565White)

	d := newFakeDisplay(3, 2)
	if err := Blit(d, fb); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if d.displayed != 1 {
		t.Fatalf("Display called %d times, want 1", d.displayed)
	}
	if len(d.px) != 6 {
		t.Fatalf("blitted %d pixels, want 6", len(d.px))
	}
	if got := d.px[[2]int16{1, 1}]; got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("px(1,1) = %v, want white", got)
	}
	if got := d.px[[2]int16{0, 0}]; got != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("px(0,0) = %v, want blue", got)
	}
}

func TestBlitClipsToDisplay(t *testing.T) {
	fb, err := New(FormatRGB565, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fb.Clear(pixelcolor.RGB565Green)
	d := newFakeDisplay(2, 3)
	if err := Blit(d, fb); err != nil {
		t.Fatalf("Blit: %v", err)
	}
	if len(d.px) != 6 {
		t.Fatalf("blitted %d pixels, want 6", len(d.px))
	}
}
