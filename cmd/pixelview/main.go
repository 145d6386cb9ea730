// pixelview renders a pixel format conversion test card into an RGB565
// framebuffer and shows it in a desktop window, or writes it to a PNG with
// -out.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mmou/embedded-graphics/framebuffer"
	"github.com/mmou/embedded-graphics/pixelcolor"
)

func main() {
	var scale int
	var out string
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&out, "out", "", "Write the card to a PNG file instead of opening a window.")
	flag.Parse()

	fb, err := framebuffer.New(framebuffer.FormatRGB565, cardWidth, cardHeight)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	drawCard(fb)

	if out != "" {
		if err := writePNG(out, fb); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if scale < 1 {
		scale = 1
	}
	g := &viewer{fb: fb}
	ebiten.SetWindowTitle("pixelview")
	ebiten.SetWindowSize(fb.Width()*scale, fb.Height()*scale)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writePNG(path string, fb *framebuffer.Framebuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, fb); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}

type viewer struct {
	fb    *framebuffer.Framebuffer
	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *viewer) Update() error { return nil }

func (g *viewer) Draw(screen *ebiten.Image) {
	w, h := g.fb.Width(), g.fb.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.fbImg = ebiten.NewImage(w, h)
	}

	src := g.fb.Buffer()
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		c := pixelcolor.ToRGB888(pixelcolor.RGB565(uint16(src[i]) | uint16(src[i+1])<<8))
		j := (i / 2) * 4
		dst[j+0] = c.R()
		dst[j+1] = c.G()
		dst[j+2] = c.B()
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
