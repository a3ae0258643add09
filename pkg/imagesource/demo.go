package imagesource

import (
	"context"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DemoProvider generates a pair without touching the disk: a sharp
// synthetic landscape as the after image and a small, soft, washed out copy
// of it as the before image.
type DemoProvider struct {
	Width  int
	Height int
}

// Load implements Provider.
func (p *DemoProvider) Load(ctx context.Context) (Pair, error) {
	w, h := p.Width, p.Height
	if w <= 0 || h <= 0 {
		w, h = 960, 540
	}
	if err := checkContext(ctx); err != nil {
		return Pair{}, err
	}

	after := landscape(w, h)
	caption(after, "PixelPerfect")

	before := imaging.Resize(after, w/4, h/4, imaging.Box)
	before = imaging.Resize(before, w, h, imaging.NearestNeighbor)
	before = imaging.Blur(before, 1.5)
	before = imaging.AdjustSaturation(before, -40)
	return Pair{Before: before, After: after, Label: "demo"}, nil
}

// Paths implements Provider.
func (p *DemoProvider) Paths() []string {
	return nil
}

func landscape(w, h int) *image.NRGBA {
	img := imaging.New(w, h, color.Black)
	horizon := h * 2 / 3
	sunX, sunY, sunR := float64(w)*0.7, float64(h)*0.35, float64(h)*0.12

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c color.NRGBA
			if y < horizon {
				t := float64(y) / float64(horizon)
				c = color.NRGBA{R: uint8(40 + 180*t), G: uint8(90 + 90*t), B: uint8(200 - 40*t), A: 255}
			} else {
				t := float64(y-horizon) / float64(h-horizon)
				stripe := uint8(20 * (1 + math.Sin(float64(x)/9)))
				c = color.NRGBA{R: 30 + stripe, G: uint8(120 - 60*t), B: 50, A: 255}
			}
			if math.Hypot(float64(x)-sunX, float64(y)-sunY) < sunR {
				c = color.NRGBA{R: 255, G: 210, B: 90, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func caption(img *image.NRGBA, text string) {
	bounds, _ := font.BoundString(basicfont.Face7x13, text)
	textWidth := bounds.Max.X.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(img.Bounds().Dx() - textWidth - 10),
			Y: fixed.I(img.Bounds().Dy() - 10),
		},
	}
	d.DrawString(text)
}
