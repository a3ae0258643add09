package compare

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// compositor paints the after image across the whole area and the before
// image up to the divider. Scaled copies and the output buffer are cached per
// pixel size, so a frame only costs two copies.
type compositor struct {
	mu     sync.Mutex
	before image.Image
	after  image.Image

	width, height int
	scaledBefore  *image.NRGBA
	scaledAfter   *image.NRGBA
	out           *image.NRGBA
}

func newCompositor(before, after image.Image) *compositor {
	return &compositor{before: before, after: after}
}

func (c *compositor) setImages(before, after image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.before = before
	c.after = after
	c.scaledBefore = nil
	c.scaledAfter = nil
}

// compose renders a w×h frame with the divider at position percent.
func (c *compositor) compose(w, h int, position float64) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if w != c.width || h != c.height || c.out == nil {
		c.width, c.height = w, h
		c.out = image.NewNRGBA(image.Rect(0, 0, w, h))
		c.scaledBefore = nil
		c.scaledAfter = nil
	}
	if c.scaledBefore == nil {
		c.scaledBefore = cover(c.before, w, h)
	}
	if c.scaledAfter == nil {
		c.scaledAfter = cover(c.after, w, h)
	}

	full := c.out.Bounds()
	draw.Draw(c.out, full, c.scaledAfter, image.Point{}, draw.Src)

	cut := int(math.Round(float64(w) * position / 100))
	if cut > 0 {
		draw.Draw(c.out, image.Rect(0, 0, cut, h), c.scaledBefore, image.Point{}, draw.Src)
	}
	return c.out
}

// cover scales img to fill w×h, cropping the overflow around the center.
// A missing image yields a transparent area.
func cover(img image.Image, w, h int) *image.NRGBA {
	if img == nil || img.Bounds().Empty() {
		return imaging.New(w, h, color.Transparent)
	}
	return imaging.Fill(img, w, h, imaging.Center, imaging.Linear)
}
