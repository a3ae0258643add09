package imagesource

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// Effect names a local filter that turns a before image into an after image.
type Effect string

// Available effects.
const (
	EffectUpscale Effect = "upscale" // 2x Lanczos resize plus sharpening
	EffectCutout  Effect = "cutout"  // near-white pixels become transparent
	EffectExtend  Effect = "extend"  // 1.5x canvas with a blurred backdrop
	EffectBlur    Effect = "blur"
	EffectDisney  Effect = "disney"
	EffectAnime   Effect = "anime"
	EffectSketch  Effect = "sketch"
	EffectOil     Effect = "oil"
)

const (
	// cutoutThreshold is the channel value every RGB component must exceed
	// for a pixel to count as background.
	cutoutThreshold = 240
	extendRatio     = 1.5
	extendBlur      = 20.0
)

type effectFunc func(image.Image) image.Image

var effects = map[Effect]effectFunc{
	EffectUpscale: upscale,
	EffectCutout:  cutout,
	EffectExtend:  extend,
	EffectBlur: func(img image.Image) image.Image {
		return imaging.Blur(img, 4)
	},
	EffectDisney: func(img image.Image) image.Image {
		return tone(img, 50, 20, 10)
	},
	EffectAnime: func(img image.Image) image.Image {
		return tone(img, 100, 10, 0)
	},
	EffectSketch: func(img image.Image) image.Image {
		return tone(imaging.Grayscale(img), 0, 50, 20)
	},
	EffectOil: func(img image.Image) image.Image {
		return imaging.Blur(tone(img, 80, 30, 0), 1.2)
	},
}

// Effects lists the known effect names in sorted order.
func Effects() []Effect {
	names := make([]Effect, 0, len(effects))
	for name := range effects {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ParseEffect resolves a user supplied effect name.
func ParseEffect(name string) (Effect, error) {
	e := Effect(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := effects[e]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEffect, name)
	}
	return e, nil
}

// Apply runs effect on img.
func Apply(img image.Image, effect Effect) (image.Image, error) {
	fn, ok := effects[effect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, effect)
	}
	if img == nil {
		return nil, ErrNoImages
	}
	return fn(img), nil
}

// tone applies saturation, contrast and brightness changes in percent.
func tone(img image.Image, saturation, contrast, brightness float64) *image.NRGBA {
	out := imaging.AdjustSaturation(img, saturation)
	out = imaging.AdjustContrast(out, contrast)
	return imaging.AdjustBrightness(out, brightness)
}

func upscale(img image.Image) image.Image {
	b := img.Bounds()
	out := imaging.Resize(img, b.Dx()*2, b.Dy()*2, imaging.Lanczos)
	return imaging.Sharpen(out, 0.8)
}

func cutout(img image.Image) image.Image {
	out := imaging.Clone(img)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		if out.Pix[i] > cutoutThreshold && out.Pix[i+1] > cutoutThreshold && out.Pix[i+2] > cutoutThreshold {
			out.Pix[i+3] = 0
		}
	}
	return out
}

func extend(img image.Image) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * extendRatio)
	h := int(float64(b.Dy()) * extendRatio)

	backdrop := imaging.Blur(imaging.Resize(img, w, h, imaging.Linear), extendBlur)
	canvas := imaging.New(w, h, color.Black)
	canvas = imaging.Paste(canvas, backdrop, image.Pt(0, 0))
	return imaging.Paste(canvas, img, image.Pt((w-b.Dx())/2, (h-b.Dy())/2))
}
