package imagesource

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEffect(t *testing.T) {
	e, err := ParseEffect("  Upscale ")
	require.NoError(t, err)
	assert.Equal(t, EffectUpscale, e)

	_, err = ParseEffect("vaporwave")
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestEffectsSorted(t *testing.T) {
	names := Effects()
	assert.Len(t, names, 8)
	assert.Equal(t, EffectAnime, names[0])
	assert.Equal(t, EffectUpscale, names[len(names)-1])
}

func TestApplyErrors(t *testing.T) {
	_, err := Apply(nil, EffectBlur)
	assert.ErrorIs(t, err, ErrNoImages)

	_, err = Apply(imaging.New(4, 4, color.White), "nope")
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestApplyEveryEffect(t *testing.T) {
	src := imaging.New(12, 8, color.NRGBA{R: 120, G: 80, B: 40, A: 255})
	for _, e := range Effects() {
		t.Run(string(e), func(t *testing.T) {
			out, err := Apply(src, e)
			require.NoError(t, err)
			assert.False(t, out.Bounds().Empty())
		})
	}
}

func TestUpscaleDoublesSize(t *testing.T) {
	out, err := Apply(imaging.New(10, 6, color.Black), EffectUpscale)
	require.NoError(t, err)
	assert.Equal(t, 20, out.Bounds().Dx())
	assert.Equal(t, 12, out.Bounds().Dy())
}

func TestCutoutClearsNearWhite(t *testing.T) {
	src := imaging.New(2, 1, color.White)
	src.SetNRGBA(1, 0, color.NRGBA{R: 200, G: 250, B: 250, A: 255})

	out, err := Apply(src, EffectCutout)
	require.NoError(t, err)
	_, _, _, a := out.At(0, 0).RGBA()
	assert.Zero(t, a)
	_, _, _, a = out.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)

	// The source is left untouched.
	assert.Equal(t, uint8(255), src.NRGBAAt(0, 0).A)
}

func TestExtendCentersOriginal(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	out, err := Apply(imaging.New(20, 10, red), EffectExtend)
	require.NoError(t, err)

	assert.Equal(t, 30, out.Bounds().Dx())
	assert.Equal(t, 15, out.Bounds().Dy())
	assert.Equal(t, red, color.NRGBAModel.Convert(out.At(5, 2)))
	assert.Equal(t, red, color.NRGBAModel.Convert(out.At(24, 11)))
}
