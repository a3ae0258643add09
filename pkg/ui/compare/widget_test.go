package compare

import (
	"image"
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/PixelPerfect/pkg/slider"
	"github.com/dixieflatline76/PixelPerfect/pkg/slider/slidertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func newTestSlider(t *testing.T) (*ComparisonSlider, *slidertest.ManualScheduler) {
	t.Helper()
	test.NewApp()

	sched := slidertest.NewManualScheduler()
	s, err := NewComparisonSlider(imaging.New(64, 36, red), imaging.New(64, 36, blue), sched, slider.DefaultConfig())
	require.NoError(t, err)

	w := test.NewWindow(s)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(400, 225))
	s.Resize(fyne.NewSize(400, 225))
	return s, sched
}

func mouseAt(x float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, 100)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestNewComparisonSliderRejectsBadConfig(t *testing.T) {
	cfg := slider.DefaultConfig()
	cfg.Amplitude = 0
	_, err := NewComparisonSlider(nil, nil, slidertest.NewManualScheduler(), cfg)
	assert.ErrorIs(t, err, slider.ErrInvalidConfig)
}

func TestComparisonSliderMountsOnRender(t *testing.T) {
	s, sched := newTestSlider(t)

	assert.Equal(t, slider.Autonomous, s.Controller().Mode())
	assert.Equal(t, 1, sched.PendingFrames())

	sched.Frames(10, 16*time.Millisecond)
	assert.NotEqual(t, 50.0, s.Controller().Position())
}

func TestComparisonSliderMouseScenario(t *testing.T) {
	s, sched := newTestSlider(t)

	s.MouseIn(mouseAt(100))
	s.MouseDown(mouseAt(100))
	assert.InDelta(t, 25, s.Controller().Position(), 1e-4)

	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 100)}})
	assert.InDelta(t, 75, s.Controller().Position(), 1e-4)

	// Dragging past the widget edge keeps following and clamps.
	s.MouseOut()
	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(900, 100)}})
	assert.Equal(t, 100.0, s.Controller().Position())

	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 100)}})
	s.DragEnd()
	s.MouseUp(mouseAt(300))
	assert.Equal(t, 1, sched.PendingTimers())

	sched.Advance(2500 * time.Millisecond)
	assert.Equal(t, slider.Autonomous, s.Controller().Mode())
	sched.Frame()
	assert.InDelta(t, 75, s.Controller().Position(), 1e-4)
}

func TestComparisonSliderHoverDoesNotMoveDivider(t *testing.T) {
	s, sched := newTestSlider(t)

	s.MouseIn(mouseAt(10))
	s.MouseMoved(mouseAt(390))
	assert.Equal(t, 50.0, s.Controller().Position())
	assert.Equal(t, slider.Manual, s.Controller().Mode())
	assert.Equal(t, 0, sched.PendingFrames())
}

func TestComparisonSliderSecondaryButtonIgnored(t *testing.T) {
	s, _ := newTestSlider(t)

	ev := mouseAt(100)
	ev.Button = desktop.MouseButtonSecondary
	s.MouseDown(ev)
	assert.False(t, s.Controller().State().Dragging)
}

func TestComparisonSliderTouch(t *testing.T) {
	s, sched := newTestSlider(t)

	s.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 10)}})
	assert.InDelta(t, 10, s.Controller().Position(), 1e-4)
	assert.Equal(t, slider.Manual, s.Controller().Mode())

	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(-50, 10)}})
	assert.Equal(t, 0.0, s.Controller().Position())

	s.TouchCancel(&mobile.TouchEvent{})
	assert.Equal(t, 1, sched.PendingTimers())
}

func TestComparisonSliderDispose(t *testing.T) {
	s, sched := newTestSlider(t)

	s.MouseDown(mouseAt(100))
	s.MouseUp(mouseAt(100))
	s.Dispose()

	assert.Equal(t, 0, sched.PendingTimers())
	assert.Equal(t, 0, sched.PendingFrames())
	sched.Advance(time.Minute)
	sched.Frames(10, 16*time.Millisecond)
	assert.InDelta(t, 25, s.Controller().Position(), 1e-4)
}

func TestComparisonSliderLabels(t *testing.T) {
	s, _ := newTestSlider(t)
	r := s.CreateRenderer().(*sliderRenderer)

	s.SetLabels("Original", "Upscaled")
	r.Refresh()
	assert.Equal(t, "Original", r.before.Text)
	assert.Equal(t, "Upscaled", r.after.Text)
	assert.True(t, r.before.Visible())

	s.ShowLabels(false)
	r.Refresh()
	assert.False(t, r.before.Visible())
	assert.False(t, r.after.Visible())
}

func TestComparisonSliderLabelsHideDuringInteraction(t *testing.T) {
	s, sched := newTestSlider(t)
	r := s.CreateRenderer().(*sliderRenderer)

	s.MouseIn(mouseAt(100))
	r.Refresh()
	assert.False(t, r.before.Visible())
	assert.False(t, r.after.Visible())

	s.MouseOut()
	r.Refresh()
	assert.True(t, r.before.Visible())

	s.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 10)}})
	r.Refresh()
	assert.False(t, r.after.Visible())

	s.TouchUp(&mobile.TouchEvent{})
	r.Refresh()
	assert.True(t, r.after.Visible())
	assert.Equal(t, slider.Manual, s.Controller().Mode())

	sched.Advance(2500 * time.Millisecond)
	r.Refresh()
	assert.True(t, r.before.Visible())
}

func TestRendererFollowsDivider(t *testing.T) {
	s, _ := newTestSlider(t)
	r := s.CreateRenderer().(*sliderRenderer)

	s.MouseDown(mouseAt(100))
	r.Layout(fyne.NewSize(400, 225))

	center := r.divider.Position().X + r.divider.Size().Width/2
	assert.InDelta(t, 100, center, 0.01)
	handleCenter := r.handle.Position().X + r.handle.Size().Width/2
	assert.InDelta(t, 100, handleCenter, 0.01)
	assert.Equal(t, minSize, r.MinSize())
}

func TestCompositorSplitsAtDivider(t *testing.T) {
	c := newCompositor(imaging.New(20, 10, red), imaging.New(20, 10, blue))

	out := c.compose(100, 50, 30)
	assert.Equal(t, image.Rect(0, 0, 100, 50), out.Bounds())
	assert.Equal(t, red, color.NRGBAModel.Convert(out.At(10, 25)))
	assert.Equal(t, red, color.NRGBAModel.Convert(out.At(29, 25)))
	assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(30, 25)))
	assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(99, 25)))

	out = c.compose(100, 50, 0)
	assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(0, 0)))

	out = c.compose(100, 50, 100)
	assert.Equal(t, red, color.NRGBAModel.Convert(out.At(99, 49)))
}

func TestCompositorHandlesMissingImages(t *testing.T) {
	c := newCompositor(nil, imaging.New(8, 8, blue))

	out := c.compose(40, 20, 50)
	_, _, _, a := out.At(5, 5).RGBA()
	assert.Zero(t, a)
	assert.Equal(t, blue, color.NRGBAModel.Convert(out.At(30, 5)))

	c.setImages(imaging.New(8, 8, red), nil)
	out = c.compose(40, 20, 50)
	assert.Equal(t, red, color.NRGBAModel.Convert(out.At(5, 5)))

	assert.Equal(t, 1, c.compose(0, 10, 50).Bounds().Dx())
}
