// Package compare provides a Fyne before/after comparison widget whose
// divider is driven by a slider.Controller.
package compare

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/PixelPerfect/pkg/slider"
)

const (
	handleDiameter float32 = 36
	dividerWidth   float32 = 3
	labelPadding   float32 = 12
)

// minSize keeps the 16:9 aspect of the comparison area.
var minSize = fyne.NewSize(320, 180)

// ComparisonSlider shows two images split by a draggable divider.
//
// All controller callbacks must arrive on the UI goroutine, which is what
// FyneScheduler does.
type ComparisonSlider struct {
	widget.BaseWidget

	ctrl *slider.Controller
	comp *compositor

	beforeLabel string
	afterLabel  string
	showLabels  bool
}

var (
	_ fyne.Draggable     = (*ComparisonSlider)(nil)
	_ desktop.Hoverable  = (*ComparisonSlider)(nil)
	_ desktop.Mouseable  = (*ComparisonSlider)(nil)
	_ desktop.Cursorable = (*ComparisonSlider)(nil)
	_ mobile.Touchable   = (*ComparisonSlider)(nil)
)

// NewComparisonSlider creates the widget. The controller starts when the
// widget is first rendered and stops with Dispose or when the renderer is destroyed.
func NewComparisonSlider(before, after image.Image, sched slider.Scheduler, cfg slider.Config) (*ComparisonSlider, error) {
	ctrl, err := slider.New(sched, cfg)
	if err != nil {
		return nil, err
	}
	s := &ComparisonSlider{
		ctrl:        ctrl,
		comp:        newCompositor(before, after),
		beforeLabel: "Before",
		afterLabel:  "After",
		showLabels:  true,
	}
	s.ExtendBaseWidget(s)
	ctrl.OnChange(func(slider.State) { s.Refresh() })
	return s, nil
}

// Controller exposes the state machine behind the widget.
func (s *ComparisonSlider) Controller() *slider.Controller {
	return s.ctrl
}

// SetImages swaps the image pair without touching the divider.
func (s *ComparisonSlider) SetImages(before, after image.Image) {
	s.comp.setImages(before, after)
	s.Refresh()
}

// SetLabels changes the captions drawn in the top corners.
func (s *ComparisonSlider) SetLabels(before, after string) {
	s.beforeLabel, s.afterLabel = before, after
	s.Refresh()
}

// ShowLabels toggles the captions. Shown captions are still hidden while the
// pointer is over the widget or a drag is active.
func (s *ComparisonSlider) ShowLabels(show bool) {
	s.showLabels = show
	s.Refresh()
}

// Dispose stops the controller. The widget keeps rendering its last frame.
func (s *ComparisonSlider) Dispose() {
	s.ctrl.Dispose()
}

// CreateRenderer implements fyne.Widget.
func (s *ComparisonSlider) CreateRenderer() fyne.WidgetRenderer {
	s.ExtendBaseWidget(s)

	r := &sliderRenderer{
		slider:  s,
		divider: canvas.NewRectangle(color.White),
		handle:  canvas.NewCircle(color.NRGBA{R: 255, G: 255, B: 255, A: 230}),
		before:  canvas.NewText(s.beforeLabel, color.White),
		after:   canvas.NewText(s.afterLabel, color.White),
	}
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return s.comp.compose(w, h, s.ctrl.Position())
	})
	r.handle.StrokeColor = theme.Color(theme.ColorNamePrimary)
	r.handle.StrokeWidth = 2
	for _, t := range []*canvas.Text{r.before, r.after} {
		t.TextStyle = fyne.TextStyle{Bold: true}
		t.TextSize = theme.TextSize()
	}
	r.objects = []fyne.CanvasObject{r.raster, r.divider, r.handle, r.before, r.after}

	s.ctrl.Mount()
	return r
}

func (s *ComparisonSlider) bounds() slider.Bounds {
	return slider.Bounds{Left: 0, Width: float64(s.Size().Width)}
}

// MouseIn implements desktop.Hoverable.
func (s *ComparisonSlider) MouseIn(*desktop.MouseEvent) {
	s.ctrl.PointerEnter()
}

// MouseMoved implements desktop.Hoverable. Plain hovering does not move the
// divider; a pressed button does.
func (s *ComparisonSlider) MouseMoved(ev *desktop.MouseEvent) {
	s.ctrl.DragMove(float64(ev.Position.X), s.bounds())
}

// MouseOut implements desktop.Hoverable.
func (s *ComparisonSlider) MouseOut() {
	s.ctrl.PointerLeave()
}

// MouseDown implements desktop.Mouseable.
func (s *ComparisonSlider) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.ctrl.DragStart(float64(ev.Position.X), s.bounds())
}

// MouseUp implements desktop.Mouseable.
func (s *ComparisonSlider) MouseUp(*desktop.MouseEvent) {
	s.ctrl.DragEnd()
}

// Dragged implements fyne.Draggable. Fyne keeps sending drag events to the
// widget after the pointer leaves it, so the divider follows until release.
func (s *ComparisonSlider) Dragged(ev *fyne.DragEvent) {
	s.ctrl.DragMove(float64(ev.Position.X), s.bounds())
}

// DragEnd implements fyne.Draggable.
func (s *ComparisonSlider) DragEnd() {
	s.ctrl.DragEnd()
}

// TouchDown implements mobile.Touchable.
func (s *ComparisonSlider) TouchDown(ev *mobile.TouchEvent) {
	s.ctrl.TouchStart([]float64{float64(ev.Position.X)}, s.bounds())
}

// TouchUp implements mobile.Touchable.
func (s *ComparisonSlider) TouchUp(*mobile.TouchEvent) {
	s.ctrl.TouchEnd()
}

// TouchCancel implements mobile.Touchable.
func (s *ComparisonSlider) TouchCancel(*mobile.TouchEvent) {
	s.ctrl.TouchEnd()
}

// Cursor implements desktop.Cursorable.
func (s *ComparisonSlider) Cursor() desktop.Cursor {
	return desktop.HResizeCursor
}

type sliderRenderer struct {
	slider  *ComparisonSlider
	raster  *canvas.Raster
	divider *canvas.Rectangle
	handle  *canvas.Circle
	before  *canvas.Text
	after   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *sliderRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))

	x := size.Width * float32(r.slider.ctrl.Position()) / 100
	r.divider.Resize(fyne.NewSize(dividerWidth, size.Height))
	r.divider.Move(fyne.NewPos(x-dividerWidth/2, 0))

	r.handle.Resize(fyne.NewSize(handleDiameter, handleDiameter))
	r.handle.Move(fyne.NewPos(x-handleDiameter/2, (size.Height-handleDiameter)/2))

	r.before.Move(fyne.NewPos(labelPadding, labelPadding))
	afterSize := r.after.MinSize()
	r.after.Move(fyne.NewPos(size.Width-afterSize.Width-labelPadding, labelPadding))
}

func (r *sliderRenderer) MinSize() fyne.Size {
	return minSize
}

func (r *sliderRenderer) Refresh() {
	r.before.Text = r.slider.beforeLabel
	r.after.Text = r.slider.afterLabel
	// Captions step aside while the user is working the divider.
	st := r.slider.ctrl.State()
	if r.slider.showLabels && !st.Hovered && !st.Dragging {
		r.before.Show()
		r.after.Show()
	} else {
		r.before.Hide()
		r.after.Hide()
	}
	r.Layout(r.slider.Size())
	r.raster.Refresh()
	r.before.Refresh()
	r.after.Refresh()
}

func (r *sliderRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *sliderRenderer) Destroy() {
	r.slider.ctrl.Dispose()
}
