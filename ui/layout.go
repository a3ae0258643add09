package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment specifies how the two cells of a split row are placed.
type Alignment int

const (
	alignLeft Alignment = iota
	alignOpposed
)

// SplitAlign is a namespace for the Alignment constants.
var SplitAlign = struct {
	Left    Alignment // Left packs both cells against the left edge.
	Opposed Alignment // Opposed pins the first cell left and the second right.
}{
	Left:    alignLeft,
	Opposed: alignOpposed,
}

// Split ratios for the first cell of a row.
const (
	oneThird     float32 = 1.0 / 3
	twoThirds    float32 = 2.0 / 3
	threeFourths float32 = 3.0 / 4
)

// splitLayout gives the first cell a fixed share of the row width and the
// second cell the rest.
type splitLayout struct {
	first      fyne.CanvasObject
	second     fyne.CanvasObject
	proportion float32
	alignment  Alignment
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	a, b := s.first.MinSize(), s.second.MinSize()
	return fyne.NewSize(a.Width+b.Width, fyne.Max(a.Height, b.Height))
}

// Layout arranges the cells.
func (s *splitLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	firstWidth := size.Width * s.proportion
	secondWidth := size.Width - firstWidth

	if s.alignment == alignOpposed {
		secondWidth = fyne.Min(secondWidth, s.second.MinSize().Width)
	}

	s.first.Resize(fyne.NewSize(firstWidth, size.Height))
	s.second.Resize(fyne.NewSize(secondWidth, size.Height))

	s.first.Move(fyne.NewPos(0, 0))
	switch s.alignment {
	case alignOpposed:
		s.second.Move(fyne.NewPos(size.Width-secondWidth, 0))
	default:
		s.second.Move(fyne.NewPos(firstWidth, 0))
	}
}

// newSplitRowWithAlignment creates a split row with the given alignment and proportion.
func newSplitRowWithAlignment(first, second fyne.CanvasObject, proportion float32, alignment Alignment) *fyne.Container {
	return container.New(&splitLayout{
		first:      first,
		second:     second,
		proportion: proportion,
		alignment:  alignment,
	}, first, second)
}

// newSplitRow creates a left aligned split row.
func newSplitRow(first, second fyne.CanvasObject, proportion float32) *fyne.Container {
	return newSplitRowWithAlignment(first, second, proportion, alignLeft)
}
