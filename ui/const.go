package ui

import "fyne.io/fyne/v2"

// defaultWindowSize fits a 16:9 comparison plus the toolbar and status line.
var defaultWindowSize = fyne.NewSize(1024, 640)

// Status line texts.
const (
	statusIdle    = "Ready"
	statusLoading = "Loading images..."
	statusWatch   = "watching for changes"
)

// Default captions of the comparison labels.
const (
	beforeCaption = "Before"
	afterCaption  = "After"
)

// compareFilesOption is the effect select entry used when an after image is
// opened explicitly.
const compareFilesOption = "(after image)"

// imageExtensions are the file types the open dialogs offer.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"}
