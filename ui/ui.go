// Package ui is the PixelPerfect desktop shell: one window holding the
// comparison slider, a toolbar to pick images and effects, and a
// preferences window.
package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/PixelPerfect/asset"
	"github.com/dixieflatline76/PixelPerfect/config"
	"github.com/dixieflatline76/PixelPerfect/pkg/imagesource"
	"github.com/dixieflatline76/PixelPerfect/pkg/ui/compare"
	"github.com/dixieflatline76/PixelPerfect/util"
	"github.com/dixieflatline76/PixelPerfect/util/log"
)

// Options are the launch choices made on the command line.
type Options struct {
	BeforePath string
	AfterPath  string
	// Effect derives the after image when AfterPath is empty.
	Effect imagesource.Effect
	// Watch reloads the pair whenever one of its files changes.
	Watch bool
	// ConfigFile is where the configuration is saved on exit; empty means
	// config.GetFilename().
	ConfigFile string
}

// PixelApp represents the application
type PixelApp struct {
	app      fyne.App
	window   fyne.Window
	assetMgr *asset.Manager
	appCfg   *config.AppConfig
	cfg      *config.Config
	cfgFile  string

	sched        *compare.FyneScheduler
	view         *compare.ComparisonSlider
	body         *fyne.Container
	status       *widget.Label
	effectSelect *widget.Select
	labelsCheck  *widget.Check

	beforePath string
	afterPath  string
	effect     imagesource.Effect
	watch      bool

	pair        imagesource.Pair
	beforeLabel string
	afterLabel  string

	loadSeq *util.SafeCounter
	watcher *imagesource.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewPixelApp builds the main window of a; nothing is loaded until Run.
func NewPixelApp(a fyne.App, cfg *config.Config, opts Options) (*PixelApp, error) {
	effect := imagesource.EffectUpscale
	if opts.Effect != "" {
		e, err := imagesource.ParseEffect(string(opts.Effect))
		if err != nil {
			return nil, err
		}
		effect = e
	}
	cfgFile := opts.ConfigFile
	if cfgFile == "" {
		cfgFile = config.GetFilename()
	}

	ctx, cancel := context.WithCancel(context.Background())
	pa := &PixelApp{
		app:         a,
		assetMgr:    asset.NewManager(),
		appCfg:      config.NewAppConfig(a.Preferences()),
		cfg:         cfg,
		cfgFile:     cfgFile,
		sched:       compare.NewFyneScheduler(),
		beforePath:  opts.BeforePath,
		afterPath:   opts.AfterPath,
		effect:      effect,
		watch:       opts.Watch,
		beforeLabel: beforeCaption,
		afterLabel:  afterCaption,
		loadSeq:     util.NewSafeCounter(),
		ctx:         ctx,
		cancel:      cancel,
	}

	view, err := compare.NewComparisonSlider(nil, nil, pa.sched, sliderConfigOrDefault(cfg.Slider))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("creating comparison view: %w", err)
	}
	view.ShowLabels(pa.appCfg.GetShowLabels())
	pa.view = view

	a.Settings().SetTheme(themeFor(pa.appCfg.GetTheme()))
	if icon, err := pa.assetMgr.GetIcon(asset.AppIcon); err == nil {
		a.SetIcon(icon)
	}

	pa.window = a.NewWindow(config.AppName)
	pa.window.SetContent(pa.buildContent())
	pa.window.SetMainMenu(pa.buildMainMenu())
	pa.window.Resize(defaultWindowSize)
	pa.window.SetOnClosed(pa.shutdown)
	return pa, nil
}

// Run loads the first pair and blocks in the Fyne event loop.
func (pa *PixelApp) Run() {
	pa.reload()
	pa.window.ShowAndRun()
}

// Window returns the main window.
func (pa *PixelApp) Window() fyne.Window {
	return pa.window
}

func (pa *PixelApp) buildContent() fyne.CanvasObject {
	pa.status = createStatusLabel()

	options := []string{compareFilesOption}
	for _, e := range imagesource.Effects() {
		options = append(options, string(e))
	}
	pa.effectSelect = widget.NewSelect(options, nil)
	if pa.afterPath != "" {
		pa.effectSelect.SetSelected(compareFilesOption)
	} else {
		pa.effectSelect.SetSelected(string(pa.effect))
	}
	pa.effectSelect.OnChanged = pa.selectEffect

	pa.labelsCheck = widget.NewCheck("Labels", nil)
	pa.labelsCheck.SetChecked(pa.appCfg.GetShowLabels())
	pa.labelsCheck.OnChanged = pa.setShowLabels

	toolbar := container.NewHBox(
		widget.NewButtonWithIcon("Before", theme.FolderOpenIcon(), func() { pa.chooseImage(true) }),
		widget.NewButtonWithIcon("After", theme.FolderOpenIcon(), func() { pa.chooseImage(false) }),
		pa.effectSelect,
		layout.NewSpacer(),
		pa.labelsCheck,
		widget.NewButtonWithIcon("", theme.SettingsIcon(), pa.showPreferences),
		widget.NewButtonWithIcon("", theme.InfoIcon(), pa.showAbout),
	)

	version := widget.NewLabel("v" + config.AppVersion)
	version.Importance = widget.LowImportance
	statusRow := newSplitRowWithAlignment(pa.status, version, threeFourths, SplitAlign.Opposed)

	pa.body = container.NewStack(pa.view)
	return container.NewBorder(toolbar, statusRow, nil, nil, pa.body)
}

func (pa *PixelApp) buildMainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Open Before...", func() { pa.chooseImage(true) }),
			fyne.NewMenuItem("Open After...", func() { pa.chooseImage(false) }),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Reload", pa.reload),
			fyne.NewMenuItem("Demo Images", func() {
				pa.beforePath, pa.afterPath = "", ""
				pa.reload()
			}),
		),
		fyne.NewMenu("Edit",
			fyne.NewMenuItem("Preferences", pa.showPreferences),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About "+config.AppName, pa.showAbout),
		),
	)
}

// provider picks the image source for the current selection.
func (pa *PixelApp) provider() imagesource.Provider {
	switch {
	case pa.beforePath != "" && pa.afterPath != "":
		return &imagesource.FileProvider{
			BeforePath: pa.beforePath,
			AfterPath:  pa.afterPath,
			Aspect:     imagesource.DisplayAspect,
		}
	case pa.beforePath != "":
		return &imagesource.EffectProvider{
			Path:   pa.beforePath,
			Effect: pa.effect,
			Aspect: imagesource.DisplayAspect,
		}
	default:
		return &imagesource.DemoProvider{}
	}
}

// reload loads the current selection in the background. Only the newest load
// is applied; older ones finishing late are dropped.
func (pa *PixelApp) reload() {
	p := pa.provider()
	pa.restartWatcher(p)
	seq := pa.loadSeq.Increment()
	pa.status.SetText(statusLoading)

	go func() {
		pair, err := p.Load(pa.ctx)
		fyne.Do(func() {
			pa.applyPair(seq, pair, err)
		})
	}()
}

func (pa *PixelApp) applyPair(seq int64, pair imagesource.Pair, err error) {
	if !pa.loadSeq.IsCurrent(seq) {
		log.Debugf("ui: dropping stale load %d", seq)
		return
	}
	if err != nil {
		if errors.Is(err, context.Canceled) && pa.ctx.Err() != nil {
			return
		}
		pa.status.SetText("Could not load images")
		pa.showError(err)
		return
	}

	pa.pair = pair
	pa.beforeLabel, pa.afterLabel = beforeCaption, afterCaption
	if pair.Label != "" && pair.Label != "demo" {
		pa.afterLabel = fmt.Sprintf("%s (%s)", afterCaption, pair.Label)
	}
	pa.view.SetImages(pair.Before, pair.After)
	pa.view.SetLabels(pa.beforeLabel, pa.afterLabel)

	if pa.beforePath != "" {
		effect := ""
		if pa.afterPath == "" {
			effect = string(pa.effect)
		}
		pa.cfg.Remember(pa.beforePath, pa.afterPath, effect)
	}
	pa.status.SetText(pa.describe())
}

// describe summarizes what is being compared for the status line.
func (pa *PixelApp) describe() string {
	var text string
	switch {
	case pa.beforePath != "" && pa.afterPath != "":
		text = fmt.Sprintf("%s vs %s", filepath.Base(pa.beforePath), filepath.Base(pa.afterPath))
	case pa.beforePath != "":
		text = fmt.Sprintf("%s with %s", filepath.Base(pa.beforePath), pa.effect)
	default:
		text = "Demo images"
	}
	if pa.watcher != nil {
		text += " - " + statusWatch
	}
	return text
}

func (pa *PixelApp) restartWatcher(p imagesource.Provider) {
	pa.stopWatcher()
	if !pa.watch || len(p.Paths()) == 0 {
		return
	}

	w, err := imagesource.NewWatcher(p, func(pair imagesource.Pair, err error) {
		seq := pa.loadSeq.Increment()
		fyne.Do(func() {
			pa.applyPair(seq, pair, err)
		})
	})
	if err != nil {
		log.Printf("ui: cannot watch images: %v", err)
		return
	}
	if err := w.Start(pa.ctx); err != nil {
		log.Printf("ui: cannot watch images: %v", err)
		w.Stop()
		return
	}
	pa.watcher = w
}

func (pa *PixelApp) stopWatcher() {
	if pa.watcher != nil {
		pa.watcher.Stop()
		pa.watcher = nil
	}
}

// openImage makes path the before or after image and reloads.
func (pa *PixelApp) openImage(before bool, path string) {
	if before {
		pa.beforePath = path
	} else {
		pa.afterPath = path
		pa.effectSelect.SetSelected(compareFilesOption)
	}
	pa.reload()
}

func (pa *PixelApp) chooseImage(before bool) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			pa.showError(err)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		if err := r.Close(); err != nil {
			log.Printf("ui: closing %s: %v", path, err)
		}
		pa.appCfg.SetLastDir(filepath.Dir(path))
		pa.openImage(before, path)
	}, pa.window)

	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	if dir := pa.appCfg.GetLastDir(); dir != "" {
		if l, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(l)
		}
	}
	d.Show()
}

// selectEffect switches to deriving the after image with the named effect.
func (pa *PixelApp) selectEffect(name string) {
	if name == compareFilesOption {
		return
	}
	e, err := imagesource.ParseEffect(name)
	if err != nil {
		pa.showError(err)
		return
	}
	pa.effect = e
	pa.afterPath = ""
	if pa.beforePath != "" {
		pa.reload()
	}
}

func (pa *PixelApp) setShowLabels(show bool) {
	pa.appCfg.SetShowLabels(show)
	pa.view.ShowLabels(show)
	if pa.labelsCheck.Checked != show {
		pa.labelsCheck.SetChecked(show)
	}
}

func (pa *PixelApp) setTheme(name string) {
	pa.appCfg.SetTheme(name)
	pa.app.Settings().SetTheme(themeFor(name))
}

// rebuildSlider replaces the comparison view after the motion settings
// changed; the controller reads its tuning only when created.
func (pa *PixelApp) rebuildSlider() {
	cfg, err := sliderConfig(pa.cfg.Slider)
	if err != nil {
		pa.showError(err)
		return
	}
	view, err := compare.NewComparisonSlider(pa.pair.Before, pa.pair.After, pa.sched, cfg)
	if err != nil {
		pa.showError(err)
		return
	}
	view.SetLabels(pa.beforeLabel, pa.afterLabel)
	view.ShowLabels(pa.appCfg.GetShowLabels())

	old := pa.view
	pa.view = view
	pa.body.Objects = []fyne.CanvasObject{view}
	pa.body.Refresh()
	old.Dispose()
	pa.saveConfig()
}

func (pa *PixelApp) showAbout() {
	about, _ := pa.assetMgr.GetText("about.txt")
	shortcuts, _ := pa.assetMgr.GetText("shortcuts.txt")

	title := widget.NewLabelWithStyle(fmt.Sprintf("%s %s", config.AppName, config.AppVersion),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	body := widget.NewLabel(strings.TrimSpace(about))
	body.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(title, body, widget.NewSeparator(),
		createSettingDescriptionLabel(strings.TrimSpace(shortcuts)))

	if icon, err := pa.assetMgr.GetIcon(asset.AppIcon); err == nil {
		img := canvas.NewImageFromResource(icon)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(64, 64))
		content = container.NewVBox(img, content)
	}

	d := dialog.NewCustom("About "+config.AppName, "Close", content, pa.window)
	d.Resize(fyne.NewSize(440, 360))
	d.Show()
}

func (pa *PixelApp) showError(err error) {
	log.Printf("ui: %v", err)
	dialog.ShowError(err, pa.window)
}

func (pa *PixelApp) saveConfig() {
	if err := pa.cfg.SaveTo(pa.cfgFile); err != nil {
		log.Printf("ui: saving config: %v", err)
	}
}

// shutdown releases everything tied to the window and persists the config.
func (pa *PixelApp) shutdown() {
	pa.stopWatcher()
	pa.cancel()
	pa.view.Dispose()
	pa.sched.Close()
	pa.saveConfig()
}
