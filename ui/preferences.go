package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/PixelPerfect/config"
	"github.com/dixieflatline76/PixelPerfect/pkg/slider"
	"github.com/dixieflatline76/PixelPerfect/pkg/ui/setting"
)

var resumePolicies = []slider.ResumePolicy{slider.ResumeGlide, slider.ResumeSnap}

func (pa *PixelApp) showPreferences() {
	w := pa.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	sm := NewSettingsManager(w)
	w.SetContent(pa.buildPreferences(sm))
	w.Resize(fyne.NewSize(560, 460))
	w.Show()
}

func (pa *PixelApp) buildPreferences(sm setting.SettingsManager) fyne.CanvasObject {
	appearance := container.NewVBox(sm.CreateSectionTitleLabel("Appearance"))
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "theme",
		Options:      themeNames,
		InitialValue: indexOf(themeNames, pa.appCfg.GetTheme()),
		Label:        sm.CreateSettingTitleLabel("Theme:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("System follows the operating system setting."),
		ApplyFunc:    func(i int) { pa.setTheme(themeNames[i]) },
	}, appearance)
	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "labels",
		InitialValue: pa.appCfg.GetShowLabels(),
		Label:        sm.CreateSettingTitleLabel("Before/After labels:"),
		ApplyFunc:    pa.setShowLabels,
	}, appearance)

	motion := container.NewVBox(sm.CreateSectionTitleLabel("Divider motion"))
	policyIndex := 0
	if p, err := slider.ParseResumePolicy(pa.cfg.Slider.Resume); err == nil {
		policyIndex = int(p)
	}
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "resume",
		Options:      setting.StringOptions(resumePolicies),
		InitialValue: policyIndex,
		Label:        sm.CreateSettingTitleLabel("Resume style:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Glide eases a divider left near an edge back into its sweep; snap jumps straight onto it."),
		ApplyFunc:    func(i int) { pa.cfg.Slider.Resume = resumePolicies[i].String() },
		NeedsRefresh: true,
	}, motion)
	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "resume_delay",
		InitialValue: pa.cfg.Slider.ResumeDelay.String(),
		PlaceHolder:  "2.5s",
		Label:        sm.CreateSettingTitleLabel("Resume after:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Idle time before the divider starts sweeping again."),
		Validator:    durationValidator(true),
		ApplyFunc:    func(s string) { pa.cfg.Slider.ResumeDelay = mustDuration(s) },
		NeedsRefresh: true,
	}, motion)
	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "period",
		InitialValue: pa.cfg.Slider.Period.String(),
		PlaceHolder:  "5s",
		Label:        sm.CreateSettingTitleLabel("Sweep period:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Time for one full back-and-forth sweep."),
		Validator:    durationValidator(false),
		ApplyFunc:    func(s string) { pa.cfg.Slider.Period = mustDuration(s) },
		NeedsRefresh: true,
	}, motion)
	sm.CreateButtonWithConfirmationSetting(&setting.ButtonWithConfirmationConfig{
		Name:           "reset_motion",
		Label:          sm.CreateSettingTitleLabel("Defaults:"),
		ButtonText:     "Restore Motion Defaults",
		ConfirmTitle:   "Restore Defaults",
		ConfirmMessage: "Reset the divider motion settings to their defaults?",
		OnPressed: func() {
			pa.cfg.Slider = config.DefaultSliderSettings()
			pa.rebuildSlider()
			sm.GetSettingsWindow().Close()
		},
	}, motion)
	sm.RegisterRefreshFunc(pa.rebuildSlider)

	buttons := container.NewHBox(layout.NewSpacer(), sm.GetApplySettingsButton())
	return container.NewBorder(nil, buttons, nil, nil,
		container.NewVScroll(container.NewVBox(appearance, widget.NewSeparator(), motion)))
}

// durationValidator accepts Go duration strings such as "2.5s" or "800ms".
func durationValidator(allowZero bool) fyne.StringValidator {
	return func(s string) error {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return errors.New("not a duration, try 2.5s")
		}
		if d < 0 || (d == 0 && !allowZero) {
			return errors.New("must be positive")
		}
		return nil
	}
}

// mustDuration parses input that already passed durationValidator.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(strings.TrimSpace(s))
	return d
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}
