package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/PixelPerfect/pkg/ui/setting"
)

// SettingsManager collects the changes made in the preferences window and
// applies them together when the Apply button is pressed.
type SettingsManager struct {
	chgPrefsCallbacks map[string]func()
	refreshFlags      map[string]bool
	refreshFuncs      []func()
	applyButton       *widget.Button
	prefsWindow       fyne.Window
}

var _ setting.SettingsManager = (*SettingsManager)(nil)

// NewSettingsManager creates a new SettingsManager.
func NewSettingsManager(window fyne.Window) *SettingsManager {
	sm := &SettingsManager{
		chgPrefsCallbacks: make(map[string]func()),
		refreshFlags:      make(map[string]bool),
		prefsWindow:       window,
	}
	sm.applyButton = widget.NewButton("Apply Changes", sm.apply)
	sm.applyButton.Importance = widget.HighImportance
	sm.applyButton.Disable()
	return sm
}

// apply runs every pending change, then the refresh functions if any applied
// setting asked for one.
func (sm *SettingsManager) apply() {
	callbacks := sm.chgPrefsCallbacks
	needsRefresh := len(sm.refreshFlags) > 0
	sm.chgPrefsCallbacks = make(map[string]func())
	sm.refreshFlags = make(map[string]bool)

	for _, callback := range callbacks {
		callback()
	}
	if needsRefresh {
		for _, rf := range sm.refreshFuncs {
			rf()
		}
	}
	sm.checkAndEnableApply()
}

func (sm *SettingsManager) checkAndEnableApply() {
	if len(sm.chgPrefsCallbacks) > 0 {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
}

// track records or forgets the change of one setting.
func (sm *SettingsManager) track(name string, changed, needsRefresh bool, apply func()) {
	if changed {
		sm.SetSettingChangedCallback(name, apply)
		if needsRefresh {
			sm.SetRefreshFlag(name)
		}
	} else {
		sm.RemoveSettingChangedCallback(name)
		sm.UnsetRefreshFlag(name)
	}
	sm.checkAndEnableApply()
}

// CreateSectionTitleLabel creates a label for a group of settings
func (sm *SettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	return createSectionTitleLabel(desc)
}

// CreateSettingTitleLabel creates a label for a setting title
func (sm *SettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	return createSettingTitleLabel(desc)
}

// CreateSettingDescriptionLabel creates a label for a setting description
func (sm *SettingsManager) CreateSettingDescriptionLabel(desc string) fyne.CanvasObject {
	return createSettingDescriptionLabel(desc)
}

// CreateSelectSetting creates a select row.
func (sm *SettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, header *fyne.Container) *widget.Select {
	selectWidget := widget.NewSelect(cfg.Options, nil)
	selectWidget.SetSelectedIndex(cfg.InitialValue)
	selectWidget.OnChanged = func(string) {
		idx := selectWidget.SelectedIndex()
		sm.track(cfg.Name, idx != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(idx)
			cfg.InitialValue = idx
		})
	}

	header.Add(newSplitRow(cfg.Label, selectWidget, oneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}
	return selectWidget
}

// CreateBoolSetting creates a check row.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil)
	check.SetChecked(cfg.InitialValue)
	check.OnChanged = func(b bool) {
		sm.track(cfg.Name, b != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(b)
			cfg.InitialValue = b
		})
	}

	header.Add(newSplitRow(cfg.Label, check, oneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}
	return check
}

// CreateTextEntrySetting creates a text entry row. Invalid input is shown
// next to the entry and never reaches ApplyFunc.
func (sm *SettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(cfg.PlaceHolder)
	entry.SetText(cfg.InitialValue)
	entry.Validator = cfg.Validator

	statusLabel := widget.NewLabel("")
	entry.OnChanged = func(s string) {
		if cfg.Validator != nil {
			if err := cfg.Validator(s); err != nil {
				statusLabel.SetText(err.Error())
				statusLabel.Importance = widget.DangerImportance
				statusLabel.Refresh()
				sm.track(cfg.Name, false, cfg.NeedsRefresh, nil)
				return
			}
		}
		statusLabel.SetText("")
		sm.track(cfg.Name, s != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(s)
			cfg.InitialValue = s
		})
	}

	header.Add(newSplitRow(cfg.Label, entry, oneThird))
	if cfg.HelpContent != nil {
		header.Add(newSplitRowWithAlignment(cfg.HelpContent, statusLabel, twoThirds, SplitAlign.Opposed))
	} else {
		header.Add(statusLabel)
	}
	return entry
}

// CreateButtonWithConfirmationSetting creates a button that asks before acting.
func (sm *SettingsManager) CreateButtonWithConfirmationSetting(cfg *setting.ButtonWithConfirmationConfig, header *fyne.Container) *widget.Button {
	button := widget.NewButton(cfg.ButtonText, func() {
		if cfg.ConfirmTitle == "" || cfg.ConfirmMessage == "" {
			cfg.OnPressed()
			return
		}
		dialog.ShowConfirm(cfg.ConfirmTitle, cfg.ConfirmMessage, func(ok bool) {
			if ok {
				cfg.OnPressed()
			}
		}, sm.prefsWindow)
	})

	if cfg.Label != nil {
		header.Add(newSplitRow(cfg.Label, button, oneThird))
	} else {
		header.Add(button)
	}
	return button
}

// GetApplySettingsButton returns the Apply Changes button.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// SetSettingChangedCallback sets a callback function to be called when a setting changes.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.chgPrefsCallbacks[settingName] = callback
}

// RemoveSettingChangedCallback removes a callback function associated with a specific setting.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.chgPrefsCallbacks, settingName)
}

// SetRefreshFlag sets a flag to indicate that a specific setting needs a refresh.
func (sm *SettingsManager) SetRefreshFlag(settingName string) {
	sm.refreshFlags[settingName] = true
}

// UnsetRefreshFlag removes the refresh flag for a specific setting.
func (sm *SettingsManager) UnsetRefreshFlag(settingName string) {
	delete(sm.refreshFlags, settingName)
}

// RegisterRefreshFunc registers a function to be called after an Apply that
// touched a setting marked NeedsRefresh.
func (sm *SettingsManager) RegisterRefreshFunc(refreshFunc func()) {
	sm.refreshFuncs = append(sm.refreshFuncs, refreshFunc)
}

// GetSettingsWindow returns the window associated with the SettingsManager.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}
