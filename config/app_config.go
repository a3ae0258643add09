package config

import "fyne.io/fyne/v2"

// AppConfig holds the UI preferences, stored through fyne.Preferences.
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// AppThemeKey is the key for the app theme preference
const AppThemeKey = "app_theme"

// Theme names accepted by SetTheme.
const (
	ThemeSystem = "System"
	ThemeLight  = "Light"
	ThemeDark   = "Dark"
)

// GetTheme returns the current application theme
func (c *AppConfig) GetTheme() string {
	switch t := c.prefs.StringWithFallback(AppThemeKey, ThemeSystem); t {
	case ThemeLight, ThemeDark:
		return t
	default:
		return ThemeSystem
	}
}

// SetTheme sets the application theme
func (c *AppConfig) SetTheme(theme string) {
	c.prefs.SetString(AppThemeKey, theme)
}

// ShowLabelsKey is the key for the before/after labels preference
const ShowLabelsKey = "show_labels"

// GetShowLabels returns whether the Before/After captions are drawn
func (c *AppConfig) GetShowLabels() bool {
	return c.prefs.BoolWithFallback(ShowLabelsKey, true)
}

// SetShowLabels sets whether the Before/After captions are drawn
func (c *AppConfig) SetShowLabels(show bool) {
	c.prefs.SetBool(ShowLabelsKey, show)
}

// LastDirKey is the key for the directory the file dialogs open in
const LastDirKey = "last_dir"

// GetLastDir returns the directory of the last opened image, or ""
func (c *AppConfig) GetLastDir() string {
	return c.prefs.String(LastDirKey)
}

// SetLastDir remembers the directory of the last opened image
func (c *AppConfig) SetLastDir(dir string) {
	c.prefs.SetString(LastDirKey, dir)
}
