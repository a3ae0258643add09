package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestAppConfig(t *testing.T) {
	prefs := test.NewApp().Preferences()
	cfg := NewAppConfig(prefs)

	t.Run("Theme", func(t *testing.T) {
		// Default should be "System"
		assert.Equal(t, ThemeSystem, cfg.GetTheme())

		cfg.SetTheme(ThemeDark)
		assert.Equal(t, ThemeDark, cfg.GetTheme())

		cfg.SetTheme(ThemeLight)
		assert.Equal(t, ThemeLight, cfg.GetTheme())

		// Unknown values fall back to the system theme
		cfg.SetTheme("Solarized")
		assert.Equal(t, ThemeSystem, cfg.GetTheme())
	})

	t.Run("ShowLabels", func(t *testing.T) {
		// Default should be true
		assert.True(t, cfg.GetShowLabels())

		cfg.SetShowLabels(false)
		assert.False(t, cfg.GetShowLabels())

		cfg.SetShowLabels(true)
		assert.True(t, cfg.GetShowLabels())
	})

	t.Run("LastDir", func(t *testing.T) {
		assert.Empty(t, cfg.GetLastDir())

		cfg.SetLastDir("/tmp/shots")
		assert.Equal(t, "/tmp/shots", cfg.GetLastDir())
	})

	t.Run("SharedPreferences", func(t *testing.T) {
		cfg.SetTheme(ThemeDark)
		other := NewAppConfig(prefs)
		assert.Equal(t, ThemeDark, other.GetTheme())
		assert.Equal(t, "/tmp/shots", other.GetLastDir())
		assert.Equal(t, ThemeDark, prefs.String(AppThemeKey))
	})
}
