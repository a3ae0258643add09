package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetManager(t *testing.T) {
	am := NewManager()

	t.Run("GetIcon", func(t *testing.T) {
		icon, err := am.GetIcon(AppIcon)
		assert.NoError(t, err)
		assert.Equal(t, AppIcon, icon.Name())
		assert.Contains(t, string(icon.Content()), "<svg")

		_, err = am.GetIcon("non_existent.png")
		assert.Error(t, err)

		_, err = am.GetIcon("")
		assert.Error(t, err)
	})

	t.Run("GetText", func(t *testing.T) {
		text, err := am.GetText("about.txt")
		assert.NoError(t, err)
		assert.Contains(t, text, "PixelPerfect")

		text, err = am.GetText("shortcuts.txt")
		assert.NoError(t, err)
		assert.NotEmpty(t, text)

		_, err = am.GetText("non_existent.txt")
		assert.Error(t, err)
	})
}
