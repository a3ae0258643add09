package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSliderSettings(t *testing.T) {
	d := DefaultSliderSettings()
	assert.Equal(t, 50.0, d.Center)
	assert.Equal(t, 30.0, d.Amplitude)
	assert.Equal(t, 5*time.Second, d.Period)
	assert.Equal(t, 2500*time.Millisecond, d.ResumeDelay)
	assert.Equal(t, "glide", d.Resume)
}

func TestSaveAndLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "config.json")

	c := &Config{Slider: DefaultSliderSettings()}
	c.Slider.Resume = "snap"
	c.Slider.Period = 4 * time.Second
	c.Remember("/img/a.png", "/img/b.png", "")
	require.NoError(t, c.SaveTo(file))

	loaded, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadFillsMissingFields(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"last_before":"x.png","slider":{"amplitude":20}}`), 0644))

	c, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "x.png", c.LastBefore)
	assert.Equal(t, 20.0, c.Slider.Amplitude)
	assert.Equal(t, 50.0, c.Slider.Center)
	assert.Equal(t, 5*time.Second, c.Slider.Period)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.True(t, os.IsNotExist(err))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{"), 0644))
	_, err = Load(broken)
	assert.ErrorContains(t, err, "parsing")
}

func TestGetFilenameUnderHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.Equal(t, filepath.Join(GetPath(), "config.json"), GetFilename())
	assert.Equal(t, ".pixelperfect", filepath.Base(GetPath()))
}
