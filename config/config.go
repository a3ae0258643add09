// Package config provides configuration management for PixelPerfect.
//
// Slider tuning and the last opened images live in a JSON file under the
// user's home directory; UI preferences live in fyne.Preferences (see
// AppConfig).
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Config holds the persisted configuration.
type Config struct {
	Slider SliderSettings `json:"slider"`
	// LastBefore and LastAfter are the most recently compared files.
	LastBefore string `json:"last_before,omitempty"`
	LastAfter  string `json:"last_after,omitempty"`
	// LastEffect is the effect used when only one file was opened.
	LastEffect string `json:"last_effect,omitempty"`
}

// SliderSettings is the on-disk form of the divider tuning. The ui package
// validates it when building the slider.
type SliderSettings struct {
	Center          float64       `json:"center"`
	Amplitude       float64       `json:"amplitude"`
	Period          time.Duration `json:"period"`
	ResumeDelay     time.Duration `json:"resume_delay"`
	InitialPosition float64       `json:"initial_position"`
	Resume          string        `json:"resume"`
	GlideDuration   time.Duration `json:"glide_duration"`
}

var (
	instance *Config
	once     sync.Once
)

// GetConfig returns the singleton instance of Config.
func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{}
		instance.setDefaultValues()
		if err := instance.loadFromFile(GetFilename()); err != nil {
			if !os.IsNotExist(err) {
				log.Println("Error loading config, using defaults:", err)
			}
			instance.setDefaultValues()
		}
	})
	return instance
}

// GetPath returns the path to the user's config directory.
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// GetFilename returns the path to the user's config file.
func GetFilename() string {
	return filepath.Join(GetPath(), "config.json")
}

// Load reads a config from filename, filling anything the file leaves out
// with defaults.
func Load(filename string) (*Config, error) {
	c := &Config{}
	c.setDefaultValues()
	if err := c.loadFromFile(filename); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}
	return nil
}

func (c *Config) setDefaultValues() {
	c.Slider = DefaultSliderSettings()
}

// DefaultSliderSettings returns the stock divider tuning: a 5 s sweep of
// ±30 around the middle that resumes 2.5 s after the last interaction.
func DefaultSliderSettings() SliderSettings {
	return SliderSettings{
		Center:          50,
		Amplitude:       30,
		Period:          5 * time.Second,
		ResumeDelay:     2500 * time.Millisecond,
		InitialPosition: 50,
		Resume:          "glide",
		GlideDuration:   800 * time.Millisecond,
	}
}

// Remember records the images of the current comparison.
func (c *Config) Remember(before, after, effect string) {
	c.LastBefore = before
	c.LastAfter = after
	c.LastEffect = effect
}

// Save writes the configuration to the user's config file.
func (c *Config) Save() error {
	return c.SaveTo(GetFilename())
}

// SaveTo writes the configuration to filename as indented JSON.
func (c *Config) SaveTo(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
