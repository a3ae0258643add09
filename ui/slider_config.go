package ui

import (
	"fmt"

	"github.com/dixieflatline76/PixelPerfect/config"
	"github.com/dixieflatline76/PixelPerfect/pkg/slider"
	"github.com/dixieflatline76/PixelPerfect/util/log"
)

// sliderConfig turns the stored tuning into a validated slider.Config.
func sliderConfig(s config.SliderSettings) (slider.Config, error) {
	policy, err := slider.ParseResumePolicy(s.Resume)
	if err != nil {
		return slider.Config{}, err
	}
	cfg := slider.Config{
		Center:          s.Center,
		Amplitude:       s.Amplitude,
		Period:          s.Period,
		ResumeDelay:     s.ResumeDelay,
		InitialPosition: s.InitialPosition,
		Resume:          policy,
		GlideDuration:   s.GlideDuration,
	}
	if err := cfg.Validate(); err != nil {
		return slider.Config{}, fmt.Errorf("slider settings: %w", err)
	}
	return cfg, nil
}

// sliderConfigOrDefault falls back to the stock tuning when the stored one is
// unusable, so a hand-edited config file never keeps the app from starting.
func sliderConfigOrDefault(s config.SliderSettings) slider.Config {
	cfg, err := sliderConfig(s)
	if err != nil {
		log.Printf("ui: %v; using defaults", err)
		return slider.DefaultConfig()
	}
	return cfg
}
