package slider

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"inside", 42, 42},
		{"below", -5, 0},
		{"above", 250, 100},
		{"lower edge", 0, 0},
		{"upper edge", 100, 100},
		{"nan", math.NaN(), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"positive infinity", math.Inf(1), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.v, 0, 100))
		})
	}
}

func TestPositionFromPointer(t *testing.T) {
	b := Bounds{Left: 20, Width: 400}

	t.Run("Maps Relative To Left Edge", func(t *testing.T) {
		p, ok := PositionFromPointer(120, b)
		assert.True(t, ok)
		assert.InDelta(t, 25, p, 1e-9)
	})

	t.Run("Always Within Range", func(t *testing.T) {
		for x := -10000.0; x <= 10000; x += 37.5 {
			p, ok := PositionFromPointer(x, b)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
		p, _ := PositionFromPointer(math.Inf(1), b)
		assert.Equal(t, 100.0, p)
		p, _ = PositionFromPointer(math.Inf(-1), b)
		assert.Equal(t, 0.0, p)
	})

	t.Run("Unusable Geometry", func(t *testing.T) {
		_, ok := PositionFromPointer(10, Bounds{Width: 0})
		assert.False(t, ok)
		_, ok = PositionFromPointer(10, Bounds{Width: -3})
		assert.False(t, ok)
		_, ok = PositionFromPointer(math.NaN(), b)
		assert.False(t, ok)
	})
}

func TestPhaseFromPosition(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("Round Trips Inside Band", func(t *testing.T) {
		for p := 20.0; p <= 80; p += 0.5 {
			phase := PhaseFromPosition(p, cfg.Center, cfg.Amplitude)
			assert.InDelta(t, p, Oscillate(phase, 0, cfg), 1e-9, "position %v", p)
		}
	})

	t.Run("Known Value", func(t *testing.T) {
		assert.InDelta(t, 0.985, PhaseFromPosition(75, cfg.Center, cfg.Amplitude), 1e-3)
		assert.Equal(t, 0.0, PhaseFromPosition(50, cfg.Center, cfg.Amplitude))
	})

	t.Run("Out Of Band Uses Nearest Edge", func(t *testing.T) {
		assert.InDelta(t, math.Pi/2, PhaseFromPosition(97, cfg.Center, cfg.Amplitude), 1e-12)
		assert.InDelta(t, -math.Pi/2, PhaseFromPosition(3, cfg.Center, cfg.Amplitude), 1e-12)
	})

	t.Run("Degenerate Amplitude", func(t *testing.T) {
		assert.Equal(t, 0.0, PhaseFromPosition(70, 50, 0))
	})
}

func TestOscillate(t *testing.T) {
	cfg := DefaultConfig()
	phase0 := PhaseFromPosition(75, cfg.Center, cfg.Amplitude)

	t.Run("Stays In Band Over A Period", func(t *testing.T) {
		for ms := 0; ms <= 5000; ms += 16 {
			p := Oscillate(phase0, time.Duration(ms)*time.Millisecond, cfg)
			assert.GreaterOrEqual(t, p, 20.0-1e-9)
			assert.LessOrEqual(t, p, 80.0+1e-9)
		}
	})

	t.Run("Periodic", func(t *testing.T) {
		assert.InDelta(t, Oscillate(phase0, 0, cfg), Oscillate(phase0, cfg.Period, cfg), 1e-9)
	})

	t.Run("Quarter Period Peaks", func(t *testing.T) {
		assert.InDelta(t, 80, Oscillate(0, cfg.Period/4, cfg), 1e-9)
		assert.InDelta(t, 20, Oscillate(0, 3*cfg.Period/4, cfg), 1e-9)
	})
}

func TestGlideOffset(t *testing.T) {
	glide := 800 * time.Millisecond
	assert.Equal(t, 10.0, glideOffset(10, 0, glide))
	assert.InDelta(t, 2.5, glideOffset(10, 400*time.Millisecond, glide), 1e-9)
	assert.Equal(t, 0.0, glideOffset(10, glide, glide))
	assert.Equal(t, 0.0, glideOffset(10, time.Hour, glide))
	assert.Equal(t, 0.0, glideOffset(10, 0, 0))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero period", func(c *Config) { c.Period = 0 }},
		{"negative amplitude", func(c *Config) { c.Amplitude = -1 }},
		{"band above 100", func(c *Config) { c.Center = 90 }},
		{"band below 0", func(c *Config) { c.Center = 10 }},
		{"negative resume delay", func(c *Config) { c.ResumeDelay = -time.Second }},
		{"negative glide", func(c *Config) { c.GlideDuration = -time.Second }},
		{"initial position", func(c *Config) { c.InitialPosition = 101 }},
		{"unknown policy", func(c *Config) { c.Resume = ResumePolicy(7) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseResumePolicy(t *testing.T) {
	p, err := ParseResumePolicy("Snap")
	assert.NoError(t, err)
	assert.Equal(t, ResumeSnap, p)

	p, err = ParseResumePolicy("")
	assert.NoError(t, err)
	assert.Equal(t, ResumeGlide, p)

	_, err = ParseResumePolicy("bounce")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
