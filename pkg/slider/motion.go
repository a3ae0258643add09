package slider

import (
	"math"
	"time"
)

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PositionFromPointer maps a horizontal pointer coordinate onto a divider
// position. ok is false when the geometry or the coordinate is unusable, in
// which case the event should be ignored.
func PositionFromPointer(x float64, b Bounds) (position float64, ok bool) {
	if b.Width <= 0 || math.IsNaN(x) || math.IsNaN(b.Left) || math.IsInf(b.Width, 0) {
		return 0, false
	}
	return Clamp((x-b.Left)/b.Width*100, 0, 100), true
}

// PhaseFromPosition inverts the oscillation: it returns the phase at which
// center + amplitude*sin(phase) equals position. Positions outside the band
// are first pulled onto its nearest edge.
func PhaseFromPosition(position, center, amplitude float64) float64 {
	if amplitude <= 0 {
		return 0
	}
	p := Clamp(position, center-amplitude, center+amplitude)
	return math.Asin(Clamp((p-center)/amplitude, -1, 1))
}

// Oscillate returns the autonomous position elapsed after a loop started at phase0.
func Oscillate(phase0 float64, elapsed time.Duration, cfg Config) float64 {
	angle := phase0 + 2*math.Pi*float64(elapsed)/float64(cfg.Period)
	return cfg.Center + cfg.Amplitude*math.Sin(angle)
}

// glideOffset is the part of offset still left after elapsed of a quadratic ease-out.
func glideOffset(offset float64, elapsed, glide time.Duration) float64 {
	if glide <= 0 || elapsed >= glide || offset == 0 {
		return 0
	}
	rest := 1 - float64(elapsed)/float64(glide)
	return offset * rest * rest
}
