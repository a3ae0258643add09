// Package slider drives the divider of a before/after comparison view.
//
// A Controller owns the divider position and decides who moves it: the user
// (hover, drag, touch) or an autonomous sine oscillation that resumes after
// the user has been idle for a while. Timing comes from an injected Scheduler
// so the state machine runs the same under a UI toolkit, a plain clock or a
// virtual clock in tests.
package slider

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mode tells which driver currently owns the divider position.
type Mode int

const (
	// Autonomous means the animation loop moves the divider.
	Autonomous Mode = iota
	// Manual means pointer or touch events move the divider.
	Manual
)

func (m Mode) String() string {
	switch m {
	case Autonomous:
		return "autonomous"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Handle cancels a scheduled callback. Cancel must be safe to call more than
// once and a cancelled callback must never run.
type Handle interface {
	Cancel()
}

// Scheduler is the host facility the controller needs: one-shot per-frame
// callbacks and cancellable delayed callbacks. Implementations must never run
// a callback from inside NextFrame or AfterFunc.
type Scheduler interface {
	// NextFrame runs fn once on the next rendered frame. now is the frame time.
	NextFrame(fn func(now time.Time)) Handle
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Handle
}

// Bounds is the horizontal geometry of the container hosting the slider.
type Bounds struct {
	Left  float64
	Width float64
}

// State is a snapshot of the controller.
type State struct {
	Position      float64 // percentage of the container width, in [0,100]
	Mode          Mode
	Hovered       bool
	Dragging      bool
	ResumePending bool    // a resume timer is armed
	Phase         float64 // oscillation phase the current loop started from
}

// ResumePolicy decides how the oscillation picks up a divider that was left
// outside the oscillation band.
type ResumePolicy int

const (
	// ResumeGlide eases an out-of-band divider into the band.
	ResumeGlide ResumePolicy = iota
	// ResumeSnap restarts on the nearest band edge, which can jump.
	ResumeSnap
)

func (p ResumePolicy) String() string {
	switch p {
	case ResumeGlide:
		return "glide"
	case ResumeSnap:
		return "snap"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParseResumePolicy maps a config string onto a ResumePolicy.
func ParseResumePolicy(s string) (ResumePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "glide":
		return ResumeGlide, nil
	case "snap":
		return ResumeSnap, nil
	default:
		return ResumeGlide, fmt.Errorf("%w: unknown resume policy %q", ErrInvalidConfig, s)
	}
}

// Defaults for the autonomous motion.
const (
	DefaultCenter          = 50.0
	DefaultAmplitude       = 30.0
	DefaultPeriod          = 5000 * time.Millisecond
	DefaultResumeDelay     = 2500 * time.Millisecond
	DefaultInitialPosition = 50.0
	DefaultGlideDuration   = 800 * time.Millisecond
)

// ErrInvalidConfig is returned for configurations the controller cannot run.
var ErrInvalidConfig = errors.New("invalid slider config")

// Config tunes the controller.
type Config struct {
	Center          float64       // oscillation center, percent
	Amplitude       float64       // oscillation amplitude, percent
	Period          time.Duration // one full oscillation
	ResumeDelay     time.Duration // idle time before the oscillation resumes
	InitialPosition float64       // position on mount
	Resume          ResumePolicy
	GlideDuration   time.Duration // only used by ResumeGlide
}

// DefaultConfig returns the stock tuning: 50 ± 30 over 5 s, resuming after 2.5 s.
func DefaultConfig() Config {
	return Config{
		Center:          DefaultCenter,
		Amplitude:       DefaultAmplitude,
		Period:          DefaultPeriod,
		ResumeDelay:     DefaultResumeDelay,
		InitialPosition: DefaultInitialPosition,
		Resume:          ResumeGlide,
		GlideDuration:   DefaultGlideDuration,
	}
}

// Validate reports whether the controller can run with c.
func (c Config) Validate() error {
	switch {
	case c.Period <= 0:
		return fmt.Errorf("%w: period must be positive, got %v", ErrInvalidConfig, c.Period)
	case c.Amplitude <= 0:
		return fmt.Errorf("%w: amplitude must be positive, got %v", ErrInvalidConfig, c.Amplitude)
	case c.Center-c.Amplitude < 0 || c.Center+c.Amplitude > 100:
		return fmt.Errorf("%w: band %v±%v leaves [0,100]", ErrInvalidConfig, c.Center, c.Amplitude)
	case c.ResumeDelay < 0:
		return fmt.Errorf("%w: resume delay must not be negative, got %v", ErrInvalidConfig, c.ResumeDelay)
	case c.GlideDuration < 0:
		return fmt.Errorf("%w: glide duration must not be negative, got %v", ErrInvalidConfig, c.GlideDuration)
	case c.InitialPosition < 0 || c.InitialPosition > 100:
		return fmt.Errorf("%w: initial position %v outside [0,100]", ErrInvalidConfig, c.InitialPosition)
	case c.Resume != ResumeGlide && c.Resume != ResumeSnap:
		return fmt.Errorf("%w: unknown resume policy %d", ErrInvalidConfig, int(c.Resume))
	}
	return nil
}
