package slider

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dixieflatline76/PixelPerfect/util/log"
	"github.com/google/uuid"
)

// Controller is the comparison slider state machine.
//
// Hovering or dragging puts it in Manual mode and stops the animation loop.
// Once the pointer is neither over the slider nor dragging, a resume timer is
// armed; if nothing happens before it fires, the controller goes back to
// Autonomous and restarts the oscillation from the current position.
type Controller struct {
	mu    sync.Mutex
	id    string
	cfg   Config
	sched Scheduler

	position float64
	mode     Mode
	hovered  bool
	dragging bool
	mounted  bool
	disposed bool

	resume    Handle
	resumeGen uint64 // bumped whenever the pending resume is superseded
	frame     Handle
	loopGen   uint64 // bumped whenever the frame chain is stopped
	phase0    float64
	origin    float64 // position when the current loop started
	start     time.Time

	onChange func(State)
}

// New creates a controller driven by sched. The controller is idle until Mount.
func New(sched Scheduler, cfg Config) (*Controller, error) {
	if sched == nil {
		return nil, errors.New("slider: nil scheduler")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		id:       uuid.NewString()[:8],
		cfg:      cfg,
		sched:    sched,
		position: cfg.InitialPosition,
		mode:     Autonomous,
	}, nil
}

// ID returns a short identifier used in log lines.
func (c *Controller) ID() string {
	return c.id
}

// Config returns the tuning the controller runs with.
func (c *Controller) Config() Config {
	return c.cfg
}

// OnChange registers fn to be called after every state change. fn runs
// outside the controller lock and may call back into the controller.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Mount puts the divider at its initial position and starts the oscillation.
// It does not notify the OnChange observer, so a widget may mount from inside
// its own renderer construction. Calling it again has no effect.
func (c *Controller) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed || c.mounted {
		return
	}
	c.mounted = true
	c.position = c.cfg.InitialPosition
	c.mode = Autonomous
	c.startLoopLocked()
	log.Debugf("slider %s: mounted at %.1f", c.id, c.position)
}

// Dispose cancels every pending callback. Afterwards the controller ignores
// all events and never changes state again.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.disposed = true
	c.cancelResumeLocked()
	c.stopLoopLocked()
	c.onChange = nil
	log.Debugf("slider %s: disposed", c.id)
}

// PointerEnter handles the pointer entering the container.
func (c *Controller) PointerEnter() {
	c.update(func() bool {
		c.hovered = true
		c.enterManualLocked()
		return true
	})
}

// PointerLeave handles the pointer leaving the container. A leave without a
// matching enter is ignored.
func (c *Controller) PointerLeave() {
	c.update(func() bool {
		if !c.hovered {
			return false
		}
		c.hovered = false
		if !c.dragging {
			c.armResumeLocked()
		}
		return true
	})
}

// DragStart begins a press-drag gesture at pointer coordinate x.
func (c *Controller) DragStart(x float64, b Bounds) {
	c.update(func() bool {
		c.dragging = true
		c.enterManualLocked()
		if p, ok := PositionFromPointer(x, b); ok {
			c.position = p
		}
		return true
	})
}

// DragMove follows the pointer while a drag is active; otherwise it is ignored.
func (c *Controller) DragMove(x float64, b Bounds) {
	c.update(func() bool {
		if !c.dragging {
			return false
		}
		p, ok := PositionFromPointer(x, b)
		if !ok {
			return false
		}
		c.position = p
		return true
	})
}

// DragEnd finishes the drag gesture. Without a prior DragStart it is ignored.
func (c *Controller) DragEnd() {
	c.update(func() bool {
		if !c.dragging {
			return false
		}
		c.dragging = false
		if !c.hovered {
			c.armResumeLocked()
		}
		return true
	})
}

// TouchStart begins a touch gesture. Only the first touch point is read.
func (c *Controller) TouchStart(xs []float64, b Bounds) {
	if len(xs) == 0 {
		return
	}
	c.DragStart(xs[0], b)
}

// TouchMove follows the first touch point of an active gesture.
func (c *Controller) TouchMove(xs []float64, b Bounds) {
	if len(xs) == 0 {
		return
	}
	c.DragMove(xs[0], b)
}

// TouchEnd finishes a touch gesture.
func (c *Controller) TouchEnd() {
	c.DragEnd()
}

// StartAutonomous (re)starts the oscillation from the current position,
// replacing any running loop. It is ignored while the user is interacting.
func (c *Controller) StartAutonomous() {
	c.update(func() bool {
		if c.hovered || c.dragging {
			return false
		}
		c.cancelResumeLocked()
		c.mode = Autonomous
		c.startLoopLocked()
		return true
	})
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Position returns the divider position in percent.
func (c *Controller) Position() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Mode returns the current driver of the divider.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) String() string {
	st := c.State()
	return fmt.Sprintf("slider %s: %s at %.2f (hovered=%t dragging=%t)", c.id, st.Mode, st.Position, st.Hovered, st.Dragging)
}

// update runs fn under the lock and publishes the new state when fn reports a change.
func (c *Controller) update(fn func() bool) {
	c.mu.Lock()
	if c.disposed || !fn() {
		c.mu.Unlock()
		return
	}
	st := c.stateLocked()
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify(st)
	}
}

func (c *Controller) stateLocked() State {
	return State{
		Position:      c.position,
		Mode:          c.mode,
		Hovered:       c.hovered,
		Dragging:      c.dragging,
		ResumePending: c.resume != nil,
		Phase:         c.phase0,
	}
}

func (c *Controller) enterManualLocked() {
	c.cancelResumeLocked()
	c.stopLoopLocked()
	if c.mode != Manual {
		c.mode = Manual
		log.Debugf("slider %s: manual at %.1f", c.id, c.position)
	}
}

// armResumeLocked replaces any pending resume with a fresh one.
func (c *Controller) armResumeLocked() {
	c.cancelResumeLocked()
	gen := c.resumeGen
	c.resume = c.sched.AfterFunc(c.cfg.ResumeDelay, func() {
		c.fireResume(gen)
	})
}

func (c *Controller) cancelResumeLocked() {
	if c.resume != nil {
		c.resume.Cancel()
		c.resume = nil
	}
	c.resumeGen++
}

func (c *Controller) fireResume(gen uint64) {
	c.update(func() bool {
		if gen != c.resumeGen || c.hovered || c.dragging {
			return false
		}
		c.resume = nil
		c.mode = Autonomous
		c.startLoopLocked()
		log.Debugf("slider %s: autonomous from %.1f (phase %.3f)", c.id, c.position, c.phase0)
		return true
	})
}

// startLoopLocked stops the current frame chain, if any, and starts a new one
// whose phase matches the current position.
func (c *Controller) startLoopLocked() {
	c.stopLoopLocked()
	c.origin = c.position
	c.phase0 = PhaseFromPosition(c.position, c.cfg.Center, c.cfg.Amplitude)
	c.start = time.Time{}
	c.scheduleFrameLocked(c.loopGen)
}

func (c *Controller) stopLoopLocked() {
	if c.frame != nil {
		c.frame.Cancel()
		c.frame = nil
	}
	c.loopGen++
}

func (c *Controller) scheduleFrameLocked(gen uint64) {
	c.frame = c.sched.NextFrame(func(now time.Time) {
		c.tick(gen, now)
	})
}

func (c *Controller) tick(gen uint64, now time.Time) {
	c.update(func() bool {
		if gen != c.loopGen || c.mode != Autonomous {
			return false
		}
		if c.start.IsZero() {
			c.start = now
		}
		c.position = c.autonomousPosition(now.Sub(c.start))
		c.scheduleFrameLocked(gen)
		return true
	})
}

func (c *Controller) autonomousPosition(elapsed time.Duration) float64 {
	p := Oscillate(c.phase0, elapsed, c.cfg)
	if c.cfg.Resume == ResumeGlide {
		p += glideOffset(c.origin-Oscillate(c.phase0, 0, c.cfg), elapsed, c.cfg.GlideDuration)
	}
	return Clamp(p, 0, 100)
}
