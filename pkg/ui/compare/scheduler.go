package compare

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/PixelPerfect/pkg/slider"
	"github.com/dixieflatline76/PixelPerfect/util"
)

// FyneScheduler delivers slider callbacks on the Fyne UI goroutine. Frames
// come from a fyne.Animation that only runs while frame callbacks are
// pending; delayed callbacks are timers handed back to the UI with fyne.Do.
type FyneScheduler struct {
	mu       sync.Mutex
	anim     *fyne.Animation
	// starting is the animation whose Start call is in progress; a driver
	// that ticks synchronously from Start must not run callbacks inside
	// NextFrame.
	starting *fyne.Animation
	pending  []*fyneCallback
	closed   bool
}

type fyneCallback struct {
	cancelled *util.SafeFlag
	frameFn   func(time.Time)
	timer     *time.Timer
}

func (c *fyneCallback) Cancel() {
	c.cancelled.Set(true)
	if c.timer != nil {
		c.timer.Stop()
	}
}

var _ slider.Scheduler = (*FyneScheduler)(nil)

// NewFyneScheduler creates a scheduler for widgets living in the running Fyne app.
func NewFyneScheduler() *FyneScheduler {
	return &FyneScheduler{}
}

// NextFrame queues fn for the next animation tick.
func (s *FyneScheduler) NextFrame(fn func(now time.Time)) slider.Handle {
	cb := &fyneCallback{cancelled: util.NewSafeBool(), frameFn: fn}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cb.Cancel()
		return cb
	}
	s.pending = append(s.pending, cb)
	var anim *fyne.Animation
	if s.anim == nil {
		anim = fyne.NewAnimation(time.Second, nil)
		anim.Tick = func(float32) { s.tick(anim) }
		anim.Curve = fyne.AnimationLinear
		anim.RepeatCount = fyne.AnimationRepeatForever
		s.anim = anim
		s.starting = anim
	}
	s.mu.Unlock()

	if anim != nil {
		anim.Start()
		s.mu.Lock()
		s.starting = nil
		s.mu.Unlock()
	}
	return cb
}

// AfterFunc runs fn on the UI goroutine after d.
func (s *FyneScheduler) AfterFunc(d time.Duration, fn func()) slider.Handle {
	cb := &fyneCallback{cancelled: util.NewSafeBool()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		cb.Cancel()
		return cb
	}
	cb.timer = time.AfterFunc(d, func() {
		fyne.Do(func() {
			if !cb.cancelled.Value() {
				fn()
			}
		})
	})
	return cb
}

// Close stops the animation and drops every pending frame. Timers already
// handed out must be cancelled through their handles.
func (s *FyneScheduler) Close() {
	s.mu.Lock()
	s.closed = true
	anim := s.anim
	s.anim = nil
	for _, cb := range s.pending {
		cb.cancelled.Set(true)
	}
	s.pending = nil
	s.mu.Unlock()

	if anim != nil {
		anim.Stop()
	}
}

// tick drains the callbacks queued since the previous tick. Callbacks queued
// while draining wait for the next tick; an empty tick stops the animation.
func (s *FyneScheduler) tick(anim *fyne.Animation) {
	now := time.Now()

	s.mu.Lock()
	if s.starting == anim {
		s.mu.Unlock()
		return
	}
	if s.anim != anim {
		s.mu.Unlock()
		anim.Stop()
		return
	}
	batch := s.pending
	s.pending = nil
	var idle *fyne.Animation
	if len(batch) == 0 {
		idle = s.anim
		s.anim = nil
	}
	s.mu.Unlock()

	if idle != nil {
		idle.Stop()
		return
	}
	for _, cb := range batch {
		if !cb.cancelled.Value() {
			cb.frameFn(now)
		}
	}
}
