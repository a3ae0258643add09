// Package slidertest provides a virtual-clock Scheduler for testing code
// built on the slider package.
package slidertest

import (
	"sort"
	"sync"
	"time"

	"github.com/dixieflatline76/PixelPerfect/pkg/slider"
)

// Epoch is the virtual time a new ManualScheduler starts at.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ManualScheduler implements slider.Scheduler on a virtual clock. Nothing runs
// until the test advances the clock or delivers a frame.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	frames []*entry
	timers []*entry
}

type entry struct {
	seq       int
	due       time.Time
	frameFn   func(time.Time)
	timerFn   func()
	cancelled bool
	owner     *ManualScheduler
}

func (e *entry) Cancel() {
	e.owner.mu.Lock()
	e.cancelled = true
	e.owner.mu.Unlock()
}

var _ slider.Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler returns a scheduler whose clock reads Epoch.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{now: Epoch}
}

// NextFrame queues fn for the next call to Frame.
func (s *ManualScheduler) NextFrame(fn func(now time.Time)) slider.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e := &entry{seq: s.seq, frameFn: fn, owner: s}
	s.frames = append(s.frames, e)
	return e
}

// AfterFunc queues fn to run once the virtual clock reaches now+d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) slider.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	e := &entry{seq: s.seq, due: s.now.Add(d), timerFn: fn, owner: s}
	s.timers = append(s.timers, e)
	return e
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves the clock forward by d, firing due timers in deadline order.
// It does not deliver frames.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		s.timers = live(s.timers)
		sort.SliceStable(s.timers, func(i, j int) bool {
			if s.timers[i].due.Equal(s.timers[j].due) {
				return s.timers[i].seq < s.timers[j].seq
			}
			return s.timers[i].due.Before(s.timers[j].due)
		})
		if len(s.timers) == 0 || s.timers[0].due.After(target) {
			s.now = target
			s.mu.Unlock()
			return
		}
		next := s.timers[0]
		s.timers = s.timers[1:]
		if next.due.After(s.now) {
			s.now = next.due
		}
		s.mu.Unlock()

		next.timerFn()
	}
}

// Frame delivers one frame at the current virtual time and reports how many
// callbacks ran. Callbacks queued while the frame runs wait for the next one.
func (s *ManualScheduler) Frame() int {
	s.mu.Lock()
	batch := live(s.frames)
	s.frames = nil
	now := s.now
	s.mu.Unlock()

	ran := 0
	for _, e := range batch {
		s.mu.Lock()
		skip := e.cancelled
		s.mu.Unlock()
		if skip {
			continue
		}
		e.frameFn(now)
		ran++
	}
	return ran
}

// Frames advances the clock by step before each of n frames.
func (s *ManualScheduler) Frames(n int, step time.Duration) {
	for i := 0; i < n; i++ {
		s.Advance(step)
		s.Frame()
	}
}

// PendingFrames reports the frame callbacks that have not been cancelled.
func (s *ManualScheduler) PendingFrames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(live(s.frames))
}

// PendingTimers reports the delayed callbacks that have neither fired nor been cancelled.
func (s *ManualScheduler) PendingTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(live(s.timers))
}

// live returns the uncancelled entries in a new slice; entries is not modified.
func live(entries []*entry) []*entry {
	out := make([]*entry, 0, len(entries))
	for _, e := range entries {
		if !e.cancelled {
			out = append(out, e)
		}
	}
	return out
}
