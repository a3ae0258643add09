package slider

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultFrameRate is the frame rate of a TimerScheduler created with fps <= 0.
const DefaultFrameRate = 60

// TimerScheduler is a Scheduler for hosts without a render loop. Frames come
// from a ticker goroutine that only runs while frame callbacks are pending;
// delayed callbacks run on their own timer goroutines.
type TimerScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	pending  []*timerEntry
	timers   map[*timerEntry]struct{}
	ticking  bool
	closed   bool
	stop     chan struct{}
	wg       sync.WaitGroup
}

type timerEntry struct {
	cancelled atomic.Bool
	timer     *time.Timer
	owner     *TimerScheduler
	frameFn   func(time.Time)
}

func (e *timerEntry) Cancel() {
	if e.cancelled.Swap(true) {
		return
	}
	if e.timer != nil {
		e.timer.Stop()
		e.owner.forget(e)
	}
}

type noopHandle struct{}

func (noopHandle) Cancel() {}

// NewTimerScheduler returns a scheduler delivering fps frames per second.
func NewTimerScheduler(fps int) *TimerScheduler {
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	return &TimerScheduler{
		interval: time.Second / time.Duration(fps),
		timers:   make(map[*timerEntry]struct{}),
		stop:     make(chan struct{}),
	}
}

// NextFrame queues fn for the next tick.
func (s *TimerScheduler) NextFrame(fn func(now time.Time)) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return noopHandle{}
	}
	e := &timerEntry{owner: s, frameFn: fn}
	s.pending = append(s.pending, e)
	if !s.ticking {
		s.ticking = true
		s.wg.Add(1)
		go s.run()
	}
	return e
}

// AfterFunc runs fn on its own goroutine after d.
func (s *TimerScheduler) AfterFunc(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return noopHandle{}
	}
	e := &timerEntry{owner: s}
	e.timer = time.AfterFunc(d, func() {
		if e.cancelled.Load() {
			return
		}
		s.forget(e)
		fn()
	})
	s.timers[e] = struct{}{}
	return e
}

// Close stops the ticker and all pending timers and waits for the ticker
// goroutine to exit. Callbacks already running are allowed to finish.
func (s *TimerScheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.stop)
	for _, e := range s.pending {
		e.cancelled.Store(true)
	}
	s.pending = nil
	for e := range s.timers {
		e.cancelled.Store(true)
		e.timer.Stop()
	}
	s.timers = make(map[*timerEntry]struct{})
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *TimerScheduler) forget(e *timerEntry) {
	s.mu.Lock()
	delete(s.timers, e)
	s.mu.Unlock()
}

func (s *TimerScheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			batch := s.pending
			s.pending = nil
			if len(batch) == 0 {
				s.ticking = false
				s.mu.Unlock()
				return
			}
			s.mu.Unlock()

			for _, e := range batch {
				if !e.cancelled.Load() {
					e.frameFn(now)
				}
			}
		}
	}
}
