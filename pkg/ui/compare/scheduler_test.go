package compare

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFyneSchedulerClosedHandsOutDeadHandles(t *testing.T) {
	test.NewApp()
	s := NewFyneScheduler()
	s.Close()

	ran := false
	s.NextFrame(func(time.Time) { ran = true })
	s.AfterFunc(time.Millisecond, func() { ran = true })

	time.Sleep(20 * time.Millisecond)
	assert.False(t, ran)
	assert.Nil(t, s.anim)
	assert.Empty(t, s.pending)
}

func TestFyneSchedulerCancelledTimerNeverRuns(t *testing.T) {
	test.NewApp()
	s := NewFyneScheduler()
	defer s.Close()

	ran := make(chan struct{}, 1)
	h := s.AfterFunc(10*time.Millisecond, func() { ran <- struct{}{} })
	h.Cancel()
	h.Cancel()

	select {
	case <-ran:
		t.Fatal("cancelled callback ran")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFyneSchedulerTickDrainsOneBatch(t *testing.T) {
	test.NewApp()
	s := NewFyneScheduler()
	defer s.Close()

	var order []string
	s.NextFrame(func(time.Time) {
		order = append(order, "first")
		s.NextFrame(func(time.Time) { order = append(order, "second") })
	})
	anim := s.anim
	require.NotNil(t, anim)

	s.tick(anim)
	assert.Equal(t, []string{"first"}, order)
	assert.Len(t, s.pending, 1)

	s.tick(anim)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Same(t, anim, s.anim)
}

func TestFyneSchedulerIdleTickStopsAnimation(t *testing.T) {
	test.NewApp()
	s := NewFyneScheduler()
	defer s.Close()

	s.NextFrame(func(time.Time) {})
	first := s.anim
	s.tick(first)
	s.tick(first)
	assert.Nil(t, s.anim)

	ran := false
	s.NextFrame(func(time.Time) { ran = true })
	require.NotNil(t, s.anim)
	assert.NotSame(t, first, s.anim)

	s.tick(s.anim)
	assert.True(t, ran)
}

func TestFyneSchedulerCancelledFrameNeverRuns(t *testing.T) {
	test.NewApp()
	s := NewFyneScheduler()
	defer s.Close()

	ran := false
	h := s.NextFrame(func(time.Time) { ran = true })
	h.Cancel()

	s.tick(s.anim)
	assert.False(t, ran)
	assert.Empty(t, s.pending)
}

func TestFyneSchedulerSkipsTickDuringStart(t *testing.T) {
	test.NewApp()
	s := NewFyneScheduler()
	defer s.Close()

	ran := false
	s.NextFrame(func(time.Time) { ran = true })
	anim := s.anim

	s.mu.Lock()
	s.starting = anim
	s.mu.Unlock()
	s.tick(anim)
	assert.False(t, ran)
	assert.Len(t, s.pending, 1)

	s.mu.Lock()
	s.starting = nil
	s.mu.Unlock()
	s.tick(anim)
	assert.True(t, ran)
}

func TestFyneSchedulerStaleAnimationAfterClose(t *testing.T) {
	test.NewApp()
	s := NewFyneScheduler()

	ran := false
	s.NextFrame(func(time.Time) { ran = true })
	anim := s.anim
	s.Close()

	s.tick(anim)
	assert.False(t, ran)
	assert.Nil(t, s.anim)
	assert.Empty(t, s.pending)
}
