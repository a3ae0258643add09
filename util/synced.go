// Package util holds small concurrency helpers shared by the UI code.
package util

import "sync/atomic"

// SafeCounter is a sequence number that is safe to use concurrently. The UI
// stamps each background load with it so that only the newest result is
// applied.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeCounter creates a counter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment increments the counter's value and returns the new value.
func (sc *SafeCounter) Increment() int64 {
	return sc.value.Add(1)
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int64 {
	return sc.value.Load()
}

// IsCurrent reports whether seq is still the latest value.
func (sc *SafeCounter) IsCurrent(seq int64) bool {
	return sc.value.Load() == seq
}

// SafeFlag is a boolean that is safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeBool creates a flag that starts out false.
func NewSafeBool() *SafeFlag {
	return &SafeFlag{}
}

// Set sets the value of the flag and returns the new value.
func (sf *SafeFlag) Set(newValue bool) bool {
	sf.value.Store(newValue)
	return newValue
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}

// Raise sets the flag and reports whether this call was the one that did it.
func (sf *SafeFlag) Raise() bool {
	return sf.value.CompareAndSwap(false, true)
}
