package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a frozen clock that only moves when told to
// Safe for concurrent use: the loop reads while tests advance
type MockTimeProvider struct {
	start   time.Time
	elapsed atomic.Int64 // Nanoseconds since start, may go negative
}

// NewMockTimeProvider freezes the clock at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now returns the frozen time
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.elapsed.Load()))
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.elapsed.Store(int64(t.Sub(m.start)))
}

// Advance moves the clock by d, negative d simulates a clock jumping back
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.elapsed.Add(int64(d))
}

// AdvanceFrames moves the clock by n frame intervals at fps
func (m *MockTimeProvider) AdvanceFrames(n, fps int) {
	if fps <= 0 {
		return
	}
	m.Advance(time.Duration(n) * time.Second / time.Duration(fps))
}
