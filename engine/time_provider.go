package engine

import "time"

// TimeProvider is the time source of the frame loop and the brain
// Real runs use MonotonicTimeProvider, tests freeze time with MockTimeProvider
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameDelta measures the time between consecutive frames
// Negative or oversized gaps (suspended terminal, clock jump) are clamped to the limit
type FrameDelta struct {
	provider TimeProvider
	prev     time.Time
	limit    time.Duration
}

// NewFrameDelta starts measuring from the provider's current time
func NewFrameDelta(provider TimeProvider, limit time.Duration) *FrameDelta {
	return &FrameDelta{
		provider: provider,
		prev:     provider.Now(),
		limit:    limit,
	}
}

// Tick returns the time elapsed since the previous call
func (f *FrameDelta) Tick() time.Duration {
	now := f.provider.Now()
	dt := now.Sub(f.prev)
	f.prev = now

	if dt < 0 {
		return 0
	}
	if f.limit > 0 && dt > f.limit {
		return f.limit
	}
	return dt
}
