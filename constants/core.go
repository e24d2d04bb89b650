package constants

import "time"

// Frame Loop Timing
const (
	// DefaultFPS is the frame rate when the configuration leaves it unset
	DefaultFPS = 30

	// MaxFPS caps the configured frame rate
	MaxFPS = 120

	// MaxFrameDelta caps a single update step after a stall (suspend, debugger)
	MaxFrameDelta = 250 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the frame loop
	EventChannelSize = 64
)

// Behavior Defaults
const (
	// DefaultSpeed is the walking pace in cells per second for states that omit it
	DefaultSpeed = 6.0

	// DefaultAnimationInterval is the time between frames for states that omit it
	DefaultAnimationInterval = 100 * time.Millisecond
)

// FrameInterval returns the ticker period for fps, falling back to DefaultFPS
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}
