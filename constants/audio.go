package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trades latency against underruns
	AudioBufferDuration = 50 * time.Millisecond

	// MinBarkGap is the minimum time between two barks
	MinBarkGap = 150 * time.Millisecond
)

// Bark Sound Timing
const (
	BarkWoofDuration = 90 * time.Millisecond
	BarkWoofAttack   = 4 * time.Millisecond
	BarkWoofRelease  = 60 * time.Millisecond
	BarkWoofGap      = 70 * time.Millisecond
)

// Bark Sound Pitch
const (
	// BarkBaseFrequency is the pitch of the first woof in Hz
	BarkBaseFrequency = 440.0

	// BarkDropRatio lowers the pitch across a woof
	BarkDropRatio = 0.55

	// BarkNoiseMix is the share of noise layered under the tone
	BarkNoiseMix = 0.35
)
