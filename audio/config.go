package audio

import "github.com/lixenwraith/doggo/constants"

// AudioConfig holds the playback settings
type AudioConfig struct {
	Enabled    bool
	Volume     float64 // Master volume in [0, 1]
	SampleRate int
}

// DefaultAudioConfig returns audio enabled at a moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:    true,
		Volume:     0.6,
		SampleRate: constants.AudioSampleRate,
	}
}

// clampVolume keeps v in [0, 1]
func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
