package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/doggo/constants"
)

// Waveform maps an oscillator phase in [0, 1) to a sample in [-1, 1]
type Waveform func(phase float64) float64

var (
	Sine   Waveform = func(p float64) float64 { return math.Sin(2 * math.Pi * p) }
	Square Waveform = square
	Noise  Waveform = func(float64) float64 { return rand.Float64()*2 - 1 }
)

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

// tone plays a waveform whose pitch slides linearly from one frequency to another
type tone struct {
	wave        Waveform
	from, to    float64 // Hz at the first and last sample
	rate        float64
	phase       float64
	pos, length int
}

// Tone creates a streamer of d playing wave, gliding from one frequency to another
// A constant pitch passes the same frequency twice
func Tone(wave Waveform, from, to float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:   wave,
		from:   from,
		to:     to,
		rate:   float64(rate),
		length: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		v := t.wave(t.phase)
		samples[i] = [2]float64{v, v}

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.length)
		_, t.phase = math.Modf(t.phase + freq/t.rate)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// ramp is a gain curve: linear fade in, hold at 1, linear fade out
type ramp struct {
	in, out, length int
}

func (r ramp) gain(pos int) float64 {
	switch {
	case pos >= r.length:
		return 0
	case pos < r.in:
		return float64(pos) / float64(r.in)
	case pos >= r.length-r.out:
		return float64(r.length-pos) / float64(r.out)
	}
	return 1
}

// shaped multiplies a stream by a ramp and cuts it at the ramp length
type shaped struct {
	src   beep.Streamer
	curve ramp
	pos   int
}

// Shape fades s in over fadeIn and out over fadeOut, ending it after d
func Shape(s beep.Streamer, d, fadeIn, fadeOut time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	return &shaped{
		src: s,
		curve: ramp{
			in:     min(rate.N(fadeIn), n),
			out:    min(rate.N(fadeOut), n),
			length: n,
		},
	}
}

func (s *shaped) Stream(samples [][2]float64) (int, bool) {
	left := s.curve.length - s.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok := s.src.Stream(samples)
	for i := range samples[:n] {
		g := s.curve.gain(s.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		s.pos++
	}
	return n, ok
}

func (s *shaped) Err() error { return s.src.Err() }

// newVolume scales s by a linear gain, effects.Volume works in powers of two
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2, Silent: gain <= 0}
	if !v.Silent {
		v.Volume = math.Log2(gain)
	}
	return v
}

// createWoof generates one bark: a falling square tone over a breath of noise
func createWoof(pitch float64, rate beep.SampleRate) beep.Streamer {
	d := constants.BarkWoofDuration

	voice := Tone(Square, pitch, pitch*constants.BarkDropRatio, d, rate)
	breath := Tone(Noise, 0, 0, d, rate)

	return beep.Mix(
		newVolume(Shape(voice, d, constants.BarkWoofAttack, constants.BarkWoofRelease, rate), 1-constants.BarkNoiseMix),
		newVolume(Shape(breath, d, constants.BarkWoofAttack, constants.BarkWoofRelease, rate), constants.BarkNoiseMix),
	)
}

// CreateBarkSound generates the two-woof bark, the second slightly lower
func CreateBarkSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	bark := beep.Seq(
		createWoof(constants.BarkBaseFrequency, rate),
		beep.Silence(rate.N(constants.BarkWoofGap)),
		createWoof(constants.BarkBaseFrequency*0.85, rate),
	)

	// Square waves are loud, keep headroom
	return newVolume(bark, 0.5*clampVolume(cfg.Volume))
}

// BarkLength returns the number of samples CreateBarkSound produces at rate
func BarkLength(rate beep.SampleRate) int {
	return 2*rate.N(constants.BarkWoofDuration) + rate.N(constants.BarkWoofGap)
}
