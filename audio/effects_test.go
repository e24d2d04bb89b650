package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	total := 0
	peak := 0.0
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = max(peak, buf[j][0], -buf[j][0])
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer did not end")
	return 0, 0
}

func TestToneSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := Tone(Sine, 440, 440, 100*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples, got %d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected identical channels", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// A glide stops after its duration and a square wave stays at full scale
func TestToneDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := Tone(Square, 400, 200, 50*time.Millisecond, rate)

	total, peak := drain(t, osc)
	if total != rate.N(50*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(50*time.Millisecond), total)
	}
	if peak != 1.0 {
		t.Errorf("Expected square wave at full scale, got peak %f", peak)
	}
}

func TestShapeRamp(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := Tone(Square, 0, 0, time.Second, rate) // phase stays at 0: constant +1
	env := Shape(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 150)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected the shape to cut the stream at 100 samples, got %d", n)
	}
	if _, ok := env.Stream(samples); ok {
		t.Error("Expected the shaped stream to be drained")
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade, got %f then %f", samples[90][0], samples[99][0])
	}
}

func TestRampGain(t *testing.T) {
	r := ramp{in: 4, out: 2, length: 10}
	tests := []struct {
		pos  int
		want float64
	}{
		{0, 0},
		{2, 0.5},
		{4, 1},
		{7, 1},
		{8, 1},
		{9, 0.5},
		{10, 0},
	}
	for _, tt := range tests {
		if got := r.gain(tt.pos); got != tt.want {
			t.Errorf("gain(%d): expected %v, got %v", tt.pos, tt.want, got)
		}
	}
}

// TestBarkSound verifies the bark length and that volume scales the output
func TestBarkSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Volume = 1

	total, loud := drain(t, CreateBarkSound(cfg))
	if want := BarkLength(beep.SampleRate(cfg.SampleRate)); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if loud <= 0 || loud > 1 {
		t.Errorf("Expected audible bark within range, got peak %f", loud)
	}

	cfg.Volume = 0
	_, silent := drain(t, CreateBarkSound(cfg))
	if silent != 0 {
		t.Errorf("Expected silence at volume 0, got peak %f", silent)
	}
}
