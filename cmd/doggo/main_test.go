package main

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/doggo/brain"
	"github.com/lixenwraith/doggo/config"
	"github.com/lixenwraith/doggo/dog"
	"github.com/lixenwraith/doggo/engine"
	"github.com/lixenwraith/doggo/landscape"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()

	*biomeFlag, *fpsFlag, *muteFlag = "snow", 12, true
	defer func() { *biomeFlag, *fpsFlag, *muteFlag = "", 0, false }()

	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags failed: %v", err)
	}
	if cfg.World.Biome != "snow" || cfg.World.FPS != 12 || cfg.Audio.Enabled {
		t.Errorf("Flags not applied: %+v %+v", cfg.World, cfg.Audio)
	}
}

func TestApplyFlagsRejectsBadFPS(t *testing.T) {
	cfg := config.Default()

	*fpsFlag = 1000
	defer func() { *fpsFlag = 0 }()

	if err := applyFlags(cfg); err == nil {
		t.Error("Expected error for fps above the limit")
	}
}

func TestPickers(t *testing.T) {
	rng := brain.NewRandom(3)

	if f, err := pickFur("grey", rng); err != nil || f != dog.Grey {
		t.Errorf("Expected grey fur, got %v, %v", f, err)
	}
	if _, err := pickFur("plaid", rng); err == nil {
		t.Error("Expected error for unknown fur")
	}
	if b, err := pickBiome("desert", rng); err != nil || b != landscape.Desert {
		t.Errorf("Expected desert, got %v, %v", b, err)
	}
	if _, err := pickBiome("moon", rng); err == nil {
		t.Error("Expected error for unknown biome")
	}
}

func TestLoadSheetBuiltIn(t *testing.T) {
	sheet, err := loadSheet(config.Default().Sprite, dog.Orange)
	if err != nil {
		t.Fatalf("loadSheet failed: %v", err)
	}
	if sheet.FrameWidth != 10 || sheet.FrameHeight != 4 {
		t.Errorf("Expected 10x4 frames, got %dx%d", sheet.FrameWidth, sheet.FrameHeight)
	}
}

func TestLoadSheetMissingPNG(t *testing.T) {
	s := config.Default().Sprite
	s.Sheet = "does-not-exist.png"
	if _, err := loadSheet(s, dog.Orange); err == nil {
		t.Error("Expected error for a missing sheet")
	}
}

func TestFailExitCode(t *testing.T) {
	err := &brain.ConfigError{Reason: "bad"}
	if code := fail(exitConfig, err); code != exitConfig {
		t.Errorf("Expected exit code %d, got %d", exitConfig, code)
	}
	if code := fail(exitFailed, errors.New("boom")); code != exitFailed {
		t.Errorf("Expected exit code %d, got %d", exitFailed, code)
	}
}

func TestRecoverRunReturnsExitCode(t *testing.T) {
	panicking := func() (code int) {
		defer recoverRun(&code)
		panic("bad wiring")
	}
	if code := panicking(); code != exitFailed {
		t.Errorf("Expected exit code %d after a panic, got %d", exitFailed, code)
	}

	clean := func() (code int) {
		defer recoverRun(&code)
		return exitOK
	}
	if code := clean(); code != exitOK {
		t.Errorf("Expected exit code %d without a panic, got %d", exitOK, code)
	}
}

func TestNewBrainUsesSharedClock(t *testing.T) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	b, err := newBrain(config.Default(), brain.NewRandom(5), clock)
	if err != nil {
		t.Fatalf("newBrain failed: %v", err)
	}

	if b.Update() {
		t.Fatal("Expected no transition while the clock is frozen")
	}
	remaining := b.Remaining()
	clock.Advance(remaining)
	if b.Remaining() != 0 {
		t.Errorf("Expected the brain to follow the shared clock, %v left", b.Remaining())
	}
	if !b.Update() {
		t.Error("Expected a transition once the shared clock passes the duration")
	}
}
