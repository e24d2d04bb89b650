package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayBark()
	if sm.Enabled() {
		t.Error("Expected sound manager disabled before initialization")
	}
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled configuration never touches the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected no error when disabled, got %v", err)
	}
	if sm.Enabled() {
		t.Error("Expected disabled sound manager to stay off")
	}
	sm.PlayBark()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	if !sm.Enabled() {
		t.Error("Expected enabled after initialization")
	}

	sm.PlayBark()
	sm.PlayBark() // Within MinBarkGap, dropped
	sm.Cleanup()

	if sm.Enabled() {
		t.Error("Expected disabled after cleanup")
	}
	sm.PlayBark()
}
