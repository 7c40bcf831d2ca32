package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected the 80x24 fallback", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate <= 0 {
		t.Errorf("tick rate = %d, expected a positive rate", cfg.TickRate)
	}
}
