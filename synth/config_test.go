package synth

import "testing"

func TestBlankLayer(t *testing.T) {
	cfg := BlankLayer()
	if cfg.Volume != 0 {
		t.Errorf("blank layer should be silent, volume %v", cfg.Volume)
	}
	if cfg.Harmonics.Enabled {
		t.Error("blank layer should not enable harmonics")
	}
	if want := (ADSR{Sustain: 1}); cfg.Envelope != want {
		t.Errorf("blank layer envelope should be flat: want %+v, got %+v", want, cfg.Envelope)
	}
	if cfg.Frequency != 440 || cfg.Duration != 0.5 {
		t.Errorf("blank layer keeps the default pitch and duration, got %v Hz %vs",
			cfg.Frequency, cfg.Duration)
	}
}

func TestClampedOverlap(t *testing.T) {
	cfg := DefaultLayer()
	cfg.Overlap = 2.5
	if got := cfg.Clamped().Overlap; got != MaxOverlap {
		t.Errorf("overlap should clamp to %v, got %v", MaxOverlap, got)
	}
	cfg.Overlap = -1
	if got := cfg.Clamped().Overlap; got != 0 {
		t.Errorf("negative overlap should clamp to 0, got %v", got)
	}
}
