package synth

import (
	"math"
	"reflect"
	"testing"
)

func TestRenderLayerDefaults(t *testing.T) {
	r := NewRenderer(nil)
	cfg := DefaultLayer()
	cfg.Harmonics = Harmonics{}
	buf := r.RenderLayer(cfg)

	if want, got := 22050, len(buf); want != got {
		t.Fatalf("wrong length: want %v, got %v", want, got)
	}
	peak := peakAbs(buf)
	if peak > cfg.Volume+1e-9 {
		t.Errorf("peak %v exceeds volume %v", peak, cfg.Volume)
	}
	if peak < 0.1 {
		t.Errorf("render is unexpectedly quiet, peak %v", peak)
	}
	if buf[0] != 0 {
		t.Errorf("first sample should be silenced by the attack, got %v", buf[0])
	}
	if buf[1] == 0 {
		t.Error("only the first sample should be zero")
	}
}

func TestRenderLayerIdempotent(t *testing.T) {
	r := NewRenderer(nil)
	for _, cfg := range []LayerConfig{
		DefaultLayer(),
		{
			Frequency: 220, Waveform: WaveSawtooth, Duration: 0.3, Volume: 0.5,
			Envelope: DefaultADSR(),
			Advanced: &Advanced{Enabled: true, Technique: TechniqueKarplusStrong},
		},
		{
			Frequency: 300, Waveform: WaveSine, Duration: 0.3, Volume: 0.5,
			Envelope: ADSR{Sustain: 1},
			Advanced: &Advanced{
				Enabled: true, Technique: TechniqueNoise, NoiseColor: NoisePink,
				Filter: NoiseFilter{Enabled: true, Kind: FilterBandPass, Low: 200, High: 4000},
			},
		},
	} {
		a := r.RenderLayer(cfg)
		b := r.RenderLayer(cfg)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("render is not reproducible for %+v", cfg)
		}
	}
}

func TestRenderLayerAmplitudeBound(t *testing.T) {
	r := NewRenderer(nil)
	cfg := DefaultLayer()
	cfg.Volume = 1
	cfg.Harmonics = Harmonics{Enabled: true, Octave: 1, Fifth: 1, SubBass: 1}
	for i, v := range r.RenderLayer(cfg) {
		// Harmonic summing may exceed unity before composition normalizes,
		// but never beyond the summed gains.
		if math.Abs(v) > 4 {
			t.Fatalf("sample %d wildly out of range: %v", i, v)
		}
	}
}

func TestRenderUnknownWaveformFallsBackToSine(t *testing.T) {
	r := NewRenderer(nil)
	cfg := DefaultLayer()
	cfg.Harmonics = Harmonics{}
	want := r.RenderLayer(cfg)

	cfg.Waveform = "wobble"
	got := r.RenderLayer(cfg)
	if !reflect.DeepEqual(want, got) {
		t.Error("unknown waveform should render as sine")
	}
}

func TestRenderUnknownTechniqueFallsBackToOscillator(t *testing.T) {
	r := NewRenderer(nil)
	cfg := DefaultLayer()
	want := r.RenderLayer(cfg)

	cfg.Advanced = DefaultAdvanced()
	cfg.Advanced.Enabled = true
	cfg.Advanced.Technique = "granular"
	got := r.RenderLayer(cfg)
	if !reflect.DeepEqual(want, got) {
		t.Error("unknown technique should render through the oscillator bank")
	}
}

func TestRenderKarplusStrongNeedsNoEnvelope(t *testing.T) {
	r := NewRenderer(nil)
	cfg := LayerConfig{
		Frequency: 220, Waveform: WaveSine, Duration: 1.0, Volume: 0.6,
		Envelope: ADSR{Sustain: 1}, // flat envelope, the string decays itself
		Advanced: &Advanced{Enabled: true, Technique: TechniqueKarplusStrong},
	}
	buf := r.RenderLayer(cfg)
	if want, got := SampleRate, len(buf); want != got {
		t.Fatalf("wrong length: want %v, got %v", want, got)
	}
	if head, tail := rms(buf[:2000]), rms(buf[len(buf)-2000:]); tail >= head/2 {
		t.Errorf("pluck should decay without ADSR: head %v, tail %v", head, tail)
	}
}

func TestRenderEchoExtendsTail(t *testing.T) {
	r := NewRenderer(nil)
	cfg := DefaultLayer()
	cfg.Advanced = DefaultAdvanced()
	cfg.Advanced.Enabled = true
	cfg.Advanced.Echo.Enabled = true
	buf := r.RenderLayer(cfg)
	if len(buf) <= 22050 {
		t.Errorf("echo should extend past %d samples, got %d", 22050, len(buf))
	}
}

func TestRenderClampsOutOfRange(t *testing.T) {
	r := NewRenderer(nil)
	cfg := LayerConfig{Frequency: -5, Waveform: WaveSine, Duration: 100, Volume: 7}
	buf := r.RenderLayer(cfg)
	want := int(math.Round(MaxDuration * SampleRate))
	if len(buf) != want {
		t.Errorf("duration should clamp to %v samples, got %v", want, len(buf))
	}
	if peak := peakAbs(buf); peak > 1+1e-9 {
		t.Errorf("volume should clamp to 1, peak %v", peak)
	}
}
