package synth

import (
	"math"
	"testing"
)

func ones(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

func TestEnvelopeLength(t *testing.T) {
	env := DefaultADSR()
	in := Generate(WaveSine, 440, 0.5, SampleRate)
	out := env.Apply(in, SampleRate)
	if len(out) != len(in) {
		t.Errorf("wrong length: want %v, got %v", len(in), len(out))
	}
}

func TestEnvelopeShape(t *testing.T) {
	env := ADSR{Attack: 0.01, Decay: 0.1, Sustain: 0.7, Release: 0.15}
	curve := env.Apply(ones(22050), SampleRate)

	if curve[0] != 0 {
		t.Errorf("attack must start at zero, got %v", curve[0])
	}
	attackEnd := int(env.Attack * SampleRate)
	if got := curve[attackEnd-1]; math.Abs(got-1) > 1e-9 {
		t.Errorf("attack must peak at 1, got %v", got)
	}
	// Middle of the sustain phase holds flat at the sustain level.
	if got := curve[11025]; math.Abs(got-0.7) > 1e-9 {
		t.Errorf("sustain level: want 0.7, got %v", got)
	}
	if got := curve[len(curve)-1]; math.Abs(got) > 1e-9 {
		t.Errorf("release must end at zero, got %v", got)
	}
}

// When attack+decay+release exceed the buffer, the phases scale down to fit:
// the output keeps its length and the curve never rises again after its peak.
func TestEnvelopeOverflow(t *testing.T) {
	env := ADSR{Attack: 0.3, Decay: 0.4, Sustain: 0.5, Release: 0.6}
	const n = 4410 // 0.1s, far less than the 1.3s the envelope asks for
	curve := env.Apply(ones(n), SampleRate)
	if len(curve) != n {
		t.Fatalf("wrong length: want %v, got %v", n, len(curve))
	}

	peak := 0
	for i, v := range curve {
		if v > curve[peak] {
			peak = i
		}
		if v < 0 || v > 1 {
			t.Fatalf("multiplier out of range at %d: %v", i, v)
		}
	}
	for i := peak + 1; i < len(curve); i++ {
		if curve[i] > curve[i-1]+1e-9 {
			t.Fatalf("curve rises after peak at sample %d: %v > %v", i, curve[i], curve[i-1])
		}
	}
	if got := curve[len(curve)-1]; math.Abs(got) > 1e-9 {
		t.Errorf("release must still end at zero, got %v", got)
	}
}

func TestEnvelopeEmptyInput(t *testing.T) {
	if out := DefaultADSR().Apply(nil, SampleRate); len(out) != 0 {
		t.Errorf("want empty output for empty input, got %d samples", len(out))
	}
}

func TestEnvelopeZeroAttackDecaysFromPeak(t *testing.T) {
	env := ADSR{Attack: 0, Decay: 0, Sustain: 0, Release: 0.1}
	curve := env.Apply(ones(4410), SampleRate)
	if got := curve[0]; math.Abs(got-1) > 1e-9 {
		t.Errorf("release with no prior phases starts from 1, got %v", got)
	}
}
