package synth

import (
	"math"
	"testing"
)

func constant(n int, v float64) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func TestSequentialNoOverlap(t *testing.T) {
	a := constant(22050, 0.2)
	b := constant(11025, 0.3)
	out := MixSequential([][]float64{a, b}, []float64{0, 0}, SampleRate)
	if want, got := 33075, len(out); want != got {
		t.Errorf("wrong length: want %v, got %v", want, got)
	}
}

// Two 0.5s layers with 0.2s overlap make 0.8s of audio.
func TestSequentialOverlapLength(t *testing.T) {
	a := constant(22050, 0.2)
	b := constant(22050, 0.2)
	out := MixSequential([][]float64{a, b}, []float64{0, 0.2}, SampleRate)
	if want, got := 35280, len(out); want != got {
		t.Errorf("wrong length: want %v, got %v", want, got)
	}
}

// The overlap region is a plain sum, not a crossfade. Documents depend on
// that loudness bump, so it stays.
func TestSequentialOverlapSums(t *testing.T) {
	a := constant(8820, 0.2)
	b := constant(8820, 0.3)
	out := MixSequential([][]float64{a, b}, []float64{0, 0.1}, SampleRate)

	overlap := 4410
	if got := out[len(a)-overlap]; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("overlap region should sum to 0.5, got %v", got)
	}
	if got := out[0]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("head should stay at 0.2, got %v", got)
	}
	if got := out[len(out)-1]; math.Abs(got-0.3) > 1e-9 {
		t.Errorf("tail should stay at 0.3, got %v", got)
	}
}

func TestSequentialOverlapClampedToBuffers(t *testing.T) {
	a := constant(100, 0.1)
	b := constant(100, 0.1)
	// A 2s overlap is longer than both buffers; it clamps instead of indexing
	// out of range.
	out := MixSequential([][]float64{a, b}, []float64{0, 2}, SampleRate)
	if want, got := 100, len(out); want != got {
		t.Errorf("want full overlap collapse to %v samples, got %v", want, got)
	}
}

func TestSimultaneousMeanOfIdentical(t *testing.T) {
	layer := Generate(WaveSine, 440, 0.5, SampleRate)
	for i := range layer {
		layer[i] *= 0.3
	}
	single := append([]float64(nil), layer...)
	out := MixSimultaneous([][]float64{layer, append([]float64(nil), layer...)})

	if len(out) != len(single) {
		t.Fatalf("wrong length: want %v, got %v", len(single), len(out))
	}
	for i := range out {
		if math.Abs(out[i]-single[i]) > 1e-9 {
			t.Fatalf("mean of identical layers differs at %d: %v vs %v", i, out[i], single[i])
		}
	}
}

func TestSimultaneousZeroPads(t *testing.T) {
	a := constant(1000, 0.4)
	b := constant(500, 0.4)
	out := MixSimultaneous([][]float64{a, b})
	if want, got := 1000, len(out); want != got {
		t.Fatalf("wrong length: want %v, got %v", want, got)
	}
	if got := out[250]; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("both layers active: want 0.4, got %v", got)
	}
	if got := out[750]; math.Abs(got-0.2) > 1e-9 {
		t.Errorf("padded region averages with silence: want 0.2, got %v", got)
	}
}

func TestNormalizeScalesDownOnly(t *testing.T) {
	loud := constant(100, 1.6)
	out := Normalize(loud)
	if got := peakAbs(out); math.Abs(got-ClipThreshold) > 1e-9 {
		t.Errorf("peak should land on the clip threshold: got %v", got)
	}

	quiet := constant(100, 0.1)
	out = Normalize(quiet)
	if got := peakAbs(out); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("quiet buffers stay quiet: got %v", got)
	}
}
