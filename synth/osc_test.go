package synth

import (
	"math"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		buf := Generate(wave, 440, 0.5, SampleRate)
		if want, got := 22050, len(buf); want != got {
			t.Errorf("%s: wrong length: want %v, got %v", wave, want, got)
		}
	}
}

func TestGenerateRange(t *testing.T) {
	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		for i, v := range Generate(wave, 523.25, 0.25, SampleRate) {
			if math.Abs(v) > 1 {
				t.Fatalf("%s: sample %d out of range: %v", wave, i, v)
			}
		}
	}
}

// At 441 Hz the period is exactly 100 samples, so every waveform must repeat
// itself one period later. Samples landing exactly on a crossing or a
// discontinuity (every 50 samples at this frequency) are skipped: the sign
// of a rounded-to-zero sine is not stable there.
func TestGeneratePeriodicity(t *testing.T) {
	const period = 100
	for _, wave := range []Waveform{WaveSine, WaveSquare, WaveSawtooth, WaveTriangle} {
		buf := Generate(wave, 441, 0.1, SampleRate)
		for i := 0; i < len(buf)-period; i++ {
			if i%50 == 0 {
				continue
			}
			if diff := math.Abs(buf[i] - buf[i+period]); diff > 1e-6 {
				t.Fatalf("%s: sample %d differs from one period later by %v", wave, i, diff)
			}
		}
	}
}

func TestGenerateZeroCrossingSpacing(t *testing.T) {
	const freq = 441
	buf := Generate(WaveSine, freq, 0.1, SampleRate)

	var crossings []int
	for i := 1; i < len(buf); i++ {
		if buf[i-1] < 0 && buf[i] >= 0 {
			crossings = append(crossings, i)
		}
	}
	if len(crossings) < 2 {
		t.Fatal("expected multiple upward zero crossings")
	}
	want := float64(SampleRate) / freq
	for i := 1; i < len(crossings); i++ {
		got := float64(crossings[i] - crossings[i-1])
		if math.Abs(got-want) > 1 {
			t.Fatalf("zero crossing spacing %v, want %v within one sample", got, want)
		}
	}
}

func TestGenerateEmptyDuration(t *testing.T) {
	if buf := Generate(WaveSine, 440, 0, SampleRate); len(buf) != 0 {
		t.Errorf("zero duration: want empty buffer, got %d samples", len(buf))
	}
	if buf := Generate(WaveSine, 440, -1, SampleRate); len(buf) != 0 {
		t.Errorf("negative duration: want empty buffer, got %d samples", len(buf))
	}
}

func TestParseWaveform(t *testing.T) {
	if wave, ok := ParseWaveform("square"); !ok || wave != WaveSquare {
		t.Errorf("square should parse, got %v %v", wave, ok)
	}
	if wave, ok := ParseWaveform("wobble"); ok || wave != WaveSine {
		t.Errorf("unknown waveform should fall back to sine, got %v %v", wave, ok)
	}
}
