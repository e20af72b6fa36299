package synth

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Echo repeats below this amplitude are dropped, and no echo produces more
// than maxEchoRepeats of them regardless of feedback.
const (
	echoFloor      = 0.001
	maxEchoRepeats = 8
)

// Tremolo applies amplitude modulation at sub-audio rate. The multiplier
// swings between 1 and 1-depth, so a depth of zero leaves the signal alone.
func Tremolo(samples []float64, rate, depth float64, sampleRate int) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		t := float64(i) / float64(sampleRate)
		out[i] = s * (1 - depth*(1-math.Sin(twoPi*rate*t))/2)
	}
	return out
}

// ApplyEcho adds decaying delayed copies of the input. The output is longer
// than the input: the tail extends by one delay length per audible repeat.
func ApplyEcho(samples []float64, delay, feedback float64, sampleRate int) []float64 {
	delaySamples := int(delay * float64(sampleRate))
	if delaySamples <= 0 || feedback <= 0 {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out
	}
	repeats := 0
	for amp := feedback; amp >= echoFloor && repeats < maxEchoRepeats; amp *= feedback {
		repeats++
	}
	out := make([]float64, len(samples)+repeats*delaySamples)
	copy(out, samples)
	amp := feedback
	for k := 1; k <= repeats; k++ {
		offset := k * delaySamples
		for i, s := range samples {
			out[offset+i] += s * amp
		}
		amp *= feedback
	}
	return out
}

// LowPass removes frequency content above cutoff using FFT bin masking.
func LowPass(samples []float64, cutoff float64, sampleRate int) []float64 {
	return fftFilter(samples, sampleRate, func(f float64) bool {
		return f <= cutoff
	})
}

// HighPass removes frequency content below cutoff.
func HighPass(samples []float64, cutoff float64, sampleRate int) []float64 {
	return fftFilter(samples, sampleRate, func(f float64) bool {
		return f >= cutoff
	})
}

// BandPass keeps only the frequency content between low and high.
func BandPass(samples []float64, low, high float64, sampleRate int) []float64 {
	return fftFilter(samples, sampleRate, func(f float64) bool {
		return f >= low && f <= high
	})
}

// fftFilter zeroes every FFT bin whose frequency fails keep, then transforms
// back. Bins are mirrored around Nyquist so the output stays real.
func fftFilter(samples []float64, sampleRate int, keep func(float64) bool) []float64 {
	n := len(samples)
	if n == 0 {
		return nil
	}
	spectrum := fft.FFTReal(samples)
	for k := range spectrum {
		bin := k
		if bin > n/2 {
			bin = n - bin
		}
		freq := float64(bin) * float64(sampleRate) / float64(n)
		if !keep(freq) {
			spectrum[k] = 0
		}
	}
	inverse := fft.IFFT(spectrum)
	out := make([]float64, n)
	for i := range out {
		out[i] = real(inverse[i])
	}
	return out
}
