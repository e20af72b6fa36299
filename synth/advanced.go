package synth

import (
	"math"
	"math/rand"
)

// Renders are deterministic: every noise burst comes from a PRNG with this
// seed, so identical configs produce bit-identical buffers.
const noiseSeed = 2112

// stringDamping is the per-sample energy loss in the Karplus-Strong feedback
// loop. Values closer to 1 ring longer.
const stringDamping = 0.996

func numSamples(duration float64, sampleRate int) int {
	if duration <= 0 {
		return 0
	}
	return int(math.Round(duration * float64(sampleRate)))
}

// FM generates frequency modulation synthesis: a sine carrier whose phase is
// modulated by a second sine at ratio times the carrier frequency.
func FM(carrierFreq, ratio, index, duration float64, sampleRate int) []float64 {
	carrierFreq = clamp(carrierFreq, MinFrequency, math.MaxFloat64)
	n := numSamples(duration, sampleRate)
	buf := make([]float64, n)
	modFreq := carrierFreq * ratio
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		buf[i] = math.Sin(twoPi*carrierFreq*t + index*math.Sin(twoPi*modFreq*t))
	}
	return buf
}

// WhiteNoise generates uniformly distributed noise in [-1, 1].
func WhiteNoise(duration float64, sampleRate int) []float64 {
	rng := rand.New(rand.NewSource(noiseSeed))
	buf := make([]float64, numSamples(duration, sampleRate))
	for i := range buf {
		buf[i] = rng.Float64()*2 - 1
	}
	return buf
}

// Pink noise filter coefficients, a third order 1/f approximation applied to
// white noise.
var (
	pinkB = [4]float64{0.049922035, -0.095993537, 0.050612699, -0.004408786}
	pinkA = [4]float64{1, -2.494956002, 2.017265875, -0.522189400}
)

// PinkNoise generates 1/f noise: white noise shaped by a cascade of first
// order filters, normalized to peak 1.
func PinkNoise(duration float64, sampleRate int) []float64 {
	white := WhiteNoise(duration, sampleRate)
	pink := make([]float64, len(white))
	for i := 3; i < len(white); i++ {
		pink[i] = pinkB[0]*white[i] + pinkB[1]*white[i-1] +
			pinkB[2]*white[i-2] + pinkB[3]*white[i-3] -
			pinkA[1]*pink[i-1] - pinkA[2]*pink[i-2] - pinkA[3]*pink[i-3]
	}
	normalizePeak(pink)
	return pink
}

// BrownNoise generates brownian noise by integrating white noise, with the
// DC drift removed and the result normalized to peak 1.
func BrownNoise(duration float64, sampleRate int) []float64 {
	white := WhiteNoise(duration, sampleRate)
	brown := make([]float64, len(white))
	var sum, mean float64
	for i, w := range white {
		sum += w
		brown[i] = sum
	}
	if len(brown) > 0 {
		for _, v := range brown {
			mean += v
		}
		mean /= float64(len(brown))
		for i := range brown {
			brown[i] -= mean
		}
	}
	normalizePeak(brown)
	return brown
}

// normalizePeak scales buf in place so its peak magnitude is 1. Silent
// buffers are left untouched.
func normalizePeak(buf []float64) {
	peak := peakAbs(buf)
	if peak <= 0 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}

func peakAbs(buf []float64) float64 {
	var peak float64
	for _, v := range buf {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// RingModulate multiplies two signals elementwise, producing the metallic
// sum-and-difference spectrum. The result is as long as the shorter input.
func RingModulate(carrier, modulator []float64) []float64 {
	n := len(carrier)
	if len(modulator) < n {
		n = len(modulator)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = carrier[i] * modulator[i]
	}
	return out
}

// PWM produces a pulse wave whose duty cycle is swept by a low frequency
// oscillator around duty, bridging between square and narrow pulse shapes.
func PWM(freq, duration, duty, sweepRate float64, sampleRate int) []float64 {
	freq = clamp(freq, MinFrequency, math.MaxFloat64)
	n := numSamples(duration, sampleRate)
	buf := make([]float64, n)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		d := clamp(duty+0.25*math.Sin(twoPi*sweepRate*t), 0.05, 0.95)
		phase := math.Mod(t*freq, 1.0)
		if phase < d {
			buf[i] = 1
		} else {
			buf[i] = -1
		}
	}
	return buf
}

// KarplusStrong synthesizes a plucked string: a delay line the length of one
// period is filled with a noise burst, then each output sample is fed back
// through an averaging lowpass. The feedback loop decays the sound naturally,
// no envelope needed. Frequencies below the audible floor are clamped rather
// than rejected.
func KarplusStrong(freq, duration float64, sampleRate int) []float64 {
	freq = clamp(freq, MinFrequency, math.MaxFloat64)
	n := numSamples(duration, sampleRate)
	if n == 0 {
		return nil
	}
	period := int(float64(sampleRate) / freq)
	if period < 2 {
		period = 2
	}

	rng := rand.New(rand.NewSource(noiseSeed))
	line := make([]float64, period)
	for i := range line {
		line[i] = rng.Float64()*2 - 1
	}

	out := make([]float64, n)
	head := 0
	for i := range out {
		out[i] = line[head]
		next := (head + 1) % period
		line[head] = stringDamping * 0.5 * (line[head] + line[next])
		head = next
	}
	return out
}
