package synth

import "math"

const twoPi = 2 * math.Pi

// Generate produces one period-correct waveform buffer of
// round(duration*sampleRate) samples in [-1, 1]. A duration of zero or less
// yields an empty buffer.
func Generate(wave Waveform, freq, duration float64, sampleRate int) []float64 {
	if duration <= 0 {
		return nil
	}
	n := int(math.Round(duration * float64(sampleRate)))
	buf := make([]float64, n)
	fn := waveFunc(wave)
	for i := range buf {
		buf[i] = fn(freq * float64(i) / float64(sampleRate))
	}
	return buf
}

// waveFunc returns the waveform as a function of cycles elapsed (freq*t).
// Unknown waveforms fall back to sine; callers that care log the fallback.
func waveFunc(wave Waveform) func(float64) float64 {
	switch wave {
	case WaveSquare:
		return func(x float64) float64 {
			s := math.Sin(twoPi * x)
			if s > 0 {
				return 1
			}
			if s < 0 {
				return -1
			}
			return 0
		}
	case WaveSawtooth:
		return sawtooth
	case WaveTriangle:
		return func(x float64) float64 {
			return 2*math.Abs(sawtooth(x)) - 1
		}
	default:
		return func(x float64) float64 {
			return math.Sin(twoPi * x)
		}
	}
}

func sawtooth(x float64) float64 {
	return 2 * (x - math.Floor(x+0.5))
}
