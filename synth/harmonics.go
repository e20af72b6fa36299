package synth

// Apply additively blends overtone and undertone copies of the fundamental
// into base. Each component uses the same waveform and duration as the base
// and its own gain. The result is deliberately not renormalized: harmonic
// gains control relative loudness directly, and the clip guard at mix/export
// time handles the headroom.
func (h Harmonics) Apply(base []float64, wave Waveform, freq, duration float64, sampleRate int) []float64 {
	if !h.Enabled {
		return base
	}
	out := make([]float64, len(base))
	copy(out, base)

	mix := func(ratio, gain float64) {
		if gain <= 0 {
			return
		}
		part := Generate(wave, freq*ratio, duration, sampleRate)
		for i := range out {
			if i < len(part) {
				out[i] += part[i] * gain
			}
		}
	}
	mix(2.0, h.Octave)
	mix(1.5, h.Fifth)
	mix(0.5, h.SubBass)
	return out
}
