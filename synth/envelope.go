package synth

// Apply shapes samples with the ADSR curve and returns a buffer of the same
// length. Phase lengths are derived from seconds at sampleRate; when
// attack+decay+release would exceed the buffer, all three are scaled down
// proportionally so the sustain phase collapses to zero instead of any phase
// indexing past the end.
func (e ADSR) Apply(samples []float64, sampleRate int) []float64 {
	n := len(samples)
	if n == 0 {
		return nil
	}
	attack := int(e.Attack * float64(sampleRate))
	decay := int(e.Decay * float64(sampleRate))
	release := int(e.Release * float64(sampleRate))

	if total := attack + decay + release; total > n {
		ratio := float64(n) / float64(total)
		attack = int(float64(attack) * ratio)
		decay = int(float64(decay) * ratio)
		release = int(float64(release) * ratio)
	}
	sustain := n - attack - decay - release

	env := make([]float64, n)
	pos := 0
	level := 1.0 // multiplier reached when release starts

	if attack > 0 {
		fillRamp(env[pos:pos+attack], 0, 1)
		pos += attack
	}
	if decay > 0 {
		fillRamp(env[pos:pos+decay], 1, e.Sustain)
		pos += decay
		level = e.Sustain
	}
	if sustain > 0 {
		for i := pos; i < pos+sustain; i++ {
			env[i] = e.Sustain
		}
		pos += sustain
		level = e.Sustain
	}
	if release > 0 {
		fillRamp(env[pos:pos+release], level, 0)
	}

	out := make([]float64, n)
	for i, s := range samples {
		out[i] = s * env[i]
	}
	return out
}

// fillRamp writes a linear ramp from lo to hi inclusive of both endpoints.
func fillRamp(dst []float64, lo, hi float64) {
	n := len(dst)
	if n == 1 {
		dst[0] = lo
		return
	}
	step := (hi - lo) / float64(n-1)
	for i := range dst {
		dst[i] = lo + step*float64(i)
	}
}
