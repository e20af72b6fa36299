package synth

// ClipThreshold is the peak amplitude the final mix is allowed to reach.
// Anything louder is scaled down to it; quiet mixes are never scaled up.
const ClipThreshold = 0.8

// MixSequential concatenates rendered layers in time. For each layer after
// the first, the first overlaps[i] seconds of its buffer are summed into the
// tail of the running output instead of appended. The overlap region is a
// plain sum, not an equal-power crossfade, so it can get locally louder; the
// final normalization pass is the only mitigation. This matches the tool's
// long-standing behavior and documents are mixed on it.
func MixSequential(layers [][]float64, overlaps []float64, sampleRate int) []float64 {
	var out []float64
	for i, layer := range layers {
		if i == 0 {
			out = append(out, layer...)
			continue
		}
		overlap := 0
		if i < len(overlaps) {
			overlap = int(overlaps[i] * float64(sampleRate))
		}
		if overlap > len(out) {
			overlap = len(out)
		}
		if overlap > len(layer) {
			overlap = len(layer)
		}
		tail := len(out) - overlap
		for j := 0; j < overlap; j++ {
			out[tail+j] += layer[j]
		}
		out = append(out, layer[overlap:]...)
	}
	return Normalize(out)
}

// MixSimultaneous zero-pads all layers to the longest one and takes the
// elementwise mean, so adding layers doesn't make the result louder.
func MixSimultaneous(layers [][]float64) []float64 {
	var max int
	for _, layer := range layers {
		if len(layer) > max {
			max = len(layer)
		}
	}
	if max == 0 || len(layers) == 0 {
		return nil
	}
	out := make([]float64, max)
	for _, layer := range layers {
		for i, s := range layer {
			out[i] += s
		}
	}
	n := float64(len(layers))
	for i := range out {
		out[i] /= n
	}
	return Normalize(out)
}

// Normalize scales buf down so its peak doesn't exceed ClipThreshold. It
// never scales up.
func Normalize(buf []float64) []float64 {
	peak := peakAbs(buf)
	if peak <= ClipThreshold {
		return buf
	}
	scale := ClipThreshold / peak
	for i := range buf {
		buf[i] *= scale
	}
	return buf
}
