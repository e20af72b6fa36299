package synth

import (
	"bytes"
	"fmt"
	"io"
	"math"

	wav "github.com/youpy/go-wav"
)

const (
	pcmBitDepth = 16
	pcmScale    = 1<<(pcmBitDepth-1) - 1 // 32767
)

// Encode writes samples as a single-channel 16-bit PCM WAV stream. Samples
// are clamped to [-1, 1] before scaling to the integer range.
func Encode(w io.Writer, samples []float64, sampleRate int) error {
	writer := wav.NewWriter(w, uint32(len(samples)), 1, uint32(sampleRate), pcmBitDepth)
	out := make([]wav.Sample, len(samples))
	for i, s := range samples {
		v := int(math.Round(clamp(s, -1, 1) * pcmScale))
		out[i].Values[0] = v
	}
	if err := writer.WriteSamples(out); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}

// EncodeBytes is Encode into a fresh byte slice.
func EncodeBytes(samples []float64, sampleRate int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, samples, sampleRate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a WAV stream produced by Encode back into float samples and
// its sample rate. Multi-channel input is collapsed to channel zero. The
// stream is buffered in full first: the wav reader needs random access.
func Decode(r io.Reader) ([]float64, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read stream: %w", err)
	}
	reader := wav.NewReader(bytes.NewReader(data))
	format, err := reader.Format()
	if err != nil {
		return nil, 0, fmt.Errorf("read format: %w", err)
	}
	var samples []float64
	for {
		chunk, err := reader.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read samples: %w", err)
		}
		for _, s := range chunk {
			samples = append(samples, float64(s.Values[0])/pcmScale)
		}
	}
	return samples, int(format.SampleRate), nil
}
