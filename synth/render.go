package synth

import (
	"go.uber.org/zap"
)

// Renderer turns layer configurations into sample buffers. It has no state
// besides its logger: every render allocates fresh buffers, so identical
// configs give identical output and nothing is cached across edits.
type Renderer struct {
	SampleRate int
	log        *zap.Logger
}

func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{SampleRate: SampleRate, log: log}
}

// RenderLayer runs the full pipeline for a single layer: base generation
// (oscillator bank or advanced technique), harmonic mixing, envelope,
// effects, then volume. The buffer length equals round(duration*sampleRate)
// until an echo effect extends the tail.
func (r *Renderer) RenderLayer(cfg LayerConfig) []float64 {
	cfg = cfg.Clamped()

	// An empty value means the document predates the field; only a present
	// but unrecognized value is worth a warning.
	wave, ok := ParseWaveform(string(cfg.Waveform))
	if !ok && cfg.Waveform != "" {
		r.log.Warn("unknown waveform, falling back to sine",
			zap.String("wave_type", string(cfg.Waveform)))
	}

	var buf []float64
	if cfg.Advanced != nil && cfg.Advanced.Enabled {
		buf = r.renderAdvanced(cfg, wave)
	} else {
		buf = Generate(wave, cfg.Frequency, cfg.Duration, r.SampleRate)
	}

	buf = cfg.Harmonics.Apply(buf, wave, cfg.Frequency, cfg.Duration, r.SampleRate)
	buf = cfg.Envelope.Apply(buf, r.SampleRate)

	if adv := cfg.Advanced; adv != nil && adv.Enabled {
		if adv.LFO.Enabled {
			buf = Tremolo(buf, adv.LFO.Rate, adv.LFO.Depth, r.SampleRate)
		}
		if adv.Echo.Enabled {
			buf = ApplyEcho(buf, adv.Echo.Delay, adv.Echo.Feedback, r.SampleRate)
		}
	}

	for i := range buf {
		buf[i] *= cfg.Volume
	}
	return buf
}

func (r *Renderer) renderAdvanced(cfg LayerConfig, wave Waveform) []float64 {
	adv := cfg.Advanced
	technique, ok := ParseTechnique(string(adv.Technique))
	if !ok && adv.Technique != "" {
		r.log.Warn("unknown synthesis technique, falling back to oscillator",
			zap.String("synthesis_type", string(adv.Technique)))
		return Generate(wave, cfg.Frequency, cfg.Duration, r.SampleRate)
	}

	switch technique {
	case TechniqueNoise:
		return r.renderNoise(cfg)
	case TechniqueKarplusStrong:
		return KarplusStrong(cfg.Frequency, cfg.Duration, r.SampleRate)
	default:
		return FM(cfg.Frequency, adv.FMRatio, adv.FMIndex, cfg.Duration, r.SampleRate)
	}
}

func (r *Renderer) renderNoise(cfg LayerConfig) []float64 {
	adv := cfg.Advanced
	color, ok := ParseNoiseColor(string(adv.NoiseColor))
	if !ok && adv.NoiseColor != "" {
		r.log.Warn("unknown noise color, falling back to white",
			zap.String("noise_type", string(adv.NoiseColor)))
	}

	var buf []float64
	switch color {
	case NoisePink:
		buf = PinkNoise(cfg.Duration, r.SampleRate)
	case NoiseBrown:
		buf = BrownNoise(cfg.Duration, r.SampleRate)
	default:
		buf = WhiteNoise(cfg.Duration, r.SampleRate)
	}

	if !adv.Filter.Enabled {
		return buf
	}
	kind, ok := ParseFilterKind(string(adv.Filter.Kind))
	if !ok && adv.Filter.Kind != "" {
		r.log.Warn("unknown filter kind, falling back to bandpass",
			zap.String("kind", string(adv.Filter.Kind)))
	}
	switch kind {
	case FilterLowPass:
		return LowPass(buf, adv.Filter.High, r.SampleRate)
	case FilterHighPass:
		return HighPass(buf, adv.Filter.Low, r.SampleRate)
	default:
		return BandPass(buf, adv.Filter.Low, adv.Filter.High, r.SampleRate)
	}
}
