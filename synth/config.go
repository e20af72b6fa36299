package synth

// SampleRate is the fixed output rate for all rendering and export.
const SampleRate = 44100

type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
	WaveTriangle Waveform = "triangle"
)

// ParseWaveform reports whether s names a supported waveform. Callers fall
// back to sine when it doesn't.
func ParseWaveform(s string) (Waveform, bool) {
	switch Waveform(s) {
	case WaveSine, WaveSquare, WaveSawtooth, WaveTriangle:
		return Waveform(s), true
	}
	return WaveSine, false
}

type Technique string

const (
	TechniqueFM            Technique = "fm"
	TechniqueNoise         Technique = "noise"
	TechniqueKarplusStrong Technique = "karplus-strong"
)

func ParseTechnique(s string) (Technique, bool) {
	switch Technique(s) {
	case TechniqueFM, TechniqueNoise, TechniqueKarplusStrong:
		return Technique(s), true
	}
	return TechniqueFM, false
}

type NoiseColor string

const (
	NoiseWhite NoiseColor = "white"
	NoisePink  NoiseColor = "pink"
	NoiseBrown NoiseColor = "brown"
)

func ParseNoiseColor(s string) (NoiseColor, bool) {
	switch NoiseColor(s) {
	case NoiseWhite, NoisePink, NoiseBrown:
		return NoiseColor(s), true
	}
	return NoiseWhite, false
}

type FilterKind string

const (
	FilterLowPass  FilterKind = "lowpass"
	FilterHighPass FilterKind = "highpass"
	FilterBandPass FilterKind = "bandpass"
)

func ParseFilterKind(s string) (FilterKind, bool) {
	switch FilterKind(s) {
	case FilterLowPass, FilterHighPass, FilterBandPass:
		return FilterKind(s), true
	}
	return FilterBandPass, false
}

// ADSR is a four phase amplitude envelope. Attack, Decay and Release are in
// seconds, Sustain is a level in 0-1.
type ADSR struct {
	Attack  float64 `json:"attack"`
	Decay   float64 `json:"decay"`
	Sustain float64 `json:"sustain"`
	Release float64 `json:"release"`
}

// Harmonics describes additive overtone/undertone components relative to the
// fundamental: octave at 2x, fifth at 1.5x, sub-bass at 0.5x.
type Harmonics struct {
	Enabled bool    `json:"enabled"`
	Octave  float64 `json:"octave"`
	Fifth   float64 `json:"fifth"`
	SubBass float64 `json:"sub_bass"`
}

type NoiseFilter struct {
	Enabled bool       `json:"enabled"`
	Kind    FilterKind `json:"kind"`
	Low     float64    `json:"low"`
	High    float64    `json:"high"`
}

type LFO struct {
	Enabled bool    `json:"enabled"`
	Rate    float64 `json:"rate"`  // Hz
	Depth   float64 `json:"depth"` // 0-1
}

type Echo struct {
	Enabled  bool    `json:"enabled"`
	Delay    float64 `json:"delay"`    // seconds
	Feedback float64 `json:"feedback"` // 0-1
}

// Advanced selects an alternate base generator and optional effects for a
// layer. A nil *Advanced on LayerConfig means disabled; older documents
// without the advanced key decode to that.
type Advanced struct {
	Enabled    bool        `json:"enabled"`
	Technique  Technique   `json:"synthesis_type"`
	FMRatio    float64     `json:"fm_mod_ratio"`
	FMIndex    float64     `json:"fm_mod_index"`
	NoiseColor NoiseColor  `json:"noise_type"`
	Filter     NoiseFilter `json:"filter"`
	LFO        LFO         `json:"lfo"`
	Echo       Echo        `json:"echo"`
}

// LayerConfig is the complete description of one sound layer. It is input
// only: rendering never mutates it.
type LayerConfig struct {
	Frequency float64   `json:"frequency"`
	Waveform  Waveform  `json:"wave_type"`
	Duration  float64   `json:"duration"`
	Volume    float64   `json:"volume"`
	Overlap   float64   `json:"overlap"` // seconds, sequential mode only
	Envelope  ADSR      `json:"adsr"`
	Harmonics Harmonics `json:"harmonics"`
	Advanced  *Advanced `json:"advanced,omitempty"`
}

func DefaultADSR() ADSR {
	return ADSR{Attack: 0.01, Decay: 0.1, Sustain: 0.7, Release: 0.15}
}

func DefaultAdvanced() *Advanced {
	return &Advanced{
		Technique:  TechniqueFM,
		FMRatio:    1.4,
		FMIndex:    5.0,
		NoiseColor: NoiseWhite,
		Filter:     NoiseFilter{Kind: FilterBandPass, Low: 2000, High: 8000},
		LFO:        LFO{Rate: 5.0, Depth: 0.3},
		Echo:       Echo{Delay: 0.3, Feedback: 0.4},
	}
}

// DefaultLayer returns the configuration new layers start from.
func DefaultLayer() LayerConfig {
	return LayerConfig{
		Frequency: 440,
		Waveform:  WaveSine,
		Duration:  0.5,
		Volume:    0.3,
		Envelope:  DefaultADSR(),
		Harmonics: Harmonics{Enabled: true, Octave: 0.3, Fifth: 0.2},
	}
}

// BlankLayer is a silent starting point for building a sound from scratch:
// zero volume, no harmonics and a flat full-sustain envelope.
func BlankLayer() LayerConfig {
	cfg := DefaultLayer()
	cfg.Volume = 0
	cfg.Harmonics = Harmonics{}
	cfg.Envelope = ADSR{Sustain: 1}
	return cfg
}

// Parameter bounds. Out of range values are clamped, never rejected: sound
// generation must not block on minor input mistakes.
const (
	MinFrequency = 20.0
	MaxFrequency = 2000.0
	MinDuration  = 0.1
	MaxDuration  = 3.0
	MaxOverlap   = 2.0
	MinCutoff    = 20.0
	MaxCutoff    = 20000.0
	MinFMRatio   = 0.1
	MaxFMRatio   = 10.0
	MaxFMIndex   = 20.0
	MinLFORate   = 0.1
	MaxLFORate   = 20.0
	MaxEchoDelay = 2.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamped returns a copy of the config with every numeric parameter forced
// into its valid range.
func (c LayerConfig) Clamped() LayerConfig {
	c.Frequency = clamp(c.Frequency, MinFrequency, MaxFrequency)
	c.Duration = clamp(c.Duration, MinDuration, MaxDuration)
	c.Volume = clamp(c.Volume, 0, 1)
	c.Overlap = clamp(c.Overlap, 0, MaxOverlap)
	c.Envelope = c.Envelope.clamped()
	c.Harmonics.Octave = clamp(c.Harmonics.Octave, 0, 1)
	c.Harmonics.Fifth = clamp(c.Harmonics.Fifth, 0, 1)
	c.Harmonics.SubBass = clamp(c.Harmonics.SubBass, 0, 1)
	if c.Advanced != nil {
		adv := c.Advanced.clamped()
		c.Advanced = &adv
	}
	return c
}

func (e ADSR) clamped() ADSR {
	e.Attack = clamp(e.Attack, 0, 1)
	e.Decay = clamp(e.Decay, 0, 1)
	e.Sustain = clamp(e.Sustain, 0, 1)
	e.Release = clamp(e.Release, 0, 1)
	return e
}

func (a Advanced) clamped() Advanced {
	a.FMRatio = clamp(a.FMRatio, MinFMRatio, MaxFMRatio)
	a.FMIndex = clamp(a.FMIndex, 0, MaxFMIndex)
	a.Filter.Low = clamp(a.Filter.Low, MinCutoff, MaxCutoff)
	a.Filter.High = clamp(a.Filter.High, MinCutoff, MaxCutoff)
	if a.Filter.High < a.Filter.Low {
		a.Filter.Low, a.Filter.High = a.Filter.High, a.Filter.Low
	}
	a.LFO.Rate = clamp(a.LFO.Rate, MinLFORate, MaxLFORate)
	a.LFO.Depth = clamp(a.LFO.Depth, 0, 1)
	a.Echo.Delay = clamp(a.Echo.Delay, 0, MaxEchoDelay)
	a.Echo.Feedback = clamp(a.Echo.Feedback, 0, 1)
	return a
}
