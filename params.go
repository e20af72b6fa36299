package main

import (
	"fmt"
	"strconv"

	"github.com/kellylford/SoundDesignStudio/synth"
)

// layerParams maps prompt parameter names to validated setters. Values out
// of range are rejected here with a message; the renderer additionally
// clamps whatever reaches it.
type layerParam struct {
	name string
	help string
	set  func(cfg *synth.LayerConfig, value string) error
}

func setLayerParam(cfg *synth.LayerConfig, name, value string) error {
	for _, p := range layerParams {
		if p.name == name {
			if err := p.set(cfg, value); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown parameter %s (try params)", name)
}

var layerParams = []layerParam{
	{"freq", "frequency in Hz (20-2000)",
		floatParam(synth.MinFrequency, synth.MaxFrequency, func(c *synth.LayerConfig, v float64) { c.Frequency = v })},
	{"wave", "waveform: sine, square, sawtooth, triangle",
		func(c *synth.LayerConfig, v string) error {
			wave, ok := synth.ParseWaveform(v)
			if !ok {
				return fmt.Errorf("not a valid waveform: %v", v)
			}
			c.Waveform = wave
			return nil
		}},
	{"dur", "duration in seconds (0.1-3.0)",
		floatParam(synth.MinDuration, synth.MaxDuration, func(c *synth.LayerConfig, v float64) { c.Duration = v })},
	{"vol", "volume (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Volume = v })},
	{"overlap", "overlap with the previous layer in seconds (0-2), sequential mode",
		floatParam(0, synth.MaxOverlap, func(c *synth.LayerConfig, v float64) { c.Overlap = v })},

	{"attack", "envelope attack in seconds (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Envelope.Attack = v })},
	{"decay", "envelope decay in seconds (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Envelope.Decay = v })},
	{"sustain", "envelope sustain level (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Envelope.Sustain = v })},
	{"release", "envelope release in seconds (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Envelope.Release = v })},

	{"harm", "harmonics on|off",
		boolParam(func(c *synth.LayerConfig, v bool) { c.Harmonics.Enabled = v })},
	{"harm.octave", "octave gain (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Harmonics.Octave = v })},
	{"harm.fifth", "fifth gain (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Harmonics.Fifth = v })},
	{"harm.sub", "sub-bass gain (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { c.Harmonics.SubBass = v })},

	{"adv", "advanced synthesis on|off",
		boolParam(func(c *synth.LayerConfig, v bool) { advanced(c).Enabled = v })},
	{"adv.type", "technique: fm, noise, karplus-strong",
		func(c *synth.LayerConfig, v string) error {
			technique, ok := synth.ParseTechnique(v)
			if !ok {
				return fmt.Errorf("not a valid technique: %v", v)
			}
			advanced(c).Technique = technique
			return nil
		}},
	{"fm.ratio", "modulator/carrier frequency ratio (0.1-10)",
		floatParam(synth.MinFMRatio, synth.MaxFMRatio, func(c *synth.LayerConfig, v float64) { advanced(c).FMRatio = v })},
	{"fm.index", "modulation index (0-20)",
		floatParam(0, synth.MaxFMIndex, func(c *synth.LayerConfig, v float64) { advanced(c).FMIndex = v })},
	{"noise.color", "noise color: white, pink, brown",
		func(c *synth.LayerConfig, v string) error {
			color, ok := synth.ParseNoiseColor(v)
			if !ok {
				return fmt.Errorf("not a valid noise color: %v", v)
			}
			advanced(c).NoiseColor = color
			return nil
		}},
	{"filter", "noise filter on|off",
		boolParam(func(c *synth.LayerConfig, v bool) { advanced(c).Filter.Enabled = v })},
	{"filter.kind", "filter kind: lowpass, highpass, bandpass",
		func(c *synth.LayerConfig, v string) error {
			kind, ok := synth.ParseFilterKind(v)
			if !ok {
				return fmt.Errorf("not a valid filter kind: %v", v)
			}
			advanced(c).Filter.Kind = kind
			return nil
		}},
	{"filter.low", "low cutoff in Hz (20-20000)",
		floatParam(synth.MinCutoff, synth.MaxCutoff, func(c *synth.LayerConfig, v float64) { advanced(c).Filter.Low = v })},
	{"filter.high", "high cutoff in Hz (20-20000)",
		floatParam(synth.MinCutoff, synth.MaxCutoff, func(c *synth.LayerConfig, v float64) { advanced(c).Filter.High = v })},

	{"lfo", "tremolo on|off",
		boolParam(func(c *synth.LayerConfig, v bool) { advanced(c).LFO.Enabled = v })},
	{"lfo.rate", "tremolo rate in Hz (0.1-20)",
		floatParam(synth.MinLFORate, synth.MaxLFORate, func(c *synth.LayerConfig, v float64) { advanced(c).LFO.Rate = v })},
	{"lfo.depth", "tremolo depth (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { advanced(c).LFO.Depth = v })},
	{"echo", "echo on|off",
		boolParam(func(c *synth.LayerConfig, v bool) { advanced(c).Echo.Enabled = v })},
	{"echo.delay", "echo delay in seconds (0-2)",
		floatParam(0, synth.MaxEchoDelay, func(c *synth.LayerConfig, v float64) { advanced(c).Echo.Delay = v })},
	{"echo.feedback", "echo feedback (0-1)",
		floatParam(0, 1, func(c *synth.LayerConfig, v float64) { advanced(c).Echo.Feedback = v })},
}

func floatParam(min, max float64, assign func(*synth.LayerConfig, float64)) func(*synth.LayerConfig, string) error {
	return func(cfg *synth.LayerConfig, value string) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("not a number: %v", value)
		}
		if f < min || f > max {
			return fmt.Errorf("value is not in valid range %v - %v: %v", min, max, f)
		}
		assign(cfg, f)
		return nil
	}
}

func boolParam(assign func(*synth.LayerConfig, bool)) func(*synth.LayerConfig, string) error {
	return func(cfg *synth.LayerConfig, value string) error {
		switch value {
		case "on", "true", "1":
			assign(cfg, true)
		case "off", "false", "0":
			assign(cfg, false)
		default:
			return fmt.Errorf("want on or off, got %v", value)
		}
		return nil
	}
}

// advanced returns the layer's advanced block, allocating defaults the first
// time an advanced parameter is touched.
func advanced(cfg *synth.LayerConfig) *synth.Advanced {
	if cfg.Advanced == nil {
		cfg.Advanced = synth.DefaultAdvanced()
	}
	return cfg.Advanced
}
