package document

import (
	"fmt"
	"sort"

	"github.com/kellylford/SoundDesignStudio/synth"
)

// Built-in starting points. Loading a preset replaces the whole document, so
// every entry is a complete multi-layer sound.
var presets = map[string]*Document{
	"bell": {
		Name: "Bell",
		Mode: Simultaneous,
		Layers: []Layer{
			{Name: "Strike", Config: synth.LayerConfig{
				Frequency: 440, Waveform: synth.WaveSine, Duration: 2.0, Volume: 0.5,
				Envelope: synth.ADSR{Attack: 0.001, Decay: 0.8, Sustain: 0.2, Release: 1.2},
			}},
			{Name: "Shimmer", Config: synth.LayerConfig{
				Frequency: 880, Waveform: synth.WaveSine, Duration: 2.0, Volume: 0.3,
				Envelope:  synth.ADSR{Attack: 0.01, Decay: 0.6, Sustain: 0.1, Release: 1.0},
				Harmonics: synth.Harmonics{Enabled: true, Octave: 0.4, Fifth: 0.3},
			}},
		},
	},
	"organ": {
		Name: "Organ",
		Mode: Simultaneous,
		Layers: []Layer{
			{Name: "Base", Config: synth.LayerConfig{
				Frequency: 220, Waveform: synth.WaveSine, Duration: 1.0, Volume: 0.4,
				Envelope: synth.ADSR{Attack: 0.05, Decay: 0.1, Sustain: 0.9, Release: 0.2},
			}},
			{Name: "Octave", Config: synth.LayerConfig{
				Frequency: 440, Waveform: synth.WaveSine, Duration: 1.0, Volume: 0.3,
				Envelope: synth.ADSR{Attack: 0.05, Decay: 0.1, Sustain: 0.9, Release: 0.2},
			}},
			{Name: "Fifth", Config: synth.LayerConfig{
				Frequency: 330, Waveform: synth.WaveSine, Duration: 1.0, Volume: 0.2,
				Envelope: synth.ADSR{Attack: 0.05, Decay: 0.1, Sustain: 0.9, Release: 0.2},
			}},
		},
	},
	"kick": {
		Name: "Kick Drum",
		Mode: Sequential,
		Layers: []Layer{
			{Name: "Thump", Config: synth.LayerConfig{
				Frequency: 60, Waveform: synth.WaveSine, Duration: 0.3, Volume: 0.8,
				Envelope: synth.ADSR{Attack: 0.001, Decay: 0.2, Sustain: 0.1, Release: 0.1},
			}},
			{Name: "Click", Config: synth.LayerConfig{
				Frequency: 150, Waveform: synth.WaveSquare, Duration: 0.1, Volume: 0.4,
				Envelope: synth.ADSR{Attack: 0.001, Decay: 0.04, Sustain: 0, Release: 0.01},
			}},
		},
	},
	"pluck": {
		Name: "Plucked String",
		Mode: Sequential,
		Layers: []Layer{
			{Name: "String", Config: synth.LayerConfig{
				Frequency: 220, Waveform: synth.WaveSine, Duration: 1.5, Volume: 0.6,
				Envelope: synth.ADSR{Sustain: 1},
				Advanced: &synth.Advanced{Enabled: true, Technique: synth.TechniqueKarplusStrong},
			}},
		},
	},
	"bell-fm": {
		Name: "FM Bell",
		Mode: Sequential,
		Layers: []Layer{
			{Name: "Tone", Config: synth.LayerConfig{
				Frequency: 440, Waveform: synth.WaveSine, Duration: 1.5, Volume: 0.5,
				Envelope: synth.ADSR{Attack: 0.001, Decay: 0.8, Sustain: 0.2, Release: 0.6},
				Advanced: &synth.Advanced{
					Enabled: true, Technique: synth.TechniqueFM,
					FMRatio: 1.4, FMIndex: 5.0,
				},
			}},
		},
	},
	"wind": {
		Name: "Wind",
		Mode: Simultaneous,
		Layers: []Layer{
			{Name: "Gust", Config: synth.LayerConfig{
				Frequency: 300, Waveform: synth.WaveSine, Duration: 2.0, Volume: 0.4,
				Envelope: synth.ADSR{Attack: 0.4, Decay: 0.3, Sustain: 0.6, Release: 0.8},
				Advanced: &synth.Advanced{
					Enabled: true, Technique: synth.TechniqueNoise,
					NoiseColor: synth.NoisePink,
					Filter:     synth.NoiseFilter{Enabled: true, Kind: synth.FilterLowPass, Low: 100, High: 1200},
					LFO:        synth.LFO{Enabled: true, Rate: 0.5, Depth: 0.4},
				},
			}},
		},
	},
}

// LoadPreset returns a deep copy of the named preset, so edits never touch
// the library.
func LoadPreset(name string) (*Document, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %v", name)
	}
	doc := &Document{Name: p.Name, Description: p.Description, Mode: p.Mode}
	for _, l := range p.Layers {
		cfg := l.Config
		if cfg.Advanced != nil {
			adv := *cfg.Advanced
			cfg.Advanced = &adv
		}
		doc.Layers = append(doc.Layers, Layer{Name: l.Name, Config: cfg})
	}
	return doc, nil
}

// PresetNames lists the available presets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
