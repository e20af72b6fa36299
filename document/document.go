// Package document holds the sound document model: an ordered list of named
// layers plus a playback mode, with tolerant JSON persistence so older
// documents missing newer optional keys still load.
package document

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/kellylford/SoundDesignStudio/synth"
)

type PlaybackMode string

const (
	Sequential   PlaybackMode = "sequential"
	Simultaneous PlaybackMode = "simultaneous"
)

type Layer struct {
	Name   string            `json:"name"`
	Config synth.LayerConfig `json:"config"`
}

// Document is an ordered sequence of named layers. It always contains at
// least one layer.
type Document struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Mode        PlaybackMode `json:"playback_mode"`
	Layers      []Layer      `json:"layers"`
}

// New creates a document with one default layer.
func New() *Document {
	return &Document{
		Name:   "Untitled Sound",
		Mode:   Sequential,
		Layers: []Layer{{Name: "Layer 1", Config: synth.DefaultLayer()}},
	}
}

// AddLayer appends a blank layer. An empty name gets "Layer N".
func (d *Document) AddLayer(name string) *Layer {
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(d.Layers)+1)
	}
	d.Layers = append(d.Layers, Layer{Name: name, Config: synth.BlankLayer()})
	return &d.Layers[len(d.Layers)-1]
}

// RemoveLayer deletes the layer at index. The last remaining layer can't be
// removed; a document is always renderable.
func (d *Document) RemoveLayer(index int) bool {
	if index < 0 || index >= len(d.Layers) || len(d.Layers) <= 1 {
		return false
	}
	d.Layers = append(d.Layers[:index], d.Layers[index+1:]...)
	return true
}

// FromJSON decodes a persisted document. Structural problems are recoverable:
// a document with no layers gets a single default layer, an unknown playback
// mode becomes sequential and missing optional keys keep their disabled
// defaults. Only malformed JSON is an error.
func FromJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.normalize()
	return &doc, nil
}

func (d *Document) normalize() {
	if d.Name == "" {
		d.Name = "Untitled Sound"
	}
	if d.Mode != Sequential && d.Mode != Simultaneous {
		d.Mode = Sequential
	}
	if len(d.Layers) == 0 {
		d.Layers = []Layer{{Name: "Layer 1", Config: synth.DefaultLayer()}}
	}
	for i := range d.Layers {
		if d.Layers[i].Name == "" {
			d.Layers[i].Name = fmt.Sprintf("Layer %d", i+1)
		}
	}
}

func (d *Document) ToJSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}

// Save writes the document to a file.
func (d *Document) Save(path string) error {
	data, err := d.ToJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Render renders every layer and composes the result according to the
// playback mode. Layers are independent until composition, so they render
// concurrently; composition itself runs after all of them finish.
func (d *Document) Render(r *synth.Renderer) []float64 {
	bufs := make([][]float64, len(d.Layers))
	overlaps := make([]float64, len(d.Layers))

	var wg sync.WaitGroup
	for i := range d.Layers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bufs[i] = r.RenderLayer(d.Layers[i].Config)
		}(i)
		overlaps[i] = d.Layers[i].Config.Clamped().Overlap
	}
	wg.Wait()

	if d.Mode == Simultaneous {
		return synth.MixSimultaneous(bufs)
	}
	return synth.MixSequential(bufs, overlaps, r.SampleRate)
}

// Export renders the document and encodes it as WAV bytes.
func (d *Document) Export(r *synth.Renderer) ([]byte, error) {
	return synth.EncodeBytes(d.Render(r), r.SampleRate)
}
