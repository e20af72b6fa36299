package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kellylford/SoundDesignStudio/document"
	"github.com/kellylford/SoundDesignStudio/synth"
)

type command struct {
	name    string
	help    string
	run     func(s *session, args []string) error
	minArgs int
}

var commands = []command{
	{name: "show", help: "show the current document", run: show},
	{name: "play", help: "play the whole document", run: play},
	{name: "playl", help: "playl <layer>: play a single layer", run: playLayer, minArgs: 1},
	{name: "export", help: "export <file>: write the document as WAV", run: export, minArgs: 1},
	{name: "exportl", help: "exportl <layer> <file>: write one layer as WAV", run: exportLayer, minArgs: 2},
	{name: "new", help: "start a new document", run: newDoc},
	{name: "open", help: "open <file>: load a document", run: openDoc, minArgs: 1},
	{name: "save", help: "save [file]: save the document", run: saveDoc},
	{name: "add", help: "add [name]: append a blank layer", run: addLayer},
	{name: "rm", help: "rm <layer>: remove a layer", run: removeLayer, minArgs: 1},
	{name: "mode", help: "mode sequential|simultaneous", run: setMode, minArgs: 1},
	{name: "set", help: "set <layer> <param> <value>: change a layer parameter", run: setParam, minArgs: 3},
	{name: "params", help: "list settable layer parameters", run: listParams},
	{name: "name", help: "name <text>: rename the document", run: setName, minArgs: 1},
	{name: "desc", help: "desc <text>: set the document description", run: setDescription, minArgs: 1},
	{name: "preset", help: "preset <name>: replace the document with a preset", run: loadPreset, minArgs: 1},
	{name: "presets", help: "list built-in presets", run: listPresets},
	{name: "help", help: "show this help", run: help},
}

func help(s *session, args []string) error {
	for _, cmd := range commands {
		fmt.Printf("  %-8s %s\n", cmd.name, cmd.help)
	}
	return nil
}

func show(s *session, args []string) error {
	renderView(s.doc, os.Stdout)
	return nil
}

func play(s *session, args []string) error {
	if s.player == nil {
		return fmt.Errorf("audio playback is not available")
	}
	buf := s.doc.Render(s.renderer)
	fmt.Printf("playing %q (%d layers, %s mode)\n", s.doc.Name, len(s.doc.Layers), s.doc.Mode)
	return s.player.Play(buf, s.renderer.SampleRate)
}

func playLayer(s *session, args []string) error {
	if s.player == nil {
		return fmt.Errorf("audio playback is not available")
	}
	layer, err := layerArg(s, args[0])
	if err != nil {
		return err
	}
	buf := synth.Normalize(s.renderer.RenderLayer(layer.Config))
	fmt.Printf("playing layer %q\n", layer.Name)
	return s.player.Play(buf, s.renderer.SampleRate)
}

func export(s *session, args []string) error {
	if err := exportFile(s, args[0]); err != nil {
		return err
	}
	fmt.Printf("exported %q to %s\n", s.doc.Name, args[0])
	return nil
}

func exportFile(s *session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return synth.Encode(f, s.doc.Render(s.renderer), s.renderer.SampleRate)
}

func exportLayer(s *session, args []string) error {
	layer, err := layerArg(s, args[0])
	if err != nil {
		return err
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer f.Close()
	buf := synth.Normalize(s.renderer.RenderLayer(layer.Config))
	if err := synth.Encode(f, buf, s.renderer.SampleRate); err != nil {
		return err
	}
	fmt.Printf("exported layer %q to %s\n", layer.Name, args[1])
	return nil
}

func newDoc(s *session, args []string) error {
	s.doc = document.New()
	s.path = ""
	return nil
}

func openDoc(s *session, args []string) error {
	doc, err := document.Load(args[0])
	if err != nil {
		return err
	}
	s.doc = doc
	s.path = args[0]
	fmt.Printf("opened %q (%d layers)\n", doc.Name, len(doc.Layers))
	return nil
}

func saveDoc(s *session, args []string) error {
	path := s.path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no file name: use save <file>")
	}
	if err := s.doc.Save(path); err != nil {
		return err
	}
	s.path = path
	fmt.Printf("saved %q to %s\n", s.doc.Name, path)
	return nil
}

func addLayer(s *session, args []string) error {
	layer := s.doc.AddLayer(strings.Join(args, " "))
	fmt.Printf("added layer %d: %q\n", len(s.doc.Layers), layer.Name)
	return nil
}

func removeLayer(s *session, args []string) error {
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("not a layer number: %s", args[0])
	}
	if !s.doc.RemoveLayer(i - 1) {
		return fmt.Errorf("cannot remove layer %d", i)
	}
	return nil
}

func setMode(s *session, args []string) error {
	switch document.PlaybackMode(args[0]) {
	case document.Sequential, document.Simultaneous:
		s.doc.Mode = document.PlaybackMode(args[0])
		return nil
	}
	return fmt.Errorf("not a playback mode: %s", args[0])
}

func setParam(s *session, args []string) error {
	layer, err := layerArg(s, args[0])
	if err != nil {
		return err
	}
	return setLayerParam(&layer.Config, args[1], args[2])
}

func listParams(s *session, args []string) error {
	for _, p := range layerParams {
		fmt.Printf("  %-14s %s\n", p.name, p.help)
	}
	return nil
}

func setName(s *session, args []string) error {
	s.doc.Name = strings.Join(args, " ")
	return nil
}

func setDescription(s *session, args []string) error {
	s.doc.Description = strings.Join(args, " ")
	return nil
}

func loadPreset(s *session, args []string) error {
	doc, err := document.LoadPreset(args[0])
	if err != nil {
		return err
	}
	s.doc = doc
	s.path = ""
	fmt.Printf("loaded preset %q (%d layers, %s mode)\n", doc.Name, len(doc.Layers), doc.Mode)
	return nil
}

func listPresets(s *session, args []string) error {
	for _, name := range document.PresetNames() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

// layerArg resolves a 1-based layer number from the prompt.
func layerArg(s *session, arg string) (*document.Layer, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > len(s.doc.Layers) {
		return nil, fmt.Errorf("not a layer number: %s", arg)
	}
	return &s.doc.Layers[i-1], nil
}
