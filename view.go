package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kellylford/SoundDesignStudio/document"
)

func renderView(doc *document.Document, w io.Writer) {
	title := doc.Name
	if doc.Description != "" {
		title += " - " + doc.Description
	}
	fmt.Fprintf(w, "%s  [%s]\n", colorize(title, colorBlue), doc.Mode)

	var maxNameLen int
	for _, layer := range doc.Layers {
		if len(layer.Name) > maxNameLen {
			maxNameLen = len(layer.Name)
		}
	}

	for i, layer := range doc.Layers {
		cfg := layer.Config
		name := layer.Name + strings.Repeat(" ", maxNameLen-len(layer.Name))
		id := colorize(fmt.Sprintf("%2d", i+1), colorGreen)

		desc := fmt.Sprintf("%7.1f Hz  %-8s  %.2fs  vol %.2f", cfg.Frequency, cfg.Waveform, cfg.Duration, cfg.Volume)
		var tags []string
		if cfg.Harmonics.Enabled {
			tags = append(tags, "harmonics")
		}
		if adv := cfg.Advanced; adv != nil && adv.Enabled {
			tags = append(tags, string(adv.Technique))
			if adv.LFO.Enabled {
				tags = append(tags, "lfo")
			}
			if adv.Echo.Enabled {
				tags = append(tags, "echo")
			}
		}
		if cfg.Overlap > 0 {
			tags = append(tags, fmt.Sprintf("overlap %.2fs", cfg.Overlap))
		}
		if len(tags) > 0 {
			desc += "  " + colorize(strings.Join(tags, ", "), colorMagenta)
		}
		fmt.Fprintf(w, "%s %s  %s\n", id, colorize(name, colorYellow), desc)
	}
}

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func colorize(text string, color int) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}
