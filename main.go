package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/kellylford/SoundDesignStudio/document"
	"github.com/kellylford/SoundDesignStudio/playback"
	"github.com/kellylford/SoundDesignStudio/synth"
)

func main() {
	var (
		open    = flag.String("open", "", "sound document to open on startup")
		run     = flag.String("run", "", "file with commands to run before the prompt")
		export  = flag.String("export", "", "render the opened document to a WAV file and exit")
		nosound = flag.Bool("nosound", false, "disable audio playback")
		debug   = flag.Bool("debug", false, "verbose logging")
	)
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	s := &session{
		doc:      document.New(),
		renderer: synth.NewRenderer(logger),
		log:      logger,
	}

	if *open != "" {
		doc, err := document.Load(*open)
		if err != nil {
			log.Fatal(err)
		}
		s.doc = doc
		s.path = *open
	}

	if *export != "" {
		if err := exportFile(s, *export); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("exported %q to %s\n", s.doc.Name, *export)
		return
	}

	if !*nosound {
		player, err := playback.Open()
		if err != nil {
			logger.Warn("audio playback unavailable", zap.Error(err))
		} else {
			s.player = player
			defer player.Close()
		}
	}

	if *run != "" {
		if err := runScript(s, *run); err != nil {
			log.Fatal(err)
		}
	}

	if err := repl(s); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func runScript(s *session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := eval(s, line); err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
	}
	return scanner.Err()
}

// session is the REPL's mutable state: the open document, where it came
// from, and the collaborators that turn it into sound.
type session struct {
	doc      *document.Document
	path     string
	renderer *synth.Renderer
	player   *playback.Player
	log      *zap.Logger
}
