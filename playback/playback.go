// Package playback plays rendered sample buffers on the default output
// device. The core never depends on it; it is the blocking playback
// collaborator the terminal front-end hands finished buffers to.
package playback

import (
	"sync"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 512

type Player struct {
	mu sync.Mutex
}

// Open initializes the audio backend. Callers must Close when done.
func Open() (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}
	return &Player{}, nil
}

func (p *Player) Close() error {
	return portaudio.Terminate()
}

// Play streams buf to the default output device and blocks until the last
// sample has been handed to the stream.
func (p *Player) Play(buf []float64, sampleRate int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		pos  int
		once sync.Once
		done = make(chan struct{})
	)
	callback := func(out []float32) {
		for i := range out {
			if pos < len(buf) {
				out[i] = float32(buf[pos])
				pos++
			} else {
				out[i] = 0
			}
		}
		if pos >= len(buf) {
			once.Do(func() { close(done) })
		}
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), framesPerBuffer, callback)
	if err != nil {
		return err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	<-done
	return stream.Stop()
}
