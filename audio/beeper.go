// Package audio emits the interpreter's tone through the default output
// device. The tone is a plain sine wave that plays for as long as the
// sound timer is non-zero.
package audio

import (
	"sync"
	"sync/atomic"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/generator"
	"github.com/gordonklaus/portaudio"
	"github.com/pkg/errors"
)

const (
	bufferSize = 512
	tone       = 440.0
)

// Beeper plays a continuous sine tone while active. Start and Stop may
// be called repeatedly; both are no-ops when the tone is already in the
// requested state.
type Beeper struct {
	wg      sync.WaitGroup
	beeping uint32
}

// NewBeeper initializes the audio backend and returns a silent beeper.
// Call Close when done with it.
func NewBeeper() (*Beeper, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, errors.Wrapf(err, "failed to initialize audio")
	}
	return &Beeper{}, nil
}

// Start begins playing the tone.
func (b *Beeper) Start() error {
	if !atomic.CompareAndSwapUint32(&b.beeping, 0, 1) {
		return nil
	}

	out := make([]float32, bufferSize)

	stream, err := portaudio.OpenDefaultStream(0, 1, 44100, len(out), &out)
	if err != nil {
		atomic.StoreUint32(&b.beeping, 0)
		return errors.Wrapf(err, "failed to open audio stream")
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		atomic.StoreUint32(&b.beeping, 0)
		return errors.Wrapf(err, "failed to start audio stream")
	}

	buffer := &goaudio.FloatBuffer{
		Data:   make([]float64, bufferSize),
		Format: goaudio.FormatMono44100,
	}

	osc := generator.NewOsc(generator.WaveSine, tone, buffer.Format.SampleRate)
	osc.Amplitude = 1

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer func() {
			_ = stream.Stop()
			_ = stream.Close()
		}()

		for atomic.LoadUint32(&b.beeping) == 1 {
			if err := osc.Fill(buffer); err != nil {
				return
			}

			for i, v := range buffer.Data {
				out[i] = float32(v)
			}

			if err := stream.Write(); err != nil {
				return
			}
		}
	}()

	return nil
}

// Stop silences the tone and waits for the stream to shut down.
func (b *Beeper) Stop() {
	if !atomic.CompareAndSwapUint32(&b.beeping, 1, 0) {
		return
	}
	b.wg.Wait()
}

// Close stops the tone and tears down the audio backend.
func (b *Beeper) Close() {
	b.Stop()
	_ = portaudio.Terminate()
}
