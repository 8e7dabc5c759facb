// Package audio plays a short tone when a body is selected.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	blipLength = 50 * time.Millisecond
)

// Blip is a one-shot sine tone. A nil or uninitialised Blip is silent.
type Blip struct {
	freq  float64
	ready bool
}

// NewBlip initialises the speaker. On error the returned Blip is still usable and silent.
func NewBlip(freq float64) (*Blip, error) {
	b := &Blip{freq: freq}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return b, err
	}
	b.ready = true
	return b, nil
}

// Play starts the tone without blocking
func (b *Blip) Play() {
	if b == nil || !b.ready {
		return
	}
	sine, err := generators.SineTone(sampleRate, b.freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipLength), sine))
}

// Close releases the speaker
func (b *Blip) Close() {
	if b == nil || !b.ready {
		return
	}
	speaker.Close()
	b.ready = false
}
