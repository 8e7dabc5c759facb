// Package frame builds the per-frame render records both shells draw from.
package frame

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/camera"
	"github.com/olivierh59500/planetsim-go/physics"
	"github.com/olivierh59500/planetsim-go/simulation"
)

// minTrail is the number of trail points a body needs before its trail is drawn
const minTrail = 3

// Sprite is what a shell needs to draw one body
type Sprite struct {
	Name     string
	Center   r2.Vec // pixels
	Radius   float64
	Color    color.RGBA
	Trail    []r2.Vec // pixels, oldest first; nil when too short to draw
	Distance string   // empty for anchors
	Info     string   // empty unless selected
	Selected bool
	Anchor   bool
}

// Frame is one rendered view of the simulation
type Frame struct {
	Sprites []Sprite
	Status  string
}

// Build maps every body through cam, in body order
func Build(sim *simulation.Simulation, cam *camera.Camera) Frame {
	f := Frame{
		Sprites: make([]Sprite, 0, len(sim.Bodies)),
		Status:  Status(sim, cam),
	}
	for _, b := range sim.Bodies {
		f.Sprites = append(f.Sprites, build(b, cam))
	}
	return f
}

func build(b *physics.Body, cam *camera.Camera) Sprite {
	s := Sprite{
		Name:     b.Name,
		Center:   cam.WorldToScreen(b.Pos),
		Radius:   b.Radius,
		Color:    b.Color,
		Selected: b.Selected,
		Anchor:   b.Anchor,
	}
	if len(b.Trail) >= minTrail {
		s.Trail = make([]r2.Vec, len(b.Trail))
		for i, p := range b.Trail {
			s.Trail[i] = cam.WorldToScreen(p)
		}
	}
	if !b.Anchor {
		s.Distance = DistanceLabel(b.DistanceToAnchor)
	}
	if b.Selected {
		s.Info = InfoLabel(b)
	}
	return s
}

// DistanceLabel formats meters as kilometers to one decimal
func DistanceLabel(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}

// InfoLabel is the caption of a selected body
func InfoLabel(b *physics.Body) string {
	return fmt.Sprintf("%s: %s, Mass: %.2e kg", b.Name, DistanceLabel(b.DistanceToAnchor), b.Mass)
}

// Status summarises simulated time, run state, step count and zoom
func Status(sim *simulation.Simulation, cam *camera.Camera) string {
	state := "running"
	if sim.Paused {
		state = "paused"
	}
	days := int(sim.Days())
	return fmt.Sprintf("Day %d | %s | step %d | %.1f px/AU | %d bodies",
		days, state, sim.Steps, cam.Scale*physics.AU, len(sim.Bodies))
}

// Visible reports whether any part of the body's disc falls inside a w x h viewport
func (s Sprite) Visible(w, h float64) bool {
	return s.Center.X+s.Radius >= 0 && s.Center.X-s.Radius <= w &&
		s.Center.Y+s.Radius >= 0 && s.Center.Y-s.Radius <= h
}
