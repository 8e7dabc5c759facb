// Package control turns user intents into camera, pause and selection changes.
// Shells translate their own key and mouse events into these calls.
package control

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/camera"
	"github.com/olivierh59500/planetsim-go/physics"
	"github.com/olivierh59500/planetsim-go/simulation"
)

// Action is a discrete user command
type Action int

const (
	None Action = iota
	ZoomIn
	ZoomOut
	TogglePause
	PanUp
	PanDown
	PanLeft
	PanRight
	StepOnce
	Reset
)

var actionNames = map[Action]string{
	None:        "none",
	ZoomIn:      "zoom in",
	ZoomOut:     "zoom out",
	TogglePause: "pause",
	PanUp:       "pan up",
	PanDown:     "pan down",
	PanLeft:     "pan left",
	PanRight:    "pan right",
	StepOnce:    "step",
	Reset:       "reset",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Controller applies actions to a simulation and its camera
type Controller struct {
	Sim *simulation.Simulation
	Cam *camera.Camera

	// Held is the body grabbed by the current mouse press, nil once released
	Held *physics.Body

	// OnSelect is called after a press hits a body
	OnSelect func(*physics.Body)
}

// New returns a controller over sim and cam
func New(sim *simulation.Simulation, cam *camera.Camera) *Controller {
	return &Controller{Sim: sim, Cam: cam}
}

// Do applies a. StepOnce only has an effect while paused.
// Left and right pan move the offset opposite to the key direction.
func (c *Controller) Do(a Action) error {
	step := c.Cam.PanStep
	switch a {
	case ZoomIn:
		c.Cam.ZoomIn()
	case ZoomOut:
		c.Cam.ZoomOut()
	case TogglePause:
		c.Sim.TogglePause()
	case PanUp:
		c.Cam.Pan(0, -step)
	case PanDown:
		c.Cam.Pan(0, step)
	case PanLeft:
		c.Cam.Pan(step, 0)
	case PanRight:
		c.Cam.Pan(-step, 0)
	case StepOnce:
		if c.Sim.Paused {
			return c.Sim.Advance()
		}
	case Reset:
		c.Held = nil
		c.Sim.Reset()
	}
	return nil
}

// Scroll zooms in for positive dy and out for negative dy
func (c *Controller) Scroll(dy float64) {
	switch {
	case dy > 0:
		c.Cam.ZoomIn()
	case dy < 0:
		c.Cam.ZoomOut()
	}
}

// Press selects the body under the screen point and clears every other selection.
// A miss clears all selections. Returns the hit body or nil.
func (c *Controller) Press(screen r2.Vec) *physics.Body {
	return c.Select(c.Cam.Pick(c.Sim.Bodies, screen))
}

// Select makes hit the only selected body, or clears the selection when hit is nil.
// For shells that hit-test on their own.
func (c *Controller) Select(hit *physics.Body) *physics.Body {
	for _, b := range c.Sim.Bodies {
		b.Selected = b == hit
	}
	if hit != nil {
		c.Held = hit
		if c.OnSelect != nil {
			c.OnSelect(hit)
		}
	}
	return hit
}

// Release drops the held body. Selection flags stay set.
func (c *Controller) Release() {
	c.Held = nil
}

// Selected returns the selected body, or nil
func (c *Controller) Selected() *physics.Body {
	for _, b := range c.Sim.Bodies {
		if b.Selected {
			return b
		}
	}
	return nil
}
