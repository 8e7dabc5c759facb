// Package camera maps simulation space to screen space. It never touches body state
// beyond reading positions.
package camera

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/physics"
	"github.com/olivierh59500/planetsim-go/vmath"
)

// Camera defaults
const (
	DefaultZoomFactor = 1.1
	DefaultPanStep    = 10.0 // pixels
)

// PickMode selects the space in which a body's Radius is compared against a click
type PickMode int

const (
	// PickWorld compares the click to Radius in simulation units
	PickWorld PickMode = iota
	// PickScreen compares the click to Radius in pixels
	PickScreen
)

// Camera holds zoom and pan for a viewport of Width x Height pixels
type Camera struct {
	Scale         float64 // pixels per meter
	Offset        r2.Vec  // pixels
	Width, Height float64
	ZoomFactor    float64
	PanStep       float64
	PickMode      PickMode
}

// New returns a centered camera
func New(width, height, scale float64) *Camera {
	return &Camera{
		Scale:      scale,
		Width:      width,
		Height:     height,
		ZoomFactor: DefaultZoomFactor,
		PanStep:    DefaultPanStep,
	}
}

func (c *Camera) center() r2.Vec {
	return r2.Vec{X: c.Width / 2, Y: c.Height / 2}
}

// WorldToScreen maps a simulation position to pixels
func (c *Camera) WorldToScreen(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: p.X*c.Scale + c.Width/2 + c.Offset.X,
		Y: p.Y*c.Scale + c.Height/2 + c.Offset.Y,
	}
}

// ScreenToWorld is the inverse of WorldToScreen
func (c *Camera) ScreenToWorld(s r2.Vec) r2.Vec {
	return r2.Scale(1/c.Scale, r2.Sub(r2.Sub(s, c.center()), c.Offset))
}

// ZoomIn multiplies the scale by the zoom factor. Scale is not clamped.
func (c *Camera) ZoomIn() {
	c.Scale *= c.ZoomFactor
}

// ZoomOut divides the scale by the zoom factor
func (c *Camera) ZoomOut() {
	c.Scale /= c.ZoomFactor
}

// Pan moves the offset by the given number of pixels
func (c *Camera) Pan(dx, dy float64) {
	c.Offset.X += dx
	c.Offset.Y += dy
}

// Resize updates the viewport, keeping scale and offset
func (c *Camera) Resize(width, height float64) {
	c.Width, c.Height = width, height
}

// Pick returns the body under the screen point, or nil.
// When several bodies contain the point the last one in bodies wins.
func (c *Camera) Pick(bodies []*physics.Body, screen r2.Vec) *physics.Body {
	world := c.ScreenToWorld(screen)

	var hit *physics.Body
	for _, b := range bodies {
		var d float64
		switch c.PickMode {
		case PickScreen:
			d = vmath.Distance(screen, c.WorldToScreen(b.Pos))
		default:
			d = vmath.Distance(world, b.Pos)
		}
		if d < b.Radius {
			hit = b
		}
	}
	return hit
}
