package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/physics"
)

func TestWorldToScreen(t *testing.T) {
	c := New(2000, 1200, 100/physics.AU)

	assert.Equal(t, r2.Vec{X: 1000, Y: 600}, c.WorldToScreen(r2.Vec{}), "origin maps to the center")

	got := c.WorldToScreen(r2.Vec{X: physics.AU, Y: -2 * physics.AU})
	assert.InDelta(t, 1100, got.X, 1e-9)
	assert.InDelta(t, 400, got.Y, 1e-9)

	c.Offset = r2.Vec{X: 30, Y: -20}
	assert.Equal(t, r2.Vec{X: 1030, Y: 580}, c.WorldToScreen(r2.Vec{}))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		scale  float64
		offset r2.Vec
		p      r2.Vec
	}{
		{"default", 100 / physics.AU, r2.Vec{}, r2.Vec{X: 0.387 * physics.AU}},
		{"panned", 100 / physics.AU, r2.Vec{X: -250, Y: 90}, r2.Vec{X: -5 * physics.AU, Y: 3 * physics.AU}},
		{"zoomed in", 1e-6, r2.Vec{X: 10, Y: 10}, r2.Vec{X: 123456, Y: -654321}},
		{"unit", 1, r2.Vec{X: 1, Y: -1}, r2.Vec{X: 3.5, Y: -7.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(2000, 1200, tt.scale)
			c.Offset = tt.offset
			got := c.ScreenToWorld(c.WorldToScreen(tt.p))
			tol := 1e-9 * (math.Abs(tt.p.X) + math.Abs(tt.p.Y) + 1)
			assert.InDelta(t, tt.p.X, got.X, tol)
			assert.InDelta(t, tt.p.Y, got.Y, tol)
		})
	}
}

func TestZoomMonotonic(t *testing.T) {
	c := New(800, 600, 100/physics.AU)
	start := c.Scale

	for i := 0; i < 25; i++ {
		prev := c.Scale
		c.ZoomIn()
		assert.Greater(t, c.Scale, prev)
	}
	for i := 0; i < 25; i++ {
		prev := c.Scale
		c.ZoomOut()
		assert.Less(t, c.Scale, prev)
	}
	assert.InEpsilon(t, start, c.Scale, 1e-12)
}

func TestPan(t *testing.T) {
	c := New(800, 600, 1)
	c.Pan(DefaultPanStep, 0)
	c.Pan(0, -DefaultPanStep)
	c.Pan(-3, 4)
	assert.Equal(t, r2.Vec{X: 7, Y: -6}, c.Offset)
}

func TestResize(t *testing.T) {
	c := New(800, 600, 2)
	c.Offset = r2.Vec{X: 5}
	c.Resize(100, 50)
	assert.Equal(t, r2.Vec{X: 55, Y: 25}, c.WorldToScreen(r2.Vec{}))
	assert.Equal(t, 2.0, c.Scale)
}

func TestPickWorld(t *testing.T) {
	c := New(200, 100, 1)
	a := &physics.Body{Name: "a", Mass: 1, Radius: 10, Pos: r2.Vec{X: 0}}
	b := &physics.Body{Name: "b", Mass: 1, Radius: 10, Pos: r2.Vec{X: 15}}
	bodies := []*physics.Body{a, b}

	assert.Same(t, a, c.Pick(bodies, r2.Vec{X: 100 - 5, Y: 50}))
	assert.Same(t, b, c.Pick(bodies, r2.Vec{X: 100 + 20, Y: 50}))
	assert.Nil(t, c.Pick(bodies, r2.Vec{X: 0, Y: 0}), "miss")

	// 7.5 is inside both radii; the later body wins
	assert.Same(t, b, c.Pick(bodies, r2.Vec{X: 100 + 7.5, Y: 50}))
	assert.Same(t, a, c.Pick([]*physics.Body{b, a}, r2.Vec{X: 100 + 7.5, Y: 50}))
}

func TestPickWorldUsesWorldRadius(t *testing.T) {
	c := New(200, 100, 0.5)
	b := &physics.Body{Name: "b", Mass: 1, Radius: 10}

	// 8 pixels from center is 16 world units
	assert.Nil(t, c.Pick([]*physics.Body{b}, r2.Vec{X: 108, Y: 50}))
	assert.Same(t, b, c.Pick([]*physics.Body{b}, r2.Vec{X: 104, Y: 50}))
}

func TestPickScreen(t *testing.T) {
	c := New(2000, 1200, 100/physics.AU)
	c.PickMode = PickScreen
	earth := &physics.Body{Name: "earth", Mass: 1, Radius: 16, Pos: r2.Vec{X: physics.AU}}

	assert.Same(t, earth, c.Pick([]*physics.Body{earth}, r2.Vec{X: 1110, Y: 605}))
	assert.Nil(t, c.Pick([]*physics.Body{earth}, r2.Vec{X: 1120, Y: 600}))

	c.PickMode = PickWorld
	assert.Nil(t, c.Pick([]*physics.Body{earth}, r2.Vec{X: 1100, Y: 601}), "16 m is far smaller than a pixel")
}
