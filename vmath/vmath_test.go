package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 4, Y: 5}), "3-4-5 triangle")
	assert.Equal(t, 0.0, Distance(r2.Vec{X: 2, Y: 2}, r2.Vec{X: 2, Y: 2}), "same point")
	assert.Equal(t,
		Distance(r2.Vec{X: -3, Y: 7}, r2.Vec{X: 11, Y: -2}),
		Distance(r2.Vec{X: 11, Y: -2}, r2.Vec{X: -3, Y: 7}),
		"symmetric")
}

func TestPolar(t *testing.T) {
	tests := []struct {
		name  string
		d     r2.Vec
		theta float64
		mag   float64
	}{
		{"east", r2.Vec{X: 2}, 0, 2},
		{"north", r2.Vec{Y: 3}, math.Pi / 2, 3},
		{"west", r2.Vec{X: -1}, math.Pi, 1},
		{"south", r2.Vec{Y: -4}, -math.Pi / 2, 4},
		{"diagonal", r2.Vec{X: 1, Y: 1}, math.Pi / 4, math.Sqrt2},
		{"zero", r2.Vec{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta, mag := Polar(tt.d)
			assert.InDelta(t, tt.theta, theta, 1e-12)
			assert.InDelta(t, tt.mag, mag, 1e-12)
		})
	}
}

func TestFromPolarRoundTrip(t *testing.T) {
	for _, d := range []r2.Vec{{X: 3, Y: -4}, {X: -1e11, Y: 2.5e10}, {X: 0.001, Y: 0.002}} {
		got := FromPolar(Polar(d))
		assert.InDelta(t, d.X, got.X, math.Abs(d.X)*1e-12+1e-15)
		assert.InDelta(t, d.Y, got.Y, math.Abs(d.Y)*1e-12+1e-15)
	}
}
