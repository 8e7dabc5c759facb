// Package vmath holds the small amount of 2D vector math the simulator needs,
// expressed over gonum's r2.Vec.
package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns the Euclidean distance between a and b
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Polar decomposes a displacement into its angle over the full circle and its length
func Polar(d r2.Vec) (theta, magnitude float64) {
	return math.Atan2(d.Y, d.X), r2.Norm(d)
}

// FromPolar is the inverse of Polar
func FromPolar(theta, magnitude float64) r2.Vec {
	return r2.Vec{X: math.Cos(theta) * magnitude, Y: math.Sin(theta) * magnitude}
}
