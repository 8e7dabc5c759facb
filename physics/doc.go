// Package physics models massive point bodies under pairwise Newtonian gravity.
//
// A step is semi-implicit Euler with a fixed timestep: the net force updates the
// velocity first and the new velocity then moves the body. Each step appends the
// new position to the body's trail.
package physics
