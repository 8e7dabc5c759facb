// Package simulation owns a set of bodies and advances them one fixed step per tick.
package simulation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/physics"
	"github.com/olivierh59500/planetsim-go/vmath"
)

// Simulation holds the game state. It is the only owner of Bodies.
type Simulation struct {
	Bodies []*physics.Body
	Params physics.Params
	Paused bool
	Steps  int

	initial []*physics.Body
}

// New creates a simulation over bodies, which it takes ownership of
func New(bodies []*physics.Body, p physics.Params) (*Simulation, error) {
	if !(p.Timestep > 0) {
		return nil, fmt.Errorf("timestep %g: must be positive", p.Timestep)
	}
	if p.MinDistance < 0 || p.TrailLimit < 0 {
		return nil, errors.New("min distance and trail limit must not be negative")
	}

	for i, b := range bodies {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		if p.MinDistance > 0 {
			continue
		}
		for _, other := range bodies[:i] {
			if other.Pos == b.Pos {
				return nil, fmt.Errorf("%q and %q start at %v: %w", other.Name, b.Name, b.Pos, physics.ErrCoincidentBodies)
			}
		}
	}

	s := &Simulation{
		Bodies:  bodies,
		Params:  p,
		initial: make([]*physics.Body, len(bodies)),
	}
	for i, b := range bodies {
		s.initial[i] = b.Clone()
	}
	return s, nil
}

// Step advances the simulation by one tick unless paused
func (s *Simulation) Step() error {
	if s.Paused {
		return nil
	}
	return s.Advance()
}

// Advance runs one integration pass regardless of the pause flag.
// Bodies are updated in order, so later bodies see the already moved earlier ones.
// A failure stops the pass at the failing body: bodies before it keep their new
// position and trail point, and Steps is not incremented.
func (s *Simulation) Advance() error {
	for _, b := range s.Bodies {
		if err := b.UpdatePosition(s.Bodies, s.Params); err != nil {
			return fmt.Errorf("step %d: %w", s.Steps+1, err)
		}
	}
	s.Steps++
	return nil
}

// TogglePause flips the pause flag
func (s *Simulation) TogglePause() {
	s.Paused = !s.Paused
}

// Reset restores every body to its startup state. The pause flag is kept.
func (s *Simulation) Reset() {
	for i, b := range s.initial {
		*s.Bodies[i] = *b.Clone()
	}
	s.Steps = 0
}

// Anchor returns the last anchor body, or nil
func (s *Simulation) Anchor() *physics.Body {
	var anchor *physics.Body
	for _, b := range s.Bodies {
		if b.Anchor {
			anchor = b
		}
	}
	return anchor
}

// Seconds returns the simulated time in seconds
func (s *Simulation) Seconds() float64 {
	return float64(s.Steps) * s.Params.Timestep
}

// Days returns the simulated time in days
func (s *Simulation) Days() float64 {
	return s.Seconds() / physics.Day
}

// Elapsed returns the simulated time, saturating at the largest Duration
// (about 292 years, or 106751 one-day steps)
func (s *Simulation) Elapsed() time.Duration {
	ns := s.Seconds() * float64(time.Second)
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(ns)
}

// Momentum returns the total momentum of the system
func (s *Simulation) Momentum() r2.Vec {
	var p r2.Vec
	for _, b := range s.Bodies {
		p = r2.Add(p, b.Momentum())
	}
	return p
}

// Energy returns kinetic plus pairwise gravitational potential energy
func (s *Simulation) Energy() float64 {
	var e float64
	for i, a := range s.Bodies {
		e += a.KineticEnergy()
		for _, b := range s.Bodies[i+1:] {
			d := vmath.Distance(a.Pos, b.Pos)
			if d < s.Params.MinDistance {
				d = s.Params.MinDistance
			}
			e -= physics.G * a.Mass * b.Mass / d
		}
	}
	return e
}
