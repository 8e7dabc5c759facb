package physics

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/vmath"
)

// Physical constants, SI units
const (
	G   = 6.67428e-11
	AU  = 149.6e6 * 1000 // meters
	Day = 3600 * 24      // seconds
)

// Params tunes a single integration step
type Params struct {
	Timestep    float64 // seconds per step
	MinDistance float64 // pair separations are clamped up to this; 0 rejects coincident bodies
	TrailLimit  int     // oldest trail points beyond this are dropped; 0 keeps all
}

// DefaultParams returns one simulated day per step, no clamping and unbounded trails
func DefaultParams() Params {
	return Params{Timestep: Day}
}

// Body is a massive point. Radius, Color, Name and Selected never affect the physics.
type Body struct {
	Name   string
	Pos    r2.Vec // m
	Vel    r2.Vec // m/s
	Mass   float64
	Radius float64
	Color  color.RGBA

	Anchor           bool
	DistanceToAnchor float64
	Trail            []r2.Vec
	Selected         bool
}

// NewBody creates a body with the given initial state, rejecting non-positive mass
func NewBody(name string, mass, radius float64, pos, vel r2.Vec) (*Body, error) {
	b := &Body{
		Name:   name,
		Pos:    pos,
		Vel:    vel,
		Mass:   mass,
		Radius: radius,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the invariants the integrator relies on
func (b *Body) Validate() error {
	// written as a negation so NaN is rejected too
	if !(b.Mass > 0) {
		return fmt.Errorf("body %q: mass %g: %w", b.Name, b.Mass, ErrNonPositiveMass)
	}
	return nil
}

// Attraction returns the gravitational force other exerts on b, pointing from b toward other.
// A zero separation is an error unless minDistance clamps it.
func (b *Body) Attraction(other *Body, minDistance float64) (r2.Vec, error) {
	theta, d := vmath.Polar(r2.Sub(other.Pos, b.Pos))
	if d < minDistance {
		d = minDistance
	}
	if d == 0 {
		return r2.Vec{}, fmt.Errorf("%q and %q: %w", b.Name, other.Name, ErrCoincidentBodies)
	}

	force := G * b.Mass * other.Mass / (d * d)
	return vmath.FromPolar(theta, force), nil
}

// MeasureAnchor records the distance from b to the anchor body.
// With several anchors the last one in bodies wins; an anchor never measures itself.
func (b *Body) MeasureAnchor(bodies []*Body) {
	for _, other := range bodies {
		if other == b || !other.Anchor {
			continue
		}
		b.DistanceToAnchor = vmath.Distance(b.Pos, other.Pos)
	}
}

// UpdatePosition advances b by one step against every other body.
// Velocity is updated before position (semi-implicit Euler).
func (b *Body) UpdatePosition(bodies []*Body, p Params) error {
	b.MeasureAnchor(bodies)

	var total r2.Vec
	for _, other := range bodies {
		if other == b {
			continue
		}
		f, err := b.Attraction(other, p.MinDistance)
		if err != nil {
			return err
		}
		total = r2.Add(total, f)
	}

	b.Vel.X += total.X / b.Mass * p.Timestep
	b.Vel.Y += total.Y / b.Mass * p.Timestep

	b.Pos.X += b.Vel.X * p.Timestep
	b.Pos.Y += b.Vel.Y * p.Timestep

	b.Trail = append(b.Trail, b.Pos)
	if p.TrailLimit > 0 && len(b.Trail) > p.TrailLimit {
		b.Trail = b.Trail[len(b.Trail)-p.TrailLimit:]
	}
	return nil
}

// Momentum returns m·v
func (b *Body) Momentum() r2.Vec {
	return r2.Scale(b.Mass, b.Vel)
}

// KineticEnergy returns ½·m·|v|²
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.Mass * r2.Dot(b.Vel, b.Vel)
}

// Clone returns a deep copy of b
func (b *Body) Clone() *Body {
	c := *b
	c.Trail = append([]r2.Vec(nil), b.Trail...)
	return &c
}
