package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func mustBody(t *testing.T, name string, mass float64, pos, vel r2.Vec) *Body {
	t.Helper()
	b, err := NewBody(name, mass, 1, pos, vel)
	require.NoError(t, err)
	return b
}

func TestNewBodyRejectsNonPositiveMass(t *testing.T) {
	for _, m := range []float64{0, -1, math.NaN()} {
		_, err := NewBody("bad", m, 1, r2.Vec{}, r2.Vec{})
		assert.ErrorIs(t, err, ErrNonPositiveMass, "mass %v", m)
	}

	b, err := NewBody("ok", 1e-30, 1, r2.Vec{}, r2.Vec{})
	require.NoError(t, err)
	assert.Equal(t, 1e-30, b.Mass)
}

func TestAttractionMagnitudeAndDirection(t *testing.T) {
	sun := mustBody(t, "sun", 2e30, r2.Vec{}, r2.Vec{})
	earth := mustBody(t, "earth", 6e24, r2.Vec{X: AU}, r2.Vec{})

	f, err := earth.Attraction(sun, 0)
	require.NoError(t, err)

	want := G * 2e30 * 6e24 / (AU * AU)
	assert.InEpsilon(t, want, r2.Norm(f), 1e-12)
	assert.Less(t, f.X, 0.0, "earth is pulled toward the sun")
	assert.InDelta(t, 0, f.Y, want*1e-12)

	back, err := sun.Attraction(earth, 0)
	require.NoError(t, err)
	assert.InEpsilon(t, want, back.X, 1e-12, "equal and opposite")
}

func TestAttractionAlwaysPointsTowardOther(t *testing.T) {
	self := mustBody(t, "self", 1e20, r2.Vec{X: 5, Y: -3}, r2.Vec{})
	for _, p := range []r2.Vec{{X: 100, Y: 0}, {X: -40, Y: 70}, {X: 5, Y: -900}, {X: -1e9, Y: -1e9}} {
		other := mustBody(t, "other", 1e25, p, r2.Vec{})
		f, err := self.Attraction(other, 0)
		require.NoError(t, err)
		assert.Greater(t, r2.Dot(f, r2.Sub(other.Pos, self.Pos)), 0.0, "toward %v", p)
	}
}

func TestAttractionCoincident(t *testing.T) {
	a := mustBody(t, "a", 1, r2.Vec{X: 7, Y: 7}, r2.Vec{})
	b := mustBody(t, "b", 1, r2.Vec{X: 7, Y: 7}, r2.Vec{})

	_, err := a.Attraction(b, 0)
	require.ErrorIs(t, err, ErrCoincidentBodies)
	assert.Contains(t, err.Error(), `"a"`)
	assert.Contains(t, err.Error(), `"b"`)

	f, err := a.Attraction(b, 10)
	require.NoError(t, err)
	assert.InEpsilon(t, G/100, r2.Norm(f), 1e-12, "clamped to the minimum distance")
}

func TestAttractionDoesNotTouchAnchorDistance(t *testing.T) {
	sun := mustBody(t, "sun", 2e30, r2.Vec{}, r2.Vec{})
	sun.Anchor = true
	earth := mustBody(t, "earth", 6e24, r2.Vec{X: AU}, r2.Vec{})

	_, err := earth.Attraction(sun, 0)
	require.NoError(t, err)
	assert.Zero(t, earth.DistanceToAnchor)
}

func TestMeasureAnchor(t *testing.T) {
	sun := mustBody(t, "sun", 2e30, r2.Vec{}, r2.Vec{})
	sun.Anchor = true
	star := mustBody(t, "star", 1e30, r2.Vec{X: 10}, r2.Vec{})
	star.Anchor = true
	earth := mustBody(t, "earth", 6e24, r2.Vec{Y: 4}, r2.Vec{})

	earth.MeasureAnchor([]*Body{sun, earth, star})
	assert.InDelta(t, math.Sqrt(116), earth.DistanceToAnchor, 1e-12, "last anchor wins")

	earth.MeasureAnchor([]*Body{star, sun, earth})
	assert.Equal(t, 4.0, earth.DistanceToAnchor)

	sun.MeasureAnchor([]*Body{sun, earth})
	assert.Zero(t, sun.DistanceToAnchor, "an anchor never measures itself")
}

func TestUpdatePositionSemiImplicit(t *testing.T) {
	sun := mustBody(t, "sun", 2e30, r2.Vec{}, r2.Vec{})
	earth := mustBody(t, "earth", 6e24, r2.Vec{X: AU}, r2.Vec{Y: 30000})
	bodies := []*Body{sun, earth}

	f, err := earth.Attraction(sun, 0)
	require.NoError(t, err)

	p := DefaultParams()
	require.NoError(t, earth.UpdatePosition(bodies, p))

	wantVX := f.X / earth.Mass * Day
	assert.Equal(t, wantVX, earth.Vel.X)
	assert.Equal(t, 30000.0, earth.Vel.Y)
	assert.Equal(t, AU+wantVX*Day, earth.Pos.X, "position uses the updated velocity")
	assert.Equal(t, 30000.0*Day, earth.Pos.Y)
	require.Len(t, earth.Trail, 1)
	assert.Equal(t, earth.Pos, earth.Trail[0])

	assert.Equal(t, r2.Vec{}, sun.Pos, "only the receiver moves")
	assert.Empty(t, sun.Trail)
}

func TestUpdateOrderChangesTrajectory(t *testing.T) {
	sun := mustBody(t, "sun", 2e30, r2.Vec{}, r2.Vec{})
	earth := mustBody(t, "earth", 6e24, r2.Vec{X: AU}, r2.Vec{Y: 29783})

	// forward Euler: position from the old velocity, then velocity
	fwd := earth.Clone()
	f, err := fwd.Attraction(sun, 0)
	require.NoError(t, err)
	fwd.Pos.X += fwd.Vel.X * Day
	fwd.Pos.Y += fwd.Vel.Y * Day
	fwd.Vel.X += f.X / fwd.Mass * Day
	fwd.Vel.Y += f.Y / fwd.Mass * Day

	require.NoError(t, earth.UpdatePosition([]*Body{sun, earth}, DefaultParams()))

	assert.Equal(t, fwd.Vel, earth.Vel, "same velocity after one step")
	assert.NotEqual(t, fwd.Pos, earth.Pos, "velocity must be applied before position")
}

func TestUpdatePositionIdentityNotValue(t *testing.T) {
	a := mustBody(t, "a", 1e24, r2.Vec{X: 1e9}, r2.Vec{})
	twin := a.Clone()
	twin.Pos.X = -1e9

	require.NoError(t, a.UpdatePosition([]*Body{a, twin}, DefaultParams()))
	assert.Less(t, a.Vel.X, 0.0, "a distinct body with equal fields still attracts")
}

func TestUpdatePositionPropagatesCoincidence(t *testing.T) {
	a := mustBody(t, "a", 1, r2.Vec{}, r2.Vec{})
	b := mustBody(t, "b", 1, r2.Vec{}, r2.Vec{})

	err := a.UpdatePosition([]*Body{a, b}, DefaultParams())
	require.ErrorIs(t, err, ErrCoincidentBodies)
	assert.Empty(t, a.Trail, "no partial update")
	assert.Equal(t, r2.Vec{}, a.Vel)
}

func TestTrailLimit(t *testing.T) {
	sun := mustBody(t, "sun", 2e30, r2.Vec{}, r2.Vec{})
	earth := mustBody(t, "earth", 6e24, r2.Vec{X: AU}, r2.Vec{Y: 29783})
	bodies := []*Body{sun, earth}

	p := DefaultParams()
	p.TrailLimit = 3
	var last r2.Vec
	for i := 0; i < 10; i++ {
		require.NoError(t, earth.UpdatePosition(bodies, p))
		last = earth.Pos
	}
	require.Len(t, earth.Trail, 3)
	assert.Equal(t, last, earth.Trail[2], "newest point kept last")

	unbounded := mustBody(t, "moon", 7e22, r2.Vec{X: 2 * AU}, r2.Vec{Y: 20000})
	for i := 0; i < 10; i++ {
		require.NoError(t, unbounded.UpdatePosition(bodies, DefaultParams()))
	}
	assert.Len(t, unbounded.Trail, 10)
}

func TestMomentumAndKineticEnergy(t *testing.T) {
	b := mustBody(t, "b", 2, r2.Vec{}, r2.Vec{X: 3, Y: -4})
	assert.Equal(t, r2.Vec{X: 6, Y: -8}, b.Momentum())
	assert.Equal(t, 25.0, b.KineticEnergy())
}

func TestCloneIsDeep(t *testing.T) {
	b := mustBody(t, "b", 1, r2.Vec{}, r2.Vec{})
	b.Trail = []r2.Vec{{X: 1}}
	c := b.Clone()
	c.Trail[0].X = 99
	c.Pos.X = 5
	assert.Equal(t, 1.0, b.Trail[0].X)
	assert.Zero(t, b.Pos.X)
}
