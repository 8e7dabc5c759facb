package simulation

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/physics"
)

var (
	yellow    = color.RGBA{255, 255, 0, 255}
	blue      = color.RGBA{100, 149, 237, 255}
	red       = color.RGBA{188, 39, 50, 255}
	darkGrey  = color.RGBA{80, 78, 81, 255}
	brown     = color.RGBA{139, 69, 19, 255}
	orange    = color.RGBA{255, 165, 0, 255}
	lightBlue = color.RGBA{173, 216, 230, 255}
	white     = color.RGBA{255, 255, 255, 255}
)

// SolarSystemName is the scenario name of the built-in seed table
const SolarSystemName = "Solar System"

// SolarSystem returns the sun and the eight planets, each placed on the +X axis
// with a purely tangential velocity. The sun comes last so it is drawn on top.
// Mercury and Venus start with negative y velocity and orbit the other way round.
func SolarSystem() []*physics.Body {
	return []*physics.Body{
		{Name: "Mercury", Pos: r2.Vec{X: 0.387 * physics.AU}, Vel: r2.Vec{Y: -47.4 * 1000}, Mass: 3.30e23, Radius: 6, Color: darkGrey},
		{Name: "Venus", Pos: r2.Vec{X: 0.723 * physics.AU}, Vel: r2.Vec{Y: -35.02 * 1000}, Mass: 4.8685e24, Radius: 12, Color: white},
		{Name: "Earth", Pos: r2.Vec{X: 1 * physics.AU}, Vel: r2.Vec{Y: 29.783 * 1000}, Mass: 5.9742e24, Radius: 16, Color: blue},
		{Name: "Mars", Pos: r2.Vec{X: 1.524 * physics.AU}, Vel: r2.Vec{Y: 24.077 * 1000}, Mass: 6.39e23, Radius: 12, Color: red},
		{Name: "Jupiter", Pos: r2.Vec{X: 5.203 * physics.AU}, Vel: r2.Vec{Y: 13.07 * 1000}, Mass: 1.898e27, Radius: 70, Color: orange},
		{Name: "Saturn", Pos: r2.Vec{X: 9.537 * physics.AU}, Vel: r2.Vec{Y: 9.69 * 1000}, Mass: 5.683e26, Radius: 60, Color: brown},
		{Name: "Uranus", Pos: r2.Vec{X: 19.191 * physics.AU}, Vel: r2.Vec{Y: 6.81 * 1000}, Mass: 8.681e25, Radius: 25, Color: lightBlue},
		{Name: "Neptune", Pos: r2.Vec{X: 30.068 * physics.AU}, Vel: r2.Vec{Y: 5.43 * 1000}, Mass: 1.024e26, Radius: 24, Color: blue},
		{Name: "Sun", Mass: 1.98892e30, Radius: 20, Color: yellow, Anchor: true},
	}
}
