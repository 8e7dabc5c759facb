package simulation

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/physics"
)

// defaultBodyColor is used when a scenario body has no color
var defaultBodyColor = color.RGBA{200, 200, 255, 255}

// Scenario is a startup table of bodies read from JSON
type Scenario struct {
	Name   string       `json:"name"`
	Bodies []BodyConfig `json:"bodies"`
}

// BodyConfig describes one body. Positions are in AU, velocities in m/s.
type BodyConfig struct {
	Name       string     `json:"name"`
	Mass       float64    `json:"mass"`
	Radius     float64    `json:"radius"`
	Color      string     `json:"color,omitempty"`
	PositionAU [2]float64 `json:"position_au"`
	Velocity   [2]float64 `json:"velocity"`
	Anchor     bool       `json:"anchor,omitempty"`
}

// LoadScenario reads a scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// LoadBodies builds the scenario at path, or the built-in solar system when path is empty
func LoadBodies(path string) (string, []*physics.Body, error) {
	if path == "" {
		return SolarSystemName, SolarSystem(), nil
	}
	sc, err := LoadScenario(path)
	if err != nil {
		return "", nil, err
	}
	bodies, err := sc.Build()
	if err != nil {
		return "", nil, err
	}
	return sc.Name, bodies, nil
}

// ParseScenario decodes and checks a scenario document
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Bodies) == 0 {
		return nil, fmt.Errorf("scenario %q has no bodies", sc.Name)
	}
	if _, err := sc.Build(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Build creates fresh bodies from the scenario
func (sc *Scenario) Build() ([]*physics.Body, error) {
	bodies := make([]*physics.Body, 0, len(sc.Bodies))
	for i, bc := range sc.Bodies {
		b, err := physics.NewBody(bc.Name, bc.Mass, bc.Radius,
			r2.Vec{X: bc.PositionAU[0] * physics.AU, Y: bc.PositionAU[1] * physics.AU},
			r2.Vec{X: bc.Velocity[0], Y: bc.Velocity[1]})
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		b.Anchor = bc.Anchor
		b.Color, err = parseColor(bc.Color)
		if err != nil {
			return nil, fmt.Errorf("body %d (%s): %w", i, bc.Name, err)
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

// parseColor turns "#rrggbb" into an opaque color
func parseColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return defaultBodyColor, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
