// Package config reads the application settings from a gcfg (INI-style) file.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/olivierh59500/planetsim-go/camera"
	"github.com/olivierh59500/planetsim-go/physics"
)

// Example is a commented settings file holding the default values
const Example = `# planetsim configuration. Every key is optional; the values shown are the defaults.

[Window]
Width  = 2000
Height = 1200
Title  = Planet Simulation
# Frames per second. One simulation step runs per frame.
TPS    = 60

[Simulation]
# JSON scenario file. Empty uses the built-in solar system.
# Scenario = scenarios/binary.json
# Seconds of simulated time per step.
Timestep    = 86400
# Clamp for the separation of two bodies, in meters. 0 stops the run when two
# bodies meet.
MinDistance = 0
# Keep at most this many trail points per body. 0 keeps everything.
TrailLimit  = 0

[Camera]
PixelsPerAU = 100
ZoomFactor  = 1.1
PanStep     = 10
# world: a click hits a body within Radius meters of it.
# screen: a click hits a body within Radius pixels of it.
PickMode    = world

[Display]
Starfield = true
Stars     = 400
StarSeed  = 1
Labels    = true

[Audio]
# Play a short tone when a body is selected.
Enabled   = false
Frequency = 880

[Terminal]
CellsPerAU = 4
# Log file used while the terminal view owns the screen. Empty discards logs.
# LogFile = planetsim.log
`

// WindowConfig sizes and paces the window
type WindowConfig struct {
	Width, Height int
	Title         string
	TPS           int
}

// SimulationConfig picks the starting bodies and the integration parameters
type SimulationConfig struct {
	Scenario    string
	Timestep    float64
	MinDistance float64
	TrailLimit  int
}

// CameraConfig sets the initial zoom, the zoom and pan steps and how clicks pick bodies
type CameraConfig struct {
	PixelsPerAU float64
	ZoomFactor  float64
	PanStep     float64
	PickMode    string
}

// DisplayConfig toggles the background and labels
type DisplayConfig struct {
	Starfield bool
	Stars     int
	StarSeed  int64
	Labels    bool
}

// AudioConfig controls the selection tone
type AudioConfig struct {
	Enabled   bool
	Frequency float64
}

// TerminalConfig applies to the -tui view only
type TerminalConfig struct {
	CellsPerAU float64
	LogFile    string
}

// Config is the whole settings file
type Config struct {
	Window     WindowConfig
	Simulation SimulationConfig
	Camera     CameraConfig
	Display    DisplayConfig
	Audio      AudioConfig
	Terminal   TerminalConfig
}

// Default returns the settings used when no file is given
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  2000,
			Height: 1200,
			Title:  "Planet Simulation",
			TPS:    60,
		},
		Simulation: SimulationConfig{
			Timestep: physics.Day,
		},
		Camera: CameraConfig{
			PixelsPerAU: 100,
			ZoomFactor:  camera.DefaultZoomFactor,
			PanStep:     camera.DefaultPanStep,
			PickMode:    "world",
		},
		Display: DisplayConfig{
			Starfield: true,
			Stars:     400,
			StarSeed:  1,
			Labels:    true,
		},
		Audio: AudioConfig{
			Frequency: 880,
		},
		Terminal: TerminalConfig{
			CellsPerAU: 4,
		},
	}
}

// Load reads fname over the defaults
func Load(fname string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadFileInto(c, fname); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Parse reads settings from a string over the defaults
func Parse(text string) (*Config, error) {
	c := Default()
	if err := gcfg.ReadStringInto(c, text); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports the first setting that cannot work
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("Window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("Window.TPS = %d: must be positive", c.Window.TPS)
	case !(c.Simulation.Timestep > 0):
		return fmt.Errorf("Simulation.Timestep = %g: must be positive", c.Simulation.Timestep)
	case c.Simulation.MinDistance < 0:
		return fmt.Errorf("Simulation.MinDistance = %g: must not be negative", c.Simulation.MinDistance)
	case c.Simulation.TrailLimit < 0:
		return fmt.Errorf("Simulation.TrailLimit = %d: must not be negative", c.Simulation.TrailLimit)
	case !(c.Camera.PixelsPerAU > 0):
		return fmt.Errorf("Camera.PixelsPerAU = %g: must be positive", c.Camera.PixelsPerAU)
	case !(c.Camera.ZoomFactor > 1):
		return fmt.Errorf("Camera.ZoomFactor = %g: must be greater than 1", c.Camera.ZoomFactor)
	case c.Display.Stars < 0:
		return fmt.Errorf("Display.Stars = %d: must not be negative", c.Display.Stars)
	case c.Audio.Enabled && !(c.Audio.Frequency > 0):
		return fmt.Errorf("Audio.Frequency = %g: must be positive", c.Audio.Frequency)
	case !(c.Terminal.CellsPerAU > 0):
		return fmt.Errorf("Terminal.CellsPerAU = %g: must be positive", c.Terminal.CellsPerAU)
	}
	if _, err := c.Camera.Mode(); err != nil {
		return err
	}
	return nil
}

// Params returns the integration parameters
func (c *Config) Params() physics.Params {
	return physics.Params{
		Timestep:    c.Simulation.Timestep,
		MinDistance: c.Simulation.MinDistance,
		TrailLimit:  c.Simulation.TrailLimit,
	}
}

// Mode parses PickMode
func (cc CameraConfig) Mode() (camera.PickMode, error) {
	switch strings.ToLower(cc.PickMode) {
	case "", "world":
		return camera.PickWorld, nil
	case "screen":
		return camera.PickScreen, nil
	}
	return 0, fmt.Errorf("Camera.PickMode = %q: want world or screen", cc.PickMode)
}

// NewCamera builds a camera for a viewport, with scale given in pixels per AU
func (cc CameraConfig) NewCamera(width, height, pixelsPerAU float64) *camera.Camera {
	cam := camera.New(width, height, pixelsPerAU/physics.AU)
	cam.ZoomFactor = cc.ZoomFactor
	cam.PanStep = cc.PanStep
	cam.PickMode, _ = cc.Mode()
	return cam
}
