package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/audio"
	"github.com/olivierh59500/planetsim-go/camera"
	"github.com/olivierh59500/planetsim-go/config"
	"github.com/olivierh59500/planetsim-go/control"
	"github.com/olivierh59500/planetsim-go/frame"
	"github.com/olivierh59500/planetsim-go/physics"
	"github.com/olivierh59500/planetsim-go/simulation"
	"github.com/olivierh59500/planetsim-go/starfield"
)

const (
	trailWidth   = 2
	infoLift     = 20 // pixels between a body's top edge and its info label
	selectedRing = 3
)

var labelColor = color.White

// keyBindings maps keys to actions. The first binding pressed in a tick wins.
var keyBindings = []struct {
	keys   []ebiten.Key
	action control.Action
}{
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, control.ZoomIn},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, control.ZoomOut},
	{[]ebiten.Key{ebiten.KeyP}, control.TogglePause},
	{[]ebiten.Key{ebiten.KeyUp}, control.PanUp},
	{[]ebiten.Key{ebiten.KeyDown}, control.PanDown},
	{[]ebiten.Key{ebiten.KeyLeft}, control.PanLeft},
	{[]ebiten.Key{ebiten.KeyRight}, control.PanRight},
	{[]ebiten.Key{ebiten.KeyN}, control.StepOnce},
	{[]ebiten.Key{ebiten.KeyR}, control.Reset},
}

// Game is the windowed front end
type Game struct {
	sim   *simulation.Simulation
	cam   *camera.Camera
	ctl   *control.Controller
	stars []starfield.Star
	face  text.Face

	width, height int
	labels        bool
}

// NewGame builds the window view over sim. blip may be nil.
func NewGame(sim *simulation.Simulation, cfg *config.Config, blip *audio.Blip) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height
	cam := cfg.Camera.NewCamera(float64(w), float64(h), cfg.Camera.PixelsPerAU)

	g := &Game{
		sim:    sim,
		cam:    cam,
		ctl:    control.New(sim, cam),
		face:   text.NewGoXFace(basicfont.Face7x13),
		width:  w,
		height: h,
		labels: cfg.Display.Labels,
	}
	g.ctl.OnSelect = func(*physics.Body) { blip.Play() }
	if cfg.Display.Starfield {
		g.stars = starfield.Generate(w, h, cfg.Display.Stars, cfg.Display.StarSeed)
	}
	return g
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if err := g.handleInput(); err != nil {
		return err
	}
	return g.sim.Step()
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() error {
	for _, kb := range keyBindings {
		if anyJustPressed(kb.keys) {
			if err := g.ctl.Do(kb.action); err != nil {
				return err
			}
		}
	}

	_, wheelY := ebiten.Wheel()
	g.ctl.Scroll(wheelY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.ctl.Press(r2.Vec{X: float64(mx), Y: float64(my)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.ctl.Release()
	}
	return nil
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, s := range g.stars {
		vector.DrawFilledRect(screen, s.X, s.Y, s.Size, s.Size, s.Color, false)
	}

	w, h := float64(g.width), float64(g.height)
	f := frame.Build(g.sim, g.cam)
	for _, s := range f.Sprites {
		g.drawTrail(screen, s.Trail, s.Color, w, h)
		if !s.Visible(w, h) {
			continue
		}
		cx, cy := float32(s.Center.X), float32(s.Center.Y)
		vector.DrawFilledCircle(screen, cx, cy, float32(s.Radius), s.Color, true)
		if s.Selected {
			vector.StrokeCircle(screen, cx, cy, float32(s.Radius)+selectedRing, 1, labelColor, true)
		}
		if !g.labels {
			continue
		}
		if s.Distance != "" {
			g.drawLabel(screen, s.Distance, s.Center.X, s.Center.Y, true)
		}
		if s.Info != "" {
			g.drawLabel(screen, s.Info, s.Center.X, s.Center.Y-s.Radius-infoLift, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, f.Status, 10, 10)
}

// drawTrail strokes every segment with at least one end inside the viewport
func (g *Game) drawTrail(screen *ebiten.Image, trail []r2.Vec, c color.RGBA, w, h float64) {
	inside := func(p r2.Vec) bool {
		return p.X >= -1 && p.X <= w+1 && p.Y >= -1 && p.Y <= h+1
	}
	for i := 1; i < len(trail); i++ {
		prev, curr := trail[i-1], trail[i]
		if inside(prev) || inside(curr) {
			vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(curr.X), float32(curr.Y), trailWidth, c, true)
		}
	}
}

// drawLabel centres s horizontally on x. With middle set it is also centred on y,
// otherwise y is its top edge.
func (g *Game) drawLabel(screen *ebiten.Image, s string, x, y float64, middle bool) {
	tw, th := text.Measure(s, g.face, 0)
	if middle {
		y -= th / 2
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x-tw/2, y)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, s, g.face, op)
}

// Layout returns the configured window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
