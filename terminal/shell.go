// Package terminal is a text-mode front end drawn with tcell.
// Each cell is treated as two vertical half-cells so orbits keep their shape.
package terminal

import (
	"context"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/planetsim-go/audio"
	"github.com/olivierh59500/planetsim-go/camera"
	"github.com/olivierh59500/planetsim-go/config"
	"github.com/olivierh59500/planetsim-go/control"
	"github.com/olivierh59500/planetsim-go/frame"
	"github.com/olivierh59500/planetsim-go/physics"
	"github.com/olivierh59500/planetsim-go/simulation"
)

const (
	panStep   = 2 // half-cells
	bodyGlyph = '●'
	sunGlyph  = '☼'
	dotGlyph  = '·'

	eventBuffer = 100 // terminal events that may queue between ticks
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Shell owns the terminal while it runs
type Shell struct {
	screen tcell.Screen
	sim    *simulation.Simulation
	cam    *camera.Camera
	ctl    *control.Controller
	blip   *audio.Blip

	tps     int
	labels  bool
	logFile string

	buttons tcell.ButtonMask
}

// Open initialises the terminal. blip may be nil.
func Open(sim *simulation.Simulation, cfg *config.Config, blip *audio.Blip) (*Shell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newShell(screen, sim, cfg, blip), nil
}

func newShell(screen tcell.Screen, sim *simulation.Simulation, cfg *config.Config, blip *audio.Blip) *Shell {
	screen.EnableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	cam := cfg.Camera.NewCamera(float64(w), float64(2*(h-1)), cfg.Terminal.CellsPerAU)
	cam.PanStep = panStep

	t := &Shell{
		screen:  screen,
		sim:     sim,
		cam:     cam,
		ctl:     control.New(sim, cam),
		blip:    blip,
		tps:     cfg.Window.TPS,
		labels:  cfg.Display.Labels,
		logFile: cfg.Terminal.LogFile,
	}
	t.ctl.OnSelect = func(*physics.Body) { t.blip.Play() }
	return t
}

// Run steps and draws until ctx is done, the user quits, or a step fails
func (t *Shell) Run(ctx context.Context) error {
	var reader sync.WaitGroup
	defer reader.Wait()
	defer t.screen.Fini()

	restore, err := t.redirectLog()
	if err != nil {
		return err
	}
	defer restore()

	done := make(chan struct{})
	defer close(done)
	events := forwardEvents(t.screen.PollEvent, done, &reader)

	ticker := time.NewTicker(time.Second / time.Duration(t.tps))
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			quit, err := t.handle(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			if err := t.sim.Step(); err != nil {
				return err
			}
			t.draw()
		}
	}
}

// forwardEvents copies poll results onto a channel until poll returns nil or done is closed.
// wg is released when the reader goroutine exits.
func forwardEvents(poll func() tcell.Event, done <-chan struct{}, wg *sync.WaitGroup) <-chan tcell.Event {
	events := make(chan tcell.Event, eventBuffer)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			ev := poll()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// redirectLog keeps log output off the screen tcell is drawing on
func (t *Shell) redirectLog() (func(), error) {
	prev := log.Writer()
	if t.logFile == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(t.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}

// handle applies one terminal event. It reports whether the user asked to quit.
func (t *Shell) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true, nil
			}
		}
		if err := t.ctl.Do(keyAction(ev)); err != nil {
			return false, err
		}

	case *tcell.EventMouse:
		t.handleMouse(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		t.cam.Resize(float64(w), float64(2*(h-1)))
		t.screen.Sync()
	}
	return false, nil
}

func keyAction(ev *tcell.EventKey) control.Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return control.PanUp
	case tcell.KeyDown:
		return control.PanDown
	case tcell.KeyLeft:
		return control.PanLeft
	case tcell.KeyRight:
		return control.PanRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=':
			return control.ZoomIn
		case '-':
			return control.ZoomOut
		case 'p', 'P':
			return control.TogglePause
		case 'n', 'N':
			return control.StepOnce
		case 'r', 'R':
			return control.Reset
		}
	}
	return control.None
}

func (t *Shell) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	x, y := ev.Position()

	switch {
	case buttons&tcell.WheelUp != 0:
		t.ctl.Scroll(1)
	case buttons&tcell.WheelDown != 0:
		t.ctl.Scroll(-1)
	}

	pressed := buttons&tcell.Button1 != 0
	wasPressed := t.buttons&tcell.Button1 != 0
	switch {
	case pressed && !wasPressed:
		t.ctl.Select(t.bodyAt(x, y))
	case !pressed && wasPressed:
		t.ctl.Release()
	}
	t.buttons = buttons
}

// bodyAt returns the last body drawn in the cell, or nil
func (t *Shell) bodyAt(x, y int) *physics.Body {
	var hit *physics.Body
	for _, b := range t.sim.Bodies {
		cx, cy := cell(t.cam.WorldToScreen(b.Pos))
		if cx == x && cy == y {
			hit = b
		}
	}
	return hit
}

// cell maps half-cell screen coordinates to a terminal cell
func cell(p r2.Vec) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / 2))
}

func (t *Shell) draw() {
	w, h := t.screen.Size()
	t.screen.Clear()

	f := frame.Build(t.sim, t.cam)
	inside := func(x, y int) bool { return x >= 0 && x < w && y >= 0 && y < h-1 }

	for _, s := range f.Sprites {
		style := tcell.StyleDefault.Foreground(rgb(s.Color)).Dim(true)
		for _, p := range s.Trail {
			if x, y := cell(p); inside(x, y) {
				t.screen.SetContent(x, y, dotGlyph, nil, style)
			}
		}
	}

	for _, s := range f.Sprites {
		x, y := cell(s.Center)
		if !inside(x, y) {
			continue
		}
		glyph := bodyGlyph
		if s.Anchor {
			glyph = sunGlyph
		}
		style := tcell.StyleDefault.Foreground(rgb(s.Color))
		if s.Selected {
			style = style.Reverse(true)
		}
		t.screen.SetContent(x, y, glyph, nil, style)

		if t.labels && s.Info != "" {
			t.text(x+2, y, w, s.Info, labelStyle)
		}
	}

	for x := 0; x < w; x++ {
		t.screen.SetContent(x, h-1, ' ', nil, statusStyle)
	}
	t.text(0, h-1, w, f.Status+" | arrows pan, +/- zoom, p pause, n step, r reset, q quit", statusStyle)
	t.screen.Show()
}

func (t *Shell) text(x, y, w int, s string, style tcell.Style) {
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
