package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/planetsim-go/audio"
	"github.com/olivierh59500/planetsim-go/config"
	"github.com/olivierh59500/planetsim-go/simulation"
	"github.com/olivierh59500/planetsim-go/terminal"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup, such as closing the speaker, always happens
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("planetsim", flag.ContinueOnError)
	configPath := fs.String("config", "", "gcfg settings file")
	scenarioPath := fs.String("scenario", "", "JSON scenario file, overrides [Simulation] Scenario")
	tui := fs.Bool("tui", false, "draw in the terminal instead of a window")
	example := fs.Bool("example-config", false, "print a commented settings file and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *example {
		_, err := fmt.Fprint(stdout, config.Example)
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *scenarioPath != "" {
		cfg.Simulation.Scenario = *scenarioPath
	}

	name, bodies, err := simulation.LoadBodies(cfg.Simulation.Scenario)
	if err != nil {
		return err
	}
	sim, err := simulation.New(bodies, cfg.Params())
	if err != nil {
		return err
	}
	log.Printf("Loaded %s: %d bodies, %.0f s per step", name, len(sim.Bodies), sim.Params.Timestep)

	var blip *audio.Blip
	if cfg.Audio.Enabled {
		blip, err = audio.NewBlip(cfg.Audio.Frequency)
		if err != nil {
			log.Printf("Audio disabled: %v", err)
		}
		defer blip.Close()
	}

	if *tui {
		return runTerminal(sim, cfg, blip)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	return ebiten.RunGame(NewGame(sim, cfg, blip))
}

func runTerminal(sim *simulation.Simulation, cfg *config.Config, blip *audio.Blip) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh, err := terminal.Open(sim, cfg, blip)
	if err != nil {
		return err
	}
	return sh.Run(ctx)
}
