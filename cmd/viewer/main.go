//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"wavesweep/internal/app"
	"wavesweep/internal/pde"
)

func main() {
	p := pde.Default()
	p.Bind(flag.CommandLine)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := p.Validate(); err != nil {
		log.Fatal(err)
	}

	start := func() *pde.Integrator {
		cur, prev := pde.InitialField(p)
		return pde.NewIntegrator(p, pde.Curvature(p), cur, prev, nil)
	}

	game := app.New(start, cfg)

	ebiten.SetWindowTitle("wavesweep viewer")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(p.NY*cfg.Scale, p.NX*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
