//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"universe-game/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := cfg.World()
	if err != nil {
		log.Fatalf("start run: %v", err)
	}

	game := app.New(world, cfg.Size, world.Seed(), cfg.UseTrails(world), cfg.DrawRadius)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("universe-game: " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
