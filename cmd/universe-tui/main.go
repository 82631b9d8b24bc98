package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"universe-game/internal/app"
	"universe-game/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := cfg.World()
	if err != nil {
		log.Fatalf("start run: %v", err)
	}

	scr, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := scr.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = tui.New(scr, world, cfg.TPS, world.Seed()).Run(ctx)
	scr.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
