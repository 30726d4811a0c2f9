package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"orbitcam/game"
	"orbitcam/terminal"
)

func main() {
	configPath := flag.String("config", "", "JSON config file (defaults when empty)")
	seed := flag.Int64("seed", 0, "seed for the initial distribution (0 = from clock)")
	zoom := flag.Float64("zoom", 0.05, "terminal columns per raster unit")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		config.Seed = *seed
	}

	app, err := game.NewApp(config)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = terminal.Run(ctx, screen, app, terminal.Options{Zoom: *zoom})
	stop()
	screen.Fini()

	if err != nil {
		log.Fatal(err)
	}
}
