package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"orbitcam/game"
	"orbitcam/screen"
)

func main() {
	configPath := flag.String("config", "", "JSON config file (defaults when empty)")
	seed := flag.Int64("seed", 0, "seed for the initial distribution (0 = from clock)")
	wrap := flag.Bool("wrap", false, "fold bodies leaving the world square back in")
	profileDir := flag.String("profile-dir", "", "capture CPU profile and trace here on FPS drops")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.Seed = *seed
		case "wrap":
			config.Wrap = *wrap
		case "profile-dir":
			config.ProfileDir = *profileDir
		}
	})

	app, err := game.NewApp(config)
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	if config.ProfileDir != "" {
		profiler, err := game.NewProfiler(config.ProfileDir, 5*time.Second)
		if err != nil {
			log.Fatalf("Failed to create profiler: %v", err)
		}
		app.SetProfiler(profiler)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("orbitcam")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TPS)

	log.Printf("Starting with %d bodies, seed %d", app.Stats().Bodies, app.Stats().Seed)

	if err := ebiten.RunGame(screen.NewGame(app, game.SystemTime{})); err != nil {
		log.Fatal(err)
	}
}
