package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/automoto/starlancer/config"
	"github.com/automoto/starlancer/game"
	"github.com/automoto/starlancer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configFlag  = flag.String("config", "starlancer.yaml", "YAML file overriding the default configuration")
	modeFlag    = flag.String("mode", "", "Mode to start in (Title, Play, Options)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if err := config.Load(*configFlag); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *modeFlag != "" {
		config.C.InitialMode = *modeFlag
	}
	if *verboseFlag {
		config.Debug.Verbose = true
	}
	if !config.Debug.Verbose {
		log.SetOutput(io.Discard)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	store, err := systems.OpenSettingsStore(config.SettingsMenu.AppName, config.SettingsMenu.StorageKey)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	settings, err := store.Load()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.ApplySettings(settings)

	g := game.New(game.Options{
		Store:    store,
		Settings: settings,
	})

	err = ebiten.RunGame(g)
	g.Release()
	os.Exit(report(os.Stderr, err))
}

// report writes a fatal error to w, which stays live when logging is
// discarded, and returns the process exit code.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
