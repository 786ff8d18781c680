package main

import (
	"flag"
	"log"
	"os"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/sound"
	"snake/internal/ui/graphics"
	"snake/internal/ui/types"
)

func main() {
	opts := app.DefaultOptions()
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	closer, err := opts.SetupLogging(os.Stderr)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closer.Close()

	fonts, err := types.LoadFonts(opts.FontPath, types.TitleSize)
	if err != nil {
		log.Printf("Font unavailable, using built-in bitmap face: %v", err)
	}

	player := sound.NewPlayer(opts.Mute)
	defer player.Close()

	application, err := app.NewApp(opts, domain.SystemClock{}, player)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	engine := graphics.NewEngine(application, fonts)
	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	log.Println("Shutting down...")
}
