package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/sound"
	"snake/internal/ui/terminal"
)

func main() {
	opts := app.DefaultOptions()
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	// The terminal owns stdout, so logs go to -log or nowhere.
	closer, err := opts.SetupLogging(io.Discard)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closer.Close()

	if err := run(opts); err != nil {
		log.Printf("Terminal error: %v", err)
		os.Exit(1)
	}
	log.Println("Shutting down...")
}

func run(opts *app.Options) error {
	player := sound.NewPlayer(opts.Mute)
	defer player.Close()

	application, err := app.NewApp(opts, domain.SystemClock{}, player)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	loop := terminal.NewLoop(screen, application)
	if !loop.Renderer().Fits(*domain.NewField(opts.Config.Width, opts.Config.Height)) {
		w, h := screen.Size()
		log.Printf("Terminal %dx%d is smaller than the %dx%d field, edges will be clipped",
			w, h, opts.Config.Width*terminal.CellWidth, opts.Config.Height+1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() error {
		return terminal.PumpEvents(ctx, screen, events)
	})
	g.Go(func() error {
		defer screen.Fini()
		defer cancel()
		return loop.Run(ctx, events)
	})

	return g.Wait()
}
