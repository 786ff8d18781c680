package app

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"snake/internal/domain"
)

type Options struct {
	Config   *domain.GameConfig
	Seed     int64
	FontPath string
	Mute     bool
	LogFile  string
}

func DefaultOptions() *Options {
	return &Options{
		Config: domain.DefaultGameConfig(),
	}
}

// BindFlags registers the layout and front-end flags. Apple count, tick
// interval and restart delay stay at their defaults.
func (o *Options) BindFlags(fs *flag.FlagSet) {
	c := o.Config
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.StartX, "start-x", c.StartX, "starting column of the snake")
	fs.IntVar(&c.StartY, "start-y", c.StartY, "starting row of the snake")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "random seed (0 = time based)")
	fs.StringVar(&o.FontPath, "font", o.FontPath, "TTF font for the game over message (default: built-in Go Regular)")
	fs.BoolVar(&o.Mute, "mute", o.Mute, "disable sound")
	fs.StringVar(&o.LogFile, "log", o.LogFile, "write logs to this file")
}

// ResolvedSeed returns Seed, or a time based seed when Seed is zero.
func (o *Options) ResolvedSeed() int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return time.Now().UnixNano()
}

// SetupLogging points the standard logger at LogFile, or at fallback when
// no file is set. The returned closer must be called on exit.
func (o *Options) SetupLogging(fallback io.Writer) (io.Closer, error) {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if o.LogFile == "" {
		log.SetOutput(fallback)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
