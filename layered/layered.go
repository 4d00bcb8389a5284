// Layered draws three rings of pedals lifted onto nested paraboloids,
// seen from above at an angle.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/pedals/config"
	"github.com/scottkirkwood/pedals/logging"
	"github.com/scottkirkwood/pedals/preset"
	"github.com/scottkirkwood/pedals/sketch"
)

// overrides are the flags that change the loaded preset. Only flags given
// on the command line are applied.
type overrides struct {
	fs     *flag.FlagSet
	pedals *int
	elev   *float64
	azim   *float64
}

func registerOverrides(fs *flag.FlagSet) *overrides {
	return &overrides{
		fs:     fs,
		pedals: fs.Int("pedals", 0, "Pedals per layer, keeps the preset's count when unset"),
		elev:   fs.Float64("elev", 0, "Camera elevation in degrees, keeps the preset's when unset"),
		azim:   fs.Float64("azim", 0, "Camera azimuth in degrees, keeps the preset's when unset"),
	}
}

func (o *overrides) apply(p *preset.Preset) {
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pedals":
			for i := range p.Layers {
				p.Layers[i].Pedals = *o.pedals
			}
		case "elev":
			p.View.Elev = *o.elev
		case "azim":
			p.View.Azim = *o.azim
		}
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Unable to read the environment: %v\n", err)
		os.Exit(1)
	}
	flags := sketch.RegisterFlags(flag.CommandLine, cfg)
	over := registerOverrides(flag.CommandLine)
	flag.Parse()
	logging.Setup(flags.LogLevel)

	p, err := flags.Load("layered")
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load preset")
	}
	over.apply(p)

	opts, err := flags.Options("layered")
	if err != nil {
		log.Fatal().Err(err).Msg("bad options")
	}
	if _, err := sketch.Run(p, opts); err != nil {
		log.Fatal().Err(err).Msg("unable to draw")
	}
}
