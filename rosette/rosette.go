// Rosette fills rings of unit pedals in the plane, the flat ancestor of
// the layered flower.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/pedals"
	"github.com/scottkirkwood/pedals/config"
	"github.com/scottkirkwood/pedals/logging"
	"github.com/scottkirkwood/pedals/sketch"
)

var (
	ringsFlag = flag.Int("rings", 0, "Pedals in the outer ring, doubled for each inner ring; 0 keeps the preset")
	phaseFlag = flag.String("phase", "", "alternate, aligned or offset; empty keeps the preset")
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Unable to read the environment: %v\n", err)
		os.Exit(1)
	}
	flags := sketch.RegisterFlags(flag.CommandLine, cfg)
	flag.Parse()
	logging.Setup(flags.LogLevel)

	p, err := flags.Load("rosette")
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load preset")
	}
	p.Flat = true
	if *ringsFlag > 0 {
		n := *ringsFlag
		for i := range p.Layers {
			p.Layers[i].Pedals = n
			n *= 2
		}
	}
	if *phaseFlag != "" {
		if _, err := pedals.ParsePhasePolicy(*phaseFlag); err != nil {
			log.Fatal().Err(err).Msg("bad phase")
		}
		p.Phase = *phaseFlag
	}

	opts, err := flags.Options("rosette")
	if err != nil {
		log.Fatal().Err(err).Msg("bad options")
	}
	if _, err := sketch.Run(p, opts); err != nil {
		log.Fatal().Err(err).Msg("unable to draw")
	}
}
