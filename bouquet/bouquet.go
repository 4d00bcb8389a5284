// Bouquet puts the layered flower on a stem with leaves.
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

var (
	stemFlag   = flag.Float64("stem", 0, "Stem length, 0 keeps the preset's")
	leavesFlag = flag.Bool("leaves", true, "Draw the leaves")
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

	p, err := flags.Load("bouquet")
	if err != nil {
		log.Fatal().Err(err).Msg("unable to load preset")
	}
	if *stemFlag > 0 {
		if p.Stem == nil {
			p.Stem = &preset.Stem{Radius: 0.08}
		}
		p.Stem.Length = *stemFlag
	}
	if !*leavesFlag {
		p.Leaves = nil
	}

	opts, err := flags.Options("bouquet")
	if err != nil {
		log.Fatal().Err(err).Msg("bad options")
	}
	if _, err := sketch.Run(p, opts); err != nil {
		log.Fatal().Err(err).Msg("unable to draw")
	}
}
