package sketch

import (
	"flag"
	"strings"

	"github.com/scottkirkwood/pedals/config"
	"github.com/scottkirkwood/pedals/preset"
	"github.com/scottkirkwood/pedals/render"
)

// Flags are the command line options every artwork understands. Their
// defaults come from the environment.
type Flags struct {
	Preset   string
	OutDir   string
	Format   string
	Stamp    string
	LogLevel string
	Preview  bool
	cfg      config.Config
}

// RegisterFlags defines the shared flags on fs.
func RegisterFlags(fs *flag.FlagSet, cfg *config.Config) *Flags {
	f := &Flags{cfg: *cfg}
	fs.StringVar(&f.Preset, "preset", "", "TOML preset file or built-in preset name")
	fs.StringVar(&f.OutDir, "out", cfg.OutDir, "Folder to write to")
	fs.StringVar(&f.Format, "format", cfg.Format, "Output format: png, svg or pdf")
	fs.StringVar(&f.Stamp, "stamp", "", "Hex stamp to reuse in the file name")
	fs.StringVar(&f.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn, error or none")
	fs.BoolVar(&f.Preview, "preview", cfg.Preview, "Also write a quick raster preview")
	return f
}

// Load returns the preset named by -preset, or the built-in def.
// A value ending in .toml is read from disk.
func (f *Flags) Load(def string) (*preset.Preset, error) {
	name := f.Preset
	if name == "" {
		name = def
	}
	if strings.HasSuffix(name, ".toml") {
		return preset.Load(name)
	}
	return preset.Named(name)
}

// Options resolves the output settings, with prefix starting every file name.
func (f *Flags) Options(prefix string) (Options, error) {
	cfg := f.cfg
	cfg.Format = f.Format
	ext, err := cfg.Ext()
	if err != nil {
		return Options{}, err
	}
	stamp := render.NewStamp()
	if f.Stamp != "" {
		if stamp, err = render.ParseStamp(f.Stamp); err != nil {
			return Options{}, err
		}
	}
	return Options{
		OutDir:  f.OutDir,
		Prefix:  prefix,
		Ext:     ext,
		Preview: f.Preview,
		Stamp:   stamp,
	}, nil
}
