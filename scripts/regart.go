// This program monitors a folder of TOML presets and redraws any preset
// whose contents change.
package main

import (
	"flag"
	"fmt"
	"hash/crc64"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/scottkirkwood/pedals/config"
	"github.com/scottkirkwood/pedals/logging"
	"github.com/scottkirkwood/pedals/preset"
	"github.com/scottkirkwood/pedals/sketch"
)

var dirFlag = flag.String("dir", ".", "Folder of .toml presets to watch")

var crcTable = crc64.MakeTable(crc64.ECMA)

// watcher remembers the checksum of every preset it has drawn.
type watcher struct {
	flags *sketch.Flags

	mu      sync.Mutex
	fileCrc map[string]uint64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Unable to read the environment: %v\n", err)
		os.Exit(1)
	}
	flags := sketch.RegisterFlags(flag.CommandLine, cfg)
	flag.Parse()
	logging.Setup(flags.LogLevel)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create watcher")
	}
	defer fsw.Close()

	w := &watcher{flags: flags, fileCrc: make(map[string]uint64)}
	folder, err := filepath.Abs(*dirFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("bad folder")
	}
	// Draw everything once so later events only redraw real changes.
	matches, _ := filepath.Glob(filepath.Join(folder, "*.toml"))
	for _, fname := range matches {
		w.redraw(fname)
	}

	// out of the box fsnotify can watch a single file, or a single directory
	if err := fsw.Add(folder); err != nil {
		log.Fatal().Err(err).Str("folder", folder).Msg("problem adding folder watcher")
	}
	log.Info().Str("folder", folder).Msg("monitoring")
	w.watchForEvents(fsw)
}

func (w *watcher) watchForEvents(fsw *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				go w.redraw(event.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("watch error")
		}
	}
}

func (w *watcher) redraw(fname string) {
	if !isPreset(fname) || !w.fileChanged(fname) {
		return
	}
	p, err := preset.Load(fname)
	if err != nil {
		log.Error().Err(err).Msg("unable to load preset")
		return
	}
	prefix := strings.TrimSuffix(filepath.Base(fname), ".toml")
	opts, err := w.flags.Options(prefix)
	if err != nil {
		log.Error().Err(err).Msg("bad options")
		return
	}
	files, err := sketch.Run(p, opts)
	if err != nil {
		log.Error().Err(err).Str("preset", fname).Msg("unable to draw")
		return
	}
	log.Info().Str("preset", fname).Strs("files", files).Msg("redrawn")
}

// Ignore temp files by vim which have only digits
var onlyDigitsRx = regexp.MustCompile(`^\d+$`)

func isPreset(fname string) bool {
	base := filepath.Base(fname)
	return strings.HasSuffix(base, ".toml") && !onlyDigitsRx.MatchString(base) && !strings.HasPrefix(base, ".")
}

func (w *watcher) fileChanged(fname string) bool {
	newChecksum, err := fileChecksum(fname)
	if err != nil {
		log.Warn().Err(err).Str("file", fname).Msg("readfile error")
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if checksum, ok := w.fileCrc[fname]; ok && checksum == newChecksum {
		log.Debug().Str("file", fname).Msg("unchanged")
		return false
	}
	w.fileCrc[fname] = newChecksum
	return true
}

func fileChecksum(fname string) (uint64, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return 0, err
	}
	return crc64.Checksum(data, crcTable), nil
}
