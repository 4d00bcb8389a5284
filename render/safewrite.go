package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/rs/zerolog/log"
)

// SafeWrite noisily saves the canvas to prefix<hash>-<stamp>ext and returns
// the file name.
func (s Stamp) SafeWrite(ctx *Context, prefix, ext string) (string, error) {
	fname := s.Filename(prefix, ext)
	if err := SafeWrite(ctx, fname); err != nil {
		log.Error().Err(err).Str("file", fname).Msg("problem saving")
		return "", err
	}
	log.Info().Str("file", fname).Msg("saved")
	return fname, nil
}

// SafeWritePreview saves a raster preview next to the canvas output.
func (s Stamp) SafeWritePreview(dc *gg.Context, prefix string) (string, error) {
	fname := s.Filename(prefix, "-preview.png")
	if err := safeWrite(fname, dc.SavePNG); err != nil {
		log.Error().Err(err).Str("file", fname).Msg("problem saving preview")
		return "", err
	}
	log.Info().Str("file", fname).Msg("saved preview")
	return fname, nil
}

// SafeWrite writes the canvas to fname; the extension picks the format.
func SafeWrite(ctx *Context, fname string) error {
	var write func(string) error
	switch ext := filepath.Ext(fname); ext {
	case ".png":
		write = ctx.WritePNG
	case ".svg":
		write = ctx.WriteSVG
	case ".pdf":
		write = ctx.WritePDF
	default:
		return fmt.Errorf("unsupported file format %q", ext)
	}
	return safeWrite(fname, write)
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(fname string, write func(string) error) error {
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}
	// The temp file lives next to fname so the rename stays on one drive.
	tmpfile, err := os.CreateTemp(dir, "pedals.*"+filepath.Ext(fname))
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := write(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents if they are missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
