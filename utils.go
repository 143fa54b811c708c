package main

import (
	"image"
	imgcolor "image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// drawOutlinedEllipse fills the ellipse through the pixel centers of box with
// fill, then strokes the same path in black on top of it. Both corners of box
// are inclusive, so the outline lands on pixels box.Min and box.Max.
func drawOutlinedEllipse(dc *gg.Context, box image.Rectangle, fill imgcolor.RGBA) {
	cx := float64(box.Min.X+box.Max.X)/2 + 0.5
	cy := float64(box.Min.Y+box.Max.Y)/2 + 0.5
	rx := float64(box.Dx()) / 2
	ry := float64(box.Dy()) / 2

	dc.DrawEllipse(cx, cy, rx, ry)
	dc.SetColor(fill)
	dc.FillPreserve()

	dc.SetColor(imgcolor.Black)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()
}

const tempSuffix = ".tmp"

func tempPrefix(base string) string {
	return "." + base + "."
}

// removeStaleTemps deletes temp files a killed run left behind for any of names.
func removeStaleTemps(dir string, names []string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "Failed to list %s", dir)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), tempSuffix) {
			continue
		}
		for _, name := range names {
			if strings.HasPrefix(e.Name(), tempPrefix(name)) {
				if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
					return errors.Wrapf(err, "Failed to remove stale temp file %s", e.Name())
				}
				break
			}
		}
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path and renames it into
// place, so readers see either the old file or the complete new one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, tempPrefix(base)+"*"+tempSuffix)
	if err != nil {
		return errors.Wrap(err, "Failed to create temp file")
	}
	tmp := f.Name()

	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return errors.Wrap(err, "Failed to write temp file")
	}
	if err = f.Sync(); err != nil {
		return errors.Wrap(err, "Failed to sync temp file")
	}
	if err = f.Close(); err != nil {
		return errors.Wrap(err, "Failed to close temp file")
	}
	if err = os.Chmod(tmp, perm); err != nil {
		return errors.Wrap(err, "Failed to chmod temp file")
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "Failed to rename temp file to %s", path)
	}
	return nil
}
