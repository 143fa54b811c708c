package main

import (
	"bytes"
	"image"
	imgcolor "image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	spriteSize   = 50
	outlineWidth = 1

	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// spriteBox is the inclusive pixel box the circle's outline runs along.
var spriteBox = image.Rect(5, 5, 45, 45)

// Sprite describes one placeholder image: the file it is saved as and the
// color its circle is filled with.
type Sprite struct {
	Filename string
	Fill     imgcolor.RGBA
}

// Order matches the game's tile types 1 through 6.
var sprites = []Sprite{
	{Filename: "apple.png", Fill: imgcolor.RGBA{255, 0, 0, 255}},      // Red
	{Filename: "orange.png", Fill: imgcolor.RGBA{255, 165, 0, 255}},   // Orange
	{Filename: "banana.png", Fill: imgcolor.RGBA{255, 255, 0, 255}},   // Yellow
	{Filename: "broccoli.png", Fill: imgcolor.RGBA{0, 255, 0, 255}},   // Green
	{Filename: "eggplant.png", Fill: imgcolor.RGBA{128, 0, 128, 255}}, // Purple
	{Filename: "radish.png", Fill: imgcolor.RGBA{255, 192, 203, 255}}, // Pink
}

// renderSprite draws s on a fresh transparent canvas and returns it PNG-encoded.
func renderSprite(s Sprite) ([]byte, error) {
	dc := gg.NewContext(spriteSize, spriteSize)
	drawOutlinedEllipse(dc, spriteBox, s.Fill)

	buffer := bytes.NewBuffer(nil)
	if err := png.Encode(buffer, dc.Image()); err != nil {
		return nil, errors.Wrapf(err, "Failed to encode %s", s.Filename)
	}
	return buffer.Bytes(), nil
}

// renderAll renders every sprite concurrently. The result at index i belongs
// to list[i].
func renderAll(list []Sprite) ([][]byte, error) {
	encoded := make([][]byte, len(list))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range list {
		i, s := i, s
		g.Go(func() error {
			b, err := renderSprite(s)
			if err != nil {
				return err
			}
			encoded[i] = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return encoded, nil
}

// Generate writes all placeholder sprites into dir, creating it if needed,
// and reports progress to out. The first error aborts the run.
func Generate(dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return errors.Wrapf(err, "Failed to create output directory %s", dir)
	}

	names := make([]string, len(sprites))
	for i, s := range sprites {
		names[i] = s.Filename
	}
	if err := removeStaleTemps(dir, names); err != nil {
		return err
	}

	encoded, err := renderAll(sprites)
	if err != nil {
		return err
	}

	for i, s := range sprites {
		path := filepath.Join(dir, s.Filename)
		if err := writeFileAtomic(path, encoded[i], fileMode); err != nil {
			return errors.Wrapf(err, "Failed to save %s", s.Filename)
		}
		if _, err := green.Fprintf(out, "Created %s\n", s.Filename); err != nil {
			return errors.Wrap(err, "Failed to report progress")
		}
	}

	if _, err := boldGreen.Fprintln(out, "All placeholder sprites created successfully!"); err != nil {
		return errors.Wrap(err, "Failed to report progress")
	}
	return nil
}
