package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Icon geometry. The circle box is inset by margin on every side.
const (
	margin      = 2
	maxIconSize = 4096
)

// iconSizes are the sizes the extension manifest refers to.
var iconSizes = []int{16, 32, 48, 128}

var (
	backgroundColor = color.RGBA{66, 133, 244, 255}
	glyphColor      = color.RGBA{255, 255, 255, 255}
)

// ErrInvalidSize is returned for sizes outside 1..maxIconSize.
var ErrInvalidSize = errors.New("invalid icon size")

func main() {
	if err := createIcons(os.Stdout, "."); err != nil {
		fmt.Printf("Error creating icons: %v\n", err)
		os.Exit(1)
	}
}

// createIcons writes icon<size>.png into dir for every entry of iconSizes.
// It stops at the first failure; icons already written are left behind.
func createIcons(w io.Writer, dir string) error {
	for _, size := range iconSizes {
		path := filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
		if err := createIcon(w, size, path); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, "All icons created successfully!")
	return nil
}

func createIcon(w io.Writer, size int, path string) error {
	img, err := drawIcon(size)
	if err != nil {
		return err
	}
	if err := saveImage(path, img); err != nil {
		return err
	}
	fmt.Fprintf(w, "Created %s (%dx%d)\n", path, size, size)
	return nil
}

// drawIcon renders a blue disk with a white left-pointing arrow on a
// transparent size x size canvas.
func drawIcon(size int) (*image.RGBA, error) {
	if size <= 0 || size > maxIconSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	bounds := img.Bounds()

	paintMask(img, ellipseMask(bounds, margin, margin, size-margin, size-margin), backgroundColor)
	paintMask(img, polygonMask(bounds, arrowPoints(size)), glyphColor)

	return img, nil
}

// arrowPoints returns the triangle for the arrow glyph: top right, bottom
// right, then the tip. It is placed relative to the canvas centre, not its
// own centroid, so it sits slightly right of centre.
func arrowPoints(size int) []image.Point {
	half := size / 3 / 2
	cx, cy := size/2, size/2
	return []image.Point{
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy},
	}
}

func saveImage(path string, img image.Image) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
