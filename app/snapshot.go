package app

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// EncodePNG writes img as PNG, upscaled by an integer factor with
// nearest-neighbour sampling so pixels stay sharp.
func EncodePNG(w io.Writer, img *image.RGBA, scale int) error {
	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		out = dst
	}
	return png.Encode(w, out)
}

// Snapshot returns a hal.HeadlessConfig.Snapshot hook that saves the final
// frame to path.
func Snapshot(path string, scale int) func(*image.RGBA) error {
	return func(img *image.RGBA) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		if err := EncodePNG(f, img, scale); err != nil {
			f.Close()
			return fmt.Errorf("snapshot: %w", err)
		}
		return f.Close()
	}
}
