package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/syheliel/cupy/array"
	"github.com/syheliel/cupy/backend/cpu"
)

// loadGray decodes a PNG or TIFF file into a grayscale array of shape
// {height, width}. Color inputs are converted through the standard
// grayscale model.
func loadGray(path string, backend *cpu.Backend) (*array.Array[uint8, *cpu.Backend], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// png and tiff register their formats on import.
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]uint8, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			pixels = append(pixels, g.Y)
		}
	}
	return array.FromSlice(pixels, array.Shape{h, w}, backend)
}

// saveGray encodes the array as PNG or TIFF depending on the output
// extension.
func saveGray(path string, a *array.Array[uint8, *cpu.Backend]) error {
	shape := a.Shape()
	h, w := shape[0], shape[1]
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, a.Data())

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format %q (want .png, .tif or .tiff)", filepath.Ext(path))
	}
}

// clampToUint8 converts float64 filter output back to the pixel range with
// rounding.
func clampToUint8(a *array.Array[float64, *cpu.Backend]) *array.Array[uint8, *cpu.Backend] {
	out := array.Zeros[uint8](a.Shape(), a.Backend())
	dst := out.Data()
	for i, v := range a.Data() {
		switch {
		case v < 0:
			dst[i] = 0
		case v > 255:
			dst[i] = 255
		default:
			dst[i] = uint8(v + 0.5)
		}
	}
	return out
}
