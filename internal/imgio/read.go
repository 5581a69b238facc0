package imgio

import (
	"fmt"
	"image"
	"os"

	// Register the decoders for the formats datasets are delivered in.
	_ "image/jpeg"
	_ "image/png"

	"github.com/vk/qualbench/internal/quality"
)

// ReadImage decodes the image at path into a raster. Grayscale sources
// become an 8-bit intensity raster; everything else becomes 24-bit RGB.
// The caller attaches the manifest's description label afterwards.
func ReadImage(path string) (*quality.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > 0xffff || h > 0xffff {
		return nil, fmt.Errorf("image %s is %dx%d, exceeds contract maximum of 65535", path, w, h)
	}

	out := &quality.Image{
		Width:      uint16(w),
		Height:     uint16(h),
		Illuminant: quality.IlluminantVisible,
	}

	if gray, ok := src.(*image.Gray); ok {
		out.Depth = 8
		out.Data = make([]byte, 0, w*h)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := gray.Pix[(y-bounds.Min.Y)*gray.Stride:]
			out.Data = append(out.Data, row[:w]...)
		}
		return out, nil
	}

	out.Depth = 24
	out.Data = make([]byte, 0, 3*w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			out.Data = append(out.Data, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return out, nil
}
