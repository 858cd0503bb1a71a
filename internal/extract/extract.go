// Package extract finds the dominant colors of raster images.
package extract

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/jsvensson/ankh/internal/color"
	"github.com/lucasb-eyer/go-colorful"
)

// MaxSide bounds the image before sampling. Larger images are downscaled
// with a box filter, which keeps bucket proportions intact.
const MaxSide = 256

// alphaCutoff skips pixels that are mostly transparent.
const alphaCutoff = 128

// ErrNoPixels is returned when an image has no opaque pixels to sample.
var ErrNoPixels = errors.New("no opaque pixels")

// Swatch is one dominant color and the share of sampled pixels it covers.
type Swatch struct {
	Value      color.Value
	Percentage float64
}

type bucket struct {
	key     int
	count   int
	r, g, b int
}

// Open decodes the image at path and returns its n dominant colors.
func Open(path string, n int) ([]Swatch, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	return Dominant(img, n)
}

// Dominant returns up to n colors of img, most frequent first. Pixels are
// grouped by quantizing each channel to 16 levels; each swatch is the mean
// of the pixels in its group, so flat areas come back exact.
func Dominant(img image.Image, n int) ([]Swatch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("color count must be positive, got %d", n)
	}

	var px *image.NRGBA
	b := img.Bounds()
	if b.Dx() > MaxSide || b.Dy() > MaxSide {
		px = imaging.Fit(img, MaxSide, MaxSide, imaging.Box)
	} else {
		px = imaging.Clone(img)
	}

	buckets := make(map[int]*bucket)
	total := 0
	for i := 0; i+3 < len(px.Pix); i += 4 {
		r, g, bl, a := int(px.Pix[i]), int(px.Pix[i+1]), int(px.Pix[i+2]), int(px.Pix[i+3])
		if a < alphaCutoff {
			continue
		}
		key := (r>>4)<<8 | (g>>4)<<4 | bl>>4
		bk, ok := buckets[key]
		if !ok {
			bk = &bucket{key: key}
			buckets[key] = bk
		}
		bk.count++
		bk.r += r
		bk.g += g
		bk.b += bl
		total++
	}
	if total == 0 {
		return nil, ErrNoPixels
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, bk := range buckets {
		sorted = append(sorted, bk)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].key < sorted[j].key
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}

	swatches := make([]Swatch, 0, len(sorted))
	for _, bk := range sorted {
		mean := colorful.Color{
			R: float64(bk.r) / float64(bk.count) / 255,
			G: float64(bk.g) / float64(bk.count) / 255,
			B: float64(bk.b) / float64(bk.count) / 255,
		}
		v, err := color.ParseHex(mean.Hex())
		if err != nil {
			return nil, err
		}
		swatches = append(swatches, Swatch{
			Value:      v,
			Percentage: float64(bk.count) * 100 / float64(total),
		})
	}
	return swatches, nil
}

// Values returns the colors of swatches in order.
func Values(swatches []Swatch) []color.Value {
	values := make([]color.Value, len(swatches))
	for i, s := range swatches {
		values[i] = s.Value
	}
	return values
}
