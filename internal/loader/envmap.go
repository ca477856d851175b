package loader

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	perlin "github.com/aquilax/go-perlin"
)

// EnvMapOptions controls the procedural environment map used when no image is
// available on disk.
type EnvMapOptions struct {
	Width     int
	Height    int
	Seed      int64
	StarRatio float64 // fraction of texels that become stars
}

func DefaultEnvMapOptions() EnvMapOptions {
	return EnvMapOptions{
		Width:     1024,
		Height:    512,
		Seed:      566,
		StarRatio: 0.002,
	}
}

// GenerateEnvMap renders an equirectangular deep-space backdrop: a dim nebula
// from 3D Perlin noise sampled on the unit sphere plus scattered stars. The
// output depends only on the options.
func GenerateEnvMap(opts EnvMapOptions) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultEnvMapOptions().Width, DefaultEnvMapOptions().Height
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	p := perlin.NewPerlin(2, 2, 4, opts.Seed)
	rng := rand.New(rand.NewSource(opts.Seed))

	for y := 0; y < opts.Height; y++ {
		lat := math.Pi * (0.5 - (float64(y)+0.5)/float64(opts.Height))
		for x := 0; x < opts.Width; x++ {
			lon := 2*math.Pi*(float64(x)+0.5)/float64(opts.Width) - math.Pi
			dx := math.Cos(lat) * math.Cos(lon)
			dy := math.Sin(lat)
			dz := math.Cos(lat) * math.Sin(lon)

			n := p.Noise3D(dx*2.5, dy*2.5, dz*2.5)*0.5 + 0.5
			n = math.Pow(clamp01(n), 3)

			r := 0.02 + 0.18*n
			g := 0.02 + 0.06*n
			b := 0.05 + 0.25*n

			if rng.Float64() < opts.StarRatio {
				s := 0.6 + 0.4*rng.Float64()
				r, g, b = s, s, s*0.95
			}
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(clamp01(r) * 255),
				G: uint8(clamp01(g) * 255),
				B: uint8(clamp01(b) * 255),
				A: 255,
			})
		}
	}
	return img
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
