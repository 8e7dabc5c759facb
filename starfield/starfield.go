// Package starfield scatters background stars whose density and brightness follow Perlin noise.
package starfield

import (
	"image/color"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"
)

// Noise parameters
const (
	alpha       = 2.0
	beta        = 2.0
	octaves     = 3
	noiseScale  = 0.004 // noise cycles per pixel
	maxAttempts = 20    // rejection-sampling tries per star
)

// Star is one background point in screen pixels
type Star struct {
	X, Y  float32
	Size  float32
	Color color.RGBA
}

// Generate returns count stars over a width x height area. The same seed always gives
// the same field.
func Generate(width, height, count int, seed int64) []Star {
	if width <= 0 || height <= 0 || count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	noise := perlin.NewPerlin(alpha, beta, octaves, seed)

	stars := make([]Star, 0, count)
	for len(stars) < count {
		var x, y, density float64
		// keep the candidate with the highest density among a few tries, so stars cluster
		// along noise ridges without ever stalling
		for i := 0; i < maxAttempts; i++ {
			cx := rng.Float64() * float64(width)
			cy := rng.Float64() * float64(height)
			d := (noise.Noise2D(cx*noiseScale, cy*noiseScale) + 1) / 2
			if i == 0 || d > density {
				x, y, density = cx, cy, d
			}
			if rng.Float64() < d {
				break
			}
		}
		stars = append(stars, newStar(x, y, density, rng))
	}
	return stars
}

func newStar(x, y, density float64, rng *rand.Rand) Star {
	brightness := clamp01(0.35 + 0.65*density*rng.Float64())
	// mostly white with a faint blue or amber tint
	hue := 40.0
	if rng.Intn(2) == 0 {
		hue = 220
	}
	r, g, b := colorful.Hsv(hue, 0.15*rng.Float64(), brightness).Clamped().RGB255()

	size := float32(1)
	if density > 0.7 && rng.Float64() < 0.2 {
		size = 2
	}
	return Star{X: float32(x), Y: float32(y), Size: size, Color: color.RGBA{r, g, b, 255}}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
