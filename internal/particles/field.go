// Package particles renders the ambient background: slow, pointer-independent
// dots that wrap around the canvas edges.
package particles

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Opacity float64
	Color   color.NRGBA
}

type Field struct {
	width, height float64
	particles     []Particle
}

// NewField creates count particles over a width x height canvas.
func NewField(width, height, count int, rng *rand.Rand) *Field {
	f := &Field{}
	f.Resize(width, height)
	for i := 0; i < max(count, 0); i++ {
		hue := rng.Float64()*config.ParticleHueRange + config.ParticleHueBase
		r, g, b := colorful.Hsl(hue, config.ParticleSat, config.ParticleLight).Clamped().RGB255()
		f.particles = append(f.particles, Particle{
			X:       rng.Float64() * f.width,
			Y:       rng.Float64() * f.height,
			VX:      (rng.Float64() - 0.5) * 0.2,
			VY:      (rng.Float64() - 0.5) * 0.2,
			Size:    rng.Float64()*3 + 1,
			Opacity: rng.Float64()*0.5 + 0.2,
			Color:   color.NRGBA{R: r, G: g, B: b, A: 255},
		})
	}
	return f
}

// Resize changes the wrap bounds only; existing particles are kept where they are
// and fold back in on their next crossing.
func (f *Field) Resize(width, height int) {
	f.width = float64(max(width, 0))
	f.height = float64(max(height, 0))
}

func (f *Field) Size() (float64, float64) { return f.width, f.height }

func (f *Field) Particles() []Particle { return f.particles }

// Update moves every particle one frame and wraps each axis toroidally.
func (f *Field) Update() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.X = wrap(p.X, f.width)
		p.Y = wrap(p.Y, f.height)
	}
}

func wrap(v, bound float64) float64 {
	if v < 0 {
		return bound
	}
	if v > bound {
		return 0
	}
	return v
}

// Draw clears dst and paints each particle at its own opacity.
func (f *Field) Draw(dst *ebiten.Image) {
	if dst == nil {
		return
	}
	dst.Clear()
	if f.width == 0 || f.height == 0 {
		return
	}
	for _, p := range f.particles {
		c := p.Color
		c.A = uint8(p.Opacity * 255)
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(p.Size), c, true)
	}
}
