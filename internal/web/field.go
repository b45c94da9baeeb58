// Package web simulates and renders the cursor-following "spider web": a fixed set
// of nodes pulled toward the pointer, sprung back to their origins, and linked by
// proximity lines.
package web

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

// PointerSource reports the current pointer position in viewport pixels.
type PointerSource interface {
	Position() (float64, float64)
}

// Link is a line segment to draw, with alpha in [0, 1].
type Link struct {
	X1, Y1 float64
	X2, Y2 float64
	Alpha  float64
	Width  float64
}

// Field owns the node set for one canvas.
type Field struct {
	width, height float64
	count         int
	nodes         []Node
	links         []Link
	pointer       PointerSource
	rng           *rand.Rand
}

// NewField creates count nodes scattered over a width x height canvas.
func NewField(width, height, count int, pointer PointerSource, rng *rand.Rand) *Field {
	f := &Field{
		count:   max(count, 0),
		pointer: pointer,
		rng:     rng,
	}
	f.Resize(width, height)
	return f
}

// Resize adopts new canvas bounds and regenerates every node. Negative sizes are
// treated as zero, and a zero-area canvas holds no nodes.
func (f *Field) Resize(width, height int) {
	f.width = float64(max(width, 0))
	f.height = float64(max(height, 0))
	f.nodes = f.nodes[:0]
	if f.width == 0 || f.height == 0 {
		return
	}
	for i := 0; i < f.count; i++ {
		x := f.rng.Float64() * f.width
		y := f.rng.Float64() * f.height
		f.nodes = append(f.nodes, Node{
			X:       x,
			Y:       y,
			VX:      (f.rng.Float64() - 0.7) * 0.3,
			VY:      (f.rng.Float64() - 0.7) * 0.3,
			Radius:  f.rng.Float64()*3 + 1,
			OriginX: x,
			OriginY: y,
		})
	}
}

func (f *Field) Size() (float64, float64) { return f.width, f.height }

// Nodes exposes the live node slice. Callers must not retain it across Resize.
func (f *Field) Nodes() []Node { return f.nodes }

// Update advances the field one frame using the injected pointer.
func (f *Field) Update() {
	px, py := f.pointer.Position()
	f.Step(px, py)
}

// Step advances every node one frame against a pointer at (px, py).
func (f *Field) Step(px, py float64) {
	for i := range f.nodes {
		f.nodes[i].step(px, py, f.width, f.height)
	}
}

// LinkAlpha is the opacity of a line between points d apart: it falls linearly
// from factor at d=0 to nothing at radius.
func LinkAlpha(d, radius, factor float64) float64 {
	if d >= radius || radius <= 0 {
		return 0
	}
	return (radius - d) / radius * factor
}

// Links lists node-node connections closer than the connection radius, followed
// per node by its pointer connection when closer than the pointer link radius.
// The returned slice is reused by the next call.
func (f *Field) Links(px, py float64) []Link {
	f.links = f.links[:0]
	for i := range f.nodes {
		a := &f.nodes[i]
		for j := i + 1; j < len(f.nodes); j++ {
			b := &f.nodes[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < config.ConnectionRadius {
				f.links = append(f.links, Link{
					X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
					Alpha: LinkAlpha(d, config.ConnectionRadius, config.ConnectionAlpha),
					Width: 1,
				})
			}
		}
		d := math.Hypot(px-a.X, py-a.Y)
		if d < config.PointerLinkRadius {
			f.links = append(f.links, Link{
				X1: a.X, Y1: a.Y, X2: px, Y2: py,
				Alpha: LinkAlpha(d, config.PointerLinkRadius, config.PointerLinkAlpha),
				Width: 2,
			})
		}
	}
	return f.links
}
