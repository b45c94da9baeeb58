package web

import (
	"math"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

// Node is one vertex of the web. Origin is fixed at creation and acts as the
// anchor of the return spring.
type Node struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	OriginX float64
	OriginY float64
}

// attract pulls the node toward the pointer, harder the closer it is.
func (n *Node) attract(px, py float64) {
	dx := px - n.X
	dy := py - n.Y
	d := math.Hypot(dx, dy)
	if d <= 0 || d >= config.AttractionRadius {
		return
	}
	pull := (config.AttractionRadius - d) / config.AttractionRadius * config.AttractionStrength
	n.VX += dx / d * pull
	n.VY += dy / d * pull
}

func (n *Node) spring() {
	n.VX += (n.OriginX - n.X) * config.ReturnForce
	n.VY += (n.OriginY - n.Y) * config.ReturnForce
}

// integrate advances one frame. Velocity is per frame, not per second.
func (n *Node) integrate() {
	n.X += n.VX
	n.Y += n.VY
}

// bounce reflects each axis independently off [0, w] x [0, h].
func (n *Node) bounce(w, h float64) {
	if n.X < 0 || n.X > w {
		n.VX *= config.BounceFactor
		n.X = clamp(n.X, 0, w)
	}
	if n.Y < 0 || n.Y > h {
		n.VY *= config.BounceFactor
		n.Y = clamp(n.Y, 0, h)
	}
}

func (n *Node) damp() {
	n.VX *= config.Friction
	n.VY *= config.Friction
}

// step applies one frame of forces in order: attraction, spring, integration,
// boundary, damping.
func (n *Node) step(px, py, w, h float64) {
	n.attract(px, py)
	n.spring()
	n.integrate()
	n.bounce(w, h)
	n.damp()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
