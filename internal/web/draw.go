package web

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

var webColor = color.NRGBA{R: 0, G: 210, B: 255, A: 255}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp(a, 0, 1) * 255)
	return c
}

// Draw clears dst and renders the links, the pointer hub and the nodes.
// A nil surface or an empty field only clears.
func (f *Field) Draw(dst *ebiten.Image) {
	if dst == nil {
		return
	}
	dst.Clear()
	if len(f.nodes) == 0 {
		return
	}

	px, py := f.pointer.Position()
	for _, l := range f.Links(px, py) {
		vector.StrokeLine(dst, float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
			float32(l.Width), withAlpha(webColor, l.Alpha), true)
	}

	vector.DrawFilledCircle(dst, float32(px), float32(py), config.PointerRadius, withAlpha(webColor, 0.8), true)

	nodeColor := withAlpha(webColor, 0.6)
	for _, n := range f.nodes {
		vector.DrawFilledCircle(dst, float32(n.X), float32(n.Y), float32(n.Radius), nodeColor, true)
	}
}
