package web

import (
	"math"
	"math/rand"
	"testing"
)

type fixedPointer struct{ x, y float64 }

func (p fixedPointer) Position() (float64, float64) { return p.x, p.y }

func newTestField(w, h, n int, seed int64) *Field {
	return NewField(w, h, n, fixedPointer{float64(w) / 2, float64(h) / 2}, rand.New(rand.NewSource(seed)))
}

func TestNewFieldInitialState(t *testing.T) {
	f := newTestField(800, 600, 80, 1)
	if got := len(f.Nodes()); got != 80 {
		t.Fatalf("len(Nodes()) = %d, want 80", got)
	}
	for i, n := range f.Nodes() {
		if n.X < 0 || n.X >= 800 || n.Y < 0 || n.Y >= 600 {
			t.Fatalf("node %d at (%v, %v) outside canvas", i, n.X, n.Y)
		}
		if n.OriginX != n.X || n.OriginY != n.Y {
			t.Fatalf("node %d origin (%v, %v) != position (%v, %v)", i, n.OriginX, n.OriginY, n.X, n.Y)
		}
		if n.Radius < 1 || n.Radius >= 4 {
			t.Fatalf("node %d radius = %v, want [1, 4)", i, n.Radius)
		}
		for _, v := range []float64{n.VX, n.VY} {
			if v < -0.21 || v >= 0.09+1e-12 {
				t.Fatalf("node %d velocity component %v outside [-0.21, 0.09)", i, v)
			}
		}
	}
}

func TestStepKeepsNodesInBounds(t *testing.T) {
	f := newTestField(800, 600, 80, 7)
	rng := rand.New(rand.NewSource(99))
	for frame := 0; frame < 2000; frame++ {
		// Pointer wanders, including outside the canvas.
		f.Step(rng.Float64()*1000-100, rng.Float64()*800-100)
		for i, n := range f.Nodes() {
			if n.X < 0 || n.X > 800 || n.Y < 0 || n.Y > 600 {
				t.Fatalf("frame %d: node %d escaped to (%v, %v)", frame, i, n.X, n.Y)
			}
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	a := newTestField(640, 480, 80, 3)
	b := newTestField(640, 480, 80, 3)
	for i := 0; i < 100; i++ {
		a.Step(100, 200)
		b.Step(100, 200)
	}
	for i := range a.Nodes() {
		if a.Nodes()[i] != b.Nodes()[i] {
			t.Fatalf("node %d diverged: %+v vs %+v", i, a.Nodes()[i], b.Nodes()[i])
		}
	}
}

func TestDampNeverIncreasesSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		n := Node{VX: rng.NormFloat64() * 10, VY: rng.NormFloat64() * 10}
		vx, vy := n.VX, n.VY
		n.damp()
		if math.Abs(n.VX) > math.Abs(vx) || math.Abs(n.VY) > math.Abs(vy) {
			t.Fatalf("damp() (%v, %v) -> (%v, %v) grew", vx, vy, n.VX, n.VY)
		}
	}
}

func TestAttractOutsideRadiusIsZero(t *testing.T) {
	for _, d := range []float64{300, 300.5, 1000} {
		n := Node{X: 100, Y: 100, VX: 0.25, VY: -0.5}
		n.attract(100+d, 100)
		if n.VX != 0.25 || n.VY != -0.5 {
			t.Fatalf("attract at distance %v changed velocity to (%v, %v)", d, n.VX, n.VY)
		}
	}

	n := Node{X: 100, Y: 100}
	n.attract(250, 100)
	want := (300.0 - 150) / 300 * 0.02
	if math.Abs(n.VX-want) > 1e-12 || n.VY != 0 {
		t.Fatalf("attract at 150 = (%v, %v), want (%v, 0)", n.VX, n.VY, want)
	}
}

func TestSpringAndDampingRegimeBeyondAttraction(t *testing.T) {
	n := Node{X: 10, Y: 20, OriginX: 15, OriginY: 20}
	n.step(700, 500, 800, 600)
	// spring: vx = 5*0.01 = 0.05, x -> 10.05, damping -> 0.049
	if math.Abs(n.X-10.05) > 1e-12 || math.Abs(n.VX-0.049) > 1e-12 || n.VY != 0 {
		t.Fatalf("step() = %+v, want X=10.05 VX=0.049 VY=0", n)
	}
}

func TestPointerOnNodeAtOrigin(t *testing.T) {
	f := &Field{width: 800, height: 600, count: 1, pointer: fixedPointer{400, 300}}
	f.nodes = []Node{{X: 400, Y: 300, OriginX: 400, OriginY: 300, Radius: 2}}
	f.Update()
	n := f.Nodes()[0]
	if n.X != 400 || n.Y != 300 || n.VX != 0 || n.VY != 0 {
		t.Fatalf("after Update() node = %+v, want resting at (400, 300)", n)
	}
	if math.IsNaN(n.VX) || math.IsNaN(n.VY) {
		t.Fatal("zero pointer distance produced NaN velocity")
	}
}

func TestBounceAtLeftEdge(t *testing.T) {
	n := Node{X: 0, Y: 300, VX: -1, OriginX: 0, OriginY: 300}
	n.integrate()
	n.bounce(800, 600)
	if n.X != 0 || math.Abs(n.VX-0.8) > 1e-12 {
		t.Fatalf("bounce() = X %v VX %v, want X 0 VX 0.8", n.X, n.VX)
	}

	n = Node{X: 0, Y: 300, VX: -1, OriginX: 0, OriginY: 300}
	n.step(800, 0, 800, 600)
	if n.X != 0 || math.Abs(n.VX-0.8*0.98) > 1e-12 {
		t.Fatalf("step() = X %v VX %v, want X 0 VX %v", n.X, n.VX, 0.8*0.98)
	}
}

func TestLinkAlphaDecreasing(t *testing.T) {
	prev := math.Inf(1)
	for d := 0.0; d < 150; d += 0.5 {
		a := LinkAlpha(d, 150, 0.4)
		if a >= prev {
			t.Fatalf("LinkAlpha(%v) = %v, not below %v", d, a, prev)
		}
		if a <= 0 || a > 0.4 {
			t.Fatalf("LinkAlpha(%v) = %v, want (0, 0.4]", d, a)
		}
		prev = a
	}
	for _, d := range []float64{150, 151, 1e6} {
		if a := LinkAlpha(d, 150, 0.4); a != 0 {
			t.Fatalf("LinkAlpha(%v) = %v, want 0", d, a)
		}
	}
}

func TestLinksConnectionRadius(t *testing.T) {
	tests := []struct {
		name  string
		gap   float64
		links int
	}{
		{"close", 10, 1},
		{"just inside", 149.9, 1},
		{"at radius", 150, 0},
		{"far", 400, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Field{width: 800, height: 600}
			f.nodes = []Node{{X: 100, Y: 100}, {X: 100 + tt.gap, Y: 100}}
			// Pointer far away so only node-node links appear.
			got := f.Links(10000, 10000)
			if len(got) != tt.links {
				t.Fatalf("len(Links()) = %d, want %d", len(got), tt.links)
			}
			if tt.links == 1 && got[0].Width != 1 {
				t.Fatalf("node link width = %v, want 1", got[0].Width)
			}
		})
	}
}

func TestLinksToPointer(t *testing.T) {
	f := &Field{width: 800, height: 600}
	f.nodes = []Node{{X: 100, Y: 100}}
	got := f.Links(100, 250)
	if len(got) != 1 {
		t.Fatalf("len(Links()) = %d, want 1", len(got))
	}
	l := got[0]
	if l.Width != 2 || l.X2 != 100 || l.Y2 != 250 {
		t.Fatalf("pointer link = %+v", l)
	}
	if want := (200.0 - 150) / 200 * 0.6; math.Abs(l.Alpha-want) > 1e-12 {
		t.Fatalf("pointer link alpha = %v, want %v", l.Alpha, want)
	}
	if got := f.Links(100, 300); len(got) != 0 {
		t.Fatalf("pointer at 200px linked: %+v", got)
	}
}

func TestDegenerateFields(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		n    int
	}{
		{"no nodes", 800, 600, 0},
		{"zero canvas", 0, 0, 80},
		{"negative canvas", -10, 600, 80},
		{"negative count", 800, 600, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(tt.w, tt.h, tt.n, 1)
			if len(f.Nodes()) != 0 {
				t.Fatalf("len(Nodes()) = %d, want 0", len(f.Nodes()))
			}
			f.Update()
			if got := f.Links(0, 0); len(got) != 0 {
				t.Fatalf("Links() = %v, want none", got)
			}
			f.Draw(nil)
		})
	}
}

func TestResizeRegeneratesNodes(t *testing.T) {
	f := newTestField(800, 600, 80, 11)
	before := append([]Node(nil), f.Nodes()...)
	for i := 0; i < 10; i++ {
		f.Step(0, 0)
	}
	f.Resize(200, 100)
	if w, h := f.Size(); w != 200 || h != 100 {
		t.Fatalf("Size() = (%v, %v), want (200, 100)", w, h)
	}
	if len(f.Nodes()) != len(before) {
		t.Fatalf("len(Nodes()) = %d, want %d", len(f.Nodes()), len(before))
	}
	for i, n := range f.Nodes() {
		if n.X > 200 || n.Y > 100 {
			t.Fatalf("node %d at (%v, %v) outside resized canvas", i, n.X, n.Y)
		}
		if n.OriginX != n.X || n.OriginY != n.Y {
			t.Fatalf("node %d not fresh after Resize: %+v", i, n)
		}
	}

	f.Resize(0, 0)
	if len(f.Nodes()) != 0 {
		t.Fatalf("len(Nodes()) = %d after zero resize, want 0", len(f.Nodes()))
	}
	f.Resize(800, 600)
	if len(f.Nodes()) != 80 {
		t.Fatalf("len(Nodes()) = %d after regrow, want 80", len(f.Nodes()))
	}
}
