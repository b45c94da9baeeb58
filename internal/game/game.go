package game

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-web/internal/config"
	"github.com/iburimskiy/portfolio-web/internal/contact"
	"github.com/iburimskiy/portfolio-web/internal/effects"
	"github.com/iburimskiy/portfolio-web/internal/input"
	"github.com/iburimskiy/portfolio-web/internal/loop"
	"github.com/iburimskiy/portfolio-web/internal/particles"
	"github.com/iburimskiy/portfolio-web/internal/portfolio"
	"github.com/iburimskiy/portfolio-web/internal/web"
)

var (
	background = color.NRGBA{R: 10, G: 10, B: 15, A: 255}
	barTrack   = color.NRGBA{R: 30, G: 40, B: 55, A: 200}
	barFill    = color.NRGBA{R: 0, G: 210, B: 255, A: 220}
)

var defaultCounters = []struct {
	label  string
	target int
}{
	{"Projects", 25},
	{"Years", 3},
	{"Technologies", 15},
	{"Certificates", 4},
}

var defaultSkills = []struct {
	name    string
	percent float64
}{
	{"Go", 90},
	{"JavaScript", 85},
	{"Python", 80},
	{"Linux", 75},
}

// Game is the ebiten.Game driving both background layers and the overlay.
type Game struct {
	ctx      context.Context
	settings config.Settings

	pointer *input.Pointer
	enabled *input.Flag

	webLoop      *loop.Loop
	particleLoop *loop.Loop

	typer    *effects.TypeWriter
	counters []*effects.Counter
	skills   []*effects.SkillBar
	filter   *portfolio.Cycler
	contact  *contact.Flow

	width, height int
	started       bool
	now           func() time.Time
}

func New(ctx context.Context, s config.Settings) *Game {
	rng := newRand(s.Seed)
	pointer := input.NewPointer(float64(s.Width)/2, float64(s.Height)/2)
	enabled := input.NewFlag(!s.ReducedMotion)

	webField := web.NewField(s.Width, s.Height, s.Nodes, pointer, rng)
	particleField := particles.NewField(s.Width, s.Height, s.Particles, rand.New(rand.NewSource(rng.Int63())))

	var sound contact.Sounder
	if s.Sound {
		sound = &contact.Chime{}
	}

	g := &Game{
		ctx:          ctx,
		settings:     s,
		pointer:      pointer,
		enabled:      enabled,
		webLoop:      loop.New("web", webField, enabled),
		particleLoop: loop.New("particles", particleField, enabled),
		typer:        effects.NewTypeWriter(s.Roles, enabled),
		filter:       portfolio.NewCycler(portfolio.DefaultItems),
		contact:      contact.NewFlow(contact.Desktop{}, contact.NewSubmitter(), sound),
		now:          time.Now,
	}
	for _, c := range defaultCounters {
		g.counters = append(g.counters, effects.NewCounter(c.label, c.target))
	}
	for _, sk := range defaultSkills {
		g.skills = append(g.skills, effects.NewSkillBar(sk.name, sk.percent, ebiten.TPS()))
	}
	return g
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		g.stop()
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.pointer.Set(float64(mouseX), float64(mouseY))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.stop()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		log.Printf("animations enabled: %v", g.enabled.Toggle())
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		log.Printf("portfolio filter: %s", g.filter.Next())
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if !g.contact.Start(g.ctx) {
			log.Printf("contact form already open")
		}
	}

	g.webLoop.Tick()
	g.particleLoop.Tick()

	now := g.now()
	if !g.started {
		g.started = true
		animate := g.enabled.Enabled()
		for _, c := range g.counters {
			c.Start(now, animate)
		}
		for _, sk := range g.skills {
			sk.Start(now, animate)
		}
	}
	g.typer.Advance(now)
	for _, c := range g.counters {
		c.Advance(now)
	}
	for _, sk := range g.skills {
		sk.Update(now)
	}
	return nil
}

func (g *Game) stop() {
	for _, l := range []*loop.Loop{g.webLoop, g.particleLoop} {
		l.Stop()
		log.Printf("%s loop stopped after %d frames", l.Name(), l.Frames())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.particleLoop.Composite(screen)
	g.webLoop.Composite(screen)
	g.drawOverlay(screen)
}

// Layout tracks the window size; a change regenerates the web and rebounds the
// particles.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.webLoop.Resize(outsideWidth, outsideHeight)
		g.particleLoop.Resize(outsideWidth, outsideHeight)
		log.Printf("viewport resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "> "+g.typer.Text()+"_", 24, 24)
	ebitenutil.DebugPrintAt(screen, formatClock(g.now()), g.width-90, 24)

	var stats []string
	for _, c := range g.counters {
		stats = append(stats, fmt.Sprintf("%s %d", c.Label, c.Value()))
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(stats, "   "), 24, 56)

	const barWidth, barHeight = 200, 8
	y := 90
	for _, sk := range g.skills {
		ebitenutil.DebugPrintAt(screen, sk.Name, 24, y)
		vector.DrawFilledRect(screen, 120, float32(y+4), barWidth, barHeight, barTrack, false)
		fill := clamp01(sk.Fill() / 100)
		vector.DrawFilledRect(screen, 120, float32(y+4), float32(fill*barWidth), barHeight, barFill, false)
		y += 20
	}

	y += 10
	ebitenutil.DebugPrintAt(screen, "Projects ["+g.filter.Current()+"]", 24, y)
	for _, it := range portfolio.Filter(portfolio.DefaultItems, g.filter.Current()) {
		y += 16
		ebitenutil.DebugPrintAt(screen, "  "+it.Title, 24, y)
	}

	status := "Contact: " + g.contact.State().String()
	if !g.enabled.Enabled() {
		status += " | animations paused"
	}
	ebitenutil.DebugPrintAt(screen, status, 24, g.height-40)
	ebitenutil.DebugPrintAt(screen, "M: motion  F: filter  C: contact  Esc/Q: quit", 24, g.height-24)
}
