package game

import (
	"context"
	"math"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/portfolio-web/internal/config"
	"github.com/iburimskiy/portfolio-web/internal/input"
	"github.com/iburimskiy/portfolio-web/internal/loop"
	"github.com/iburimskiy/portfolio-web/internal/particles"
	"github.com/iburimskiy/portfolio-web/internal/web"
)

// Summary describes the state of both fields after a headless run.
type Summary struct {
	WebFrames      uint64
	ParticleFrames uint64
	Nodes          int
	MeanNodeSpeed  float64
	Particles      int
}

// RunHeadless steps both fields frames times without a window, each on its own
// tick chain, with the pointer parked at the canvas centre.
func RunHeadless(ctx context.Context, s config.Settings, frames int, interval time.Duration) (Summary, error) {
	rng := newRand(s.Seed)
	pointer := input.NewPointer(float64(s.Width)/2, float64(s.Height)/2)
	enabled := input.NewFlag(true)

	webField := web.NewField(s.Width, s.Height, s.Nodes, pointer, rng)
	particleField := particles.NewField(s.Width, s.Height, s.Particles, rand.New(rand.NewSource(rng.Int63())))
	webLoop := loop.New("web", webField, enabled)
	particleLoop := loop.New("particles", particleField, enabled)

	eg, gctx := errgroup.WithContext(ctx)
	for _, l := range []*loop.Loop{webLoop, particleLoop} {
		l := l
		eg.Go(func() error {
			return l.Run(gctx, ticks(gctx, interval, frames))
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{
		WebFrames:      webLoop.Frames(),
		ParticleFrames: particleLoop.Frames(),
		Nodes:          len(webField.Nodes()),
		Particles:      len(particleField.Particles()),
	}
	for _, n := range webField.Nodes() {
		sum.MeanNodeSpeed += math.Hypot(n.VX, n.VY)
	}
	if sum.Nodes > 0 {
		sum.MeanNodeSpeed /= float64(sum.Nodes)
	}
	return sum, nil
}

// ticks emits n ticks at interval, then closes.
func ticks(ctx context.Context, interval time.Duration, n int) <-chan time.Time {
	ch := make(chan time.Time)
	go func() {
		defer close(ch)
		t := time.NewTicker(interval)
		defer t.Stop()
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				select {
				case ch <- now:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}
