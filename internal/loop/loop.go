// Package loop drives a Scene once per display tick into a canvas the loop owns.
//
// A loop keeps ticking while its flag is disabled; it just skips the update and
// redraw, so the canvas holds its last frame and resumes on the next enabled tick.
// Only Stop ends a loop.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one independently simulated layer.
type Scene interface {
	Update()
	Draw(dst *ebiten.Image)
	Resize(width, height int)
}

// Flag reports whether per-frame visual mutation is allowed.
type Flag interface {
	Enabled() bool
}

type Loop struct {
	name    string
	scene   Scene
	enabled Flag

	mu        sync.Mutex
	canvas    *ebiten.Image
	newCanvas func(w, h int) *ebiten.Image

	stopped atomic.Bool
	frames  atomic.Uint64
}

// New wraps scene. The canvas is allocated on the first Resize.
func New(name string, scene Scene, enabled Flag) *Loop {
	return &Loop{
		name:      name,
		scene:     scene,
		enabled:   enabled,
		newCanvas: ebiten.NewImage,
	}
}

func (l *Loop) Name() string { return l.name }

// Frames counts ticks that actually updated the scene.
func (l *Loop) Frames() uint64 { return l.frames.Load() }

// Tick runs one update+draw step if the flag allows it. It reports false once the
// loop has been stopped.
func (l *Loop) Tick() bool {
	if l.stopped.Load() {
		return false
	}
	if !l.enabled.Enabled() {
		return true
	}
	l.mu.Lock()
	l.scene.Update()
	l.scene.Draw(l.canvas)
	l.mu.Unlock()
	l.frames.Add(1)
	return true
}

// Composite copies the canvas onto screen.
func (l *Loop) Composite(screen *ebiten.Image) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.canvas == nil || screen == nil {
		return
	}
	screen.DrawImage(l.canvas, nil)
}

// Resize reallocates the canvas at the new viewport size and forwards the size to
// the scene. A zero or negative size leaves the loop without a canvas.
func (l *Loop) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.canvas != nil {
		l.canvas.Deallocate()
		l.canvas = nil
	}
	if width > 0 && height > 0 {
		l.canvas = l.newCanvas(width, height)
	}
	l.scene.Resize(width, height)
}

// Stop ends the loop. It is safe to call more than once.
func (l *Loop) Stop() { l.stopped.Store(true) }

func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Run ticks on every value from ticks until ctx is done, ticks is closed, or the
// loop is stopped.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok || !l.Tick() {
				return nil
			}
		}
	}
}
