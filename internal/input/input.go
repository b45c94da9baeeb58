// Package input holds the process-wide state shared between event handlers and the
// per-frame simulations: the pointer position and the animation-enabled flag.
package input

import (
	"math"
	"sync/atomic"
)

// Pointer is the last known cursor position in viewport pixels.
type Pointer struct {
	x, y atomic.Uint64
}

// NewPointer returns a pointer parked at (x, y), usually the viewport centre.
func NewPointer(x, y float64) *Pointer {
	p := &Pointer{}
	p.Set(x, y)
	return p
}

func (p *Pointer) Set(x, y float64) {
	p.x.Store(math.Float64bits(x))
	p.y.Store(math.Float64bits(y))
}

func (p *Pointer) Position() (float64, float64) {
	return math.Float64frombits(p.x.Load()), math.Float64frombits(p.y.Load())
}

// Flag gates per-frame visual mutation. The zero value is disabled.
type Flag struct {
	on atomic.Bool
}

func NewFlag(enabled bool) *Flag {
	f := &Flag{}
	f.on.Store(enabled)
	return f
}

func (f *Flag) Enabled() bool { return f.on.Load() }

func (f *Flag) Set(enabled bool) { f.on.Store(enabled) }

// Toggle flips the flag and returns the new value.
func (f *Flag) Toggle() bool {
	for {
		old := f.on.Load()
		if f.on.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
