package effects

import (
	"math"
	"time"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

// Counter counts up to Target in fixed steps over a fixed duration.
type Counter struct {
	Label  string
	Target int

	current   float64
	increment float64
	step      time.Duration
	next      time.Time
	started   bool
	done      bool
}

func NewCounter(label string, target int) *Counter {
	duration := float64(config.CounterMillis)
	return &Counter{
		Label:     label,
		Target:    target,
		increment: float64(target) / (duration / config.CounterStepMillis),
		step:      config.CounterStepMillis * time.Millisecond,
	}
}

// Start begins counting. Only the first call has any effect. Without animation
// the counter jumps straight to its target.
func (c *Counter) Start(now time.Time, animate bool) {
	if c.started {
		return
	}
	c.started = true
	if !animate || c.increment <= 0 {
		c.current = float64(c.Target)
		c.done = true
		return
	}
	c.next = now.Add(c.step)
}

// Advance applies every step due by now and returns the displayed value.
func (c *Counter) Advance(now time.Time) int {
	for c.started && !c.done && !now.Before(c.next) {
		c.current += c.increment
		if c.current >= float64(c.Target) {
			c.current = float64(c.Target)
			c.done = true
		}
		c.next = c.next.Add(c.step)
	}
	return c.Value()
}

func (c *Counter) Value() int { return int(math.Floor(c.current)) }

func (c *Counter) Started() bool { return c.started }

func (c *Counter) Done() bool { return c.done }
