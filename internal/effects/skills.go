package effects

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

// SkillBar eases its fill toward Percent once started.
type SkillBar struct {
	Name    string
	Percent float64

	spring  harmonica.Spring
	pos     float64
	vel     float64
	startAt time.Time
	started bool
}

func NewSkillBar(name string, percent float64, fps int) *SkillBar {
	return &SkillBar{
		Name:    name,
		Percent: clamp(percent, 0, 100),
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Start schedules the fill after the usual short delay, or fills it at once when
// animate is false.
func (b *SkillBar) Start(now time.Time, animate bool) {
	if b.started {
		return
	}
	b.started = true
	if !animate {
		b.pos = b.Percent
		return
	}
	b.startAt = now.Add(config.SkillDelayMillis * time.Millisecond)
}

// Update advances the spring by one frame.
func (b *SkillBar) Update(now time.Time) {
	if !b.started || now.Before(b.startAt) {
		return
	}
	b.pos, b.vel = b.spring.Update(b.pos, b.vel, b.Percent)
}

// Fill is the current fill in percent, clamped to [0, 100].
func (b *SkillBar) Fill() float64 { return clamp(b.pos, 0, 100) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
