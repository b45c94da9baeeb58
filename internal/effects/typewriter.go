// Package effects holds the small time-driven text and bar animations drawn in the
// overlay: the role typewriter, stat counters and skill bars.
package effects

import (
	"time"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

// Flag reports whether animations may advance.
type Flag interface {
	Enabled() bool
}

// TypeWriter types each text out, holds it, deletes it, and moves to the next.
type TypeWriter struct {
	texts     [][]rune
	textIndex int
	charIndex int
	deleting  bool
	next      time.Time
	shown     string
	enabled   Flag

	TypeSpeed   time.Duration
	DeleteSpeed time.Duration
	Hold        time.Duration
}

func NewTypeWriter(texts []string, enabled Flag) *TypeWriter {
	w := &TypeWriter{
		enabled:     enabled,
		TypeSpeed:   config.TypeSpeedMillis * time.Millisecond,
		DeleteSpeed: config.DeleteSpeedMillis * time.Millisecond,
		Hold:        config.HoldMillis * time.Millisecond,
	}
	for _, t := range texts {
		if t != "" {
			w.texts = append(w.texts, []rune(t))
		}
	}
	return w
}

// Text returns what is currently shown.
func (w *TypeWriter) Text() string { return w.shown }

// Advance performs at most one typing step if its deadline has passed and returns
// the shown text. While disabled the writer freezes in place.
func (w *TypeWriter) Advance(now time.Time) string {
	if len(w.texts) == 0 || !w.enabled.Enabled() || now.Before(w.next) {
		return w.shown
	}

	current := w.texts[w.textIndex]
	if w.deleting {
		w.charIndex--
	} else {
		w.charIndex++
	}
	w.shown = string(current[:w.charIndex])

	delay := w.TypeSpeed
	if w.deleting {
		delay = w.DeleteSpeed
	}
	switch {
	case !w.deleting && w.charIndex == len(current):
		delay = w.Hold
		w.deleting = true
	case w.deleting && w.charIndex == 0:
		w.deleting = false
		w.textIndex = (w.textIndex + 1) % len(w.texts)
	}
	w.next = now.Add(delay)
	return w.shown
}
