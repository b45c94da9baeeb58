package effects

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/portfolio-web/internal/input"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

func TestTypeWriterCycle(t *testing.T) {
	w := NewTypeWriter([]string{"Go", "", "Hé"}, input.NewFlag(true))
	steps := []struct {
		at   int
		want string
	}{
		{0, "G"},
		{50, "G"}, // not due yet
		{100, "Go"},
		{1000, "Go"}, // holding
		{2100, "G"},
		{2150, ""},
		{2200, "H"},
		{2300, "Hé"},
		{4300, "H"},
		{4350, ""},
		{4400, "G"}, // wrapped back to the first text
	}
	for _, s := range steps {
		if got := w.Advance(ms(s.at)); got != s.want {
			t.Fatalf("Advance(+%dms) = %q, want %q", s.at, got, s.want)
		}
	}
}

func TestTypeWriterFreezesWhileDisabled(t *testing.T) {
	flag := input.NewFlag(true)
	w := NewTypeWriter([]string{"abc"}, flag)
	w.Advance(ms(0))
	flag.Set(false)
	for i := 1; i < 20; i++ {
		if got := w.Advance(ms(i * 100)); got != "a" {
			t.Fatalf("Advance while disabled = %q, want %q", got, "a")
		}
	}
	flag.Set(true)
	if got := w.Advance(ms(2000)); got != "ab" {
		t.Fatalf("Advance after re-enable = %q, want %q", got, "ab")
	}
}

func TestTypeWriterNoTexts(t *testing.T) {
	w := NewTypeWriter(nil, input.NewFlag(true))
	if got := w.Advance(ms(0)); got != "" {
		t.Fatalf("Advance() = %q, want empty", got)
	}
}

func TestCounterCountsToTarget(t *testing.T) {
	c := NewCounter("Projects", 50)
	if got := c.Advance(ms(500)); got != 0 {
		t.Fatalf("Advance before Start = %d, want 0", got)
	}
	c.Start(ms(0), true)
	if got := c.Advance(ms(15)); got != 0 {
		t.Fatalf("Advance(+15ms) = %d, want 0", got)
	}
	mid := c.Advance(ms(1000))
	if mid <= 0 || mid >= 50 {
		t.Fatalf("Advance(+1000ms) = %d, want strictly between 0 and 50", mid)
	}
	// 62 steps of 50/125 = 24.8
	if mid != 24 {
		t.Fatalf("Advance(+1000ms) = %d, want 24", mid)
	}
	if got := c.Advance(ms(2100)); got != 50 || !c.Done() {
		t.Fatalf("Advance(+2100ms) = %d done=%v, want 50 done", got, c.Done())
	}
	if got := c.Advance(ms(9000)); got != 50 {
		t.Fatalf("Advance after done = %d, want 50", got)
	}
}

func TestCounterWithoutAnimation(t *testing.T) {
	c := NewCounter("Years", 7)
	c.Start(ms(0), false)
	if c.Value() != 7 || !c.Done() {
		t.Fatalf("Value() = %d done=%v, want 7 done", c.Value(), c.Done())
	}
	c.Start(ms(10), true)
	if c.Value() != 7 {
		t.Fatalf("second Start reset counter to %d", c.Value())
	}
}

func TestCounterMonotonic(t *testing.T) {
	c := NewCounter("Clients", 1000)
	c.Start(ms(0), true)
	prev := 0
	for at := 0; at <= 2500; at += 17 {
		got := c.Advance(ms(at))
		if got < prev || got > 1000 {
			t.Fatalf("Advance(+%dms) = %d after %d", at, got, prev)
		}
		prev = got
	}
	if prev != 1000 {
		t.Fatalf("final value = %d, want 1000", prev)
	}
}

func TestSkillBarSpringsToTarget(t *testing.T) {
	b := NewSkillBar("Go", 85, 60)
	b.Update(ms(0))
	if b.Fill() != 0 {
		t.Fatalf("Fill() before Start = %v, want 0", b.Fill())
	}
	b.Start(ms(0), true)
	b.Update(ms(100))
	if b.Fill() != 0 {
		t.Fatalf("Fill() during start delay = %v, want 0", b.Fill())
	}
	prev := 0.0
	for frame := 0; frame < 240; frame++ {
		b.Update(ms(200 + frame*16))
		if b.Fill() < prev-1e-9 {
			t.Fatalf("frame %d: Fill() went backwards %v -> %v", frame, prev, b.Fill())
		}
		prev = b.Fill()
	}
	if math.Abs(b.Fill()-85) > 0.5 {
		t.Fatalf("Fill() = %v after 4s, want ~85", b.Fill())
	}
}

func TestSkillBarWithoutAnimation(t *testing.T) {
	b := NewSkillBar("Rust", 140, 60)
	b.Start(ms(0), false)
	if b.Fill() != 100 {
		t.Fatalf("Fill() = %v, want clamped 100", b.Fill())
	}
}
