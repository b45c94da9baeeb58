package contact

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const chimeRate = beep.SampleRate(44100)

// Chime plays a short two-note cue on the default audio device.
type Chime struct {
	once    sync.Once
	initErr error
}

func (c *Chime) Play() error {
	c.once.Do(func() {
		c.initErr = speaker.Init(chimeRate, chimeRate.N(time.Second/20))
	})
	if c.initErr != nil {
		return c.initErr
	}
	speaker.Play(&effects.Volume{
		Streamer: chimeStreamer(chimeRate),
		Base:     2,
		Volume:   -1,
	})
	return nil
}

func chimeStreamer(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(sr, 1318.5, 120*time.Millisecond),
		tone(sr, 1760.0, 240*time.Millisecond),
	)
}

// tone is a sine at freq with an exponential decay, ending after d.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			v := 0.4 * math.Exp(-5*t/d.Seconds()) * math.Sin(2*math.Pi*freq*t)
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
