// Package bell renders shell alert bytes (BEL) as a short synthesized tone
// on the host's audio output. Hosts without working audio simply skip it;
// the terminal still receives the raw BEL.
package bell

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	toneFreq   = 880.0
	toneLen    = 60 * time.Millisecond
)

// Ringer owns the speaker and plays the alert tone.
type Ringer struct {
	initialized bool
}

// New initializes the audio output. A failed init returns the error; the
// caller decides whether to continue silently.
func New() (*Ringer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(20*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Ringer{initialized: true}, nil
}

// Ring plays one short alert tone. Safe to call on a nil Ringer.
func (r *Ringer) Ring() {
	if r == nil || !r.initialized {
		return
	}
	speaker.Play(newTone(toneFreq, toneLen, sampleRate))
}

// Close stops audio playback.
func (r *Ringer) Close() {
	if r == nil || !r.initialized {
		return
	}
	speaker.Clear()
	r.initialized = false
}

// tone is a fixed-duration sine oscillator.
type tone struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(d),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * t.phase)

		// Linear fade-out over the last quarter avoids a click at the end
		remaining := t.duration - t.position
		if fade := t.duration / 4; remaining < fade {
			val *= float64(remaining) / float64(fade)
		}

		samples[i][0] = val * 0.3
		samples[i][1] = val * 0.3

		t.phase += t.freq / float64(t.rate)
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
