package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lguibr/brickbreaker/game"
)

// note is one sine tone; a zero frequency is a rest.
type note struct {
	freq     float64
	duration time.Duration
}

type tone struct {
	notes  []note
	volume float64 // linear gain, 0..1
}

var cueTones = map[game.Cue]tone{
	game.CuePaddleHit:      {notes: []note{{440, 40 * time.Millisecond}}, volume: 0.4},
	game.CueWallHit:        {notes: []note{{330, 30 * time.Millisecond}}, volume: 0.25},
	game.CueBrickHit:       {notes: []note{{660, 40 * time.Millisecond}}, volume: 0.35},
	game.CueBrickDestroyed: {notes: []note{{880, 30 * time.Millisecond}, {1320, 40 * time.Millisecond}}, volume: 0.35},
	game.CueHurt:           {notes: []note{{220, 120 * time.Millisecond}, {165, 180 * time.Millisecond}}, volume: 0.5},
	game.CuePause:          {notes: []note{{523, 60 * time.Millisecond}, {0, 30 * time.Millisecond}, {523, 60 * time.Millisecond}}, volume: 0.3},
	game.CueVictory: {notes: []note{
		{523, 90 * time.Millisecond},
		{659, 90 * time.Millisecond},
		{784, 90 * time.Millisecond},
		{1047, 200 * time.Millisecond},
	}, volume: 0.45},
	game.CuePowerUp: {notes: []note{{587, 50 * time.Millisecond}, {880, 70 * time.Millisecond}}, volume: 0.4},
	game.CueKey:     {notes: []note{{988, 50 * time.Millisecond}, {1319, 90 * time.Millisecond}}, volume: 0.4},
	game.CueConfirm: {notes: []note{{784, 50 * time.Millisecond}}, volume: 0.3},
}

// NewCueStreamer synthesises the finite stream for a cue.
func NewCueStreamer(cue game.Cue, sr beep.SampleRate) (beep.Streamer, error) {
	t, ok := cueTones[cue]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %s", cue)
	}

	parts := make([]beep.Streamer, 0, len(t.notes))
	for _, n := range t.notes {
		samples := sr.N(n.duration)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", cue, err)
		}
		parts = append(parts, beep.Take(samples, sine))
	}
	return newVolume(beep.Seq(parts...), t.volume), nil
}

// newVolume turns a linear gain into a beep volume effect. Zero gain is
// silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
