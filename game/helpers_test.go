package game

import (
	"bytes"
	"log"
	"strings"
	"sync"
	"testing"

	"github.com/lguibr/brickbreaker/input"
	"github.com/lguibr/brickbreaker/utils"
)

// fixedRandom always returns the same value.
type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

type recordingAudio struct {
	mu   sync.Mutex
	cues []Cue
}

func (a *recordingAudio) Play(cue Cue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cues = append(a.cues, cue)
}

func (a *recordingAudio) count(cue Cue) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type drawnText struct {
	text  string
	align Align
}

type recordingRenderer struct {
	mu       sync.Mutex
	sprites  []Sprite
	texts    []drawnText
	clears   int
	presents int
}

func (r *recordingRenderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
	r.sprites = nil
	r.texts = nil
}

func (r *recordingRenderer) DrawSprite(sprite Sprite, x, y, width, height float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sprites = append(r.sprites, sprite)
}

func (r *recordingRenderer) DrawText(text string, x, y float64, align Align) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, drawnText{text: text, align: align})
}

func (r *recordingRenderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presents++
}

func (r *recordingRenderer) presentCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presents
}

func (r *recordingRenderer) countKind(kind SpriteKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sprites {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

func (r *recordingRenderer) hasText(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.texts {
		if strings.Contains(t.text, substr) {
			return true
		}
	}
	return false
}

// testHarness wires a machine with recording collaborators and a fixed
// random source.
type testHarness struct {
	cfg     utils.Config
	machine *StateMachine
	input   *input.State
	audio   *recordingAudio
	logs    *bytes.Buffer
	levels  []int
}

func newHarness(t *testing.T, random utils.RandomSource) *testHarness {
	t.Helper()
	h := &testHarness{
		cfg:   utils.DefaultConfig(),
		input: &input.State{},
		audio: &recordingAudio{},
		logs:  &bytes.Buffer{},
	}
	levels := LevelMakerFunc(func(level int) []*Brick {
		h.levels = append(h.levels, level)
		return []*Brick{NewBrick(200, 40, h.cfg.BrickWidth, h.cfg.BrickHeight, 0, 1, false)}
	})
	h.machine = NewStateMachine(&Context{
		Config: h.cfg,
		Input:  h.input,
		Audio:  h.audio,
		Levels: levels,
		Random: random,
		Logger: log.New(h.logs, "", 0),
	})
	return h
}

// transitions counts logged state changes into the named state.
func (h *testHarness) transitions(to StateName) int {
	return strings.Count(h.logs.String(), "-> "+string(to)+"\n")
}

// play enters Play directly with the given session pieces.
func (h *testHarness) play(paddle *Paddle, balls []*Ball, bricks []*Brick, health, keys int) *PlayState {
	ui := NewUserInterface(h.cfg, health, 0, 1, keys)
	h.machine.Change(PlayHandoff{
		Paddle: paddle,
		Balls:  balls,
		Bricks: bricks,
		Health: health,
		Level:  1,
		Keys:   keys,
		UI:     ui,
	})
	return h.machine.State(StatePlay).(*PlayState)
}

func (h *testHarness) ballAt(x, y, vx, vy float64) *Ball {
	b := NewBallAt(h.cfg, x, y)
	b.Velocity = utils.NewVector2(vx, vy)
	return b
}

func (h *testHarness) brickAt(x, y float64, tier int, locked bool) *Brick {
	return NewBrick(x, y, h.cfg.BrickWidth, h.cfg.BrickHeight, tier, 1, locked)
}
