// File: game/collaborators.go
package game

// Box is anything with an axis-aligned bounding box on the playfield.
type Box interface {
	Bounds() (x, y, width, height float64)
}

// Cue names a sound effect. Playback is fire-and-forget.
type Cue int

const (
	CuePaddleHit Cue = iota
	CueWallHit
	CueBrickHit
	CueBrickDestroyed
	CueHurt
	CuePause
	CueVictory
	CuePowerUp
	CueKey
	CueConfirm
)

var cueNames = map[Cue]string{
	CuePaddleHit:      "paddle-hit",
	CueWallHit:        "wall-hit",
	CueBrickHit:       "brick-hit",
	CueBrickDestroyed: "brick-destroyed",
	CueHurt:           "hurt",
	CuePause:          "pause",
	CueVictory:        "victory",
	CuePowerUp:        "power-up",
	CueKey:            "key",
	CueConfirm:        "confirm",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "unknown"
}

// AllCues lists every cue in declaration order.
func AllCues() []Cue {
	cues := make([]Cue, 0, len(cueNames))
	for c := CuePaddleHit; c <= CueConfirm; c++ {
		cues = append(cues, c)
	}
	return cues
}

type Audio interface {
	Play(cue Cue)
}

// NopAudio drops every cue.
type NopAudio struct{}

func (NopAudio) Play(Cue) {}

type SpriteKind int

const (
	SpritePaddle SpriteKind = iota
	SpriteBall
	SpriteBrick
	SpritePowerUp
	SpriteKey
	SpriteHeart
)

// Sprite selects a frame of a sprite sheet. Index meaning depends on Kind:
// paddle size+skin, brick colour+tier, heart full (0) or empty (1).
type Sprite struct {
	Kind      SpriteKind
	Index     int
	Highlight bool
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Renderer draws one frame in playfield coordinates.
type Renderer interface {
	Clear()
	DrawSprite(sprite Sprite, x, y, width, height float64)
	DrawText(text string, x, y float64, align Align)
	Present()
}

// LevelMaker builds the brick layout for a level.
type LevelMaker interface {
	CreateMap(level int) []*Brick
}

// LevelMakerFunc adapts a plain function to LevelMaker.
type LevelMakerFunc func(level int) []*Brick

func (f LevelMakerFunc) CreateMap(level int) []*Brick { return f(level) }
