// Package audio plays the game's sound cues through the system speaker.
package audio

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lguibr/brickbreaker/game"
)

const bufferDuration = 50 * time.Millisecond

// SoundManager implements game.Audio. Until Initialize succeeds every cue is
// dropped, so the game runs silently on machines without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	sampleRate  beep.SampleRate
	logger      *log.Logger
	initialized bool
	cache       map[game.Cue]*beep.Buffer
}

func NewSoundManager(sampleRate int, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &SoundManager{
		mixer:      &beep.Mixer{},
		sampleRate: beep.SampleRate(sampleRate),
		logger:     logger,
		cache:      make(map[game.Cue]*beep.Buffer),
	}
}

// Initialize opens the speaker and pre-renders every cue.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := sm.renderCues(); err != nil {
		return err
	}
	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(bufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) renderCues() error {
	format := beep.Format{SampleRate: sm.sampleRate, NumChannels: 2, Precision: 2}
	for _, cue := range game.AllCues() {
		if _, ok := sm.cache[cue]; ok {
			continue
		}
		streamer, err := NewCueStreamer(cue, sm.sampleRate)
		if err != nil {
			return err
		}
		buffer := beep.NewBuffer(format)
		buffer.Append(streamer)
		sm.cache[cue] = buffer
	}
	return nil
}

// Play queues a cue on the mixer and returns immediately.
func (sm *SoundManager) Play(cue game.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buffer, ok := sm.cache[cue]
	if !ok {
		sm.logger.Printf("WARN: no sound for cue %s", cue)
		return
	}

	speaker.Lock()
	sm.mixer.Add(buffer.Streamer(0, buffer.Len()))
	speaker.Unlock()
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
