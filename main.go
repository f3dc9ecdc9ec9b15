package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lguibr/brickbreaker/audio"
	"github.com/lguibr/brickbreaker/bollywood"
	"github.com/lguibr/brickbreaker/game"
	"github.com/lguibr/brickbreaker/input"
	"github.com/lguibr/brickbreaker/render"
	"github.com/lguibr/brickbreaker/utils"
)

func main() {
	configPath := flag.String("config", "brickbreaker.toml", "path to the TOML config file")
	flag.Parse()

	score, finished, err := run(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "brickbreaker:", err)
		os.Exit(1)
	}
	if finished {
		fmt.Printf("Final score: %d\n", score)
	}
}

func run(configPath string) (int, bool, error) {
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return 0, false, err
	}

	logger, closeLog, err := openLogger(cfg.LogFile)
	if err != nil {
		return 0, false, err
	}
	defer closeLog()
	logger.Printf("config loaded from %q (seed %d, muted %t)", configPath, cfg.Seed, cfg.Muted)

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, false, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, false, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.SampleRate, logger)
	if !cfg.Muted {
		if err := sound.Initialize(); err != nil {
			logger.Printf("WARN: audio disabled: %v", err)
		}
	}
	defer sound.Cleanup()

	random := utils.NewRandomSource(cfg.Seed)
	ctx := &game.Context{
		Config: cfg,
		Input:  &input.State{},
		Audio:  sound,
		Levels: game.NewProceduralLevels(cfg, random),
		Random: random,
		Logger: logger,
	}
	machine := game.NewStateMachine(ctx)

	engine := bollywood.NewEngine(logger)
	defer engine.Shutdown(time.Second)

	done := make(chan int, 1)
	loopPID := engine.Spawn(bollywood.NewProps(game.NewLoopActorProducer(
		machine,
		input.NewKeyboard(cfg.KeyHoldWindow),
		render.NewTerminal(screen, cfg),
		func(score int) { done <- score },
	)))
	if loopPID == nil {
		return 0, false, errors.New("spawn game loop")
	}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(cfg.FramePeriod)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0, false, nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key := input.Translate(ev)
				switch key {
				case input.KeyQuit:
					logger.Println("quit requested")
					return 0, false, nil
				case input.KeyNone:
				default:
					engine.Send(loopPID, game.KeyPressed{Key: key, At: time.Now()}, nil)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			engine.Send(loopPID, game.Tick{DT: now.Sub(last), At: now}, nil)
			last = now

		case score := <-done:
			return score, true, nil
		}
	}
}

// openLogger writes to path, or discards everything when path is empty. The
// terminal itself belongs to the screen while the game runs.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "brickbreaker ", log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}
