package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/term"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	difficulty := flag.String("difficulty", "medium", "Starting difficulty: easy, medium or hard")
	width := flag.Int("width", types.DefaultGridWidth, "Grid width in cells")
	height := flag.Int("height", types.DefaultGridHeight, "Grid height in cells")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	dataDir := flag.String("data", "data", "Directory for scores, settings and the log")
	mute := flag.Bool("mute", false, "Start with sound disabled")
	flag.Parse()

	if err := run(*difficulty, *width, *height, *seed, *dataDir, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(difficulty string, width, height int, seed uint64, dataDir string, mute bool) error {
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = width, height, seed
	d, err := types.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}
	cfg.Difficulty = d

	// the screen owns stdout, so logging goes to a file
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(dataDir, "snake-term.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	store, err := manager.NewFileStore(filepath.Join(dataDir, manager.StoreFile))
	if err != nil {
		log.Printf("Warning: starting with fresh records: %v", err)
	}
	stateMgr := manager.NewStateManager(store)

	engine, err := game.NewEngine(cfg, stateMgr)
	if err != nil {
		return err
	}

	settings := stateMgr.Settings()
	if mute {
		settings.SoundEnabled = false
	}
	sound := audio.NewService(settings, stateMgr)
	_ = sound.Init()
	defer sound.Close()
	sound.Attach(engine.Events())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	loop(screen, engine, sound)
	return nil
}

func loop(screen tcell.Screen, engine *game.Engine, sound *audio.Service) {
	renderer := term.NewRenderer(screen)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, command := term.Translate(ev.Key(), ev.Rune())
				if command == term.CommandQuit {
					return
				}
				engine.Handle(action)
				apply(sound, command)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			engine.Update(now.Sub(last))
			last = now
			renderer.Draw(engine.Snapshot(), sound.Settings())
			screen.Show()
		}
	}
}

func apply(sound *audio.Service, c term.Command) {
	switch c {
	case term.CommandToggleSound:
		sound.ToggleSound()
	case term.CommandCycleMusic:
		sound.CycleMusicStyle()
	case term.CommandVolumeUp:
		sound.AdjustVolume(audio.VolumeStep)
	case term.CommandVolumeDown:
		sound.AdjustVolume(-audio.VolumeStep)
	}
}
