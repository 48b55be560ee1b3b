package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

func main() {
	difficulty := flag.String("difficulty", "medium", "Starting difficulty: easy, medium or hard")
	width := flag.Int("width", types.DefaultGridWidth, "Grid width in cells")
	height := flag.Int("height", types.DefaultGridHeight, "Grid height in cells")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	dataDir := flag.String("data", "data", "Directory for scores and settings")
	mute := flag.Bool("mute", false, "Start with sound disabled")
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = *width, *height, *seed
	d, err := types.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatalf("Invalid -difficulty: %v", err)
	}
	cfg.Difficulty = d

	stateMgr := openState(*dataDir)
	engine, err := game.NewEngine(cfg, stateMgr)
	if err != nil {
		log.Fatalf("Invalid game configuration: %v", err)
	}

	settings := stateMgr.Settings()
	if *mute {
		settings.SoundEnabled = false
	}
	sound := audio.NewService(settings, stateMgr)
	// Init logs its own failure; the game runs silent without a device
	_ = sound.Init()
	defer sound.Close()
	sound.Attach(engine.Events())

	rl.InitWindow(1280, 800, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	controls := ui.NewControls()

	panel := ui.Panel{Settings: sound.Settings()}
	refreshPanel := func() {
		history := stateMgr.History()
		panel.Stats = stateMgr.Stats()
		panel.Recent = history.Recent(50)
		panel.Settings = sound.Settings()
	}
	refreshPanel()
	engine.Events().Subscribe(game.EventGameOver, func(game.Event) { refreshPanel() })

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		actions, commands := controls.Poll()
		for _, a := range actions {
			engine.Handle(a)
		}
		for _, c := range commands {
			switch c {
			case ui.CommandToggleSound:
				sound.ToggleSound()
			case ui.CommandCycleMusic:
				sound.CycleMusicStyle()
			case ui.CommandVolumeUp:
				sound.AdjustVolume(audio.VolumeStep)
			case ui.CommandVolumeDown:
				sound.AdjustVolume(-audio.VolumeStep)
			}
			panel.Settings = sound.Settings()
		}

		engine.Update(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
		renderer.Draw(engine.Snapshot(), panel)
	}
}

// openState loads persisted records from dir. The directory is created on
// the first write.
func openState(dir string) *manager.StateManager {
	store, err := manager.NewFileStore(filepath.Join(dir, manager.StoreFile))
	if err != nil {
		log.Printf("Warning: starting with fresh records: %v", err)
	}
	return manager.NewStateManager(store)
}
