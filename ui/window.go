package ui

import (
	"errors"
	"path/filepath"

	"jedi-snake/game"
	"jedi-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const Title = "Star Wars Snake Game"

// Window is the raylib backend: one window with its assets, input and clock.
type Window struct {
	assets   *Assets
	renderer *Renderer
	input    *Input
	clock    *Clock
	log      *zap.SugaredLogger
}

// Open creates the window and loads the assets under assetDir.
func Open(cfg types.Config, assetDir string, log *zap.SugaredLogger) (*Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window initialisation failed")
	}
	// Escape is a game key, not raylib's exit key
	rl.SetExitKey(rl.KeyNull)

	if icon, err := loadImage(filepath.Join(assetDir, imageDir, iconImage)); err == nil {
		rl.SetWindowIcon(*icon)
		rl.UnloadImage(icon)
	} else {
		log.Warnw("window icon not set", "error", err)
	}

	assets, err := LoadAssets(assetDir, types.NewGeometry(cfg), cfg.SpriteVariants, log)
	if err != nil {
		rl.CloseWindow()
		return nil, err
	}

	log.Infow("window opened", "width", cfg.WindowWidth, "height", cfg.WindowHeight)
	return &Window{
		assets:   assets,
		renderer: NewRenderer(assets),
		input:    NewInput(),
		clock:    NewClock(),
		log:      log,
	}, nil
}

// Backend wires the window into a game backend.
func (w *Window) Backend(sound game.SoundPlayer) game.Backend {
	return game.Backend{
		Renderer: w.renderer,
		Input:    w.input,
		Clock:    w.clock,
		Sound:    sound,
	}
}

func (w *Window) Close() {
	w.assets.Unload()
	rl.CloseWindow()
	w.log.Info("window closed")
}
