package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"jedi-snake/game"
	"jedi-snake/game/types"
	"jedi-snake/logger"
	"jedi-snake/sound"
	"jedi-snake/term"
	"jedi-snake/ui"

	"golang.org/x/exp/rand"
)

func main() {
	os.Exit(run())
}

func run() int {
	backend := flag.String("ui", "raylib", "Display backend: raylib or term")
	logPath := flag.String("log", "snake.log", "Log file path")
	debug := flag.Bool("debug", false, "Log speed changes and sith hits")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	assetDir := flag.String("assets", ".", "Directory holding images/ and fonts/")
	mute := flag.Bool("mute", false, "Disable sound effects")
	flag.Parse()

	if err := logger.Init(*logPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync()
	log := logger.Log

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))
	cfg := types.DefaultConfig()
	log.Infow("starting", "ui", *backend, "seed", *seed)

	var player game.SoundPlayer = game.Silence
	if !*mute {
		p, err := sound.New(log)
		if err != nil {
			log.Warnw("sound disabled", "error", err)
		} else {
			player = p
		}
	}

	var be game.Backend
	switch *backend {
	case "raylib":
		w, err := ui.Open(cfg, *assetDir, log)
		if err != nil {
			log.Errorw("cannot open window", "error", err)
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer w.Close()
		be = w.Backend(player)
	case "term":
		s, err := term.Open(cfg, log)
		if err != nil {
			log.Errorw("cannot open terminal", "error", err)
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer s.Close()
		be = s.Backend(player)
	default:
		fmt.Fprintf(os.Stderr, "unknown -ui %q (want raylib or term)\n", *backend)
		return 1
	}

	g := game.NewGame(cfg, rng, log)
	if game.Roll(game.Greeting(), g.Geometry, be) == game.MenuQuit {
		return 0
	}
	for {
		g.Start()
		result := g.Run(be)
		if result.Quit {
			log.Infow("quit", "round", result.ID, "score", result.Score)
			return 0
		}
		if game.Roll(game.Farewell(result.Score), g.Geometry, be) == game.MenuQuit {
			return 0
		}
	}
}
