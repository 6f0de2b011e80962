package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hersh/tetrigo/internal/config"
	"github.com/hersh/tetrigo/internal/game"
	"github.com/hersh/tetrigo/internal/gui"
	"github.com/hersh/tetrigo/internal/log"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(config.Report(os.Stderr, err))
	}

	out := os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	if _, err := log.Configure(out, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl := game.NewController(time.Now(), game.WithGenerator(game.NewSeededPieceGenerator(cfg.Seed)))
	log.Info("starting window session %s for %s", ctrl.SessionID(), cfg.Name)

	w, h := gui.ScreenSize(ctrl.Config())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Tetris")
	ebiten.SetTPS(ctrl.Config().FrameRate)

	if err := ebiten.RunGame(gui.NewGame(ctrl)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
