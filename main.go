package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/tetrigo/internal/config"
	"github.com/hersh/tetrigo/internal/game"
	"github.com/hersh/tetrigo/internal/log"
	"github.com/hersh/tetrigo/internal/tui"
)

// This is the terminal entry point.
// For a window, use:
//   go run ./cmd/gui

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		os.Exit(config.Report(os.Stderr, err))
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctrl := game.NewController(time.Now(), game.WithGenerator(game.NewSeededPieceGenerator(cfg.Seed)))
	log.Info("starting terminal session %s for %s", ctrl.SessionID(), cfg.Name)

	p := tea.NewProgram(
		tui.NewModel(cfg.Name, ctrl),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes logs to cfg.LogFile. The alt screen owns stdout, so
// without a file logs are dropped.
func setupLogging(cfg config.Config) (func(), error) {
	if cfg.LogFile == "" {
		_, err := log.Configure(io.Discard, cfg.LogLevel)
		return func() {}, err
	}

	f, err := tea.LogToFile(cfg.LogFile, "")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	level, err := log.Configure(f, cfg.LogLevel)
	if err != nil {
		f.Close()
		return nil, err
	}
	log.Info("Log level set to %s", level)
	return func() { f.Close() }, nil
}
