package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/turtle-racer/internal/logging"
	"github.com/vovakirdan/turtle-racer/internal/registry"
)

// ID is the registry key of the terminal frontend.
const ID = "terminal"

// LogFile receives log output while the terminal is taken over.
const LogFile = "turtlerace.log"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend runs the race in the terminal.
type Frontend struct{}

func (*Frontend) ID() string    { return ID }
func (*Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run takes over the terminal until the user quits or ctx is cancelled.
func (*Frontend) Run(ctx context.Context, env registry.Env) error {
	width, height := env.Runtime.ScreenW, env.Runtime.ScreenH
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	closer := logging.OpenFile(env.Logger, LogFile)
	defer closer.Close()

	l, opts := env.NewLoop()
	model := NewModel(l, opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
