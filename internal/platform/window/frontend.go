package window

import (
	"context"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/turtle-racer/internal/logging"
	"github.com/vovakirdan/turtle-racer/internal/registry"
)

// ID is the registry key of the window frontend.
const ID = "window"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend runs the race in a native window.
type Frontend struct{}

func (*Frontend) ID() string    { return ID }
func (*Frontend) Title() string { return "Native OpenGL window" }

// Run opens the window and blocks until it is closed or ctx is cancelled.
func (*Frontend) Run(ctx context.Context, env registry.Env) error {
	gg.SetLogger(logging.Slog(env.Logger))

	l, _ := env.NewLoop()
	return l.Run(ctx, NewDriver())
}
