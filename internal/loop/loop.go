// Package loop drives a race: it owns the race and the run flag, polls
// input from a Driver, advances the simulation and renders every frame.
package loop

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turtle-racer/internal/config"
	"github.com/vovakirdan/turtle-racer/internal/core"
	"github.com/vovakirdan/turtle-racer/internal/race"
)

// ErrNotInitialized is returned when the loop is used before Initialize.
var ErrNotInitialized = errors.New("loop: not initialized")

// Driver is the windowing collaborator: it owns the window (or terminal,
// or image) and the event queue.
type Driver interface {
	// Open creates the output surface. An error aborts startup.
	Open(width, height int, title string) error
	// Events drains every event queued since the last call.
	Events() []core.Event
	// Surface returns the surface to draw the next frame on.
	Surface() core.Surface
	// Present shows the frame drawn since the last Present.
	Present() error
	// Close releases the driver's resources.
	Close() error
}

// Options are the fixed settings of a loop.
type Options struct {
	Width      int
	Height     int
	Title      string
	FinishX    float64
	Background core.Color
	Palette    []core.Color
	Speed      race.Speed
	FrameRate  int   // 0 = unthrottled
	Seed       int64 // 0 = derive from the clock
}

// OptionsFromConfig converts a race configuration into loop options.
func OptionsFromConfig(cfg config.Config, rt core.RuntimeConfig) Options {
	frameRate := cfg.Window.FrameRate
	if rt.TickRate > 0 {
		frameRate = rt.TickRate
	}
	return Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		FinishX:    cfg.FinishLine(),
		Background: cfg.Race.Background.Color(),
		Palette:    cfg.Colors(),
		Speed:      cfg.SpeedParams(),
		FrameRate:  frameRate,
		Seed:       rt.Seed,
	}
}

// Result describes a finished race.
type Result struct {
	Seed    int64
	Frames  uint64 // frames from start to finish
	Winner  int    // index in palette order
	Color   core.Color
	FinishX float64
}

// Recorder receives every finished race.
type Recorder interface {
	RecordResult(Result) error
}

// Loop owns the race and the running flag.
type Loop struct {
	opts     Options
	logger   *log.Logger
	recorder Recorder
	race     *race.Race
	running  bool
	seed     int64

	frames     uint64
	startFrame uint64
	finished   bool // last observed winner flag, for logging transitions
}

// New creates a loop. Call Initialize (or Run) before stepping it.
func New(opts Options, logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default()
	}
	return &Loop{opts: opts, logger: logger}
}

// SetRecorder installs r to receive finished races. Recording failures are
// logged and do not stop the loop.
func (l *Loop) SetRecorder(r Recorder) {
	l.recorder = r
}

// Initialize builds one racer per palette color, starts the race and sets
// the loop running. The palette is copied; racers keep palette order.
func (l *Loop) Initialize() {
	seed := l.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.seed = seed
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	racers := make([]*race.Racer, len(l.opts.Palette))
	for i, c := range l.opts.Palette {
		racers[i] = race.NewRacer(c)
	}
	l.race = race.New(racers, l.opts.Speed, rng)
	l.start()
	l.running = true

	l.logger.Info("race initialized",
		"width", l.opts.Width,
		"height", l.opts.Height,
		"racers", len(racers),
		"finish", l.opts.FinishX,
		"seed", seed,
	)
}

// Running reports whether the loop should keep cycling.
func (l *Loop) Running() bool {
	return l.running
}

// Race returns the race, or nil before Initialize.
func (l *Loop) Race() *race.Race {
	return l.race
}

// Frames returns the number of frames rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// HandleEvent reacts to a single input event: quit stops the loop, a
// primary click anywhere restarts the race. Everything else is ignored.
func (l *Loop) HandleEvent(ev core.Event) {
	switch {
	case ev.Kind == core.EventQuit:
		l.running = false
		l.logger.Info("quit requested", "frames", l.frames)
	case ev.IsPrimaryClick():
		l.logger.Debug("restart click", "x", ev.Pos.X, "y", ev.Pos.Y)
		if err := l.Restart(); err != nil {
			l.logger.Warn("click ignored", "err", err)
		}
	}
}

// Restart puts every racer back on the start line and clears the winner.
// A restart mid-race takes effect immediately.
func (l *Loop) Restart() error {
	if l.race == nil {
		return ErrNotInitialized
	}
	l.start()
	return nil
}

// Step checks the finish line.
func (l *Loop) Step() {
	if l.race == nil {
		return
	}
	l.race.CheckWinner(l.opts.FinishX)
	if l.race.Finished() && !l.finished {
		l.declare()
	}
	l.finished = l.race.Finished()
}

// declare logs the winner and hands the result to the recorder.
func (l *Loop) declare() {
	res := Result{
		Seed:    l.seed,
		Frames:  l.frames - l.startFrame,
		Winner:  l.race.Leader(),
		FinishX: l.opts.FinishX,
	}
	if res.Winner >= 0 {
		res.Color = l.race.Racers()[res.Winner].Color()
	}
	l.logger.Info("winner declared", "racer", res.Winner, "color", res.Color, "frames", res.Frames)

	if l.recorder == nil {
		return
	}
	if err := l.recorder.RecordResult(res); err != nil {
		l.logger.Warn("could not record result", "err", err)
	}
}

// Render clears dst to the background and advances and draws every racer.
func (l *Loop) Render(dst core.Surface) {
	if l.race == nil {
		return
	}
	dst.Fill(l.opts.Background)
	l.race.Update(dst)
	l.frames++
}

// Run opens the driver, initializes the loop and cycles
// {drain events, step, render, present} until a quit event arrives or ctx
// is cancelled. The driver is closed on exit. A driver that fails to open
// aborts before the first frame.
func (l *Loop) Run(ctx context.Context, d Driver) (err error) {
	if err := d.Open(l.opts.Width, l.opts.Height, l.opts.Title); err != nil {
		return fmt.Errorf("open driver: %w", err)
	}
	defer func() {
		if cerr := d.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close driver: %w", cerr)
		}
	}()

	l.Initialize()

	var frameTime time.Duration
	if l.opts.FrameRate > 0 {
		frameTime = time.Second / time.Duration(l.opts.FrameRate)
	}

	for l.running {
		began := time.Now()

		for _, ev := range d.Events() {
			l.HandleEvent(ev)
		}
		if ctx.Err() != nil {
			l.HandleEvent(core.QuitEvent())
		}
		if !l.running {
			break
		}

		l.Step()
		l.Render(d.Surface())
		if err := d.Present(); err != nil {
			l.logger.Error("present failed", "err", err)
			return fmt.Errorf("present frame %d: %w", l.frames, err)
		}

		if frameTime > 0 {
			if rest := frameTime - time.Since(began); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
	return nil
}

// start (re)starts the race on the full window height.
func (l *Loop) start() {
	l.race.Start(float64(l.opts.Height))
	l.finished = false
	l.startFrame = l.frames
	l.logger.Info("race started", "racers", l.race.Len())
}
