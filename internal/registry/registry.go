// Package registry provides a global registry of race frontends.
// Frontends register themselves in init() functions, so the CLI can list
// and launch them without importing a concrete window or terminal stack.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turtle-racer/internal/config"
	"github.com/vovakirdan/turtle-racer/internal/core"
	"github.com/vovakirdan/turtle-racer/internal/loop"
)

// ErrUnknown is returned by Create for an unregistered frontend ID.
var ErrUnknown = errors.New("registry: unknown frontend")

// Env is everything a frontend needs to run a race.
type Env struct {
	Runtime  core.RuntimeConfig
	Config   config.Config
	Logger   *log.Logger
	Recorder loop.Recorder // optional
}

// NewLoop builds a race loop from the environment and attaches the
// recorder, if any.
func (e Env) NewLoop() (*loop.Loop, loop.Options) {
	opts := loop.OptionsFromConfig(e.Config, e.Runtime)
	l := loop.New(opts, e.Logger)
	if e.Recorder != nil {
		l.SetRecorder(e.Recorder)
	}
	return l, opts
}

// Frontend presents a race and feeds it input.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g. "window").
	ID() string

	// Title returns a human-readable description for `list`.
	Title() string

	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context, env Env) error
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new frontend instance.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
