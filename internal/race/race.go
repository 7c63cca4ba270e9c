// Package race implements the turtle race: racers that advance by a random
// step every frame until one of them crosses the finish line.
//
// The package has no windowing dependencies. Drawing goes through
// core.Surface and randomness through Source, so the simulation can be
// driven headless and deterministically in tests.
package race

import "github.com/vovakirdan/turtle-racer/internal/core"

// Source supplies normally distributed values with mean 0 and stddev 1.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	NormFloat64() float64
}

// Speed describes the per-frame step distribution:
// step = normal(Mean, StdDev) * Scale.
type Speed struct {
	Mean   float64
	StdDev float64
	Scale  float64
}

// DefaultSpeed is a mean step of 0.05 units per frame with stddev 0.2.
var DefaultSpeed = Speed{Mean: 0.5, StdDev: 2, Scale: 0.1}

// Race owns an ordered set of racers and the shared winner flag.
//
// States: running (no winner) -> finished (winner declared) -> running again
// only through Start.
type Race struct {
	racers []*Racer
	winner bool
	speed  Speed
	rng    Source
}

// New creates a race over racers in draw order.
func New(racers []*Racer, speed Speed, rng Source) *Race {
	return &Race{
		racers: racers,
		speed:  speed,
		rng:    rng,
	}
}

// Racers returns the racers in draw order.
func (r *Race) Racers() []*Racer {
	return r.racers
}

// Len returns the number of racers.
func (r *Race) Len() int {
	return len(r.racers)
}

// Finished reports whether a winner has been declared.
func (r *Race) Finished() bool {
	return r.winner
}

// Start places every racer on the start line, evenly spaced over
// finishHeight, and clears the winner flag. It may be called any number of
// times; nothing carries over from a previous race.
func (r *Race) Start(finishHeight float64) {
	r.winner = false

	n := float64(len(r.racers))
	if n == 0 {
		return
	}
	lane := finishHeight / n
	for i, racer := range r.racers {
		racer.Start(max(lane*float64(i)+lane/2, 0))
	}
}

// Update advances every racer by a random step, unless a winner has been
// declared, and draws it onto dst. Racers are moved and drawn one at a time
// in order, so later racers are drawn over earlier ones.
func (r *Race) Update(dst core.Surface) {
	for _, racer := range r.racers {
		if !r.winner {
			racer.Advance(r.step())
		}
		Draw(dst, racer)
	}
}

// CheckWinner declares a winner when any racer has reached finishX.
// Which racer won is not recorded.
func (r *Race) CheckWinner(finishX float64) {
	for _, racer := range r.racers {
		if racer.pos.X >= finishX {
			r.winner = true
		}
	}
}

// Leader returns the index of the racer furthest along, the first one on a
// tie, or -1 for an empty race. Once the race is finished this is the
// winner.
func (r *Race) Leader() int {
	leader := -1
	for i, racer := range r.racers {
		if leader < 0 || racer.pos.X > r.racers[leader].pos.X {
			leader = i
		}
	}
	return leader
}

func (r *Race) step() float64 {
	return (r.rng.NormFloat64()*r.speed.StdDev + r.speed.Mean) * r.speed.Scale
}
