package race

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/vovakirdan/turtle-racer/internal/core"
)

// fixedSource always returns the same normal sample.
type fixedSource float64

func (f fixedSource) NormFloat64() float64 { return float64(f) }

// countingSurface counts draw calls.
type countingSurface struct {
	circles, rects, lines int
}

func (s *countingSurface) Fill(core.Color)                                {}
func (s *countingSurface) FillCircle(core.Vec2, float64, core.Color)      { s.circles++ }
func (s *countingSurface) FillRect(core.RectF, core.Color)                { s.rects++ }
func (s *countingSurface) Line(core.Vec2, core.Vec2, float64, core.Color) { s.lines++ }

func newRace(n int, rng Source) *Race {
	racers := make([]*Racer, n)
	for i := range racers {
		racers[i] = NewRacer(core.RGB(uint8(i*20), 0, 0))
	}
	return New(racers, DefaultSpeed, rng)
}

func seeded() Source {
	return rand.New(rand.NewPCG(12345, 67890))
}

func positions(r *Race) []core.Vec2 {
	out := make([]core.Vec2, r.Len())
	for i, racer := range r.Racers() {
		out[i] = racer.Pos()
	}
	return out
}

func TestRacerStartAndAdvance(t *testing.T) {
	r := NewRacer(core.White)
	r.Start(-42)
	if r.Pos() != (core.Vec2{X: 10, Y: -42}) {
		t.Fatalf("Pos() after Start(-42) = %v, expected (10, -42)", r.Pos())
	}

	r.Advance(2.5)
	r.Advance(-1)
	if r.Pos() != (core.Vec2{X: 11.5, Y: -42}) {
		t.Errorf("Pos() after Advance = %v, expected (11.5, -42)", r.Pos())
	}
	if r.Color() != core.White {
		t.Errorf("Color() = %v, expected white", r.Color())
	}
}

func TestStartSpacing(t *testing.T) {
	tests := []struct {
		name string
		n    int
		h    float64
	}{
		{"two racers", 2, 720},
		{"one racer", 1, 720},
		{"ten racers", 10, 720},
		{"odd height", 7, 333},
		{"zero height", 3, 0},
		{"negative height", 4, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRace(tc.n, seeded())
			r.Start(tc.h)

			for i, racer := range r.Racers() {
				expected := math.Max((tc.h/float64(tc.n))*float64(i)+(tc.h/float64(tc.n)/2), 0)
				if racer.Pos().Y != expected {
					t.Errorf("racer %d y = %v, expected %v", i, racer.Pos().Y, expected)
				}
				if racer.Pos().X != StartX {
					t.Errorf("racer %d x = %v, expected %v", i, racer.Pos().X, StartX)
				}
			}
		})
	}
}

func TestStartSpacingExample(t *testing.T) {
	r := newRace(2, seeded())
	r.Start(720)

	if y := r.Racers()[0].Pos().Y; y != 180 {
		t.Errorf("racer 0 y = %v, expected 180", y)
	}
	if y := r.Racers()[1].Pos().Y; y != 540 {
		t.Errorf("racer 1 y = %v, expected 540", y)
	}
}

func TestStartResetsX(t *testing.T) {
	r := newRace(5, seeded())
	r.Start(720)
	for i, racer := range r.Racers() {
		racer.Advance(float64(100 * (i + 1)))
	}

	r.Start(720)

	for i, racer := range r.Racers() {
		if racer.Pos().X != StartX {
			t.Errorf("racer %d x = %v after restart, expected %v", i, racer.Pos().X, StartX)
		}
	}
}

func TestStartEmptyRace(t *testing.T) {
	r := New(nil, DefaultSpeed, seeded())
	r.Start(720) // must not divide by zero
	r.Update(&countingSurface{})
	r.CheckWinner(0)
	if r.Finished() {
		t.Error("an empty race cannot have a winner")
	}
}

func TestWinnerFreezesMotion(t *testing.T) {
	r := newRace(4, seeded())
	r.Start(720)
	r.Racers()[2].Advance(1300)
	r.CheckWinner(1280)

	if !r.Finished() {
		t.Fatal("expected winner after crossing the finish line")
	}

	frozen := positions(r)
	surf := &countingSurface{}
	for i := 0; i < 500; i++ {
		r.Update(surf)
		r.CheckWinner(1280)
	}

	after := positions(r)
	for i := range frozen {
		if frozen[i] != after[i] {
			t.Errorf("racer %d moved after the race finished: %v -> %v", i, frozen[i], after[i])
		}
	}
	if !r.Finished() {
		t.Error("winner flag must stay set until Start")
	}
	// Frozen racers are still drawn every frame.
	if surf.circles != 500*4*2 {
		t.Errorf("circles drawn = %d, expected %d", surf.circles, 500*4*2)
	}
}

func TestWinnerThreshold(t *testing.T) {
	const finishX = 1280

	tests := []struct {
		name     string
		advance  float64
		expected bool
	}{
		{"crosses", 2, true},
		{"lands exactly on the line", 1, true},
		{"falls short", 0.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRace(1, seeded())
			r.Start(720)
			racer := r.Racers()[0]
			racer.Advance(finishX - 1 - StartX)
			if racer.Pos().X != finishX-1 {
				t.Fatalf("setup: x = %v, expected %v", racer.Pos().X, finishX-1)
			}

			racer.Advance(tc.advance)
			r.CheckWinner(finishX)

			if r.Finished() != tc.expected {
				t.Errorf("Finished() = %v, expected %v", r.Finished(), tc.expected)
			}
		})
	}
}

func TestRestartIdempotent(t *testing.T) {
	r := newRace(10, seeded())
	r.Start(720)
	r.Racers()[0].Advance(5000)
	r.CheckWinner(1280)

	r.Start(720)
	first := positions(r)
	firstWinner := r.Finished()

	r.Start(720)
	second := positions(r)

	if firstWinner || r.Finished() {
		t.Error("Start must clear the winner flag")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("racer %d differs between restarts: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestUpdateStep(t *testing.T) {
	r := newRace(3, fixedSource(1))
	r.Start(300)
	r.Update(&countingSurface{})

	// (1*2 + 0.5) * 0.1
	for i, racer := range r.Racers() {
		if got := racer.Pos().X; math.Abs(got-(StartX+0.25)) > 1e-9 {
			t.Errorf("racer %d x = %v, expected %v", i, got, StartX+0.25)
		}
	}
}

func TestUpdateKeepsY(t *testing.T) {
	r := newRace(3, seeded())
	r.Start(300)
	before := positions(r)

	for i := 0; i < 100; i++ {
		r.Update(&countingSurface{})
	}

	for i, racer := range r.Racers() {
		if racer.Pos().Y != before[i].Y {
			t.Errorf("racer %d y changed: %v -> %v", i, before[i].Y, racer.Pos().Y)
		}
	}
}

func TestMotionInExpectation(t *testing.T) {
	const frames = 10000
	r := newRace(10, seeded())
	r.Start(720)

	sawNegative := false
	surf := &countingSurface{}
	prev := positions(r)
	for f := 0; f < frames; f++ {
		r.Update(surf)
		cur := positions(r)
		for i := range cur {
			if cur[i].X < prev[i].X {
				sawNegative = true
			}
		}
		prev = cur
	}

	// Mean step 0.05, stddev 0.2: after 10000 frames each racer is at
	// 500 +/- 20 (one sigma) past the start line.
	for i, racer := range r.Racers() {
		d := racer.Pos().X - StartX
		if d < 400 || d > 600 {
			t.Errorf("racer %d travelled %v, expected about 500", i, d)
		}
	}
	if !sawNegative {
		t.Error("expected at least one backward step")
	}
}

func TestEndToEndScenario(t *testing.T) {
	r := newRace(1, seeded())
	racer := r.Racers()[0]

	r.Start(0)
	if racer.Pos() != (core.Vec2{X: 10, Y: 0}) {
		t.Fatalf("Pos() = %v, expected (10, 0)", racer.Pos())
	}

	racer.Advance(1280)
	r.CheckWinner(1280)
	if !r.Finished() {
		t.Fatal("expected winner")
	}

	x := racer.Pos().X
	r.Update(&countingSurface{})
	if racer.Pos().X != x {
		t.Errorf("x = %v after Update, expected %v", racer.Pos().X, x)
	}

	r.Start(0)
	if r.Finished() {
		t.Error("Start should reset the winner flag")
	}
	if racer.Pos() != (core.Vec2{X: 10, Y: 0}) {
		t.Errorf("Pos() = %v after restart, expected (10, 0)", racer.Pos())
	}
}

func TestLeader(t *testing.T) {
	if got := newRace(0, seeded()).Leader(); got != -1 {
		t.Errorf("Leader() of empty race = %d, expected -1", got)
	}

	r := newRace(3, seeded())
	r.Start(300)
	if got := r.Leader(); got != 0 {
		t.Errorf("Leader() on a tie = %d, expected first racer", got)
	}

	r.Racers()[2].Advance(5)
	r.Racers()[1].Advance(3)
	if got := r.Leader(); got != 2 {
		t.Errorf("Leader() = %d, expected 2", got)
	}

	r.CheckWinner(15)
	if !r.Finished() || r.Leader() != 2 {
		t.Errorf("winner = %d (finished %v), expected racer 2", r.Leader(), r.Finished())
	}
}
