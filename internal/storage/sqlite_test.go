package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/turtle-racer/internal/core"
	"github.com/vovakirdan/turtle-racer/internal/loop"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.turtlerace/results.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".turtlerace", "results.db")); err != nil {
		t.Errorf("expected database under HOME: %v", err)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTemp(t)

	for i, color := range []string{"#6a0dad", "#ff5e4d", "#6a0dad"} {
		_, err := store.SaveResult(RaceResult{
			Frontend: "window",
			Seed:     int64(i + 1),
			Frames:   int64(1000 + i),
			Winner:   i,
			Color:    color,
			FinishX:  1280,
		})
		if err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 results with limit, got %d", len(recent))
	}
	if recent[0].Seed != 3 || recent[1].Seed != 2 {
		t.Errorf("Results not newest first: seeds %d, %d", recent[0].Seed, recent[1].Seed)
	}
	if recent[0].Frames != 1002 || recent[0].Color != "#6a0dad" || recent[0].FinishX != 1280 {
		t.Errorf("Result round trip mismatch: %+v", recent[0])
	}
}

func TestStoreWinsByColor(t *testing.T) {
	store := openTemp(t)

	for _, color := range []string{"#000002", "#000001", "#000001", "#000003", "#000001", "#000002"} {
		if _, err := store.SaveResult(RaceResult{Frontend: "test", Color: color}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	wins, err := store.WinsByColor()
	if err != nil {
		t.Fatalf("WinsByColor() failed: %v", err)
	}

	want := []ColorWins{{"#000001", 3}, {"#000002", 2}, {"#000003", 1}}
	if len(wins) != len(want) {
		t.Fatalf("WinsByColor() = %v, expected %v", wins, want)
	}
	for i := range want {
		if wins[i] != want[i] {
			t.Errorf("WinsByColor()[%d] = %v, expected %v", i, wins[i], want[i])
		}
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTemp(t)

	store.SaveResult(RaceResult{Frontend: "test", Color: "#ffffff"})
	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	recent, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected empty history after clear, got %d", len(recent))
	}
}

func TestRecorderAdapter(t *testing.T) {
	store := openTemp(t)
	rec := store.Recorder("terminal")

	err := rec.RecordResult(loop.Result{
		Seed:    99,
		Frames:  4321,
		Winner:  4,
		Color:   core.RGB(255, 102, 204),
		FinishX: 1280,
	})
	if err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}

	recent, err := store.RecentResults(1)
	if err != nil || len(recent) != 1 {
		t.Fatalf("RecentResults() = %v, %v", recent, err)
	}
	got := recent[0]
	if got.Frontend != "terminal" || got.Seed != 99 || got.Frames != 4321 || got.Winner != 4 || got.Color != "#ff66cc" {
		t.Errorf("Recorded result = %+v", got)
	}
}

func TestColorName(t *testing.T) {
	names := map[core.Color]string{
		core.RGB(106, 13, 173): "sunset_purple",
	}

	if got := ColorName("#6a0dad", names); got != "sunset_purple" {
		t.Errorf("ColorName(#6a0dad) = %q, expected sunset_purple", got)
	}
	if got := ColorName("#123456", names); got != "#123456" {
		t.Errorf("ColorName(#123456) = %q, expected the hex fallback", got)
	}
}
