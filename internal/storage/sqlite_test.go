package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skyfall/internal/highscore"
)

func openTestStore(t *testing.T) *Store {
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

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	v, ok, err := store.Get("k")
	if err != nil || !ok || v != "v" {
		t.Errorf("Get() = %q, %v, %v; want \"v\", true, nil", v, ok, err)
	}
}

func TestStoreKV(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok {
		t.Error("Get() on a missing key should report ok=false")
	}

	if err := store.Set("highScores", `[{"initials":"AAA","score":1}]`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("highScores", `[{"initials":"BBB","score":2}]`); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("highScores")
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v", ok, err)
	}
	if v != `[{"initials":"BBB","score":2}]` {
		t.Errorf("Get() = %q, want the overwritten value", v)
	}
}

func TestStoreBacksHighScores(t *testing.T) {
	store := openTestStore(t)

	table := highscore.New(store, nil)
	table.Load()
	for _, e := range []highscore.Entry{{Initials: "AAA", Score: 10}, {Initials: "BBB", Score: 30}, {Initials: "CCC", Score: 20}} {
		if err := table.Record(e); err != nil {
			t.Fatalf("Record(%v) failed: %v", e, err)
		}
	}

	reloaded := highscore.New(store, nil).Load()
	want := []highscore.Entry{{Initials: "BBB", Score: 30}, {Initials: "CCC", Score: 20}, {Initials: "AAA", Score: 10}}
	if len(reloaded) != len(want) {
		t.Fatalf("reloaded %d entries, want %d", len(reloaded), len(want))
	}
	for i := range want {
		if reloaded[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, reloaded[i], want[i])
		}
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Initials: "AAA", Sprite: "robot", Score: 100, Frames: 600},
		{Initials: "BBB", Sprite: "wizard", Score: 50, Frames: 300},
		{Initials: "CCC", Sprite: "ghost", Score: 200, Frames: 1200},
		{Initials: "DDD", Sprite: "robot", Score: 100, Frames: 700},
	}
	ids := make(map[string]bool)
	for _, r := range runs {
		id, err := store.SaveRun(r)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if id == "" || ids[id] {
			t.Fatalf("SaveRun() returned empty or duplicate id %q", id)
		}
		ids[id] = true
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Sorted descending, ties by insertion order
	wantInitials := []string{"CCC", "AAA", "DDD"}
	for i, w := range wantInitials {
		if top[i].Initials != w {
			t.Errorf("top[%d] = %s, want %s", i, top[i].Initials, w)
		}
	}
	if top[0].Sprite != "ghost" || top[0].Frames != 1200 {
		t.Errorf("top[0] = %+v, fields not round-tripped", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{10, 20, 30} {
		if _, err := store.SaveRun(Run{Initials: "AAA", Sprite: "robot", Score: s}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Score != 30 || recent[1].Score != 20 {
		t.Errorf("RecentRuns() scores = %d, %d; want 30, 20", recent[0].Score, recent[1].Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, s := range []int{10, 20, 60} {
		store.SaveRun(Run{Initials: "AAA", Sprite: "robot", Score: s}) //nolint:errcheck
	}

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"GamesCount", stats.GamesCount, 3},
		{"HighScore", stats.HighScore, 60},
		{"AvgScore", stats.AvgScore, 30.0},
		{"TotalScore", stats.TotalScore, int64(90)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Initials: "AAA", Sprite: "robot", Score: 1}) //nolint:errcheck
	store.Set("highScores", "[]")                                  //nolint:errcheck

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	if _, ok, _ := store.Get("highScores"); !ok {
		t.Error("ClearRuns() should not touch the key-value table")
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		in   any
		zero bool
	}{
		{"sqlite format", "2025-01-02 03:04:05", false},
		{"rfc3339", "2025-01-02T03:04:05Z", false},
		{"garbage", "yesterday", true},
		{"nil", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTime(tt.in); got.IsZero() != tt.zero {
				t.Errorf("parseTime(%v).IsZero() = %v, want %v", tt.in, got.IsZero(), tt.zero)
			}
		})
	}
}
