package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRecordAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score    int
		preset   string
		duration time.Duration
	}{
		{12, "normal", 20 * time.Second},
		{3, "easy", 5 * time.Second},
		{40, "hard", 65 * time.Second},
		{12, "", 18 * time.Second},
	}
	for _, r := range runs {
		if _, err := store.RecordRun(r.score, r.preset, r.duration); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	wantScores := []int{40, 12, 12}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, want %d", i, top[i].Score, want)
		}
	}
	// Ties keep insertion order
	if top[1].Difficulty != "normal" || top[2].Difficulty != "" {
		t.Errorf("tie order: %q then %q", top[1].Difficulty, top[2].Difficulty)
	}
	if top[0].Duration != 65*time.Second {
		t.Errorf("Duration = %v, want 65s", top[0].Duration)
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 12 || recent[1].Score != 40 {
		t.Errorf("RecentRuns = %+v", recent)
	}
}

func TestBestScoreNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	best, err := store.Best(DefaultBestKey)
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty Best = %d, want 0", best)
	}

	steps := []struct {
		set  int
		want int
	}{
		{10, 10},
		{25, 25},
		{7, 25},
	}
	for _, st := range steps {
		if err := store.SetBest(DefaultBestKey, st.set); err != nil {
			t.Fatalf("SetBest(%d) failed: %v", st.set, err)
		}
		got, err := store.Best(DefaultBestKey)
		if err != nil {
			t.Fatalf("Best() failed: %v", err)
		}
		if got != st.want {
			t.Errorf("after SetBest(%d) Best = %d, want %d", st.set, got, st.want)
		}
	}

	// Keys are independent
	if got, _ := store.Best("hard"); got != 0 {
		t.Errorf("Best(hard) = %d, want 0", got)
	}
}

func TestBestScoreAdapter(t *testing.T) {
	store := openTestStore(t)
	b := NewBestScore(store, "")

	if err := b.Set(33); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := b.Get()
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != 33 {
		t.Errorf("Get() = %d, want 33", got)
	}

	direct, _ := store.Best(DefaultBestKey)
	if direct != 33 {
		t.Errorf("empty key did not map to %q", DefaultBestKey)
	}
}

func TestBestScorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetBest(DefaultBestKey, 18); err != nil {
		t.Fatalf("SetBest() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got, _ := store.Best(DefaultBestKey); got != 18 {
		t.Errorf("Best after reopen = %d, want 18", got)
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.RecordRun(10, "normal", 10*time.Second)
	store.RecordRun(20, "normal", 30*time.Second)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 20 || stats.TotalScore != 30 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 15 {
		t.Errorf("AvgScore = %v, want 15", stats.AvgScore)
	}
	if stats.LongestRun != 30*time.Second {
		t.Errorf("LongestRun = %v, want 30s", stats.LongestRun)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	store.RecordRun(10, "", time.Second)
	store.SetBest(DefaultBestKey, 10)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}
	if best, _ := store.Best(DefaultBestKey); best != 0 {
		t.Errorf("Best after clear = %d, want 0", best)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.dodger/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".dodger", "scores.db"); got != want {
		t.Errorf("expandHome = %q, want %q", got, want)
	}

	if got, _ := expandHome("relative.db"); got != "relative.db" {
		t.Errorf("relative path changed to %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00.0"},
		{9*time.Second + 440*time.Millisecond, "0:09.4"},
		{75 * time.Second, "1:15.0"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
