package storage

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func seedRecords(t *testing.T, s *Store) {
	t.Helper()
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	records := []GameRecord{
		{ID: "one", Opponent: "ai", Difficulty: "easy", HumanColor: "white", Winner: "white", Reason: "checkmate", Moves: 24},
		{ID: "two", Opponent: "local", Winner: "black", Reason: "checkmate", Moves: 31},
		{ID: "three", Opponent: "ai", Difficulty: "hard", HumanColor: "black", Reason: "stalemate", Moves: 58},
	}
	for i, rec := range records {
		rec.PlayedAt = base.Add(time.Duration(i) * time.Hour)
		if err := s.RecordGame(rec); err != nil {
			t.Fatalf("RecordGame(%s): %v", rec.ID, err)
		}
	}
}

func TestRecentGamesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	seedRecords(t, s)

	recent, err := s.RecentGames(2)
	if err != nil {
		t.Fatalf("RecentGames: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d records, want 2", len(recent))
	}
	if recent[0].ID != "three" || recent[1].ID != "two" {
		t.Errorf("order = %s, %s; want three, two", recent[0].ID, recent[1].ID)
	}

	all, err := s.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	if all[2].ID != "one" {
		t.Errorf("oldest record = %s, want one", all[2].ID)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	rec := GameRecord{
		ID:         "abc-123",
		Opponent:   "ai",
		Difficulty: "medium",
		HumanColor: "white",
		Winner:     "black",
		Reason:     "checkmate",
		Moves:      42,
		Duration:   95 * time.Second,
		FinalFEN:   "k6R/8/K7/8/8/8/8/8 b - - 12 42",
		PlayedAt:   time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := s.RecordGame(rec); err != nil {
		t.Fatalf("RecordGame: %v", err)
	}
	recent, err := s.RecentGames(1)
	if err != nil {
		t.Fatalf("RecentGames: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d records, want 1", len(recent))
	}
	if diff := cmp.Diff(rec, recent[0]); diff != "" {
		t.Errorf("record changed in the archive (-want +got):\n%s", diff)
	}
}

func TestStatsAccumulate(t *testing.T) {
	s := openTestStore(t)
	seedRecords(t, s)

	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	want := &Stats{
		GamesPlayed:  3,
		WhiteWins:    1,
		BlackWins:    1,
		Draws:        1,
		HumanWins:    1,
		EngineWins:   0,
		ByDifficulty: map[string]int{"easy": 1, "hard": 1},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.GamesPlayed != 0 {
		t.Errorf("fresh store reports %d games", stats.GamesPlayed)
	}
	if stats.ByDifficulty == nil {
		t.Error("ByDifficulty map not initialized")
	}

	recent, err := s.RecentGames(5)
	if err != nil {
		t.Fatalf("RecentGames: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("fresh store returned %d records", len(recent))
	}
}
