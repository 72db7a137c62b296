// Package storage archives finished games and running statistics in an
// embedded BadgerDB.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const (
	recordPrefix = "record:"
	keyStats     = "stats"
)

// GameRecord is the archived summary of one finished game. Winner is
// "white", "black" or empty for a draw; Opponent is "ai" or "local";
// Difficulty and HumanColor are only set for games against the engine.
type GameRecord struct {
	ID         string        `json:"id"`
	Opponent   string        `json:"opponent"`
	Difficulty string        `json:"difficulty,omitempty"`
	HumanColor string        `json:"humanColor,omitempty"`
	Winner     string        `json:"winner,omitempty"`
	Reason     string        `json:"reason"`
	Moves      int           `json:"moves"`
	Duration   time.Duration `json:"duration"`
	FinalFEN   string        `json:"finalFen"`
	PlayedAt   time.Time     `json:"playedAt"`
}

// Stats aggregates every recorded game. HumanWins, EngineWins and
// ByDifficulty only count games against the engine.
type Stats struct {
	GamesPlayed  int            `json:"gamesPlayed"`
	WhiteWins    int            `json:"whiteWins"`
	BlackWins    int            `json:"blackWins"`
	Draws        int            `json:"draws"`
	HumanWins    int            `json:"humanWins"`
	EngineWins   int            `json:"engineWins"`
	ByDifficulty map[string]int `json:"byDifficulty"`
}

func NewStats() *Stats {
	return &Stats{ByDifficulty: make(map[string]int)}
}

func (st *Stats) apply(rec GameRecord) {
	st.GamesPlayed++
	switch rec.Winner {
	case "white":
		st.WhiteWins++
	case "black":
		st.BlackWins++
	default:
		st.Draws++
	}
	if rec.Opponent != "ai" {
		return
	}
	if st.ByDifficulty == nil {
		st.ByDifficulty = make(map[string]int)
	}
	st.ByDifficulty[rec.Difficulty]++
	switch rec.Winner {
	case "":
	case rec.HumanColor:
		st.HumanWins++
	default:
		st.EngineWins++
	}
}

// Store wraps BadgerDB for persistent game archiving.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the database under dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open results store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordGame archives one finished game and folds it into the running
// statistics in a single transaction. Record keys embed the timestamp with
// fixed width so lexicographic order is chronological order.
func (s *Store) RecordGame(rec GameRecord) error {
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode game record: %w", err)
	}
	key := fmt.Sprintf("%s%020d:%s", recordPrefix, rec.PlayedAt.UnixNano(), rec.ID)

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), data); err != nil {
			return err
		}
		stats, err := readStats(txn)
		if err != nil {
			return err
		}
		stats.apply(rec)
		blob, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), blob)
	})
}

// RecentGames returns up to limit archived games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	records := make([]GameRecord, 0, limit)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(recordPrefix)
		seek := []byte(recordPrefix + "\xff")
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(records) < limit; it.Next() {
			var rec GameRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// Stats returns the running statistics, empty when nothing has been
// recorded yet.
func (s *Store) Stats() (*Stats, error) {
	var stats *Stats
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = readStats(txn)
		return err
	})
	return stats, err
}

func readStats(txn *badger.Txn) (*Stats, error) {
	stats := NewStats()
	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}
