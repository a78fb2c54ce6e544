// Package storage keeps the score board for the current process.
// Scores live in memory only and are gone when the program exits.
package storage

import (
	"sort"
	"sync"
	"time"
)

// DefaultLimit is used by TopScores when the caller passes a non-positive limit.
const DefaultLimit = 10

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Duration  time.Duration // Simulated play time
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Store is a concurrency-safe in-memory score board.
type Store struct {
	mu      sync.RWMutex
	entries []ScoreEntry
	nextID  int64
	now     func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{now: time.Now}
}

// SaveScore records a finished run for the given game.
// Returns the ID assigned to the entry.
func (s *Store) SaveScore(gameID string, score int, played time.Duration) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.entries = append(s.entries, ScoreEntry{
		ID:        s.nextID,
		GameID:    gameID,
		Score:     score,
		Duration:  played,
		CreatedAt: s.now(),
	})
	return s.nextID
}

// TopScores returns the best N runs for the given game, highest first.
// Equal scores keep the order they were recorded in.
func (s *Store) TopScores(gameID string, limit int) []ScoreEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	entries := s.AllScores(gameID)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// AllScores returns every run for the given game, highest first.
func (s *Store) AllScores(gameID string) []ScoreEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []ScoreEntry
	for _, e := range s.entries {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// HighScore returns the highest score for the given game, or 0 if none exist.
func (s *Store) HighScore(gameID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	high := 0
	for _, e := range s.entries {
		if e.GameID == gameID && e.Score > high {
			high = e.Score
		}
	}
	return high
}

// ClearScores deletes all runs for the given game.
func (s *Store) ClearScores(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.GameID != gameID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// GetGameStats returns aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) GameStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := GameStats{GameID: gameID}
	for _, e := range s.entries {
		if e.GameID != gameID {
			continue
		}
		stats.GamesCount++
		stats.TotalScore += int64(e.Score)
		if e.Score > stats.HighScore {
			stats.HighScore = e.Score
		}
		if e.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = e.CreatedAt
		}
	}
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}
	return stats
}
