package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// MemoryBoard keeps rows in process memory.
type MemoryBoard struct {
	mu   sync.Mutex
	rows map[string]Entry
}

// NewMemoryBoard returns an empty board.
func NewMemoryBoard() *MemoryBoard {
	return &MemoryBoard{rows: make(map[string]Entry)}
}

func (b *MemoryBoard) SubmitBest(_ context.Context, e Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cur, ok := b.rows[e.Name]; ok && cur.Score >= e.Score {
		return nil
	}
	b.rows[e.Name] = e
	return nil
}

func (b *MemoryBoard) Top(_ context.Context, limit int) ([]Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Entry, 0, len(b.rows))
	for _, e := range b.rows {
		if e.Score > 0 {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (b *MemoryBoard) Close() error { return nil }
