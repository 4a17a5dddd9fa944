package player

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/mathquest/internal/store"
)

// DefaultKeep is how many snapshots Save retains.
const DefaultKeep = 10

// Repo loads and saves player stats as snapshots.
type Repo struct {
	snaps store.SnapshotRepo
	keep  int
}

// NewRepo returns a Repo over snaps.
func NewRepo(snaps store.SnapshotRepo) *Repo {
	return &Repo{snaps: snaps, keep: DefaultKeep}
}

// Load returns the latest saved stats, or nil if the player is new.
func (r *Repo) Load(ctx context.Context) (*Stats, error) {
	snap, err := r.snaps.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load player: %w", err)
	}
	if snap == nil {
		return nil, nil
	}
	return FromSnapshot(snap.Data), nil
}

// Save writes s and prunes old snapshots.
func (r *Repo) Save(ctx context.Context, s *Stats) error {
	err := r.snaps.Save(ctx, &store.Snapshot{
		// Games played doubles as a monotonic save counter.
		Sequence:  int64(s.GamesPlayed),
		Timestamp: time.Now().UTC(),
		Data:      s.ToSnapshot(),
	})
	if err != nil {
		return fmt.Errorf("save player: %w", err)
	}
	if err := r.snaps.Prune(ctx, r.keep); err != nil {
		return fmt.Errorf("prune player snapshots: %w", err)
	}
	return nil
}
