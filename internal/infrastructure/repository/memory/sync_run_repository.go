package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-data/internal/domain/syncrun"
)

const maxStoredSyncRuns = 500

type SyncRunRepository struct {
	mu   sync.RWMutex
	runs []syncrun.Run
}

func NewSyncRunRepository() *SyncRunRepository {
	return &SyncRunRepository{}
}

func (r *SyncRunRepository) Create(_ context.Context, run syncrun.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs = append(r.runs, run)
	if len(r.runs) > maxStoredSyncRuns {
		r.runs = append([]syncrun.Run(nil), r.runs[len(r.runs)-maxStoredSyncRuns:]...)
	}
	return nil
}

func (r *SyncRunRepository) GetByID(_ context.Context, runID string) (syncrun.Run, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, run := range r.runs {
		if run.ID == runID {
			return run, true, nil
		}
	}
	return syncrun.Run{}, false, nil
}

func (r *SyncRunRepository) ListRecent(_ context.Context, limit int) ([]syncrun.Run, error) {
	r.mu.RLock()
	out := append([]syncrun.Run(nil), r.runs...)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
