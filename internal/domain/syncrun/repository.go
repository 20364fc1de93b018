package syncrun

import "context"

type Repository interface {
	Create(ctx context.Context, run Run) error
	GetByID(ctx context.Context, runID string) (Run, bool, error)
	ListRecent(ctx context.Context, limit int) ([]Run, error)
}
