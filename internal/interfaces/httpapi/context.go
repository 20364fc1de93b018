package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/football-data/internal/domain/syncrun"
	"github.com/riskibarqy/football-data/internal/usecase"
)

// syncContext detaches a sync batch from the request so a client
// disconnect does not abort it halfway. Values such as the trace span are
// kept.
func syncContext(r *http.Request) context.Context {
	return usecase.WithSyncTrigger(context.WithoutCancel(r.Context()), syncrun.TriggerManual)
}
