package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-data/internal/domain/syncrun"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

const (
	SyncJobLive       = "live"
	SyncJobUpcoming   = "upcoming"
	SyncJobFinished   = "finished"
	SyncJobStandings  = "standings"
	SyncJobLeagues    = "leagues"
	SyncJobTopScorers = "top_scorers"

	defaultSyncJobTimeout   = 10 * time.Minute
	defaultSyncJobBacklog   = 8
	schedulerReleaseTimeout = 30 * time.Second
)

// SyncRunner is the part of SyncService the scheduler drives.
type SyncRunner interface {
	SyncLiveMatches(ctx context.Context) (SyncResult, error)
	SyncUpcomingMatches(ctx context.Context, leagueID int64) (SyncResult, error)
	SyncFinishedMatches(ctx context.Context, leagueID int64) (SyncResult, error)
	SyncStandings(ctx context.Context, leagueID int64) (SyncResult, error)
	SyncLeagues(ctx context.Context) (SyncResult, error)
	SyncTopScorers(ctx context.Context, leagueID int64, season int) (SyncResult, error)
}

// SyncScheduleConfig holds one standard five-field cron spec per job. An
// empty spec disables that job.
type SyncScheduleConfig struct {
	Live       string
	Upcoming   string
	Finished   string
	Standings  string
	Leagues    string
	TopScorers string

	JobTimeout time.Duration
	Backlog    int
	Location   *time.Location
}

func DefaultSyncScheduleConfig() SyncScheduleConfig {
	return SyncScheduleConfig{
		Live:       "*/2 * * * *",
		Upcoming:   "0 */6 * * *",
		Finished:   "*/30 * * * *",
		Standings:  "0 */3 * * *",
		Leagues:    "0 4 * * *",
		TopScorers: "30 4 * * *",
		JobTimeout: defaultSyncJobTimeout,
		Backlog:    defaultSyncJobBacklog,
		Location:   time.UTC,
	}
}

// SyncJobStatus describes one registered job.
type SyncJobStatus struct {
	Name       string      `json:"name"`
	Spec       string      `json:"spec"`
	Next       *time.Time  `json:"next,omitempty"`
	Prev       *time.Time  `json:"prev,omitempty"`
	LastResult *SyncResult `json:"last_result,omitempty"`
	LastError  string      `json:"last_error,omitempty"`
}

// SyncSchedulerStatus is a snapshot of the scheduler.
type SyncSchedulerStatus struct {
	Running   bool            `json:"running"`
	StartedAt *time.Time      `json:"started_at,omitempty"`
	Jobs      []SyncJobStatus `json:"jobs"`
}

type scheduledJob struct {
	name string
	spec string
	run  func(ctx context.Context) (SyncResult, error)
}

type jobOutcome struct {
	result *SyncResult
	err    string
}

// SyncScheduler owns the recurring sync schedule. Start and Stop are
// idempotent; jobs run one at a time on a single pool worker.
type SyncScheduler struct {
	runner SyncRunner
	cfg    SyncScheduleConfig
	jobs   []scheduledJob
	logger *logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	cron      *cron.Cron
	pool      *ants.Pool
	cancel    context.CancelFunc
	startedAt time.Time
	entries   map[string]cron.EntryID
	outcomes  map[string]jobOutcome
}

func NewSyncScheduler(runner SyncRunner, cfg SyncScheduleConfig, logger *logging.Logger) (*SyncScheduler, error) {
	if runner == nil {
		return nil, fmt.Errorf("%w: sync runner is required", ErrDependencyUnavailable)
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = defaultSyncJobTimeout
	}
	if cfg.Backlog <= 0 {
		cfg.Backlog = defaultSyncJobBacklog
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	s := &SyncScheduler{
		runner:   runner,
		cfg:      cfg,
		logger:   logger.Named("sync_scheduler"),
		now:      time.Now,
		outcomes: make(map[string]jobOutcome),
	}

	candidates := []scheduledJob{
		{name: SyncJobLive, spec: cfg.Live, run: runner.SyncLiveMatches},
		{name: SyncJobUpcoming, spec: cfg.Upcoming, run: func(ctx context.Context) (SyncResult, error) {
			return runner.SyncUpcomingMatches(ctx, 0)
		}},
		{name: SyncJobFinished, spec: cfg.Finished, run: func(ctx context.Context) (SyncResult, error) {
			return runner.SyncFinishedMatches(ctx, 0)
		}},
		{name: SyncJobStandings, spec: cfg.Standings, run: func(ctx context.Context) (SyncResult, error) {
			return runner.SyncStandings(ctx, 0)
		}},
		{name: SyncJobLeagues, spec: cfg.Leagues, run: runner.SyncLeagues},
		{name: SyncJobTopScorers, spec: cfg.TopScorers, run: func(ctx context.Context) (SyncResult, error) {
			return runner.SyncTopScorers(ctx, 0, 0)
		}},
	}
	for _, job := range candidates {
		job.spec = strings.TrimSpace(job.spec)
		if job.spec == "" {
			continue
		}
		if _, err := cron.ParseStandard(job.spec); err != nil {
			return nil, fmt.Errorf("%w: invalid cron spec for %s job %q: %v", ErrInvalidInput, job.name, job.spec, err)
		}
		s.jobs = append(s.jobs, job)
	}

	return s, nil
}

// Start registers the recurring jobs. It reports false when the schedule was
// already running.
func (s *SyncScheduler) Start() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return false, nil
	}

	pool, err := ants.NewPool(1, ants.WithMaxBlockingTasks(s.cfg.Backlog))
	if err != nil {
		return false, fmt.Errorf("create sync job pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	scheduler := cron.New(cron.WithLocation(s.cfg.Location))
	entries := make(map[string]cron.EntryID, len(s.jobs))
	for _, job := range s.jobs {
		id, err := scheduler.AddFunc(job.spec, s.dispatch(ctx, pool, job))
		if err != nil {
			cancel()
			pool.Release()
			return false, fmt.Errorf("register %s job: %w", job.name, err)
		}
		entries[job.name] = id
	}
	scheduler.Start()

	s.cron = scheduler
	s.pool = pool
	s.cancel = cancel
	s.entries = entries
	s.startedAt = s.now().UTC()

	s.logger.Info("sync schedule started", "jobs", len(entries))
	return true, nil
}

// Stop clears the schedule, cancels the running job and waits for it to
// return. It reports false when nothing was running.
func (s *SyncScheduler) Stop() bool {
	s.mu.Lock()
	scheduler, pool, cancel := s.cron, s.pool, s.cancel
	s.cron, s.pool, s.cancel = nil, nil, nil
	s.entries = nil
	s.startedAt = time.Time{}
	s.mu.Unlock()

	if scheduler == nil {
		return false
	}

	stopped := scheduler.Stop()
	cancel()
	<-stopped.Done()
	if err := pool.ReleaseTimeout(schedulerReleaseTimeout); err != nil {
		s.logger.Warn("sync job pool did not drain in time", "error", err)
	}

	s.logger.Info("sync schedule stopped")
	return true
}

// Running reports whether the recurring schedule is active.
func (s *SyncScheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

func (s *SyncScheduler) Status() SyncSchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := SyncSchedulerStatus{
		Running: s.cron != nil,
		Jobs:    make([]SyncJobStatus, 0, len(s.jobs)),
	}
	if out.Running {
		startedAt := s.startedAt
		out.StartedAt = &startedAt
	}

	for _, job := range s.jobs {
		status := SyncJobStatus{Name: job.name, Spec: job.spec}
		if s.cron != nil {
			if id, ok := s.entries[job.name]; ok {
				entry := s.cron.Entry(id)
				status.Next = nonZeroTime(entry.Next)
				status.Prev = nonZeroTime(entry.Prev)
			}
		}
		if outcome, ok := s.outcomes[job.name]; ok {
			status.LastResult = outcome.result
			status.LastError = outcome.err
		}
		out.Jobs = append(out.Jobs, status)
	}
	return out
}

// RunJob executes a registered job immediately on the caller's goroutine.
func (s *SyncScheduler) RunJob(ctx context.Context, name string) (SyncResult, error) {
	for _, job := range s.jobs {
		if job.name == name {
			return s.execute(ctx, job)
		}
	}
	return SyncResult{}, fmt.Errorf("%w: unknown sync job %q", ErrNotFound, name)
}

func (s *SyncScheduler) dispatch(ctx context.Context, pool *ants.Pool, job scheduledJob) func() {
	return func() {
		err := pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			if _, err := s.execute(ctx, job); err != nil {
				s.logger.Warn("scheduled sync failed", "job", job.name, "error", err)
			}
		})
		if err != nil {
			if errors.Is(err, ants.ErrPoolOverload) {
				s.logger.Warn("sync job backlog full, skipping tick", "job", job.name)
				return
			}
			s.logger.Warn("submit scheduled sync failed", "job", job.name, "error", err)
		}
	}
}

func (s *SyncScheduler) execute(ctx context.Context, job scheduledJob) (SyncResult, error) {
	ctx, cancel := context.WithTimeout(WithSyncTrigger(ctx, syncrun.TriggerSchedule), s.cfg.JobTimeout)
	defer cancel()

	result, err := job.run(ctx)

	outcome := jobOutcome{}
	if err != nil {
		outcome.err = err.Error()
	} else {
		outcome.result = &result
	}
	s.mu.Lock()
	s.outcomes[job.name] = outcome
	s.mu.Unlock()

	return result, err
}

func nonZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
