package syncrun

import "time"

type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

type Trigger string

const (
	TriggerManual   Trigger = "manual"
	TriggerSchedule Trigger = "schedule"
)

// Run is the audit record of one sync operation.
type Run struct {
	ID         string
	Operation  string
	Trigger    Trigger
	Status     Status
	Success    int
	Failed     int
	Records    int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// ResolveStatus derives a run status from its item counts.
func ResolveStatus(success, failed int) Status {
	switch {
	case failed == 0:
		return StatusSuccess
	case success == 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}
