package usecase

import "time"

func (s *FootballService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *SyncService) SetClock(now func() time.Time) {
	s.now = now
}
