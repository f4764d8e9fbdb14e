package report

import (
	"time"

	"Gin_redis_lending_tracker/models"
)

// Source is anything that can hand out a consistent copy of the collections.
type Source interface {
	Snapshot() ([]models.User, []models.Equipment, []models.Borrow)
}

type Service struct {
	src Source
	now func() time.Time
}

func NewService(src Source, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{src: src, now: now}
}

func (s *Service) Timeline(mode Mode, rng Range) (Timeline, error) {
	_, _, borrows := s.src.Snapshot()
	return BuildTimeline(borrows, mode, rng)
}

// RecentTimeline covers the last n days (DAY) or n months (MONTH) up to today.
func (s *Service) RecentTimeline(mode Mode, n int) (Timeline, error) {
	rng := LastDays(n, s.now())
	if mode == ModeMonth {
		rng = LastMonths(n, s.now())
	}
	return s.Timeline(mode, rng)
}

func (s *Service) TopBorrowed(n int) []TopRow {
	_, equipment, borrows := s.src.Snapshot()
	return TopBorrowed(borrows, equipment, n)
}

func (s *Service) Summary() Summary {
	return Summarize(s.src.Snapshot())
}
