package service

import (
	"context"
	"errors"
	"time"

	"organizame.app/api/internal/model"
	"organizame.app/api/internal/store"
)

var ErrInvalidPeriod = errors.New("invalid period")

// OverviewService lists tasks across all of an owner's boards within a
// due-date window. Tasks without a due date are always included.
type OverviewService interface {
	List(ctx context.Context, ownerUID string, period model.OverviewPeriod, refDate time.Time) ([]model.TaskOverview, error)
}

type overviewService struct {
	overviewStore store.OverviewStore
}

func NewOverviewService(overviewStore store.OverviewStore) OverviewService {
	return &overviewService{overviewStore: overviewStore}
}

func (s *overviewService) List(ctx context.Context, ownerUID string, period model.OverviewPeriod, refDate time.Time) ([]model.TaskOverview, error) {
	from, to, err := periodWindow(period, refDate)
	if err != nil {
		return nil, err
	}
	return s.overviewStore.ListForOwner(ctx, ownerUID, from, to)
}

// periodWindow resolves a period to an inclusive date range around refDate.
// Weeks run Monday through Sunday.
func periodWindow(period model.OverviewPeriod, refDate time.Time) (time.Time, time.Time, error) {
	day := time.Date(refDate.Year(), refDate.Month(), refDate.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case model.PeriodDay:
		return day, day, nil
	case model.PeriodWeek:
		offset := (int(day.Weekday()) + 6) % 7
		start := day.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case model.PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end := start.AddDate(0, 1, -1)
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
}
