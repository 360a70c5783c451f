package discount

import (
	"context"
	"time"

	discountRepo "yourclean/database/repository/discount"

	"go.uber.org/zap"
)

const dateKeyLayout = "2006-01-02"

// CalendarService exposes per-date discount percentages for the booking
// calendar.
type CalendarService interface {
	CalendarMap(ctx context.Context) (map[string]int, error)
	PercentFor(ctx context.Context, date time.Time) (int, error)
}

// DefaultCalendarService aggregates discount entries over a bounded forward
// window. When several active entries share a date, the maximum wins.
type DefaultCalendarService struct {
	Repo       discountRepo.DiscountRepository
	WindowDays int
	Logger     *zap.Logger
}

// CalendarMap returns {"2026-09-14": 20, ...} for the forward window.
// Dates without an entry are absent, which clients read as no discount.
func (s *DefaultCalendarService) CalendarMap(ctx context.Context) (map[string]int, error) {
	today := startOfDay(time.Now())
	end := today.AddDate(0, 0, s.windowDays())

	entries, err := s.Repo.ListActiveInWindow(ctx, today, end)
	if err != nil {
		return nil, err
	}

	calendar := make(map[string]int, len(entries))
	for _, entry := range entries {
		key := entry.Date.Format(dateKeyLayout)
		if entry.Percent > calendar[key] {
			calendar[key] = entry.Percent
		}
	}
	return calendar, nil
}

// PercentFor resolves the discount for one date; zero when none is set.
func (s *DefaultCalendarService) PercentFor(ctx context.Context, date time.Time) (int, error) {
	day := startOfDay(date)
	entries, err := s.Repo.ListActiveInWindow(ctx, day, day)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, entry := range entries {
		if entry.Percent > best {
			best = entry.Percent
		}
	}
	return best, nil
}

func (s *DefaultCalendarService) windowDays() int {
	if s.WindowDays <= 0 {
		return 60
	}
	return s.WindowDays
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
