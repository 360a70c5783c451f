package discount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"yourclean/models"
)

type fakeDiscountRepo struct {
	entries []models.DateDiscount
	err     error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeDiscountRepo) List(ctx context.Context) ([]models.DateDiscount, error) {
	return f.entries, f.err
}

func (f *fakeDiscountRepo) ListActiveInWindow(ctx context.Context, from, to time.Time) ([]models.DateDiscount, error) {
	f.gotFrom, f.gotTo = from, to
	return f.entries, f.err
}

func (f *fakeDiscountRepo) Create(ctx context.Context, d models.DateDiscount) (string, error) {
	return "", nil
}

func (f *fakeDiscountRepo) Update(ctx context.Context, d models.DateDiscount) error { return nil }

func (f *fakeDiscountRepo) Delete(ctx context.Context, id string) error { return nil }

func day(offset int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, offset)
}

func TestCalendarMapMaxPerDate(t *testing.T) {
	repo := &fakeDiscountRepo{entries: []models.DateDiscount{
		{Date: day(1), Percent: 10},
		{Date: day(1), Percent: 25},
		{Date: day(1), Percent: 15},
		{Date: day(3), Percent: 5},
	}}
	svc := &DefaultCalendarService{Repo: repo, Logger: zap.NewNop()}

	calendar, err := svc.CalendarMap(context.Background())
	require.NoError(t, err)

	assert.Len(t, calendar, 2)
	assert.Equal(t, 25, calendar[day(1).Format(dateKeyLayout)])
	assert.Equal(t, 5, calendar[day(3).Format(dateKeyLayout)])
}

func TestCalendarMapWindowBounds(t *testing.T) {
	repo := &fakeDiscountRepo{}
	svc := &DefaultCalendarService{Repo: repo, WindowDays: 14, Logger: zap.NewNop()}

	_, err := svc.CalendarMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, day(0), repo.gotFrom)
	assert.Equal(t, day(14), repo.gotTo)
}

func TestCalendarMapDefaultWindow(t *testing.T) {
	repo := &fakeDiscountRepo{}
	svc := &DefaultCalendarService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.CalendarMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, day(60), repo.gotTo)
}

func TestCalendarMapRepoError(t *testing.T) {
	repo := &fakeDiscountRepo{err: errors.New("boom")}
	svc := &DefaultCalendarService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.CalendarMap(context.Background())
	require.Error(t, err)
}

func TestPercentFor(t *testing.T) {
	repo := &fakeDiscountRepo{entries: []models.DateDiscount{
		{Date: day(2), Percent: 10},
		{Date: day(2), Percent: 20},
	}}
	svc := &DefaultCalendarService{Repo: repo, Logger: zap.NewNop()}

	percent, err := svc.PercentFor(context.Background(), day(2))
	require.NoError(t, err)
	assert.Equal(t, 20, percent)

	repo.entries = nil
	percent, err = svc.PercentFor(context.Background(), day(5))
	require.NoError(t, err)
	assert.Equal(t, 0, percent)
}
