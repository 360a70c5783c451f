package order

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	contentRepo "yourclean/database/repository/content"
	"yourclean/models"
)

type fakeOrderRepo struct {
	created *models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	f.created = &order
	return "ord-1", nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return f.created, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, status string) ([]models.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

// fakeContentRepo overrides only what order intake touches.
type fakeContentRepo struct {
	contentRepo.ContentRepository
}

func (fakeContentRepo) GetCompanyInfo(ctx context.Context) (*models.CompanyInfo, error) {
	return &models.CompanyInfo{}, nil
}

type fakeCalendar struct {
	percent int
}

func (f fakeCalendar) CalendarMap(ctx context.Context) (map[string]int, error) {
	return nil, nil
}

func (f fakeCalendar) PercentFor(ctx context.Context, date time.Time) (int, error) {
	return f.percent, nil
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Name:       "Jana",
		Phone:      "+420777123456",
		Level:      models.LevelBasic,
		Area:       decimal.NewFromInt(50),
		Rooms:      2,
		Bathrooms:  1,
		TotalPrice: decimal.NewFromInt(1455),
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := &DefaultOrderService{Logger: zap.NewNop()}

	cases := []struct {
		name   string
		mutate func(*CreateOrderInput)
	}{
		{"missing name", func(in *CreateOrderInput) { in.Name = "  " }},
		{"missing phone", func(in *CreateOrderInput) { in.Phone = "" }},
		{"unknown level", func(in *CreateOrderInput) { in.Level = "deluxe" }},
		{"zero area", func(in *CreateOrderInput) { in.Area = decimal.Zero }},
		{"negative rooms", func(in *CreateOrderInput) { in.Rooms = -1 }},
		{"negative price", func(in *CreateOrderInput) { in.TotalPrice = decimal.NewFromInt(-5) }},
		{"discount over 100", func(in *CreateOrderInput) { in.DiscountPercent = 101 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			var invalidErr *InvalidOrderError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestCreateOrderDiscountVerifiedAgainstCalendar(t *testing.T) {
	svc := &DefaultOrderService{
		Repo:        &fakeOrderRepo{},
		ContentRepo: fakeContentRepo{},
		Calendar:    fakeCalendar{percent: 10},
		Logger:      zap.NewNop(),
	}

	input := validInput()
	input.DesiredDate = "2026-09-14"
	input.DiscountPercent = 20

	_, err := svc.Create(context.Background(), input)
	var invalidErr *InvalidOrderError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Message, "20%")

	input.DiscountPercent = 10
	result, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Order.DiscountPercent)
}

func TestCreateOrderDiscountNeedsDate(t *testing.T) {
	svc := &DefaultOrderService{
		Repo:        &fakeOrderRepo{},
		ContentRepo: fakeContentRepo{},
		Calendar:    fakeCalendar{percent: 10},
		Logger:      zap.NewNop(),
	}

	input := validInput()
	input.DiscountPercent = 10

	_, err := svc.Create(context.Background(), input)
	var invalidErr *InvalidOrderError
	require.ErrorAs(t, err, &invalidErr)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultOrderService{Logger: zap.NewNop()}

	_, err := svc.List(context.Background(), "archived")
	var invalidErr *InvalidOrderError
	require.ErrorAs(t, err, &invalidErr)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := &DefaultOrderService{Logger: zap.NewNop()}

	_, err := svc.UpdateStatus(context.Background(), "ord-1", "archived")
	var invalidErr *InvalidOrderError
	require.ErrorAs(t, err, &invalidErr)
}

func TestValidOrderStatuses(t *testing.T) {
	for _, status := range []string{
		models.OrderStatusNew,
		models.OrderStatusConfirmed,
		models.OrderStatusInProgress,
		models.OrderStatusCompleted,
		models.OrderStatusCancelled,
	} {
		assert.True(t, models.ValidOrderStatus(status), status)
	}
	assert.False(t, models.ValidOrderStatus("archived"))
}
