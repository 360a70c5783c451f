package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	contentRepo "yourclean/database/repository/content"
	orderRepo "yourclean/database/repository/order"
	"yourclean/models"
	"yourclean/services/discount"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TypeOrderNotify is the asynq task type for new-order notifications.
const TypeOrderNotify = "order:notify"

// CreateOrderInput is the order-intake payload after transport decoding.
type CreateOrderInput struct {
	Name            string
	Phone           string
	Email           string
	Level           string
	Area            decimal.Decimal
	Rooms           int
	Bathrooms       int
	TotalPrice      decimal.Decimal
	Address         string
	DesiredDate     string // YYYY-MM-DD, optional
	DesiredTime     string // HH:MM, optional
	DiscountPercent int
	Comment         string
}

// CreateOrderResult carries the stored order plus the hand-off artifacts the
// frontend shows after submission.
type CreateOrderResult struct {
	Order       models.Order `json:"order"`
	OrderText   string       `json:"order_text"`
	WhatsAppURL string       `json:"whatsapp_url,omitempty"`
}

// OrderService handles order intake and admin order management.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	List(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Order, error)
}

// DefaultOrderService stores orders and fans out staff notifications via the
// asynq queue.
type DefaultOrderService struct {
	Repo        orderRepo.OrderRepository
	ContentRepo contentRepo.ContentRepository
	Calendar    discount.CalendarService
	Queue       *asynq.Client
	Logger      *zap.Logger
}

// Create validates and stores a new order, then enqueues a notify task.
func (s *DefaultOrderService) Create(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
		return nil, newInvalidOrderError("name and phone are required")
	}
	if !models.ValidLevel(input.Level) {
		return nil, newInvalidOrderError(fmt.Sprintf("unknown cleaning level %q", input.Level))
	}
	if !input.Area.IsPositive() {
		return nil, newInvalidOrderError("area is required")
	}
	if input.Rooms < 0 || input.Bathrooms < 0 {
		return nil, newInvalidOrderError("counts cannot be negative")
	}
	if input.TotalPrice.IsNegative() {
		return nil, newInvalidOrderError("total price cannot be negative")
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, newInvalidOrderError("discount percent must be between 0 and 100")
	}

	order := models.Order{
		Name:            strings.TrimSpace(input.Name),
		Phone:           strings.TrimSpace(input.Phone),
		Email:           strings.TrimSpace(input.Email),
		CleaningLevel:   input.Level,
		Area:            input.Area,
		Rooms:           input.Rooms,
		Bathrooms:       input.Bathrooms,
		TotalPrice:      input.TotalPrice,
		Address:         strings.TrimSpace(input.Address),
		DiscountPercent: input.DiscountPercent,
		Comment:         strings.TrimSpace(input.Comment),
		Status:          models.OrderStatusNew,
	}

	// Malformed date/time inputs are dropped rather than rejected, matching
	// the intake form's lenient behavior.
	if input.DesiredDate != "" {
		if d, err := time.Parse("2006-01-02", input.DesiredDate); err == nil {
			order.DesiredDate = &d
		}
	}
	if input.DesiredTime != "" {
		if _, err := time.Parse("15:04", input.DesiredTime); err == nil {
			order.DesiredTime = input.DesiredTime
		}
	}

	// A claimed discount must be backed by the calendar for the chosen date.
	if input.DiscountPercent > 0 && s.Calendar != nil {
		if order.DesiredDate == nil {
			return nil, newInvalidOrderError("a valid desired date is required to apply a discount")
		}
		available, err := s.Calendar.PercentFor(ctx, *order.DesiredDate)
		if err != nil {
			return nil, fmt.Errorf("order: failed to check discount calendar: %w", err)
		}
		if input.DiscountPercent > available {
			return nil, newInvalidOrderError(fmt.Sprintf("discount %d%% is not available on %s",
				input.DiscountPercent, order.DesiredDate.Format("2006-01-02")))
		}
	}

	id, err := s.Repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("order: failed to store order: %w", err)
	}
	order.ID = id
	order.CreatedAt = time.Now()

	text := FormatOrderText(order)
	result := &CreateOrderResult{
		Order:     order,
		OrderText: text,
	}

	if info, err := s.ContentRepo.GetCompanyInfo(ctx); err == nil && info.Social.WhatsApp != "" {
		result.WhatsAppURL = whatsAppURL(info.Social.WhatsApp, text)
	}

	s.enqueueNotify(order)
	return result, nil
}

// List returns orders for the admin panel.
func (s *DefaultOrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, newInvalidOrderError(fmt.Sprintf("unknown order status %q", status))
	}
	return s.Repo.List(ctx, status)
}

// UpdateStatus transitions an order and returns the updated document.
func (s *DefaultOrderService) UpdateStatus(ctx context.Context, id, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, newInvalidOrderError(fmt.Sprintf("unknown order status %q", status))
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultOrderService) enqueueNotify(order models.Order) {
	if s.Queue == nil {
		return
	}
	payload, err := json.Marshal(models.OrderNotifyPayload{
		OrderID: order.ID,
		Title:   "New cleaning order",
		Body:    fmt.Sprintf("%s, %s m², %s Kč", order.Name, order.Area.String(), order.TotalPrice.StringFixed(2)),
	})
	if err != nil {
		s.Logger.Error("order: failed to marshal notify payload", zap.Error(err))
		return
	}
	task := asynq.NewTask(TypeOrderNotify, payload)
	if _, err := s.Queue.Enqueue(task, asynq.MaxRetry(3)); err != nil {
		s.Logger.Error("order: failed to enqueue notify task",
			zap.String("orderId", order.ID), zap.Error(err))
	}
}

func whatsAppURL(number, text string) string {
	cleaned := strings.NewReplacer("+", "", " ", "", "-", "").Replace(number)
	return "https://wa.me/" + cleaned + "?text=" + url.QueryEscape(text)
}
