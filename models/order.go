package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderStatusNew        = "new"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer's cleaning request.
type Order struct {
	ID              string          `bson:"id" json:"id"`
	Name            string          `bson:"name" json:"name"`
	Phone           string          `bson:"phone" json:"phone"`
	Email           string          `bson:"email,omitempty" json:"email,omitempty"`
	CleaningLevel   string          `bson:"cleaningLevel" json:"cleaning_level"`
	Area            decimal.Decimal `bson:"area" json:"area"`
	Rooms           int             `bson:"rooms" json:"rooms"`
	Bathrooms       int             `bson:"bathrooms" json:"bathrooms"`
	TotalPrice      decimal.Decimal `bson:"totalPrice" json:"total_price"`
	Address         string          `bson:"address,omitempty" json:"address,omitempty"`
	DesiredDate     *time.Time      `bson:"desiredDate,omitempty" json:"desired_date,omitempty"`
	DesiredTime     string          `bson:"desiredTime,omitempty" json:"desired_time,omitempty"`
	DiscountPercent int             `bson:"discountPercent" json:"applied_discount_percent"`
	Comment         string          `bson:"comment,omitempty" json:"comment,omitempty"`
	Status          string          `bson:"status" json:"status"`
	CreatedAt       time.Time       `bson:"createdAt" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updated_at"`
}

// OrderNotifyPayload is the asynq task payload for new-order notifications.
type OrderNotifyPayload struct {
	OrderID string `json:"orderId"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}
