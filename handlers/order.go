package handlers

import (
	"errors"
	"net/http"

	"yourclean/services/order"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OrderHandler serves the public order-intake endpoint.
type OrderHandler struct {
	OrderSvc order.OrderService
	Logger   *zap.Logger
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc order.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{OrderSvc: svc, Logger: logger}
}

type createOrderBody struct {
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Level           string          `json:"level"`
	Area            decimal.Decimal `json:"area"`
	Rooms           int             `json:"rooms"`
	Bathrooms       int             `json:"bathrooms"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Address         string          `json:"address"`
	DesiredDate     string          `json:"desired_date"`
	DesiredTime     string          `json:"desired_time"`
	DiscountPercent int             `json:"applied_discount_percent"`
	Comment         string          `json:"comment"`
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var body createOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	result, err := h.OrderSvc.Create(c.Request.Context(), order.CreateOrderInput{
		Name:            body.Name,
		Phone:           body.Phone,
		Email:           body.Email,
		Level:           body.Level,
		Area:            body.Area,
		Rooms:           body.Rooms,
		Bathrooms:       body.Bathrooms,
		TotalPrice:      body.TotalPrice,
		Address:         body.Address,
		DesiredDate:     body.DesiredDate,
		DesiredTime:     body.DesiredTime,
		DiscountPercent: body.DiscountPercent,
		Comment:         body.Comment,
	})
	if err != nil {
		var invalidErr *order.InvalidOrderError
		if errors.As(err, &invalidErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalidErr.Message})
			return
		}
		h.Logger.Error("CreateOrder: failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		return
	}

	response := gin.H{
		"success":    true,
		"message":    "order created",
		"order_id":   result.Order.ID,
		"order_text": result.OrderText,
	}
	if result.WhatsAppURL != "" {
		response["whatsapp_url"] = result.WhatsAppURL
	}
	c.JSON(http.StatusCreated, response)
}
