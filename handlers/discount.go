package handlers

import (
	"net/http"

	"yourclean/services/discount"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DiscountHandler serves the booking-calendar discounts.
type DiscountHandler struct {
	CalendarSvc discount.CalendarService
	Logger      *zap.Logger
}

// NewDiscountHandler constructs a DiscountHandler.
func NewDiscountHandler(svc discount.CalendarService, logger *zap.Logger) *DiscountHandler {
	return &DiscountHandler{CalendarSvc: svc, Logger: logger}
}

// GetCalendarDiscounts handles GET /api/calendar-discounts.
func (h *DiscountHandler) GetCalendarDiscounts(c *gin.Context) {
	calendar, err := h.CalendarSvc.CalendarMap(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetCalendarDiscounts: failed to fetch discounts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch calendar discounts"})
		return
	}
	c.JSON(http.StatusOK, calendar)
}
