package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"yourclean/services/pricing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Intake caps mirrored by the calculator frontend.
const (
	maxRooms     = 30
	maxBathrooms = 30
	maxArea      = 50000
)

// QuoteHandler serves the public price calculator.
type QuoteHandler struct {
	QuoteSvc pricing.QuoteService
	Logger   *zap.Logger
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(svc pricing.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{QuoteSvc: svc, Logger: logger}
}

// CalculatePrice handles GET /api/calculate.
func (h *QuoteHandler) CalculatePrice(c *gin.Context) {
	req := pricing.QuoteRequest{
		Level: c.DefaultQuery("level", "basic"),
	}

	var err error
	if req.Area, err = parseDecimalQuery(c, "area"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid area value"})
		return
	}
	if req.Rooms, err = parseIntQuery(c, "rooms"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rooms value"})
		return
	}
	if req.Bathrooms, err = parseIntQuery(c, "bathrooms"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bathrooms value"})
		return
	}

	if req.Rooms > maxRooms || req.Bathrooms > maxBathrooms {
		c.JSON(http.StatusBadRequest, gin.H{"error": "maximum 30 rooms and 30 bathrooms"})
		return
	}
	if req.Area.GreaterThan(decimal.NewFromInt(maxArea)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "area cannot exceed 50000 m²"})
		return
	}

	// Selections arrive as JSON-encoded query values, the way the
	// calculator widget submits them.
	if raw := c.Query("extra_services"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.ExtraServiceIDs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid extra_services value"})
			return
		}
	}
	if raw := c.Query("dry_cleaning"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.DryCleaning); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dry_cleaning value"})
			return
		}
	}

	quote, err := h.QuoteSvc.Quote(c.Request.Context(), req)
	if err != nil {
		var validationErr *pricing.ValidationError
		var configErr *pricing.ConfigError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.As(err, &configErr):
			// Admin data gap, not a user mistake.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "prices not configured: " + configErr.Message,
			})
		default:
			h.Logger.Error("CalculatePrice: quote failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to calculate price"})
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}

func parseDecimalQuery(c *gin.Context, name string) (decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func parseIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
