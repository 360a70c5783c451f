package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"yourclean/models"
)

func TestFormatOrderText(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	order := models.Order{
		ID:            "ord-1",
		Name:          "Jana Novakova",
		Phone:         "+420777123456",
		Email:         "jana@example.com",
		CleaningLevel: models.LevelGeneralPlus,
		Area:          decimal.NewFromInt(65),
		Rooms:         3,
		Bathrooms:     1,
		TotalPrice:    decimal.RequireFromString("1845.00"),
		Address:       "Vinohradska 12, Praha",
		DesiredDate:   &date,
		DesiredTime:   "09:30",
		Comment:       "Ring twice",
		CreatedAt:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	text := FormatOrderText(order)

	assert.Contains(t, text, "Jana Novakova")
	assert.Contains(t, text, "+420777123456")
	assert.Contains(t, text, "jana@example.com")
	assert.Contains(t, text, "GENERAL PLUS")
	assert.Contains(t, text, "65 m²")
	assert.Contains(t, text, "Rooms: 3")
	assert.Contains(t, text, "Bathrooms: 1")
	assert.Contains(t, text, "14.09.2026")
	assert.Contains(t, text, "09:30")
	assert.Contains(t, text, "1845.00")
	assert.Contains(t, text, "Vinohradska 12, Praha")
	assert.Contains(t, text, "Ring twice")
	assert.Contains(t, text, "#ord-1")
}

func TestFormatOrderTextDiscountSavings(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	order := models.Order{
		ID:              "ord-2",
		Name:            "Petr",
		Phone:           "123",
		CleaningLevel:   models.LevelBasic,
		Area:            decimal.NewFromInt(50),
		TotalPrice:      decimal.RequireFromString("1260.00"),
		DesiredDate:     &date,
		DiscountPercent: 10,
	}

	text := FormatOrderText(order)

	// 1260 after -10% means 1400 before, so 140 saved.
	assert.Contains(t, text, "Discount: -10%")
	assert.Contains(t, text, "saved: 140.00")
}

func TestFormatOrderTextOmitsEmptySections(t *testing.T) {
	order := models.Order{
		ID:            "ord-3",
		Name:          "Eva",
		Phone:         "456",
		CleaningLevel: models.LevelBasic,
		Area:          decimal.NewFromInt(30),
		TotalPrice:    decimal.NewFromInt(1400),
	}

	text := FormatOrderText(order)

	assert.NotContains(t, text, "Email:")
	assert.NotContains(t, text, "Address:")
	assert.NotContains(t, text, "Comment:")
	assert.NotContains(t, text, "Date:")
}

func TestWhatsAppURL(t *testing.T) {
	url := whatsAppURL("+420 777-123-456", "hello world")
	assert.Equal(t, "https://wa.me/420777123456?text=hello+world", url)
}
