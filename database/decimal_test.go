package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"yourclean/models"
)

func TestDecimalRoundTripPriceBand(t *testing.T) {
	reg := Registry()

	old := decimal.RequireFromString("1750.50")
	from, to := 0, 50
	band := models.PriceBand{
		ID:       "band-low",
		Level:    models.LevelBasic,
		AreaFrom: &from,
		AreaTo:   &to,
		Price:    decimal.NewFromInt(1400),
		OldPrice: &old,
		IsActive: true,
	}

	raw, err := bson.MarshalWithRegistry(reg, band)
	require.NoError(t, err)

	var got models.PriceBand
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &got))

	assert.True(t, got.Price.Equal(band.Price), "price: stored %s, read back %s", band.Price, got.Price)
	require.NotNil(t, got.OldPrice)
	assert.True(t, got.OldPrice.Equal(old), "old price: stored %s, read back %s", old, got.OldPrice)
}

func TestDecimalRoundTripRatesAndOrder(t *testing.T) {
	reg := Registry()

	rates := models.RateSettings{
		PricePerRoom:     decimal.NewFromInt(20),
		PricePerBathroom: decimal.NewFromInt(15),
	}
	raw, err := bson.MarshalWithRegistry(reg, rates)
	require.NoError(t, err)
	var gotRates models.RateSettings
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &gotRates))
	assert.True(t, gotRates.PricePerRoom.Equal(rates.PricePerRoom))
	assert.True(t, gotRates.PricePerBathroom.Equal(rates.PricePerBathroom))

	order := models.Order{
		ID:         "ord-1",
		Name:       "Jana",
		Phone:      "123",
		Area:       decimal.RequireFromString("64.5"),
		TotalPrice: decimal.RequireFromString("2255.00"),
	}
	raw, err = bson.MarshalWithRegistry(reg, order)
	require.NoError(t, err)
	var gotOrder models.Order
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &gotOrder))
	assert.True(t, gotOrder.Area.Equal(order.Area))
	assert.True(t, gotOrder.TotalPrice.Equal(order.TotalPrice))
}

func TestDecimalDecodeLegacyRepresentations(t *testing.T) {
	reg := Registry()

	// Amounts written before the Decimal128 codec existed may be strings,
	// doubles or integers.
	cases := []bson.M{
		{"price": "1400.50"},
		{"price": 1400.50},
		{"price": int32(1400)},
		{"price": int64(1400)},
	}
	for _, doc := range cases {
		raw, err := bson.Marshal(doc)
		require.NoError(t, err)

		var item models.DryCleaningItem
		require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &item))
		assert.False(t, item.Price.IsZero(), "doc %v read back as zero", doc)
	}
}

func TestDecimalEncodesAsDecimal128(t *testing.T) {
	reg := Registry()

	svc := models.ExtraService{ID: "windows", Price: decimal.RequireFromString("300.25")}
	raw, err := bson.MarshalWithRegistry(reg, svc)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))
	stored, ok := doc["price"].(primitive.Decimal128)
	require.True(t, ok, "price stored as %T, want Decimal128", doc["price"])
	assert.Equal(t, "300.25", stored.String())
}
