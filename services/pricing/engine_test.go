package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yourclean/models"
)

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// testSnapshot mirrors a typical production price table: a 0-50 band with a
// was-price, a 51-80 band and an explicit per-10-m² step band.
func testSnapshot() Snapshot {
	return Snapshot{
		Bands: []models.PriceBand{
			{
				ID: "band-low", Level: models.LevelBasic, Title: "Up to 50 m²",
				AreaFrom: intPtr(0), AreaTo: intPtr(50),
				Price: decimal.NewFromInt(1400), OldPrice: decPtr(1750),
				IsActive: true, SortOrder: 1,
			},
			{
				ID: "band-mid", Level: models.LevelBasic, Title: "51-80 m²",
				AreaFrom: intPtr(51), AreaTo: intPtr(80),
				Price: decimal.NewFromInt(1640), IsActive: true, SortOrder: 2,
			},
			{
				ID: "band-step", Level: models.LevelBasic, Title: "Each +10 m² over 80",
				AreaFrom: intPtr(81),
				Price:    decimal.NewFromInt(120), IsActive: true, SortOrder: 3,
			},
		},
		Rates: models.RateSettings{
			PricePerRoom:     decimal.NewFromInt(20),
			PricePerBathroom: decimal.NewFromInt(15),
		},
		Extras: []models.ExtraService{
			{ID: "windows", Name: "Window cleaning", PriceType: models.PriceTypeFixed,
				Price: decimal.NewFromInt(300), IsActive: true},
			{ID: "polish", Name: "Floor polishing", PriceType: models.PriceTypePerM2,
				Price: decimal.NewFromInt(5), IsActive: true},
			{ID: "retired", Name: "Retired extra", PriceType: models.PriceTypeFixed,
				Price: decimal.NewFromInt(999), IsActive: false},
		},
		DryItems: []models.DryCleaningItem{
			{ID: "sofa", Name: "Sofa", Price: decimal.NewFromInt(800),
				Unit: models.UnitItem, IsActive: true},
			{ID: "carpet", Name: "Carpet", Price: decimal.NewFromInt(120),
				Unit: models.UnitM2, IsActive: true},
			{ID: "gone", Name: "Discontinued", Price: decimal.NewFromInt(500),
				Unit: models.UnitItem, IsActive: false},
		},
	}
}

func TestComputeTierTable(t *testing.T) {
	snap := testSnapshot()

	cases := []struct {
		area int64
		want string
	}{
		{1, "1400"},
		{50, "1400"},
		{51, "1640"},
		{80, "1640"},
		{81, "1760"},
		{90, "1760"},
		{91, "1880"},
		{100, "1880"},
		{101, "2000"},
	}
	for _, tc := range cases {
		quote, err := Compute(snap, QuoteRequest{
			Level: models.LevelBasic,
			Area:  decimal.NewFromInt(tc.area),
		})
		require.NoError(t, err, "area %d", tc.area)
		assert.True(t, quote.Total.Equal(decimal.RequireFromString(tc.want)),
			"area %d: want %s, got %s", tc.area, tc.want, quote.Total)
	}
}

func TestComputeFractionalAreaFloors(t *testing.T) {
	snap := testSnapshot()

	// 50.9 m² still falls into the 0-50 band.
	quote, err := Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		Area:  decimal.RequireFromString("50.9"),
	})
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(1400)), "got %s", quote.Total)
}

func TestComputeRoomsAndBathrooms(t *testing.T) {
	snap := testSnapshot()

	quote, err := Compute(snap, QuoteRequest{
		Level:     models.LevelBasic,
		Rooms:     2,
		Bathrooms: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "55.00", quote.Total.StringFixed(2))
	assert.Equal(t, "55.00", quote.Breakdown.RoomsBathrooms.StringFixed(2))
	assert.True(t, quote.Breakdown.Cleaning.IsZero())
}

func TestComputeFullQuote(t *testing.T) {
	snap := testSnapshot()

	quote, err := Compute(snap, QuoteRequest{
		Level:     models.LevelBasic,
		Area:      decimal.NewFromInt(50),
		Rooms:     2,
		Bathrooms: 1,
		DryCleaning: map[string]decimal.Decimal{
			"sofa": decimal.NewFromInt(1),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2255.00", quote.Total.StringFixed(2))
	assert.Equal(t, "1400.00", quote.Breakdown.Cleaning.StringFixed(2))
	assert.Equal(t, "55.00", quote.Breakdown.RoomsBathrooms.StringFixed(2))
	assert.Equal(t, "800.00", quote.Breakdown.DryCleaning.StringFixed(2))

	// Was-price: band reference plus the same additive components.
	require.NotNil(t, quote.OldPrice)
	assert.Equal(t, "2605.00", quote.OldPrice.StringFixed(2))
}

func TestComputeOldPriceNotOfferedBeyond80(t *testing.T) {
	snap := testSnapshot()
	old := decimal.NewFromInt(2000)
	snap.Bands[1].OldPrice = &old

	quote, err := Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		Area:  decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	require.NotNil(t, quote.OldPrice)

	quote, err = Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		Area:  decimal.NewFromInt(81),
	})
	require.NoError(t, err)
	assert.Nil(t, quote.OldPrice)
}

func TestComputeValidation(t *testing.T) {
	snap := testSnapshot()

	var vErr *ValidationError

	_, err := Compute(snap, QuoteRequest{Level: "deluxe"})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "level", vErr.Field)

	_, err = Compute(snap, QuoteRequest{Level: models.LevelBasic, Rooms: -1})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "rooms", vErr.Field)

	_, err = Compute(snap, QuoteRequest{Level: models.LevelBasic, Bathrooms: -2})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "bathrooms", vErr.Field)

	_, err = Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		Area:  decimal.NewFromInt(-10),
	})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "area", vErr.Field)
}

func TestComputeNoBandsConfigured(t *testing.T) {
	snap := testSnapshot()
	snap.Bands = nil

	_, err := Compute(snap, QuoteRequest{
		Level: models.LevelGeneral,
		Area:  decimal.NewFromInt(40),
	})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestComputeZeroAreaSkipsCleaning(t *testing.T) {
	// With no area, an empty price table is fine: nothing to price.
	quote, err := Compute(Snapshot{
		Rates: models.RateSettings{
			PricePerRoom:     decimal.NewFromInt(20),
			PricePerBathroom: decimal.NewFromInt(15),
		},
	}, QuoteRequest{Level: models.LevelBasic, Rooms: 1})
	require.NoError(t, err)
	assert.Equal(t, "20.00", quote.Total.StringFixed(2))
}

func TestExtraServicesCharge(t *testing.T) {
	snap := testSnapshot()

	quote, err := Compute(snap, QuoteRequest{
		Level:           models.LevelBasic,
		Area:            decimal.NewFromInt(40),
		ExtraServiceIDs: []string{"windows", "polish", "retired", "missing"},
	})
	require.NoError(t, err)

	// windows 300 + polish 5*40; inactive and unknown IDs are skipped.
	assert.Equal(t, "500.00", quote.Breakdown.ExtraServices.StringFixed(2))
}

func TestExtraServicesPerM2WithoutArea(t *testing.T) {
	snap := testSnapshot()

	// A per-m² extra without a cleaning area contributes nothing.
	quote, err := Compute(snap, QuoteRequest{
		Level:           models.LevelBasic,
		ExtraServiceIDs: []string{"polish"},
	})
	require.NoError(t, err)
	assert.True(t, quote.Breakdown.ExtraServices.IsZero())
}

func TestDryCleaningCharge(t *testing.T) {
	snap := testSnapshot()

	quote, err := Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		DryCleaning: map[string]decimal.Decimal{
			"sofa":   decimal.NewFromInt(2),
			"carpet": decimal.NewFromInt(10),
			"gone":   decimal.NewFromInt(1),
		},
	})
	require.NoError(t, err)

	// 2 sofas at 800 + 10 m² of carpet at 120; inactive item skipped.
	assert.Equal(t, "2800.00", quote.Breakdown.DryCleaning.StringFixed(2))
}

func TestDryCleaningItemDefaultsToOne(t *testing.T) {
	snap := testSnapshot()

	quote, err := Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		DryCleaning: map[string]decimal.Decimal{
			"sofa": decimal.Zero,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "800.00", quote.Breakdown.DryCleaning.StringFixed(2))
}

func TestDryCleaningPerM2RequiresArea(t *testing.T) {
	snap := testSnapshot()

	_, err := Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		DryCleaning: map[string]decimal.Decimal{
			"carpet": decimal.Zero,
		},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "dry_cleaning", vErr.Field)
}

func TestDryCleaningUnknownUnit(t *testing.T) {
	snap := testSnapshot()
	snap.DryItems = append(snap.DryItems, models.DryCleaningItem{
		ID: "odd", Name: "Odd item", Price: decimal.NewFromInt(10),
		Unit: "kg", IsActive: true,
	})

	_, err := Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		DryCleaning: map[string]decimal.Decimal{
			"odd": decimal.NewFromInt(1),
		},
	})
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestPromoTextPassThrough(t *testing.T) {
	snap := testSnapshot()
	snap.Promo = &models.PromoText{ID: "p1", Text: "Autumn -10%", IsActive: true}

	quote, err := Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		Area:  decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.Equal(t, "Autumn -10%", quote.PromoText)

	snap.Promo.IsActive = false
	quote, err = Compute(snap, QuoteRequest{
		Level: models.LevelBasic,
		Area:  decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.Empty(t, quote.PromoText)
}

func TestComputeMonotonicOverArea(t *testing.T) {
	snap := testSnapshot()

	prev := decimal.Zero
	for area := int64(1); area <= 200; area += 7 {
		quote, err := Compute(snap, QuoteRequest{
			Level: models.LevelBasic,
			Area:  decimal.NewFromInt(area),
		})
		require.NoError(t, err)
		assert.True(t, quote.Total.GreaterThanOrEqual(prev),
			"price dropped at area %d: %s < %s", area, quote.Total, prev)
		prev = quote.Total
	}
}
