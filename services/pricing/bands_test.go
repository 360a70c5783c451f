package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yourclean/models"
)

func TestResolveBandsRoles(t *testing.T) {
	bands := []models.PriceBand{
		{ID: "low", AreaFrom: intPtr(0), AreaTo: intPtr(50), Price: decimal.NewFromInt(1400)},
		{ID: "mid", AreaFrom: intPtr(51), AreaTo: intPtr(80), Price: decimal.NewFromInt(1640)},
		{ID: "step", AreaFrom: intPtr(81), Price: decimal.NewFromInt(120)},
	}
	set := resolveBands(bands)
	require.NotNil(t, set.lowBand)
	require.NotNil(t, set.midBand)
	require.NotNil(t, set.stepBand)
	assert.Equal(t, "low", set.lowBand.ID)
	assert.Equal(t, "mid", set.midBand.ID)
	assert.Equal(t, "step", set.stepBand.ID)
}

func TestResolveBandsNilAreaFromIsLow(t *testing.T) {
	bands := []models.PriceBand{
		{ID: "low", AreaTo: intPtr(50), Price: decimal.NewFromInt(1400)},
	}
	set := resolveBands(bands)
	require.NotNil(t, set.lowBand)
	assert.Nil(t, set.midBand)
}

func TestResolveBandsFirstMatchWins(t *testing.T) {
	bands := []models.PriceBand{
		{ID: "low-a", AreaFrom: intPtr(0), AreaTo: intPtr(50), Price: decimal.NewFromInt(1400)},
		{ID: "low-b", AreaFrom: intPtr(0), AreaTo: intPtr(50), Price: decimal.NewFromInt(9999)},
	}
	set := resolveBands(bands)
	require.NotNil(t, set.lowBand)
	assert.Equal(t, "low-a", set.lowBand.ID)
}

func TestResolveBandsTitleMarker(t *testing.T) {
	// A bounded band whose title follows the step-entry convention still
	// resolves as the step band.
	cases := []string{
		"Each +10 m²",
		"Příplatek za 10 m²",
		"extra 10m2",
		"+ 10 sqm",
	}
	for _, title := range cases {
		bands := []models.PriceBand{
			{ID: "s", Title: title, AreaFrom: intPtr(81), AreaTo: intPtr(90), Price: decimal.NewFromInt(120)},
		}
		set := resolveBands(bands)
		require.NotNil(t, set.stepBand, "title %q", title)
	}

	set := resolveBands([]models.PriceBand{
		{ID: "x", Title: "Deep cleaning", AreaFrom: intPtr(81), AreaTo: intPtr(90)},
	})
	assert.Nil(t, set.stepBand)
}

func TestStepPriceExplicit(t *testing.T) {
	set := bandSet{stepBand: &models.PriceBand{Price: decimal.NewFromInt(120)}}
	step, err := set.stepPrice(models.LevelBasic)
	require.NoError(t, err)
	assert.True(t, step.Equal(decimal.NewFromInt(120)))
}

func TestStepPriceDerivedFromSlope(t *testing.T) {
	set := bandSet{
		lowBand: &models.PriceBand{Price: decimal.NewFromInt(1400)},
		midBand: &models.PriceBand{Price: decimal.NewFromInt(1640)},
	}
	step, err := set.stepPrice(models.LevelBasic)
	require.NoError(t, err)
	// (1640 - 1400) / 30 * 10
	assert.True(t, step.Equal(decimal.NewFromInt(80)), "got %s", step)
}

func TestStepPriceSingleBandFallbacks(t *testing.T) {
	set := bandSet{midBand: &models.PriceBand{Price: decimal.NewFromInt(1600)}}
	step, err := set.stepPrice(models.LevelBasic)
	require.NoError(t, err)
	assert.True(t, step.Equal(decimal.NewFromInt(200)), "got %s", step)

	set = bandSet{lowBand: &models.PriceBand{Price: decimal.NewFromInt(1500)}}
	step, err = set.stepPrice(models.LevelBasic)
	require.NoError(t, err)
	assert.True(t, step.Equal(decimal.NewFromInt(300)), "got %s", step)
}

func TestStepPriceNoBands(t *testing.T) {
	_, err := bandSet{}.stepPrice(models.LevelBasic)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestTierPriceStartedStepCountsInFull(t *testing.T) {
	set := bandSet{
		lowBand:  &models.PriceBand{Price: decimal.NewFromInt(1400)},
		midBand:  &models.PriceBand{Price: decimal.NewFromInt(1640)},
		stepBand: &models.PriceBand{Price: decimal.NewFromInt(120)},
	}

	cases := []struct {
		area int
		want int64
	}{
		{81, 1760},
		{89, 1760},
		{90, 1760},
		{91, 1880},
		{110, 2000},
		{111, 2120},
	}
	for _, tc := range cases {
		got, err := tierPrice(tc.area, set, models.LevelBasic)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.NewFromInt(tc.want)),
			"area %d: want %d, got %s", tc.area, tc.want, got)
	}
}

func TestTierPriceMidFallsBackToLow(t *testing.T) {
	set := bandSet{lowBand: &models.PriceBand{Price: decimal.NewFromInt(1400)}}
	got, err := tierPrice(70, set, models.LevelBasic)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1400)))
}

func TestTierPriceMissingLowBand(t *testing.T) {
	set := bandSet{midBand: &models.PriceBand{Price: decimal.NewFromInt(1640)}}
	_, err := tierPrice(30, set, models.LevelBasic)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestActiveBandsForLevel(t *testing.T) {
	bands := []models.PriceBand{
		{ID: "b1", Level: models.LevelBasic, IsActive: true, SortOrder: 2},
		{ID: "b2", Level: models.LevelBasic, IsActive: false, SortOrder: 1},
		{ID: "g1", Level: models.LevelGeneral, IsActive: true, SortOrder: 1},
		{ID: "b3", Level: models.LevelBasic, IsActive: true, SortOrder: 1},
	}
	got := activeBandsForLevel(bands, models.LevelBasic)
	require.Len(t, got, 2)
	assert.Equal(t, "b3", got[0].ID)
	assert.Equal(t, "b1", got[1].ID)
}

func TestComparisonBandPrefersContainingRange(t *testing.T) {
	bands := []models.PriceBand{
		{ID: "exact", AreaFrom: intPtr(30), AreaTo: intPtr(60), OldPrice: decPtr(1800)},
		{ID: "low", AreaFrom: intPtr(0), AreaTo: intPtr(50)},
	}
	set := resolveBands(bands)

	band := comparisonBand(bands, set, 40)
	require.NotNil(t, band)
	assert.Equal(t, "exact", band.ID)

	// Outside any configured range the role band for the bracket wins.
	band = comparisonBand(nil, set, 20)
	require.NotNil(t, band)
	assert.Equal(t, "low", band.ID)
}
