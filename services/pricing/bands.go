package pricing

import (
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"yourclean/models"
)

// Title fragments that mark a per-step band when no structural marker
// (area_from >= 80, area_to unset) is present. These are data-entry
// conventions from the admin panel, not parsed units.
var stepTitleMarkers = []string{"+10", "+ 10", "10 m", "za 10", "10m"}

var (
	thirty = decimal.NewFromInt(30)
	ten    = decimal.NewFromInt(10)
	eight  = decimal.NewFromInt(8)
	five   = decimal.NewFromInt(5)
)

// bandSet holds the three logical band roles resolved for one level.
type bandSet struct {
	lowBand  *models.PriceBand // 0–50 m²
	midBand  *models.PriceBand // 51–80 m²
	stepBand *models.PriceBand // per extra 10 m² beyond 80
}

// activeBandsForLevel filters the snapshot's bands down to the active ones
// for the level, in stable scan order (sort_order, then area_from).
func activeBandsForLevel(bands []models.PriceBand, level string) []models.PriceBand {
	var out []models.PriceBand
	for _, b := range bands {
		if b.IsActive && b.Level == level {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return areaFromOrZero(out[i]) < areaFromOrZero(out[j])
	})
	return out
}

func areaFromOrZero(b models.PriceBand) int {
	if b.AreaFrom == nil {
		return 0
	}
	return *b.AreaFrom
}

// resolveBands scans the ordered bands once and picks the first qualifying
// match per role. The data store does not enforce uniqueness, so duplicates
// lose to the first match in scan order.
func resolveBands(bands []models.PriceBand) bandSet {
	var set bandSet
	for i := range bands {
		b := &bands[i]
		if set.lowBand == nil &&
			(b.AreaFrom == nil || *b.AreaFrom == 0) &&
			b.AreaTo != nil && *b.AreaTo == 50 {
			set.lowBand = b
		}
		if set.midBand == nil &&
			b.AreaFrom != nil && *b.AreaFrom == 51 &&
			b.AreaTo != nil && *b.AreaTo == 80 {
			set.midBand = b
		}
		if set.stepBand == nil {
			if b.AreaFrom != nil && *b.AreaFrom >= 80 && b.AreaTo == nil {
				set.stepBand = b
			} else if titleMarksStep(b.Title) {
				set.stepBand = b
			}
		}
	}
	return set
}

func titleMarksStep(title string) bool {
	lower := strings.ToLower(title)
	for _, marker := range stepTitleMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// stepPrice returns the per-10-m² rate, deriving a synthetic one from the
// bounded bands when no step band is configured.
func (s bandSet) stepPrice(level string) (decimal.Decimal, error) {
	if s.stepBand != nil {
		return s.stepBand.Price, nil
	}
	switch {
	case s.lowBand != nil && s.midBand != nil:
		// Extrapolate the 51–80 slope to a 10-unit step.
		return s.midBand.Price.Sub(s.lowBand.Price).Div(thirty).Mul(ten), nil
	case s.midBand != nil:
		return s.midBand.Price.Div(eight), nil
	case s.lowBand != nil:
		return s.lowBand.Price.Div(five), nil
	default:
		return decimal.Zero, newConfigError(
			"no prices found for level %q to calculate step price", level)
	}
}

// tierPrice computes the cleaning charge for an integral area.
// Areas beyond 80 m² are billed per started 10 m² step on top of the last
// bounded band, rounded half-up to cents.
func tierPrice(area int, set bandSet, level string) (decimal.Decimal, error) {
	switch {
	case area <= 50:
		if set.lowBand == nil {
			return decimal.Zero, newConfigError(
				"price for 0-50 m² not found for level %q", level)
		}
		return set.lowBand.Price, nil

	case area <= 80:
		if set.midBand != nil {
			return set.midBand.Price, nil
		}
		if set.lowBand != nil {
			return set.lowBand.Price, nil
		}
		return decimal.Zero, newConfigError(
			"price for 51-80 m² not found for level %q", level)

	default:
		var base decimal.Decimal
		switch {
		case set.midBand != nil:
			base = set.midBand.Price
		case set.lowBand != nil:
			base = set.lowBand.Price
		default:
			return decimal.Zero, newConfigError(
				"base price not found for level %q", level)
		}
		step, err := set.stepPrice(level)
		if err != nil {
			return decimal.Zero, err
		}
		// 81–90 is one step, 91–100 two: any started window counts in full.
		steps := int(math.Ceil(float64(area-80) / 10.0))
		total := base.Add(decimal.NewFromInt(int64(steps)).Mul(step))
		return total.Round(2), nil
	}
}

// comparisonBand finds the band whose configured range contains the area,
// falling back to the role band for the bracket. Used only for the was-price
// display; areas beyond 80 m² have no reference-price semantics.
func comparisonBand(bands []models.PriceBand, set bandSet, area int) *models.PriceBand {
	for i := range bands {
		b := &bands[i]
		if b.AreaFrom != nil && b.AreaTo != nil &&
			*b.AreaFrom <= area && area <= *b.AreaTo {
			return b
		}
	}
	if area <= 50 {
		return set.lowBand
	}
	return set.midBand
}
