package pricing

import (
	"github.com/shopspring/decimal"

	"yourclean/models"
)

// Snapshot is the immutable configuration slice the engine prices against.
// The caller fetches it (store, cache) before invoking the engine; the
// engine itself never touches storage.
type Snapshot struct {
	Bands    []models.PriceBand
	Rates    models.RateSettings
	Extras   []models.ExtraService
	DryItems []models.DryCleaningItem
	Promo    *models.PromoText
}

// QuoteRequest carries the caller-supplied calculator parameters.
// DryCleaning maps an item ID to its quantity (per-item units) or area in m²
// (per-m² units); a zero value means the caller left it unspecified.
type QuoteRequest struct {
	Level           string
	Area            decimal.Decimal
	Rooms           int
	Bathrooms       int
	ExtraServiceIDs []string
	DryCleaning     map[string]decimal.Decimal
}

// Breakdown itemizes a quote by component.
type Breakdown struct {
	RoomsBathrooms decimal.Decimal `json:"rooms_bathrooms"`
	Cleaning       decimal.Decimal `json:"cleaning"`
	ExtraServices  decimal.Decimal `json:"extra_services"`
	DryCleaning    decimal.Decimal `json:"dry_cleaning"`
}

// Quote is the priced result. All monetary values are rounded half-up to
// two decimal places.
type Quote struct {
	Total     decimal.Decimal  `json:"price"`
	Breakdown Breakdown        `json:"breakdown"`
	OldPrice  *decimal.Decimal `json:"old_price,omitempty"`
	PromoText string           `json:"promo_text,omitempty"`
}

// Compute prices a request against a configuration snapshot. It either
// returns a fully assembled quote or fails atomically with a
// *ValidationError (bad input) or *ConfigError (price table gap).
func Compute(snap Snapshot, req QuoteRequest) (*Quote, error) {
	if !models.ValidLevel(req.Level) {
		return nil, newValidationError("level", "unknown cleaning level %q", req.Level)
	}

	rooms, err := validateCount(req.Rooms, "rooms")
	if err != nil {
		return nil, err
	}
	bathrooms, err := validateCount(req.Bathrooms, "bathrooms")
	if err != nil {
		return nil, err
	}
	area, err := validateAmount(req.Area, "area")
	if err != nil {
		return nil, err
	}

	roomCharge := roomBathroomCharge(rooms, bathrooms, snap.Rates)

	// Fractional areas are floored for banding, never rounded up.
	areaInt := int(area.IntPart())

	cleaningCharge := decimal.Zero
	bands := activeBandsForLevel(snap.Bands, req.Level)
	var set bandSet
	if area.IsPositive() {
		if len(bands) == 0 {
			return nil, newConfigError("no prices configured for level %q", req.Level)
		}
		set = resolveBands(bands)
		cleaningCharge, err = tierPrice(areaInt, set, req.Level)
		if err != nil {
			return nil, err
		}
	}

	extraCharge := extraServicesCharge(snap.Extras, req.ExtraServiceIDs, area)

	dryCharge, err := dryCleaningCharge(snap.DryItems, req.DryCleaning)
	if err != nil {
		return nil, err
	}

	total := roomCharge.Add(cleaningCharge).Add(extraCharge).Add(dryCharge).Round(2)

	quote := &Quote{
		Total: total,
		Breakdown: Breakdown{
			RoomsBathrooms: roomCharge,
			Cleaning:       cleaningCharge,
			ExtraServices:  extraCharge,
			DryCleaning:    dryCharge,
		},
	}

	// Was-price: the same additive components layered on the band's
	// reference price. Never offered beyond 80 m².
	if area.IsPositive() && areaInt <= 80 {
		if band := comparisonBand(bands, set, areaInt); band != nil && band.OldPrice != nil {
			old := band.OldPrice.Add(roomCharge).Add(extraCharge).Add(dryCharge).Round(2)
			quote.OldPrice = &old
		}
	}

	if snap.Promo != nil && snap.Promo.IsActive && snap.Promo.Text != "" {
		quote.PromoText = snap.Promo.Text
	}

	return quote, nil
}

// roomBathroomCharge is the flat per-unit charge, rounded to cents.
func roomBathroomCharge(rooms, bathrooms int, rates models.RateSettings) decimal.Decimal {
	total := decimal.NewFromInt(int64(rooms)).Mul(rates.PricePerRoom).
		Add(decimal.NewFromInt(int64(bathrooms)).Mul(rates.PricePerBathroom))
	return total.Round(2)
}

// extraServicesCharge sums the selected active extras. Per-m² extras only
// contribute when a positive cleaning area is present; without one they are
// silently zero, unlike dry-cleaning which requires its area.
func extraServicesCharge(catalog []models.ExtraService, selected []string, area decimal.Decimal) decimal.Decimal {
	if len(selected) == 0 {
		return decimal.Zero
	}
	byID := make(map[string]*models.ExtraService, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	total := decimal.Zero
	for _, id := range selected {
		svc, ok := byID[id]
		if !ok || !svc.IsActive {
			continue
		}
		switch svc.PriceType {
		case models.PriceTypePerM2:
			if area.IsPositive() {
				total = total.Add(svc.Price.Mul(area))
			}
		default:
			total = total.Add(svc.Price)
		}
	}
	return total.Round(2)
}

// dryCleaningCharge sums the selected dry-cleaning items. Inactive items are
// skipped. Per-m² items require an area; per-item counts default to one.
// The sum is rounded once at the end, not per item.
func dryCleaningCharge(catalog []models.DryCleaningItem, selected map[string]decimal.Decimal) (decimal.Decimal, error) {
	if len(selected) == 0 {
		return decimal.Zero, nil
	}
	byID := make(map[string]*models.DryCleaningItem, len(catalog))
	for i := range catalog {
		byID[catalog[i].ID] = &catalog[i]
	}

	total := decimal.Zero
	for id, value := range selected {
		item, ok := byID[id]
		if !ok || !item.IsActive {
			continue
		}
		switch item.Unit {
		case models.UnitItem:
			quantity, err := validateAmount(value, "quantity for "+item.Name)
			if err != nil {
				return decimal.Zero, err
			}
			if quantity.IsZero() {
				quantity = decimal.NewFromInt(1)
			}
			total = total.Add(item.Price.Mul(quantity))
		case models.UnitM2:
			if value.IsZero() {
				return decimal.Zero, newValidationError(
					"dry_cleaning", "area required for dry cleaning service %q (unit: m²)", item.Name)
			}
			itemArea, err := validateAmount(value, "area for "+item.Name)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(item.Price.Mul(itemArea))
		default:
			return decimal.Zero, newConfigError(
				"unknown unit %q for dry cleaning service %q", item.Unit, item.Name)
		}
	}
	return total.Round(2), nil
}
