package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cleaning levels supported by the price table.
const (
	LevelBasic       = "basic"
	LevelGeneral     = "general"
	LevelGeneralPlus = "general_plus"
)

// ValidLevel reports whether level is one of the configured cleaning tracks.
func ValidLevel(level string) bool {
	return level == LevelBasic || level == LevelGeneral || level == LevelGeneralPlus
}

// PriceBand is a configured price entry covering an area range for a level.
// A nil AreaTo marks the per-step band priced per additional 10 m².
type PriceBand struct {
	ID        string           `bson:"id" json:"id"`
	Level     string           `bson:"level" json:"level"`
	Title     string           `bson:"title" json:"title"`
	AreaFrom  *int             `bson:"areaFrom,omitempty" json:"area_from,omitempty"`
	AreaTo    *int             `bson:"areaTo,omitempty" json:"area_to,omitempty"`
	Price     decimal.Decimal  `bson:"price" json:"price"`
	OldPrice  *decimal.Decimal `bson:"oldPrice,omitempty" json:"old_price,omitempty"`
	IsActive  bool             `bson:"isActive" json:"is_active"`
	SortOrder int              `bson:"sortOrder" json:"sort_order"`
	CreatedAt time.Time        `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time        `bson:"updatedAt" json:"updated_at"`
}

// RateSettings holds the flat per-unit charges (singleton document).
type RateSettings struct {
	PricePerRoom     decimal.Decimal `bson:"pricePerRoom" json:"price_per_room"`
	PricePerBathroom decimal.Decimal `bson:"pricePerBathroom" json:"price_per_bathroom"`
	UpdatedAt        time.Time       `bson:"updatedAt" json:"updated_at"`
}

// PromoText is the promotional label shown next to quotes.
type PromoText struct {
	ID       string `bson:"id" json:"id"`
	Text     string `bson:"text" json:"text"`
	IsActive bool   `bson:"isActive" json:"is_active"`
}
