package models

import "github.com/shopspring/decimal"

// Extra service price types.
const (
	PriceTypeFixed = "fixed"
	PriceTypePerM2 = "per_m2"
)

// Dry-cleaning units.
const (
	UnitItem = "item"
	UnitM2   = "m2"
)

// ExtraService is an add-on charged either flat or per square meter
// of the cleaned area.
type ExtraService struct {
	ID        string          `bson:"id" json:"id"`
	Name      string          `bson:"name" json:"name"`
	PriceType string          `bson:"priceType" json:"price_type"`
	Price     decimal.Decimal `bson:"price" json:"price"`
	IsActive  bool            `bson:"isActive" json:"is_active"`
}

// DryCleaningItem is a dry-cleaning catalog entry, charged per item
// or per square meter of the object.
type DryCleaningItem struct {
	ID       string          `bson:"id" json:"id"`
	Name     string          `bson:"name" json:"name"`
	Price    decimal.Decimal `bson:"price" json:"price"`
	Unit     string          `bson:"unit" json:"unit"`
	IsActive bool            `bson:"isActive" json:"is_active"`
}
