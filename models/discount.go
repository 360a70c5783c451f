package models

import "time"

// DateDiscount is a calendar discount for a specific day. Several entries
// may exist for one date; clients see the maximum percentage.
type DateDiscount struct {
	ID        string    `bson:"id" json:"id"`
	Date      time.Time `bson:"date" json:"date"`
	Percent   int       `bson:"percent" json:"discount_percent"`
	IsActive  bool      `bson:"isActive" json:"is_active"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
