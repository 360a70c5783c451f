package order

import (
	"fmt"
	"strings"

	"yourclean/models"

	"github.com/shopspring/decimal"
)

var levelNames = map[string]string{
	models.LevelBasic:       "BASIC",
	models.LevelGeneral:     "GENERAL",
	models.LevelGeneralPlus: "GENERAL PLUS",
}

// FormatOrderText renders an order as the plain-text summary handed off to
// WhatsApp or pasted into a form by the staff.
func FormatOrderText(order models.Order) string {
	levelName := levelNames[order.CleaningLevel]
	if levelName == "" {
		levelName = order.CleaningLevel
	}

	lines := []string{
		"🧹 NEW CLEANING ORDER",
		"",
		fmt.Sprintf("👤 Name: %s", order.Name),
		fmt.Sprintf("📞 Phone: %s", order.Phone),
	}
	if order.Email != "" {
		lines = append(lines, fmt.Sprintf("📧 Email: %s", order.Email))
	}

	lines = append(lines,
		"",
		"📋 CLEANING DETAILS:",
		fmt.Sprintf("   Level: %s", levelName),
		fmt.Sprintf("   Area: %s m²", order.Area.String()),
		fmt.Sprintf("   Rooms: %d", order.Rooms),
		fmt.Sprintf("   Bathrooms: %d", order.Bathrooms),
	)

	if order.DesiredDate != nil {
		lines = append(lines, fmt.Sprintf("📅 Date: %s", order.DesiredDate.Format("02.01.2006")))
		if order.DiscountPercent > 0 {
			lines = append(lines, fmt.Sprintf("   Discount: -%d%%", order.DiscountPercent))
		}
	}
	if order.DesiredTime != "" {
		lines = append(lines, fmt.Sprintf("⏰ Time: %s", order.DesiredTime))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("💰 TOTAL PRICE: %s Kč", order.TotalPrice.StringFixed(2)),
	)

	if order.DiscountPercent > 0 {
		// Back-compute what the price was before the calendar discount.
		factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(order.DiscountPercent)).Div(decimal.NewFromInt(100)))
		if factor.IsPositive() {
			original := order.TotalPrice.Div(factor)
			savings := original.Sub(order.TotalPrice)
			lines = append(lines, fmt.Sprintf("   (Discount: -%d%%, saved: %s Kč)",
				order.DiscountPercent, savings.StringFixed(2)))
		}
	}

	if order.Address != "" {
		lines = append(lines, "", fmt.Sprintf("📍 Address: %s", order.Address))
	}
	if order.Comment != "" {
		lines = append(lines, "", fmt.Sprintf("💬 Comment: %s", order.Comment))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("🆔 Order: #%s", order.ID),
		fmt.Sprintf("📅 Created: %s", order.CreatedAt.Format("02.01.2006 15:04")),
	)

	return strings.Join(lines, "\n")
}
