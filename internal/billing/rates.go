package billing

import "github.com/shopspring/decimal"

// Tariff constants. The government reference rate and the "no discount"
// option are numerically equal but deliberately kept as separate names:
// the first prices the nominal bill, the second is a user selection.
var (
	GovtRate = decimal.NewFromInt(9)

	RateNoDiscount = decimal.NewFromInt(9)
	RateReduced    = decimal.NewFromInt(8)
	RateConcession = decimal.RequireFromString("7.5")

	// Share of motor (shared water pump) consumption billed to the tenant.
	MotorTenantShare = decimal.RequireFromString("0.75")

	WaterCharge  = decimal.NewFromInt(150)
	TankerCharge = decimal.NewFromInt(150)
	HouseRent    = decimal.NewFromInt(7500)
)

// DueAfterDays is how many calendar days after generation a bill is due.
const DueAfterDays = 7

// DiscountRates lists the selectable per-unit electricity rates.
func DiscountRates() []decimal.Decimal {
	return []decimal.Decimal{RateNoDiscount, RateReduced, RateConcession}
}
