package billing

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for billing period dates.
const DateLayout = "2006-01-02"

var validate = validator.New()

// MeterReading is one meter pair over the billing period. Readings arrive
// as raw form text: an empty field and an unparseable field are distinct
// validation failures.
type MeterReading struct {
	Start string `json:"start"`
	Close string `json:"close"`
}

// BillingInput is the raw form state, re-submitted as a whole on every
// change. It is a plain value type; the calculator never mutates it.
type BillingInput struct {
	TenantName string `json:"tenantName" validate:"required"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`

	Main   MeterReading `json:"main"`
	Motor  MeterReading `json:"motor"`
	Owner  MeterReading `json:"owner"`
	Tenant MeterReading `json:"tenant"`

	DiscountRate string `json:"discountRate" validate:"required,oneof=9 8 7.5"`
	TankerUsed   bool   `json:"tankerUsed"`
}

// Valid reports whether the input is complete and consistent enough to
// bill. It is a silent readiness signal: during live typing most inputs
// are expected to fail, so no detail is produced.
func (in BillingInput) Valid() bool {
	if err := validate.Struct(in); err != nil {
		return false
	}

	for _, m := range []MeterReading{in.Main, in.Motor, in.Owner, in.Tenant} {
		startVal, ok := parseReading(m.Start)
		if !ok {
			return false
		}
		closeVal, ok := parseReading(m.Close)
		if !ok {
			return false
		}
		if closeVal.LessThan(startVal) {
			return false
		}
	}

	start, err := time.Parse(DateLayout, in.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateLayout, in.EndDate)
	if err != nil {
		return false
	}
	return !end.Before(start)
}

// parseReading rejects both empty and non-numeric readings. Negative
// readings are accepted here; only negative consumption (close < start)
// is rejected.
func parseReading(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
