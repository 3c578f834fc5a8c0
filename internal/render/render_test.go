package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billmitra/server/internal/billing"
)

func sampleRecord() *billing.BillRecord {
	return &billing.BillRecord{
		BillID:     "BILL-1714550400000000000",
		TenantName: "Ramesh",
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
		Timestamp:  "01/05/2024, 12:30:05 pm",
		DueDate:    "08/05/2024",

		MainUnits:        decimal.NewFromInt(10),
		MotorUnits:       decimal.NewFromInt(10),
		OwnerUnits:       decimal.NewFromInt(10),
		TenantUnits:      decimal.NewFromInt(10),
		TenantTotalUnits: decimal.RequireFromString("17.5"),

		GovtRate:     billing.GovtRate,
		DiscountRate: billing.RateConcession,

		GovtElectricityBill:  decimal.RequireFromString("157.5"),
		DiscountApplied:      decimal.RequireFromString("26.25"),
		FinalElectricityBill: decimal.RequireFromString("131.25"),
		WaterBill:            billing.WaterCharge,
		TankerSplit:          decimal.Zero,
		HouseRent:            billing.HouseRent,
		TotalBill:            decimal.RequireFromString("7781.25"),

		TankerUsed: false,
	}
}

func TestShareMessage(t *testing.T) {
	msg := ShareMessage(sampleRecord())

	assert.Contains(t, msg, "प्रिय Ramesh,")
	assert.Contains(t, msg, "2024-01-01 से 2024-01-31")
	assert.Contains(t, msg, "₹157.50")
	assert.Contains(t, msg, "₹26.25")
	assert.Contains(t, msg, "₹131.25")
	assert.Contains(t, msg, "₹150.00")
	assert.Contains(t, msg, "**कुल बिल: ₹7781.25**")
	assert.Contains(t, msg, "कृपया 08/05/2024 तक भुगतान करें")
	assert.True(t, strings.HasSuffix(msg, "BillMitra"))
}

func TestShareMessageTankerLineConditional(t *testing.T) {
	rec := sampleRecord()
	assert.NotContains(t, ShareMessage(rec), "टैंकर शुल्क")

	rec.TankerUsed = true
	rec.TankerSplit = billing.TankerCharge
	withTanker := ShareMessage(rec)
	assert.Contains(t, withTanker, "- टैंकर शुल्क: ₹150.00")
}

func TestShareMessageTenantFallback(t *testing.T) {
	rec := sampleRecord()
	rec.TenantName = ""
	assert.Contains(t, ShareMessage(rec), "प्रिय किरायेदार,")
}

func TestBuildDocumentLineOrder(t *testing.T) {
	view := BuildDocument(sampleRecord(), Letterhead{BusinessName: "BillMitra"})

	require.Len(t, view.Lines, 12)
	assert.Equal(t, "Main Meter Units", view.Lines[0].Description)
	assert.Equal(t, "Tenant Total Units (Tenant + 0.75 * Motor)", view.Lines[4].Description)
	assert.Equal(t, "17.50", view.Lines[4].Amount)
	assert.Equal(t, "Electricity Bill (Govt. Rate @ Rs.9)", view.Lines[5].Description)
	assert.Equal(t, "Discount Applied (@ Rs.7.5)", view.Lines[6].Description)
	assert.Equal(t, "Total Bill", view.Lines[11].Description)
	assert.Equal(t, "Rs. 7781.25", view.Lines[11].Amount)
}

func TestBuildDocumentHeaderAndFallback(t *testing.T) {
	rec := sampleRecord()
	rec.TenantName = ""
	view := BuildDocument(rec, Letterhead{
		BusinessName: "BillMitra",
		ContactLine:  "Phone: +91-946-130-8118",
	})

	assert.Equal(t, "Tenant Bill", view.Title)
	assert.Equal(t, "Tenant", view.TenantName)
	assert.Equal(t, "2024-01-01 to 2024-01-31", view.Period)
	assert.Equal(t, "08/05/2024", view.DueDate)
}

func TestHTMLRenderer(t *testing.T) {
	rec := sampleRecord()
	view := BuildDocument(rec, Letterhead{
		BusinessName: "BillMitra",
		ContactLine:  "Phone: +91-946-130-8118",
	})

	out, err := NewHTMLRenderer().Render(view)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "Bill ID: BILL-1714550400000000000")
	assert.Contains(t, html, "<td>Rs. 7781.25</td>")
	assert.Contains(t, html, "Contact: Phone: +91-946-130-8118")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "BillMitra_BILL-42.html", Filename(&billing.BillRecord{BillID: "BILL-42"}))
}
