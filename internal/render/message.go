package render

import (
	"fmt"
	"strings"

	"github.com/billmitra/server/internal/billing"
)

// FallbackTenantName is used in the greeting when no tenant name survived
// into the record.
const FallbackTenantName = "किरायेदार"

// ShareMessage renders the fixed Hindi WhatsApp template for a bill. The
// output is a plain string suitable for clipboard copy or messaging-app
// paste. Read-only on the record.
func ShareMessage(rec *billing.BillRecord) string {
	name := rec.TenantName
	if name == "" {
		name = FallbackTenantName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "प्रिय %s,\n", name)
	fmt.Fprintf(&b, "आप हमारे परिवार के जैसे हैं। यह रहा आपका बिल (%s से %s):\n", rec.StartDate, rec.EndDate)
	fmt.Fprintf(&b, "- बिजली बिल (सरकारी): ₹%s\n", rec.GovtElectricityBill.StringFixed(2))
	fmt.Fprintf(&b, "- छूट: ₹%s\n", rec.DiscountApplied.StringFixed(2))
	fmt.Fprintf(&b, "- अंतिम बिजली बिल: ₹%s\n", rec.FinalElectricityBill.StringFixed(2))
	fmt.Fprintf(&b, "- पानी बिल: ₹%s\n", rec.WaterBill.StringFixed(2))
	if rec.TankerUsed {
		fmt.Fprintf(&b, "- टैंकर शुल्क: ₹%s\n", rec.TankerSplit.StringFixed(2))
	}
	fmt.Fprintf(&b, "- मकान किराया: ₹%s\n", rec.HouseRent.StringFixed(2))
	fmt.Fprintf(&b, "**कुल बिल: ₹%s**\n\n", rec.TotalBill.StringFixed(2))
	fmt.Fprintf(&b, "कृपया %s तक भुगतान करें। हम आपके सहयोग की सराहना करते हैं।\n", rec.DueDate)
	b.WriteString("स्नेह सहित,\nBillMitra")
	return b.String()
}
