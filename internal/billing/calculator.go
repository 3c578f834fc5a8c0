package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Locale conventions for rendered dates, the en-IN short forms used by
// the bill layout.
const (
	timestampLayout = "02/01/2006, 3:04:05 pm"
	dueDateLayout   = "02/01/2006"
)

// Calculator derives BillRecords from validated inputs. It holds no state
// between calls apart from the clock used for bill identity and dates.
type Calculator struct {
	now  func() time.Time
	zone *time.Location
}

// NewCalculator returns a calculator pinned to the Asia/Kolkata billing
// timezone.
func NewCalculator() *Calculator {
	zone, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		zone = time.FixedZone("IST", 5*3600+1800)
	}
	return &Calculator{now: time.Now, zone: zone}
}

// Calculate derives a BillRecord from the input. The caller is responsible
// for gating on Valid: the calculator has no error path and assumes every
// reading parses. Identical inputs yield identical derived fields; only
// BillID and the time fields differ between calls.
func (c *Calculator) Calculate(in BillingInput) *BillRecord {
	mainUnits := consumption(in.Main)
	motorUnits := consumption(in.Motor)
	ownerUnits := consumption(in.Owner)
	tenantUnits := consumption(in.Tenant)

	tenantTotal := tenantUnits.Add(MotorTenantShare.Mul(motorUnits))

	rate, _ := decimal.NewFromString(in.DiscountRate)

	govtBill := tenantTotal.Mul(GovtRate)
	finalBill := tenantTotal.Mul(rate)
	discount := govtBill.Sub(finalBill)

	tankerSplit := decimal.Zero
	if in.TankerUsed {
		tankerSplit = TankerCharge
	}

	total := finalBill.Add(WaterCharge).Add(tankerSplit).Add(HouseRent)

	now := c.now()
	local := now.In(c.zone)
	due := local.AddDate(0, 0, DueAfterDays)

	return &BillRecord{
		BillID:      fmt.Sprintf("BILL-%d", now.UnixNano()),
		GeneratedAt: now,

		TenantName: in.TenantName,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Timestamp:  local.Format(timestampLayout),
		DueDate:    due.Format(dueDateLayout),

		MainUnits:        mainUnits,
		MotorUnits:       motorUnits,
		OwnerUnits:       ownerUnits,
		TenantUnits:      tenantUnits,
		TenantTotalUnits: tenantTotal,

		GovtRate:     GovtRate,
		DiscountRate: rate,

		GovtElectricityBill:  govtBill,
		DiscountApplied:      discount,
		FinalElectricityBill: finalBill,
		WaterBill:            WaterCharge,
		TankerSplit:          tankerSplit,
		HouseRent:            HouseRent,
		TotalBill:            total,

		TankerUsed: in.TankerUsed,
	}
}

func consumption(m MeterReading) decimal.Decimal {
	start, _ := decimal.NewFromString(strings.TrimSpace(m.Start))
	end, _ := decimal.NewFromString(strings.TrimSpace(m.Close))
	return end.Sub(start)
}
