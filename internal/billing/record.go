package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillRecord is a fully derived bill. It is immutable once produced:
// superseded records are discarded, never updated in place. The JSON field
// names match the spreadsheet row schema, so the exported row is simply
// the marshalled record.
type BillRecord struct {
	BillID      string    `json:"billId"`
	GeneratedAt time.Time `json:"-"`

	TenantName string `json:"tenantName"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	// Timestamp and DueDate are pre-rendered in the billing locale
	// (en-IN, Asia/Kolkata). DueDate is generation time + 7 days.
	Timestamp string `json:"timestamp"`
	DueDate   string `json:"dueDate"`

	MainUnits        decimal.Decimal `json:"mainUnits"`
	MotorUnits       decimal.Decimal `json:"motorUnits"`
	OwnerUnits       decimal.Decimal `json:"ownerUnits"`
	TenantUnits      decimal.Decimal `json:"tenantUnits"`
	TenantTotalUnits decimal.Decimal `json:"tenantTotalUnits"`

	GovtRate     decimal.Decimal `json:"govtRate"`
	DiscountRate decimal.Decimal `json:"discountRate"`

	GovtElectricityBill  decimal.Decimal `json:"govtElectricityBill"`
	DiscountApplied      decimal.Decimal `json:"discountApplied"`
	FinalElectricityBill decimal.Decimal `json:"finalElectricityBill"`
	WaterBill            decimal.Decimal `json:"waterBill"`
	TankerSplit          decimal.Decimal `json:"tankerSplit"`
	HouseRent            decimal.Decimal `json:"houseRent"`
	TotalBill            decimal.Decimal `json:"totalBill"`

	// TankerUsed is carried explicitly so presenters do not have to infer
	// the tanker line from TankerSplit being non-zero.
	TankerUsed bool `json:"tankerUsed"`
}
