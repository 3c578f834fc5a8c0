package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/billmitra/server/internal/billing"
)

// Letterhead is the static header/footer identity printed on every
// document artifact.
type Letterhead struct {
	BusinessName string
	ContactLine  string
	LogoURL      string
}

// LineItem is one row of the bill table.
type LineItem struct {
	Description string
	Amount      string
}

// DocumentView is the deterministic input for document rendering,
// assembled once from a BillRecord and never written back.
type DocumentView struct {
	Letterhead Letterhead

	Title      string
	BillID     string
	TenantName string
	Period     string
	DueDate    string
	Timestamp  string

	Lines []LineItem
}

// Renderer turns a DocumentView into a downloadable artifact.
type Renderer interface {
	Render(view DocumentView) ([]byte, error)
}

// BuildDocument assembles the document view for a bill. Line items follow
// the fixed layout of the printed bill: unit rows first, then money rows,
// total last.
func BuildDocument(rec *billing.BillRecord, letterhead Letterhead) DocumentView {
	tenant := rec.TenantName
	if tenant == "" {
		tenant = "Tenant"
	}

	return DocumentView{
		Letterhead: letterhead,

		Title:      "Tenant Bill",
		BillID:     rec.BillID,
		TenantName: tenant,
		Period:     fmt.Sprintf("%s to %s", rec.StartDate, rec.EndDate),
		DueDate:    rec.DueDate,
		Timestamp:  rec.Timestamp,

		Lines: []LineItem{
			{"Main Meter Units", rec.MainUnits.String()},
			{"Motor Units", rec.MotorUnits.String()},
			{"Owner Units", rec.OwnerUnits.String()},
			{"Tenant Units", rec.TenantUnits.String()},
			{"Tenant Total Units (Tenant + 0.75 * Motor)", rec.TenantTotalUnits.StringFixed(2)},
			{fmt.Sprintf("Electricity Bill (Govt. Rate @ Rs.%s)", rec.GovtRate.String()), "Rs. " + rec.GovtElectricityBill.StringFixed(2)},
			{fmt.Sprintf("Discount Applied (@ Rs.%s)", rec.DiscountRate.String()), "Rs. " + rec.DiscountApplied.StringFixed(2)},
			{"Final Electricity Bill", "Rs. " + rec.FinalElectricityBill.StringFixed(2)},
			{"Water Bill", "Rs. " + rec.WaterBill.StringFixed(2)},
			{"Tanker Split", "Rs. " + rec.TankerSplit.StringFixed(2)},
			{"House Rent", "Rs. " + rec.HouseRent.StringFixed(2)},
			{"Total Bill", "Rs. " + rec.TotalBill.StringFixed(2)},
		},
	}
}

// Filename derives the artifact name for a bill, unique per bill id.
func Filename(rec *billing.BillRecord) string {
	return fmt.Sprintf("BillMitra_%s.html", rec.BillID)
}

var documentTemplate = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Letterhead.BusinessName}} - {{.BillID}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #333333; margin: 2em; }
  h1 { color: #2563eb; margin-bottom: 0; }
  h2 { color: #2563eb; font-size: 1.1em; margin-top: 0.2em; }
  table { border-collapse: collapse; width: 100%; margin-top: 1.5em; }
  th { background: #2563eb; color: #ffffff; text-align: left; padding: 8px; }
  td { background: #f3f4f6; padding: 8px; }
  footer { margin-top: 2em; color: #646464; font-size: 0.85em; }
  img.logo { float: right; height: 64px; }
</style>
</head>
<body>
{{if .Letterhead.LogoURL}}<img class="logo" src="{{.Letterhead.LogoURL}}" alt="{{.Letterhead.BusinessName}} logo">{{end}}
<h1>{{.Letterhead.BusinessName}}</h1>
<h2>{{.Title}}</h2>
<p>Bill ID: {{.BillID}}<br>
Tenant: {{.TenantName}}<br>
Billing Period: {{.Period}}<br>
Due Date: {{.DueDate}}<br>
Generated on: {{.Timestamp}}</p>
<table>
  <tr><th>Description</th><th>Amount</th></tr>
{{range .Lines}}  <tr><td>{{.Description}}</td><td>{{.Amount}}</td></tr>
{{end}}</table>
<footer>Contact: {{.Letterhead.ContactLine}}</footer>
</body>
</html>
`))

// HTMLRenderer renders the document view to a standalone HTML artifact.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

func (r *HTMLRenderer) Render(view DocumentView) ([]byte, error) {
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render bill document: %w", err)
	}
	return buf.Bytes(), nil
}
