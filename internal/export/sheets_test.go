package export

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/billmitra/server/internal/billing"
	"github.com/billmitra/server/internal/config"
)

func exportRecord() *billing.BillRecord {
	return &billing.BillRecord{
		BillID:               "BILL-99",
		TenantName:           "A",
		StartDate:            "2024-01-01",
		EndDate:              "2024-01-31",
		DueDate:              "08/05/2024",
		TenantTotalUnits:     decimal.RequireFromString("17.5"),
		GovtElectricityBill:  decimal.RequireFromString("157.5"),
		FinalElectricityBill: decimal.RequireFromString("157.5"),
		WaterBill:            billing.WaterCharge,
		HouseRent:            billing.HouseRent,
		TotalBill:            decimal.RequireFromString("7807.5"),
	}
}

func TestExportPostsOneRow(t *testing.T) {
	var gotBody []byte
	var gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-BillMitra-Signature")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	exporter := NewSheetsExporter(config.SheetsConfig{
		URL:     srv.URL,
		Secret:  "topsecret",
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	err := exporter.Export(context.Background(), exportRecord())
	require.NoError(t, err)

	var row map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &row))
	assert.Equal(t, "BILL-99", row["billId"])
	assert.Equal(t, "A", row["tenantName"])
	assert.Equal(t, "7807.5", row["totalBill"])

	assert.True(t, VerifySignature(gotBody, gotSignature, "topsecret"))
	assert.False(t, VerifySignature(gotBody, gotSignature, "wrong"))
}

func TestExportReportsEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	exporter := NewSheetsExporter(config.SheetsConfig{URL: srv.URL}, zap.NewNop())

	err := exporter.Export(context.Background(), exportRecord())
	assert.ErrorContains(t, err, "status 500")
}

func TestExportUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	exporter := NewSheetsExporter(config.SheetsConfig{URL: srv.URL}, zap.NewNop())

	err := exporter.Export(context.Background(), exportRecord())
	assert.Error(t, err)
}

func TestExportNotConfigured(t *testing.T) {
	exporter := NewSheetsExporter(config.SheetsConfig{}, zap.NewNop())

	err := exporter.Export(context.Background(), exportRecord())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
