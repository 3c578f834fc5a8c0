// Package export sends finished bills to external collaborators. The only
// adapter today is the spreadsheet append endpoint the landlord keeps
// their ledger in. Export failures never invalidate the in-memory bill.
package export

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/billmitra/server/internal/billing"
	"github.com/billmitra/server/internal/config"
)

// ErrNotConfigured is returned when no export endpoint has been set up.
var ErrNotConfigured = errors.New("spreadsheet export is not configured")

// SheetsExporter appends one bill record per call to a spreadsheet
// endpoint over HTTP, optionally signing requests with HMAC-SHA256.
type SheetsExporter struct {
	url    string
	secret string
	client *http.Client
	logger *zap.Logger
}

// NewSheetsExporter creates a new spreadsheet exporter
func NewSheetsExporter(cfg config.SheetsConfig, logger *zap.Logger) *SheetsExporter {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &SheetsExporter{
		url:    cfg.URL,
		secret: cfg.Secret,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Export serializes the bill record as one flat JSON row and POSTs it to
// the configured endpoint. No retries: a failed export is reported and
// left to the user to re-trigger.
func (e *SheetsExporter) Export(ctx context.Context, rec *billing.BillRecord) error {
	if e.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal bill record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "BillMitra-Export/1.0")

	if e.secret != "" {
		req.Header.Set("X-BillMitra-Signature", sign(body, e.secret))
		req.Header.Set("X-BillMitra-Bill-ID", rec.BillID)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach spreadsheet endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spreadsheet endpoint returned status %d", resp.StatusCode)
	}

	e.logger.Debug("bill exported to spreadsheet",
		zap.String("bill_id", rec.BillID),
		zap.Int("status_code", resp.StatusCode),
	)

	return nil
}

// sign creates an HMAC-SHA256 signature of the payload
func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature verifies an HMAC signature. Provided as a helper for
// receivers of BillMitra export calls.
func VerifySignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}
