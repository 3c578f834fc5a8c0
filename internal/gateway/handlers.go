package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/billmitra/server/internal/billing"
	"github.com/billmitra/server/internal/export"
	"github.com/billmitra/server/internal/render"
	"github.com/billmitra/server/pkg/events"
	"github.com/billmitra/server/pkg/metrics"
)

// PreviewResponse is the live-preview result. Invalid input is not an
// error: the form keeps typing and polls again.
type PreviewResponse struct {
	Valid bool                `json:"valid"`
	Bill  *billing.BillRecord `json:"bill,omitempty"`
}

// GenerateResponse carries the installed bill and its share message.
type GenerateResponse struct {
	Bill    *billing.BillRecord `json:"bill"`
	Message string              `json:"message"`
}

func (g *Gateway) handlePreview(w http.ResponseWriter, r *http.Request) {
	var in billing.BillingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		g.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, ok := g.desk.Preview(in)
	if !ok {
		metrics.PreviewsTotal.WithLabelValues("invalid").Inc()
		g.writeJSON(w, http.StatusOK, PreviewResponse{Valid: false})
		return
	}

	metrics.PreviewsTotal.WithLabelValues("valid").Inc()
	g.writeJSON(w, http.StatusOK, PreviewResponse{Valid: true, Bill: rec})
}

func (g *Gateway) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var in billing.BillingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		g.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, msg, ok := g.desk.Generate(r.Context(), in)
	if !ok {
		g.writeError(w, http.StatusUnprocessableEntity, "bill input is incomplete or inconsistent")
		return
	}

	metrics.BillsGenerated.Inc()
	g.writeJSON(w, http.StatusOK, GenerateResponse{Bill: rec, Message: msg})
}

func (g *Gateway) handleCurrent(w http.ResponseWriter, r *http.Request) {
	rec, err := g.desk.Current()
	if err != nil {
		g.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	g.writeJSON(w, http.StatusOK, map[string]interface{}{"bill": rec})
}

func (g *Gateway) handleDocument(w http.ResponseWriter, r *http.Request) {
	rec, err := g.desk.Current()
	if err != nil {
		g.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	view := render.BuildDocument(rec, g.letterhead)
	artifact, err := g.renderer.Render(view)
	if err != nil {
		g.logger.Error("failed to render bill document", zap.Error(err))
		g.writeError(w, http.StatusInternalServerError, "failed to render bill document")
		return
	}

	metrics.DocumentDownloads.Inc()
	g.bus.Publish(r.Context(), events.NewEvent(events.EventDocumentRendered, rec.BillID, map[string]interface{}{
		"filename": render.Filename(rec),
	}))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.Filename(rec)))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact)
}

func (g *Gateway) handleMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := g.desk.Message()
	if err != nil {
		g.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	rec, _ := g.desk.Current()

	metrics.MessageFetches.Inc()
	g.bus.Publish(r.Context(), events.NewEvent(events.EventMessageCopied, rec.BillID, nil))

	g.writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (g *Gateway) handleExport(w http.ResponseWriter, r *http.Request) {
	rec, err := g.desk.Current()
	if err != nil {
		g.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	if err := g.exporter.Export(r.Context(), rec); err != nil {
		// The bill stays current and exportable; only this attempt failed.
		g.logger.Warn("spreadsheet export failed",
			zap.String("bill_id", rec.BillID),
			zap.Error(err),
		)
		metrics.SheetExports.WithLabelValues("failure").Inc()
		g.bus.Publish(r.Context(), events.NewEvent(events.EventExportFailed, rec.BillID, map[string]interface{}{
			"error": err.Error(),
		}))

		status := http.StatusBadGateway
		if errors.Is(err, export.ErrNotConfigured) {
			status = http.StatusServiceUnavailable
		}
		g.writeError(w, status, "failed to export bill to spreadsheet")
		return
	}

	metrics.SheetExports.WithLabelValues("success").Inc()
	g.bus.Publish(r.Context(), events.NewEvent(events.EventExportSucceeded, rec.BillID, nil))

	g.writeJSON(w, http.StatusOK, map[string]string{
		"status": "exported",
		"billId": rec.BillID,
	})
}
