package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BillsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "billmitra_bills_generated_total",
			Help: "Number of bills generated",
		},
	)

	PreviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billmitra_previews_total",
			Help: "Live preview recomputations by validation outcome",
		},
		[]string{"outcome"},
	)

	DocumentDownloads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "billmitra_document_downloads_total",
			Help: "Number of bill document artifacts downloaded",
		},
	)

	MessageFetches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "billmitra_message_fetches_total",
			Help: "Number of share messages served for clipboard copy",
		},
	)

	SheetExports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "billmitra_sheet_exports_total",
			Help: "Spreadsheet export attempts by outcome",
		},
		[]string{"outcome"},
	)
)
