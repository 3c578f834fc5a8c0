package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/billmitra/server/internal/billing"
	"github.com/billmitra/server/internal/config"
	"github.com/billmitra/server/internal/desk"
	"github.com/billmitra/server/internal/render"
	"github.com/billmitra/server/pkg/events"
)

// SheetExporter appends one bill record to an external spreadsheet.
type SheetExporter interface {
	Export(ctx context.Context, rec *billing.BillRecord) error
}

// Gateway is the HTTP surface the bill form talks to.
type Gateway struct {
	desk       *desk.Desk
	exporter   SheetExporter
	renderer   render.Renderer
	letterhead render.Letterhead
	logger     *zap.Logger
	bus        *events.Bus
	router     *chi.Mux
}

// NewGateway creates the API gateway
func NewGateway(d *desk.Desk, exporter SheetExporter, cfg *config.Config, logger *zap.Logger, bus *events.Bus) *Gateway {
	g := &Gateway{
		desk:     d,
		exporter: exporter,
		renderer: render.NewHTMLRenderer(),
		letterhead: render.Letterhead{
			BusinessName: cfg.Letterhead.BusinessName,
			ContactLine:  cfg.Letterhead.ContactLine,
			LogoURL:      cfg.Letterhead.LogoURL,
		},
		logger: logger,
		bus:    bus,
		router: chi.NewRouter(),
	}

	g.setupRoutes(cfg)
	return g
}

// setupRoutes configures the HTTP routes
func (g *Gateway) setupRoutes(cfg *config.Config) {
	// Middleware
	g.router.Use(middleware.RequestID)
	g.router.Use(middleware.RealIP)
	g.router.Use(g.loggerMiddleware)
	g.router.Use(g.metricsMiddleware)
	g.router.Use(middleware.Recoverer)
	g.router.Use(middleware.Timeout(30 * time.Second))

	// CORS for the form origin
	g.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	g.registerMetrics(cfg.Monitoring.MetricsPath)

	g.router.Get("/health", g.handleHealth)

	g.router.Route("/api/v1/bill", func(r chi.Router) {
		r.Post("/preview", g.handlePreview)
		r.Post("/generate", g.handleGenerate)
		r.Get("/current", g.handleCurrent)
		r.Get("/current/document", g.handleDocument)
		r.Get("/current/message", g.handleMessage)
		r.Post("/current/export", g.handleExport)
	})
}

// ServeHTTP implements http.Handler
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.router.ServeHTTP(w, r)
}

func (g *Gateway) loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		g.logger.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_addr", r.RemoteAddr),
		)
	})
}

func (g *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	g.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Utility methods

func (g *Gateway) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func (g *Gateway) writeError(w http.ResponseWriter, statusCode int, message string) {
	g.writeJSON(w, statusCode, map[string]interface{}{
		"error": map[string]string{
			"message": message,
		},
	})
}
