package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/21in7/tos-fronet-sub000/internal/affix"
	"github.com/21in7/tos-fronet-sub000/internal/gearscore"
	"github.com/21in7/tos-fronet-sub000/internal/handler"
	"github.com/21in7/tos-fronet-sub000/internal/logger"
	"github.com/21in7/tos-fronet-sub000/internal/metrics"
	"github.com/21in7/tos-fronet-sub000/internal/reinforce"
)

// Catalog is the loaded static catalog as seen by the HTTP layer
type Catalog interface {
	handler.CatalogReader
	handler.CatalogStatus
}

type Server struct {
	httpServer       *http.Server
	catalog          Catalog
	affixService     affix.Service
	gearScoreService gearscore.Service
	reinforceService reinforce.Service
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, limiter *RateLimiter, catalog Catalog, affixService affix.Service, gearScoreService gearscore.Service, reinforceService reinforce.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(catalog))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(catalog))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		catalogHandler := handler.NewCatalogHandler(catalog)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/exhibitions", catalogHandler.HandleListExhibitions)
			r.Get("/exhibitions/{id}/options", catalogHandler.HandleGetOptionPool)
		})

		affixHandler := handler.NewAffixHandler(affixService)
		r.Route("/affix", func(r chi.Router) {
			r.Post("/roll", affixHandler.HandleRoll)
			r.Post("/preview", affixHandler.HandlePreview)
			r.Get("/session/{id}", affixHandler.HandleGetSession)
			r.Delete("/session/{id}", affixHandler.HandleResetSession)
		})

		gearScoreHandler := handler.NewGearScoreHandler(gearScoreService)
		r.Route("/gearscore", func(r chi.Router) {
			r.Post("/item", gearScoreHandler.HandleScoreItem)
			r.Post("/total", gearScoreHandler.HandleScoreTotal)
		})

		reinforceHandler := handler.NewReinforceHandler(reinforceService)
		r.Route("/reinforce", func(r chi.Router) {
			r.Post("/probability", reinforceHandler.HandleProbability)
			r.Post("/simulate", reinforceHandler.HandleSimulate)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		catalog:          catalog,
		affixService:     affixService,
		gearScoreService: gearScoreService,
		reinforceService: reinforceService,
	}
}

// Handler returns the fully wired router
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isInfraPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// sanitizeHeaders redacts credentials a proxy or browser may attach
func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) ||
			strings.EqualFold(k, HeaderAuthorization) ||
			strings.EqualFold(k, HeaderCookie) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr, "catalog_version", s.catalog.Version())
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
