package handler

import (
	"log/slog"
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	CatalogVersion  string `json:"catalog_version,omitempty"`
	CatalogChecksum string `json:"catalog_checksum,omitempty"`
}

// CatalogStatus reports which static catalog is being served
type CatalogStatus interface {
	Version() string
	Checksum() string
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once a catalog has been loaded
func HandleReadyz(catalog CatalogStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil {
			slog.Error("Readiness check failed", "error", "catalog not loaded")
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "catalog not loaded",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status:          "ok",
			CatalogVersion:  catalog.Version(),
			CatalogChecksum: catalog.Checksum(),
		})
	}
}
