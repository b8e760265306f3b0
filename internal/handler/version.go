package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo describes the running build and the catalog it serves
type VersionInfo struct {
	Version        string `json:"version"`
	GoVersion      string `json:"go_version"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
	CatalogVersion string `json:"catalog_version,omitempty"`
}

// Injected via -ldflags "-X .../internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// HandleVersion reports build metadata. Balance changes ship as catalog
// updates without a rebuild, so the catalog version is reported alongside.
func HandleVersion(catalog CatalogStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := VersionInfo{
			Version:   resolveVersion(),
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		}
		if catalog != nil {
			info.CatalogVersion = catalog.Version()
		}
		respondJSON(w, http.StatusOK, info)
	}
}

// resolveVersion prefers the linked build version, then $VERSION
func resolveVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
