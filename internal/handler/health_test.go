package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogStatus struct {
	version  string
	checksum string
}

func (f fakeCatalogStatus) Version() string  { return f.version }
func (f fakeCatalogStatus) Checksum() string { return f.checksum }

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Catalog Loaded", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(fakeCatalogStatus{version: "1.0", checksum: "abc123"})
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		assert.Contains(t, w.Body.String(), `"catalog_version":"1.0"`)
		assert.Contains(t, w.Body.String(), `"catalog_checksum":"abc123"`)
	})

	t.Run("Catalog Missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		handler := HandleReadyz(nil)
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"catalog not loaded"`)
	})
}

func TestHandleVersion(t *testing.T) {
	origVersion := Version
	t.Cleanup(func() { Version = origVersion })

	tests := []struct {
		name        string
		buildValue  string
		envValue    string
		wantVersion string
	}{
		{"build flag wins", "v1.2.3", "v9.9.9", "v1.2.3"},
		{"environment fallback", "dev", "v2.0.0", "v2.0.0"},
		{"default", "dev", "", "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.buildValue
			t.Setenv("VERSION", tt.envValue)

			w := httptest.NewRecorder()
			HandleVersion(fakeCatalogStatus{version: "2025.3"}).ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var info VersionInfo
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.Equal(t, runtime.Version(), info.GoVersion)
			assert.Equal(t, "2025.3", info.CatalogVersion)
		})
	}
}

func TestHandleVersion_NoCatalog(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion(nil).ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "catalog_version")
}
