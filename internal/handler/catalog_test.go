package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/21in7/tos-fronet-sub000/internal/catalog"
	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/mocks"
)

func catalogRouter(h *CatalogHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/catalog/exhibitions", h.HandleListExhibitions)
	r.Get("/catalog/exhibitions/{id}/options", h.HandleGetOptionPool)
	return r
}

func TestHandleListExhibitions(t *testing.T) {
	reader := mocks.NewMockCatalogReader(t)
	reader.On("Exhibitions").Return([]domain.ExhibitionItem{
		{ID: 1, OptionSlotCount: 3, Name: "Ancient Box"},
		{ID: 2, OptionSlotCount: 2, Name: "Seal Box"},
	})

	rec := httptest.NewRecorder()
	catalogRouter(NewCatalogHandler(reader)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog/exhibitions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ExhibitionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Exhibitions, 2)
}

func TestHandleGetOptionPool(t *testing.T) {
	exhibition := domain.ExhibitionItem{ID: 1, OptionSlotCount: 2, OptionPoolIDs: []int{1, 2}}
	options := []domain.Option{
		{ID: 1, Weight: 100, DescriptionKey: "attack_percent"},
		{ID: 2, Weight: 25.5, DescriptionKey: "attack_percent"},
	}

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockCatalogReader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Non numeric id",
			path:           "/catalog/exhibitions/abc/options",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   fmt.Sprintf(ErrMsgInvalidPathParam, "id"),
		},
		{
			name:           "Zero id",
			path:           "/catalog/exhibitions/0/options",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   fmt.Sprintf(ErrMsgInvalidPathParam, "id"),
		},
		{
			name: "Unknown exhibition",
			path: "/catalog/exhibitions/9/options",
			setupMocks: func(m *mocks.MockCatalogReader) {
				m.On("Exhibition", 9).Return(domain.ExhibitionItem{}, domain.ErrExhibitionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgExhibitionNotFoundError,
		},
		{
			name: "Success",
			path: "/catalog/exhibitions/1/options",
			setupMocks: func(m *mocks.MockCatalogReader) {
				m.On("Exhibition", 1).Return(exhibition, nil)
				m.On("OptionPool", 1).Return(options, nil)
				m.On("OptionGroups", 1).Return([]catalog.OptionGroup{
					{Key: "attack_percent", DisplayName: "Attack Percent", Weight: 125.5, OptionIDs: []int{1, 2}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_weight":125.5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := mocks.NewMockCatalogReader(t)
			if tt.setupMocks != nil {
				tt.setupMocks(reader)
			}

			rec := httptest.NewRecorder()
			catalogRouter(NewCatalogHandler(reader)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
