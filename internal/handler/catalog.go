package handler

import (
	"net/http"

	"github.com/21in7/tos-fronet-sub000/internal/catalog"
	"github.com/21in7/tos-fronet-sub000/internal/domain"
)

// CatalogReader is the read side of the static catalog used by the listing endpoints
type CatalogReader interface {
	Exhibitions() []domain.ExhibitionItem
	Exhibition(id int) (domain.ExhibitionItem, error)
	OptionPool(exhibitionID int) ([]domain.Option, error)
	OptionGroups(exhibitionID int) ([]catalog.OptionGroup, error)
}

// CatalogHandler serves exhibition items and their option pools
type CatalogHandler struct {
	catalog CatalogReader
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(c CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ExhibitionListResponse lists every exhibition item
type ExhibitionListResponse struct {
	Exhibitions []domain.ExhibitionItem `json:"exhibitions"`
}

// OptionPoolResponse is an exhibition item with its eligible options
type OptionPoolResponse struct {
	Exhibition  domain.ExhibitionItem `json:"exhibition"`
	Options     []domain.Option       `json:"options"`
	Groups      []catalog.OptionGroup `json:"groups"`
	TotalWeight float64               `json:"total_weight"`
}

// HandleListExhibitions handles GET /catalog/exhibitions
func (h *CatalogHandler) HandleListExhibitions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ExhibitionListResponse{Exhibitions: h.catalog.Exhibitions()})
}

// HandleGetOptionPool handles GET /catalog/exhibitions/{id}/options
func (h *CatalogHandler) HandleGetOptionPool(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIntURLParam(r, w, "id")
	if !ok {
		return
	}

	exhibition, err := h.catalog.Exhibition(id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetOptionPoolFailed, err)
		return
	}
	options, err := h.catalog.OptionPool(id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetOptionPoolFailed, err)
		return
	}
	groups, err := h.catalog.OptionGroups(id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetOptionPoolFailed, err)
		return
	}

	var total float64
	for _, opt := range options {
		total += opt.Weight
	}

	respondJSON(w, http.StatusOK, OptionPoolResponse{
		Exhibition:  exhibition,
		Options:     options,
		Groups:      groups,
		TotalWeight: total,
	})
}
