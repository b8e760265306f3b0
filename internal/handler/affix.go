package handler

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/21in7/tos-fronet-sub000/internal/affix"
	"github.com/21in7/tos-fronet-sub000/internal/logger"
)

// AffixHandler serves option rolls, probability previews and session statistics
type AffixHandler struct {
	service affix.Service
}

// NewAffixHandler creates a new AffixHandler
func NewAffixHandler(service affix.Service) *AffixHandler {
	return &AffixHandler{service: service}
}

// RollRequest asks for Count rolls of one exhibition item
type RollRequest struct {
	ExhibitionID int     `json:"exhibition_id" validate:"required,min=1"`
	Count        int     `json:"count" validate:"omitempty,min=1"`
	Seed         *uint64 `json:"seed,omitempty"`
	SessionID    string  `json:"session_id" validate:"omitempty,max=64,printascii"`
	NewSession   bool    `json:"new_session"`
}

// PreviewRequest asks for display probabilities of an exhibition pool
type PreviewRequest struct {
	ExhibitionID int      `json:"exhibition_id" validate:"required,min=1"`
	Groups       []string `json:"groups" validate:"max=3,unique,dive,required,max=64"`
	OptionID     int      `json:"option_id" validate:"omitempty,min=1"`
	PickCount    int      `json:"pick_count" validate:"omitempty,min=1,max=32"`
}

// OptionStatResponse is one option's line in a session summary
type OptionStatResponse struct {
	OptionID int     `json:"option_id"`
	Count    int     `json:"count"`
	Sum      float64 `json:"sum"`
	Mean     float64 `json:"mean"`
}

// SessionStatsResponse summarizes the rolls accumulated by a session
type SessionStatsResponse struct {
	SessionID string               `json:"session_id"`
	Rolls     int                  `json:"rolls"`
	Options   []OptionStatResponse `json:"options"`
}

// HandleRoll handles POST /affix/roll
func (h *AffixHandler) HandleRoll(w http.ResponseWriter, r *http.Request) {
	var req RollRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Roll"); err != nil {
		return
	}

	batch, err := h.service.Roll(r.Context(), req.ExhibitionID, affix.RollOptions{
		Count:      req.Count,
		Seed:       req.Seed,
		SessionID:  req.SessionID,
		NewSession: req.NewSession,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgRollFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, batch)
}

// HandlePreview handles POST /affix/preview
func (h *AffixHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview"); err != nil {
		return
	}

	preview, err := h.service.Preview(r.Context(), affix.PreviewQuery{
		ExhibitionID: req.ExhibitionID,
		Groups:       req.Groups,
		OptionID:     req.OptionID,
		PickCount:    req.PickCount,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgPreviewFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, preview)
}

// HandleGetSession handles GET /affix/session/{id}
func (h *AffixHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	stats, err := h.service.SessionStats(r.Context(), sessionID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSessionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, newSessionStatsResponse(sessionID, stats))
}

// HandleResetSession handles DELETE /affix/session/{id}
func (h *AffixHandler) HandleResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := h.service.ResetSession(r.Context(), sessionID); err != nil {
		respondServiceError(w, r, ErrMsgResetSessionFailed, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Session reset via API", "session_id", sessionID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionResetSuccess})
}

func newSessionStatsResponse(sessionID string, stats affix.Stats) SessionStatsResponse {
	resp := SessionStatsResponse{
		SessionID: sessionID,
		Rolls:     stats.Rolls,
		Options:   make([]OptionStatResponse, 0, len(stats.PerOption)),
	}
	for id, stat := range stats.PerOption {
		resp.Options = append(resp.Options, OptionStatResponse{
			OptionID: id,
			Count:    stat.Count,
			Sum:      stat.Sum,
			Mean:     stat.Mean(),
		})
	}
	sort.Slice(resp.Options, func(i, j int) bool {
		return resp.Options[i].OptionID < resp.Options[j].OptionID
	})
	return resp
}
