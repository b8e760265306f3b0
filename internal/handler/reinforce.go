package handler

import (
	"net/http"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/reinforce"
)

// ReinforceHandler serves reinforcement probabilities and simulations
type ReinforceHandler struct {
	service reinforce.Service
}

// NewReinforceHandler creates a new ReinforceHandler
func NewReinforceHandler(service reinforce.Service) *ReinforceHandler {
	return &ReinforceHandler{service: service}
}

// BoostRequest is the number of support items applied per attempt
type BoostRequest struct {
	Normal  int `json:"normal" validate:"gte=0,lte=3"`
	Premium int `json:"premium" validate:"gte=0,lte=2"`
}

func (b BoostRequest) toDomain() domain.BoostCounts {
	return domain.BoostCounts{Normal: b.Normal, Premium: b.Premium}
}

// ProbabilityRequest asks for the chance of reinforcing from Level to Level+1
type ProbabilityRequest struct {
	EquipmentLevel int          `json:"equipment_level" validate:"required,min=1"`
	Level          int          `json:"level" validate:"gte=0"`
	FailBonus      int          `json:"fail_bonus" validate:"gte=0,lte=70000"`
	Boosts         BoostRequest `json:"boosts"`
}

// SimulateRequest runs reinforcement attempts until TargetLevel is reached
type SimulateRequest struct {
	EquipmentLevel int          `json:"equipment_level" validate:"required,min=1"`
	StartLevel     int          `json:"start_level" validate:"gte=0"`
	TargetLevel    int          `json:"target_level" validate:"required,min=1,gtfield=StartLevel"`
	Boosts         BoostRequest `json:"boosts"`
	Trials         int          `json:"trials" validate:"omitempty,min=1"`
	Seed           *uint64      `json:"seed,omitempty"`
}

// HandleProbability handles POST /reinforce/probability
func (h *ReinforceHandler) HandleProbability(w http.ResponseWriter, r *http.Request) {
	var req ProbabilityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reinforce probability"); err != nil {
		return
	}

	result, err := h.service.Probability(r.Context(), reinforce.ProbabilityQuery{
		EquipmentLevel: req.EquipmentLevel,
		Level:          req.Level,
		FailBonus:      req.FailBonus,
		Boosts:         req.Boosts.toDomain(),
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgProbabilityFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// HandleSimulate handles POST /reinforce/simulate
func (h *ReinforceHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reinforce simulate"); err != nil {
		return
	}

	report, err := h.service.Simulate(r.Context(), reinforce.SimulateRequest{
		EquipmentLevel: req.EquipmentLevel,
		StartLevel:     req.StartLevel,
		TargetLevel:    req.TargetLevel,
		Boosts:         req.Boosts.toDomain(),
		Trials:         req.Trials,
		Seed:           req.Seed,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSimulateFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
