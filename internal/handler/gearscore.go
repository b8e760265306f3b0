package handler

import (
	"net/http"
	"strings"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/gearscore"
)

// GearScoreHandler serves item and loadout scores
type GearScoreHandler struct {
	service gearscore.Service
}

// NewGearScoreHandler creates a new GearScoreHandler
func NewGearScoreHandler(service gearscore.Service) *GearScoreHandler {
	return &GearScoreHandler{service: service}
}

// EquipItemRequest is the wire form of one equipped item
type EquipItemRequest struct {
	SlotType               string  `json:"slot_type" validate:"required,slottype"`
	UseLevel               int     `json:"use_level" validate:"gte=0,lte=1000"`
	Grade                  int     `json:"grade" validate:"gte=1,lte=6"`
	ReinforceCount         int     `json:"reinforce_count" validate:"gte=0,lte=100"`
	TranscendCount         int     `json:"transcend_count" validate:"gte=0,lte=10"`
	IdentificationLevel    int     `json:"identification_level" validate:"gte=0,lte=1000"`
	RandomIdentBonus       int     `json:"random_ident_bonus" validate:"gte=0,lte=1000"`
	RandomOptionCompletion float64 `json:"random_option_completion" validate:"gte=0,lte=1"`
	EnchantCompletion      float64 `json:"enchant_completion" validate:"gte=0,lte=1"`
	GemPoints              int     `json:"gem_points" validate:"gte=0"`

	ArkLevel      int  `json:"ark_level" validate:"gte=0,lte=100"`
	HasArkOption1 bool `json:"has_ark_option1"`
	HasArkOption2 bool `json:"has_ark_option2"`
	IsQuestArk    bool `json:"is_quest_ark"`

	StatSum int `json:"stat_sum" validate:"gte=0"`

	OptionCompletion float64 `json:"option_completion" validate:"gte=0,lte=1"`
	HighOption       bool    `json:"high_option"`
}

// ToDomain converts the request into a scoring input
func (req EquipItemRequest) ToDomain() domain.EquipItem {
	return domain.EquipItem{
		SlotType:               domain.SlotType(strings.ToLower(req.SlotType)),
		UseLevel:               req.UseLevel,
		Grade:                  req.Grade,
		ReinforceCount:         req.ReinforceCount,
		TranscendCount:         req.TranscendCount,
		IdentificationLevel:    req.IdentificationLevel,
		RandomIdentBonus:       req.RandomIdentBonus,
		RandomOptionCompletion: req.RandomOptionCompletion,
		EnchantCompletion:      req.EnchantCompletion,
		GemPoints:              req.GemPoints,
		ArkLevel:               req.ArkLevel,
		HasArkOption1:          req.HasArkOption1,
		HasArkOption2:          req.HasArkOption2,
		IsQuestArk:             req.IsQuestArk,
		StatSum:                req.StatSum,
		OptionCompletion:       req.OptionCompletion,
		HighOption:             req.HighOption,
	}
}

// ScoreTotalRequest is a loadout of up to a full set of items
type ScoreTotalRequest struct {
	Items []EquipItemRequest `json:"items" validate:"required,min=1,max=14,dive"`
}

// HandleScoreItem handles POST /gearscore/item
func (h *GearScoreHandler) HandleScoreItem(w http.ResponseWriter, r *http.Request) {
	var req EquipItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Score item"); err != nil {
		return
	}

	score, err := h.service.Score(r.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(w, r, ErrMsgScoreItemFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, score)
}

// HandleScoreTotal handles POST /gearscore/total
func (h *GearScoreHandler) HandleScoreTotal(w http.ResponseWriter, r *http.Request) {
	var req ScoreTotalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Score total"); err != nil {
		return
	}

	items := make([]domain.EquipItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = item.ToDomain()
	}

	total, err := h.service.Total(r.Context(), items)
	if err != nil {
		respondServiceError(w, r, ErrMsgScoreTotalFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, total)
}
