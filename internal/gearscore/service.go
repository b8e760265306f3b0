package gearscore

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/event"
	"github.com/21in7/tos-fronet-sub000/internal/logger"
)

// BaseScoreProvider supplies the belt/shoulder base score table
type BaseScoreProvider interface {
	BaseScores() BaseScoreTable
}

// ItemScore is the score of one item in a loadout
type ItemScore struct {
	SlotType    domain.SlotType `json:"slot_type"`
	DisplayName string          `json:"display_name"`
	Score       int             `json:"score"`
}

// TotalResult is the total score of a loadout with its per-item breakdown
type TotalResult struct {
	Items        []ItemScore `json:"items"`
	Sum          int         `json:"sum"`
	MissingSlots int         `json:"missing_slots"`
	Compensation int         `json:"compensation"`
	Total        int         `json:"total"`
}

// Service defines the gear score interface
type Service interface {
	Score(ctx context.Context, item domain.EquipItem) (*ItemScore, error)
	Total(ctx context.Context, items []domain.EquipItem) (*TotalResult, error)
}

type service struct {
	scores   BaseScoreProvider
	eventBus event.Bus
}

// NewService creates a new gear score service
func NewService(scores BaseScoreProvider, eventBus event.Bus) Service {
	return &service{
		scores:   scores,
		eventBus: eventBus,
	}
}

func (s *service) baseTable() BaseScoreTable {
	if s.scores == nil {
		return DefaultBaseScores
	}
	if t := s.scores.BaseScores(); len(t) > 0 {
		return t
	}
	return DefaultBaseScores
}

// Score computes the score of a single item
func (s *service) Score(ctx context.Context, item domain.EquipItem) (*ItemScore, error) {
	if !item.SlotType.IsValid() {
		logger.FromContext(ctx).Warn(LogMsgUnknownSlot, "slot_type", item.SlotType)
		return nil, fmt.Errorf("%w: unknown slot type %q", domain.ErrInvalidInput, item.SlotType)
	}

	score := ScoreOf(item, s.baseTable())
	s.publish(ctx, event.NewGearScoreCalculatedEvent(string(item.SlotType), score))
	logger.FromContext(ctx).Debug(LogMsgScoreCalculated, "slot_type", item.SlotType, "score", score)

	return &ItemScore{
		SlotType:    item.SlotType,
		DisplayName: SlotDisplayName(item.SlotType),
		Score:       score,
	}, nil
}

// Total computes the loadout score with missing-slot compensation
func (s *service) Total(ctx context.Context, items []domain.EquipItem) (*TotalResult, error) {
	if len(items) > domain.FullLoadoutSize {
		return nil, fmt.Errorf("%w: a loadout holds at most %d items, got %d",
			domain.ErrInvalidInput, domain.FullLoadoutSize, len(items))
	}

	result := &TotalResult{Items: make([]ItemScore, 0, len(items))}
	for i, item := range items {
		scored, err := s.Score(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		result.Items = append(result.Items, *scored)
		result.Sum += scored.Score
	}

	result.Total = compensate(result.Sum, len(items))
	result.Compensation = result.Total - result.Sum
	if len(items) > 0 {
		result.MissingSlots = domain.FullLoadoutSize - len(items)
	}

	return result, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// SlotDisplayName returns a human-readable slot name, e.g. "Shoulder"
func SlotDisplayName(slot domain.SlotType) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(slot), "_", " "))
}
