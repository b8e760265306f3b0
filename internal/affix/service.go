package affix

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/21in7/tos-fronet-sub000/internal/domain"
	"github.com/21in7/tos-fronet-sub000/internal/event"
	"github.com/21in7/tos-fronet-sub000/internal/logger"
	"github.com/21in7/tos-fronet-sub000/internal/utils"
)

// Catalog provides the static option data a roll draws from
type Catalog interface {
	Exhibition(id int) (domain.ExhibitionItem, error)
	OptionPool(exhibitionID int) ([]domain.Option, error)
}

// SessionStore keeps per-session roll statistics
type SessionStore interface {
	Record(ctx context.Context, sessionID string, rolls [][]domain.RolledOption) error
	Snapshot(ctx context.Context, sessionID string) (Stats, error)
	Reset(ctx context.Context, sessionID string) (Stats, error)
}

// RollOptions controls a roll batch
type RollOptions struct {
	Count      int
	Seed       *uint64
	SessionID  string
	NewSession bool
}

// RollBatch is the outcome of one or more rolls of the same exhibition item
type RollBatch struct {
	ExhibitionID int                     `json:"exhibition_id"`
	SessionID    string                  `json:"session_id,omitempty"`
	Rolls        [][]domain.RolledOption `json:"rolls"`
	TotalCost    int                     `json:"total_cost"`
}

// PreviewQuery selects which probability estimates to compute.
// PickCount defaults to the exhibition's slot count when zero.
type PreviewQuery struct {
	ExhibitionID int
	Groups       []string
	OptionID     int
	PickCount    int
}

// Preview holds display-only probability estimates in [0,1]
type Preview struct {
	ExhibitionID int      `json:"exhibition_id"`
	PickCount    int      `json:"pick_count"`
	AnyGroup     float64  `json:"any_group"`
	AllGroups    *float64 `json:"all_groups,omitempty"`
	MaxValue     *float64 `json:"max_value,omitempty"`
}

// Service defines the affix rolling interface
type Service interface {
	Roll(ctx context.Context, exhibitionID int, opts RollOptions) (*RollBatch, error)
	Preview(ctx context.Context, q PreviewQuery) (*Preview, error)
	SessionStats(ctx context.Context, sessionID string) (Stats, error)
	ResetSession(ctx context.Context, sessionID string) error
}

type service struct {
	catalog      Catalog
	sessions     SessionStore
	eventBus     event.Bus
	maxRollCount int
	sourceFor    func(seed *uint64) utils.RandomSource
}

// NewService creates a new affix service
func NewService(catalog Catalog, sessions SessionStore, eventBus event.Bus, maxRollCount int) Service {
	return &service{
		catalog:      catalog,
		sessions:     sessions,
		eventBus:     eventBus,
		maxRollCount: maxRollCount,
		sourceFor:    utils.SourceFor,
	}
}

// Roll draws opts.Count independent rolls from the exhibition's option pool.
// All rolls of a batch share one random source, so a seed reproduces the whole batch.
func (s *service) Roll(ctx context.Context, exhibitionID int, opts RollOptions) (*RollBatch, error) {
	log := logger.FromContext(ctx)

	count := opts.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || (s.maxRollCount > 0 && count > s.maxRollCount) {
		return nil, fmt.Errorf("%w: roll count must be between 1 and %d, got %d", domain.ErrInvalidInput, s.maxRollCount, count)
	}

	exhibition, err := s.catalog.Exhibition(exhibitionID)
	if err != nil {
		return nil, err
	}
	pool, err := s.catalog.OptionPool(exhibitionID)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		log.Warn(LogMsgEmptyPool, LogFieldExhibition, exhibitionID)
		s.publish(ctx, event.NewAffixPoolEmptyEvent(exhibitionID))
		return nil, fmt.Errorf("%w: exhibition %d", domain.ErrEmptyPool, exhibitionID)
	}

	sessionID := opts.SessionID
	if sessionID == "" && opts.NewSession {
		sessionID = uuid.NewString()
	}
	if sessionID != "" {
		ctx = logger.WithSessionID(ctx, sessionID)
		log = logger.FromContext(ctx)
	}

	rng := s.sourceFor(opts.Seed)
	rolls := make([][]domain.RolledOption, count)
	for i := range rolls {
		rolls[i] = SelectWeighted(pool, exhibition.OptionSlotCount, rng)
	}

	if sessionID != "" {
		log.Debug(LogMsgSessionRecording, LogFieldCount, count)
		if err := s.sessions.Record(ctx, sessionID, rolls); err != nil {
			return nil, fmt.Errorf("failed to record rolls for session %s: %w", sessionID, err)
		}
	}

	for _, roll := range rolls {
		s.publish(ctx, event.NewAffixRolledEvent(exhibitionID, optionIDs(roll), sessionID))
	}

	log.Info(LogMsgRollCompleted,
		LogFieldExhibition, exhibitionID,
		LogFieldCount, count,
		LogFieldSeeded, opts.Seed != nil)

	return &RollBatch{
		ExhibitionID: exhibitionID,
		SessionID:    sessionID,
		Rolls:        rolls,
		TotalCost:    exhibition.Cost * count,
	}, nil
}

// Preview computes probability estimates for an exhibition's option pool
func (s *service) Preview(ctx context.Context, q PreviewQuery) (*Preview, error) {
	exhibition, err := s.catalog.Exhibition(q.ExhibitionID)
	if err != nil {
		return nil, err
	}
	pool, err := s.catalog.OptionPool(q.ExhibitionID)
	if err != nil {
		return nil, err
	}

	pickCount := q.PickCount
	if pickCount == 0 {
		pickCount = exhibition.OptionSlotCount
	}
	if pickCount < 0 {
		return nil, fmt.Errorf("%w: pick count must not be negative", domain.ErrInvalidInput)
	}

	result := &Preview{
		ExhibitionID: q.ExhibitionID,
		PickCount:    pickCount,
		AnyGroup:     ProbabilityAnyGroup(pool, q.Groups, pickCount),
	}

	if n := len(uniqueGroups(q.Groups)); n >= MinAllGroupsTargets {
		all, err := ProbabilityAllGroups(pool, q.Groups, pickCount)
		if err != nil {
			return nil, err
		}
		result.AllGroups = &all
	}

	if q.OptionID != 0 {
		maxValue, err := ProbabilityMaxValue(pool, q.OptionID, pickCount)
		if err != nil {
			return nil, err
		}
		result.MaxValue = &maxValue
	}

	return result, nil
}

// SessionStats returns a snapshot of the session's accumulated statistics
func (s *service) SessionStats(ctx context.Context, sessionID string) (Stats, error) {
	return s.sessions.Snapshot(ctx, sessionID)
}

// ResetSession clears the session's statistics
func (s *service) ResetSession(ctx context.Context, sessionID string) error {
	prev, err := s.sessions.Reset(ctx, sessionID)
	if err != nil {
		return err
	}
	logger.FromContext(logger.WithSessionID(ctx, sessionID)).Info(LogMsgSessionReset)
	s.publish(ctx, event.NewSessionResetEvent(sessionID, prev.Rolls))
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, LogFieldError, err)
	}
}

func optionIDs(roll []domain.RolledOption) []int {
	ids := make([]int, len(roll))
	for i, r := range roll {
		ids[i] = r.Option.ID
	}
	return ids
}
