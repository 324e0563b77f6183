package search

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BabyBank_Go/internal/catalog"
	"github.com/osse101/BabyBank_Go/internal/domain"
	"github.com/osse101/BabyBank_Go/internal/event"
	"github.com/osse101/BabyBank_Go/internal/logger"
	"github.com/osse101/BabyBank_Go/internal/repository"
	"github.com/osse101/BabyBank_Go/internal/session"
)

// Config controls the search session store
type Config struct {
	SessionLimit int
	SessionTTL   time.Duration
}

// Service defines the search screen operations
type Service interface {
	OpenSession(ctx context.Context, sessionID string) (string, State, error)
	GetSession(ctx context.Context, sessionID string) (State, error)
	ToggleCategory(ctx context.Context, sessionID, categoryID string) (State, error)
	SetQuery(ctx context.Context, sessionID, query string) (State, error)
	ToggleQuickFilter(ctx context.Context, sessionID string, filter domain.QuickFilter) (State, error)
	Results(ctx context.Context, sessionID string, limit int) ([]domain.Listing, error)
	PopularSearches(ctx context.Context, n int) []string
	// DecayPopularSearches halves every tracked query count so recent interest ranks first
	DecayPopularSearches(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type service struct {
	policy   catalog.Policy
	repo     repository.Listing
	bus      event.Bus
	sessions *session.Store[*Filter]
	popular  *popularTracker
}

// NewService creates the search service
func NewService(cfg Config, policy catalog.Policy, repo repository.Listing, bus event.Bus) Service {
	return &service{
		policy:   policy,
		repo:     repo,
		bus:      bus,
		sessions: session.NewStore[*Filter](cfg.SessionLimit, cfg.SessionTTL, nil),
		popular:  newPopularTracker(DefaultPopularSearches),
	}
}

func (s *service) filter(sessionID string) (*Filter, error) {
	f, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSearchSessionNotFound, sessionID)
	}
	return f, nil
}

func (s *service) OpenSession(ctx context.Context, sessionID string) (string, State, error) {
	id, f, created := s.sessions.GetOrCreate(sessionID, func() *Filter {
		return NewFilter(s.policy)
	})
	if created {
		logger.FromContext(ctx).Debug(LogMsgSessionOpened, "session_id", id)
	}
	return id, f.State(), nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (State, error) {
	f, err := s.filter(sessionID)
	if err != nil {
		return State{}, err
	}
	return f.State(), nil
}

func (s *service) ToggleCategory(ctx context.Context, sessionID, categoryID string) (State, error) {
	f, err := s.filter(sessionID)
	if err != nil {
		return State{}, err
	}
	if err := f.ToggleCategory(categoryID); err != nil {
		return State{}, err
	}
	return f.State(), nil
}

func (s *service) SetQuery(ctx context.Context, sessionID, query string) (State, error) {
	f, err := s.filter(sessionID)
	if err != nil {
		return State{}, err
	}
	if err := f.SetQuery(query); err != nil {
		return State{}, err
	}
	return f.State(), nil
}

func (s *service) ToggleQuickFilter(ctx context.Context, sessionID string, qf domain.QuickFilter) (State, error) {
	f, err := s.filter(sessionID)
	if err != nil {
		return State{}, err
	}
	if _, err := f.ToggleQuickFilter(qf); err != nil {
		return State{}, err
	}
	return f.State(), nil
}

func (s *service) Results(ctx context.Context, sessionID string, limit int) ([]domain.Listing, error) {
	f, err := s.filter(sessionID)
	if err != nil {
		return nil, err
	}

	criteria := f.Criteria(limit)
	results, err := s.repo.SearchListings(ctx, criteria)
	if err != nil {
		return nil, err
	}

	s.popular.record(criteria.Query)

	log := logger.FromContext(ctx)
	log.Debug(LogMsgSearchPerformed, "session_id", sessionID, "category", criteria.Category,
		"query", criteria.Query, "results", len(results))

	if s.bus != nil {
		evt := event.NewSearchPerformedEvent(sessionID, criteria, len(results))
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Error(LogMsgPublishFailed, "error", err)
		}
	}
	return results, nil
}

func (s *service) PopularSearches(ctx context.Context, n int) []string {
	if n <= 0 {
		n = DefaultPopularCount
	}
	if n > MaxPopularCount {
		n = MaxPopularCount
	}
	return s.popular.top(n)
}

func (s *service) DecayPopularSearches(ctx context.Context) error {
	remaining := s.popular.decay()
	logger.FromContext(ctx).Debug(LogMsgPopularDecayed, "tracked_queries", remaining)
	return nil
}

func (s *service) Shutdown(ctx context.Context) error {
	s.sessions.Purge()
	return nil
}
