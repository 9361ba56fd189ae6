package quote

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travelquote/internal/bundling"
	"travelquote/internal/itinerary"
	"travelquote/internal/scoring"
	"travelquote/pkg/cache"
	"travelquote/pkg/clock"
	"travelquote/pkg/idgen"
	"travelquote/pkg/logger"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
	maxItems            = 200

	defaultIdleTimeout = 30 * time.Minute
	maxSnooze          = 24 * time.Hour
)

type Config struct {
	CacheTTL      time.Duration
	TickInterval  time.Duration
	DefaultSnooze time.Duration
	MaxVisible    int
	// IdleTimeout closes workspaces nobody touched for that long.
	IdleTimeout time.Duration
	// Clock defaults to the wall clock.
	Clock clock.Clock
}

type Service struct {
	cache      cache.Cache
	snapshots  ScoreRepository
	ids        idgen.Generator
	logger     logger.Logger
	metrics    *Metrics
	clock      clock.Clock
	ttl        time.Duration
	idle       time.Duration
	sessions   bundling.Options
	workspaces *registry
}

// NewService wires the engine. snapshots may be nil, which disables score history.
func NewService(c cache.Cache, snapshots ScoreRepository, ids idgen.Generator, log logger.Logger, metrics *Metrics, cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real()
	}
	if metrics == nil {
		metrics = NopMetrics()
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = defaultIdleTimeout
	}
	return &Service{
		cache:     c,
		snapshots: snapshots,
		ids:       ids,
		logger:    log,
		metrics:   metrics,
		clock:     cfg.Clock,
		ttl:       cfg.CacheTTL,
		idle:      cfg.IdleTimeout,
		sessions: bundling.Options{
			Clock:         cfg.Clock,
			TickInterval:  cfg.TickInterval,
			DefaultSnooze: cfg.DefaultSnooze,
			MaxVisible:    cfg.MaxVisible,
		},
		workspaces: newRegistry(),
	}
}

// Evaluate returns conflicts, suggestions and the score of one itinerary.
func (s *Service) Evaluate(ctx context.Context, req QuoteRequest) (*Evaluation, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	start := time.Now()
	result, key, hit := s.evaluateCached(ctx, req)

	now := s.clock.Now()
	suggestions := bundling.Evaluate(bundling.BuildTripContext(req.Items, req.Trip, now), now)

	s.metrics.evaluated(ctx, "evaluate")
	return &Evaluation{
		Conflicts:   result.Conflicts,
		Suggestions: suggestions,
		Score:       result.Score,
		Metadata: Metadata{
			ItemCount:   len(req.Items),
			EvalTimeMs:  time.Since(start).Milliseconds(),
			CacheHit:    hit,
			CacheKey:    key,
			GeneratedAt: now.UTC().Format(time.RFC3339),
		},
	}, nil
}

// Score grades the quote and records a snapshot when QuoteID is set.
func (s *Service) Score(ctx context.Context, req QuoteRequest) (*scoring.QuoteScore, error) {
	if err := validateItems(req.Items); err != nil {
		return nil, err
	}

	result, _, _ := s.evaluateCached(ctx, req)
	s.metrics.evaluated(ctx, "score")

	if req.QuoteID != "" && s.snapshots != nil {
		if err := s.snapshots.Save(ctx, req.QuoteID, result.Score, s.clock.Now()); err != nil {
			s.logger.Error("failed to save score snapshot",
				logger.Err(err),
				logger.Field{Key: "quote_id", Value: req.QuoteID},
			)
		}
	}
	return &result.Score, nil
}

func (s *Service) Conflicts(ctx context.Context, items []itinerary.Item) (*ConflictsResponse, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	result, _, _ := s.evaluateCached(ctx, QuoteRequest{Items: items})
	s.metrics.evaluated(ctx, "conflicts")
	return &ConflictsResponse{Conflicts: result.Conflicts, Count: len(result.Conflicts)}, nil
}

// ScoreHistory lists snapshots newest first. A non-positive limit uses the default.
func (s *Service) ScoreHistory(ctx context.Context, quoteID string, limit int) (*ScoreHistoryResponse, error) {
	if s.snapshots == nil {
		return nil, ErrHistoryDisabled
	}
	if quoteID == "" {
		return nil, validationError("quote_id is required")
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	snapshots, err := s.snapshots.History(ctx, quoteID, limit)
	if err != nil {
		return nil, fmt.Errorf("score history for %s: %w", quoteID, err)
	}
	return &ScoreHistoryResponse{QuoteID: quoteID, Snapshots: snapshots}, nil
}

// evaluateCached returns the time independent results, from cache when possible.
// Suggestions are left out because they depend on the current time.
func (s *Service) evaluateCached(ctx context.Context, req QuoteRequest) (evaluationCache, string, bool) {
	cacheKey, err := s.generateCacheKey(req)
	if err != nil {
		s.logger.Error("failed to build cache key", logger.Err(err))
		return s.compute(ctx, req), "", false
	}

	cached, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err == nil && cached != "":
		var result evaluationCache
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.logger.Debug("evaluation cache hit", logger.Field{Key: "cache_key", Value: cacheKey})
			s.metrics.cacheLookup(ctx, true)
			s.metrics.scored(ctx, result.Score.Overall, result.Score.Grade)
			return result, cacheKey, true
		}
		s.logger.Error("failed to unmarshal cached evaluation",
			logger.Err(err),
			logger.Field{Key: "cache_key", Value: cacheKey},
		)
	case err != nil && !errors.Is(err, cache.ErrMiss):
		s.logger.Warn("evaluation cache unavailable", logger.Err(err))
	}

	s.metrics.cacheLookup(ctx, false)
	result := s.compute(ctx, req)

	go func() {
		bgCtx := context.Background()

		payload, err := json.Marshal(result)
		if err != nil {
			s.logger.Error("failed to marshal evaluation for caching",
				logger.Err(err),
				logger.Field{Key: "cache_key", Value: cacheKey},
			)
			return
		}
		if err := s.cache.Set(bgCtx, cacheKey, string(payload), s.ttl); err != nil {
			s.logger.Error("failed to cache evaluation",
				logger.Err(err),
				logger.Field{Key: "cache_key", Value: cacheKey},
			)
		}
	}()

	return result, cacheKey, false
}

func (s *Service) compute(ctx context.Context, req QuoteRequest) evaluationCache {
	pricing := scoring.PricingFromItems(req.Items)
	if req.Pricing != nil {
		pricing = *req.Pricing
	}

	result := evaluationCache{
		Conflicts: itinerary.DetectConflicts(req.Items),
		Score:     scoring.Score(req.Items, req.Trip, pricing),
	}
	s.metrics.conflictsFound(ctx, result.Conflicts)
	s.metrics.scored(ctx, result.Score.Overall, result.Score.Grade)
	return result
}

// generateCacheKey hashes everything the cached results depend on. CreatedAt
// is part of the items but does not affect conflicts or score, so it is left out.
func (s *Service) generateCacheKey(req QuoteRequest) (string, error) {
	type keyItem struct {
		ID      string            `json:"id"`
		Kind    itinerary.Kind    `json:"kind"`
		Price   itinerary.Price   `json:"price"`
		Date    string            `json:"date"`
		Details itinerary.Details `json:"details"`
	}

	items := make([]keyItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, keyItem{ID: it.ID, Kind: it.Kind(), Price: it.Price, Date: it.Date, Details: it.Details})
	}

	raw, err := json.Marshal(struct {
		Items   []keyItem              `json:"items"`
		Trip    itinerary.TripMetadata `json:"trip"`
		Pricing *scoring.Pricing       `json:"pricing"`
	}{items, req.Trip, req.Pricing})
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(raw)
	return fmt.Sprintf("quote:eval:%x", hash[:16]), nil
}

func validateItems(items []itinerary.Item) error {
	if len(items) > maxItems {
		return validationError("an itinerary holds at most %d items, got %d", maxItems, len(items))
	}

	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" {
			return validationError("items[%d]: id is required", i)
		}
		if it.Details == nil {
			return validationError("items[%d]: details are required", i)
		}
		if _, dup := seen[it.ID]; dup {
			return validationError("items[%d]: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
