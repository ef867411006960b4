package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/strike9903/poliprint-studio-sub002/internal/engine"
	"github.com/strike9903/poliprint-studio-sub002/internal/metrics"
	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// HistoryStore is the slice of the repository the advisor needs.
type HistoryStore interface {
	CompletedOrders(ctx context.Context, customerID string) ([]models.Order, error)
	FailedAttempts(ctx context.Context, customerID string) ([]models.FailedAttempt, error)
	RecordAttempt(ctx context.Context, attempt *models.PaymentAttempt) error
}

// AdvisorService orchestrates the recommendation engine with customer
// history, caching and metrics. The engine itself stays pure; everything
// with a side effect lives here.
type AdvisorService struct {
	engine *engine.Engine
	repo   HistoryStore
	cache  *RecommendationCache
	logger *zap.Logger
	nowFn  func() time.Time
}

func NewAdvisorService(eng *engine.Engine, repo HistoryStore, cache *RecommendationCache, logger *zap.Logger) *AdvisorService {
	return &AdvisorService{
		engine: eng,
		repo:   repo,
		cache:  cache,
		logger: logger,
		nowFn:  time.Now,
	}
}

// Recommend infers the user's psychology profile, scores every eligible
// method and returns the variant-ordered recommendation list. History
// lookups degrade gracefully: on repository failure the user is scored as a
// first-time customer rather than failing the request.
func (s *AdvisorService) Recommend(ctx context.Context, req *models.RecommendationRequest) (*models.RecommendationResponse, error) {
	start := time.Now()

	history := []models.Order{}
	attempts := []models.FailedAttempt{}
	if req.CustomerID != "" && s.repo != nil {
		var err error
		history, err = s.repo.CompletedOrders(ctx, req.CustomerID)
		if err != nil {
			s.logger.Warn("order history unavailable, scoring as first-time customer",
				zap.String("customer_id", req.CustomerID),
				zap.Error(err))
			history = []models.Order{}
		}
		attempts, err = s.repo.FailedAttempts(ctx, req.CustomerID)
		if err != nil {
			s.logger.Warn("attempt history unavailable",
				zap.String("customer_id", req.CustomerID),
				zap.Error(err))
			attempts = []models.FailedAttempt{}
		}
	}

	profile := engine.AnalyzePsychology(engine.AnalysisContext{
		UserAgent:    req.UserAgent,
		OrderHistory: history,
		CurrentOrder: req.Order,
		Timestamp:    s.nowFn(),
	})
	profile.PreferredMethods = MinePreferredMethods(history)
	profile.FailedAttempts = attempts

	recs := s.scoredRecommendations(ctx, profile, req.Order)

	// Variant assignment stays per-call even on cache hits, so work on a
	// copy of the cached slice.
	ordered := make([]models.Recommendation, len(recs))
	copy(ordered, recs)
	variant := s.engine.AssignVariant(ordered, profile)

	metrics.RecommendationsServed.WithLabelValues(string(variant)).Inc()
	metrics.EligibleMethods.Observe(float64(len(ordered)))
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	return &models.RecommendationResponse{
		Recommendations: ordered,
		Profile:         profile,
		Variant:         variant,
	}, nil
}

// scoredRecommendations returns the deterministic (pre-variant) scored list,
// through the cache when one is configured.
func (s *AdvisorService) scoredRecommendations(ctx context.Context, profile models.PsychologyProfile, order models.OrderDraft) []models.Recommendation {
	if s.cache == nil {
		return s.engine.ScoreMethods(profile, order)
	}

	key := s.cache.Key(profile, order.Total())
	if recs, ok := s.cache.Get(ctx, key); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return recs
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	recs := s.engine.ScoreMethods(profile, order)
	s.cache.Set(ctx, key, recs)
	return recs
}

// Cost exposes the standalone cost calculation for UI display.
func (s *AdvisorService) Cost(methodID models.PaymentMethodID, amount float64) (models.CostBreakdown, error) {
	breakdown, err := s.engine.CalculateCost(methodID, amount)
	switch {
	case err == nil:
		metrics.CostCalculations.WithLabelValues("ok").Inc()
	case errors.Is(err, engine.ErrMethodNotFound):
		metrics.CostCalculations.WithLabelValues("not_found").Inc()
	case errors.Is(err, engine.ErrInvalidAmount):
		metrics.CostCalculations.WithLabelValues("invalid").Inc()
	}
	return breakdown, err
}

// Methods lists the full catalog for the UI method picker.
func (s *AdvisorService) Methods() []models.PaymentMethod {
	return s.engine.Catalog()
}

// RecordAttempt persists a payment-attempt outcome so future friction
// scores reflect it.
func (s *AdvisorService) RecordAttempt(ctx context.Context, req *models.AttemptRequest) (*models.PaymentAttempt, error) {
	if _, err := s.engine.MethodByID(req.PaymentMethod); err != nil {
		return nil, err
	}

	attempt := &models.PaymentAttempt{
		CustomerID:    req.CustomerID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		Success:       req.Success,
		FailureReason: req.FailureReason,
		CreatedAt:     s.nowFn(),
	}

	if err := s.repo.RecordAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	return attempt, nil
}
