package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_recommendations_total",
		Help: "Recommendation batches served, by assigned test variant",
	}, []string{"variant"})

	EligibleMethods = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "advisor_eligible_methods",
		Help:    "Number of eligible methods per recommendation request",
		Buckets: prometheus.LinearBuckets(0, 1, 8),
	})

	ScoringDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "advisor_scoring_duration_seconds",
		Help:    "Time spent scoring one recommendation request",
		Buckets: prometheus.DefBuckets,
	})

	CostCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_cost_calculations_total",
		Help: "Standalone cost calculations, by result",
	}, []string{"result"})

	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "advisor_cache_lookups_total",
		Help: "Recommendation cache lookups, by outcome",
	}, []string{"outcome"})
)
