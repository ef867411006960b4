// Package engine ranks payment methods for a storefront checkout. It scores
// every eligible method against a heuristic psychology profile of the user,
// computes the exact cost of each method, and returns a confidence-ranked
// recommendation list. The engine performs no I/O and is safe for concurrent
// use: the catalog is read-only after New and every call works on its own
// local state.
package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

var (
	ErrMethodNotFound = errors.New("payment method not found")
	ErrInvalidAmount  = errors.New("invalid order amount")
)

type Engine struct {
	catalog []models.PaymentMethod
	byID    map[models.PaymentMethodID]models.PaymentMethod
	rand    func() float64
}

type Option func(*Engine)

// WithRandSource overrides the uniform draw used for variant assignment.
// Tests use it to force each experiment branch.
func WithRandSource(fn func() float64) Option {
	return func(e *Engine) {
		e.rand = fn
	}
}

// New creates an engine over the given method catalog. The catalog is
// treated as immutable; the engine never modifies it.
func New(catalog []models.PaymentMethod, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		byID:    make(map[models.PaymentMethodID]models.PaymentMethod, len(catalog)),
		rand:    rand.Float64,
	}
	for _, m := range catalog {
		e.byID[m.ID] = m
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the methods the engine was built with.
func (e *Engine) Catalog() []models.PaymentMethod {
	return e.catalog
}

// MethodByID looks up a catalog entry.
func (e *Engine) MethodByID(id models.PaymentMethodID) (models.PaymentMethod, error) {
	m, ok := e.byID[id]
	if !ok {
		return models.PaymentMethod{}, fmt.Errorf("%w: %s", ErrMethodNotFound, id)
	}
	return m, nil
}

// Recommend returns recommendations for every method eligible for the given
// user and order, confidence-sorted and tagged with a test variant. It never
// fails for valid inputs; with no eligible methods it returns an empty list.
func (e *Engine) Recommend(profile models.PsychologyProfile, order models.OrderDraft) []models.Recommendation {
	recs := e.ScoreMethods(profile, order)
	e.AssignVariant(recs, profile)
	return recs
}

// ScoreMethods runs eligibility filtering and scoring without variant
// assignment, so callers can cache the deterministic part of the result.
func (e *Engine) ScoreMethods(profile models.PsychologyProfile, order models.OrderDraft) []models.Recommendation {
	amount := order.Total()

	recs := make([]models.Recommendation, 0, len(e.catalog))
	for _, m := range e.catalog {
		if !e.eligible(m, profile, amount) {
			continue
		}
		recs = append(recs, e.score(m, profile, amount))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})
	return recs
}

// eligible reports whether a method can be used for this user and amount.
// Currency and region constraints are declared on the catalog but not
// enforced here; see DESIGN.md.
func (e *Engine) eligible(m models.PaymentMethod, profile models.PsychologyProfile, amount float64) bool {
	if !m.IsAvailable {
		return false
	}
	if amount < m.MinimumAmount || amount > m.MaximumAmount {
		return false
	}
	for _, req := range m.Requirements {
		switch req {
		case models.RequirementApplePay:
			if !profile.HasApplePay {
				return false
			}
		case models.RequirementGooglePay:
			if !profile.HasGooglePay {
				return false
			}
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
