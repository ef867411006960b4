package engine

import (
	"fmt"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// scoringRule inspects one method/profile pair, optionally appends reasoning
// or advantage text to the recommendation, and returns the confidence points
// it contributes. Points are additive and may be negative; the final sum is
// clamped to 0-100.
type scoringRule func(m models.PaymentMethod, profile models.PsychologyProfile, amount float64, rec *models.Recommendation) float64

// score builds the full recommendation for one eligible method.
func (e *Engine) score(m models.PaymentMethod, profile models.PsychologyProfile, amount float64) models.Recommendation {
	rec := models.Recommendation{
		Method:        m.ID,
		Reasoning:     []string{},
		Advantages:    []string{},
		EstimatedTime: m.AvgCompletionTime,
	}

	rules := []scoringRule{
		e.scorePsychologicalMatch,
		e.scoreDeviceFit,
		e.scorePriceSensitivity,
		e.scoreSpeedPreference,
		e.scoreRiskAversion,
		e.scorePromotion,
		e.scoreHistoricalPreference,
		e.scoreFirstTimeBias,
	}

	var confidence float64
	for _, rule := range rules {
		confidence += rule(m, profile, amount, &rec)
	}
	rec.Confidence = clamp(confidence, 0, 100)

	cost, err := e.CalculateCost(m.ID, amount)
	if err == nil {
		rec.TotalCost = cost.Total
		rec.Savings = cost.Savings
	}
	rec.FrictionScore = e.frictionScore(m, profile)

	return rec
}

func (e *Engine) scorePsychologicalMatch(m models.PaymentMethod, profile models.PsychologyProfile, _ float64, rec *models.Recommendation) float64 {
	match := psychologicalMatch(m, profile)
	rec.PsychologicalMatch = match
	if match > 80 {
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Matches your preferences by %.0f%%", match))
	}
	return match * 0.4
}

func (e *Engine) scoreDeviceFit(m models.PaymentMethod, profile models.PsychologyProfile, _ float64, rec *models.Recommendation) float64 {
	if profile.DeviceType != models.DeviceMobile {
		return 0
	}
	if m.ID != models.MethodApplePay && m.ID != models.MethodGooglePay {
		return 0
	}
	rec.Reasoning = append(rec.Reasoning, "Optimized for your mobile device")
	rec.Advantages = append(rec.Advantages, "One-tap payment from your phone")
	return 25
}

func (e *Engine) scorePriceSensitivity(m models.PaymentMethod, profile models.PsychologyProfile, amount float64, rec *models.Recommendation) float64 {
	if profile.PriceSensitivity != models.PriceSensitivityHigh {
		return 0
	}
	cost, err := e.CalculateCost(m.ID, amount)
	if err != nil {
		return 0
	}
	switch {
	case cost.Fee == 0:
		rec.Reasoning = append(rec.Reasoning, "No processing fee")
		rec.Advantages = append(rec.Advantages, "Saves you the processing fee")
		return 20
	case cost.Fee < 50:
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Low fee of %.2f", cost.Fee))
		return 10
	default:
		rec.Disadvantages = append(rec.Disadvantages, fmt.Sprintf("Fee of %.2f applies", cost.Fee))
		return -10
	}
}

func (e *Engine) scoreSpeedPreference(m models.PaymentMethod, profile models.PsychologyProfile, _ float64, rec *models.Recommendation) float64 {
	if profile.ConveniencePreference != models.PreferSpeed {
		return 0
	}
	if m.AvgCompletionTime < 30 {
		rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Takes about %d seconds", m.AvgCompletionTime))
		rec.Advantages = append(rec.Advantages, fmt.Sprintf("Completes in roughly %d seconds", m.AvgCompletionTime))
	}
	return float64(m.SpeedScore) * 0.3
}

func (e *Engine) scoreRiskAversion(m models.PaymentMethod, profile models.PsychologyProfile, _ float64, rec *models.Recommendation) float64 {
	if profile.RiskTolerance != models.RiskLow {
		return 0
	}
	if m.SuccessRate > 95 {
		rec.Reasoning = append(rec.Reasoning, "High reliability")
		rec.Advantages = append(rec.Advantages, fmt.Sprintf("%.1f%% of payments succeed", m.SuccessRate))
	}
	return float64(m.TrustScore) * 0.2
}

func (e *Engine) scorePromotion(m models.PaymentMethod, _ models.PsychologyProfile, _ float64, rec *models.Recommendation) float64 {
	if m.Promotion == nil {
		return 0
	}
	rec.Reasoning = append(rec.Reasoning, fmt.Sprintf("Promotion: %s", m.Promotion.Description))
	rec.Advantages = append(rec.Advantages, m.Promotion.Description)
	return 15
}

func (e *Engine) scoreHistoricalPreference(m models.PaymentMethod, profile models.PsychologyProfile, _ float64, rec *models.Recommendation) float64 {
	for _, id := range profile.PreferredMethods {
		if id == m.ID {
			rec.Reasoning = append(rec.Reasoning, "Your favorite payment method")
			return 20
		}
	}
	return 0
}

// Safe defaults for a first order: the primary card processor and cash on
// delivery.
func (e *Engine) scoreFirstTimeBias(m models.PaymentMethod, profile models.PsychologyProfile, _ float64, rec *models.Recommendation) float64 {
	if !profile.IsFirstTime {
		return 0
	}
	if m.ID != models.MethodCard && m.ID != models.MethodCashOnDelivery {
		return 0
	}
	rec.Reasoning = append(rec.Reasoning, "A good choice for your first order")
	return 10
}

// psychologicalMatch compares a method's trigger list against the user's
// stated preferences. Each trigger contributes only when the matching
// preference holds; the sum is averaged over the full trigger count so that
// irrelevant triggers dilute the fit.
func psychologicalMatch(m models.PaymentMethod, profile models.PsychologyProfile) float64 {
	if len(m.Triggers) == 0 {
		return 0
	}

	var sum float64
	for _, t := range m.Triggers {
		strength := float64(t.Strength)
		switch t.Kind {
		case models.TriggerSpeed:
			if profile.ConveniencePreference == models.PreferSpeed {
				sum += strength * 0.8
			}
		case models.TriggerSecurity:
			if profile.RiskTolerance == models.RiskLow {
				sum += strength * 0.8
			}
		case models.TriggerFamiliarity:
			if profile.ConveniencePreference == models.PreferFamiliarity {
				sum += strength * 0.8
			}
		case models.TriggerSavings:
			if profile.PriceSensitivity == models.PriceSensitivityHigh {
				sum += strength * 0.9
			}
		case models.TriggerStatus:
			if profile.AgeGroup == "18-25" || profile.AgeGroup == "26-35" {
				sum += strength * 0.6
			}
		}
	}

	return clamp(sum/float64(len(m.Triggers)), 0, 100)
}
