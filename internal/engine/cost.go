package engine

import (
	"fmt"
	"math"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// CalculateCost computes the exact cost of paying the given amount with the
// given method, including promotion effects. A request for an unknown method
// fails with ErrMethodNotFound; it never silently prices as zero.
func (e *Engine) CalculateCost(id models.PaymentMethodID, amount float64) (models.CostBreakdown, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.CostBreakdown{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	m, ok := e.byID[id]
	if !ok {
		return models.CostBreakdown{}, fmt.Errorf("%w: %s", ErrMethodNotFound, id)
	}

	percentageFee := amount * m.FeePercentage / 100
	fee := percentageFee + m.FeeFixed

	breakdown := models.CostBreakdown{
		OriginalAmount: amount,
		Fee:            fee,
		Total:          amount + fee,
	}

	if m.Promotion != nil {
		breakdown.Promotion = m.Promotion
		switch m.Promotion.Kind {
		case models.PromotionNoFee:
			breakdown.Savings = fee
			breakdown.Fee = 0
			breakdown.Total = amount
		case models.PromotionDiscount:
			// Reported as savings only; the total is deliberately left
			// unchanged. The discount applies to the displayed order value,
			// not to the payment fee.
			breakdown.Savings = amount * m.Promotion.Value / 100
		}
		// Cashback and bonus points do not change the amount charged.
	}

	return breakdown, nil
}
