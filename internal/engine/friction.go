package engine

import "github.com/strike9903/poliprint-studio-sub002/internal/models"

// Perceived effort of starting a payment with each method, before any
// per-user adjustments.
var baseFriction = map[models.PaymentMethodID]float64{
	models.MethodApplePay:         5,
	models.MethodGooglePay:        5,
	models.MethodCard:             15,
	models.MethodCardInstallments: 20,
	models.MethodCashOnDelivery:   25,
	models.MethodBankTransfer:     40,
}

const defaultBaseFriction = 30

// frictionScore estimates how much effort a method imposes on this user:
// unfamiliar methods cost more, prior failures cost a lot more, and every
// device requirement adds setup overhead.
func (e *Engine) frictionScore(m models.PaymentMethod, profile models.PsychologyProfile) float64 {
	friction, ok := baseFriction[m.ID]
	if !ok {
		friction = defaultBaseFriction
	}

	preferred := false
	for _, id := range profile.PreferredMethods {
		if id == m.ID {
			preferred = true
			break
		}
	}
	if !preferred {
		friction += 10
	}

	for _, attempt := range profile.FailedAttempts {
		if attempt.Method == m.ID {
			friction += 15
		}
	}

	friction += 5 * float64(len(m.Requirements))

	return clamp(friction, 0, 100)
}
