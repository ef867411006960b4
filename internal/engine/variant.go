package engine

import (
	"sort"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// AssignVariant draws one uniform value for the whole batch, tags every
// recommendation with the resulting test variant and applies the variant's
// reordering rule in place. The draw is the engine's only source of
// non-determinism; inject a fixed source via WithRandSource to pin it.
func (e *Engine) AssignVariant(recs []models.Recommendation, profile models.PsychologyProfile) models.Variant {
	draw := e.rand()

	var variant models.Variant
	switch {
	case draw < 0.33:
		variant = models.VariantControl
	case draw < 0.66:
		variant = models.VariantExperiment1
	default:
		variant = models.VariantExperiment2
	}

	for i := range recs {
		recs[i].Variant = variant
	}

	switch variant {
	case models.VariantExperiment1:
		// Wallets first on mobile, confidence as tiebreaker.
		if profile.DeviceType == models.DeviceMobile {
			sort.SliceStable(recs, func(i, j int) bool {
				wi, wj := isWallet(recs[i].Method), isWallet(recs[j].Method)
				if wi != wj {
					return wi
				}
				return recs[i].Confidence > recs[j].Confidence
			})
		}
	case models.VariantExperiment2:
		// Methods that actually save money first, confidence as tiebreaker.
		sort.SliceStable(recs, func(i, j int) bool {
			si, sj := recs[i].Savings > 0, recs[j].Savings > 0
			if si != sj {
				return si
			}
			return recs[i].Confidence > recs[j].Confidence
		})
	}

	return variant
}

func isWallet(id models.PaymentMethodID) bool {
	return id == models.MethodApplePay || id == models.MethodGooglePay
}
