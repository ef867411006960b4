package engine

import (
	"time"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// DefaultCatalog returns the canonical set of payment methods supported by
// the storefront. The engine treats the catalog as immutable; callers that
// need a different set (tests, regional deployments) pass their own slice
// to New.
func DefaultCatalog() []models.PaymentMethod {
	promoEnd := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)

	return []models.PaymentMethod{
		{
			ID:            models.MethodCard,
			Name:          "Bank card",
			Description:   "Visa or Mastercard, processed online",
			Icon:          "credit-card",
			FeePercentage: 2.75,
			MinimumAmount: 1,
			MaximumAmount: 100000,
			TrustScore:    85, ConvenienceScore: 90, SpeedScore: 80,
			Triggers: []models.PsychTrigger{
				{Kind: models.TriggerFamiliarity, Strength: 90, Message: "Pay the way you always do"},
				{Kind: models.TriggerSecurity, Strength: 80, Message: "3-D Secure protects every payment"},
			},
			IsAvailable:       true,
			AvgCompletionTime: 45,
			SuccessRate:       97.5,
			Satisfaction:      4.5,
			Currencies:        []string{"UAH", "USD", "EUR"},
			Regions:           []string{"UA", "EU"},
		},
		{
			ID:            models.MethodCardInstallments,
			Name:          "Card installments",
			Description:   "Split the order into monthly card payments",
			Icon:          "calendar",
			FeePercentage: 4.0,
			FeeFixed:      5,
			MinimumAmount: 500,
			MaximumAmount: 50000,
			TrustScore:    80, ConvenienceScore: 75, SpeedScore: 60,
			Triggers: []models.PsychTrigger{
				{Kind: models.TriggerSavings, Strength: 70, Message: "Spread the cost over months"},
				{Kind: models.TriggerStatus, Strength: 50, Message: "Flexible plan for bigger print runs"},
			},
			IsAvailable:       true,
			AvgCompletionTime: 90,
			SuccessRate:       94,
			Satisfaction:      4.1,
			Promotion: &models.Promotion{
				Kind:        models.PromotionDiscount,
				Value:       5,
				Description: "5% off your first installment order",
				ExpiresAt:   promoEnd,
			},
			Currencies: []string{"UAH"},
			Regions:    []string{"UA"},
		},
		{
			ID:            models.MethodApplePay,
			Name:          "Apple Pay",
			Description:   "One-tap payment from your iPhone",
			Icon:          "apple",
			FeePercentage: 2.5,
			MinimumAmount: 1,
			MaximumAmount: 75000,
			TrustScore:    95, ConvenienceScore: 98, SpeedScore: 99,
			Triggers: []models.PsychTrigger{
				{Kind: models.TriggerSpeed, Strength: 95, Message: "One tap and you're done"},
				{Kind: models.TriggerSecurity, Strength: 85, Message: "Face ID confirms every payment"},
				{Kind: models.TriggerStatus, Strength: 70, Message: "The modern way to pay"},
			},
			IsAvailable:       true,
			AvgCompletionTime: 8,
			SuccessRate:       99.2,
			Satisfaction:      4.9,
			Promotion: &models.Promotion{
				Kind:        models.PromotionNoFee,
				Description: "No processing fee with Apple Pay",
				ExpiresAt:   promoEnd,
			},
			Requirements: []models.Requirement{models.RequirementApplePay},
			Currencies:   []string{"UAH", "USD", "EUR"},
			Regions:      []string{"UA", "EU"},
		},
		{
			ID:            models.MethodGooglePay,
			Name:          "Google Pay",
			Description:   "One-tap payment from your Android device",
			Icon:          "google",
			FeePercentage: 2.5,
			MinimumAmount: 1,
			MaximumAmount: 75000,
			TrustScore:    93, ConvenienceScore: 96, SpeedScore: 97,
			Triggers: []models.PsychTrigger{
				{Kind: models.TriggerSpeed, Strength: 93, Message: "Checkout in seconds"},
				{Kind: models.TriggerSecurity, Strength: 80, Message: "Your card number is never shared"},
			},
			IsAvailable:       true,
			AvgCompletionTime: 10,
			SuccessRate:       98.8,
			Satisfaction:      4.7,
			Requirements:      []models.Requirement{models.RequirementGooglePay},
			Currencies:        []string{"UAH", "USD", "EUR"},
			Regions:           []string{"UA", "EU"},
		},
		{
			ID:            models.MethodCashOnDelivery,
			Name:          "Cash on delivery",
			Description:   "Pay the courier when your order arrives",
			Icon:          "cash",
			FeePercentage: 2.0,
			FeeFixed:      10,
			MinimumAmount: 100,
			MaximumAmount: 10000,
			TrustScore:    90, ConvenienceScore: 60, SpeedScore: 20,
			Triggers: []models.PsychTrigger{
				{Kind: models.TriggerSecurity, Strength: 95, Message: "Pay only after you inspect the prints"},
				{Kind: models.TriggerFamiliarity, Strength: 85, Message: "The classic way to receive an order"},
			},
			IsAvailable:       true,
			AvgCompletionTime: 120,
			SuccessRate:       92,
			Satisfaction:      4.2,
			Currencies:        []string{"UAH"},
			Regions:           []string{"UA"},
		},
		{
			ID:            models.MethodBankTransfer,
			Name:          "Bank transfer",
			Description:   "Direct transfer by invoice, no card needed",
			Icon:          "bank",
			MinimumAmount: 1000,
			MaximumAmount: 1000000,
			TrustScore:    75, ConvenienceScore: 40, SpeedScore: 30,
			Triggers: []models.PsychTrigger{
				{Kind: models.TriggerSavings, Strength: 80, Message: "No card fees at all"},
			},
			IsAvailable:       true,
			AvgCompletionTime: 3600,
			SuccessRate:       90,
			Satisfaction:      3.8,
			Currencies:        []string{"UAH", "USD", "EUR"},
			Regions:           []string{"UA", "EU"},
		},
	}
}
