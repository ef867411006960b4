package models

import "time"

type PaymentMethodID string

const (
	MethodCard             PaymentMethodID = "card"
	MethodCardInstallments PaymentMethodID = "card_installments"
	MethodApplePay         PaymentMethodID = "apple_pay"
	MethodGooglePay        PaymentMethodID = "google_pay"
	MethodCashOnDelivery   PaymentMethodID = "cash_on_delivery"
	MethodBankTransfer     PaymentMethodID = "bank_transfer"
)

type TriggerKind string

const (
	TriggerSecurity    TriggerKind = "security"
	TriggerSpeed       TriggerKind = "speed"
	TriggerFamiliarity TriggerKind = "familiarity"
	TriggerStatus      TriggerKind = "status"
	TriggerSavings     TriggerKind = "savings"
)

// PsychTrigger is a persuasion factor attached to a payment method.
// Strength is 0-100.
type PsychTrigger struct {
	Kind     TriggerKind `json:"kind"`
	Strength int         `json:"strength"`
	Message  string      `json:"message"`
}

type PromotionKind string

const (
	PromotionCashback    PromotionKind = "cashback"
	PromotionDiscount    PromotionKind = "discount"
	PromotionNoFee       PromotionKind = "no_fee"
	PromotionBonusPoints PromotionKind = "bonus_points"
)

type Promotion struct {
	Kind        PromotionKind `json:"kind"`
	Value       float64       `json:"value"`
	Description string        `json:"description"`
	ExpiresAt   time.Time     `json:"expires_at"`
}

// Requirement is a device capability a method depends on.
type Requirement string

const (
	RequirementApplePay  Requirement = "apple_pay"
	RequirementGooglePay Requirement = "google_pay"
)

// PaymentMethod is one entry of the static method catalog.
// Quality scores are 0-100, SuccessRate is 0-100, Satisfaction is 0-5.
type PaymentMethod struct {
	ID                PaymentMethodID `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Icon              string          `json:"icon"`
	FeePercentage     float64         `json:"fee_percentage"`
	FeeFixed          float64         `json:"fee_fixed"`
	MinimumAmount     float64         `json:"minimum_amount"`
	MaximumAmount     float64         `json:"maximum_amount"`
	TrustScore        int             `json:"trust_score"`
	ConvenienceScore  int             `json:"convenience_score"`
	SpeedScore        int             `json:"speed_score"`
	Triggers          []PsychTrigger  `json:"triggers"`
	IsAvailable       bool            `json:"is_available"`
	UnavailableReason string          `json:"unavailable_reason,omitempty"`
	AvailableFrom     *time.Time      `json:"available_from,omitempty"`
	AvgCompletionTime int             `json:"avg_completion_time"` // seconds
	SuccessRate       float64         `json:"success_rate"`
	Satisfaction      float64         `json:"satisfaction"`
	Promotion         *Promotion      `json:"promotion,omitempty"`
	Requirements      []Requirement   `json:"requirements,omitempty"`
	Currencies        []string        `json:"currencies,omitempty"`
	Regions           []string        `json:"regions,omitempty"`
}
