package models

type Variant string

const (
	VariantControl     Variant = "control"
	VariantExperiment1 Variant = "experiment_1"
	VariantExperiment2 Variant = "experiment_2"
)

// Recommendation is the ranked verdict for one eligible payment method.
// Confidence, PsychologicalMatch and FrictionScore are clamped to 0-100.
type Recommendation struct {
	Method             PaymentMethodID `json:"method"`
	Confidence         float64         `json:"confidence"`
	Reasoning          []string        `json:"reasoning"`
	PsychologicalMatch float64         `json:"psychological_match"`
	Advantages         []string        `json:"advantages"`
	Disadvantages      []string        `json:"disadvantages,omitempty"`
	TotalCost          float64         `json:"total_cost"`
	Savings            float64         `json:"savings,omitempty"`
	EstimatedTime      int             `json:"estimated_time"` // seconds
	FrictionScore      float64         `json:"friction_score"`
	Variant            Variant         `json:"variant,omitempty"`
}

// CostBreakdown is the exact monetary cost of paying with one method.
type CostBreakdown struct {
	OriginalAmount float64    `json:"original_amount"`
	Fee            float64    `json:"fee"`
	Total          float64    `json:"total"`
	Savings        float64    `json:"savings,omitempty"`
	Promotion      *Promotion `json:"promotion,omitempty"`
}

type RecommendationRequest struct {
	UserAgent  string     `json:"user_agent" binding:"required"`
	CustomerID string     `json:"customer_id"`
	Order      OrderDraft `json:"order"`
}

type RecommendationResponse struct {
	Recommendations []Recommendation  `json:"recommendations"`
	Profile         PsychologyProfile `json:"profile"`
	Variant         Variant           `json:"variant,omitempty"`
}

type AttemptRequest struct {
	CustomerID    string          `json:"customer_id" binding:"required"`
	PaymentMethod PaymentMethodID `json:"payment_method" binding:"required"`
	Amount        float64         `json:"amount" binding:"gte=0"`
	Success       bool            `json:"success"`
	FailureReason string          `json:"failure_reason"`
}
