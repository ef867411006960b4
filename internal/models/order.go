package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a historical order supplied by the order subsystem.
type Order struct {
	ID            string          `json:"id" db:"id"`
	CustomerID    string          `json:"customer_id" db:"customer_id"`
	PaymentMethod PaymentMethodID `json:"payment_method" db:"payment_method"`
	Status        OrderStatus     `json:"status" db:"status"`
	Pricing       Pricing         `json:"pricing"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

type Pricing struct {
	Total float64 `json:"total" binding:"gte=0"`
}

// OrderDraft is the partial order a recommendation is requested for.
// Pricing may be absent while the cart is still being built.
type OrderDraft struct {
	Pricing *Pricing `json:"pricing,omitempty"`
}

// Total returns the draft total, or 0 when pricing is not set yet or holds a
// negative value. Scoring and psychology inference both read the total
// through here, so they always see the same amount.
func (d OrderDraft) Total() float64 {
	if d.Pricing == nil || d.Pricing.Total < 0 {
		return 0
	}
	return d.Pricing.Total
}

// PaymentAttempt records the outcome of one payment attempt so later
// recommendations can account for prior failures.
type PaymentAttempt struct {
	ID            string          `json:"id" db:"id"`
	CustomerID    string          `json:"customer_id" db:"customer_id"`
	PaymentMethod PaymentMethodID `json:"payment_method" db:"payment_method"`
	Amount        float64         `json:"amount" db:"amount"`
	Success       bool            `json:"success" db:"success"`
	FailureReason string          `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// Database schema
const OrderSchema = `
CREATE TABLE IF NOT EXISTS orders (
    id VARCHAR(36) PRIMARY KEY,
    customer_id VARCHAR(36) NOT NULL,
    payment_method VARCHAR(32) NOT NULL,
    status VARCHAR(20) NOT NULL,
    total DECIMAL(19, 4) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders (customer_id, status);
`

const PaymentAttemptSchema = `
CREATE TABLE IF NOT EXISTS payment_attempts (
    id VARCHAR(36) PRIMARY KEY,
    customer_id VARCHAR(36) NOT NULL,
    payment_method VARCHAR(32) NOT NULL,
    amount DECIMAL(19, 4) NOT NULL,
    success BOOLEAN NOT NULL,
    failure_reason TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_attempts_customer ON payment_attempts (customer_id, success);
`
