package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// HistoryRepository reads the customer's order and payment-attempt history
// used to personalize recommendations, and records new attempt outcomes.
type HistoryRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// EnsureSchema creates the tables this repository depends on.
func (r *HistoryRepository) EnsureSchema(ctx context.Context) error {
	for _, schema := range []string{models.OrderSchema, models.PaymentAttemptSchema} {
		if _, err := r.db.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// CompletedOrders returns the customer's most recent completed orders,
// newest first.
func (r *HistoryRepository) CompletedOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	query := `
		SELECT id, customer_id, payment_method, status, total, created_at
		FROM orders
		WHERE customer_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 50
	`

	rows, err := r.db.QueryContext(ctx, query, customerID, models.OrderStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.PaymentMethod, &o.Status, &o.Pricing.Total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// FailedAttempts returns the customer's recent failed payment attempts,
// newest first.
func (r *HistoryRepository) FailedAttempts(ctx context.Context, customerID string) ([]models.FailedAttempt, error) {
	query := `
		SELECT payment_method, COALESCE(failure_reason, ''), created_at
		FROM payment_attempts
		WHERE customer_id = $1 AND success = FALSE
		ORDER BY created_at DESC
		LIMIT 50
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	attempts := []models.FailedAttempt{}
	for rows.Next() {
		var a models.FailedAttempt
		if err := rows.Scan(&a.Method, &a.Reason, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// RecordAttempt stores one payment-attempt outcome.
func (r *HistoryRepository) RecordAttempt(ctx context.Context, attempt *models.PaymentAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO payment_attempts (
			id, customer_id, payment_method, amount, success, failure_reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.CustomerID,
		attempt.PaymentMethod,
		attempt.Amount,
		attempt.Success,
		attempt.FailureReason,
		attempt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}

	return nil
}
