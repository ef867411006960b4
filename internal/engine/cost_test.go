package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateCostStandardFee(t *testing.T) {
	e := New(DefaultCatalog())

	tests := []struct {
		name      string
		method    models.PaymentMethodID
		amount    float64
		wantFee   float64
		wantTotal float64
	}{
		{"card 2.75% on 1000", models.MethodCard, 1000, 27.5, 1027.5},
		{"google pay 2.5% on 5000", models.MethodGooglePay, 5000, 125, 5125},
		{"bank transfer free", models.MethodBankTransfer, 2000, 0, 2000},
		{"cod percentage plus fixed", models.MethodCashOnDelivery, 500, 20, 520},
		{"zero amount", models.MethodCard, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.CalculateCost(tt.method, tt.amount)
			if err != nil {
				t.Fatalf("CalculateCost() error = %v", err)
			}
			if !almostEqual(got.Fee, tt.wantFee) {
				t.Errorf("Fee = %v, want %v", got.Fee, tt.wantFee)
			}
			if !almostEqual(got.Total, tt.wantTotal) {
				t.Errorf("Total = %v, want %v", got.Total, tt.wantTotal)
			}
			if !almostEqual(got.OriginalAmount, tt.amount) {
				t.Errorf("OriginalAmount = %v, want %v", got.OriginalAmount, tt.amount)
			}
		})
	}
}

func TestCalculateCostNoFeePromotion(t *testing.T) {
	e := New(DefaultCatalog())

	got, err := e.CalculateCost(models.MethodApplePay, 1000)
	if err != nil {
		t.Fatalf("CalculateCost() error = %v", err)
	}

	if got.Fee != 0 {
		t.Errorf("Fee = %v, want 0 under no_fee promotion", got.Fee)
	}
	// Savings equal the fee the raw parameters would have charged.
	if !almostEqual(got.Savings, 25) {
		t.Errorf("Savings = %v, want 25", got.Savings)
	}
	if !almostEqual(got.Total, 1000) {
		t.Errorf("Total = %v, want 1000", got.Total)
	}
	if got.Promotion == nil || got.Promotion.Kind != models.PromotionNoFee {
		t.Errorf("Promotion = %+v, want no_fee promotion carried through", got.Promotion)
	}
}

func TestCalculateCostDiscountReportedNotApplied(t *testing.T) {
	e := New(DefaultCatalog())

	got, err := e.CalculateCost(models.MethodCardInstallments, 1000)
	if err != nil {
		t.Fatalf("CalculateCost() error = %v", err)
	}

	// The 5% discount shows up as savings only; fee and total keep the raw
	// fee parameters.
	if !almostEqual(got.Fee, 45) {
		t.Errorf("Fee = %v, want 45", got.Fee)
	}
	if !almostEqual(got.Total, 1045) {
		t.Errorf("Total = %v, want 1045", got.Total)
	}
	if !almostEqual(got.Savings, 50) {
		t.Errorf("Savings = %v, want 50", got.Savings)
	}
}

func TestCalculateCostUnknownMethod(t *testing.T) {
	e := New(DefaultCatalog())

	_, err := e.CalculateCost("nonexistent-method", 100)
	if !errors.Is(err, ErrMethodNotFound) {
		t.Fatalf("CalculateCost() error = %v, want ErrMethodNotFound", err)
	}
}

func TestCalculateCostNegativeAmount(t *testing.T) {
	e := New(DefaultCatalog())

	_, err := e.CalculateCost(models.MethodCard, -10)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("CalculateCost() error = %v, want ErrInvalidAmount", err)
	}
}

func TestCalculateCostNonFiniteAmount(t *testing.T) {
	e := New(DefaultCatalog())

	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := e.CalculateCost(models.MethodCard, amount)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("CalculateCost(%v) error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}
