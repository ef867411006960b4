package service

import (
	"sort"

	"github.com/strike9903/poliprint-studio-sub002/internal/models"
)

// Methods used this many times or more count as a habit.
const preferredMethodThreshold = 2

// MinePreferredMethods promotes payment methods the customer has repeatedly
// completed orders with into the profile's preferred list, most-used first.
// Pending or cancelled orders say nothing about preference and are skipped.
func MinePreferredMethods(orders []models.Order) []models.PaymentMethodID {
	counts := make(map[models.PaymentMethodID]int)
	for _, o := range orders {
		if o.Status != models.OrderStatusCompleted || o.PaymentMethod == "" {
			continue
		}
		counts[o.PaymentMethod]++
	}

	preferred := []models.PaymentMethodID{}
	for id, n := range counts {
		if n >= preferredMethodThreshold {
			preferred = append(preferred, id)
		}
	}

	sort.Slice(preferred, func(i, j int) bool {
		if counts[preferred[i]] != counts[preferred[j]] {
			return counts[preferred[i]] > counts[preferred[j]]
		}
		return preferred[i] < preferred[j]
	})

	return preferred
}
