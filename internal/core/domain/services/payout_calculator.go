package services

import (
	"math"

	"dispatch/internal/pkg/errs"
)

// Reward bonus tiers as fractions of the order total. Band boundaries are
// inclusive on the lower side: a total of exactly 100 earns 20%, a total of
// exactly 500 earns 15%.
const (
	smallOrderBonusRate = 0.20
	midOrderBonusRate   = 0.15
	largeOrderBonusRate = 0.10

	smallOrderLimit = 100.0
	midOrderLimit   = 500.0
)

// Flat commission rates applied to every order regardless of reward tier.
const (
	partnerCommissionRate  = 0.02
	platformCommissionRate = 0.08
)

// Payout holds the three amounts computed from an order total at close time.
// The amounts are independent of each other and of any prior ledger state.
type Payout struct {
	RewardBonus        float64
	PartnerCommission  float64
	PlatformCommission float64
}

// PayoutCalculator is a domain service computing the customer reward bonus
// and the partner/platform commissions for a delivered order.
//
// Business rules:
//   - Reward bonus: 20% for totals up to 100, 15% up to 500, 10% above
//   - Partner commission: flat 2% of the total
//   - Platform commission: flat 8% of the total
//
// The calculator is a pure function of the order total; it keeps no state
// and causes no side effects.
type PayoutCalculator struct{}

// NewPayoutCalculator creates a new PayoutCalculator instance.
func NewPayoutCalculator() PayoutCalculator {
	return PayoutCalculator{}
}

// Calculate computes the payout amounts for the given order total.
// The total must be non-negative and finite.
func (c PayoutCalculator) Calculate(orderTotal float64) (Payout, error) {
	if orderTotal < 0 || math.IsNaN(orderTotal) || math.IsInf(orderTotal, 0) {
		return Payout{}, errs.NewValueIsOutOfRangeError("orderTotal", orderTotal, 0, math.MaxFloat64)
	}

	return Payout{
		RewardBonus:        orderTotal * rewardBonusRate(orderTotal),
		PartnerCommission:  orderTotal * partnerCommissionRate,
		PlatformCommission: orderTotal * platformCommissionRate,
	}, nil
}

// rewardBonusRate selects the bonus tier for a total.
func rewardBonusRate(orderTotal float64) float64 {
	switch {
	case orderTotal <= smallOrderLimit:
		return smallOrderBonusRate
	case orderTotal <= midOrderLimit:
		return midOrderBonusRate
	default:
		return largeOrderBonusRate
	}
}
