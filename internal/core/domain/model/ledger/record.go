// Package ledger provides the immutable transaction record appended to the
// audit ledger when an order is delivered. Records are value objects: created
// exactly once per order, never edited, never removed.
package ledger

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrTransactionRecordIsNotConstructed is returned when a TransactionRecord
// was not created through the NewTransactionRecord factory method.
var ErrTransactionRecordIsNotConstructed = errors.New(
	"TransactionRecord must be created via NewTransactionRecord")

// TransactionRecord is the audit entry for one completed order. It captures
// the order total and the payout amounts computed at close time.
//
// A record is an audit entry, not a money-movement transaction; amounts are
// recorded for reporting only.
type TransactionRecord struct {
	orderID            kernel.UUID
	customerID         string
	partnerID          string
	orderTotal         float64
	rewardBonus        float64
	partnerCommission  float64
	platformCommission float64

	isConstructed bool
}

// NewTransactionRecord creates a validated ledger record for a delivered
// order. All identities must be set and all amounts non-negative.
func NewTransactionRecord(
	orderID kernel.UUID,
	customerID string,
	partnerID string,
	orderTotal float64,
	rewardBonus float64,
	partnerCommission float64,
	platformCommission float64,
) (TransactionRecord, error) {
	if err := orderID.Validate(); err != nil {
		return TransactionRecord{}, err
	}
	if customerID == "" {
		return TransactionRecord{}, errs.NewValueIsRequiredError("customerID")
	}
	if partnerID == "" {
		return TransactionRecord{}, errs.NewValueIsRequiredError("partnerID")
	}
	for name, v := range map[string]float64{
		"orderTotal":         orderTotal,
		"rewardBonus":        rewardBonus,
		"partnerCommission":  partnerCommission,
		"platformCommission": platformCommission,
	} {
		if v < 0 {
			return TransactionRecord{}, errs.NewValueIsOutOfRangeError(name, v, 0, math.MaxFloat64)
		}
	}

	return TransactionRecord{
		orderID:            orderID,
		customerID:         customerID,
		partnerID:          partnerID,
		orderTotal:         orderTotal,
		rewardBonus:        rewardBonus,
		partnerCommission:  partnerCommission,
		platformCommission: platformCommission,
		isConstructed:      true,
	}, nil
}

// Validate ensures the record was created through NewTransactionRecord.
func (r TransactionRecord) Validate() error {
	if !r.isConstructed {
		return ErrTransactionRecordIsNotConstructed
	}
	return nil
}

// OrderID returns the delivered order's identifier.
func (r TransactionRecord) OrderID() kernel.UUID {
	return r.orderID
}

// CustomerID returns the ordering customer's identity.
func (r TransactionRecord) CustomerID() string {
	return r.customerID
}

// PartnerID returns the delivering partner's identity.
func (r TransactionRecord) PartnerID() string {
	return r.partnerID
}

// OrderTotal returns the order total the payouts were computed from.
func (r TransactionRecord) OrderTotal() float64 {
	return r.orderTotal
}

// RewardBonus returns the customer reward amount.
func (r TransactionRecord) RewardBonus() float64 {
	return r.rewardBonus
}

// PartnerCommission returns the partner's commission amount.
func (r TransactionRecord) PartnerCommission() float64 {
	return r.partnerCommission
}

// PlatformCommission returns the platform's commission amount.
func (r TransactionRecord) PlatformCommission() float64 {
	return r.platformCommission
}
