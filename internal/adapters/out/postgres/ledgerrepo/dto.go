// Package ledgerrepo provides data transfer objects and mapping functions for
// the transaction ledger. The ledger is append-only: the repository exposes
// no update or delete path and the table's auto-incremented key preserves
// append order.
package ledgerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// TransactionRecordDTO represents the database structure for ledger entries.
// The surrogate Seq key orders records by insertion; OrderID is unique
// because an order is delivered at most once.
type TransactionRecordDTO struct {
	Seq                uint      `gorm:"primaryKey;autoIncrement"`
	OrderID            uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CustomerID         string
	PartnerID          string
	OrderTotal         float64
	RewardBonus        float64
	PartnerCommission  float64
	PlatformCommission float64
}

// TableName specifies the database table name for ledger entries.
func (TransactionRecordDTO) TableName() string {
	return "ledger_records"
}

// fromDomain converts a ledger record to its database representation.
func fromDomain(record ledger.TransactionRecord) TransactionRecordDTO {
	return TransactionRecordDTO{
		OrderID:            record.OrderID().Bytes(),
		CustomerID:         record.CustomerID(),
		PartnerID:          record.PartnerID(),
		OrderTotal:         record.OrderTotal(),
		RewardBonus:        record.RewardBonus(),
		PartnerCommission:  record.PartnerCommission(),
		PlatformCommission: record.PlatformCommission(),
	}
}

// toDomain converts a database DTO back to a ledger record.
func toDomain(dto TransactionRecordDTO) (ledger.TransactionRecord, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ledger.TransactionRecord{}, err
	}

	return ledger.NewTransactionRecord(
		orderID,
		dto.CustomerID,
		dto.PartnerID,
		dto.OrderTotal,
		dto.RewardBonus,
		dto.PartnerCommission,
		dto.PlatformCommission,
	)
}
