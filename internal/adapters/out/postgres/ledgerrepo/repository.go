package ledgerrepo

import (
	"context"

	"dispatch/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormLedgerStore implements LedgerStore using GORM.
type GormLedgerStore struct {
	db *gorm.DB
}

// NewGormLedgerStore creates a new GORM ledger store.
func NewGormLedgerStore(db *gorm.DB) *GormLedgerStore {
	return &GormLedgerStore{db: db}
}

// Append adds a record to the end of the ledger.
func (s *GormLedgerStore) Append(ctx context.Context, record ledger.TransactionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return s.db.WithContext(ctx).Create(&dto).Error
}

// GetAll returns every ledger record in append order.
func (s *GormLedgerStore) GetAll(ctx context.Context) ([]ledger.TransactionRecord, error) {
	var dtos []TransactionRecordDTO
	if err := s.db.WithContext(ctx).Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]ledger.TransactionRecord, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
