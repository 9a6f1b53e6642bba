package ledger

import (
	"context"
	"fmt"

	"trade-entry-go/internal/entry"
	"trade-entry-go/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store is the local submission sink: it persists normalized payloads
// as trade records instead of posting them upstream.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// ensure Store satisfies the controller's transport contract
var _ entry.Transport = (*Store)(nil)

// NewStore creates a ledger store on top of an open database.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Submit persists one normalized payload.
func (s *Store) Submit(ctx context.Context, p entry.Payload) error {
	record := models.TradeRecord{
		Username:  p.Username,
		TradeDate: p.Date,
		Item:      p.Item,
		Expiry:    p.Expiry,
		LotSize:   p.LotSize,
		NumberLot: p.NumberLot,
		BuyQty:    p.BuyQty,
		SellQty:   p.SellQty,
		SellPrice: p.SellPrice,
		BuyPrice:  p.BuyPrice,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save trade record: %w", err)
	}

	s.logger.Info("Saved trade record",
		zap.Uint("record_id", record.ID),
		zap.String("item", record.Item))
	return nil
}

// Recent returns saved records, newest first.
func (s *Store) Recent(ctx context.Context) ([]models.TradeRecord, error) {
	var records []models.TradeRecord
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load trade records: %w", err)
	}
	return records, nil
}
