package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Exela-Tech/Propeerty-Management/model"
	"github.com/Exela-Tech/Propeerty-Management/service"
)

// PaymentStore is the Postgres-backed payment store. Every filter is a
// structured predicate; raw query strings are never assembled from
// input.
type PaymentStore struct {
	db *gorm.DB
}

func NewPaymentStore(db *gorm.DB) *PaymentStore {
	return &PaymentStore{db: db}
}

func (s *PaymentStore) GetWithProperty(ctx context.Context, id string) (*model.Payment, error) {
	var payment model.Payment
	err := s.db.WithContext(ctx).
		Preload("Property").
		Where("id = ?", id).
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrPersistence, err)
	}
	return &payment, nil
}

// MarkPaid performs the pending->paid transition as a single guarded
// update; the status predicate is what keeps concurrent confirmations
// from double-applying.
func (s *PaymentStore) MarkPaid(ctx context.Context, id, processorRef string, paidAt time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Payment{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Updates(map[string]any{
			"status":        model.StatusPaid,
			"paid_at":       paidAt,
			"processor_ref": processorRef,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("%w: %v", service.ErrPersistence, res.Error)
	}
	return res.RowsAffected, nil
}

func (s *PaymentStore) ListByRenter(ctx context.Context, renterID string) ([]model.Payment, error) {
	var payments []model.Payment
	err := s.db.WithContext(ctx).
		Preload("Property").
		Where("renter_id = ?", renterID).
		Order("due_date ASC, created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrPersistence, err)
	}
	return payments, nil
}

func (s *PaymentStore) ListAll(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	err := s.db.WithContext(ctx).
		Preload("Property").
		Order("due_date ASC, created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrPersistence, err)
	}
	return payments, nil
}
