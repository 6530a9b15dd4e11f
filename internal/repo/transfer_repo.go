package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-api-envelope/internal/domain"
)

// CreateTransfer records a completed transfer. Balances are moved separately
// with AdjustBalance inside the same transaction.
func CreateTransfer(ctx context.Context, db *gorm.DB, userID, fromID, toID, currency string, amount int64) (*domain.Transfer, error) {
	t := &domain.Transfer{
		ID:            uuid.NewString(),
		UserID:        userID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Currency:      currency,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// GetTransfer fetches a transfer owned by userID. ErrNotFound when absent.
func GetTransfer(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Transfer, error) {
	var t domain.Transfer
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}
