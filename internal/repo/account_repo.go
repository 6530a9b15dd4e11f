package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-api-envelope/internal/domain"
)

// ErrNotFound aliases gorm.ErrRecordNotFound for callers of this package.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateAccount inserts an empty account owned by userID.
func CreateAccount(ctx context.Context, db *gorm.DB, userID, currency, label string) (*domain.Account, error) {
	now := time.Now().UTC()
	a := &domain.Account{
		ID:        uuid.NewString(),
		UserID:    userID,
		Currency:  currency,
		Label:     label,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// GetAccount fetches an account by id regardless of owner, so callers can
// tell "missing" from "someone else's". ErrNotFound when absent.
func GetAccount(ctx context.Context, db *gorm.DB, id string) (*domain.Account, error) {
	var a domain.Account
	if err := db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountForUpdate is GetAccount with a row lock on databases that
// support SELECT … FOR UPDATE. Use it inside a transaction.
func GetAccountForUpdate(ctx context.Context, tx *gorm.DB, id string) (*domain.Account, error) {
	var a domain.Account
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CountAccounts returns how many accounts userID owns.
func CountAccounts(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListAccountsPage returns a page of userID's accounts, newest first.
func ListAccountsPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.Account, error) {
	var out []domain.Account
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// AdjustBalance adds delta (which may be negative) to the account balance.
// ErrNotFound when no row matched.
func AdjustBalance(ctx context.Context, db *gorm.DB, id string, delta int64) error {
	res := db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
