package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/go-api-envelope/internal/domain"
	"github.com/tbourn/go-api-envelope/internal/repo"
)

// DefaultMaxAmount caps a single deposit or transfer (minor units).
const DefaultMaxAmount int64 = 1_000_000_00

// AccountService creates, lists, and funds accounts. Every read checks
// ownership so a caller can never observe another user's balance.
type AccountService struct {
	DB *gorm.DB

	// MaxAmount caps a single deposit. Zero means DefaultMaxAmount.
	MaxAmount int64
	// LabelMaxLen caps labels by rune count. Zero means 64.
	LabelMaxLen int
}

// NewAccountService returns an AccountService with default limits.
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{DB: db, MaxAmount: DefaultMaxAmount, LabelMaxLen: 64}
}

// Create opens an empty account in currency (ISO 4217, upper-cased here).
func (s *AccountService) Create(ctx context.Context, userID, currency, label string) (*domain.Account, error) {
	return repo.CreateAccount(ctx, s.DB, userID, strings.ToUpper(currency), s.clip(strings.TrimSpace(label)))
}

// Get returns the account when userID owns it.
func (s *AccountService) Get(ctx context.Context, userID, id string) (*domain.Account, error) {
	acc, err := repo.GetAccount(ctx, s.DB, id)
	return owned(acc, err, userID)
}

// ListPage returns one page of the user's accounts and the total count.
// page < 1 is treated as 1, pageSize <= 0 as 20.
func (s *AccountService) ListPage(ctx context.Context, userID string, page, pageSize int) ([]domain.Account, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	total, err := repo.CountAccounts(ctx, s.DB, userID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Account{}, 0, nil
	}
	items, err := repo.ListAccountsPage(ctx, s.DB, userID, (page-1)*pageSize, pageSize)
	return items, total, err
}

// Deposit credits amount to the account and returns the updated row.
func (s *AccountService) Deposit(ctx context.Context, userID, id string, amount int64) (*domain.Account, error) {
	if amount <= 0 || amount > s.maxAmount() {
		return nil, ErrInvalidAmount
	}

	var out *domain.Account
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		acc, err := repo.GetAccountForUpdate(ctx, tx, id)
		if acc, err = owned(acc, err, userID); err != nil {
			return err
		}
		if err := repo.AdjustBalance(ctx, tx, acc.ID, amount); err != nil {
			return err
		}
		out, err = repo.GetAccount(ctx, tx, acc.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *AccountService) maxAmount() int64 {
	if s.MaxAmount <= 0 {
		return DefaultMaxAmount
	}
	return s.MaxAmount
}

func (s *AccountService) clip(label string) string {
	max := s.LabelMaxLen
	if max <= 0 {
		max = 64
	}
	if utf8.RuneCountInString(label) <= max {
		return label
	}
	return string([]rune(label)[:max])
}

// owned maps the result of a repo lookup to service errors and checks the
// owner.
func owned(acc *domain.Account, err error, userID string) (*domain.Account, error) {
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if acc.UserID != userID {
		return nil, ErrNotOwner
	}
	return acc, nil
}
