package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-api-envelope/internal/domain"
	"github.com/tbourn/go-api-envelope/internal/repo"
)

// TransferInput describes a transfer request. IdemScope and IdemKey are set
// when the client sent an Idempotency-Key.
type TransferInput struct {
	UserID    string
	FromID    string
	ToID      string
	Amount    int64
	IdemScope string
	IdemKey   string
}

// TransferService moves money between two accounts of the same user.
type TransferService struct {
	DB *gorm.DB

	// MaxAmount caps a single transfer. Zero means DefaultMaxAmount.
	MaxAmount int64
	// IdempotencyTTL is how long a key replays its transfer. Zero means 24h.
	IdempotencyTTL time.Duration
}

// NewTransferService returns a TransferService with default limits.
func NewTransferService(db *gorm.DB, ttl time.Duration) *TransferService {
	return &TransferService{DB: db, MaxAmount: DefaultMaxAmount, IdempotencyTTL: ttl}
}

// Transfer debits in.FromID and credits in.ToID atomically.
//
// With an idempotency key, a completed transfer for the same (user, scope,
// key) is returned unchanged with replayed=true and no balance moves. Reusing
// the key for a different from/to/amount fails with ErrIdempotencyMismatch. Two
// concurrent first attempts race on the unique index; the loser rolls back
// and replays the winner.
func (s *TransferService) Transfer(ctx context.Context, in TransferInput) (t *domain.Transfer, replayed bool, err error) {
	if in.Amount <= 0 || in.Amount > s.maxAmount() {
		return nil, false, ErrInvalidAmount
	}
	if in.FromID == in.ToID {
		return nil, false, ErrSameAccount
	}

	if in.IdemKey != "" {
		if prev, err := s.replay(ctx, in); err == nil {
			return prev, true, nil
		} else if !errors.Is(err, repo.ErrNotFound) {
			return nil, false, err
		}
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		from, to, err := s.lockPair(ctx, tx, in)
		if err != nil {
			return err
		}
		if from.Currency != to.Currency {
			return ErrCurrencyMismatch
		}
		if from.Balance < in.Amount {
			return ErrInsufficientFunds
		}

		if err := repo.AdjustBalance(ctx, tx, from.ID, -in.Amount); err != nil {
			return err
		}
		if err := repo.AdjustBalance(ctx, tx, to.ID, in.Amount); err != nil {
			return err
		}
		t, err = repo.CreateTransfer(ctx, tx, in.UserID, from.ID, to.ID, from.Currency, in.Amount)
		if err != nil {
			return err
		}
		if in.IdemKey != "" {
			_, err = repo.CreateIdempotency(ctx, tx, in.UserID, in.IdemScope, in.IdemKey, t.ID, in.fingerprint(), http.StatusOK, s.ttl())
		}
		return err
	})

	if errors.Is(err, repo.ErrDuplicate) {
		prev, rerr := s.replay(ctx, in)
		if rerr != nil {
			return nil, false, rerr
		}
		return prev, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	return t, false, nil
}

// Lookup reports whether key already produced a transfer for userID. It is
// the lookup behind the idempotency middleware.
func (s *TransferService) Lookup(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
	_, err := repo.GetIdempotency(ctx, s.DB, userID, scope, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// PurgeExpired deletes idempotency records that expired before now and
// returns how many were removed.
func (s *TransferService) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return repo.PurgeExpiredIdempotency(ctx, s.DB, now)
}

// lockPair locks both accounts in ascending id order, so opposing transfers
// between the same pair queue on the same row instead of deadlocking.
func (s *TransferService) lockPair(ctx context.Context, tx *gorm.DB, in TransferInput) (from, to *domain.Account, err error) {
	first, second := in.FromID, in.ToID
	swapped := second < first
	if swapped {
		first, second = second, first
	}
	a, err := repo.GetAccountForUpdate(ctx, tx, first)
	if a, err = owned(a, err, in.UserID); err != nil {
		return nil, nil, err
	}
	b, err := repo.GetAccountForUpdate(ctx, tx, second)
	if b, err = owned(b, err, in.UserID); err != nil {
		return nil, nil, err
	}
	if swapped {
		return b, a, nil
	}
	return a, b, nil
}

func (s *TransferService) replay(ctx context.Context, in TransferInput) (*domain.Transfer, error) {
	rec, err := repo.GetIdempotency(ctx, s.DB, in.UserID, in.IdemScope, in.IdemKey, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if rec.RequestHash != "" && rec.RequestHash != in.fingerprint() {
		return nil, ErrIdempotencyMismatch
	}
	return repo.GetTransfer(ctx, s.DB, rec.ResourceID, in.UserID)
}

// fingerprint identifies the transfer a key was issued for.
func (in TransferInput) fingerprint() string {
	sum := sha256.Sum256([]byte(in.FromID + "|" + in.ToID + "|" + strconv.FormatInt(in.Amount, 10)))
	return hex.EncodeToString(sum[:])
}

func (s *TransferService) maxAmount() int64 {
	if s.MaxAmount <= 0 {
		return DefaultMaxAmount
	}
	return s.MaxAmount
}

func (s *TransferService) ttl() time.Duration {
	if s.IdempotencyTTL <= 0 {
		return 24 * time.Hour
	}
	return s.IdempotencyTTL
}
