package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-api-envelope/internal/domain"
)

const scope = "/api/v1/transfers"

func TestGetIdempotency_BlankScopeOrKey(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	now := time.Now().UTC()
	if _, err := GetIdempotency(context.Background(), db, "u1", "  ", "k1", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank scope: %v", err)
	}
	if _, err := GetIdempotency(context.Background(), db, "u1", scope, "", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank key: %v", err)
	}
}

func TestGetIdempotency_ExpiredMissingAndHit(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []domain.Idempotency{
		{ID: "expired", UserID: "u1", Scope: scope, Key: "old", ResourceID: "t0", Status: 200, CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)},
		{ID: "live", UserID: "u1", Scope: scope, Key: "new", ResourceID: "t1", Status: 200, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := GetIdempotency(ctx, db, "u1", scope, "old", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired: %v", err)
	}
	if _, err := GetIdempotency(ctx, db, "u1", scope, "missing", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing: %v", err)
	}
	if _, err := GetIdempotency(ctx, db, "u2", scope, "new", now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user: %v", err)
	}
	rec, err := GetIdempotency(ctx, db, "u1", scope, "new", now)
	if err != nil || rec.ResourceID != "t1" {
		t.Fatalf("hit = %+v, %v", rec, err)
	}
}

func TestCreateIdempotency_SuccessAndDuplicate(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	ctx := context.Background()
	start := time.Now().UTC()

	rec, err := CreateIdempotency(ctx, db, "u9", scope, "k9", "t9", "h9", 200, 90*time.Minute)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || rec.ResourceID != "t9" || !rec.ExpiresAt.After(start) || !rec.ExpiresAt.Before(start.Add(2*time.Hour)) {
		t.Fatalf("unexpected record: %+v", rec)
	}
	got, err := GetIdempotency(ctx, db, "u9", scope, "k9", start)
	if err != nil || got.RequestHash != "h9" {
		t.Fatalf("stored record = %+v, %v", got, err)
	}
	if _, err := CreateIdempotency(ctx, db, "u9", scope, "k9", "tX", "hX", 200, time.Minute); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreateIdempotency_Error_NoTable(t *testing.T) {
	db := newRepoDB(t)
	_, err := CreateIdempotency(context.Background(), db, "u", scope, "k", "t", "h", 200, time.Minute)
	if err == nil || errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected a non-duplicate error, got %v", err)
	}
}

func TestPurgeExpiredIdempotency(t *testing.T) {
	db := newRepoDB(t, &domain.Idempotency{})
	ctx := context.Background()
	now := time.Now().UTC()
	seed := []domain.Idempotency{
		{ID: "a", UserID: "u", Scope: scope, Key: "a", ResourceID: "r", Status: 200, CreatedAt: now, ExpiresAt: now.Add(-time.Second)},
		{ID: "b", UserID: "u", Scope: scope, Key: "b", ResourceID: "r", Status: 200, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := PurgeExpiredIdempotency(ctx, db, now)
	if err != nil || n != 1 {
		t.Fatalf("purged = %d, %v", n, err)
	}
}
