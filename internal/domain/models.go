// Package domain defines the persistence models of the wallet service:
// accounts, transfers between them, and idempotency records for retried
// requests. The types are mapped with GORM and shared by the repository and
// service layers.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Account holds a balance in one currency, owned by a single user.
//
// Balance is kept in minor units (cents) so arithmetic stays exact.
type Account struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID    string         `json:"-"          gorm:"type:varchar(128);not null;index:idx_user_accounts"`
	Currency  string         `json:"currency"   gorm:"type:char(3);not null"`
	Label     string         `json:"label"      gorm:"type:varchar(64);not null;default:''"`
	Balance   int64          `json:"balance"    gorm:"not null;default:0;check:balance >= 0"`
	CreatedAt time.Time      `json:"created_at" gorm:"index:idx_user_accounts"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Account.
func (Account) TableName() string { return "accounts" }

// Transfer moves Amount (minor units) between two accounts of the same
// currency and owner.
type Transfer struct {
	ID            string    `json:"id"              gorm:"type:char(36);primaryKey"`
	UserID        string    `json:"-"               gorm:"type:varchar(128);not null;index"`
	FromAccountID string    `json:"from_account_id" gorm:"type:char(36);not null;index"`
	ToAccountID   string    `json:"to_account_id"   gorm:"type:char(36);not null;index"`
	Amount        int64     `json:"amount"          gorm:"not null;check:amount > 0"`
	Currency      string    `json:"currency"        gorm:"type:char(3);not null"`
	CreatedAt     time.Time `json:"created_at"`

	From Account `json:"-" gorm:"foreignKey:FromAccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	To   Account `json:"-" gorm:"foreignKey:ToAccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Transfer.
func (Transfer) TableName() string { return "transfers" }

// Idempotency records the resource produced by a request carrying an
// Idempotency-Key, unique per (user, scope, key). Scope is the route the key
// was used on. RequestHash fingerprints the request body so a key reused for
// a different request is refused instead of replayed.
type Idempotency struct {
	ID          string    `gorm:"type:char(36);primaryKey"`
	UserID      string    `gorm:"type:varchar(128);not null;uniqueIndex:ux_user_scope_key,priority:1"`
	Scope       string    `gorm:"type:varchar(128);not null;uniqueIndex:ux_user_scope_key,priority:2"`
	Key         string    `gorm:"column:idem_key;type:varchar(200);not null;uniqueIndex:ux_user_scope_key,priority:3"`
	ResourceID  string    `gorm:"type:char(36);not null"`
	RequestHash string    `gorm:"type:char(64);not null;default:''"`
	Status      int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

// TableName returns the database table name for Idempotency.
func (Idempotency) TableName() string { return "idempotency" }
