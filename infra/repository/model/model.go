// Package model defines the persisted record shapes and the audit stamping
// applied at the persistence boundary. CreatedAt/CreatedBy are set exactly
// once on insert; UpdatedAt/UpdatedBy change only through the update path
// (see the repositories' use of AuditUpdates).
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auditor identifies this service in the audit columns.
const Auditor = "ACCOUNTS_MS"

// Customer represents a customer record in the database. The mobile number
// is the unique business key.
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:100;not null"`
	MobileNumber string    `gorm:"size:20;uniqueIndex;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	CreatedBy    string    `gorm:"size:20;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy    string    `gorm:"size:20"`
}

// BeforeCreate stamps the creation audit fields once.
func (c *Customer) BeforeCreate(*gorm.DB) error {
	c.CreatedAt = time.Now().UTC()
	c.CreatedBy = Auditor
	return nil
}

// Account represents an account record in the database, keyed by the
// generator-assigned account number. The unique index on CustomerID enforces
// the 1:1 aggregate shape at the store level.
type Account struct {
	AccountNumber int64     `gorm:"primaryKey;autoIncrement:false"`
	CustomerID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	AccountType   string    `gorm:"size:100;not null"`
	BranchAddress string    `gorm:"size:200;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	CreatedBy     string    `gorm:"size:20;not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy     string    `gorm:"size:20"`
}

// BeforeCreate stamps the creation audit fields once.
func (a *Account) BeforeCreate(*gorm.DB) error {
	a.CreatedAt = time.Now().UTC()
	a.CreatedBy = Auditor
	return nil
}

// AuditUpdates adds the update audit columns to a column map used with
// gorm Updates. Repositories call this for every update so the stamping
// stays uniform regardless of which fields change.
func AuditUpdates(updates map[string]any) map[string]any {
	updates["updated_at"] = time.Now().UTC()
	updates["updated_by"] = Auditor
	return updates
}
