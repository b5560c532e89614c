package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerBeforeCreate_StampsAudit(t *testing.T) {
	t.Parallel()
	cust := Customer{
		ID:           uuid.New(),
		Name:         "Mark Satin",
		Email:        "mark@fakemail.com",
		MobileNumber: "9175552620",
	}
	require.NoError(t, cust.BeforeCreate(nil))
	assert.False(t, cust.CreatedAt.IsZero())
	assert.Equal(t, Auditor, cust.CreatedBy)
	assert.True(t, cust.UpdatedAt.IsZero(), "creation must not stamp the update columns")
	assert.Empty(t, cust.UpdatedBy)
}

func TestAccountBeforeCreate_StampsAudit(t *testing.T) {
	t.Parallel()
	acct := Account{
		AccountNumber: 1_234_567_890,
		CustomerID:    uuid.New(),
		AccountType:   "Savings",
		BranchAddress: "123 Main Street, New York",
	}
	require.NoError(t, acct.BeforeCreate(nil))
	assert.False(t, acct.CreatedAt.IsZero())
	assert.Equal(t, Auditor, acct.CreatedBy)
	assert.True(t, acct.UpdatedAt.IsZero())
}

func TestAuditUpdates(t *testing.T) {
	t.Parallel()
	updates := AuditUpdates(map[string]any{"name": "Marcus Satin"})
	assert.Equal(t, "Marcus Satin", updates["name"])
	assert.Equal(t, Auditor, updates["updated_by"])
	ts, ok := updates["updated_at"].(time.Time)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}
