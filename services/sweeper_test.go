package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-inventory/models"
)

const sweepNow = int64(1700000000)

// createAged inserts a ticket whose age is controlled relative to the
// sweep clock.
func createAged(t *testing.T, svc *InventoryService, name string, createdAt int64, stock int) models.Ticket {
	t.Helper()
	svc.now = func() time.Time { return time.Unix(createdAt, 0) }
	ticket, err := svc.Create(models.CreateRequest{Name: name, Category: "VIP", Price: 100, Stock: stock})
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Unix(sweepNow, 0) }
	return ticket
}

func TestSweepExpired_DeletePolicy(t *testing.T) {
	svc := setupTestService(t)
	ttl := int64(models.DefaultTTL.Seconds())

	expired := createAged(t, svc, "Old", sweepNow-ttl-1, 10)
	fresh := createAged(t, svc, "Fresh", sweepNow-ttl+1, 10)

	report, err := svc.SweepExpired(models.ExpiryDelete)
	require.NoError(t, err)

	assert.Equal(t, []int{expired.ID}, report.Removed)
	assert.Empty(t, report.Zeroed)

	_, err = svc.FindByID(expired.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	kept, err := svc.FindByID(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, kept.Stock)
}

func TestSweepExpired_DeletePolicyBoundary(t *testing.T) {
	svc := setupTestService(t)
	ttl := int64(models.DefaultTTL.Seconds())

	// Exactly at the TTL is not yet expired: the check is strictly
	// greater than.
	boundary := createAged(t, svc, "Boundary", sweepNow-ttl, 10)

	report, err := svc.SweepExpired(models.ExpiryDelete)
	require.NoError(t, err)
	assert.Empty(t, report.Removed)

	_, err = svc.FindByID(boundary.ID)
	assert.NoError(t, err)
}

func TestSweepExpired_DeletePolicyKeepsOrder(t *testing.T) {
	svc := setupTestService(t)
	ttl := int64(models.DefaultTTL.Seconds())

	createAged(t, svc, "A", sweepNow-ttl-5, 1)
	createAged(t, svc, "B", sweepNow-10, 1)
	createAged(t, svc, "C", sweepNow-ttl-5, 1)
	createAged(t, svc, "D", sweepNow-10, 1)

	report, err := svc.SweepExpired(models.ExpiryDelete)
	require.NoError(t, err)
	assert.Len(t, report.Removed, 2)

	all := svc.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "D", all[1].Name)
}

func TestSweepExpired_ZeroStockPolicy(t *testing.T) {
	svc := setupTestService(t)
	ttl := int64(models.DefaultTTL.Seconds())

	expired := createAged(t, svc, "Old", sweepNow-ttl-1, 10)
	fresh := createAged(t, svc, "Fresh", sweepNow-ttl+1, 10)

	report, err := svc.SweepExpired(models.ExpiryZeroStock)
	require.NoError(t, err)
	assert.Equal(t, []int{expired.ID}, report.Zeroed)
	assert.Empty(t, report.Removed)

	// The expired ticket stays, with zero stock.
	zeroed, err := svc.FindByID(expired.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, zeroed.Stock)

	kept, err := svc.FindByID(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, kept.Stock)
}

func TestSweepExpired_ZeroStockSkipsAlreadyZero(t *testing.T) {
	svc := setupTestService(t)
	ttl := int64(models.DefaultTTL.Seconds())

	createAged(t, svc, "Old and empty", sweepNow-ttl-1, 0)

	report, err := svc.SweepExpired(models.ExpiryZeroStock)
	require.NoError(t, err)
	assert.Empty(t, report.Zeroed)
}

func TestSweepExpired_UnknownPolicy(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.SweepExpired("incinerate")
	assert.Error(t, err)
}
