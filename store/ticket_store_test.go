package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-inventory/codec"
	"ticket-inventory/models"
)

func newTestStore(t *testing.T, c codec.Codec) *TicketStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickets.dat")
	return NewTicketStore(path, c, nil)
}

func TestTicketStore_NextIDEmpty(t *testing.T) {
	s := newTestStore(t, &codec.Text{})
	assert.Equal(t, 1, s.NextID())
}

func TestTicketStore_NextIDIsMaxPlusOne(t *testing.T) {
	s := newTestStore(t, &codec.Text{})
	s.Insert(models.Ticket{ID: 1})
	s.Insert(models.Ticket{ID: 7})
	s.Insert(models.Ticket{ID: 3})

	assert.Equal(t, 8, s.NextID())
}

func TestTicketStore_NextIDAfterDeletingMax(t *testing.T) {
	s := newTestStore(t, &codec.Text{})
	s.Insert(models.Ticket{ID: 1})
	s.Insert(models.Ticket{ID: 2})
	s.Insert(models.Ticket{ID: 3})

	// Deleting the max ID frees its number for the very next create;
	// lower deleted IDs stay retired. No counter is persisted.
	s.RemoveAt(s.IndexByID(3))
	assert.Equal(t, 3, s.NextID())

	s.RemoveAt(s.IndexByID(1))
	assert.Equal(t, 3, s.NextID())
}

func TestTicketStore_RemoveAtKeepsOrder(t *testing.T) {
	s := newTestStore(t, &codec.Text{})
	s.Insert(models.Ticket{ID: 1, Name: "a"})
	s.Insert(models.Ticket{ID: 2, Name: "b"})
	s.Insert(models.Ticket{ID: 3, Name: "c"})
	s.Insert(models.Ticket{ID: 4, Name: "d"})

	s.RemoveAt(1)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{all[0].ID, all[1].ID, all[2].ID})
}

func TestTicketStore_LoadMissingFileIsEmpty(t *testing.T) {
	s := NewTicketStore(filepath.Join(t.TempDir(), "nope.dat"), &codec.Text{}, nil)

	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
}

func TestTicketStore_SaveLoadRoundTrip(t *testing.T) {
	for _, c := range []codec.Codec{&codec.Text{}, &codec.Binary{}} {
		s := newTestStore(t, c)
		s.Insert(models.Ticket{ID: 1, Name: "Coldplay", Category: "VIP", Price: 150000, Stock: 10, CreatedAt: 1700000000})
		s.Insert(models.Ticket{ID: 2, Name: "Dewa 19", Category: "Reguler", Price: 80000, Stock: 5, CreatedAt: 1700000100})
		require.NoError(t, s.Save())

		reloaded := NewTicketStore(s.path, c, nil)
		require.NoError(t, reloaded.Load())
		assert.Equal(t, s.All(), reloaded.All())
	}
}

func TestTicketStore_LoadCorruptFileKeepsPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.dat")
	content := "1;Coldplay;VIP;150000.00;10;1700000000\ngarbage line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewTicketStore(path, &codec.Text{}, nil)
	require.NoError(t, s.Load())
	assert.Equal(t, 1, s.Len())
}

func TestPurchaseStore_NextIDAndAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purchases.dat")
	s := NewPurchaseStore(path, &codec.Binary{}, nil)

	assert.Equal(t, 1, s.NextID())
	s.Append(models.Purchase{ID: 1, TicketID: 1, Quantity: 2, TotalPrice: 100, PurchasedAt: 1700000000})
	s.Append(models.Purchase{ID: 2, TicketID: 1, Quantity: 1, TotalPrice: 50, PurchasedAt: 1700000100})
	assert.Equal(t, 3, s.NextID())

	require.NoError(t, s.Save())

	reloaded := NewPurchaseStore(path, &codec.Binary{}, nil)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, s.All(), reloaded.All())
}
