package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequest_Validate(t *testing.T) {
	valid := CreateRequest{Name: "Coldplay", Category: "VIP", Price: 150000, Stock: 10}
	assert.NoError(t, valid.Validate())

	// A free ticket with no stock is still valid.
	free := CreateRequest{Name: "Open Stage", Price: 0, Stock: 0}
	assert.NoError(t, free.Validate())

	tests := []struct {
		name  string
		req   CreateRequest
		field string
	}{
		{"empty name", CreateRequest{Price: 1, Stock: 1}, "name"},
		{"negative price", CreateRequest{Name: "X", Price: -0.01, Stock: 1}, "price"},
		{"negative stock", CreateRequest{Name: "X", Price: 1, Stock: -1}, "stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestUpdateRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateRequest{}).Validate())

	// Price zero is allowed through the core API; only the CLI sentinel
	// convention makes it unreachable interactively.
	zero := 0.0
	assert.NoError(t, (&UpdateRequest{Price: &zero}).Validate())

	negative := -1.0
	assert.Error(t, (&UpdateRequest{Price: &negative}).Validate())

	empty := ""
	assert.Error(t, (&UpdateRequest{Name: &empty}).Validate())

	badStock := -5
	assert.Error(t, (&UpdateRequest{Stock: &badStock}).Validate())
}

func TestTicket_Expired(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ttl := DefaultTTL
	ttlSec := int64(ttl.Seconds())

	old := Ticket{CreatedAt: now.Unix() - ttlSec - 1}
	assert.True(t, old.Expired(now, ttl))

	boundary := Ticket{CreatedAt: now.Unix() - ttlSec}
	assert.False(t, boundary.Expired(now, ttl))

	fresh := Ticket{CreatedAt: now.Unix() - ttlSec + 1}
	assert.False(t, fresh.Expired(now, ttl))
}

func TestParseSortKey(t *testing.T) {
	for _, valid := range []string{"price_asc", "price_desc", "name_asc"} {
		key, err := ParseSortKey(valid)
		require.NoError(t, err)
		assert.Equal(t, SortKey(valid), key)
	}

	_, err := ParseSortKey("stock_desc")
	assert.Error(t, err)
}

func TestParseExpiryPolicy(t *testing.T) {
	for _, valid := range []string{"delete", "zero_stock"} {
		policy, err := ParseExpiryPolicy(valid)
		require.NoError(t, err)
		assert.Equal(t, ExpiryPolicy(valid), policy)
	}

	_, err := ParseExpiryPolicy("archive")
	assert.Error(t, err)
}

func TestSweepReport_Changed(t *testing.T) {
	assert.False(t, (&SweepReport{Scanned: 10}).Changed())
	assert.True(t, (&SweepReport{Removed: []int{1}}).Changed())
	assert.True(t, (&SweepReport{Zeroed: []int{2}}).Changed())
}
