package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-inventory/models"
)

func TestText_RoundTrip(t *testing.T) {
	c := &Text{}
	var buf bytes.Buffer

	require.NoError(t, c.Encode(&buf, sampleTickets()))

	decoded, err := c.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleTickets(), decoded)
}

func TestText_LineFormat(t *testing.T) {
	c := &Text{}
	var buf bytes.Buffer

	require.NoError(t, c.Encode(&buf, []models.Ticket{
		{ID: 3, Name: "Coldplay", Category: "VIP", Price: 150000, Stock: 10, CreatedAt: 1700000000},
	}))

	assert.Equal(t, "3;Coldplay;VIP;150000.00;10;1700000000\n", buf.String())
}

func TestText_DecodeStopsAtMalformedLine(t *testing.T) {
	c := &Text{}
	input := strings.Join([]string{
		"1;Coldplay;VIP;150000.00;10;1700000000",
		"2;Dewa 19;Reguler;80000.00;5;1700000100",
		"this line has the wrong shape",
		"4;Never Parsed;VIP;10.00;1;1700000200",
	}, "\n")

	decoded, err := c.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, 1, decoded[0].ID)
	assert.Equal(t, 2, decoded[1].ID)
}

func TestText_DecodeStopsAtBadNumber(t *testing.T) {
	c := &Text{}
	input := strings.Join([]string{
		"1;Coldplay;VIP;150000.00;10;1700000000",
		"two;Dewa 19;Reguler;80000.00;5;1700000100",
	}, "\n")

	decoded, err := c.Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
}

func TestText_DecodeEmptyInput(t *testing.T) {
	c := &Text{}

	decoded, err := c.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestText_PurchaseRoundTrip(t *testing.T) {
	c := &Text{}
	purchases := []models.Purchase{
		{ID: 1, TicketID: 1, Quantity: 3, TotalPrice: 450000.00, PurchasedAt: 1700000300},
	}

	var buf bytes.Buffer
	require.NoError(t, c.EncodePurchases(&buf, purchases))
	assert.Equal(t, "1;1;3;450000.00;1700000300\n", buf.String())

	decoded, err := c.DecodePurchases(&buf)
	require.NoError(t, err)
	assert.Equal(t, purchases, decoded)
}

func TestForFormat(t *testing.T) {
	c, err := ForFormat(FormatBinary)
	require.NoError(t, err)
	assert.IsType(t, &Binary{}, c)

	c, err = ForFormat(FormatText)
	require.NoError(t, err)
	assert.IsType(t, &Text{}, c)

	_, err = ForFormat("csv")
	assert.Error(t, err)
}
