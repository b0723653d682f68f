package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftCompletion(t *testing.T) {
	d := NewDraft()
	assert.False(t, d.IsComplete())

	d.CustomerName = "Ali Khan"
	d.PhoneNumber = "03001234567"
	d.Address = "House 12 Street 5 Block A Lahore"
	assert.False(t, d.IsComplete(), "no items yet")

	d.AddItem(Item{ProductID: "p1", ProductName: "Gold Ring", Quantity: 2, Price: 150})
	assert.True(t, d.IsComplete())
}

func TestDraftTotal(t *testing.T) {
	d := NewDraft()
	d.AddItem(Item{ProductID: "p1", ProductName: "Gold Ring", Quantity: 2, Price: 150})
	d.AddItem(Item{ProductID: "p2", ProductName: "Silver Bracelet", Quantity: 1, Price: 80})
	assert.Equal(t, 380.0, d.Total())
}

func TestFinalize(t *testing.T) {
	d := NewDraft()
	d.CustomerName = "Ali Khan"
	d.PhoneNumber = "03001234567"
	d.Address = "House 12 Street 5 Block A Lahore"
	d.AddItem(Item{ProductID: "p1", ProductName: "Gold Ring", Quantity: 2, Price: 150})

	o, err := d.Finalize()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(o.ID, "ORD-"))
	assert.Equal(t, "Ali Khan", o.CustomerName)
	assert.Equal(t, "03001234567", o.PhoneNumber)
	assert.Equal(t, 300.0, o.TotalAmount)
	assert.Equal(t, StatusPending, o.Status)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestFinalizeIncomplete(t *testing.T) {
	d := NewDraft()
	d.CustomerName = "Ali Khan"
	_, err := d.Finalize()
	assert.Error(t, err)
}

func TestItemLineTotal(t *testing.T) {
	item := Item{Quantity: 3, Price: 40}
	assert.Equal(t, 120.0, item.LineTotal())
}
