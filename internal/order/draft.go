package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Draft is an order under construction during the collection dialogue.
// Fields fill progressively; exactly one draft may be in flight per session.
type Draft struct {
	CustomerName string `json:"customer_name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Address      string `json:"address,omitempty"`
	Items        []Item `json:"items,omitempty"`
}

func NewDraft() *Draft {
	return &Draft{}
}

// AddItem appends a line to the draft. Lines are never edited in place.
func (d *Draft) AddItem(item Item) {
	d.Items = append(d.Items, item)
}

// Total sums line totals over the current items.
func (d *Draft) Total() float64 {
	var total float64
	for _, item := range d.Items {
		total += item.LineTotal()
	}
	return total
}

// IsComplete reports whether the draft can be finalized: name, phone, and
// address present and at least one item. Always computed from the current
// fields, never cached.
func (d *Draft) IsComplete() bool {
	return d.CustomerName != "" &&
		d.PhoneNumber != "" &&
		d.Address != "" &&
		len(d.Items) > 0
}

// Finalize converts a complete draft into an immutable Order.
func (d *Draft) Finalize() (Order, error) {
	if !d.IsComplete() {
		return Order{}, fmt.Errorf("draft is not complete")
	}
	now := time.Now()
	items := make([]Item, len(d.Items))
	copy(items, d.Items)
	return Order{
		ID:           fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), uuid.NewString()[:8]),
		CustomerName: d.CustomerName,
		PhoneNumber:  d.PhoneNumber,
		Address:      d.Address,
		Items:        items,
		TotalAmount:  d.Total(),
		Status:       StatusPending,
		CreatedAt:    now,
	}, nil
}
