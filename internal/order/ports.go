package order

import (
	"context"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Item is a single ordered line. Immutable once added to a draft.
type Item struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// LineTotal is quantity times unit price.
func (i Item) LineTotal() float64 {
	return float64(i.Quantity) * i.Price
}

// Order is a finalized, fully populated order ready for persistence.
// Drafts under construction use Draft instead.
type Order struct {
	ID           string    `json:"order_id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	Address      string    `json:"address"`
	Items        []Item    `json:"items"`
	TotalAmount  float64   `json:"total_amount"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store — persistence. Append is fire-and-forget: the assistant never reads
// orders back.
type Store interface {
	Append(ctx context.Context, o Order) error
}
