package order

import (
	"context"
	"database/sql"
	"encoding/json"
)

type store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &store{db: db}
}

func (s *store) Append(ctx context.Context, o Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (order_id, customer_name, phone_number, address, items, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		o.ID,
		o.CustomerName,
		o.PhoneNumber,
		o.Address,
		items,
		o.TotalAmount,
		string(o.Status),
		o.CreatedAt,
	)
	return err
}
