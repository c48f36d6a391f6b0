package model

import (
	"catering/shared/model"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldBookingID     = "booking_id"
	FieldTotal         = "total"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldCreatedAt     = "created_at"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"

	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"

	MethodCash = "cash"
	MethodCard = "card"
	MethodUPI  = "upi"
)

var errItemsType = errors.New("order items: unsupported column type")

// Item is a priced snapshot of a menu item taken when the order is placed.
type Item struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

// Items is stored as a JSONB array.
type Items []Item

func (i Items) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}

	raw, err := json.Marshal([]Item(i))
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	return raw, nil
}

func (i *Items) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*i = Items{}

		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return errItemsType
	}

	if err := json.Unmarshal(raw, (*[]Item)(i)); err != nil {
		return fmt.Errorf("failed to decode order items: %w", err)
	}

	return nil
}

type Order struct {
	ID            string  `db:"id"`
	UserID        string  `db:"user_id"`
	BookingID     *string `db:"booking_id"`
	Items         Items   `db:"items"`
	Total         float64 `db:"total"`
	Status        string  `db:"status"`
	PaymentStatus string  `db:"payment_status"`
	PaymentMethod string  `db:"payment_method"`
	model.Metadata
}
