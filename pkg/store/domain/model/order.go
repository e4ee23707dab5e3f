package model

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

const OrderStatusProcessing = "Processing"

// Order is an immutable snapshot of the cart plus the fee breakdown at
// placement time. ID is derived from the wall clock at creation.
type Order struct {
	ID              int64      `json:"id"`
	Date            time.Time  `json:"date"`
	Items           []CartLine `json:"items"`
	Total           int        `json:"total"`
	Status          string     `json:"status"`
	MRP             int        `json:"mrp"`
	ProductDiscount int        `json:"productDiscount"`
	PlatformFee     int        `json:"platformFee"`
	DeliveryFee     int        `json:"deliveryFee"`
	HandlingFee     int        `json:"handlingFee"`
	PaymentMethod   string     `json:"paymentMethod"`
	Address         Address    `json:"address"`
}

// OrderRepository is the append-only order store. Create must persist the
// order and its item snapshot as one transaction; List returns orders in
// insertion order.
type OrderRepository interface {
	Create(order *Order) error
	Find(id int64) (*Order, error)
	List() ([]*Order, error)
}
