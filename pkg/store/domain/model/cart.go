package model

import "errors"

var ErrLineNotFound = errors.New("cart line not found")

// CartLine aggregates the quantity of one distinct product in the cart.
// At most one line exists per product name.
type CartLine struct {
	Product
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

// LineTotal is the discounted price of the line (price × quantity).
func (l CartLine) LineTotal() int {
	return l.PriceValue() * l.Quantity
}

// WishlistEntry remembers where in the catalog a wished product came from.
// The index is only stable because the catalog never mutates.
type WishlistEntry struct {
	Product
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// Totals is the fee breakdown derived from the current cart lines. It is
// recomputed from scratch on every cart mutation; no total survives a
// change to the lines it was derived from.
type Totals struct {
	ItemsTotal  int `json:"itemsTotal"`
	TotalSaved  int `json:"totalSaved"`
	PlatformFee int `json:"platformFee"`
	DeliveryFee int `json:"deliveryFee"`
	HandlingFee int `json:"handlingFee"`
	GrandTotal  int `json:"grandTotal"`
}

const (
	PlatformFee = 5
	HandlingFee = 10
	DeliveryFee = 30

	// FreeDeliveryThreshold waives the delivery fee once the items total
	// reaches it.
	FreeDeliveryThreshold = 299
)

// ComputeTotals derives the fee breakdown from a line list.
func ComputeTotals(lines []CartLine) Totals {
	t := Totals{PlatformFee: PlatformFee, HandlingFee: HandlingFee}
	for _, l := range lines {
		price := l.PriceValue()
		t.ItemsTotal += price * l.Quantity
		if orig := l.OriginalPriceValue(); orig > 0 {
			t.TotalSaved += (orig - price) * l.Quantity
		}
	}
	if t.ItemsTotal < FreeDeliveryThreshold {
		t.DeliveryFee = DeliveryFee
	}
	t.GrandTotal = t.ItemsTotal + t.PlatformFee + t.DeliveryFee + t.HandlingFee
	return t
}
