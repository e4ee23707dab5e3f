package model

type LineAddedToCart struct {
	ProductName string
	Quantity    int
}

func (e LineAddedToCart) Type() string { return "LineAddedToCart" }

type LineQuantityChanged struct {
	ProductName string
	Quantity    int
}

func (e LineQuantityChanged) Type() string { return "LineQuantityChanged" }

type LineRemovedFromCart struct {
	ProductName string
}

func (e LineRemovedFromCart) Type() string { return "LineRemovedFromCart" }

type WishlistToggled struct {
	ProductName string
	Added       bool
}

func (e WishlistToggled) Type() string { return "WishlistToggled" }

type OrderPlaced struct {
	OrderID       int64
	Total         int
	PaymentMethod string
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OTPRequested struct {
	Phone string
}

func (e OTPRequested) Type() string { return "OTPRequested" }

type UserLoggedIn struct {
	Phone string
}

func (e UserLoggedIn) Type() string { return "UserLoggedIn" }

type UserLoggedOut struct{}

func (e UserLoggedOut) Type() string { return "UserLoggedOut" }

type PageShown struct {
	Route Route
}

func (e PageShown) Type() string { return "PageShown" }

type AddressConfirmed struct {
	Pin string
}

func (e AddressConfirmed) Type() string { return "AddressConfirmed" }
