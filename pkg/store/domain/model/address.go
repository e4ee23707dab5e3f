package model

// Address is a delivery address. The payment flow validates and snapshots
// one before an order can be placed; the home popup keeps an independent
// display-only copy.
type Address struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	House  string `json:"house"`
	Street string `json:"street"`
	Pin    string `json:"pin"`
}

func (a Address) Empty() bool {
	return a.Name == "" && a.Mobile == "" && a.House == "" && a.Street == "" && a.Pin == ""
}
