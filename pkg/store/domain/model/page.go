package model

import (
	"net/url"
	"strconv"
)

// Page is one of the mutually exclusive top-level views. Exactly one page
// is visible at any time.
type Page int

const (
	PageCategories Page = iota
	PageCategoriesGrid
	PageProducts
	PageProductDetail
	PageWishlist
	PageCart
	PagePayment
	PageOrders
	PageOrderDetail
	PageProfile
)

var pageNames = map[Page]string{
	PageCategories:     "categories",
	PageCategoriesGrid: "categories-grid",
	PageProducts:       "products",
	PageProductDetail:  "product-detail",
	PageWishlist:       "wishlist",
	PageCart:           "cart",
	PagePayment:        "payment",
	PageOrders:         "orders",
	PageOrderDetail:    "order-detail",
	PageProfile:        "profile",
}

func (p Page) String() string {
	if name, ok := pageNames[p]; ok {
		return name
	}
	return "categories"
}

// Pages marshal as their tag so routes read naturally on the wire and in
// query strings.
func (p Page) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

func (p *Page) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}
	parsed, _ := PageFromString(name)
	*p = parsed
	return nil
}

// PageFromString maps a page tag back to its Page. Unknown tags fall back
// to the categories page, matching what history restoration does for
// records that predate the router.
func PageFromString(name string) (Page, bool) {
	for p, n := range pageNames {
		if n == name {
			return p, true
		}
	}
	return PageCategories, false
}

// Route is one navigation record: the page plus the parameters its show
// operation needs. It is what gets pushed to history and encoded into the
// query string for deep linking.
type Route struct {
	Page         Page   `json:"page"`
	Category     string `json:"category,omitempty"`
	ProductIndex int    `json:"productIndex,omitempty"`
	OrderID      int64  `json:"orderId,omitempty"`
}

// Query encodes the route as ?page=...&category=... values.
func (r Route) Query() url.Values {
	v := url.Values{}
	v.Set("page", r.Page.String())
	switch r.Page {
	case PageProducts:
		v.Set("category", r.Category)
	case PageProductDetail:
		v.Set("category", r.Category)
		v.Set("productIndex", strconv.Itoa(r.ProductIndex))
	case PageOrderDetail:
		v.Set("id", strconv.FormatInt(r.OrderID, 10))
	}
	return v
}

// RouteFromQuery decodes a query string into a route, defaulting to the
// categories page when the page tag is missing or unknown.
func RouteFromQuery(v url.Values) Route {
	page, ok := PageFromString(v.Get("page"))
	if !ok {
		return Route{Page: PageCategories}
	}
	r := Route{Page: page}
	switch page {
	case PageProducts:
		r.Category = v.Get("category")
	case PageProductDetail:
		r.Category = v.Get("category")
		r.ProductIndex, _ = strconv.Atoi(v.Get("productIndex"))
	case PageOrderDetail:
		r.OrderID, _ = strconv.ParseInt(v.Get("id"), 10, 64)
	}
	return r
}
