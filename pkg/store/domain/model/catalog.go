package model

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Product is a catalog record. Name is the identity; there is no numeric ID.
// Prices are display strings such as "₹120/kg"; the numeric rupee amount is
// recovered with PriceValue.
type Product struct {
	Name          string `json:"name"`
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice,omitempty"`
	Discount      string `json:"discount,omitempty"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image,omitempty"`
}

// PriceValue returns the rupee amount embedded in the Price display string.
func (p Product) PriceValue() int {
	return amountOf(p.Price)
}

// OriginalPriceValue returns the rupee amount of OriginalPrice, or 0 when
// the product carries no pre-discount price.
func (p Product) OriginalPriceValue() int {
	return amountOf(p.OriginalPrice)
}

// amountOf concatenates the digits of a display price and parses the result,
// so "₹1,200/kg" yields 1200. Anything without digits yields 0.
func amountOf(display string) int {
	var b strings.Builder
	for _, r := range display {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

// Catalog is the static category → product mapping. It is read-only after
// construction; category order is the order given to NewCatalog.
type Catalog struct {
	order    []string
	products map[string][]Product
}

type CatalogCategory struct {
	Name     string
	Products []Product
}

func NewCatalog(categories []CatalogCategory) *Catalog {
	c := &Catalog{products: make(map[string][]Product, len(categories))}
	for _, cat := range categories {
		c.order = append(c.order, cat.Name)
		c.products[cat.Name] = append([]Product(nil), cat.Products...)
	}
	return c
}

// Categories returns category names in their fixed display order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) HasCategory(name string) bool {
	_, ok := c.products[name]
	return ok
}

func (c *Catalog) Products(category string) ([]Product, error) {
	ps, ok := c.products[category]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return append([]Product(nil), ps...), nil
}

// Find locates a product by name across all categories, returning the
// category it lives in and its index within that category.
func (c *Catalog) Find(name string) (Product, string, int, error) {
	for _, category := range c.order {
		for i, p := range c.products[category] {
			if p.Name == name {
				return p, category, i, nil
			}
		}
	}
	return Product{}, "", 0, ErrProductNotFound
}

// FindByCategory returns the product at index within category.
func (c *Catalog) FindByCategory(category string, index int) (Product, error) {
	ps, ok := c.products[category]
	if !ok {
		return Product{}, ErrCategoryNotFound
	}
	if index < 0 || index >= len(ps) {
		return Product{}, ErrProductNotFound
	}
	return ps[index], nil
}
