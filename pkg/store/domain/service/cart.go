package service

import (
	"sync"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

const defaultLineSize = "1 unit"

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

// CartService owns the mutable cart line list. Login gating of AddToCart
// is handled one layer up; this service only maintains lines and totals.
type CartService interface {
	AddToCart(productName string) (int, error)
	IncreaseQty(productName string) (int, error)
	// DecreaseQty lowers the quantity by one. Dropping below 1 removes the
	// line; removed reports that so the caller can revert the product card
	// control to its add affordance.
	DecreaseQty(productName string) (quantity int, removed bool, err error)
	RemoveLine(productName string) error

	Lines() []model.CartLine
	Line(productName string) (model.CartLine, bool)
	Totals() model.Totals
	Count() int
	// FreeDeliveryRemaining is how much more the items total needs before
	// delivery turns free; 0 once the threshold is met.
	FreeDeliveryRemaining() int

	// Checkout atomically snapshots the lines with their totals and clears
	// the cart. Used by order placement so clearing cannot interleave with
	// another mutation.
	Checkout() ([]model.CartLine, model.Totals)

	// Restore puts a checkout snapshot back. Only order placement uses it,
	// to roll back when recording the order fails after the cart was taken.
	Restore(lines []model.CartLine)
}

func NewCartService(catalog *model.Catalog, dispatcher EventDispatcher) CartService {
	return &cartService{catalog: catalog, dispatcher: dispatcher}
}

type cartService struct {
	mu         sync.Mutex
	catalog    *model.Catalog
	dispatcher EventDispatcher
	lines      []model.CartLine
}

func (s *cartService) AddToCart(productName string) (int, error) {
	product, _, _, err := s.catalog.Find(productName)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productName); i >= 0 {
		s.lines[i].Quantity++
		qty := s.lines[i].Quantity
		_ = s.dispatcher.Dispatch(model.LineQuantityChanged{ProductName: productName, Quantity: qty})
		return qty, nil
	}

	s.lines = append(s.lines, model.CartLine{
		Product:  product,
		Quantity: 1,
		Size:     defaultLineSize,
	})
	_ = s.dispatcher.Dispatch(model.LineAddedToCart{ProductName: productName, Quantity: 1})
	return 1, nil
}

func (s *cartService) IncreaseQty(productName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productName)
	if i < 0 {
		return 0, model.ErrLineNotFound
	}
	s.lines[i].Quantity++
	qty := s.lines[i].Quantity
	_ = s.dispatcher.Dispatch(model.LineQuantityChanged{ProductName: productName, Quantity: qty})
	return qty, nil
}

func (s *cartService) DecreaseQty(productName string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productName)
	if i < 0 {
		return 0, false, model.ErrLineNotFound
	}
	if s.lines[i].Quantity <= 1 {
		s.removeAt(i)
		_ = s.dispatcher.Dispatch(model.LineRemovedFromCart{ProductName: productName})
		return 0, true, nil
	}
	s.lines[i].Quantity--
	qty := s.lines[i].Quantity
	_ = s.dispatcher.Dispatch(model.LineQuantityChanged{ProductName: productName, Quantity: qty})
	return qty, false, nil
}

func (s *cartService) RemoveLine(productName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productName)
	if i < 0 {
		return model.ErrLineNotFound
	}
	s.removeAt(i)
	_ = s.dispatcher.Dispatch(model.LineRemovedFromCart{ProductName: productName})
	return nil
}

func (s *cartService) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CartLine(nil), s.lines...)
}

func (s *cartService) Line(productName string) (model.CartLine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(productName); i >= 0 {
		return s.lines[i], true
	}
	return model.CartLine{}, false
}

func (s *cartService) Totals() model.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.ComputeTotals(s.lines)
}

func (s *cartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

func (s *cartService) FreeDeliveryRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := model.ComputeTotals(s.lines)
	if t.ItemsTotal >= model.FreeDeliveryThreshold {
		return 0
	}
	return model.FreeDeliveryThreshold - t.ItemsTotal
}

func (s *cartService) Checkout() ([]model.CartLine, model.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := append([]model.CartLine(nil), s.lines...)
	totals := model.ComputeTotals(snapshot)
	s.lines = nil
	return snapshot, totals
}

func (s *cartService) Restore(lines []model.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(append([]model.CartLine(nil), lines...), s.lines...)
}

func (s *cartService) indexOf(productName string) int {
	for i, l := range s.lines {
		if l.Name == productName {
			return i
		}
	}
	return -1
}

func (s *cartService) removeAt(i int) {
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}
