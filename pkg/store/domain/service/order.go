package service

import (
	"errors"
	"sync"
	"time"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

var (
	ErrCartIsEmpty          = errors.New("cannot place an order from an empty cart")
	ErrAddressNotConfirmed  = errors.New("delivery address has not been confirmed")
	ErrPaymentMethodMissing = errors.New("no payment method selected")
)

// OrderService turns the current cart into an immutable order. Placement is
// one logical transaction: the order is recorded and the cart cleared under
// a single lock, so no observer can see one without the other. A second
// submission racing the first blocks on that lock and then fails against
// the now-empty cart, which is what keeps double submission from creating
// a second order.
type OrderService interface {
	PlaceOrder(address model.Address, paymentMethod string) (*model.Order, error)
	Orders() ([]*model.Order, error)
	Order(id int64) (*model.Order, error)
}

func NewOrderService(repo model.OrderRepository, cart CartService, dispatcher EventDispatcher) OrderService {
	return &orderService{repo: repo, cart: cart, dispatcher: dispatcher}
}

type orderService struct {
	mu         sync.Mutex
	repo       model.OrderRepository
	cart       CartService
	dispatcher EventDispatcher
	lastID     int64
}

// nextID is the wall clock in milliseconds, bumped past the previous ID so
// two placements inside the same millisecond still get distinct IDs.
func (s *orderService) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *orderService) PlaceOrder(address model.Address, paymentMethod string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if address.Empty() {
		return nil, ErrAddressNotConfirmed
	}
	if paymentMethod == "" {
		return nil, ErrPaymentMethodMissing
	}

	lines, totals := s.cart.Checkout()
	if len(lines) == 0 {
		return nil, ErrCartIsEmpty
	}

	// MRP counts the pre-discount price per line, falling back to the
	// selling price for products without one.
	var mrp int
	for _, l := range lines {
		orig := l.OriginalPriceValue()
		if orig == 0 {
			orig = l.PriceValue()
		}
		mrp += orig * l.Quantity
	}

	now := time.Now()
	order := &model.Order{
		ID:              s.nextID(now),
		Date:            now,
		Items:           lines,
		Total:           totals.GrandTotal,
		Status:          model.OrderStatusProcessing,
		MRP:             mrp,
		ProductDiscount: mrp - totals.ItemsTotal,
		PlatformFee:     totals.PlatformFee,
		DeliveryFee:     totals.DeliveryFee,
		HandlingFee:     totals.HandlingFee,
		PaymentMethod:   paymentMethod,
		Address:         address,
	}

	if err := s.repo.Create(order); err != nil {
		s.cart.Restore(lines)
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.OrderPlaced{
		OrderID:       order.ID,
		Total:         order.Total,
		PaymentMethod: paymentMethod,
	})
	return order, nil
}

func (s *orderService) Orders() ([]*model.Order, error) {
	return s.repo.List()
}

func (s *orderService) Order(id int64) (*model.Order, error) {
	return s.repo.Find(id)
}
